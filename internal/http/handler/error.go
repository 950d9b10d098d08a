package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"roastapi/internal/service"
)

// Messages returned for server-side failures. Internal details are only logged.
const (
	UpstreamMessage   = "AI service temporarily unavailable. Please try again."
	UnexpectedMessage = "An unexpected error occurred."
)

// errorPayload defines the error response body.
type errorPayload struct {
	Detail string `json:"detail"`
}

// writeError writes a JSON error response carrying a caller-safe message.
func writeError(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(errorPayload{Detail: detail})
}

// writeServiceError maps an error from the roast pipeline to exactly one response:
// client input errors are relayed verbatim with 400, everything else is a generic 500.
func writeServiceError(c *fiber.Ctx, err error) error {
	var inErr *service.InputError
	switch {
	case errors.As(err, &inErr):
		return writeError(c, fiber.StatusBadRequest, inErr.Message)
	case errors.Is(err, service.ErrUpstream):
		return writeError(c, fiber.StatusInternalServerError, UpstreamMessage)
	default:
		return writeError(c, fiber.StatusInternalServerError, UnexpectedMessage)
	}
}

// ErrorHandler returns a Fiber global error handler for errors that escape route handlers:
// unknown routes, wrong methods, oversized bodies rejected by the transport, and recovered panics.
func ErrorHandler(maxUploadBytes int64) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		}

		switch status {
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, fiber.StatusBadRequest, service.FileTooLarge(maxUploadBytes).Message)
		case fiber.StatusNotFound:
			return writeError(c, status, "Not Found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "Method Not Allowed")
		case fiber.StatusBadRequest:
			return writeError(c, status, "Bad Request")
		default:
			zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("unhandled error")
			return writeError(c, fiber.StatusInternalServerError, UnexpectedMessage)
		}
	}
}
