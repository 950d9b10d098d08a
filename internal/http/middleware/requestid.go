package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the header an upstream proxy may use to hand us a correlation id.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the key used to store the request ID in Fiber's context locals.
	RequestIDLocalKey = "request_id"
)

// NewRequestID returns a timestamp-based correlation id such as 20261017_153012_048213_1f3a9c2e.
// The random suffix keeps ids unique for requests arriving in the same microsecond.
func NewRequestID(now time.Time) string {
	ts := strings.Replace(now.Format("20060102_150405.000000"), ".", "_", 1)
	return ts + "_" + uuid.NewString()[:8]
}

// RequestID ensures every request has a correlation id for log tracing.
//
// Behavior:
// - Reads X-Request-ID from the incoming request header.
// - If missing, generates one with NewRequestID.
// - Stores the value in Fiber context locals under RequestIDLocalKey.
// The id is never written to the response.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = NewRequestID(time.Now())
		}
		c.Locals(RequestIDLocalKey, id)
		return c.Next()
	}
}

// RequestIDFromCtx extracts the id previously stored by RequestID.
func RequestIDFromCtx(c *fiber.Ctx) string {
	if s, ok := c.Locals(RequestIDLocalKey).(string); ok {
		return s
	}
	return ""
}
