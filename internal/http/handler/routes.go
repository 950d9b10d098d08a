package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"roastapi/internal/config"
	"roastapi/internal/model"
	"roastapi/internal/service"
)

// UploadField is the multipart field carrying the resume.
const UploadField = "file"

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, cfg *config.AppConfig, roastSvc service.RoastService) {
	app.Get("/health", HealthCheck(cfg))
	app.Get("/healthz", LivenessProbe())
	app.Post("/roast", RoastResume(roastSvc))
}

// HealthCheck reports that the process is up. It has no dependencies and always succeeds.
//
//	@Summary	Service health
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	model.Health
//	@Router		/health [get]
func HealthCheck(cfg *config.AppConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.Health{
			Status:    "ok",
			Service:   cfg.ServiceName,
			Version:   cfg.Version,
			Timestamp: time.Now(),
		})
	}
}

// LivenessProbe is a bare probe for orchestrators.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// RoastResume handles a multipart PDF upload and responds with the generated roast.
//
//	@Summary	Roast a resume
//	@Tags		roast
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file	formData	file	true	"Resume PDF, at most 10MB"
//	@Success	200		{object}	model.RoastResult
//	@Failure	400		{object}	errorPayload
//	@Failure	500		{object}	errorPayload
//	@Router		/roast [post]
func RoastResume(roastSvc service.RoastService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log := zerolog.Ctx(c.UserContext())

		fh, err := c.FormFile(UploadField)
		if err != nil {
			log.Warn().Err(err).Msg("upload without file field")
			return writeServiceError(c, service.ErrFileRequired)
		}

		data, err := readUpload(fh)
		if err != nil {
			log.Error().Err(err).Str("filename", fh.Filename).Msg("cannot read uploaded file")
			return writeServiceError(c, err)
		}

		res, err := roastSvc.Roast(c.UserContext(), model.UploadedFile{
			Filename: fh.Filename,
			Content:  data,
			Size:     fh.Size,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return data, nil
}
