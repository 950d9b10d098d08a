package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"roastapi/docs"
	"roastapi/internal/config"
	"roastapi/internal/extract"
	handlers "roastapi/internal/http/handler"
	"roastapi/internal/http/middleware"
	"roastapi/internal/llm"
	"roastapi/internal/logger"
	"roastapi/internal/otel"
	"roastapi/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Roast My Resume API
// @version 1.0.0
// @description Upload a PDF resume and get a brutally honest roast back.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log, logCloser := newLogger(cfg)
	defer logCloser.Close()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("refusing to start")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.Version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	generator, err := llm.NewGemini(ctx, cfg.Gemini)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize generation client")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	roastMetrics, err := service.NewMetrics(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register roast metrics")
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register http metrics")
	}

	roastSvc := service.NewRoastService(extract.NewPDFExtractor(), generator, cfg.MaxUploadBytes, roastMetrics)

	app := fiber.New(fiber.Config{
		AppName:               cfg.ServiceName,
		BodyLimit:             int(cfg.MaxBodyBytes),
		ErrorHandler:          handlers.ErrorHandler(cfg.MaxUploadBytes),
		DisableStartupMessage: true,
	})

	// RequestID must run first so every later log line carries the correlation id
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())
	app.Use(middleware.CORS(cfg.AllowedOrigins))
	app.Use(recover.New())

	handlers.RegisterRoutes(app, cfg, roastSvc)

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(addr)
	}()

	log.Info().
		Str("addr", addr).
		Str("model", generator.Model()).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Int64("max_upload_bytes", cfg.MaxUploadBytes).
		Msg("roast service started")

	select {
	case err := <-listenErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdown(app, shutdownTracing, log)
}

// newLogger builds the process logger. An unusable LOG_FILE only disables the file sink.
func newLogger(cfg *config.AppConfig) (zerolog.Logger, io.Closer) {
	log, closer, err := logger.New(cfg.ServiceName, cfg.Env, cfg.Log.Level, cfg.Log.File)
	if err == nil {
		return log, closer
	}
	// Without a file sink New cannot fail.
	log, closer, _ = logger.New(cfg.ServiceName, cfg.Env, cfg.Log.Level, "")
	log.Warn().Err(err).Str("log_file", cfg.Log.File).Msg("file logging disabled")
	return log, closer
}

func shutdown(app *fiber.App, shutdownTracing otel.ShutdownFunc, log zerolog.Logger) {
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownTracing(ctx); err != nil {
		log.Error().Err(err).Msg("tracing shutdown")
	}
}
