package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"roastapi/internal/extract"
	"roastapi/internal/llm"
	"roastapi/internal/model"
)

// RoastService defines the roast use case.
type RoastService interface {
	// Roast validates the upload, extracts its text and asks the generator for a roast.
	// Client-caused failures are *InputError; generator failures wrap ErrUpstream.
	Roast(ctx context.Context, file model.UploadedFile) (*model.RoastResult, error)
}

type roastService struct {
	extractor extract.Extractor
	generator llm.Generator
	maxBytes  int64
	metrics   *Metrics
	tracer    trace.Tracer
}

// NewRoastService constructs a RoastService. metrics may be nil.
func NewRoastService(extractor extract.Extractor, generator llm.Generator, maxBytes int64, metrics *Metrics) RoastService {
	return &roastService{
		extractor: extractor,
		generator: generator,
		maxBytes:  maxBytes,
		metrics:   metrics,
		tracer:    otel.Tracer("roastapi/internal/service"),
	}
}

func (s *roastService) Roast(ctx context.Context, file model.UploadedFile) (*model.RoastResult, error) {
	ctx, span := s.tracer.Start(ctx, "roast", trace.WithAttributes(
		attribute.String("roast.filename", file.Filename),
		attribute.Int64("roast.size_bytes", file.Size),
	))
	defer span.End()

	log := zerolog.Ctx(ctx)
	log.Info().Str("stage", "received").Str("filename", file.Filename).Msg("roast request received")

	if err := ValidateUpload(file, s.maxBytes); err != nil {
		return nil, s.fail(ctx, span, "validate", err)
	}
	log.Info().Str("stage", "validated").
		Str("size_mb", fmt.Sprintf("%.2f", float64(len(file.Content))/(1<<20))).
		Msg("processing pdf")

	text, err := s.extract(ctx, file.Content)
	if err != nil {
		return nil, s.fail(ctx, span, "extract", err)
	}
	log.Info().Str("stage", "extracted").Int("chars", len(text)).Msg("text extracted from pdf")

	roast, err := s.generate(ctx, text)
	if err != nil {
		return nil, s.fail(ctx, span, "generate", err)
	}
	log.Info().Str("stage", "roasted").Int("chars", len(roast)).Msg("roast generated")

	s.metrics.outcome("success")
	return &model.RoastResult{Roast: roast}, nil
}

func (s *roastService) extract(ctx context.Context, data []byte) (string, error) {
	ctx, span := s.tracer.Start(ctx, "roast.extract")
	defer span.End()
	defer s.metrics.since("extract", time.Now())

	text, err := s.extractor.Extract(ctx, data)
	switch {
	case err == nil:
		span.SetAttributes(attribute.Int("roast.extracted_chars", len(text)))
		return text, nil
	case errors.Is(err, extract.ErrNoText):
		return "", wrapInput(ErrNoText, err)
	case errors.Is(err, extract.ErrMalformedPDF):
		return "", wrapInput(ErrUnreadablePDF, err)
	default:
		return "", fmt.Errorf("extract text: %w", err)
	}
}

func (s *roastService) generate(ctx context.Context, text string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "roast.generate")
	defer span.End()
	defer s.metrics.since("generate", time.Now())

	zerolog.Ctx(ctx).Info().Msg("sending request to generation service")
	out, err := s.generator.Generate(ctx, BuildPrompt(text))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return out, nil
}

// fail logs err once with the failing stage and records it on the span and metrics.
func (s *roastService) fail(ctx context.Context, span trace.Span, stage string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, stage+" failed")

	log := zerolog.Ctx(ctx)
	var inErr *InputError
	switch {
	case errors.As(err, &inErr):
		log.Warn().Err(err).Str("stage", stage).Str("code", inErr.Code).Msg("roast request rejected")
		s.metrics.outcome(strings.ToLower(inErr.Code))
	case errors.Is(err, ErrUpstream):
		log.Error().Err(err).Str("stage", stage).Msg("generation service error")
		s.metrics.outcome("upstream_error")
	default:
		log.Error().Err(err).Str("stage", stage).Msg("unexpected roast failure")
		s.metrics.outcome("unexpected_error")
	}
	return err
}
