// Package llm wraps third-party text generation behind a minimal capability interface.
package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("empty model response")

// Generator produces text for a prompt with a single call. Implementations must not retry.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
