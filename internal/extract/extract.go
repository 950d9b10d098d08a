// Package extract converts uploaded documents into plain text.
package extract

import (
	"context"
	"errors"
)

var (
	// ErrMalformedPDF is returned when the bytes cannot be parsed as a PDF document.
	ErrMalformedPDF = errors.New("malformed pdf")
	// ErrNoText is returned when a PDF parses but every page is blank.
	ErrNoText = errors.New("no extractable text")
)

// Extractor turns raw document bytes into text. Implementations are stateless and safe for
// concurrent use.
type Extractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}
