package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PageSeparator joins the text of consecutive pages.
const PageSeparator = "\n"

// PDFExtractor extracts text from PDF bytes held in memory; nothing touches disk.
type PDFExtractor struct{}

// NewPDFExtractor constructs a PDFExtractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract returns the text of every page in document order joined by PageSeparator.
// Extraction is all-or-nothing: any page failure fails the whole document.
func (e *PDFExtractor) Extract(ctx context.Context, data []byte) (text string, err error) {
	// ledongthuc/pdf panics on some corrupt inputs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: parser panic: %v", ErrMalformedPDF, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedPDF, err)
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrMalformedPDF, i, err)
		}
		pages = append(pages, pageText)
	}

	text = strings.Join(pages, PageSeparator)
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}
