package service

import (
	"errors"
	"fmt"
)

// InputError is a failure caused by the uploaded file. Its Message is safe to show to the caller.
type InputError struct {
	Code    string
	Message string
	Err     error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Is matches any InputError with the same Code, so sentinels survive wrapping.
func (e *InputError) Is(target error) bool {
	t, ok := target.(*InputError)
	return ok && t.Code == e.Code
}

var (
	ErrFileRequired    = &InputError{Code: "FILE_REQUIRED", Message: "A PDF file is required in the 'file' field."}
	ErrInvalidFileType = &InputError{Code: "INVALID_FILE_TYPE", Message: "Only PDF files are accepted."}
	ErrFileTooLarge    = &InputError{Code: "FILE_TOO_LARGE", Message: "File size must be less than 10MB."}
	ErrUnreadablePDF   = &InputError{Code: "UNREADABLE_PDF", Message: "Failed to read PDF file. Ensure it's a valid PDF."}
	ErrNoText          = &InputError{Code: "NO_TEXT", Message: "Could not extract any text from the PDF."}
)

// ErrUpstream marks a failed call to the text generation service.
var ErrUpstream = errors.New("generation service unavailable")

func wrapInput(base *InputError, cause error) *InputError {
	return &InputError{Code: base.Code, Message: base.Message, Err: cause}
}

// FileTooLarge returns the client error for an upload over maxBytes, phrased for that limit.
func FileTooLarge(maxBytes int64) *InputError {
	const mib = 1 << 20
	if maxBytes%mib == 0 {
		return &InputError{Code: ErrFileTooLarge.Code, Message: fmt.Sprintf("File size must be less than %dMB.", maxBytes/mib)}
	}
	return &InputError{Code: ErrFileTooLarge.Code, Message: fmt.Sprintf("File size must be less than %d bytes.", maxBytes)}
}
