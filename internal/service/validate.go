package service

import (
	"strings"

	"roastapi/internal/model"
)

// ValidateUpload rejects uploads that are not named *.pdf or exceed maxBytes.
// The larger of the declared and the actual size is checked.
func ValidateUpload(file model.UploadedFile, maxBytes int64) error {
	if file.Filename == "" || !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return ErrInvalidFileType
	}
	size := file.Size
	if n := int64(len(file.Content)); n > size {
		size = n
	}
	if size > maxBytes {
		return FileTooLarge(maxBytes)
	}
	return nil
}
