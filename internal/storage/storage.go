package storage

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/Garimajunejaa/jobportall/internal/common"
)

// MaxFileSize is the upload cap for resumes, photos and logos.
const MaxFileSize = 5 << 20

// Uploader streams a file to external object storage and returns the URL it
// will be served from. Implementations must not touch the database.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, folder, filename string) (string, error)
}

var allowedTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// ValidateFile rejects uploads before any bytes leave the process. The
// Content-Type header is client-supplied, which matches what the multipart
// middleware in the original stack enforced.
func ValidateFile(header *multipart.FileHeader) error {
	if header == nil {
		return common.NewError(common.CodeValidation, "No file uploaded", nil)
	}
	if header.Size > MaxFileSize {
		return common.NewError(common.CodeValidation, "File exceeds the 5MB limit", nil)
	}
	if !allowedTypes[header.Header.Get("Content-Type")] {
		return common.NewError(common.CodeValidation, "Only PDF, JPEG and PNG files are allowed", nil)
	}
	return nil
}
