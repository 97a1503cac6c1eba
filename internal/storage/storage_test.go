package storage

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garimajunejaa/jobportall/internal/common"
)

func header(contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "resume.pdf",
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestValidateFileAcceptsAllowedTypes(t *testing.T) {
	for _, contentType := range []string{"application/pdf", "image/jpeg", "image/png"} {
		assert.NoError(t, ValidateFile(header(contentType, 1024)), contentType)
	}
}

func TestValidateFileRejectsWrongType(t *testing.T) {
	err := ValidateFile(header("application/zip", 1024))
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeValidation))
}

func TestValidateFileRejectsOversized(t *testing.T) {
	err := ValidateFile(header("application/pdf", MaxFileSize+1))
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeValidation))

	assert.NoError(t, ValidateFile(header("application/pdf", MaxFileSize)))
}

func TestValidateFileRejectsNil(t *testing.T) {
	err := ValidateFile(nil)
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeValidation))
}
