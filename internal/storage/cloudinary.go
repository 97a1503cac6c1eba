package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/Garimajunejaa/jobportall/internal/common"
)

// CloudinaryUploader stores files under a per-upload UUID so user-supplied
// filenames never collide or leak into public IDs.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
}

func NewCloudinary(url string) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{client: client}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, r io.Reader, folder, filename string) (string, error) {
	publicID := uuid.NewString()
	if ext := strings.TrimPrefix(filepath.Ext(filename), "."); ext != "" {
		publicID = publicID + "_" + ext
	}
	resp, err := u.client.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		ResourceType: "auto",
	})
	if err != nil {
		return "", common.NewError(common.CodeInternal, "Failed to upload file", err)
	}
	if resp.Error.Message != "" {
		return "", common.NewError(common.CodeInternal, "Failed to upload file", nil)
	}
	return resp.SecureURL, nil
}
