// Package imagestore uploads images to the external image host and returns
// their public URLs.
package imagestore

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/example/foodcourt/pkg/config"
)

type Uploader interface {
	Upload(ctx context.Context, data []byte) (string, error)
}

type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cfg *config.CloudinaryConfig) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary client: %w", err)
	}
	return &CloudinaryUploader{client: client, folder: cfg.Folder}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, data []byte) (string, error) {
	resp, err := u.client.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder: u.folder,
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return resp.SecureURL, nil
}
