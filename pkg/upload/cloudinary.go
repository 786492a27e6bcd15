// Package upload stores appointment attachments in Cloudinary.
package upload

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// Attachment is one uploaded file.
type Attachment struct {
	Filename string
	Body     io.Reader
}

// Uploader accepts a binary blob and returns a durable URL.
type Uploader interface {
	Upload(ctx context.Context, att Attachment, publicID string) (string, error)
}

type cloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
	log    *zap.Logger
}

func NewCloudinaryUploader(cloudName, apiKey, apiSecret, folder string, log *zap.Logger) (Uploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}

	return &cloudinaryUploader{
		cld:    cld,
		folder: folder,
		log:    log.With(zap.String("component", "uploader")),
	}, nil
}

func (u *cloudinaryUploader) Upload(ctx context.Context, att Attachment, publicID string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, att.Body, uploader.UploadParams{
		Folder:   u.folder,
		PublicID: publicID,
	})
	if err != nil {
		u.log.Error("Failed to upload attachment",
			zap.Error(err),
			zap.String("filename", att.Filename),
		)
		return "", fmt.Errorf("upload attachment %s: %w", att.Filename, err)
	}

	// The SDK reports API-level rejections (bad credentials, invalid
	// file) inside the response body with a nil error.
	if resp.Error.Message != "" {
		u.log.Error("Cloudinary rejected attachment",
			zap.String("filename", att.Filename),
			zap.String("message", resp.Error.Message),
		)
		return "", fmt.Errorf("upload attachment %s: %s", att.Filename, resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("upload attachment %s: no URL in response", att.Filename)
	}

	u.log.Info("Attachment uploaded",
		zap.String("filename", att.Filename),
		zap.String("url", resp.SecureURL),
	)
	return resp.SecureURL, nil
}
