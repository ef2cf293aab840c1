package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/alissonkauanzx/planeta-projeto06/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type imageUploader interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

// Cloudinary 以 upload preset 上傳圖片
type Cloudinary struct {
	api    imageUploader
	preset string
}

var newCloudinary = cloudinary.NewFromParams

// NewCloudinary 依設定建立 Cloudinary 圖床
func NewCloudinary(cfg config.Cloudinary) (*Cloudinary, error) {
	if cfg.CloudName == "" || cfg.UploadPreset == "" {
		return nil, errors.New("cloudinary: cloud name 與 upload preset 必填")
	}
	cld, err := newCloudinary(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return &Cloudinary{api: &cld.Upload, preset: cfg.UploadPreset}, nil
}

// UploadImage 上傳並回傳 secure_url
func (c *Cloudinary) UploadImage(ctx context.Context, f *File) (string, error) {
	res, err := c.api.Upload(ctx, f.Body, uploader.UploadParams{UploadPreset: c.preset})
	if err != nil {
		return "", fmt.Errorf("UploadImage: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("UploadImage: %s", res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", errors.New("UploadImage: empty secure_url")
	}
	return res.SecureURL, nil
}
