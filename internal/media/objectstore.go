package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alissonkauanzx/planeta-projeto06/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type objectPutter interface {
	PutObject(ctx context.Context, bucket, object string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// S3Store 透過 S3 協定寫入 bucket，回傳公開 URL
type S3Store struct {
	client  objectPutter
	bucket  string
	baseURL string
}

var minioNew = minio.New

// NewS3Store 依設定建立物件儲存
func NewS3Store(cfg config.Storage) (*S3Store, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, errors.New("storage: endpoint 與 bucket 必填")
	}
	client, err := minioNew(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	return &S3Store{client: client, bucket: cfg.Bucket, baseURL: publicBase(cfg)}, nil
}

func publicBase(cfg config.Storage) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + cfg.Endpoint + "/" + cfg.Bucket
}

// PublicURL bucket 內物件的公開網址
func (s *S3Store) PublicURL(key string) string {
	return s.baseURL + "/" + key
}

// UploadObject 不覆寫已存在物件由 key 的時間戳保證
func (s *S3Store) UploadObject(ctx context.Context, key string, f *File, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, f.Body, f.Size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "max-age=3600",
	})
	if err != nil {
		return "", fmt.Errorf("UploadObject %s: %w", key, err)
	}
	return s.PublicURL(key), nil
}
