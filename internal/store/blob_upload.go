package store

import (
	"context"
	"fmt"

	"github.com/alissonkauanzx/planeta-projeto06/internal/database"
	"github.com/alissonkauanzx/planeta-projeto06/internal/model"
)

// RecordBlobUpload 同一 URL 重複回報時不覆寫
func RecordBlobUpload(ctx context.Context, db database.DB, b *model.BlobUpload) error {
	_, err := db.Exec(ctx,
		`INSERT INTO blob_uploads (url, pathname, content_type, token_payload)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (url) DO NOTHING`,
		b.URL,
		b.Pathname,
		b.ContentType,
		b.TokenPayload,
	)
	if err != nil {
		return fmt.Errorf("RecordBlobUpload: %w", err)
	}
	return nil
}
