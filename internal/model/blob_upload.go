// File: internal/model/blob_upload.go
package model

import "time"

// BlobUpload 由 blob 服務回報完成的上傳紀錄
type BlobUpload struct {
	ID           int64     `db:"id" json:"id"`
	URL          string    `db:"url" json:"url"`
	Pathname     string    `db:"pathname" json:"pathname"`
	ContentType  string    `db:"content_type" json:"content_type"`
	TokenPayload *string   `db:"token_payload" json:"token_payload,omitempty"`
	CompletedAt  time.Time `db:"completed_at" json:"completed_at"`
}
