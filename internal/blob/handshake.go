package blob

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alissonkauanzx/planeta-projeto06/internal/cache"
	"github.com/alissonkauanzx/planeta-projeto06/internal/database"
	"github.com/alissonkauanzx/planeta-projeto06/internal/media"
	"github.com/alissonkauanzx/planeta-projeto06/internal/model"
	"github.com/alissonkauanzx/planeta-projeto06/internal/store"
	"github.com/alissonkauanzx/planeta-projeto06/internal/worker"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	EventGenerateClientToken = "blob.generate-client-token"
	EventUploadCompleted     = "blob.upload-completed"

	completedKeyPrefix = "blob:completed:"
	completedTTL       = 24 * time.Hour
	recordTimeout      = 10 * time.Second
)

var (
	ErrUnknownEvent = errors.New("unknown blob event")

	validate         = validator.New()
	recordBlobUpload = store.RecordBlobUpload
	timeNow          = time.Now
)

// Request 交握請求外層
type Request struct {
	Type    string          `json:"type" validate:"required"`
	Payload json.RawMessage `json:"payload" validate:"required"`
}

type GenerateClientTokenPayload struct {
	Pathname      string  `json:"pathname" validate:"required"`
	CallbackURL   string  `json:"callbackUrl"`
	ClientPayload *string `json:"clientPayload"`
	Multipart     bool    `json:"multipart"`
}

// Blob 儲存端回報的檔案資訊
type Blob struct {
	URL                string `json:"url" validate:"required,url"`
	DownloadURL        string `json:"downloadUrl"`
	Pathname           string `json:"pathname" validate:"required"`
	ContentType        string `json:"contentType"`
	ContentDisposition string `json:"contentDisposition"`
}

type UploadCompletedPayload struct {
	Blob         Blob    `json:"blob"`
	TokenPayload *string `json:"tokenPayload"`
}

// Response 交握回應
type Response struct {
	Type        string `json:"type"`
	ClientToken string `json:"clientToken,omitempty"`
	Response    string `json:"response,omitempty"`
}

// Handshake 處理 token 請求與完成回呼
type Handshake struct {
	token  string
	db     database.DB
	cache  cache.Cache
	pool   worker.Pool
	logger *zap.Logger
}

func NewHandshake(readWriteToken string, db database.DB, c cache.Cache, pool worker.Pool, logger *zap.Logger) (*Handshake, error) {
	if _, err := StoreID(readWriteToken); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handshake{token: readWriteToken, db: db, cache: c, pool: pool, logger: logger}, nil
}

// Handle 依 type 分派；signature 只在完成回呼時檢查
func (h *Handshake) Handle(ctx context.Context, body []byte, signature string) (*Response, error) {
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("Handle: %w", err)
	}
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("Handle: %w", err)
	}

	switch req.Type {
	case EventGenerateClientToken:
		var p GenerateClientTokenPayload
		if err := json.Unmarshal(req.Payload, &p); err != nil {
			return nil, fmt.Errorf("Handle: %w", err)
		}
		return h.generate(p)
	case EventUploadCompleted:
		if err := VerifySignature(h.token, body, signature); err != nil {
			return nil, err
		}
		var p UploadCompletedPayload
		if err := json.Unmarshal(req.Payload, &p); err != nil {
			return nil, fmt.Errorf("Handle: %w", err)
		}
		return h.completed(ctx, p)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, req.Type)
}

func (h *Handshake) generate(p GenerateClientTokenPayload) (*Response, error) {
	if err := validate.Struct(p); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	payload := ClientTokenPayload{
		Pathname:            p.Pathname,
		MaximumSizeInBytes:  media.MaxFileSize,
		AllowedContentTypes: media.AllowedContentTypes,
		ValidUntil:          timeNow().Add(time.Hour).UnixMilli(),
	}
	if p.CallbackURL != "" {
		payload.OnUploadCompleted = &UploadCallback{CallbackURL: p.CallbackURL, TokenPayload: p.ClientPayload}
	}
	tok, err := GenerateClientToken(h.token, payload, timeNow())
	if err != nil {
		return nil, err
	}
	h.logger.Debug("blob client token issued", zap.String("pathname", p.Pathname))
	return &Response{Type: EventGenerateClientToken, ClientToken: tok}, nil
}

func (h *Handshake) completed(ctx context.Context, p UploadCompletedPayload) (*Response, error) {
	if err := validate.Struct(p.Blob); err != nil {
		return nil, fmt.Errorf("completed: %w", err)
	}
	h.logger.Info("upload completed", zap.String("url", p.Blob.URL))

	first, err := h.cache.SetNX(ctx, completedKeyPrefix+p.Blob.URL, timeNow().UnixMilli(), completedTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("completed: %w", err)
	}
	if !first {
		h.logger.Debug("duplicate upload completion ignored", zap.String("url", p.Blob.URL))
		return &Response{Type: EventUploadCompleted, Response: "ok"}, nil
	}

	rec := &model.BlobUpload{
		URL:          p.Blob.URL,
		Pathname:     p.Blob.Pathname,
		ContentType:  p.Blob.ContentType,
		TokenPayload: p.TokenPayload,
		CompletedAt:  timeNow().UTC(),
	}
	h.pool.Submit(func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := recordBlobUpload(jobCtx, h.db, rec); err != nil {
			h.logger.Error("record blob upload failed", zap.String("url", rec.URL), zap.Error(err))
		}
	})
	return &Response{Type: EventUploadCompleted, Response: "ok"}, nil
}
