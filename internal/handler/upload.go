package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/alissonkauanzx/planeta-projeto06/internal/api"
	"github.com/alissonkauanzx/planeta-projeto06/internal/blob"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// BlobHandshake blob token 交握
type BlobHandshake interface {
	Handle(ctx context.Context, body []byte, signature string) (*blob.Response, error)
}

// UploadHandler blob 儲存的 client token 與完成回呼，任何失敗一律 400
// @Summary     Blob upload handshake
// @Description 處理 blob.generate-client-token 與 blob.upload-completed
// @Tags        upload
// @Accept      json
// @Produce     json
// @Param       x-vercel-signature header string false "完成回呼簽章"
// @Success     200 {object} blob.Response
// @Failure     400 {object} api.UploadErrorResponse
// @Router      /upload [post]
func UploadHandler(h BlobHandshake, logger *zap.Logger) echo.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err == nil {
			var resp *blob.Response
			resp, err = h.Handle(c.Request().Context(), body, c.Request().Header.Get("x-vercel-signature"))
			if err == nil {
				return c.JSON(http.StatusOK, resp)
			}
		}
		logger.Warn("upload handshake failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, api.UploadErrorResponse{Error: "Upload failed"})
	}
}
