package projects

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/alissonkauanzx/planeta-projeto06/internal/api"
	"github.com/alissonkauanzx/planeta-projeto06/internal/handler"
	"github.com/alissonkauanzx/planeta-projeto06/internal/media"
	"github.com/alissonkauanzx/planeta-projeto06/internal/middleware"
	"github.com/alissonkauanzx/planeta-projeto06/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func parseODS(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: ODS inválido %q", service.ErrValidation, raw)
	}
	return &n, nil
}

// formFile 取出 multipart 檔案，未附檔時回傳 nil
func formFile(c echo.Context, field string) (*media.File, func(), error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, fmt.Errorf("%w: %s: %v", service.ErrValidation, field, err)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, fmt.Errorf("open %s: %w", field, err)
	}
	return &media.File{Name: fh.Filename, Size: fh.Size, Body: f}, func() { _ = f.Close() }, nil
}

// CreateHandler 送出新專案（multipart）
// @Summary     Submit a project
// @Description 依序上傳圖片、影片與 PDF 後寫入一筆專案；上傳失敗時已上傳的檔案不回滾
// @Tags        projects
// @Accept      multipart/form-data
// @Produce     json
// @Param       title       formData string true  "標題"
// @Param       description formData string true  "描述"
// @Param       category    formData string false "分類，預設 Educação"
// @Param       ods         formData int    false "ODS 1-17"
// @Param       image       formData file   false "圖片 (jpeg/png/gif/webp)"
// @Param       video       formData file   false "影片 (mp4/webm/ogg)"
// @Param       pdf         formData file   false "PDF"
// @Success     201 {object} api.ProjectResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     502 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects [post]
func CreateHandler(svc Service, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ods, err := parseODS(c.FormValue("ods"))
		if err != nil {
			return handler.WriteError(c, logger, err)
		}
		form := service.ProjectForm{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
			Category:    c.FormValue("category"),
			ODS:         ods,
		}

		for _, slot := range []struct {
			field string
			dst   **media.File
		}{
			{"image", &form.Image},
			{"video", &form.Video},
			{"pdf", &form.PDF},
		} {
			f, closeFn, err := formFile(c, slot.field)
			defer closeFn()
			if err != nil {
				return handler.WriteError(c, logger, err)
			}
			*slot.dst = f
		}

		user := middleware.CurrentUser(c)
		p, err := svc.Submit(c.Request().Context(), user, form)
		if err != nil {
			return handler.WriteError(c, logger, err)
		}
		return c.JSON(http.StatusCreated, api.NewProjectResponse(*p, canEditFor(user)))
	}
}
