package projects

import (
	"net/http"

	"github.com/alissonkauanzx/planeta-projeto06/internal/api"
	"github.com/alissonkauanzx/planeta-projeto06/internal/handler"
	"github.com/alissonkauanzx/planeta-projeto06/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// GetHandler 專案詳情與留言，瀏覽數加一
// @Summary     Get a project
// @Tags        projects
// @Produce     json
// @Param       id path string true "專案 ID"
// @Success     200 {object} api.ProjectResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/{id} [get]
func GetHandler(svc Service, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := svc.Detail(c.Request().Context(), c.Param("id"))
		if err != nil {
			return handler.WriteError(c, logger, err)
		}
		return c.JSON(http.StatusOK, api.NewProjectResponse(*p, canEditFor(middleware.CurrentUser(c))))
	}
}
