package projects

import (
	"net/http"

	"github.com/alissonkauanzx/planeta-projeto06/internal/handler"
	"github.com/alissonkauanzx/planeta-projeto06/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DeleteHandler 刪除專案（擁有者或管理員）
// @Summary     Delete a project
// @Tags        projects
// @Param       id path string true "專案 ID"
// @Success     204
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/{id} [delete]
func DeleteHandler(svc Service, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := svc.Delete(c.Request().Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
			return handler.WriteError(c, logger, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
