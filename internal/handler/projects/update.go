package projects

import (
	"fmt"
	"net/http"

	"github.com/alissonkauanzx/planeta-projeto06/internal/api"
	"github.com/alissonkauanzx/planeta-projeto06/internal/handler"
	"github.com/alissonkauanzx/planeta-projeto06/internal/middleware"
	"github.com/alissonkauanzx/planeta-projeto06/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UpdateHandler 編輯標題、描述、分類與 ODS
// @Summary     Update a project
// @Tags        projects
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id   path string                   true "專案 ID"
// @Param       body body api.UpdateProjectRequest true "可編輯欄位"
// @Success     200 {object} api.ProjectResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/{id} [put]
func UpdateHandler(svc Service, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateProjectRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: fmt.Sprintf("無效的表單資料: %v", err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user := middleware.CurrentUser(c)
		p, err := svc.Update(c.Request().Context(), user, c.Param("id"), service.ProjectForm{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			ODS:         req.ODS,
		})
		if err != nil {
			return handler.WriteError(c, logger, err)
		}
		return c.JSON(http.StatusOK, api.NewProjectResponse(*p, canEditFor(user)))
	}
}
