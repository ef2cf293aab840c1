package projects

import (
	"net/http"

	"github.com/alissonkauanzx/planeta-projeto06/internal/api"
	"github.com/alissonkauanzx/planeta-projeto06/internal/handler"
	"github.com/alissonkauanzx/planeta-projeto06/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListHandler 新到舊列出專案，可依搜尋字串與分類過濾
// @Summary     List projects
// @Tags        projects
// @Produce     json
// @Param       search   query string false "標題或描述關鍵字"
// @Param       category query string false "分類，all 表示全部"
// @Success     200 {array} api.ProjectResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects [get]
func ListHandler(svc Service, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := svc.List(c.Request().Context(), c.QueryParam("search"), c.QueryParam("category"))
		if err != nil {
			return handler.WriteError(c, logger, err)
		}
		canEdit := canEditFor(middleware.CurrentUser(c))
		out := make([]api.ProjectResponse, 0, len(list))
		for _, p := range list {
			out = append(out, api.NewProjectResponse(p, canEdit))
		}
		return c.JSON(http.StatusOK, out)
	}
}
