package auth

import (
	"net/http"

	"github.com/alissonkauanzx/planeta-projeto06/internal/api"
	"github.com/alissonkauanzx/planeta-projeto06/internal/handler"
	"github.com/alissonkauanzx/planeta-projeto06/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LogoutHandler 撤銷目前的 token
// @Summary     登出
// @Tags        auth
// @Success     204
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/logout [post]
func LogoutHandler(id Identity, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := id.SignOut(c.Request().Context(), middleware.CurrentToken(c)); err != nil {
			return handler.WriteError(c, logger, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// MeHandler 目前使用者，含推導出的 is_admin
// @Summary     目前使用者
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/me [get]
func MeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		u := middleware.CurrentUser(c)
		if u == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "usuário não autenticado"})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(u))
	}
}
