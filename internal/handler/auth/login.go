// File: internal/handler/auth/login.go
package auth

import (
	"fmt"
	"net/http"

	"github.com/alissonkauanzx/planeta-projeto06/internal/api"
	"github.com/alissonkauanzx/planeta-projeto06/internal/handler"
	"github.com/alissonkauanzx/planeta-projeto06/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func sessionResponse(s *service.Session) api.SessionResponse {
	return api.SessionResponse{
		AccessToken: s.Token,
		TokenType:   "Bearer",
		ExpiresAt:   s.ExpiresAt,
		User:        api.NewUserResponse(s.User),
	}
}

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與到期時間
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Accept      json
// @Produce     json
// @Param       email    formData string true "使用者 Email"
// @Param       password formData string true "使用者密碼"
// @Success     200      {object} api.SessionResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     401      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(id Identity, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: fmt.Sprintf("無效的表單資料: %v", err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		sess, err := id.SignIn(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return handler.WriteError(c, logger, err)
		}
		return c.JSON(http.StatusOK, sessionResponse(sess))
	}
}
