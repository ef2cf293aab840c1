package auth

import (
	"fmt"
	"net/http"

	"github.com/alissonkauanzx/planeta-projeto06/internal/api"
	"github.com/alissonkauanzx/planeta-projeto06/internal/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SignUpHandler 建立帳號後直接登入
// @Summary     註冊
// @Description Email 會轉為小寫；成功後回傳與登入相同的 session
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Accept      json
// @Produce     json
// @Param       email        formData string true  "使用者 Email"
// @Param       password     formData string true  "密碼（至少 6 字元）"
// @Param       display_name formData string false "顯示名稱"
// @Success     201 {object} api.SessionResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/signup [post]
func SignUpHandler(id Identity, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignUpRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: fmt.Sprintf("無效的表單資料: %v", err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		sess, err := id.SignUp(c.Request().Context(), req.Email, req.Password, req.DisplayName)
		if err != nil {
			return handler.WriteError(c, logger, err)
		}
		return c.JSON(http.StatusCreated, sessionResponse(sess))
	}
}
