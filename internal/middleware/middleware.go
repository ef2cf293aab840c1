package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/alissonkauanzx/planeta-projeto06/internal/api"
	"github.com/alissonkauanzx/planeta-projeto06/internal/model"
	"github.com/alissonkauanzx/planeta-projeto06/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	ContextUserKey  = "user"
	ContextTokenKey = "token"
)

// Resolver 將 bearer token 轉成使用者
type Resolver interface {
	Resolve(ctx context.Context, token string) (*model.User, error)
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header format")
	}
	return parts[1], nil
}

// RequireAuth 每個請求解析一次目前使用者並放進 context
func RequireAuth(r Resolver, logger *zap.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: err.Error()})
			}
			user, err := r.Resolve(c.Request().Context(), token)
			if errors.Is(err, service.ErrUnauthenticated) {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: service.ErrUnauthenticated.Error()})
			}
			if err != nil {
				logger.Error("resolve user failed", zap.Error(err))
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal error"})
			}
			c.Set(ContextUserKey, user)
			c.Set(ContextTokenKey, token)
			return next(c)
		}
	}
}

// CurrentUser 取得 RequireAuth 放入的使用者，未登入回傳 nil
func CurrentUser(c echo.Context) *model.User {
	u, _ := c.Get(ContextUserKey).(*model.User)
	return u
}

// CurrentToken 取得本次請求的 bearer token
func CurrentToken(c echo.Context) string {
	t, _ := c.Get(ContextTokenKey).(string)
	return t
}
