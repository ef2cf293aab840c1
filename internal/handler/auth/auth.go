// Package auth 註冊、登入、登出與目前使用者
package auth

import (
	"context"

	"github.com/alissonkauanzx/planeta-projeto06/internal/service"
)

// Identity 身分提供者
type Identity interface {
	SignUp(ctx context.Context, email, password, displayName string) (*service.Session, error)
	SignIn(ctx context.Context, email, password string) (*service.Session, error)
	SignOut(ctx context.Context, token string) error
}
