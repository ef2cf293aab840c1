package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alissonkauanzx/planeta-projeto06/internal/cache"
	"github.com/alissonkauanzx/planeta-projeto06/internal/database"
	"github.com/alissonkauanzx/planeta-projeto06/internal/model"
	"github.com/alissonkauanzx/planeta-projeto06/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const revokedKeyPrefix = "revoked:"

var (
	getUserByID    = store.GetUserByID
	getUserByEmail = store.GetUserByEmail
	createUser     = store.CreateUser
)

// Session 登入結果
type Session struct {
	User      *model.User `json:"user"`
	Token     string      `json:"access_token"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Identity 本地身分提供者：users 表 + bcrypt + JWT，登出撤銷記在 Redis
type Identity struct {
	db       database.DB
	cache    cache.Cache
	secret   string
	adminUID string
	ttl      time.Duration
	logger   *zap.Logger
}

func NewIdentity(db database.DB, c cache.Cache, secret, adminUID string, ttl time.Duration, logger *zap.Logger) *Identity {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Identity{db: db, cache: c, secret: secret, adminUID: adminUID, ttl: ttl, logger: logger}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp 建立帳號並直接登入
func (s *Identity) SignUp(ctx context.Context, email, password, displayName string) (*Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: Preencha e-mail e senha.", ErrValidation)
	}

	if _, err := getUserByEmail(ctx, s.db, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("SignUp: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("SignUp: %w", err)
	}

	u := &model.User{
		ID:           newID(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    timeNow().UTC(),
	}
	if name := strings.TrimSpace(displayName); name != "" {
		u.DisplayName = &name
	}

	created, err := createUser(ctx, s.db, u)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("SignUp: %w", err)
	}

	s.logger.Info("user signed up", zap.String("user_id", created.ID))
	return s.issue(*created)
}

// SignIn 以 email 與密碼登入
func (s *Identity) SignIn(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: Preencha e-mail e senha.", ErrValidation)
	}

	u, err := getUserByEmail(ctx, s.db, email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("SignIn: %w", err)
	}
	if err := ComparePassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(*u)
}

func (s *Identity) issue(u model.User) (*Session, error) {
	token, claims, err := IssueAccessToken(s.secret, u, s.ttl)
	if err != nil {
		return nil, err
	}
	u = u.WithAdminUID(s.adminUID)
	return &Session{User: &u, Token: token, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// SignOut 把 token 的 jti 放進撤銷名單直到過期
func (s *Identity) SignOut(ctx context.Context, token string) error {
	claims, err := VerifyAccessToken(s.secret, token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	ttl := claims.ExpiresAt.Time.Sub(timeNow())
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.Set(ctx, revokedKeyPrefix+claims.ID, claims.UserID, ttl).Err(); err != nil {
		return fmt.Errorf("SignOut: %w", err)
	}
	return nil
}

// Resolve 將 bearer token 解析為目前使用者
func (s *Identity) Resolve(ctx context.Context, token string) (*model.User, error) {
	claims, err := VerifyAccessToken(s.secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	switch err := s.cache.Get(ctx, revokedKeyPrefix+claims.ID).Err(); {
	case err == nil:
		return nil, fmt.Errorf("%w: token revoked", ErrUnauthenticated)
	case !errors.Is(err, redis.Nil):
		return nil, fmt.Errorf("Resolve: %w", err)
	}

	u, err := getUserByID(ctx, s.db, claims.UserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: user not found", ErrUnauthenticated)
	}
	if err != nil {
		return nil, fmt.Errorf("Resolve: %w", err)
	}
	withAdmin := u.WithAdminUID(s.adminUID)
	return &withAdmin, nil
}
