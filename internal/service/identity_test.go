package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alissonkauanzx/planeta-projeto06/internal/cache"
	"github.com/alissonkauanzx/planeta-projeto06/internal/database"
	"github.com/alissonkauanzx/planeta-projeto06/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const adminID = "ADMIN-UID"

func newTestIdentity(c cache.Cache) *Identity {
	return NewIdentity(&database.FakeDB{}, c, "s", adminID, time.Hour, zap.NewNop())
}

func TestSignUp(t *testing.T) {
	t.Cleanup(restoreGlobals)
	fastBcrypt()
	ctx := context.Background()
	id := newTestIdentity(&cache.FakeCache{})

	_, err := id.SignUp(ctx, " ", "pw", "")
	require.ErrorIs(t, err, ErrValidation)
	_, err = id.SignUp(ctx, "a@b.com", "", "")
	require.ErrorIs(t, err, ErrValidation)

	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return &model.User{ID: "u1"}, nil
	}
	_, err = id.SignUp(ctx, "a@b.com", "pw", "")
	require.ErrorIs(t, err, ErrEmailTaken)

	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return nil, errors.New("db down")
	}
	_, err = id.SignUp(ctx, "a@b.com", "pw", "")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrEmailTaken)

	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return nil, pgx.ErrNoRows
	}
	createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
		return nil, &pgconn.PgError{Code: "23505"}
	}
	_, err = id.SignUp(ctx, "a@b.com", "pw", "")
	require.ErrorIs(t, err, ErrEmailTaken)

	createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
		return nil, errors.New("insert")
	}
	_, err = id.SignUp(ctx, "a@b.com", "pw", "")
	require.Error(t, err)

	var saved *model.User
	createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
		saved = u
		return u, nil
	}
	newID = func() string { return adminID }
	sess, err := id.SignUp(ctx, "  Ana@Example.COM ", "pw", "  Ana  ")
	require.NoError(t, err)
	require.Equal(t, "ana@example.com", saved.Email)
	require.Equal(t, "Ana", *saved.DisplayName)
	require.NoError(t, ComparePassword(saved.PasswordHash, "pw"))
	require.NotEmpty(t, sess.Token)
	require.True(t, sess.User.IsAdmin())

	claims, err := VerifyAccessToken("s", sess.Token)
	require.NoError(t, err)
	require.Equal(t, adminID, claims.UserID)
}

func TestSignIn(t *testing.T) {
	t.Cleanup(restoreGlobals)
	fastBcrypt()
	ctx := context.Background()
	id := newTestIdentity(&cache.FakeCache{})
	hash, _ := HashPassword("pw")

	_, err := id.SignIn(ctx, "", "pw")
	require.ErrorIs(t, err, ErrValidation)

	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return nil, pgx.ErrNoRows
	}
	_, err = id.SignIn(ctx, "a@b.com", "pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return nil, errors.New("db")
	}
	_, err = id.SignIn(ctx, "a@b.com", "pw")
	require.NotErrorIs(t, err, ErrInvalidCredentials)

	getUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
		require.Equal(t, "a@b.com", email)
		return &model.User{ID: "u1", Email: email, PasswordHash: hash}, nil
	}
	_, err = id.SignIn(ctx, "A@B.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	sess, err := id.SignIn(ctx, "A@B.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "u1", sess.User.ID)
	require.False(t, sess.User.IsAdmin())
}

func TestSignOutAndResolve(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()
	revoked := map[string]string{}
	c := &cache.FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			if v, ok := revoked[key]; ok {
				return redis.NewStringResult(v, nil)
			}
			return redis.NewStringResult("", redis.Nil)
		},
		SetFn: func(_ context.Context, key string, val any, ttl time.Duration) *redis.StatusCmd {
			require.Greater(t, ttl, time.Duration(0))
			revoked[key] = val.(string)
			return redis.NewStatusResult("OK", nil)
		},
	}
	id := newTestIdentity(c)

	newID = func() string { return "jti-9" }
	tok, _, err := IssueAccessToken("s", model.User{ID: "admin-uid"}, time.Hour)
	require.NoError(t, err)

	getUserByID = func(_ context.Context, _ database.DB, uid string) (*model.User, error) {
		return &model.User{ID: uid, Email: "root@example.com"}, nil
	}
	u, err := id.Resolve(ctx, tok)
	require.NoError(t, err)
	require.True(t, u.IsAdmin(), "admin uid compares case-insensitively")

	_, err = id.Resolve(ctx, "garbage")
	require.ErrorIs(t, err, ErrUnauthenticated)

	getUserByID = func(context.Context, database.DB, string) (*model.User, error) { return nil, pgx.ErrNoRows }
	_, err = id.Resolve(ctx, tok)
	require.ErrorIs(t, err, ErrUnauthenticated)

	getUserByID = func(context.Context, database.DB, string) (*model.User, error) { return nil, errors.New("db") }
	_, err = id.Resolve(ctx, tok)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUnauthenticated)

	require.ErrorIs(t, id.SignOut(ctx, "garbage"), ErrUnauthenticated)
	require.NoError(t, id.SignOut(ctx, tok))
	require.Contains(t, revoked, "revoked:jti-9")

	_, err = id.Resolve(ctx, tok)
	require.ErrorIs(t, err, ErrUnauthenticated)

	c.GetFn = func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("", errors.New("redis down"))
	}
	_, err = id.Resolve(ctx, tok)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUnauthenticated)

	c.SetFn = func(context.Context, string, any, time.Duration) *redis.StatusCmd {
		return redis.NewStatusResult("", errors.New("redis down"))
	}
	require.Error(t, id.SignOut(ctx, tok))
}
