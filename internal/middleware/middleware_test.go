package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alissonkauanzx/planeta-projeto06/internal/model"
	"github.com/alissonkauanzx/planeta-projeto06/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	gotToken string
	user     *model.User
	err      error
	calls    int
}

func (f *fakeResolver) Resolve(_ context.Context, token string) (*model.User, error) {
	f.calls++
	f.gotToken = token
	return f.user, f.err
}

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBearerToken(t *testing.T) {
	for _, h := range []string{"", "BadHeader", "Basic abc", "Bearer "} {
		ctx, _ := newContext(h)
		_, err := bearerToken(ctx)
		require.Error(t, err, h)
	}
	ctx, _ := newContext("bearer tok")
	tok, err := bearerToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok", tok)
}

func TestRequireAuth(t *testing.T) {
	r := &fakeResolver{user: &model.User{ID: "u1"}}

	// success path
	ctx, rec := newContext("Bearer good")
	called := false
	handler := RequireAuth(r, nil)(func(c echo.Context) error {
		called = true
		require.Equal(t, "u1", CurrentUser(c).ID)
		require.Equal(t, "good", CurrentToken(c))
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "good", r.gotToken)
	require.Equal(t, 1, r.calls)

	// missing token
	ctx, rec = newContext("")
	called = false
	require.NoError(t, RequireAuth(r, nil)(func(echo.Context) error { called = true; return nil })(ctx))
	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "missing token")

	// revoked / invalid
	r.err = service.ErrUnauthenticated
	ctx, rec = newContext("Bearer revoked")
	require.NoError(t, RequireAuth(r, nil)(func(echo.Context) error { called = true; return nil })(ctx))
	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// backend failure
	r.err = errors.New("redis down")
	ctx, rec = newContext("Bearer x")
	require.NoError(t, RequireAuth(r, nil)(func(echo.Context) error { called = true; return nil })(ctx))
	require.False(t, called)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCurrentUserAbsent(t *testing.T) {
	ctx, _ := newContext("")
	require.Nil(t, CurrentUser(ctx))
	require.Empty(t, CurrentToken(ctx))
}
