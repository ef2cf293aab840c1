package comments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alissonkauanzx/planeta-projeto06/internal/api"
	"github.com/alissonkauanzx/planeta-projeto06/internal/middleware"
	"github.com/alissonkauanzx/planeta-projeto06/internal/model"
	"github.com/alissonkauanzx/planeta-projeto06/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type errBinder struct{}

func (errBinder) Bind(any, echo.Context) error { return errors.New("bind") }

type fakeService struct {
	thread     []model.Comment
	gotContent string
	gotDelete  int64
	err        error
}

func (f *fakeService) List(context.Context, string) ([]model.Comment, error) {
	return f.thread, f.err
}

func (f *fakeService) Add(_ context.Context, u *model.User, projectID, content string) (*model.Comment, error) {
	f.gotContent = content
	if f.err != nil {
		return nil, f.err
	}
	return &model.Comment{ID: 7, ProjectID: projectID, UserID: u.ID, Content: content}, nil
}

func (f *fakeService) Delete(_ context.Context, _ *model.User, _ string, id int64) ([]model.Comment, error) {
	f.gotDelete = id
	if f.err != nil {
		return nil, f.err
	}
	return service.RemoveComment(f.thread, id), nil
}

func newCtx(e *echo.Echo, method, body string, user *model.User, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(middleware.ContextUserKey, user)
	}
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

func TestListHandler(t *testing.T) {
	e := echo.New()
	svc := &fakeService{thread: []model.Comment{{ID: 1, UserID: "a"}, {ID: 2, UserID: "b"}}}

	c, rec := newCtx(e, http.MethodGet, "", &model.User{ID: "b"}, "id", "p1")
	require.NoError(t, ListHandler(svc, nil)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	var out []api.CommentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.False(t, out[0].CanEdit)
	require.True(t, out[1].CanEdit)

	svc.err = service.ErrPersist
	c, rec = newCtx(e, http.MethodGet, "", nil, "id", "p1")
	require.NoError(t, ListHandler(svc, nil)(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAddHandler(t *testing.T) {
	e := echo.New()
	svc := &fakeService{}

	c, rec := newCtx(e, http.MethodPost, `{"content":"Nice!"}`, &model.User{ID: "b"}, "id", "p1")
	require.NoError(t, AddHandler(svc, nil)(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "Nice!", svc.gotContent)
	require.Contains(t, rec.Body.String(), `"can_edit":true`)

	svc.err = service.ErrValidation
	c, rec = newCtx(e, http.MethodPost, `{"content":""}`, &model.User{ID: "b"}, "id", "p1")
	require.NoError(t, AddHandler(svc, nil)(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	e.Binder = errBinder{}
	c, rec = newCtx(e, http.MethodPost, `{}`, &model.User{ID: "b"}, "id", "p1")
	require.NoError(t, AddHandler(svc, nil)(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteHandler(t *testing.T) {
	e := echo.New()
	svc := &fakeService{thread: []model.Comment{{ID: 1}, {ID: 2}, {ID: 3}}}

	c, rec := newCtx(e, http.MethodDelete, "", &model.User{ID: "a"}, "id", "p1", "comment_id", "2")
	require.NoError(t, DeleteHandler(svc, nil)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(2), svc.gotDelete)
	var out []api.CommentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 2)

	c, rec = newCtx(e, http.MethodDelete, "", &model.User{ID: "a"}, "id", "p1", "comment_id", "abc")
	require.NoError(t, DeleteHandler(svc, nil)(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	svc.err = service.ErrForbidden
	c, rec = newCtx(e, http.MethodDelete, "", &model.User{ID: "a"}, "id", "p1", "comment_id", "1")
	require.NoError(t, DeleteHandler(svc, nil)(c))
	require.Equal(t, http.StatusForbidden, rec.Code)
}
