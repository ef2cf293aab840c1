// Package comments 專案留言
package comments

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/alissonkauanzx/planeta-projeto06/internal/api"
	"github.com/alissonkauanzx/planeta-projeto06/internal/handler"
	"github.com/alissonkauanzx/planeta-projeto06/internal/middleware"
	"github.com/alissonkauanzx/planeta-projeto06/internal/model"
	"github.com/alissonkauanzx/planeta-projeto06/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Service 留言工作流程
type Service interface {
	List(ctx context.Context, projectID string) ([]model.Comment, error)
	Add(ctx context.Context, user *model.User, projectID, content string) (*model.Comment, error)
	Delete(ctx context.Context, user *model.User, projectID string, commentID int64) ([]model.Comment, error)
}

func canEditFor(user *model.User) func(string) bool {
	return func(ownerID string) bool { return service.CanEdit(user, ownerID) }
}

// ListHandler 依時間由舊到新列出留言
// @Summary     List comments
// @Tags        comments
// @Produce     json
// @Param       id path string true "專案 ID"
// @Success     200 {array} api.CommentResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/{id}/comments [get]
func ListHandler(svc Service, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := svc.List(c.Request().Context(), c.Param("id"))
		if err != nil {
			return handler.WriteError(c, logger, err)
		}
		return c.JSON(http.StatusOK, api.NewCommentResponses(list, canEditFor(middleware.CurrentUser(c))))
	}
}

// AddHandler 新增留言
// @Summary     Add a comment
// @Tags        comments
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id   path string             true "專案 ID"
// @Param       body body api.CommentRequest true "留言內容"
// @Success     201 {object} api.CommentResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/{id}/comments [post]
func AddHandler(svc Service, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CommentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: fmt.Sprintf("無效的表單資料: %v", err)})
		}
		user := middleware.CurrentUser(c)
		cm, err := svc.Add(c.Request().Context(), user, c.Param("id"), req.Content)
		if err != nil {
			return handler.WriteError(c, logger, err)
		}
		return c.JSON(http.StatusCreated, api.NewCommentResponse(*cm, canEditFor(user)))
	}
}

// DeleteHandler 刪除留言，回傳刪除後的留言串
// @Summary     Delete a comment
// @Tags        comments
// @Produce     json
// @Param       id         path string true "專案 ID"
// @Param       comment_id path int    true "留言 ID"
// @Success     200 {array} api.CommentResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/{id}/comments/{comment_id} [delete]
func DeleteHandler(svc Service, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid comment id"})
		}
		user := middleware.CurrentUser(c)
		thread, err := svc.Delete(c.Request().Context(), user, c.Param("id"), commentID)
		if err != nil {
			return handler.WriteError(c, logger, err)
		}
		return c.JSON(http.StatusOK, api.NewCommentResponses(thread, canEditFor(user)))
	}
}
