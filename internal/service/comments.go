package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alissonkauanzx/planeta-projeto06/internal/database"
	"github.com/alissonkauanzx/planeta-projeto06/internal/model"
	"github.com/alissonkauanzx/planeta-projeto06/internal/store"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const anonymousCommenter = "Anônimo"

var (
	listComments  = store.ListComments
	createComment = store.CreateComment
	deleteComment = store.DeleteComment
)

// Comments 專案留言串
type Comments struct {
	db     database.DB
	logger *zap.Logger
}

func NewComments(db database.DB, logger *zap.Logger) *Comments {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Comments{db: db, logger: logger}
}

// List 依建立時間由舊到新；專案不存在時回 ErrNotFound
func (s *Comments) List(ctx context.Context, projectID string) ([]model.Comment, error) {
	if _, err := findProject(ctx, s.db, projectID); err != nil {
		return nil, err
	}
	comments, err := listComments(ctx, s.db, projectID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return comments, nil
}

// Add 新增一則留言並回傳寫入後的資料
func (s *Comments) Add(ctx context.Context, user *model.User, projectID, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: Login e comentário são necessários.", ErrValidation)
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}

	if _, err := findProject(ctx, s.db, projectID); err != nil {
		return nil, err
	}

	c, err := createComment(ctx, s.db, &model.Comment{
		ProjectID:  projectID,
		UserID:     user.ID,
		AuthorName: user.AuthorName(anonymousCommenter),
		Content:    content,
		CreatedAt:  timeNow().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	s.logger.Info("comment added",
		zap.String("project_id", projectID),
		zap.Int64("comment_id", c.ID),
		zap.String("user_id", user.ID),
	)
	return c, nil
}

// Delete 刪除一則留言，回傳移除該筆後的留言串
func (s *Comments) Delete(ctx context.Context, user *model.User, projectID string, commentID int64) ([]model.Comment, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}
	if _, err := findProject(ctx, s.db, projectID); err != nil {
		return nil, err
	}
	thread, err := listComments(ctx, s.db, projectID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersist, err)
	}

	var target *model.Comment
	for i := range thread {
		if thread[i].ID == commentID {
			target = &thread[i]
			break
		}
	}
	if target == nil {
		return nil, ErrNotFound
	}
	if !CanEdit(user, target.UserID) {
		return nil, fmt.Errorf("%w: Você só pode apagar seus próprios comentários.", ErrForbidden)
	}

	err = deleteComment(ctx, s.db, commentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	s.logger.Info("comment deleted",
		zap.String("project_id", projectID),
		zap.Int64("comment_id", commentID),
		zap.String("user_id", user.ID),
	)
	return RemoveComment(thread, commentID), nil
}

// RemoveComment 回傳去掉第一筆相符 id 的新切片
func RemoveComment(thread []model.Comment, id int64) []model.Comment {
	out := make([]model.Comment, 0, len(thread))
	removed := false
	for _, c := range thread {
		if !removed && c.ID == id {
			removed = true
			continue
		}
		out = append(out, c)
	}
	return out
}
