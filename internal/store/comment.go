package store

import (
	"context"
	"fmt"

	"github.com/alissonkauanzx/planeta-projeto06/internal/database"
	"github.com/alissonkauanzx/planeta-projeto06/internal/model"

	"github.com/jackc/pgx/v5"
)

// ListComments 依建立時間由舊到新
func ListComments(ctx context.Context, db database.DB, projectID string) ([]model.Comment, error) {
	rows, err := db.Query(ctx,
		`SELECT id, project_id::text, user_id, author_name, content, created_at
		 FROM comments WHERE project_id = $1
		 ORDER BY created_at ASC, id ASC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListComments: %w", err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.UserID, &c.AuthorName, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListComments: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListComments: %w", err)
	}
	return comments, nil
}

func CreateComment(ctx context.Context, db database.DB, c *model.Comment) (*model.Comment, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO comments (project_id, user_id, author_name, content, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		c.ProjectID,
		c.UserID,
		c.AuthorName,
		c.Content,
		c.CreatedAt,
	)
	if err := row.Scan(&c.ID); err != nil {
		return nil, fmt.Errorf("CreateComment: %w", err)
	}
	return c, nil
}

func DeleteComment(ctx context.Context, db database.DB, id int64) error {
	tag, err := db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteComment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteComment: %w", pgx.ErrNoRows)
	}
	return nil
}
