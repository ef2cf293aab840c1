// File: internal/model/comment.go
package model

import "time"

type Comment struct {
	ID         int64     `db:"id" json:"id"`
	ProjectID  string    `db:"project_id" json:"project_id"`
	UserID     string    `db:"user_id" json:"user_id"`
	AuthorName string    `db:"author_name" json:"author_name"`
	Content    string    `db:"content" json:"content"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
