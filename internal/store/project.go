package store

import (
	"context"
	"fmt"

	"github.com/alissonkauanzx/planeta-projeto06/internal/database"
	"github.com/alissonkauanzx/planeta-projeto06/internal/model"

	"github.com/jackc/pgx/v5"
)

const projectColumns = `id::text, title, description, category, user_id, author_name,
	created_at, image_url, video_url, pdf_url, ods, views`

func projectDest(p *model.Project) []any {
	return []any{
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Category,
		&p.UserID,
		&p.AuthorName,
		&p.CreatedAt,
		&p.ImageURL,
		&p.VideoURL,
		&p.PDFURL,
		&p.ODS,
		&p.Views,
	}
}

// ListProjects 依建立時間新到舊列出全部專案，含留言數
func ListProjects(ctx context.Context, db database.DB) ([]model.Project, error) {
	rows, err := db.Query(ctx,
		`SELECT p.id::text, p.title, p.description, p.category, p.user_id, p.author_name,
		        p.created_at, p.image_url, p.video_url, p.pdf_url, p.ods, p.views,
		        COUNT(c.id) AS comment_count
		 FROM projects p
		 LEFT JOIN comments c ON c.project_id = p.id
		 GROUP BY p.id
		 ORDER BY p.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(append(projectDest(&p), &p.CommentCount)...); err != nil {
			return nil, fmt.Errorf("ListProjects: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	return projects, nil
}

func GetProject(ctx context.Context, db database.DB, id string) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`,
		id,
	)
	p := &model.Project{}
	if err := row.Scan(projectDest(p)...); err != nil {
		return nil, fmt.Errorf("GetProject: %w", err)
	}
	return p, nil
}

func CreateProject(ctx context.Context, db database.DB, p *model.Project) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO projects (id, title, description, category, user_id, author_name,
		                       created_at, image_url, video_url, pdf_url, ods)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING views`,
		p.ID,
		p.Title,
		p.Description,
		p.Category,
		p.UserID,
		p.AuthorName,
		p.CreatedAt,
		p.ImageURL,
		p.VideoURL,
		p.PDFURL,
		p.ODS,
	)
	if err := row.Scan(&p.Views); err != nil {
		return nil, fmt.Errorf("CreateProject: %w", err)
	}
	return p, nil
}

// UpdateProject 更新可編輯欄位；ownerID 非空時附加 user_id 條件
// 沒有符合的列時回傳包裝過的 pgx.ErrNoRows
func UpdateProject(ctx context.Context, db database.DB, id, ownerID string, ch model.ProjectChanges) (*model.Project, error) {
	query := `UPDATE projects SET title = $1, description = $2, category = $3, ods = $4
		 WHERE id = $5`
	args := []any{ch.Title, ch.Description, ch.Category, ch.ODS, id}
	if ownerID != "" {
		query += ` AND user_id = $6`
		args = append(args, ownerID)
	}
	query += ` RETURNING ` + projectColumns

	p := &model.Project{}
	if err := db.QueryRow(ctx, query, args...).Scan(projectDest(p)...); err != nil {
		return nil, fmt.Errorf("UpdateProject: %w", err)
	}
	return p, nil
}

// DeleteProject 刪除專案；ownerID 非空時附加 user_id 條件
func DeleteProject(ctx context.Context, db database.DB, id, ownerID string) error {
	query := `DELETE FROM projects WHERE id = $1`
	args := []any{id}
	if ownerID != "" {
		query += ` AND user_id = $2`
		args = append(args, ownerID)
	}
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("DeleteProject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteProject: %w", pgx.ErrNoRows)
	}
	return nil
}

// IncrementProjectViews 瀏覽數加一並回傳新值
func IncrementProjectViews(ctx context.Context, db database.DB, id string) (int, error) {
	var views int
	if err := db.QueryRow(ctx,
		`UPDATE projects SET views = views + 1 WHERE id = $1 RETURNING views`,
		id,
	).Scan(&views); err != nil {
		return 0, fmt.Errorf("IncrementProjectViews: %w", err)
	}
	return views, nil
}
