// File: internal/model/project.go
package model

import "time"

// 分類
const (
	CategoryAll            = "all"
	CategoryEducation      = "Educação"
	CategoryTechnology     = "Tecnologia"
	CategoryScience        = "Ciência"
	CategorySustainability = "Sustentabilidade"

	DefaultCategory = CategoryEducation
)

// Categories 固定分類清單（不含 all）
var Categories = []string{
	CategoryEducation,
	CategoryTechnology,
	CategoryScience,
	CategorySustainability,
}

// IsCategory 檢查是否為合法分類
func IsCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

type Project struct {
	ID           string    `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	Category     string    `db:"category" json:"category"`
	UserID       string    `db:"user_id" json:"user_id"`
	AuthorName   string    `db:"author_name" json:"author_name"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	ImageURL     *string   `db:"image_url" json:"image_url"`
	VideoURL     *string   `db:"video_url" json:"video_url"`
	PDFURL       *string   `db:"pdf_url" json:"pdf_url"`
	ODS          *int      `db:"ods" json:"ods"`
	Views        int       `db:"views" json:"views"`
	CommentCount int       `db:"comment_count" json:"comment_count"`
	Comments     []Comment `json:"comments,omitempty"`
}

// ProjectChanges 編輯流程可修改的欄位，媒體不可改
type ProjectChanges struct {
	Title       string
	Description string
	Category    string
	ODS         *int
}
