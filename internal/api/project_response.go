package api

import (
	"time"

	"github.com/alissonkauanzx/planeta-projeto06/internal/model"
)

// swagger:model api.CommentResponse
type CommentResponse struct {
	ID         int64     `json:"id" example:"1"`
	ProjectID  string    `json:"project_id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name" example:"Bia"`
	Content    string    `json:"content" example:"Nice!"`
	CreatedAt  time.Time `json:"created_at"`
	CanEdit    bool      `json:"can_edit"`
}

// swagger:model api.ProjectResponse
type ProjectResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title" example:"Mars Rover"`
	Description  string            `json:"description"`
	Category     string            `json:"category" example:"Tecnologia"`
	UserID       string            `json:"user_id"`
	AuthorName   string            `json:"author_name" example:"Ana"`
	CreatedAt    time.Time         `json:"created_at"`
	ImageURL     *string           `json:"image_url,omitempty"`
	VideoURL     *string           `json:"video_url,omitempty"`
	PDFURL       *string           `json:"pdf_url,omitempty"`
	ODS          *model.ODS        `json:"ods,omitempty"`
	Views        int               `json:"views"`
	CommentCount int               `json:"comment_count"`
	CanEdit      bool              `json:"can_edit"`
	Comments     []CommentResponse `json:"comments,omitempty"`
}

// CanEditFunc 權限判斷，由 handler 注入
type CanEditFunc func(ownerID string) bool

func NewCommentResponse(c model.Comment, canEdit CanEditFunc) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		ProjectID:  c.ProjectID,
		UserID:     c.UserID,
		AuthorName: c.AuthorName,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
		CanEdit:    canEdit(c.UserID),
	}
}

func NewCommentResponses(cs []model.Comment, canEdit CanEditFunc) []CommentResponse {
	out := make([]CommentResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, NewCommentResponse(c, canEdit))
	}
	return out
}

// NewProjectResponse ODS 以目錄展開成 {id,name,color}
func NewProjectResponse(p model.Project, canEdit CanEditFunc) ProjectResponse {
	resp := ProjectResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		UserID:       p.UserID,
		AuthorName:   p.AuthorName,
		CreatedAt:    p.CreatedAt,
		ImageURL:     p.ImageURL,
		VideoURL:     p.VideoURL,
		PDFURL:       p.PDFURL,
		Views:        p.Views,
		CommentCount: p.CommentCount,
		CanEdit:      canEdit(p.UserID),
	}
	if p.ODS != nil {
		if o, ok := model.LookupODS(*p.ODS); ok {
			resp.ODS = &o
		}
	}
	if p.Comments != nil {
		resp.Comments = NewCommentResponses(p.Comments, canEdit)
	}
	return resp
}
