package api

import (
	"time"

	"github.com/alissonkauanzx/planeta-projeto06/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID          string    `json:"id" example:"5b0c6f0e-3c1f-4a43-9d4e-0f3c2c9d7a11"`
	Email       string    `json:"email" example:"ana@example.com"`
	DisplayName *string   `json:"display_name,omitempty" example:"Ana"`
	IsAdmin     bool      `json:"is_admin" example:"false"`
	CreatedAt   time.Time `json:"created_at"`
}

// swagger:model api.SessionResponse
type SessionResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type" example:"Bearer"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		IsAdmin:     u.IsAdmin(),
		CreatedAt:   u.CreatedAt,
	}
}
