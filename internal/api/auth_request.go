package api

// swagger:model api.SignUpRequest
type SignUpRequest struct {
	Email       string `form:"email" json:"email" validate:"required,email" example:"ana@example.com"`
	Password    string `form:"password" json:"password" validate:"required,min=6" example:"Secret123!"`
	DisplayName string `form:"display_name" json:"display_name" example:"Ana"`
}

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required" example:"ana@example.com"`
	Password string `form:"password" json:"password" validate:"required" example:"Secret123!"`
}
