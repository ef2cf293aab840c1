package api

// UpdateProjectRequest 編輯只允許文字欄位與 ODS
// swagger:model api.UpdateProjectRequest
type UpdateProjectRequest struct {
	Title       string `form:"title" json:"title" example:"Mars Rover v2"`
	Description string `form:"description" json:"description" example:"Robô explorador"`
	Category    string `form:"category" json:"category" example:"Tecnologia"`
	ODS         *int   `form:"ods" json:"ods" validate:"omitempty,min=1,max=17" example:"9"`
}

// swagger:model api.CommentRequest
type CommentRequest struct {
	Content string `form:"content" json:"content" example:"Nice!"`
}
