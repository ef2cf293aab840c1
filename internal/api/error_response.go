package api

// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"não autorizado"`
}

// UploadErrorResponse 上傳端點固定的錯誤格式
// swagger:model api.UploadErrorResponse
type UploadErrorResponse struct {
	Error string `json:"error" example:"Upload failed"`
}
