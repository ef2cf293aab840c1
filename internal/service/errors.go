package service

import "errors"

// 工作流程共用的錯誤分類，handler 以 errors.Is 對應 HTTP 狀態碼
var (
	ErrValidation         = errors.New("validation failed")
	ErrUnauthenticated    = errors.New("usuário não autenticado")
	ErrForbidden          = errors.New("não autorizado")
	ErrNotFound           = errors.New("not found")
	ErrUpload             = errors.New("upload failed")
	ErrPersist            = errors.New("persist failed")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
