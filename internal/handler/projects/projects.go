// Package projects 專案列表、送出、檢視、編輯與刪除
package projects

import (
	"context"

	"github.com/alissonkauanzx/planeta-projeto06/internal/model"
	"github.com/alissonkauanzx/planeta-projeto06/internal/service"
)

// Service 專案工作流程
type Service interface {
	Submit(ctx context.Context, user *model.User, form service.ProjectForm) (*model.Project, error)
	Update(ctx context.Context, user *model.User, id string, form service.ProjectForm) (*model.Project, error)
	Delete(ctx context.Context, user *model.User, id string) error
	List(ctx context.Context, search, category string) ([]model.Project, error)
	Detail(ctx context.Context, id string) (*model.Project, error)
}

func canEditFor(user *model.User) func(string) bool {
	return func(ownerID string) bool { return service.CanEdit(user, ownerID) }
}
