package service

import "github.com/alissonkauanzx/planeta-projeto06/internal/model"

// CanEdit 擁有者或管理員才可編輯、刪除
func CanEdit(user *model.User, ownerID string) bool {
	if user == nil {
		return false
	}
	return user.ID == ownerID || user.IsAdmin()
}
