// File: internal/model/user.go
package model

import (
	"strings"
	"time"
)

// User 身分提供者發出的使用者
// IsAdmin 不落地，由 AdminUID 比對推導
type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	DisplayName  *string   `db:"display_name" json:"display_name,omitempty"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`

	adminUID string
}

// WithAdminUID 回傳帶有管理員 UID 的副本，供 IsAdmin 推導使用
func (u User) WithAdminUID(uid string) User {
	u.adminUID = uid
	return u
}

// IsAdmin 以不分大小寫比對使用者 ID 與設定的管理員 UID
func (u *User) IsAdmin() bool {
	if u == nil || u.adminUID == "" {
		return false
	}
	return strings.EqualFold(u.ID, u.adminUID)
}

// AuthorName 依序取 display name、email 前綴，否則回傳 fallback
func (u *User) AuthorName(fallback string) string {
	if u == nil {
		return fallback
	}
	if u.DisplayName != nil && strings.TrimSpace(*u.DisplayName) != "" {
		return strings.TrimSpace(*u.DisplayName)
	}
	if local, _, _ := strings.Cut(u.Email, "@"); local != "" {
		return local
	}
	return fallback
}
