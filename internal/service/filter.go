package service

import (
	"strings"

	"github.com/alissonkauanzx/planeta-projeto06/internal/model"
)

// FilterProjects 標題或描述含搜尋字串（不分大小寫），且分類相符
// 搜尋字串原樣比對不去空白；category 為空或 "all" 時不過濾分類；不修改輸入
func FilterProjects(projects []model.Project, search, category string) []model.Project {
	term := strings.ToLower(search)
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if category != "" && !strings.EqualFold(category, model.CategoryAll) &&
			!strings.EqualFold(p.Category, category) {
			continue
		}
		out = append(out, p)
	}
	return out
}
