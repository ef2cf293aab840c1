package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alissonkauanzx/planeta-projeto06/internal/database"
	"github.com/alissonkauanzx/planeta-projeto06/internal/media"
	"github.com/alissonkauanzx/planeta-projeto06/internal/model"
	"github.com/alissonkauanzx/planeta-projeto06/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const anonymousAuthor = "Usuário Anônimo"

var (
	listProjects          = store.ListProjects
	getProject            = store.GetProject
	createProject         = store.CreateProject
	updateProject         = store.UpdateProject
	deleteProject         = store.DeleteProject
	incrementProjectViews = store.IncrementProjectViews
)

// ProjectForm 送出或編輯專案的輸入；檔案欄位僅送出時使用
type ProjectForm struct {
	Title       string
	Description string
	Category    string
	ODS         *int

	Image *media.File
	Video *media.File
	PDF   *media.File
}

// Projects 專案送出、編輯、刪除與瀏覽流程
type Projects struct {
	db      database.DB
	images  media.ImageHost
	objects media.ObjectStore
	logger  *zap.Logger
}

func NewProjects(db database.DB, images media.ImageHost, objects media.ObjectStore, logger *zap.Logger) *Projects {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Projects{db: db, images: images, objects: objects, logger: logger}
}

// normalize 修剪欄位並檢查分類與 ODS
func (f *ProjectForm) normalize() error {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	if f.Title == "" || f.Description == "" {
		return fmt.Errorf("%w: Título e descrição são obrigatórios.", ErrValidation)
	}
	f.Category = strings.TrimSpace(f.Category)
	if f.Category == "" {
		f.Category = model.DefaultCategory
	}
	if !model.IsCategory(f.Category) {
		return fmt.Errorf("%w: categoria inválida %q", ErrValidation, f.Category)
	}
	if f.ODS != nil {
		if _, ok := model.LookupODS(*f.ODS); !ok {
			return fmt.Errorf("%w: ODS inválido %d", ErrValidation, *f.ODS)
		}
	}
	return nil
}

type pendingUpload struct {
	kind        media.Kind
	file        *media.File
	contentType string
	dst         **string
}

// Submit 驗證、依序上傳附件後寫入一筆專案
// 上傳或寫入失敗時已完成的上傳不回滾，只記錄警告
func (s *Projects) Submit(ctx context.Context, user *model.User, form ProjectForm) (*model.Project, error) {
	if err := form.normalize(); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}

	now := timeNow().UTC()
	p := &model.Project{
		ID:          newID(),
		Title:       form.Title,
		Description: form.Description,
		Category:    form.Category,
		UserID:      user.ID,
		AuthorName:  user.AuthorName(anonymousAuthor),
		CreatedAt:   now,
		ODS:         form.ODS,
	}

	// 先檢查所有檔案，任何一個不合格就不發出網路請求
	var pending []pendingUpload
	for _, u := range []pendingUpload{
		{kind: media.KindImage, file: form.Image, dst: &p.ImageURL},
		{kind: media.KindVideo, file: form.Video, dst: &p.VideoURL},
		{kind: media.KindPDF, file: form.PDF, dst: &p.PDFURL},
	} {
		if u.file == nil {
			continue
		}
		ct, err := media.Inspect(u.file, u.kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		u.contentType = ct
		pending = append(pending, u)
	}

	var uploaded []string
	for _, u := range pending {
		url, err := s.upload(ctx, user.ID, u)
		if err == nil && url == "" {
			err = errors.New("empty url")
		}
		if err != nil {
			s.warnOrphans(uploaded, "upload failed")
			s.logger.Error("media upload failed",
				zap.String("user_id", user.ID),
				zap.Stringer("kind", u.kind),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%w: Erro ao enviar %s: %w", ErrUpload, u.kind, err)
		}
		*u.dst = &url
		uploaded = append(uploaded, url)
	}

	created, err := createProject(ctx, s.db, p)
	if err != nil {
		s.warnOrphans(uploaded, "insert failed")
		s.logger.Error("create project failed", zap.String("user_id", user.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPersist, err)
	}

	s.logger.Info("project created",
		zap.String("project_id", created.ID),
		zap.String("user_id", user.ID),
		zap.Int("uploads", len(uploaded)),
	)
	return created, nil
}

func (s *Projects) upload(ctx context.Context, uid string, u pendingUpload) (string, error) {
	if u.kind == media.KindImage {
		if s.images == nil {
			return "", errors.New("image host not configured")
		}
		return s.images.UploadImage(ctx, u.file)
	}
	if s.objects == nil {
		return "", errors.New("object storage not configured")
	}
	key := media.ObjectKey(uid, u.kind, u.file.Name, u.contentType, timeNow())
	return s.objects.UploadObject(ctx, key, u.file, u.contentType)
}

func (s *Projects) warnOrphans(urls []string, reason string) {
	if len(urls) == 0 {
		return
	}
	s.logger.Warn("orphaned uploads left in storage",
		zap.String("reason", reason),
		zap.Strings("urls", urls),
	)
}

// findProject 依 id 讀取專案；id 不是 UUID 時不查資料庫，直接視為不存在
func findProject(ctx context.Context, db database.DB, id string) (*model.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	p, err := getProject(ctx, db, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return p, nil
}

// loadEditable 讀取專案並檢查權限
func (s *Projects) loadEditable(ctx context.Context, user *model.User, id string) (*model.Project, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}
	p, err := findProject(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if !CanEdit(user, p.UserID) {
		return nil, ErrForbidden
	}
	return p, nil
}

// ownerScope 非管理員的 update/delete 附加擁有者條件
func ownerScope(user *model.User) string {
	if user.IsAdmin() {
		return ""
	}
	return user.ID
}

// Update 只改標題、描述、分類與 ODS，附件不變
func (s *Projects) Update(ctx context.Context, user *model.User, id string, form ProjectForm) (*model.Project, error) {
	if err := form.normalize(); err != nil {
		return nil, err
	}
	if _, err := s.loadEditable(ctx, user, id); err != nil {
		return nil, err
	}

	p, err := updateProject(ctx, s.db, id, ownerScope(user), model.ProjectChanges{
		Title:       form.Title,
		Description: form.Description,
		Category:    form.Category,
		ODS:         form.ODS,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	s.logger.Info("project updated", zap.String("project_id", id), zap.String("user_id", user.ID))
	return p, nil
}

// Delete 刪除專案，留言由外鍵連帶刪除
func (s *Projects) Delete(ctx context.Context, user *model.User, id string) error {
	if _, err := s.loadEditable(ctx, user, id); err != nil {
		return err
	}
	err := deleteProject(ctx, s.db, id, ownerScope(user))
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	s.logger.Info("project deleted", zap.String("project_id", id), zap.String("user_id", user.ID))
	return nil
}

// List 新到舊載入全部專案後在記憶體過濾
func (s *Projects) List(ctx context.Context, search, category string) ([]model.Project, error) {
	all, err := listProjects(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return FilterProjects(all, search, category), nil
}

// Detail 開啟專案：瀏覽數加一並載入留言
func (s *Projects) Detail(ctx context.Context, id string) (*model.Project, error) {
	p, err := findProject(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	views, err := incrementProjectViews(ctx, s.db, id)
	if err != nil {
		// 計數失敗不影響瀏覽
		s.logger.Warn("increment views failed", zap.String("project_id", id), zap.Error(err))
	} else {
		p.Views = views
	}

	comments, err := listComments(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	p.Comments = comments
	p.CommentCount = len(comments)
	return p, nil
}
