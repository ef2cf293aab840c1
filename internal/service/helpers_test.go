package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/alissonkauanzx/planeta-projeto06/internal/database"
	"github.com/alissonkauanzx/planeta-projeto06/internal/model"
	"github.com/alissonkauanzx/planeta-projeto06/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	timeNow = time.Now
	newID = uuid.NewString
	parseWithClaims = jwt.ParseWithClaims

	getUserByID = store.GetUserByID
	getUserByEmail = store.GetUserByEmail
	createUser = store.CreateUser

	listProjects = store.ListProjects
	getProject = store.GetProject
	createProject = store.CreateProject
	updateProject = store.UpdateProject
	deleteProject = store.DeleteProject
	incrementProjectViews = store.IncrementProjectViews

	listComments = store.ListComments
	createComment = store.CreateComment
	deleteComment = store.DeleteComment
}

func fastBcrypt() {
	bcryptGenerateFromPassword = func(p []byte, _ int) ([]byte, error) {
		return bcrypt.GenerateFromPassword(p, bcrypt.MinCost)
	}
}

func strPtr(s string) *string { return &s }

const (
	projectP1     = "3f1c2b9a-6d2e-4c8b-9a41-0e5d7b2c1a90"
	absentProject = "9b7e4d21-0c3a-4f6e-8d52-1a2b3c4d5e6f"
)

/* ---------- 記憶體版資料表 ---------- */

type memStore struct {
	mu          sync.Mutex
	projects    map[string]model.Project
	comments    []model.Comment
	nextComment int64
	clock       time.Time

	creates, updates, deletes, commentDeletes int
	lastCommentDelete                        int64
}

func newMemStore() *memStore {
	return &memStore{
		projects: map[string]model.Project{},
		clock:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

// install 把 store 函式換成記憶體實作
func (m *memStore) install() {
	timeNow = m.tick

	listProjects = func(context.Context, database.DB) ([]model.Project, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		out := []model.Project{}
		for _, p := range m.projects {
			p.CommentCount = m.countLocked(p.ID)
			out = append(out, p)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
		return out, nil
	}
	getProject = func(_ context.Context, _ database.DB, id string) (*model.Project, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		p, ok := m.projects[id]
		if !ok {
			return nil, pgx.ErrNoRows
		}
		return &p, nil
	}
	createProject = func(_ context.Context, _ database.DB, p *model.Project) (*model.Project, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.creates++
		p.Views = 0
		m.projects[p.ID] = *p
		return p, nil
	}
	updateProject = func(_ context.Context, _ database.DB, id, ownerID string, ch model.ProjectChanges) (*model.Project, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.updates++
		p, ok := m.projects[id]
		if !ok || (ownerID != "" && p.UserID != ownerID) {
			return nil, pgx.ErrNoRows
		}
		p.Title, p.Description, p.Category, p.ODS = ch.Title, ch.Description, ch.Category, ch.ODS
		m.projects[id] = p
		return &p, nil
	}
	deleteProject = func(_ context.Context, _ database.DB, id, ownerID string) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.deletes++
		p, ok := m.projects[id]
		if !ok || (ownerID != "" && p.UserID != ownerID) {
			return pgx.ErrNoRows
		}
		delete(m.projects, id)
		kept := m.comments[:0]
		for _, c := range m.comments {
			if c.ProjectID != id {
				kept = append(kept, c)
			}
		}
		m.comments = kept
		return nil
	}
	incrementProjectViews = func(_ context.Context, _ database.DB, id string) (int, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		p, ok := m.projects[id]
		if !ok {
			return 0, pgx.ErrNoRows
		}
		p.Views++
		m.projects[id] = p
		return p.Views, nil
	}

	listComments = func(_ context.Context, _ database.DB, projectID string) ([]model.Comment, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		out := []model.Comment{}
		for _, c := range m.comments {
			if c.ProjectID == projectID {
				out = append(out, c)
			}
		}
		return out, nil
	}
	createComment = func(_ context.Context, _ database.DB, c *model.Comment) (*model.Comment, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.nextComment++
		c.ID = m.nextComment
		m.comments = append(m.comments, *c)
		return c, nil
	}
	deleteComment = func(_ context.Context, _ database.DB, id int64) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.commentDeletes++
		m.lastCommentDelete = id
		for i, c := range m.comments {
			if c.ID == id {
				m.comments = append(m.comments[:i], m.comments[i+1:]...)
				return nil
			}
		}
		return pgx.ErrNoRows
	}
}

func (m *memStore) countLocked(projectID string) int {
	n := 0
	for _, c := range m.comments {
		if c.ProjectID == projectID {
			n++
		}
	}
	return n
}
