// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/alissonkauanzx/planeta-projeto06/internal/cache"
	"github.com/alissonkauanzx/planeta-projeto06/internal/database"
	"github.com/alissonkauanzx/planeta-projeto06/internal/handler"
	"github.com/alissonkauanzx/planeta-projeto06/internal/handler/auth"
	"github.com/alissonkauanzx/planeta-projeto06/internal/handler/comments"
	"github.com/alissonkauanzx/planeta-projeto06/internal/handler/projects"
	"github.com/alissonkauanzx/planeta-projeto06/internal/middleware"
)

// IdentityProvider 登入流程與 token 解析
type IdentityProvider interface {
	auth.Identity
	middleware.Resolver
}

// Deps 路由需要的服務
type Deps struct {
	DB       database.DB
	Cache    cache.Cache
	Identity IdentityProvider
	Projects projects.Service
	Comments comments.Service
	Blob     handler.BlobHandshake
	Logger   *zap.Logger
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	requireAuth := middleware.RequireAuth(d.Identity, logger)

	api := e.Group("/api")

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache), requireAuth)

	// 帳號
	api.POST("/auth/signup", auth.SignUpHandler(d.Identity, logger))
	api.POST("/auth/login", auth.LoginHandler(d.Identity, logger))
	api.POST("/auth/logout", auth.LogoutHandler(d.Identity, logger), requireAuth)
	api.GET("/auth/me", auth.MeHandler(), requireAuth)

	// 固定目錄
	api.GET("/ods", handler.ListODSHandler())
	api.GET("/categories", handler.ListCategoriesHandler())

	// 專案與留言
	apiProjects := api.Group("/projects", requireAuth)
	apiProjects.GET("", projects.ListHandler(d.Projects, logger))
	apiProjects.POST("", projects.CreateHandler(d.Projects, logger))
	apiProjects.GET("/:id", projects.GetHandler(d.Projects, logger))
	apiProjects.PUT("/:id", projects.UpdateHandler(d.Projects, logger))
	apiProjects.DELETE("/:id", projects.DeleteHandler(d.Projects, logger))
	apiProjects.GET("/:id/comments", comments.ListHandler(d.Comments, logger))
	apiProjects.POST("/:id/comments", comments.AddHandler(d.Comments, logger))
	apiProjects.DELETE("/:id/comments/:comment_id", comments.DeleteHandler(d.Comments, logger))

	// blob 上傳交握
	api.POST("/upload", handler.UploadHandler(d.Blob, logger))

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
