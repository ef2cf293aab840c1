package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/alissonkauanzx/planeta-projeto06/internal/blob"
	"github.com/alissonkauanzx/planeta-projeto06/internal/cache"
	"github.com/alissonkauanzx/planeta-projeto06/internal/config"
	"github.com/alissonkauanzx/planeta-projeto06/internal/database"
	"github.com/alissonkauanzx/planeta-projeto06/internal/logging"
	"github.com/alissonkauanzx/planeta-projeto06/internal/media"
	"github.com/alissonkauanzx/planeta-projeto06/internal/router"
	"github.com/alissonkauanzx/planeta-projeto06/internal/service"
	"github.com/alissonkauanzx/planeta-projeto06/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "github.com/alissonkauanzx/planeta-projeto06/docs" // 引入 swag 產出的 docs
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newLogger       = logging.New
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackFn      = database.RollbackAll
	newImageHost    = func(cfg config.Cloudinary) (media.ImageHost, error) { return media.NewCloudinary(cfg) }
	newObjectStore  = func(cfg config.Storage) (media.ObjectStore, error) { return media.NewS3Store(cfg) }
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
)

func migrate(configPath string, step func(string) error) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return errors.New("環境變數 DATABASE_URL 未設定")
	}
	if err := step(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}
	return nil
}

func run(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	ttl, err := cfg.Auth.TTL()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("logger 初始化失敗: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	rc, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer rc.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	images, err := newImageHost(cfg.Cloudinary)
	if err != nil {
		return err
	}
	objects, err := newObjectStore(cfg.Storage)
	if err != nil {
		return err
	}

	wp := newWorkerPool(cfg.WorkerCount, logger)
	defer wp.Stop()

	handshake, err := blob.NewHandshake(cfg.Blob.ReadWriteToken, db, rc, wp, logger)
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("160M"))

	router.Setup(e, router.Deps{
		DB:       db,
		Cache:    rc,
		Identity: service.NewIdentity(db, rc, cfg.Auth.JWTSecret, cfg.Auth.AdminUID, ttl, logger),
		Projects: service.NewProjects(db, images, objects, logger),
		Comments: service.NewComments(db, logger),
		Blob:     handshake,
		Logger:   logger,
	})

	logger.Info("server starting", zap.String("addr", cfg.HTTPAddr), zap.Int("workers", cfg.WorkerCount))
	return startServer(e, cfg.HTTPAddr)
}
