// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 服務設定，來源依序為預設值、YAML 檔、.env、環境變數
type Config struct {
	HTTPAddr    string `yaml:"http_addr"`
	DatabaseURL string `yaml:"database_url"`
	WorkerCount int    `yaml:"worker_count"`

	Redis      Redis      `yaml:"redis"`
	Auth       Auth       `yaml:"auth"`
	Cloudinary Cloudinary `yaml:"cloudinary"`
	Storage    Storage    `yaml:"storage"`
	Blob       Blob       `yaml:"blob"`
	Log        Log        `yaml:"log"`
}

type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Auth 身分驗證；TokenTTL 為 time.ParseDuration 格式
type Auth struct {
	JWTSecret string `yaml:"jwt_secret"`
	AdminUID  string `yaml:"admin_uid"`
	TokenTTL  string `yaml:"token_ttl"`
}

// Cloudinary 圖床
type Cloudinary struct {
	CloudName    string `yaml:"cloud_name"`
	APIKey       string `yaml:"api_key"`
	APISecret    string `yaml:"api_secret"`
	UploadPreset string `yaml:"upload_preset"`
}

// Storage S3 相容物件儲存
type Storage struct {
	Endpoint      string `yaml:"endpoint"`
	Region        string `yaml:"region"`
	AccessKey     string `yaml:"access_key"`
	SecretKey     string `yaml:"secret_key"`
	Bucket        string `yaml:"bucket"`
	PublicBaseURL string `yaml:"public_base_url"`
	UseSSL        bool   `yaml:"use_ssl"`
}

type Blob struct {
	ReadWriteToken string `yaml:"read_write_token"`
}

type Log struct {
	Debug bool `yaml:"debug"`
}

var (
	readFile       = os.ReadFile
	loadDotenv     = func() error { return godotenv.Load() }
	lookupEnv      = os.LookupEnv
	errMissingVars = errors.New("missing required configuration")
)

// Default 回傳預設設定
func Default() *Config {
	c := &Config{
		HTTPAddr:    ":8080",
		WorkerCount: 1,
	}
	c.Auth.TokenTTL = "24h"
	c.Storage.Bucket = "project.midia"
	c.Storage.Region = "us-east-1"
	c.Storage.UseSSL = true
	return c
}

// Load 讀取設定；path 為空時略過 YAML 檔
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		data, err := readFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// .env 不存在時忽略
	_ = loadDotenv()

	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	str := func(key string, dst *string) {
		if v, ok := lookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookupEnv(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("無效的 %s: %v", key, err)
		}
		*dst = n
		return nil
	}
	flag := func(key string, dst *bool) error {
		v, ok := lookupEnv(key)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("無效的 %s: %v", key, err)
		}
		*dst = b
		return nil
	}

	str("HTTP_ADDR", &c.HTTPAddr)
	str("DATABASE_URL", &c.DatabaseURL)
	str("REDIS_ADDR", &c.Redis.Addr)
	str("REDIS_PASSWORD", &c.Redis.Password)
	str("JWT_SECRET", &c.Auth.JWTSecret)
	str("ADMIN_UID", &c.Auth.AdminUID)
	str("TOKEN_TTL", &c.Auth.TokenTTL)
	str("CLOUDINARY_CLOUD_NAME", &c.Cloudinary.CloudName)
	str("CLOUDINARY_API_KEY", &c.Cloudinary.APIKey)
	str("CLOUDINARY_API_SECRET", &c.Cloudinary.APISecret)
	str("CLOUDINARY_UPLOAD_PRESET", &c.Cloudinary.UploadPreset)
	str("STORAGE_ENDPOINT", &c.Storage.Endpoint)
	str("STORAGE_REGION", &c.Storage.Region)
	str("STORAGE_ACCESS_KEY", &c.Storage.AccessKey)
	str("STORAGE_SECRET_KEY", &c.Storage.SecretKey)
	str("STORAGE_BUCKET", &c.Storage.Bucket)
	str("STORAGE_PUBLIC_BASE_URL", &c.Storage.PublicBaseURL)
	str("BLOB_READ_WRITE_TOKEN", &c.Blob.ReadWriteToken)

	if err := num("REDIS_DB", &c.Redis.DB); err != nil {
		return err
	}
	if err := num("WORKER_COUNT", &c.WorkerCount); err != nil {
		return err
	}
	if err := flag("STORAGE_USE_SSL", &c.Storage.UseSSL); err != nil {
		return err
	}
	return flag("LOG_DEBUG", &c.Log.Debug)
}

// Validate 檢查必要設定
func (c *Config) Validate() error {
	var missing []string
	if c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.Redis.Addr == "" {
		missing = append(missing, "REDIS_ADDR")
	}
	if c.Auth.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.Cloudinary.CloudName == "" {
		missing = append(missing, "CLOUDINARY_CLOUD_NAME")
	}
	if c.Storage.Endpoint == "" {
		missing = append(missing, "STORAGE_ENDPOINT")
	}
	if c.Blob.ReadWriteToken == "" {
		missing = append(missing, "BLOB_READ_WRITE_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errMissingVars, strings.Join(missing, ", "))
	}
	if c.WorkerCount <= 0 {
		return fmt.Errorf("無效的 WORKER_COUNT: %d", c.WorkerCount)
	}
	if _, err := c.Auth.TTL(); err != nil {
		return err
	}
	return nil
}

// TTL 解析 TokenTTL，必須為正值
func (a Auth) TTL() (time.Duration, error) {
	d, err := time.ParseDuration(a.TokenTTL)
	if err != nil {
		return 0, fmt.Errorf("無效的 TOKEN_TTL: %v", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("無效的 TOKEN_TTL: %s", a.TokenTTL)
	}
	return d, nil
}
