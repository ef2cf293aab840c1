// Package media 處理專案附件：內容偵測、圖床與物件儲存上傳
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// MaxFileSize 單一檔案上限 50MB
const MaxFileSize int64 = 50 * 1024 * 1024

var (
	ErrFileTooLarge    = errors.New("arquivo excede o limite de 50MB")
	ErrUnsupportedType = errors.New("tipo de arquivo não permitido")
)

// Kind 附件欄位種類
type Kind int

const (
	KindImage Kind = iota
	KindVideo
	KindPDF
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	case KindPDF:
		return "pdf"
	}
	return "unknown"
}

// AllowedContentTypes 上傳允許的內容類型
var AllowedContentTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"video/mp4",
	"video/webm",
	"video/ogg",
	"application/pdf",
}

var allowedByKind = map[Kind][]string{
	KindImage: {"image/jpeg", "image/png", "image/gif", "image/webp"},
	KindVideo: {"video/mp4", "video/webm", "video/ogg"},
	KindPDF:   {"application/pdf"},
}

// ogg 容器偵測結果統一視為 video/ogg
var canonicalType = map[string]string{
	"application/ogg": "video/ogg",
	"audio/ogg":       "video/ogg",
}

// File 一個待上傳的附件
type File struct {
	Name string
	Size int64
	Body io.ReadSeeker
}

// ImageHost 圖床，回傳公開 URL
type ImageHost interface {
	UploadImage(ctx context.Context, f *File) (string, error)
}

// ObjectStore 路徑式物件儲存，回傳公開 URL
type ObjectStore interface {
	UploadObject(ctx context.Context, key string, f *File, contentType string) (string, error)
}

var detectReader = mimetype.DetectReader

// Inspect 檢查大小並以內容偵測類型，回傳正規化後的 content type
// 讀取後會把 Body 移回開頭
func Inspect(f *File, kind Kind) (string, error) {
	if f == nil || f.Body == nil {
		return "", fmt.Errorf("Inspect: %w", ErrUnsupportedType)
	}
	if f.Size > MaxFileSize {
		return "", fmt.Errorf("Inspect %s: %w", f.Name, ErrFileTooLarge)
	}

	mt, err := detectReader(f.Body)
	if err != nil {
		return "", fmt.Errorf("Inspect %s: %w", f.Name, err)
	}
	if _, err := f.Body.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("Inspect %s: %w", f.Name, err)
	}

	for m := mt; m != nil; m = m.Parent() {
		ct := m.String()
		if c, ok := canonicalType[ct]; ok {
			ct = c
		}
		for _, allowed := range allowedByKind[kind] {
			if ct == allowed {
				return ct, nil
			}
		}
	}
	return "", fmt.Errorf("Inspect %s (%s): %w", f.Name, mt.String(), ErrUnsupportedType)
}

// ObjectKey 產生 <uid>/<kind>/<unix 毫秒>.<副檔名>
func ObjectKey(uid string, kind Kind, filename, contentType string, now time.Time) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		if m := mimetype.Lookup(contentType); m != nil {
			ext = strings.TrimPrefix(m.Extension(), ".")
		}
	}
	if uid == "" {
		uid = "unknown_user"
	}
	key := uid + "/" + kind.String() + "/" + strconv.FormatInt(now.UnixMilli(), 10)
	if ext != "" {
		key += "." + strings.ToLower(ext)
	}
	return key
}
