// Package blob 實作 blob 儲存的 client token 交握與上傳完成回呼
package blob

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const clientTokenPrefix = "vercel_blob_client_"

var (
	ErrInvalidToken     = errors.New("invalid blob token")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrTokenExpired     = errors.New("client token expired")
)

// UploadCallback 上傳完成後要通知的位址與附帶資料
type UploadCallback struct {
	CallbackURL  string  `json:"callbackUrl"`
	TokenPayload *string `json:"tokenPayload,omitempty"`
}

// ClientTokenPayload client token 內含的限制
type ClientTokenPayload struct {
	Pathname            string          `json:"pathname"`
	OnUploadCompleted   *UploadCallback `json:"onUploadCompleted,omitempty"`
	MaximumSizeInBytes  int64           `json:"maximumSizeInBytes,omitempty"`
	AllowedContentTypes []string        `json:"allowedContentTypes,omitempty"`
	ValidUntil          int64           `json:"validUntil"`
	AddRandomSuffix     *bool           `json:"addRandomSuffix,omitempty"`
}

// StoreID 從 read-write token 取出 store id（第四段）
func StoreID(readWriteToken string) (string, error) {
	parts := strings.Split(readWriteToken, "_")
	if len(parts) < 5 || parts[3] == "" {
		return "", fmt.Errorf("%w: malformed read-write token", ErrInvalidToken)
	}
	return parts[3], nil
}

func sign(secret string, data []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}

// GenerateClientToken 產生 vercel_blob_client_<store>_<base64(簽章.payload)>
func GenerateClientToken(readWriteToken string, p ClientTokenPayload, now time.Time) (string, error) {
	storeID, err := StoreID(readWriteToken)
	if err != nil {
		return "", err
	}
	if p.ValidUntil == 0 {
		p.ValidUntil = now.Add(time.Hour).UnixMilli()
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("GenerateClientToken: %w", err)
	}
	payload := base64.StdEncoding.EncodeToString(raw)
	secured := sign(readWriteToken, []byte(payload))
	return clientTokenPrefix + storeID + "_" +
		base64.StdEncoding.EncodeToString([]byte(secured+"."+payload)), nil
}

// ParseClientToken 驗證簽章與期限並取出 payload
func ParseClientToken(readWriteToken, clientToken string, now time.Time) (*ClientTokenPayload, error) {
	storeID, err := StoreID(readWriteToken)
	if err != nil {
		return nil, err
	}
	prefix := clientTokenPrefix + storeID + "_"
	if !strings.HasPrefix(clientToken, prefix) {
		return nil, ErrInvalidToken
	}
	inner, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(clientToken, prefix))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	secured, payload, ok := strings.Cut(string(inner), ".")
	if !ok {
		return nil, ErrInvalidToken
	}
	if !hmac.Equal([]byte(secured), []byte(sign(readWriteToken, []byte(payload)))) {
		return nil, ErrInvalidSignature
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	p := &ClientTokenPayload{}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if now.UnixMilli() > p.ValidUntil {
		return nil, ErrTokenExpired
	}
	return p, nil
}

// VerifySignature 比對 x-vercel-signature（body 的 HMAC-SHA256 hex）
func VerifySignature(readWriteToken string, body []byte, signature string) error {
	if signature == "" {
		return ErrInvalidSignature
	}
	if !hmac.Equal([]byte(strings.ToLower(signature)), []byte(sign(readWriteToken, body))) {
		return ErrInvalidSignature
	}
	return nil
}
