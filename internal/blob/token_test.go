package blob

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const rwToken = "vercel_blob_rw_store123_secretpart"

func TestStoreID(t *testing.T) {
	id, err := StoreID(rwToken)
	require.NoError(t, err)
	require.Equal(t, "store123", id)

	_, err = StoreID("vercel_blob_rw")
	require.ErrorIs(t, err, ErrInvalidToken)
	_, err = StoreID("")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestClientTokenRoundTrip(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	tok, err := GenerateClientToken(rwToken, ClientTokenPayload{
		Pathname:            "rover.png",
		AllowedContentTypes: []string{"image/png"},
		MaximumSizeInBytes:  10,
	}, now)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(tok, "vercel_blob_client_store123_"))

	p, err := ParseClientToken(rwToken, tok, now)
	require.NoError(t, err)
	require.Equal(t, "rover.png", p.Pathname)
	require.Equal(t, now.Add(time.Hour).UnixMilli(), p.ValidUntil)

	_, err = ParseClientToken(rwToken, tok, now.Add(2*time.Hour))
	require.ErrorIs(t, err, ErrTokenExpired)

	_, err = ParseClientToken("vercel_blob_rw_store123_othersecret", tok, now)
	require.ErrorIs(t, err, ErrInvalidSignature)

	_, err = ParseClientToken("vercel_blob_rw_other_secret", tok, now)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseClientToken(rwToken, "vercel_blob_client_store123_!!!", now)
	require.ErrorIs(t, err, ErrInvalidToken)

	noDot := "vercel_blob_client_store123_" + base64.StdEncoding.EncodeToString([]byte("abc"))
	_, err = ParseClientToken(rwToken, noDot, now)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = GenerateClientToken("bad", ClientTokenPayload{}, now)
	require.Error(t, err)
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"type":"blob.upload-completed"}`)
	sig := sign(rwToken, body)

	require.NoError(t, VerifySignature(rwToken, body, sig))
	require.NoError(t, VerifySignature(rwToken, body, strings.ToUpper(sig)))
	require.ErrorIs(t, VerifySignature(rwToken, body, ""), ErrInvalidSignature)
	require.ErrorIs(t, VerifySignature(rwToken, []byte("tampered"), sig), ErrInvalidSignature)
}
