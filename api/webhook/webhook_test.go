package webhook

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accordlib/accord/api"
	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/json"
)

func TestParseURL(t *testing.T) {
	id, token, err := ParseURL("https://discord.com/api/webhooks/123456/abcxyz")
	require.NoError(t, err)
	assert.Equal(t, discord.WebhookID(123456), id)
	assert.Equal(t, "abcxyz", token)

	_, _, err = ParseURL("https://example.com/not/a/webhook")
	assert.Error(t, err)
}

func TestInteractionServerPing(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	srv, err := NewInteractionServer(
		hex.EncodeToString(pub),
		InteractionHandlerFunc(func(*discord.InteractionEvent) *api.InteractionResponse {
			t.Fatal("handler must not be called for pings")
			return nil
		}),
	)
	require.NoError(t, err)

	body := []byte(`{"id":"1","application_id":"2","type":1,"token":"t","version":1}`)

	req := signedRequest(t, priv, body)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code, "body: %s", rec.Body.String())

	var resp api.InteractionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, api.PongInteraction, resp.Type)
}

func TestInteractionServerBadSignature(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	_, wrongPriv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	srv, err := NewInteractionServer(
		hex.EncodeToString(pub),
		InteractionHandlerFunc(func(*discord.InteractionEvent) *api.InteractionResponse {
			t.Fatal("handler must not be called")
			return nil
		}),
	)
	require.NoError(t, err)

	body := []byte(`{"id":"1","application_id":"2","type":1,"token":"t","version":1}`)

	req := signedRequest(t, wrongPriv, body)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, 401, rec.Code)
}

func signedRequest(t *testing.T, priv ed25519.PrivateKey, body []byte) *http.Request {
	t.Helper()

	const timestamp = "1640995200"

	msg := append([]byte(timestamp), body...)
	sig := ed25519.Sign(priv, msg)

	req := httptest.NewRequest("POST", "/interactions", bytes.NewReader(body))
	req.Header.Set("X-Signature-Ed25519", hex.EncodeToString(sig))
	req.Header.Set("X-Signature-Timestamp", timestamp)

	return req
}
