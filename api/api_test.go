package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accordlib/accord/utils/httputil/httpdriver"
)

func TestSessionInjectRequest(t *testing.T) {
	client, mock := mockAPI("Bot token", func(req *httpdriver.MockRequest) *httpdriver.MockResponse {
		return httpdriver.NewMockResponse(200, nil, map[string]string{
			"url": "wss://gateway.discord.gg",
		})
	})

	url, err := client.GatewayURL()
	require.NoError(t, err)
	assert.Equal(t, "wss://gateway.discord.gg", url)

	assert.Equal(t, "GET", mock.request.Method)
	assert.Equal(t, EndpointGateway, mock.request.URL.String())
	assert.Equal(t, "Bot token", mock.request.Header.Get("Authorization"))
	assert.Equal(t, UserAgent, mock.request.Header.Get("User-Agent"))
}

func TestSessionNoToken(t *testing.T) {
	client, mock := mockAPI("", func(req *httpdriver.MockRequest) *httpdriver.MockResponse {
		return httpdriver.NewMockResponse(204, nil, nil)
	})

	require.NoError(t, client.Typing(1337))

	_, hasAuth := mock.request.Header["Authorization"]
	assert.False(t, hasAuth, "Authorization header should be absent without a token")
}

func TestAuditLogReasonHeader(t *testing.T) {
	assert.Nil(t, AuditLogReason("").Header())

	h := AuditLogReason("spam cleanup").Header()
	assert.Equal(t, http.Header{
		"X-Audit-Log-Reason": {"spam+cleanup"},
	}, h)
}
