package httputil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accordlib/accord/utils/httputil/httpdriver"
)

// stubClient replays the given responses in order.
type stubClient struct {
	responses []*httpdriver.MockResponse
	requests  []*httpdriver.MockRequest
}

func (c *stubClient) NewRequest(ctx context.Context, method, url string) (httpdriver.Request, error) {
	return httpdriver.NewMockRequestWithContext(ctx, method, url, nil, nil), nil
}

func (c *stubClient) Do(req httpdriver.Request) (httpdriver.Response, error) {
	c.requests = append(c.requests, req.(*httpdriver.MockRequest))

	resp := c.responses[0]
	if len(c.responses) > 1 {
		c.responses = c.responses[1:]
	}
	return resp, nil
}

func newStubbedClient(responses ...*httpdriver.MockResponse) (*Client, *stubClient) {
	stub := &stubClient{responses: responses}

	client := NewClient()
	client.Client = stub
	return client, stub
}

func TestRequestJSON(t *testing.T) {
	client, stub := newStubbedClient(
		httpdriver.NewMockResponse(200, nil, map[string]string{"id": "1234"}),
	)

	var body struct {
		ID string `json:"id"`
	}

	err := client.RequestJSON(&body, "GET", "https://example.com/thing")
	require.NoError(t, err)
	assert.Equal(t, "1234", body.ID)

	require.Len(t, stub.requests, 1)
	assert.Equal(t, "/thing", stub.requests[0].GetPath())
}

func TestRequestRetry(t *testing.T) {
	client, stub := newStubbedClient(
		httpdriver.NewMockResponse(502, nil, nil),
		httpdriver.NewMockResponse(429, nil, nil),
		httpdriver.NewMockResponse(204, nil, nil),
	)

	err := client.FastRequest("POST", "https://example.com/thing")
	require.NoError(t, err)
	assert.Len(t, stub.requests, 3)
}

func TestRequestHTTPError(t *testing.T) {
	client, _ := newStubbedClient(
		httpdriver.NewMockResponse(403, nil, map[string]interface{}{
			"code":    50013,
			"message": "Missing Permissions",
		}),
	)

	err := client.FastRequest("DELETE", "https://example.com/thing")
	require.Error(t, err)

	httpErr, ok := err.(*HTTPError)
	require.True(t, ok, "expected *HTTPError, got %T", err)
	assert.Equal(t, 403, httpErr.Status)
	assert.Equal(t, ErrorCode(50013), httpErr.Code)
	assert.Equal(t, "Missing Permissions", httpErr.Message)
}

func TestRequestOptions(t *testing.T) {
	client, stub := newStubbedClient(
		httpdriver.NewMockResponse(204, nil, nil),
	)
	client.OnRequest = []RequestOption{
		WithHeaders(map[string][]string{
			"Authorization": {"Bot token"},
		}),
	}

	err := client.FastRequest("GET", "https://example.com/thing")
	require.NoError(t, err)

	require.Len(t, stub.requests, 1)
	assert.Equal(t, "Bot token", stub.requests[0].Header.Get("Authorization"))
}

func TestDefaultSchema(t *testing.T) {
	var query = struct {
		Limit  uint   `schema:"limit"`
		After  string `schema:"after,omitempty"`
		Before string `schema:"before,omitempty"`
	}{
		Limit: 100,
		After: "1234",
	}

	values, err := DefaultSchema{}.Encode(query)
	require.NoError(t, err)
	assert.Equal(t, "100", values.Get("limit"))
	assert.Equal(t, "1234", values.Get("after"))
	assert.Empty(t, values.Get("before"))
}
