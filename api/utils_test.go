package api

import (
	"context"

	"github.com/accordlib/accord/utils/httputil"
	"github.com/accordlib/accord/utils/httputil/httpdriver"
)

// mockClient is an httpdriver.Client that captures the request and replies
// with a canned response.
type mockClient struct {
	request *httpdriver.MockRequest
	respond func(req *httpdriver.MockRequest) *httpdriver.MockResponse
}

var _ httpdriver.Client = (*mockClient)(nil)

func (c *mockClient) NewRequest(ctx context.Context, method, url string) (httpdriver.Request, error) {
	return httpdriver.NewMockRequestWithContext(ctx, method, url, nil, nil), nil
}

func (c *mockClient) Do(req httpdriver.Request) (httpdriver.Response, error) {
	c.request = req.(*httpdriver.MockRequest)
	return c.respond(c.request), nil
}

// mockAPI creates an api.Client that hands every request to the given
// responder.
func mockAPI(token string, respond func(req *httpdriver.MockRequest) *httpdriver.MockResponse) (*Client, *mockClient) {
	mock := &mockClient{respond: respond}

	httpClient := httputil.NewClient()
	httpClient.Client = mock

	return NewCustomClient(token, httpClient), mock
}
