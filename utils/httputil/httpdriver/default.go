package httpdriver

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the request timeout used by NewClient.
const DefaultTimeout = 10 * time.Second

// DefaultClient adapts the stdlib http.Client to the Client interface.
type DefaultClient http.Client

var _ Client = (*DefaultClient)(nil)

// WrapClient adapts an existing http.Client into a driver Client.
func WrapClient(client http.Client) Client {
	return DefaultClient(client)
}

// NewClient returns a stdlib-backed Client with DefaultTimeout applied.
func NewClient() Client {
	return WrapClient(http.Client{
		Timeout: DefaultTimeout,
	})
}

func (d DefaultClient) NewRequest(ctx context.Context, method, url string) (Request, error) {
	r, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	return (*DefaultRequest)(r), nil
}

func (d DefaultClient) Do(req Request) (Response, error) {
	// A DefaultClient is only ever given its own requests back.
	r, err := (*http.Client)(&d).Do((*http.Request)(req.(*DefaultRequest)))
	if err != nil {
		return nil, err
	}

	return (*DefaultResponse)(r), nil
}

// DefaultRequest adapts the stdlib http.Request to the Request interface.
type DefaultRequest http.Request

var _ Request = (*DefaultRequest)(nil)

func (r *DefaultRequest) GetPath() string {
	return r.URL.Path
}

func (r *DefaultRequest) GetContext() context.Context {
	return (*http.Request)(r).Context()
}

func (r *DefaultRequest) AddQuery(values url.Values) {
	qs := r.URL.Query()
	for k, v := range values {
		qs[k] = append(qs[k], v...)
	}

	r.URL.RawQuery = qs.Encode()
}

func (r *DefaultRequest) AddHeader(header http.Header) {
	for k, v := range header {
		r.Header[k] = append(r.Header[k], v...)
	}
}

func (r *DefaultRequest) WithBody(body io.ReadCloser) {
	r.Body = body
}

// DefaultResponse adapts the stdlib http.Response to the Response interface.
type DefaultResponse http.Response

var _ Response = (*DefaultResponse)(nil)

func (r *DefaultResponse) GetStatus() int {
	return r.StatusCode
}

func (r *DefaultResponse) GetHeader() http.Header {
	return r.Header
}

func (r *DefaultResponse) GetBody() io.ReadCloser {
	return r.Body
}
