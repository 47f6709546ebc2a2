package httpdriver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
)

// MockRequest is an in-memory Request for tests. Drivers under test can
// inspect the request exactly as the client built it.
type MockRequest struct {
	Method string
	URL    url.URL
	Header http.Header
	Body   []byte

	ctx context.Context
}

var _ Request = (*MockRequest)(nil)

// NewMockRequest creates a mock request with a background context. It panics
// on an invalid URL or an unmarshalable body.
func NewMockRequest(method, urlstr string, header http.Header, jsonBody interface{}) *MockRequest {
	return NewMockRequestWithContext(context.Background(), method, urlstr, header, jsonBody)
}

// NewMockRequestWithContext is NewMockRequest with an explicit context.
func NewMockRequestWithContext(ctx context.Context, method, urlstr string, header http.Header, jsonBody interface{}) *MockRequest {
	u, err := url.Parse(urlstr)
	if err != nil {
		panic(err)
	}

	if header == nil {
		header = http.Header{}
	}

	return &MockRequest{
		Method: method,
		URL:    *u,
		Header: header,
		Body:   marshalMockBody(jsonBody),
		ctx:    ctx,
	}
}

func (r *MockRequest) GetPath() string {
	return r.URL.Path
}

func (r *MockRequest) GetContext() context.Context {
	return r.ctx
}

func (r *MockRequest) AddHeader(h http.Header) {
	for k, v := range h {
		r.Header[k] = append(r.Header[k], v...)
	}
}

func (r *MockRequest) AddQuery(values url.Values) {
	qs := r.URL.Query()
	for k, v := range values {
		qs[k] = append(qs[k], v...)
	}
	r.URL.RawQuery = qs.Encode()
}

func (r *MockRequest) WithBody(body io.ReadCloser) {
	r.Body, _ = io.ReadAll(body)
	body.Close()
}

// MockResponse is a canned Response for tests.
type MockResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

var _ Response = (*MockResponse)(nil)

// NewMockResponse creates a mock response with the given status code. A
// non-nil jsonBody is marshaled into the response body, panicking on error.
func NewMockResponse(code int, h http.Header, jsonBody interface{}) *MockResponse {
	return &MockResponse{
		StatusCode: code,
		Header:     h,
		Body:       marshalMockBody(jsonBody),
	}
}

func (r *MockResponse) GetStatus() int {
	return r.StatusCode
}

func (r *MockResponse) GetHeader() http.Header {
	return r.Header
}

func (r *MockResponse) GetBody() io.ReadCloser {
	return io.NopCloser(bytes.NewReader(r.Body))
}

func marshalMockBody(jsonBody interface{}) []byte {
	if jsonBody == nil {
		return nil
	}

	b, err := json.Marshal(jsonBody)
	if err != nil {
		panic(err)
	}
	return b
}
