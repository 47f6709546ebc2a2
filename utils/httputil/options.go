package httputil

import (
	"io"
	"net/http"
	"net/url"

	"github.com/accordlib/accord/utils/httputil/httpdriver"
	"github.com/accordlib/accord/utils/json"
)

// RequestOption is a function to mutate a request before it is sent.
type RequestOption func(httpdriver.Request) error

// ResponseFunc is called after a request is done. The response may be nil if
// the request itself failed.
type ResponseFunc func(httpdriver.Request, httpdriver.Response) error

// PrependOptions prepends the given options right before the other ones.
func PrependOptions(opts []RequestOption, prepend ...RequestOption) []RequestOption {
	if len(opts) == 0 {
		return prepend
	}
	return append(prepend, opts...)
}

// JSONRequest sets the request's content type to JSON.
func JSONRequest(r httpdriver.Request) error {
	r.AddHeader(http.Header{
		"Content-Type": {"application/json"},
	})
	return nil
}

// MultipartRequest sets the request's content type to multipart form data.
func MultipartRequest(r httpdriver.Request) error {
	r.AddHeader(http.Header{
		"Content-Type": {"multipart/form-data"},
	})
	return nil
}

// WithHeaders appends the given headers to the request.
func WithHeaders(headers http.Header) RequestOption {
	return func(r httpdriver.Request) error {
		r.AddHeader(headers)
		return nil
	}
}

// WithContentType sets the request's content type.
func WithContentType(ctype string) RequestOption {
	return func(r httpdriver.Request) error {
		r.AddHeader(http.Header{
			"Content-Type": {ctype},
		})
		return nil
	}
}

// WithSchema encodes v using the schema encoder and appends the returned
// values to the request query.
func WithSchema(schema SchemaEncoder, v interface{}) RequestOption {
	return func(r httpdriver.Request) error {
		params, err := schema.Encode(v)
		if err != nil {
			return err
		}

		r.AddQuery(url.Values(params))
		return nil
	}
}

// WithBody sets the request body. The body is closed when the request is
// done.
func WithBody(body io.ReadCloser) RequestOption {
	return func(r httpdriver.Request) error {
		r.WithBody(body)
		return nil
	}
}

// WithJSONBody streams the JSON encoding of v as the request body.
func WithJSONBody(v interface{}) RequestOption {
	if v == nil {
		return func(httpdriver.Request) error {
			return nil
		}
	}

	var err error
	var rp, wp = io.Pipe()

	go func() {
		err = json.EncodeStream(wp, v)
		wp.Close()
	}()

	return func(r httpdriver.Request) error {
		if err != nil {
			return err
		}

		r.AddHeader(http.Header{
			"Content-Type": {"application/json"},
		})

		r.WithBody(rp)
		return nil
	}
}
