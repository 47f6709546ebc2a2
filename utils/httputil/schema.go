package httputil

import (
	"net/url"

	"github.com/gorilla/schema"
)

// SchemaEncoder is an interface to encode structs into URL query values.
type SchemaEncoder interface {
	Encode(v interface{}) (url.Values, error)
}

var defaultSchema = func() *schema.Encoder {
	enc := schema.NewEncoder()
	enc.SetAliasTag("schema")
	return enc
}()

// DefaultSchema is the default URL query encoder. It uses gorilla/schema
// with the "schema" struct tag.
type DefaultSchema struct{}

var _ SchemaEncoder = (*DefaultSchema)(nil)

func (d DefaultSchema) Encode(v interface{}) (url.Values, error) {
	var values = url.Values{}
	if err := defaultSchema.Encode(v, values); err != nil {
		return nil, err
	}
	return values, nil
}
