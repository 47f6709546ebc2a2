// Package json allows for different implementations of JSON serializing, as
// well as extra optional types needed.
package json

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Driver is the interface for a JSON serializer implementation. Packages in
// this module always go through the package-level functions below, so swapping
// the Default driver swaps the codec for the whole library.
type Driver interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error

	DecodeStream(r io.Reader, v interface{}) error
	EncodeStream(w io.Writer, v interface{}) error
}

// DefaultDriver is the default JSON driver. It uses json-iterator in its
// stdlib-compatible mode, which honors encoding/json struct tags and custom
// (Un)Marshaler implementations.
type DefaultDriver struct{}

var j = jsoniter.ConfigCompatibleWithStandardLibrary

func (d DefaultDriver) Marshal(v interface{}) ([]byte, error) {
	return j.Marshal(v)
}

func (d DefaultDriver) Unmarshal(data []byte, v interface{}) error {
	return j.Unmarshal(data, v)
}

func (d DefaultDriver) DecodeStream(r io.Reader, v interface{}) error {
	return j.NewDecoder(r).Decode(v)
}

func (d DefaultDriver) EncodeStream(w io.Writer, v interface{}) error {
	return j.NewEncoder(w).Encode(v)
}

// Default is the JSON driver used by the package-level functions.
var Default Driver = DefaultDriver{}

// Marshal uses the default driver.
func Marshal(v interface{}) ([]byte, error) {
	return Default.Marshal(v)
}

// Unmarshal uses the default driver.
func Unmarshal(data []byte, v interface{}) error {
	return Default.Unmarshal(data, v)
}

// DecodeStream uses the default driver.
func DecodeStream(r io.Reader, v interface{}) error {
	return Default.DecodeStream(r, v)
}

// EncodeStream uses the default driver.
func EncodeStream(w io.Writer, v interface{}) error {
	return Default.EncodeStream(w, v)
}
