package api

import (
	"encoding/base64"
	"fmt"

	"github.com/pkg/errors"
)

// Image wraps image data to be sent as a base64 data URI, as used by emoji,
// icon and avatar uploads.
type Image struct {
	// ContentType is typically "image/png", "image/jpeg" or "image/gif". If
	// empty, it is detected from the first bytes of Content.
	ContentType string

	// Content is the raw image data.
	Content []byte
}

// NullImage is an Image that marshals to JSON null, which removes the
// existing image.
var NullImage = Image{ContentType: "null"}

// Validate checks that the content type, if set, is an image type.
func (i Image) Validate() error {
	if i.ContentType == "" || i.ContentType == "null" {
		return nil
	}

	switch i.ContentType {
	case "image/png", "image/jpeg", "image/gif", "image/webp":
		return nil
	}

	return fmt.Errorf("unknown content type %q", i.ContentType)
}

func (i Image) MarshalJSON() ([]byte, error) {
	if i.ContentType == "null" {
		return []byte("null"), nil
	}

	if len(i.Content) == 0 {
		return []byte(`""`), nil
	}

	ctype := i.ContentType
	if ctype == "" {
		ctype = detectContentType(i.Content)
		if ctype == "" {
			return nil, errors.New("cannot detect image content type")
		}
	}

	b64 := base64.StdEncoding

	data := make([]byte, 0, 1+len("data:;base64,")+len(ctype)+b64.EncodedLen(len(i.Content))+1)
	data = append(data, '"')
	data = append(data, "data:"...)
	data = append(data, ctype...)
	data = append(data, ";base64,"...)

	content := make([]byte, b64.EncodedLen(len(i.Content)))
	b64.Encode(content, i.Content)

	data = append(data, content...)
	data = append(data, '"')

	return data, nil
}

func (i *Image) UnmarshalJSON(b []byte) error {
	// Images are write-only; the API never returns them in this shape.
	return nil
}

func detectContentType(b []byte) string {
	switch {
	case len(b) > 8 && string(b[:8]) == "\x89PNG\r\n\x1a\n":
		return "image/png"
	case len(b) > 3 && string(b[:3]) == "\xff\xd8\xff":
		return "image/jpeg"
	case len(b) > 6 && (string(b[:6]) == "GIF87a" || string(b[:6]) == "GIF89a"):
		return "image/gif"
	}
	return ""
}
