package discord

import "strings"

// ImageType is the file extension of a CDN image resource.
type ImageType string

const (
	// AutoImage chooses automatically between a PNG and GIF.
	AutoImage ImageType = "auto"

	// JPEGImage is the JPEG image type.
	JPEGImage ImageType = ".jpeg"
	// PNGImage is the PNG image type.
	PNGImage ImageType = ".png"
	// WebPImage is the WebP image type.
	WebPImage ImageType = ".webp"
	// GIFImage is the GIF image type.
	GIFImage ImageType = ".gif"
)

func (t ImageType) format(name string) string {
	switch {
	case t != AutoImage:
		return name + string(t)
	case strings.HasPrefix(name, "a_"): // animated hash
		return name + ".gif"
	default:
		return name + ".png"
	}
}

// URL is a string that represents a URL.
type URL = string

// Hash is a string that represents a CDN resource hash.
type Hash = string
