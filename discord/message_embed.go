package discord

import (
	"fmt"
	"strconv"
)

// Color is an RGB color value. It is serialized as a decimal integer. A
// value of -1 encodes to JSON null, and null decodes to -1.
type Color int32

// DefaultEmbedColor is the default color of an embed, as rendered by the
// official clients.
var DefaultEmbedColor Color = 0x303030

// NullColor is a Color that's marshaled to JSON null.
const NullColor Color = -1

// OptionalColor is the option type for Color. Assigning NullColor serializes
// to JSON null.
type OptionalColor = *Color

// NewOptionalColor creates a new OptionalColor using the value of the passed
// Color.
func NewOptionalColor(c Color) OptionalColor { return &c }

// Uint32 returns the color as a uint32, or 0 if the color is null.
func (c Color) Uint32() uint32 {
	if c < 0 {
		return 0
	}
	return uint32(c)
}

// Int returns the color as an int, or -1 if the color is null.
func (c Color) Int() int {
	return int(c)
}

// RGB returns the red, green and blue components of the color.
func (c Color) RGB() (uint8, uint8, uint8) {
	u := c.Uint32()
	return uint8(u >> 16), uint8(u >> 8), uint8(u)
}

func (c Color) MarshalJSON() ([]byte, error) {
	if c < 0 {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(int(c))), nil
}

func (c *Color) UnmarshalJSON(json []byte) error {
	s := string(json)
	if s == "null" {
		*c = NullColor
		return nil
	}

	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return err
	}

	*c = Color(i)
	return nil
}

// Embed is an embedded piece of rich content in a message.
//
// https://discord.com/developers/docs/resources/channel#embed-object
type Embed struct {
	// Title is the title of the embed.
	Title string `json:"title,omitempty"`
	// Type is the type of the embed. It is always "rich" for webhook
	// embeds.
	Type EmbedType `json:"type,omitempty"`
	// Description is the description of the embed.
	Description string `json:"description,omitempty"`
	// URL is the URL of the embed.
	URL URL `json:"url,omitempty"`

	// Timestamp is the timestamp of the embed content.
	Timestamp Timestamp `json:"timestamp,omitempty"`
	// Color is the color code of the embed.
	Color Color `json:"color,omitempty"`

	Footer    *EmbedFooter    `json:"footer,omitempty"`
	Image     *EmbedImage     `json:"image,omitempty"`
	Thumbnail *EmbedThumbnail `json:"thumbnail,omitempty"`
	Video     *EmbedVideo     `json:"video,omitempty"`
	Provider  *EmbedProvider  `json:"provider,omitempty"`
	Author    *EmbedAuthor    `json:"author,omitempty"`
	Fields    []EmbedField    `json:"fields,omitempty"`
}

// NewEmbed creates a normal embed with default values.
func NewEmbed() *Embed {
	return &Embed{
		Type:  NormalEmbed,
		Color: DefaultEmbedColor,
	}
}

// Validate validates the embed against the API's length limits. The
// reference on limits can be found at
// https://discord.com/developers/docs/resources/channel#embed-limits.
func (e *Embed) Validate() error {
	if e.Type == "" {
		e.Type = NormalEmbed
	}

	if len(e.Title) > 256 {
		return &ErrOverbound{len(e.Title), 256, "title"}
	}

	if len(e.Description) > 4096 {
		return &ErrOverbound{len(e.Description), 4096, "description"}
	}

	if len(e.Fields) > 25 {
		return &ErrOverbound{len(e.Fields), 25, "fields"}
	}

	if e.Footer != nil && len(e.Footer.Text) > 2048 {
		return &ErrOverbound{len(e.Footer.Text), 2048, "footer text"}
	}

	if e.Author != nil && len(e.Author.Name) > 256 {
		return &ErrOverbound{len(e.Author.Name), 256, "author name"}
	}

	var sum = 0 +
		len(e.Title) +
		len(e.Description)

	if e.Footer != nil {
		sum += len(e.Footer.Text)
	}
	if e.Author != nil {
		sum += len(e.Author.Name)
	}

	for i, field := range e.Fields {
		if len(field.Name) > 256 {
			return &ErrOverbound{len(field.Name), 256,
				fmt.Sprintf("field %d name", i)}
		}

		if len(field.Value) > 1024 {
			return &ErrOverbound{len(field.Value), 1024,
				fmt.Sprintf("field %d value", i)}
		}

		sum += len(field.Name) + len(field.Value)
	}

	if sum > 6000 {
		return &ErrOverbound{sum, 6000, "sum of all characters"}
	}

	return nil
}

// Length returns the sum of the lengths of all text in the embed.
func (e Embed) Length() int {
	var sum = 0 +
		len(e.Title) +
		len(e.Description)

	if e.Footer != nil {
		sum += len(e.Footer.Text)
	}
	if e.Author != nil {
		sum += len(e.Author.Name)
	}

	for _, field := range e.Fields {
		sum += len(field.Name) + len(field.Value)
	}

	return sum
}

// ErrOverbound is an error that's returned if any of the embed's fields
// exceed their limits.
type ErrOverbound struct {
	Count int
	Max   int
	Thing string
}

var _ error = (*ErrOverbound)(nil)

func (e ErrOverbound) Error() string {
	if e.Thing == "" {
		return fmt.Sprintf("embed is overbound by %d characters", e.Count-e.Max)
	}

	return fmt.Sprintf("embed (%s) is too long, %d out of %d maximum",
		e.Thing, e.Count, e.Max)
}

// EmbedType is the type of an embed.
type EmbedType string

const (
	NormalEmbed  EmbedType = "rich"
	ImageEmbed   EmbedType = "image"
	VideoEmbed   EmbedType = "video"
	GIFVEmbed    EmbedType = "gifv"
	ArticleEmbed EmbedType = "article"
	LinkEmbed    EmbedType = "link"
)

type EmbedFooter struct {
	// Text is the footer text.
	Text string `json:"text"`
	// Icon is the URL of the footer icon.
	Icon URL `json:"icon_url,omitempty"`
	// ProxyIcon is the proxied URL of the footer icon.
	ProxyIcon URL `json:"proxy_icon_url,omitempty"`
}

type EmbedImage struct {
	URL    URL  `json:"url"`
	Proxy  URL  `json:"proxy_url,omitempty"`
	Height uint `json:"height,omitempty"`
	Width  uint `json:"width,omitempty"`
}

type EmbedThumbnail struct {
	URL    URL  `json:"url"`
	Proxy  URL  `json:"proxy_url,omitempty"`
	Height uint `json:"height,omitempty"`
	Width  uint `json:"width,omitempty"`
}

type EmbedVideo struct {
	URL    URL  `json:"url"`
	Height uint `json:"height,omitempty"`
	Width  uint `json:"width,omitempty"`
}

type EmbedProvider struct {
	Name string `json:"name"`
	URL  URL    `json:"url,omitempty"`
}

type EmbedAuthor struct {
	Name      string `json:"name,omitempty"`
	URL       URL    `json:"url,omitempty"`
	Icon      URL    `json:"icon_url,omitempty"`
	ProxyIcon URL    `json:"proxy_icon_url,omitempty"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}
