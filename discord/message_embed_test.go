package discord

import (
	"strings"
	"testing"

	"github.com/accordlib/accord/utils/json"
)

func TestEmbedValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		embed := NewEmbed()
		embed.Title = "a lonely paper crane"
		embed.Description = "folded from a single sheet"

		if err := embed.Validate(); err != nil {
			t.Fatal("unexpected error for valid embed:", err)
		}
		if embed.Type != NormalEmbed {
			t.Fatal("unexpected embed type:", embed.Type)
		}
	})

	t.Run("title too long", func(t *testing.T) {
		embed := Embed{Title: strings.Repeat("a", 257)}
		if err := embed.Validate(); err == nil {
			t.Fatal("expected error for overlong title")
		}
	})

	t.Run("too many fields", func(t *testing.T) {
		embed := Embed{Fields: make([]EmbedField, 26)}
		if err := embed.Validate(); err == nil {
			t.Fatal("expected error for too many fields")
		}
	})

	t.Run("sum too long", func(t *testing.T) {
		embed := Embed{
			Description: strings.Repeat("a", 4000),
			Fields: []EmbedField{
				{Name: "x", Value: strings.Repeat("b", 1024)},
				{Name: "y", Value: strings.Repeat("c", 1024)},
			},
		}
		if err := embed.Validate(); err == nil {
			t.Fatal("expected error for overlong embed")
		}
	})
}

func TestEmbedLength(t *testing.T) {
	embed := Embed{
		Title:       "12345",
		Description: "12345",
		Footer:      &EmbedFooter{Text: "12345"},
		Author:      &EmbedAuthor{Name: "12345"},
		Fields: []EmbedField{
			{Name: "12345", Value: "12345"},
		},
	}

	if l := embed.Length(); l != 30 {
		t.Fatal("unexpected embed length:", l)
	}
}

func TestColorJSON(t *testing.T) {
	t.Run("marshal null", func(t *testing.T) {
		b, err := NullColor.MarshalJSON()
		if err != nil {
			t.Fatal("failed to marshal null color:", err)
		}
		if string(b) != "null" {
			t.Fatal("unexpected JSON:", string(b))
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		var c Color
		if err := c.UnmarshalJSON([]byte("16711680")); err != nil {
			t.Fatal("failed to unmarshal color:", err)
		}

		r, g, b := c.RGB()
		if r != 0xFF || g != 0 || b != 0 {
			t.Fatal("unexpected RGB:", r, g, b)
		}
	})

	t.Run("unmarshal null", func(t *testing.T) {
		var c Color
		if err := c.UnmarshalJSON([]byte("null")); err != nil {
			t.Fatal("failed to unmarshal null color:", err)
		}
		if c != NullColor {
			t.Fatal("unexpected color:", c)
		}
	})

	t.Run("optional", func(t *testing.T) {
		b, err := json.Marshal(struct {
			Color OptionalColor `json:"color,omitempty"`
		}{
			Color: NewOptionalColor(NullColor),
		})
		if err != nil {
			t.Fatal("failed to marshal optional color:", err)
		}
		if string(b) != `{"color":null}` {
			t.Fatal("unexpected JSON:", string(b))
		}
	})
}
