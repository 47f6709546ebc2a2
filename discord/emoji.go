package discord

import (
	"net/url"
	"strings"
	"time"
)

// Emoji is an emoji, which may be a custom guild emoji or a unicode emoji.
//
// https://discord.com/developers/docs/resources/emoji#emoji-object
type Emoji struct {
	// ID is the id of the emoji. It is 0 for unicode emojis.
	ID EmojiID `json:"id"`
	// Name is the name of the emoji, or the actual unicode codepoints for
	// unicode emojis.
	Name string `json:"name"`

	// RoleIDs are the roles allowed to use the emoji.
	RoleIDs []RoleID `json:"roles,omitempty"`
	// User is the user that created the emoji.
	User User `json:"user,omitempty"`

	// RequireColons specifies whether the emoji must be wrapped in colons.
	RequireColons bool `json:"require_colons,omitempty"`
	// Managed specifies whether the emoji is managed by an integration.
	Managed bool `json:"managed,omitempty"`
	// Animated specifies whether the emoji is animated.
	Animated bool `json:"animated,omitempty"`
	// Available specifies whether the emoji can be used. It may be false
	// due to loss of server boosts.
	Available bool `json:"available,omitempty"`
}

// NewCustomEmoji creates a new custom emoji with the given ID and name.
func NewCustomEmoji(id EmojiID, name string) Emoji {
	return Emoji{
		ID:   id,
		Name: name,
	}
}

// NewUnicodeEmoji creates a new unicode emoji.
func NewUnicodeEmoji(unicode string) Emoji {
	return Emoji{Name: unicode}
}

// IsCustom returns whether the emoji is a custom emoji.
func (e Emoji) IsCustom() bool {
	return e.ID.IsValid()
}

// IsUnicode returns whether the emoji is a unicode emoji.
func (e Emoji) IsUnicode() bool {
	return !e.IsCustom()
}

// CreatedAt returns a time object representing when the emoji was created.
// It returns the zero time for unicode emojis.
func (e Emoji) CreatedAt() time.Time {
	if e.IsUnicode() {
		return time.Time{}
	}
	return e.ID.Time()
}

// String formats the string like how the client does.
func (e Emoji) String() string {
	if e.ID == 0 {
		return e.Name
	}

	var parts = [3]string{
		"", e.Name, e.ID.String(),
	}

	if e.Animated {
		parts[0] = "a"
	}

	return "<" + strings.Join(parts[:], ":") + ">"
}

// APIString returns a string usable for sending over to the API in reaction
// endpoints.
func (e Emoji) APIString() APIEmoji {
	if e.ID == 0 {
		return APIEmoji(e.Name) // unicode
	}

	return APIEmoji(e.Name + ":" + e.ID.String())
}

// APIEmoji is a string usable in reaction endpoint paths. It is either a
// unicode emoji or a name:id pair for custom emojis.
type APIEmoji string

// NewAPIEmoji creates a new API emoji from the ID and name. If id is not
// valid, then name is returned as a unicode emoji.
func NewAPIEmoji(id EmojiID, name string) APIEmoji {
	if !id.IsValid() {
		return APIEmoji(name)
	}
	return APIEmoji(name + ":" + id.String())
}

// PathString returns the APIEmoji as a path-encoded string.
func (e APIEmoji) PathString() string {
	return url.PathEscape(string(e))
}

// EmojiURL returns the URL of the emoji and auto-detects a suitable type.
//
// An empty string is returned if the emoji is a unicode emoji.
func (e Emoji) EmojiURL() string {
	if e.Animated {
		return e.EmojiURLWithType(GIFImage)
	}

	return e.EmojiURLWithType(PNGImage)
}

// EmojiURLWithType returns the URL to the emoji's image using the passed
// ImageType. An empty string is returned if the emoji is a unicode emoji.
//
// Supported ImageTypes: PNG, GIF
func (e Emoji) EmojiURLWithType(t ImageType) string {
	if e.ID == 0 {
		return ""
	}

	if t == AutoImage {
		return e.EmojiURL()
	}

	return "https://cdn.discordapp.com/emojis/" + t.format(e.ID.String())
}
