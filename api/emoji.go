package api

import (
	"github.com/pkg/errors"

	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/httputil"
)

// Emojis returns a list of emoji objects for the given guild.
func (c *Client) Emojis(guildID discord.GuildID) ([]discord.Emoji, error) {
	var emjs []discord.Emoji
	return emjs, c.RequestJSON(&emjs, "GET", EndpointGuilds+guildID.String()+"/emojis")
}

// Emoji returns an emoji object for the given guild and emoji IDs.
func (c *Client) Emoji(
	guildID discord.GuildID, emojiID discord.EmojiID) (*discord.Emoji, error) {

	var emj *discord.Emoji
	return emj, c.RequestJSON(
		&emj, "GET", EndpointGuilds+guildID.String()+"/emojis/"+emojiID.String())
}

// CreateEmojiData is the data for CreateEmoji.
//
// https://discord.com/developers/docs/resources/emoji#create-guild-emoji-json-params
type CreateEmojiData struct {
	// Name is the name of the emoji.
	Name string `json:"name"`
	// Image is the 128x128 emoji image. Emojis and animated emojis have a
	// maximum file size of 256kb.
	Image Image `json:"image"`
	// Roles are the roles that can use the emoji.
	Roles *[]discord.RoleID `json:"roles,omitempty"`

	AuditLogReason `json:"-"`
}

// CreateEmoji creates a new emoji in the guild. Emojis and animated emojis
// have a maximum file size of 256KB.
//
// Requires the MANAGE_EMOJIS_AND_STICKERS permission. Fires a
// GuildEmojisUpdateEvent on the gateway.
func (c *Client) CreateEmoji(
	guildID discord.GuildID, data CreateEmojiData) (*discord.Emoji, error) {

	if err := data.Image.Validate(); err != nil {
		return nil, errors.Wrap(err, "image error")
	}

	var emj *discord.Emoji
	return emj, c.RequestJSON(
		&emj, "POST",
		EndpointGuilds+guildID.String()+"/emojis",
		httputil.WithJSONBody(data),
		httputil.WithHeaders(data.Header()),
	)
}

// ModifyEmojiData is the data for ModifyEmoji.
type ModifyEmojiData struct {
	// Name is the name of the emoji.
	Name string `json:"name,omitempty"`
	// Roles are the roles that can use the emoji.
	Roles *[]discord.RoleID `json:"roles,omitempty"`

	AuditLogReason `json:"-"`
}

// ModifyEmoji changes an existing emoji. This requires MANAGE_EMOJIS. Name
// and roles are optional fields (though you'd want to change either though).
//
// Fires a GuildEmojisUpdateEvent on the gateway.
func (c *Client) ModifyEmoji(
	guildID discord.GuildID, emojiID discord.EmojiID, data ModifyEmojiData) error {

	return c.FastRequest(
		"PATCH",
		EndpointGuilds+guildID.String()+"/emojis/"+emojiID.String(),
		httputil.WithJSONBody(data),
		httputil.WithHeaders(data.Header()),
	)
}

// DeleteEmoji deletes the given emoji.
//
// Requires the MANAGE_EMOJIS_AND_STICKERS permission. Fires a
// GuildEmojisUpdateEvent on the gateway.
func (c *Client) DeleteEmoji(
	guildID discord.GuildID, emojiID discord.EmojiID, reason AuditLogReason) error {

	return c.FastRequest(
		"DELETE",
		EndpointGuilds+guildID.String()+"/emojis/"+emojiID.String(),
		httputil.WithHeaders(reason.Header()),
	)
}
