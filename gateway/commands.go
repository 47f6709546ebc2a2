package gateway

import (
	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/json/option"
)

// HeartbeatCommand is a command for Op 1. It holds the last received sequence
// number and doubles as the server-initiated heartbeat request.
type HeartbeatCommand int64

// ResumeCommand is a command for Op 6. It replays events missed since
// Sequence on an existing session.
type ResumeCommand struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
	Sequence  int64  `json:"seq"`
}

// RequestGuildMembersCommand is a command for Op 8.
type RequestGuildMembersCommand struct {
	// GuildIDs is the list of guilds to request members for. Most servers
	// only accept a single guild ID.
	GuildIDs []discord.GuildID `json:"guild_id"`
	UserIDs  []discord.UserID  `json:"user_ids,omitempty"`

	// Query is a username prefix filter. It is mutually exclusive with
	// UserIDs. A present but empty query with Limit 0 returns all members.
	Query     option.String `json:"query,omitempty"`
	Limit     uint          `json:"limit"`
	Presences bool          `json:"presences,omitempty"`
	Nonce     string        `json:"nonce,omitempty"`
}

// UpdateVoiceStateCommand is a command for Op 4. A null ChannelID disconnects
// from voice.
type UpdateVoiceStateCommand struct {
	GuildID   discord.GuildID   `json:"guild_id"`
	ChannelID discord.ChannelID `json:"channel_id"` // NullChannelID to disconnect
	SelfMute  bool              `json:"self_mute"`
	SelfDeaf  bool              `json:"self_deaf"`
}

// UpdatePresenceCommand is a command for Op 3.
type UpdatePresenceCommand struct {
	Since discord.UnixMsTimestamp `json:"since"` // 0 if not idle

	Activities []discord.Activity `json:"activities"`

	Status discord.Status `json:"status"`
	AFK    bool           `json:"afk"`
}
