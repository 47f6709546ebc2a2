package gateway

import "github.com/accordlib/accord/discord"

// ReadyEvent is a dispatch event for READY. It is sent once after a
// successful identify.
type ReadyEvent struct {
	Version int `json:"v"`

	User      discord.User `json:"user"`
	SessionID string       `json:"session_id"`

	// ResumeGatewayURL is the URL to reconnect to when resuming.
	ResumeGatewayURL string `json:"resume_gateway_url"`

	// Guilds are unavailable at this point; each is filled in by a following
	// GUILD_CREATE event.
	Guilds []GuildCreateEvent `json:"guilds"`

	Shard *Shard `json:"shard,omitempty"`

	Application ReadyApplication `json:"application"`
}

// ReadyApplication is the partial application object inside a ReadyEvent.
type ReadyApplication struct {
	ID    discord.AppID            `json:"id"`
	Flags discord.ApplicationFlags `json:"flags"`
}
