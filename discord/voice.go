package discord

// VoiceState represents a user's voice connection status.
//
// https://discord.com/developers/docs/resources/voice#voice-state-object
type VoiceState struct {
	// GuildID isn't sent on the websocket.
	GuildID GuildID `json:"guild_id,omitempty"`

	// ChannelID is the channel id this user is connected to. It is 0 if the
	// user disconnected.
	ChannelID ChannelID `json:"channel_id"`
	// UserID is the user id this voice state is for.
	UserID UserID `json:"user_id"`
	// Member is the guild member this voice state is for.
	Member *Member `json:"member,omitempty"`
	// SessionID is the session id for this voice state.
	SessionID string `json:"session_id"`

	// Deaf specifies whether the user is deafened by the server.
	Deaf bool `json:"deaf"`
	// Mute specifies whether the user is muted by the server.
	Mute bool `json:"mute"`
	// SelfDeaf specifies whether the user is locally deafened.
	SelfDeaf bool `json:"self_deaf"`
	// SelfMute specifies whether the user is locally muted.
	SelfMute bool `json:"self_mute"`
	// SelfStream specifies whether the user is streaming using "Go Live".
	SelfStream bool `json:"self_stream,omitempty"`
	// SelfVideo specifies whether the user's camera is enabled.
	SelfVideo bool `json:"self_video"`
	// Suppress specifies whether the user is muted by the current user.
	Suppress bool `json:"suppress"`

	// RequestToSpeakTimestamp specifies when the user requested to speak in
	// a stage channel. It is null (or never) if the user does not request to
	// speak.
	RequestToSpeakTimestamp Timestamp `json:"request_to_speak_timestamp"`
}

// VoiceRegion is a voice region that can be used for a guild's voice
// channels.
//
// https://discord.com/developers/docs/resources/voice#voice-region-object
type VoiceRegion struct {
	// ID is the unique id for the region.
	ID string `json:"id"`
	// Name is the name of the region.
	Name string `json:"name"`

	// VIP specifies whether this is a VIP-only server.
	VIP bool `json:"vip"`

	// Optimal specifies whether this is the closest server to the current
	// user's client.
	Optimal bool `json:"optimal"`
	// Deprecated specifies whether this is a deprecated voice region.
	Deprecated bool `json:"deprecated"`
	// Custom specifies whether this is a custom voice region, used for
	// events and such.
	Custom bool `json:"custom"`
}
