package discord

// Status is the enumerated type for a user's presence status.
type Status string

const (
	UnknownStatus      Status = ""
	OnlineStatus       Status = "online"
	DoNotDisturbStatus Status = "dnd"
	IdleStatus         Status = "idle"
	InvisibleStatus    Status = "invisible"
	OfflineStatus      Status = "offline"
)

// Presence is a user's presence state on a guild.
//
// https://discord.com/developers/docs/topics/gateway#presence-update
type Presence struct {
	// User is the user presence is being updated for. Only the ID field is
	// guaranteed to be valid per Discord's documentation.
	User User `json:"user"`
	// GuildID is the id of the guild.
	GuildID GuildID `json:"guild_id"`
	// Status is either "idle", "dnd", "online", or "offline".
	Status Status `json:"status"`
	// Activities are the user's current activities.
	Activities []Activity `json:"activities"`
	// ClientStatus is the user's platform-dependent status.
	ClientStatus ClientStatus `json:"client_status"`
}

// ClientStatus is the user's platform-dependent status.
//
// https://discord.com/developers/docs/topics/gateway#client-status-object
type ClientStatus struct {
	// Desktop is the user's status set for an active desktop (Windows,
	// Linux, Mac) application session.
	Desktop Status `json:"desktop,omitempty"`
	// Mobile is the user's status set for an active mobile (iOS, Android)
	// application session.
	Mobile Status `json:"mobile,omitempty"`
	// Web is the user's status set for an active web (browser, bot
	// account) application session.
	Web Status `json:"web,omitempty"`
}

// Activity is a user's activity.
//
// https://discord.com/developers/docs/topics/gateway#activity-object
type Activity struct {
	// Name is the activity's name.
	Name string `json:"name"`
	// Type is the activity's type.
	Type ActivityType `json:"type"`
	// URL is the stream URL. It is only validated when Type is
	// StreamingActivity.
	URL URL `json:"url,omitempty"`

	// CreatedAt is when the activity was added to the user's
	// session.
	CreatedAt UnixMsTimestamp `json:"created_at,omitempty"`
	// Timestamps are the timestamps for start and end of the game.
	Timestamps *ActivityTimestamps `json:"timestamps,omitempty"`

	// AppID is the application id for the game.
	AppID AppID `json:"application_id,omitempty"`
	// Details is what the player is currently doing.
	Details string `json:"details,omitempty"`
	// State is the user's current party status, or the text used for a custom
	// status.
	State string `json:"state,omitempty"`
	// Emoji is the emoji used for a custom status.
	Emoji *Emoji `json:"emoji,omitempty"`

	// Party is the information for the current party of the player.
	Party *ActivityParty `json:"party,omitempty"`
	// Assets are the images for the presence and their hover texts.
	Assets *ActivityAssets `json:"assets,omitempty"`
	// Secrets are the secrets for Rich Presence joining and spectating.
	Secrets *ActivitySecrets `json:"secrets,omitempty"`

	// Instance specifies whether or not the activity is an instanced game
	// session.
	Instance bool `json:"instance,omitempty"`
	// Flags are the activity flags, OR'd together.
	Flags ActivityFlags `json:"flags,omitempty"`

	// SyncID is undocumented. It is the song ID when listening to Spotify.
	SyncID string `json:"sync_id,omitempty"`
	// SessionID is undocumented.
	SessionID string `json:"session_id,omitempty"`
}

// ActivityType is the enumerated type of an activity.
type ActivityType uint8

const (
	// GameActivity is shown as "Playing $name".
	GameActivity ActivityType = iota
	// StreamingActivity is shown as "Streaming $details".
	StreamingActivity
	// ListeningActivity is shown as "Listening to $name".
	ListeningActivity
	// WatchingActivity is shown as "Watching $name".
	WatchingActivity
	// CustomActivity is shown as "$emoji $state".
	CustomActivity
	// CompetingActivity is shown as "Competing in $name".
	CompetingActivity
)

// ActivityFlags describe what a Rich Presence payload includes.
type ActivityFlags uint32

const (
	InstanceActivity ActivityFlags = 1 << iota
	JoinActivity
	SpectateActivity
	JoinRequestActivity
	SyncActivity
	PlayActivity
)

// ActivityTimestamps are the unix timestamps for start and end of a game.
type ActivityTimestamps struct {
	// Start is when the activity started.
	Start UnixMsTimestamp `json:"start,omitempty"`
	// End is when the activity ends.
	End UnixMsTimestamp `json:"end,omitempty"`
}

// ActivityParty is the information for the current party of the player.
type ActivityParty struct {
	// ID is the id of the party.
	ID string `json:"id,omitempty"`
	// Size is a two-element array of the current and max party sizes.
	Size [2]int `json:"size,omitempty"` // [ current, max ]
}

// ActivityAssets are the images for the presence and their hover texts.
type ActivityAssets struct {
	// LargeImage is the id for a large asset of the activity.
	LargeImage string `json:"large_image,omitempty"`
	// LargeText is the text displayed when hovering over the large image.
	LargeText string `json:"large_text,omitempty"`
	// SmallImage is the id for a small asset of the activity.
	SmallImage string `json:"small_image,omitempty"`
	// SmallText is the text displayed when hovering over the small image.
	SmallText string `json:"small_text,omitempty"`
}

// ActivitySecrets are the secrets for Rich Presence joining and spectating.
type ActivitySecrets struct {
	// Join is the secret for joining a party.
	Join string `json:"join,omitempty"`
	// Spectate is the secret for spectating a game.
	Spectate string `json:"spectate,omitempty"`
	// Match is the secret for a specific instanced match.
	Match string `json:"match,omitempty"`
}
