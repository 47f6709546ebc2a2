package discord

// StageInstance represents a live stage inside a stage channel.
//
// https://discord.com/developers/docs/resources/stage-instance#stage-instance-object
type StageInstance struct {
	// ID is the id of this stage instance.
	ID StageID `json:"id"`
	// GuildID is the guild id of the associated stage channel.
	GuildID GuildID `json:"guild_id"`
	// ChannelID is the id of the associated stage channel.
	ChannelID ChannelID `json:"channel_id"`
	// Topic is the topic of the stage instance (1-120 characters).
	Topic string `json:"topic"`
	// PrivacyLevel is the privacy level of the stage instance.
	PrivacyLevel PrivacyLevel `json:"privacy_level"`
	// NotDiscoverable specifies whether stage discovery is disabled.
	NotDiscoverable bool `json:"discoverable_disabled"`
}

// PrivacyLevel is the privacy level of a stage instance.
//
// https://discord.com/developers/docs/resources/stage-instance#stage-instance-object-privacy-level
type PrivacyLevel int

const (
	// PublicStage specifies that a stage instance is visible publicly.
	PublicStage PrivacyLevel = iota + 1
	// GuildOnlyStage specifies that a stage instance is visible to only
	// guild members.
	GuildOnlyStage
)
