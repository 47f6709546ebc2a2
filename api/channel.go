package api

import (
	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/httputil"
	"github.com/accordlib/accord/utils/json/option"
)

// Channels returns a list of guild channel objects.
func (c *Client) Channels(guildID discord.GuildID) ([]discord.Channel, error) {
	var chs []discord.Channel
	return chs, c.RequestJSON(&chs, "GET", EndpointGuilds+guildID.String()+"/channels")
}

// CreateChannelData is the data for CreateChannel.
//
// https://discord.com/developers/docs/resources/guild#create-guild-channel-json-params
type CreateChannelData struct {
	// Name is the channel name (2-100 characters).
	Name string `json:"name"`
	// Type is the type of channel.
	Type discord.ChannelType `json:"type,omitempty"`
	// Topic is the channel topic (0-1024 characters).
	Topic string `json:"topic,omitempty"`
	// VoiceBitrate is the bitrate (in bits) of the voice channel.
	//
	// Voice only.
	VoiceBitrate uint `json:"bitrate,omitempty"`
	// VoiceUserLimit is the user limit of the voice channel.
	//
	// Voice only.
	VoiceUserLimit uint `json:"user_limit,omitempty"`
	// UserRateLimit is the amount of seconds a user has to wait before
	// sending another message (0-21600). Bots, as well as users with the
	// permission manage_messages or manage_channel, are unaffected.
	//
	// Text only.
	UserRateLimit discord.Seconds `json:"rate_limit_per_user,omitempty"`
	// Position is the sorting position of the channel.
	Position option.Int `json:"position,omitempty"`
	// Overwrites are the channel's permission overwrites.
	Overwrites []discord.Overwrite `json:"permission_overwrites,omitempty"`
	// CategoryID is the id of the parent category for a channel.
	CategoryID discord.ChannelID `json:"parent_id,string,omitempty"`
	// NSFW specifies whether the channel is nsfw.
	NSFW bool `json:"nsfw,omitempty"`
	// RTCRegionID is the channel voice region id. It is automatic when set to
	// null.
	RTCRegionID string `json:"rtc_region,omitempty"`

	AuditLogReason `json:"-"`
}

// CreateChannel creates a new channel object for the guild.
//
// Requires the MANAGE_CHANNELS permission. Fires a ChannelCreateEvent on the
// gateway.
func (c *Client) CreateChannel(
	guildID discord.GuildID, data CreateChannelData) (*discord.Channel, error) {

	var ch *discord.Channel
	return ch, c.RequestJSON(
		&ch, "POST",
		EndpointGuilds+guildID.String()+"/channels",
		httputil.WithJSONBody(data),
		httputil.WithHeaders(data.Header()),
	)
}

// MoveChannelsData is the data for MoveChannels.
type MoveChannelsData struct {
	// Channels are the channels to be moved.
	Channels []MoveChannelData

	AuditLogReason
}

// MoveChannelData is a single channel move instruction.
type MoveChannelData struct {
	// ID is the channel id.
	ID discord.ChannelID `json:"id"`
	// Position is the sorting position of the channel.
	Position option.Int `json:"position"`
	// LockPermissions syncs the permission overwrites with the new parent,
	// if moving to a new category.
	LockPermissions option.Bool `json:"lock_permissions"`
	// CategoryID is the new parent ID for the channel that is moved.
	CategoryID discord.ChannelID `json:"parent_id"`
}

// MoveChannels modifies the positions of a set of channel objects for the
// guild.
//
// Requires MANAGE_CHANNELS permission. Fires multiple ChannelUpdateEvents on
// the gateway.
func (c *Client) MoveChannels(guildID discord.GuildID, data MoveChannelsData) error {
	return c.FastRequest(
		"PATCH",
		EndpointGuilds+guildID.String()+"/channels",
		httputil.WithJSONBody(data.Channels),
		httputil.WithHeaders(data.Header()),
	)
}

// Channel gets a channel by ID. Returns a channel object.
func (c *Client) Channel(channelID discord.ChannelID) (*discord.Channel, error) {
	var channel *discord.Channel
	return channel, c.RequestJSON(&channel, "GET", EndpointChannels+channelID.String())
}

// ModifyChannelData is the data for ModifyChannel.
//
// https://discord.com/developers/docs/resources/channel#modify-channel
type ModifyChannelData struct {
	// Name is the 2-100 character channel name.
	Name string `json:"name,omitempty"`
	// Type is the type of the channel. Only conversion between text and news
	// is supported and only in guilds with the "NEWS" feature.
	Type *discord.ChannelType `json:"type,omitempty"`
	// Position is the position of the channel in the left-hand listing.
	Position option.NullableInt `json:"position,omitempty"`
	// Topic is the 0-1024 character channel topic.
	//
	// Text only.
	Topic option.NullableString `json:"topic,omitempty"`
	// NSFW specifies whether the channel is nsfw.
	NSFW option.NullableBool `json:"nsfw,omitempty"`
	// UserRateLimit is the amount of seconds a user has to wait before
	// sending another message (0-21600).
	//
	// Text only.
	UserRateLimit option.NullableUint `json:"rate_limit_per_user,omitempty"`
	// VoiceBitrate is the 8000 to 96000 (128000 for VIP servers) bitrate (in
	// bits) of the voice channel.
	//
	// Voice only.
	VoiceBitrate option.NullableUint `json:"bitrate,omitempty"`
	// VoiceUserLimit is the 0 to 99 user limit of the voice channel. 0
	// refers to no limit.
	//
	// Voice only.
	VoiceUserLimit option.NullableUint `json:"user_limit,omitempty"`
	// Overwrites are the channel or category-specific permissions.
	Overwrites *[]discord.Overwrite `json:"permission_overwrites,omitempty"`
	// CategoryID is the id of the new parent category for a channel.
	CategoryID discord.ChannelID `json:"parent_id,string,omitempty"`

	// Icon is a base64 encoded icon.
	//
	// Group DM only.
	Icon *Image `json:"icon,omitempty"`

	// Archived specifies whether the thread is archived.
	//
	// Thread only.
	Archived option.Bool `json:"archived,omitempty"`
	// AutoArchiveDuration is the duration in minutes to automatically
	// archive the thread after recent activity.
	//
	// Thread only.
	AutoArchiveDuration discord.ArchiveDuration `json:"auto_archive_duration,omitempty"`
	// Locked specifies whether the thread is locked. When a thread is
	// locked, only users with MANAGE_THREADS can unarchive it.
	//
	// Thread only.
	Locked option.Bool `json:"locked,omitempty"`
	// Invitable specifies whether non-moderators can add other
	// non-moderators to a thread.
	//
	// Private thread only.
	Invitable option.Bool `json:"invitable,omitempty"`

	AuditLogReason `json:"-"`
}

// ModifyChannel updates a channel's settings.
//
// If modifying a guild channel, requires the MANAGE_CHANNELS permission for
// that guild. If modifying a thread, requires the MANAGE_THREADS permission.
// Fires a ChannelUpdateEvent or ThreadUpdateEvent on the gateway.
func (c *Client) ModifyChannel(channelID discord.ChannelID, data ModifyChannelData) error {
	return c.FastRequest(
		"PATCH", EndpointChannels+channelID.String(),
		httputil.WithJSONBody(data),
		httputil.WithHeaders(data.Header()),
	)
}

// DeleteChannel deletes a channel, or closes a private message. Requires the
// MANAGE_CHANNELS permission for the guild, or MANAGE_THREADS if the channel
// is a thread. Deleting a category does not delete its child channels: they
// will have their parent_id removed.
//
// Fires a ChannelDeleteEvent on the gateway, or a ThreadDeleteEvent if the
// channel was a thread.
func (c *Client) DeleteChannel(channelID discord.ChannelID, reason AuditLogReason) error {
	return c.FastRequest(
		"DELETE", EndpointChannels+channelID.String(),
		httputil.WithHeaders(reason.Header()),
	)
}

// EditChannelPermissionData is the data for EditChannelPermission.
//
// https://discord.com/developers/docs/resources/channel#edit-channel-permissions-json-params
type EditChannelPermissionData struct {
	// Type is either OverwriteRole or OverwriteMember.
	Type discord.OverwriteType `json:"type"`
	// Allow is a permission bit set for granted permissions.
	Allow discord.Permissions `json:"allow,string"`
	// Deny is a permission bit set for denied permissions.
	Deny discord.Permissions `json:"deny,string"`

	AuditLogReason `json:"-"`
}

// EditChannelPermission edits the channel's permission overwrites for a user
// or role in a channel. Only usable for guild channels.
//
// Requires the MANAGE_ROLES permission.
func (c *Client) EditChannelPermission(
	channelID discord.ChannelID,
	overwriteID discord.Snowflake, data EditChannelPermissionData) error {

	return c.FastRequest(
		"PUT",
		EndpointChannels+channelID.String()+"/permissions/"+overwriteID.String(),
		httputil.WithJSONBody(data),
		httputil.WithHeaders(data.Header()),
	)
}

// DeleteChannelPermission deletes a channel permission overwrite for a user
// or role in a channel. Only usable for guild channels.
//
// Requires the MANAGE_ROLES permission.
func (c *Client) DeleteChannelPermission(
	channelID discord.ChannelID, overwriteID discord.Snowflake, reason AuditLogReason) error {

	return c.FastRequest(
		"DELETE",
		EndpointChannels+channelID.String()+"/permissions/"+overwriteID.String(),
		httputil.WithHeaders(reason.Header()),
	)
}

// Typing posts a typing indicator to the channel. Undocumented, but the
// client usually clears the typing indicator after 8-10 seconds (or after a
// message is sent).
func (c *Client) Typing(channelID discord.ChannelID) error {
	return c.FastRequest("POST", EndpointChannels+channelID.String()+"/typing")
}
