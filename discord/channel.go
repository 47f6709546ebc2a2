package discord

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/accordlib/accord/utils/json"
)

// Channel represents a guild or DM channel within Discord.
//
// https://discord.com/developers/docs/resources/channel#channel-object
type Channel struct {
	// ID is the id of this channel.
	ID ChannelID `json:"id"`
	// GuildID is the id of the guild.
	//
	// This field may be missing for some channel objects received over
	// gateway guild dispatches.
	GuildID GuildID `json:"guild_id,omitempty"`
	// Type is the type of channel.
	Type ChannelType `json:"type"`
	// NSFW specifies whether the channel is nsfw.
	NSFW bool `json:"nsfw,omitempty"`

	// Position is the sorting position of the channel.
	Position int `json:"position,omitempty"`
	// Overwrites are the explicit permission overrides for members and
	// roles.
	Overwrites []Overwrite `json:"permission_overwrites,omitempty"`

	// Name is the name of the channel (2-100 characters).
	Name string `json:"name,omitempty"`
	// Topic is the channel topic (0-1024 characters).
	Topic string `json:"topic,omitempty"`

	// LastMessageID is the id of the last message sent in this channel
	// (may not point to an existing or valid message).
	LastMessageID MessageID `json:"last_message_id,omitempty"`

	// VoiceBitrate is the bitrate (in bits) of the voice channel.
	VoiceBitrate uint `json:"bitrate,omitempty"`
	// VoiceUserLimit is the user limit of the voice channel.
	VoiceUserLimit uint `json:"user_limit,omitempty"`

	// UserRateLimit is the amount of seconds a user has to wait before
	// sending another message (0-21600). Bots, as well as users with the
	// permission manage_messages or manage_channel, are unaffected.
	UserRateLimit Seconds `json:"rate_limit_per_user,omitempty"`

	// DMRecipients are the recipients of the DM.
	DMRecipients []User `json:"recipients,omitempty"`
	// Icon is the icon hash of the group DM.
	Icon Hash `json:"icon,omitempty"`

	// OwnerID is the id of the DM or thread creator.
	OwnerID UserID `json:"owner_id,omitempty"`
	// AppID is the application id of the group DM creator, if it is
	// bot-created.
	AppID AppID `json:"application_id,omitempty"`

	// ParentID for guild channels is the id of the parent category for a
	// channel, and for threads is the id of the text channel this thread
	// was created in.
	ParentID ChannelID `json:"parent_id,omitempty"`

	// LastPinTime specifies when the last pinned message was pinned.
	LastPinTime Timestamp `json:"last_pin_timestamp,omitempty"`

	// RTCRegionID is the voice region id for the voice channel.
	RTCRegionID string `json:"rtc_region,omitempty"`
	// VideoQualityMode is the camera video quality mode of the voice
	// channel.
	VideoQualityMode VideoQualityMode `json:"video_quality_mode,omitempty"`

	// MessageCount is an approximate count of messages in a thread, stops
	// counting at 50.
	MessageCount int `json:"message_count,omitempty"`
	// MemberCount is an approximate count of users in a thread, stops
	// counting at 50.
	MemberCount int `json:"member_count,omitempty"`

	// ThreadMetadata contains thread-specific fields not needed by other
	// channels.
	ThreadMetadata *ThreadMetadata `json:"thread_metadata,omitempty"`
	// ThreadMember is the thread member object for the current user, if they
	// have joined the thread, only included on certain endpoints.
	ThreadMember *ThreadMember `json:"member,omitempty"`
	// DefaultAutoArchiveDuration is the default duration for newly created
	// threads, in minutes, to automatically archive the thread after recent
	// activity.
	DefaultAutoArchiveDuration ArchiveDuration `json:"default_auto_archive_duration,omitempty"`

	// SelfPermissions are the computed permissions for the invoking user in
	// the channel, including overwrites, only included when part of the
	// resolved data received on an application command interaction.
	SelfPermissions Permissions `json:"permissions,string,omitempty"`
}

// CreatedAt returns a time object representing when the channel was created.
func (ch Channel) CreatedAt() time.Time {
	return ch.ID.Time()
}

// Mention returns a mention of the channel.
func (ch Channel) Mention() string {
	return ch.ID.Mention()
}

// IconURL returns the URL to the channel icon in the PNG format. An empty
// string is returned if there's no icon.
func (ch Channel) IconURL() string {
	return ch.IconURLWithType(PNGImage)
}

// IconURLWithType returns the URL to the channel icon using the passed
// ImageType. An empty string is returned if there's no icon.
//
// Supported ImageTypes: PNG, JPEG, WebP
func (ch Channel) IconURLWithType(t ImageType) string {
	if ch.Icon == "" {
		return ""
	}

	return "https://cdn.discordapp.com/channel-icons/" +
		ch.ID.String() + "/" + t.format(ch.Icon)
}

// ChannelType is the type of a channel.
//
// https://discord.com/developers/docs/resources/channel#channel-object-channel-types
type ChannelType uint32

const (
	// GuildText is a text channel within a server.
	GuildText ChannelType = iota
	// DirectMessage is a direct message between users.
	DirectMessage
	// GuildVoice is a voice channel within a server.
	GuildVoice
	// GroupDM is a direct message between multiple users.
	GroupDM
	// GuildCategory is an organizational category that contains up to 50
	// channels.
	GuildCategory
	// GuildNews is a channel that users can follow and crosspost into their
	// own server.
	GuildNews
	// GuildStore is a channel in which game developers can sell their game.
	GuildStore
	_
	_
	_
	// GuildNewsThread is a temporary sub-channel within a GuildNews channel.
	GuildNewsThread
	// GuildPublicThread is a temporary sub-channel within a GuildText
	// channel.
	GuildPublicThread
	// GuildPrivateThread is a temporary sub-channel within a GuildText
	// channel that is only viewable by those invited and those with the
	// manage threads permission.
	GuildPrivateThread
	// GuildStageVoice is a voice channel for hosting events with an
	// audience.
	GuildStageVoice
)

// Overwrite is a permission overwrite for a role or member in a channel.
//
// https://discord.com/developers/docs/resources/channel#overwrite-object
type Overwrite struct {
	// ID is the role or user id.
	ID Snowflake `json:"id"`
	// Type indicates the entity overwritten: role or member.
	Type OverwriteType `json:"type"`
	// Allow is the bit set of allowed permissions.
	Allow Permissions `json:"allow,string"`
	// Deny is the bit set of denied permissions.
	Deny Permissions `json:"deny,string"`
}

// OverwriteType is the type of an overwrite's entity.
type OverwriteType uint8

const (
	// OverwriteRole is an overwrite for a role.
	OverwriteRole OverwriteType = iota
	// OverwriteMember is an overwrite for a member.
	OverwriteMember
)

// UnmarshalJSON unmarshals the overwrite type, accepting both the integer
// form used by most endpoints and the string form sent in audit logs.
func (otype *OverwriteType) UnmarshalJSON(b []byte) error {
	s := string(b)

	u, err := strconv.ParseUint(strings.Trim(s, `"`), 10, 8)
	if err != nil {
		return errors.Wrap(err, "failed to parse overwrite type")
	}

	*otype = OverwriteType(u)
	return nil
}

// ThreadMetadata contains a number of thread-specific channel fields.
//
// https://discord.com/developers/docs/resources/channel#thread-metadata-object
type ThreadMetadata struct {
	// Archived specifies whether the thread is archived.
	Archived bool `json:"archived"`
	// AutoArchiveDuration is the duration in minutes to automatically
	// archive the thread after recent activity.
	AutoArchiveDuration ArchiveDuration `json:"auto_archive_duration"`
	// ArchiveTimestamp is the timestamp when the thread's archive status was
	// last changed, used for calculating recent activity.
	ArchiveTimestamp Timestamp `json:"archive_timestamp"`
	// Locked specifies whether the thread is locked; when a thread is
	// locked, only users with the manage threads permission can unarchive it.
	Locked bool `json:"locked"`
	// Invitable specifies whether non-moderators can add other
	// non-moderators to a thread; only available on private threads.
	Invitable bool `json:"invitable,omitempty"`
}

// ThreadMember is a member of a thread.
//
// https://discord.com/developers/docs/resources/channel#thread-member-object
type ThreadMember struct {
	// ID is the id of the thread.
	//
	// This field will be omitted on the member sent within each thread in
	// the guild create event.
	ID ChannelID `json:"id,omitempty"`
	// UserID is the id of the user.
	//
	// This field will be omitted on the member sent within each thread in
	// the guild create event.
	UserID UserID `json:"user_id,omitempty"`
	// Member is the member, only included in thread member update gateway
	// events, if the guild members intent is enabled.
	Member *Member `json:"member,omitempty"`
	// Presence is the presence of the member, only included in thread
	// member update gateway events, if the presences intent is enabled.
	Presence *Presence `json:"presence,omitempty"`
	// JoinTimestamp is the time the current user last joined the thread.
	JoinTimestamp Timestamp `json:"join_timestamp"`
	// Flags are any user-thread settings.
	Flags ThreadMemberFlags `json:"flags"`
}

// ThreadMemberFlags are the flags of a thread member, used for notifications.
type ThreadMemberFlags uint64

// ArchiveDuration is the duration in minutes after which an inactive thread
// gets archived.
type ArchiveDuration int

const (
	// OneHourArchive archives a thread after an hour of inactivity.
	OneHourArchive ArchiveDuration = 60
	// OneDayArchive archives a thread after a day of inactivity.
	OneDayArchive ArchiveDuration = 24 * 60
	// ThreeDaysArchive archives a thread after three days of inactivity.
	//
	// This duration requires the guild to be boosted to level 1 or higher.
	ThreeDaysArchive ArchiveDuration = 3 * 24 * 60
	// SevenDaysArchive archives a thread after seven days of inactivity.
	//
	// This duration requires the guild to be boosted to level 2 or higher.
	SevenDaysArchive ArchiveDuration = 7 * 24 * 60
)

// String returns a human-readable description of the archive duration.
func (d ArchiveDuration) String() string {
	switch d {
	case OneHourArchive:
		return "1 hour"
	case OneDayArchive:
		return "1 day"
	case ThreeDaysArchive:
		return "3 days"
	case SevenDaysArchive:
		return "7 days"
	default:
		return strconv.Itoa(int(d)) + " minutes"
	}
}

// VideoQualityMode is the camera video quality mode of a voice channel.
//
// https://discord.com/developers/docs/resources/channel#channel-object-video-quality-modes
type VideoQualityMode uint8

const (
	// AutoVideoQuality lets Discord choose the quality for optimal
	// performance.
	AutoVideoQuality VideoQualityMode = iota + 1
	// FullVideoQuality is 720p.
	FullVideoQuality
)

var _ json.Unmarshaler = (*OverwriteType)(nil)
