package discord

import "time"

// Guild represents a guild (or server) in Discord.
//
// https://discord.com/developers/docs/resources/guild#guild-object
type Guild struct {
	// ID is the guild id.
	ID GuildID `json:"id"`
	// Name is the guild name (2-100 characters, excluding trailing and
	// leading whitespace).
	Name string `json:"name"`
	// Icon is the guild's icon hash.
	Icon Hash `json:"icon"`
	// Splash is the guild's splash hash, shown on invite pages.
	Splash Hash `json:"splash,omitempty"`
	// DiscoverySplash is the guild's discovery splash hash, only present for
	// discoverable guilds.
	DiscoverySplash Hash `json:"discovery_splash,omitempty"`
	// Banner is the guild's banner hash.
	Banner Hash `json:"banner,omitempty"`

	// Owner specifies whether the current user is the owner of the guild.
	Owner bool `json:"owner,omitempty"`
	// OwnerID is the id of the guild owner.
	OwnerID UserID `json:"owner_id"`
	// Permissions are the total permissions for the current user in the
	// guild, excluding overwrites.
	Permissions Permissions `json:"permissions,string,omitempty"`

	// AFKChannelID is the id of the afk channel.
	AFKChannelID ChannelID `json:"afk_channel_id,omitempty"`
	// AFKTimeout is the afk timeout in seconds.
	AFKTimeout Seconds `json:"afk_timeout"`

	// Verification is the verification level required for the guild.
	Verification Verification `json:"verification_level"`
	// Notification is the default message notification level.
	Notification Notification `json:"default_message_notifications"`
	// ExplicitFilter is the explicit content filter level.
	ExplicitFilter ExplicitFilter `json:"explicit_content_filter"`
	// MFA is the required MFA level for the guild.
	MFA MFALevel `json:"mfa_level"`

	// Roles are the roles in the guild.
	Roles []Role `json:"roles"`
	// Emojis are the custom guild emojis.
	Emojis []Emoji `json:"emojis"`
	// Stickers are the custom guild stickers.
	Stickers []Sticker `json:"stickers,omitempty"`
	// Features are the enabled guild features.
	Features []GuildFeature `json:"features"`

	// AppID is the application id of the guild creator, if it is
	// bot-created.
	AppID AppID `json:"application_id,omitempty"`

	// Widget specifies whether the server widget is enabled.
	Widget bool `json:"widget_enabled,omitempty"`
	// WidgetChannelID is the channel id that the widget will generate an
	// invite to, or null if set to no invite.
	WidgetChannelID ChannelID `json:"widget_channel_id,omitempty"`
	// SystemChannelID is the id of the channel where guild notices, such as
	// welcome messages and boost events, are posted.
	SystemChannelID ChannelID `json:"system_channel_id,omitempty"`
	// SystemChannelFlags are the system channel flags.
	SystemChannelFlags SystemChannelFlags `json:"system_channel_flags,omitempty"`
	// RulesChannelID is the id of the channel where community guilds display
	// rules.
	RulesChannelID ChannelID `json:"rules_channel_id,omitempty"`

	// MaxPresences is the maximum number of presences for the guild. It is
	// DefaultMaxPresences when it is 0.
	MaxPresences uint64 `json:"max_presences,omitempty"`
	// MaxMembers is the maximum number of members for the guild.
	MaxMembers uint64 `json:"max_members,omitempty"`

	// VanityURLCode is the vanity invite code for the guild.
	VanityURLCode string `json:"vanity_url_code,omitempty"`
	// Description is the description of a community guild.
	Description string `json:"description,omitempty"`

	// NitroBoost is the premium tier (boost level).
	NitroBoost NitroBoost `json:"premium_tier"`
	// NitroBoosters is the number of boosts this guild currently has.
	NitroBoosters uint64 `json:"premium_subscription_count,omitempty"`

	// PreferredLocale is the preferred locale of a community guild. Defaults
	// to "en-US".
	PreferredLocale string `json:"preferred_locale"`
	// PublicUpdatesChannelID is the id of the channel where admins and
	// moderators of community guilds receive notices from Discord.
	PublicUpdatesChannelID ChannelID `json:"public_updates_channel_id,omitempty"`
}

// DefaultMaxPresences is the default value of Guild.MaxPresences.
const DefaultMaxPresences = 25000

// CreatedAt returns a time object representing when the guild was created.
func (g Guild) CreatedAt() time.Time {
	return g.ID.Time()
}

// IconURL returns the URL to the guild icon and auto detects a suitable type.
// An empty string is returned if there's no icon.
func (g Guild) IconURL() string {
	return g.IconURLWithType(AutoImage)
}

// IconURLWithType returns the URL to the guild icon using the passed
// ImageType. An empty string is returned if there's no icon.
//
// Supported ImageTypes: PNG, JPEG, WebP, GIF
func (g Guild) IconURLWithType(t ImageType) string {
	if g.Icon == "" {
		return ""
	}

	return "https://cdn.discordapp.com/icons/" + g.ID.String() + "/" + t.format(g.Icon)
}

// BannerURL returns the URL to the banner, which is the image on top of the
// channels list.
func (g Guild) BannerURL() string {
	return g.BannerURLWithType(PNGImage)
}

// BannerURLWithType returns the URL to the banner using the passed ImageType.
// An empty string is returned if there's no banner.
//
// Supported ImageTypes: PNG, JPEG, WebP
func (g Guild) BannerURLWithType(t ImageType) string {
	if g.Banner == "" {
		return ""
	}

	return "https://cdn.discordapp.com/banners/" +
		g.ID.String() + "/" + t.format(g.Banner)
}

// SplashURL returns the URL to the guild splash, which is the invite page's
// background.
func (g Guild) SplashURL() string {
	return g.SplashURLWithType(PNGImage)
}

// SplashURLWithType returns the URL to the guild splash using the passed
// ImageType. An empty string is returned if there's no splash.
//
// Supported ImageTypes: PNG, JPEG, WebP
func (g Guild) SplashURLWithType(t ImageType) string {
	if g.Splash == "" {
		return ""
	}

	return "https://cdn.discordapp.com/splashes/" +
		g.ID.String() + "/" + t.format(g.Splash)
}

// Role represents a guild role.
//
// https://discord.com/developers/docs/topics/permissions#role-object
type Role struct {
	// ID is the role id.
	ID RoleID `json:"id"`
	// Name is the role name.
	Name string `json:"name"`

	// Color is the integer representation of a hexadecimal color code.
	Color Color `json:"color"`
	// Hoist specifies whether the role is pinned in the user listing.
	Hoist bool `json:"hoist"`
	// Icon is the role's icon hash.
	Icon Hash `json:"icon,omitempty"`
	// UnicodeEmoji is the role's unicode emoji.
	UnicodeEmoji string `json:"unicode_emoji,omitempty"`
	// Position is the position of this role.
	Position int `json:"position"`

	// Permissions is the permission bit set.
	Permissions Permissions `json:"permissions,string"`

	// Managed specifies whether the role is managed by an integration.
	Managed bool `json:"managed"`
	// Mentionable specifies whether the role is mentionable.
	Mentionable bool `json:"mentionable"`
}

// CreatedAt returns a time object representing when the role was created.
func (r Role) CreatedAt() time.Time {
	return r.ID.Time()
}

// Mention returns the mention of the role.
func (r Role) Mention() string {
	return r.ID.Mention()
}

// IconURL returns the URL to the role icon in the PNG format. An empty string
// is returned if there's no icon.
func (r Role) IconURL() string {
	return r.IconURLWithType(PNGImage)
}

// IconURLWithType returns the URL to the role icon using the passed
// ImageType. An empty string is returned if there's no icon.
//
// Supported ImageTypes: PNG, JPEG, WebP
func (r Role) IconURLWithType(t ImageType) string {
	if r.Icon == "" {
		return ""
	}

	return "https://cdn.discordapp.com/role-icons/" + r.ID.String() + "/" + t.format(r.Icon)
}

// Member is a guild member.
//
// https://discord.com/developers/docs/resources/guild#guild-member-object
type Member struct {
	// User is the user this guild member represents.
	User User `json:"user"`
	// Nick is this user's guild nickname.
	Nick string `json:"nick,omitempty"`
	// Avatar is this member's guild avatar.
	Avatar Hash `json:"avatar,omitempty"`
	// RoleIDs are the role ids this member has.
	RoleIDs []RoleID `json:"roles"`

	// Joined specifies when the user joined the guild.
	Joined Timestamp `json:"joined_at"`
	// BoostedSince specifies when the user started boosting the guild.
	BoostedSince Timestamp `json:"premium_since,omitempty"`
	// CommunicationDisabledUntil specifies when the user's timeout will
	// expire and they will be able to communicate again.
	CommunicationDisabledUntil Timestamp `json:"communication_disabled_until,omitempty"`

	// Deaf specifies whether the user is deafened in voice channels.
	Deaf bool `json:"deaf,omitempty"`
	// Mute specifies whether the user is muted in voice channels.
	Mute bool `json:"mute,omitempty"`
	// IsPending specifies whether the user has not yet passed the guild's
	// membership screening requirements.
	IsPending bool `json:"pending,omitempty"`
}

// Mention returns the mention of the member.
func (m Member) Mention() string {
	return m.User.ID.Mention()
}

// AvatarURL returns the URL to the member's guild avatar, falling back to
// their user avatar. It automatically detects a suitable type.
func (m Member) AvatarURL(guildID GuildID) string {
	return m.AvatarURLWithType(AutoImage, guildID)
}

// AvatarURLWithType returns the URL to the member's guild avatar using the
// passed ImageType, falling back to their user avatar.
//
// Supported ImageTypes: PNG, JPEG, WebP, GIF
func (m Member) AvatarURLWithType(t ImageType, guildID GuildID) string {
	if m.Avatar == "" {
		return m.User.AvatarURLWithType(t)
	}

	return "https://cdn.discordapp.com/guilds/" + guildID.String() +
		"/users/" + m.User.ID.String() + "/avatars/" + t.format(m.Avatar)
}

// GuildPreview is the public preview of a discoverable guild.
//
// https://discord.com/developers/docs/resources/guild#guild-preview-object
type GuildPreview struct {
	// ID is the guild id.
	ID GuildID `json:"id"`
	// Name is the guild name (2-100 characters).
	Name string `json:"name"`

	// Icon is the icon hash.
	Icon Hash `json:"icon"`
	// Splash is the splash hash.
	Splash Hash `json:"splash"`
	// DiscoverySplash is the discovery splash hash.
	DiscoverySplash Hash `json:"discovery_splash"`

	// Emojis are the custom guild emojis.
	Emojis []Emoji `json:"emojis"`
	// Features are the enabled guild features.
	Features []GuildFeature `json:"features"`

	// ApproximateMembers is the approximate number of members in this guild.
	ApproximateMembers uint64 `json:"approximate_member_count"`
	// ApproximatePresences is the approximate number of online members in
	// this guild.
	ApproximatePresences uint64 `json:"approximate_presence_count"`

	// Description is the description for the guild.
	Description string `json:"description,omitempty"`
}

// Ban is a guild ban.
//
// https://discord.com/developers/docs/resources/guild#ban-object
type Ban struct {
	// Reason is the reason for the ban.
	Reason string `json:"reason,omitempty"`
	// User is the banned user.
	User User `json:"user"`
}

// Integration is a guild integration.
//
// https://discord.com/developers/docs/resources/guild#integration-object
type Integration struct {
	// ID is the integration id.
	ID IntegrationID `json:"id"`
	// Name is the integration name.
	Name string `json:"name"`
	// Type is the integration type (twitch, youtube or discord).
	Type Service `json:"type"`

	// Enabled specifies whether the integration is enabled.
	Enabled bool `json:"enabled"`
	// Syncing specifies whether the integration is syncing.
	Syncing bool `json:"syncing,omitempty"`

	// RoleID is the id that the integration uses for subscribers.
	RoleID RoleID `json:"role_id,omitempty"`
	// EnableEmoticons specifies whether emoticons should be synced for the
	// integration (twitch only).
	EnableEmoticons bool `json:"enable_emoticons,omitempty"`

	// ExpireBehavior is the behavior of expiring subscribers.
	ExpireBehavior ExpireBehavior `json:"expire_behavior,omitempty"`
	// ExpireGracePeriod is the grace period in days before expiring
	// subscribers.
	ExpireGracePeriod int `json:"expire_grace_period,omitempty"`

	// User is the user for the integration.
	User User `json:"user,omitempty"`
	// Account is the integration account information.
	Account IntegrationAccount `json:"account"`

	// SyncedAt specifies when this integration was last synced.
	SyncedAt Timestamp `json:"synced_at,omitempty"`
	// SubscriberCount specifies how many subscribers the integration has.
	SubscriberCount int `json:"subscriber_count,omitempty"`
	// Revoked specifies whether the integration has been revoked.
	Revoked bool `json:"revoked,omitempty"`
}

// Service is the type of an integration or user connection.
type Service string

const (
	TwitchService  Service = "twitch"
	YouTubeService Service = "youtube"
	DiscordService Service = "discord"
)

// ExpireBehavior is the integration expire behavior, once a subscription
// expires.
//
// https://discord.com/developers/docs/resources/guild#integration-object-integration-expire-behaviors
type ExpireBehavior uint8

const (
	// RemoveRole removes the role of the subscriber.
	RemoveRole ExpireBehavior = iota
	// Kick kicks the subscriber.
	Kick
)

// IntegrationAccount is an integration account.
//
// https://discord.com/developers/docs/resources/guild#integration-account-object
type IntegrationAccount struct {
	// ID is the id of the account.
	ID string `json:"id"`
	// Name is the name of the account.
	Name string `json:"name"`
}

// DefaultMemberColor is the color used for members without colored roles.
var DefaultMemberColor Color = 0x0

// MemberColor computes the effective color of the member, defaulting to
// DefaultMemberColor if the member has no colored roles.
func MemberColor(guild Guild, member Member) Color {
	c := DefaultMemberColor
	pos := -1

	for _, r := range guild.Roles {
		for _, mr := range member.RoleIDs {
			if r.ID != mr {
				continue
			}

			if r.Color > 0 && r.Position > pos {
				c = r.Color
				pos = r.Position
			}
		}
	}

	return c
}
