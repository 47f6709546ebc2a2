package discord

// NitroBoost is the premium tier (i.e. boost level) of a guild.
//
// https://discord.com/developers/docs/resources/guild#guild-object-premium-tier
type NitroBoost uint8

const (
	NoNitroLevel NitroBoost = iota
	NitroLevel1
	NitroLevel2
	NitroLevel3
)

// MFALevel is the required MFA level of a guild.
//
// https://discord.com/developers/docs/resources/guild#guild-object-mfa-level
type MFALevel uint8

const (
	NoMFA MFALevel = iota
	ElevatedMFA
)

// SystemChannelFlags are the flags of a guild's system channel.
//
// https://discord.com/developers/docs/resources/guild#guild-object-system-channel-flags
type SystemChannelFlags uint8

const (
	// SuppressJoinNotifications suppresses member join notifications.
	SuppressJoinNotifications SystemChannelFlags = 1 << iota
	// SuppressPremiumSubscriptions suppresses server boost notifications.
	SuppressPremiumSubscriptions
	// SuppressGuildReminderNotifications suppresses server setup tips.
	SuppressGuildReminderNotifications
	// SuppressJoinNotificationReplies hides the sticker reply button for
	// member join notifications.
	SuppressJoinNotificationReplies
)

// GuildFeature is a feature enabled on a guild.
//
// https://discord.com/developers/docs/resources/guild#guild-object-guild-features
type GuildFeature string

const (
	// AnimatedBanner specifies the guild has access to set an animated guild
	// banner image.
	AnimatedBanner GuildFeature = "ANIMATED_BANNER"
	// AnimatedIcon specifies the guild has access to set an animated guild
	// icon.
	AnimatedIcon GuildFeature = "ANIMATED_ICON"
	// Banner specifies the guild has access to set a guild banner image.
	Banner GuildFeature = "BANNER"
	// Commerce specifies the guild has access to use commerce features
	// (i.e. create store channels).
	Commerce GuildFeature = "COMMERCE"
	// Community specifies the guild can enable the welcome screen, membership
	// screening, stage channels, discovery, and receives community updates.
	Community GuildFeature = "COMMUNITY"
	// Discoverable specifies the guild is able to be discovered in the
	// directory.
	Discoverable GuildFeature = "DISCOVERABLE"
	// Featurable specifies the guild is able to be featured in the directory.
	Featurable GuildFeature = "FEATURABLE"
	// InviteSplash specifies the guild has access to set an invite splash
	// background.
	InviteSplash GuildFeature = "INVITE_SPLASH"
	// MemberVerificationGateEnabled specifies the guild has enabled
	// membership screening.
	MemberVerificationGateEnabled GuildFeature = "MEMBER_VERIFICATION_GATE_ENABLED"
	// MonetizationEnabled specifies the guild has enabled monetization.
	MonetizationEnabled GuildFeature = "MONETIZATION_ENABLED"
	// MoreStickers specifies the guild has increased custom sticker slots.
	MoreStickers GuildFeature = "MORE_STICKERS"
	// News specifies the guild has access to create news channels.
	News GuildFeature = "NEWS"
	// Partnered specifies the guild is partnered.
	Partnered GuildFeature = "PARTNERED"
	// PreviewEnabled specifies the guild can be previewed before joining via
	// membership screening or the directory.
	PreviewEnabled GuildFeature = "PREVIEW_ENABLED"
	// PrivateThreads specifies the guild has access to create private
	// threads.
	PrivateThreads GuildFeature = "PRIVATE_THREADS"
	// RoleIcons specifies the guild is able to set role icons.
	RoleIcons GuildFeature = "ROLE_ICONS"
	// TicketedEventsEnabled specifies the guild has enabled ticketed events.
	TicketedEventsEnabled GuildFeature = "TICKETED_EVENTS_ENABLED"
	// VanityURL specifies the guild has access to set a vanity URL.
	VanityURL GuildFeature = "VANITY_URL"
	// Verified specifies the guild is verified.
	Verified GuildFeature = "VERIFIED"
	// VIPRegions specifies the guild has access to set 384kbps bitrate in
	// voice (previously VIP voice servers).
	VIPRegions GuildFeature = "VIP_REGIONS"
	// WelcomeScreenEnabled specifies the guild has enabled the welcome
	// screen.
	WelcomeScreenEnabled GuildFeature = "WELCOME_SCREEN_ENABLED"
)

// ExplicitFilter is the explicit content filter level of a guild.
//
// https://discord.com/developers/docs/resources/guild#guild-object-explicit-content-filter-level
type ExplicitFilter uint8

const (
	// NoContentFilter disables content filtering.
	NoContentFilter ExplicitFilter = iota
	// MembersWithoutRoles filters only members without roles.
	MembersWithoutRoles
	// AllMembers filters everyone.
	AllMembers
)

// Notification is the default message notification level of a guild.
//
// https://discord.com/developers/docs/resources/guild#guild-object-default-message-notification-level
type Notification uint8

const (
	// AllMessages notifies for all messages.
	AllMessages Notification = iota
	// OnlyMentions notifies only for messages that mention the user.
	OnlyMentions
)

// Verification is the verification level required for a guild.
//
// https://discord.com/developers/docs/resources/guild#guild-object-verification-level
type Verification uint8

const (
	// NoVerification requires nothing.
	NoVerification Verification = iota
	// LowVerification requires a verified email.
	LowVerification
	// MediumVerification requires the user be registered for longer than 5
	// minutes.
	MediumVerification
	// HighVerification requires the member be in the server for longer than
	// 10 minutes.
	HighVerification
	// VeryHighVerification requires the member have a verified phone number.
	VeryHighVerification
)
