package discord

import (
	"strconv"
	"time"
)

// User represents a Discord user.
//
// https://discord.com/developers/docs/resources/user#user-object
type User struct {
	// ID is the user's id.
	ID UserID `json:"id"`
	// Username is the user's username, not unique across the platform.
	Username string `json:"username"`
	// Discriminator is the user's 4-digit discord-tag. It is "0" for users
	// that have been migrated to unique usernames.
	Discriminator string `json:"discriminator"`
	// DisplayName is the user's global display name, if set.
	DisplayName string `json:"global_name,omitempty"`
	// Avatar is the user's avatar hash.
	Avatar Hash `json:"avatar"`
	// Banner is the user's banner hash.
	Banner Hash `json:"banner,omitempty"`
	// Accent is the user's banner color.
	Accent Color `json:"accent_color,omitempty"`

	// Bot specifies whether the user belongs to an OAuth2 application.
	Bot bool `json:"bot,omitempty"`
	// DiscordSystem specifies whether the user is an official Discord System
	// user (part of the urgent message system).
	DiscordSystem bool `json:"system,omitempty"`
	// MFA specifies whether the user has two factor enabled on their account.
	MFA bool `json:"mfa_enabled,omitempty"`

	// Locale is the user's chosen language option.
	Locale string `json:"locale,omitempty"`
	// EmailVerified specifies whether the email on this account has been
	// verified.
	EmailVerified bool `json:"verified,omitempty"`
	// Email is the user's email.
	Email string `json:"email,omitempty"`

	// Flags are the flags on the user's account.
	Flags UserFlags `json:"flags,omitempty"`
	// PublicFlags are the public flags on the user's account.
	PublicFlags UserFlags `json:"public_flags,omitempty"`
	// Nitro is the type of Nitro subscription on the user's account.
	Nitro UserNitro `json:"premium_type,omitempty"`
}

// CreatedAt returns a time object representing when the user was created.
func (u User) CreatedAt() time.Time {
	return u.ID.Time()
}

// Mention returns a mention of the user.
func (u User) Mention() string {
	return u.ID.Mention()
}

// Tag returns the user's tag. For migrated users, this is the plain username;
// for legacy users, it is username#discriminator.
func (u User) Tag() string {
	if u.Discriminator == "" || u.Discriminator == "0" {
		return u.Username
	}
	return u.Username + "#" + u.Discriminator
}

// AvatarURL returns the URL of the Avatar Image. It automatically detects a
// suitable type.
func (u User) AvatarURL() string {
	return u.AvatarURLWithType(AutoImage)
}

// AvatarURLWithType returns the URL of the Avatar Image using the passed type.
// If the user has no Avatar, their default avatar will be returned. This
// requires ImageType Auto or PNG.
//
// Supported ImageTypes: PNG, JPEG, WebP, GIF
func (u User) AvatarURLWithType(t ImageType) string {
	if u.Avatar == "" {
		if t != PNGImage && t != AutoImage {
			return ""
		}

		disc, err := strconv.Atoi(u.Discriminator)
		if err != nil { // this should never happen
			return ""
		}
		picNo := strconv.Itoa(disc % 5)

		return "https://cdn.discordapp.com/embed/avatars/" + picNo + ".png"
	}

	return "https://cdn.discordapp.com/avatars/" + u.ID.String() + "/" + t.format(u.Avatar)
}

// BannerURL returns the URL of the user's banner, and an empty string if they
// have none.
func (u User) BannerURL() string {
	return u.BannerURLWithType(AutoImage)
}

// BannerURLWithType returns the URL of the user's banner using the passed
// ImageType.
func (u User) BannerURLWithType(t ImageType) string {
	if u.Banner == "" {
		return ""
	}

	return "https://cdn.discordapp.com/banners/" + u.ID.String() + "/" + t.format(u.Banner)
}

// UserFlags are the flags on a user's account.
//
// https://discord.com/developers/docs/resources/user#user-object-user-flags
type UserFlags uint32

// NoFlag is a zero UserFlags.
const NoFlag UserFlags = 0

const (
	// Employee is the flag for a Discord employee.
	Employee UserFlags = 1 << iota
	// Partner is the flag for a partnered server owner.
	Partner
	// HypeSquadEvents is the flag for a HypeSquad events member.
	HypeSquadEvents
	// BugHunterLvl1 is the flag for a level 1 bug hunter.
	BugHunterLvl1
	_
	_
	// HouseBravery is the flag for a House of Bravery member.
	HouseBravery
	// HouseBrilliance is the flag for a House of Brilliance member.
	HouseBrilliance
	// HouseBalance is the flag for a House of Balance member.
	HouseBalance
	// EarlySupporter is the flag for an early Nitro supporter.
	EarlySupporter
	// TeamUser is the flag for a pseudo-user that owns a team's resources.
	TeamUser
	_
	// System is the flag for an urgent message system user.
	System
	_
	// BugHunterLvl2 is the flag for a level 2 bug hunter.
	BugHunterLvl2
	_
	// VerifiedBot is the flag for a verified bot.
	VerifiedBot
	// VerifiedBotDeveloper is the flag for an early verified bot developer.
	VerifiedBotDeveloper
	// CertifiedModerator is the flag for a certified moderator alumni.
	CertifiedModerator
	// BotHTTPInteractions is the flag for a bot that only uses HTTP
	// interactions.
	BotHTTPInteractions
	_
	_
	// ActiveDeveloper is the flag for an active bot developer.
	ActiveDeveloper
)

// UserNitro is the type of Nitro subscription on a user's account.
type UserNitro uint8

const (
	// NoUserNitro is a user without Nitro.
	NoUserNitro UserNitro = iota
	// NitroClassic is the Nitro Classic tier.
	NitroClassic
	// NitroFull is the regular Nitro tier.
	NitroFull
	// NitroBasic is the Nitro Basic tier.
	NitroBasic
)
