package discord

// Invite is a code that, when used, adds a user to a guild or group DM
// channel.
//
// https://discord.com/developers/docs/resources/invite#invite-object
type Invite struct {
	// Code is the invite code (unique ID).
	Code string `json:"code"`
	// Guild is the guild this invite is for, if any.
	Guild *Guild `json:"guild,omitempty"`
	// Channel is the partial channel this invite is for.
	Channel Channel `json:"channel"`

	// Inviter is the user who created the invite.
	Inviter *User `json:"inviter,omitempty"`

	// Target is the user whose stream to display for this voice channel
	// stream invite.
	Target *User `json:"target_user,omitempty"`
	// TargetType is the type of target for this voice channel invite.
	TargetType InviteUserType `json:"target_type,omitempty"`

	// ApproximatePresences is the approximate count of online members,
	// returned from the invite endpoint when with_counts is true.
	ApproximatePresences uint `json:"approximate_presence_count,omitempty"`
	// ApproximateMembers is the approximate count of total members,
	// returned from the invite endpoint when with_counts is true.
	ApproximateMembers uint `json:"approximate_member_count,omitempty"`

	// Metadata contains extra invite information, only present when the
	// invite is fetched from the guild or channel invites endpoints.
	InviteMetadata
}

// InviteUserType is the type of the target user of an invite.
//
// https://discord.com/developers/docs/resources/invite#invite-object-invite-target-types
type InviteUserType uint8

const (
	_ InviteUserType = iota
	InviteUserStream
	InviteUserEmbeddedApplication
)

// InviteMetadata contains extra information about an invite.
//
// https://discord.com/developers/docs/resources/invite#invite-metadata-object
type InviteMetadata struct {
	// Uses is the number of times this invite has been used.
	Uses int `json:"uses,omitempty"`
	// MaxUses is the max number of times this invite can be used.
	MaxUses int `json:"max_uses,omitempty"`
	// MaxAge is the duration in seconds after which the invite expires.
	MaxAge Seconds `json:"max_age,omitempty"`
	// Temporary specifies whether this invite only grants temporary
	// membership.
	Temporary bool `json:"temporary,omitempty"`
	// CreatedAt specifies when this invite was created.
	CreatedAt Timestamp `json:"created_at,omitempty"`
}
