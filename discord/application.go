package discord

// Application is an application with its OAuth2 and team metadata.
//
// https://discord.com/developers/docs/resources/application#application-object
type Application struct {
	// ID is the id of the app.
	ID AppID `json:"id"`
	// Name is the name of the app.
	Name string `json:"name"`
	// Icon is the icon hash of the app.
	Icon *Hash `json:"icon"`
	// Description is the description of the app.
	Description string `json:"description"`
	// RPCOrigins is an array of RPC origin URLs, if RPC is enabled.
	RPCOrigins []string `json:"rpc_origins"`
	// BotPublic specifies whether anyone besides the app owner can join the
	// app's bot to guilds.
	BotPublic bool `json:"bot_public"`
	// BotRequireCodeGrant specifies whether the app's bot will only join
	// upon completion of the full OAuth2 code grant flow.
	BotRequireCodeGrant bool `json:"bot_require_code_grant"`
	// TermsOfServiceURL is the URL of the app's terms of service.
	TermsOfServiceURL string `json:"terms_of_service,omitempty"`
	// PrivacyPolicyURL is the URL of the app's privacy policy.
	PrivacyPolicyURL string `json:"privacy_policy,omitempty"`
	// Owner is a partial user object containing info on the owner of the
	// application.
	Owner *User `json:"owner,omitempty"`
	// VerifyKey is the hex-encoded key for verification in interactions and
	// the GameSDK's GetTicket.
	VerifyKey string `json:"verify_key"`
	// Team is the team that the application belongs to, if it belongs to
	// one.
	Team *Team `json:"team,omitempty"`
	// GuildID is the guild the app is linked to, if it is a game sold on
	// the store.
	GuildID GuildID `json:"guild_id,omitempty"`
	// PrimarySKUID is the id of the "Game SKU" that is created, if it
	// exists, for a game sold on the store.
	PrimarySKUID Snowflake `json:"primary_sku_id,omitempty"`
	// Slug is the URL slug that links to the store page, if the app is a
	// game sold on the store.
	Slug string `json:"slug,omitempty"`
	// CoverImage is the app's default rich presence invite cover image
	// hash.
	CoverImage *Hash `json:"cover_image,omitempty"`
	// Flags are the application's public flags.
	Flags ApplicationFlags `json:"flags,omitempty"`
}

// ApplicationFlags are the public flags of an application.
//
// https://discord.com/developers/docs/resources/application#application-object-application-flags
type ApplicationFlags uint32

const (
	AppFlagGatewayPresence ApplicationFlags = 1 << (iota + 12)
	AppFlagGatewayPresenceLimited
	AppFlagGatewayGuildMembers
	AppFlagGatewayGuildMembersLimited
	AppFlagVerificationPendingGuildLimit
	AppFlagEmbedded
	AppFlagGatewayMessageContent
	AppFlagGatewayMessageContentLimited
)

// Team is a group of developers sharing applications.
//
// https://discord.com/developers/docs/topics/teams#data-models-team-object
type Team struct {
	// ID is the unique id of the team.
	ID TeamID `json:"id"`
	// Icon is a hash of the image of the team's icon.
	Icon *Hash `json:"icon"`
	// Members is the members of the team.
	Members []TeamMember `json:"members"`
	// Name is the name of the team.
	Name string `json:"name"`
	// OwnerID is the user id of the current team owner.
	OwnerID UserID `json:"owner_user_id"`
}

// IconURL returns the URL to the team icon in the PNG format. An empty
// string is returned if there's no icon.
func (t Team) IconURL() string {
	return t.IconURLWithType(PNGImage)
}

// IconURLWithType returns the URL to the team icon using the passed
// ImageType. An empty string is returned if there's no icon.
//
// Supported ImageTypes: PNG, JPEG, WebP
func (t Team) IconURLWithType(it ImageType) string {
	if t.Icon == nil || *t.Icon == "" {
		return ""
	}

	return "https://cdn.discordapp.com/team-icons/" + t.ID.String() + "/" + it.format(*t.Icon)
}

// TeamMember is a member of a team.
//
// https://discord.com/developers/docs/topics/teams#data-models-team-member-object
type TeamMember struct {
	// MembershipState is the user's membership state on the team.
	MembershipState MembershipState `json:"membership_state"`
	// Permissions is always {"*"}.
	Permissions []string `json:"permissions"`
	// TeamID is the id of the parent team of which they are a member.
	TeamID TeamID `json:"team_id"`
	// User is the avatar, discriminator, id and username of the user.
	User User `json:"user"`
}

// MembershipState is the membership state of a team member.
//
// https://discord.com/developers/docs/topics/teams#data-models-membership-state-enum
type MembershipState int

const (
	MembershipInvited MembershipState = iota + 1
	MembershipAccepted
)
