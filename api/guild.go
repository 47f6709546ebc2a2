package api

import (
	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/httputil"
	"github.com/accordlib/accord/utils/json/option"
)

// CreateGuildData is the data for CreateGuild.
//
// https://discord.com/developers/docs/resources/guild#create-guild-json-params
type CreateGuildData struct {
	// Name is the name of the guild (2-100 characters).
	Name string `json:"name"`
	// Icon is the base64 128x128 image for the guild icon.
	Icon *Image `json:"icon,omitempty"`

	// Verification is the verification level.
	Verification *discord.Verification `json:"verification_level,omitempty"`
	// Notification is the default message notification level.
	Notification *discord.Notification `json:"default_message_notifications,omitempty"`
	// ExplicitFilter is the explicit content filter level.
	ExplicitFilter *discord.ExplicitFilter `json:"explicit_content_filter,omitempty"`

	// Roles are the new guild's roles.
	//
	// When using the roles parameter, the first member of the array is used
	// to change properties of the guild's @everyone role. If you are trying
	// to bootstrap a guild with additional roles, keep this in mind.
	// Additionally the required id field within each role object is an
	// integer placeholder, and will be replaced by the API upon consumption.
	// Its purpose is to allow you to overwrite a role's permissions in a
	// channel when also passing in channels with the channels array.
	Roles []discord.Role `json:"roles,omitempty"`
	// Channels are the new guild's channels. Assigning a channel to a
	// channel category is done by setting the parent_id field on any
	// children to the category's id field.
	//
	// When using the channels parameter, the position field is ignored,
	// and none of the default channels are created.
	Channels []discord.Channel `json:"channels,omitempty"`
}

// CreateGuild creates a new guild. Returns a guild object on success.
//
// Fires a GuildCreateEvent on the gateway.
//
// This endpoint can be used only by bots in less than 10 guilds.
func (c *Client) CreateGuild(data CreateGuildData) (*discord.Guild, error) {
	var g *discord.Guild
	return g, c.RequestJSON(
		&g, "POST",
		Endpoint+"guilds", httputil.WithJSONBody(data))
}

// Guild returns the guild object for the given id.
//
// ApproximateMembers and ApproximatePresences will not be set.
func (c *Client) Guild(id discord.GuildID) (*discord.Guild, error) {
	var g *discord.Guild
	return g, c.RequestJSON(&g, "GET", EndpointGuilds+id.String())
}

// GuildWithCount returns the guild object for the given id, as well as the
// approximate member and presence counts.
func (c *Client) GuildWithCount(id discord.GuildID) (*discord.Guild, error) {
	var param struct {
		WithCounts bool `schema:"with_counts"`
	}
	param.WithCounts = true

	var g *discord.Guild
	return g, c.RequestJSON(
		&g, "GET", EndpointGuilds+id.String(),
		httputil.WithSchema(c, param),
	)
}

// GuildPreview returns the guild preview object for the given id, even if
// the user is not in the guild.
//
// This endpoint is only for public guilds.
func (c *Client) GuildPreview(id discord.GuildID) (*discord.GuildPreview, error) {
	var g *discord.GuildPreview
	return g, c.RequestJSON(&g, "GET", EndpointGuilds+id.String()+"/preview")
}

// ModifyGuildData is the data for ModifyGuild.
//
// https://discord.com/developers/docs/resources/guild#modify-guild-json-params
type ModifyGuildData struct {
	// Name is the guild's name.
	Name string `json:"name,omitempty"`

	// Verification is the verification level.
	Verification *discord.Verification `json:"verification_level,omitempty"`
	// Notification is the default message notification level.
	Notification *discord.Notification `json:"default_message_notifications,omitempty"`
	// ExplicitFilter is the explicit content filter level.
	ExplicitFilter *discord.ExplicitFilter `json:"explicit_content_filter,omitempty"`

	// AFKChannelID is the id for the afk channel.
	AFKChannelID discord.ChannelID `json:"afk_channel_id,string,omitempty"`
	// AFKTimeout is the afk timeout in seconds.
	AFKTimeout discord.OptionalSeconds `json:"afk_timeout,omitempty"`

	// Icon is the base64 1024x1024 png/jpeg/gif image for the guild icon.
	Icon *Image `json:"icon,omitempty"`
	// Splash is the base64 16:9 png/jpeg image for the guild splash.
	Splash *Image `json:"splash,omitempty"`
	// Banner is the base64 16:9 png/jpeg image for the guild banner.
	Banner *Image `json:"banner,omitempty"`

	// OwnerID is the user id to transfer the guild ownership to. The current
	// owner must be the owner of the guild.
	OwnerID discord.UserID `json:"owner_id,string,omitempty"`

	// SystemChannelID is the id of the channel where guild notices such as
	// welcome messages and boost events are posted.
	SystemChannelID discord.ChannelID `json:"system_channel_id,string,omitempty"`
	// RulesChannelID is the id of the channel where community guilds
	// display rules.
	RulesChannelID discord.ChannelID `json:"rules_channel_id,string,omitempty"`
	// PublicUpdatesChannelID is the id of the channel where admins and
	// moderators of community guilds receive notices.
	PublicUpdatesChannelID discord.ChannelID `json:"public_updates_channel_id,string,omitempty"`

	// PreferredLocale is the preferred locale of a community guild. Defaults
	// to "en-US".
	PreferredLocale option.NullableString `json:"preferred_locale,omitempty"`

	AuditLogReason `json:"-"`
}

// ModifyGuild modifies a guild's settings. Returns the updated guild object
// on success.
//
// Requires the MANAGE_GUILD permission. Fires a GuildUpdateEvent on the
// gateway.
func (c *Client) ModifyGuild(id discord.GuildID, data ModifyGuildData) (*discord.Guild, error) {
	var g *discord.Guild
	return g, c.RequestJSON(
		&g, "PATCH",
		EndpointGuilds+id.String(),
		httputil.WithJSONBody(data),
		httputil.WithHeaders(data.Header()),
	)
}

// DeleteGuild deletes a guild permanently. The current user must be the
// owner.
//
// Fires a GuildDeleteEvent on the gateway.
func (c *Client) DeleteGuild(id discord.GuildID) error {
	return c.FastRequest("DELETE", EndpointGuilds+id.String())
}

// LeaveGuild leaves a guild.
//
// Fires a GuildDeleteEvent on the gateway.
func (c *Client) LeaveGuild(id discord.GuildID) error {
	return c.FastRequest("DELETE", EndpointMe+"/guilds/"+id.String())
}

// Bans returns a list of ban objects for the users banned from this guild.
//
// Requires the BAN_MEMBERS permission.
func (c *Client) Bans(guildID discord.GuildID) ([]discord.Ban, error) {
	var bans []discord.Ban
	return bans, c.RequestJSON(&bans, "GET", EndpointGuilds+guildID.String()+"/bans")
}

// GetBan returns a ban object for the given user.
//
// Requires the BAN_MEMBERS permission.
func (c *Client) GetBan(
	guildID discord.GuildID, userID discord.UserID) (*discord.Ban, error) {

	var ban *discord.Ban
	return ban, c.RequestJSON(
		&ban, "GET", EndpointGuilds+guildID.String()+"/bans/"+userID.String())
}

// BanData is the data for Ban.
//
// https://discord.com/developers/docs/resources/guild#create-guild-ban-query-string-params
type BanData struct {
	// DeleteDays is the number of days to delete messages for (0-7).
	DeleteDays option.Uint `schema:"delete_message_days,omitempty"`

	AuditLogReason `schema:"-"`
}

// Ban creates a guild ban, and optionally deletes the previous messages sent
// by the banned user.
//
// Requires the BAN_MEMBERS permission. Fires a GuildBanAddEvent on the
// gateway.
func (c *Client) Ban(guildID discord.GuildID, userID discord.UserID, data BanData) error {
	return c.FastRequest(
		"PUT",
		EndpointGuilds+guildID.String()+"/bans/"+userID.String(),
		httputil.WithSchema(c, data),
		httputil.WithHeaders(data.Header()),
	)
}

// Unban removes the ban for a user.
//
// Requires the BAN_MEMBERS permission. Fires a GuildBanRemoveEvent on the
// gateway.
func (c *Client) Unban(
	guildID discord.GuildID, userID discord.UserID, reason AuditLogReason) error {

	return c.FastRequest(
		"DELETE", EndpointGuilds+guildID.String()+"/bans/"+userID.String(),
		httputil.WithHeaders(reason.Header()),
	)
}

// Kick removes a member from a guild.
//
// Requires the KICK_MEMBERS permission. Fires a GuildMemberRemoveEvent on
// the gateway.
func (c *Client) Kick(
	guildID discord.GuildID, userID discord.UserID, reason AuditLogReason) error {

	return c.FastRequest(
		"DELETE", EndpointGuilds+guildID.String()+"/members/"+userID.String(),
		httputil.WithHeaders(reason.Header()),
	)
}

// PruneCountData is the data for PruneCount.
type PruneCountData struct {
	// Days is the number of days to count prune for (1 or more, default 7).
	Days uint `schema:"days"`
	// IncludedRoles are the roles to include.
	//
	// By default, prune will not remove users with roles. You can
	// optionally include specific roles in your prune by providing the
	// IncludedRoles parameter. Any inactive user that has a subset of the
	// provided role(s) will be counted in the prune and users with
	// additional roles will not.
	IncludedRoles []discord.RoleID `schema:"include_roles,omitempty"`
}

// PruneCount returns the number of members that would be removed in a prune
// operation.
//
// Requires the KICK_MEMBERS permission.
func (c *Client) PruneCount(guildID discord.GuildID, data PruneCountData) (uint, error) {
	if data.Days == 0 {
		data.Days = 7
	}

	var resp struct {
		Pruned uint `json:"pruned"`
	}

	return resp.Pruned, c.RequestJSON(
		&resp, "GET",
		EndpointGuilds+guildID.String()+"/prune",
		httputil.WithSchema(c, data),
	)
}

// PruneData is the data for Prune.
type PruneData struct {
	// Days is the number of days to prune (1 or more, default 7).
	Days uint `schema:"days"`
	// ReturnCount specifies whether the endpoint should return the number of
	// members pruned. Discouraged for large guilds.
	ReturnCount bool `schema:"compute_prune_count"`
	// IncludedRoles are the role(s) to include.
	IncludedRoles []discord.RoleID `schema:"include_roles,omitempty"`

	AuditLogReason `schema:"-"`
}

// Prune begins a prune operation. Returns the number of members that were
// removed in the prune operation if ReturnCount is true, and 0 otherwise.
//
// Requires the KICK_MEMBERS permission. Fires multiple GuildMemberRemoveEvents
// on the gateway.
func (c *Client) Prune(guildID discord.GuildID, data PruneData) (uint, error) {
	if data.Days == 0 {
		data.Days = 7
	}

	var resp struct {
		Pruned uint `json:"pruned"`
	}

	return resp.Pruned, c.RequestJSON(
		&resp, "POST",
		EndpointGuilds+guildID.String()+"/prune",
		httputil.WithSchema(c, data),
		httputil.WithHeaders(data.Header()),
	)
}

// GuildVoiceRegions gets the voice regions for the guild. Unlike the global
// VoiceRegions method, this returns VIP servers when the guild is
// VIP-enabled.
func (c *Client) GuildVoiceRegions(guildID discord.GuildID) ([]discord.VoiceRegion, error) {
	var vrs []discord.VoiceRegion
	return vrs, c.RequestJSON(&vrs, "GET", EndpointGuilds+guildID.String()+"/regions")
}
