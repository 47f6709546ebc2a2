package api

import (
	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/httputil"
	"github.com/accordlib/accord/utils/json/option"
)

// Invite returns an invite object for the given code.
func (c *Client) Invite(code string) (*discord.Invite, error) {
	var param struct {
		WithCounts bool `schema:"with_counts,omitempty"`
	}
	param.WithCounts = true

	var inv *discord.Invite
	return inv, c.RequestJSON(
		&inv, "GET",
		EndpointInvites+code,
		httputil.WithSchema(c, param),
	)
}

// ChannelInvites returns a list of invite objects (with invite metadata) for
// the channel. Only usable for guild channels.
//
// Requires the MANAGE_CHANNELS permission.
func (c *Client) ChannelInvites(channelID discord.ChannelID) ([]discord.Invite, error) {
	var invs []discord.Invite
	return invs, c.RequestJSON(&invs, "GET",
		EndpointChannels+channelID.String()+"/invites")
}

// GuildInvites returns a list of invite objects (with invite metadata) for
// the guild.
//
// Requires the MANAGE_GUILD permission.
func (c *Client) GuildInvites(guildID discord.GuildID) ([]discord.Invite, error) {
	var invs []discord.Invite
	return invs, c.RequestJSON(&invs, "GET",
		EndpointGuilds+guildID.String()+"/invites")
}

// CreateInviteData is the data for CreateInvite.
//
// https://discord.com/developers/docs/resources/channel#create-channel-invite-json-params
type CreateInviteData struct {
	// MaxAge is the duration of invite in seconds before expiry, or 0 for
	// never.
	MaxAge option.Uint `json:"max_age,omitempty"`
	// MaxUses is the max number of uses, or 0 for unlimited.
	MaxUses uint `json:"max_uses,omitempty"`
	// Temporary specifies whether this invite only grants temporary
	// membership.
	Temporary bool `json:"temporary,omitempty"`
	// Unique specifies if the invite should be always unique. If true, don't
	// try to reuse a similar invite (useful for creating many unique one
	// time use invites).
	Unique bool `json:"unique,omitempty"`

	AuditLogReason `json:"-"`
}

// CreateInvite creates a new invite object for the channel. Only usable for
// guild channels.
//
// Requires the CREATE_INSTANT_INVITE permission.
func (c *Client) CreateInvite(
	channelID discord.ChannelID, data CreateInviteData) (*discord.Invite, error) {

	var inv *discord.Invite
	return inv, c.RequestJSON(
		&inv, "POST",
		EndpointChannels+channelID.String()+"/invites",
		httputil.WithJSONBody(data),
		httputil.WithHeaders(data.Header()),
	)
}

// DeleteInvite deletes an invite.
//
// Requires the MANAGE_CHANNELS permission on the channel this invite belongs
// to, or MANAGE_GUILD to remove any invite across the guild. Fires an
// InviteDeleteEvent on the gateway.
func (c *Client) DeleteInvite(code string, reason AuditLogReason) (*discord.Invite, error) {
	var inv *discord.Invite
	return inv, c.RequestJSON(
		&inv, "DELETE",
		EndpointInvites+code,
		httputil.WithHeaders(reason.Header()),
	)
}
