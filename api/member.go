package api

import (
	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/httputil"
	"github.com/accordlib/accord/utils/json/option"
)

// Member returns a guild member object for the specified user.
func (c *Client) Member(
	guildID discord.GuildID, userID discord.UserID) (*discord.Member, error) {

	var m *discord.Member
	return m, c.RequestJSON(
		&m, "GET", EndpointGuilds+guildID.String()+"/members/"+userID.String())
}

// MaxMemberFetchLimit is the limit of members that can be fetched in a
// single request.
const MaxMemberFetchLimit = 1000

// Members returns a list of members of the guild with the passed id. This
// method automatically paginates until it reaches the passed limit, or, if
// the limit is set to 0, has fetched all members in the guild.
//
// As the underlying endpoint is capped at a maximum of 1000 members per
// request, at maximum a total of limit/1000 rounded up requests will be
// made, although they may be less, if no more members are available.
//
// This endpoint is restricted according to whether the GUILD_MEMBERS
// privileged intent is enabled for your application.
func (c *Client) Members(guildID discord.GuildID, limit uint) ([]discord.Member, error) {
	return c.MembersAfter(guildID, 0, limit)
}

// MembersAfter returns a list of members of the guild with the passed id.
// This method automatically paginates until it reaches the passed limit, or,
// if the limit is set to 0, has fetched all members with an id higher than
// after.
//
// This endpoint is restricted according to whether the GUILD_MEMBERS
// privileged intent is enabled for your application.
func (c *Client) MembersAfter(
	guildID discord.GuildID, after discord.UserID, limit uint) ([]discord.Member, error) {

	mems := make([]discord.Member, 0, limit)

	fetch := uint(MaxMemberFetchLimit)

	unlimited := limit == 0

	for limit > 0 || unlimited {
		if limit > 0 {
			if fetch > limit {
				fetch = limit
			}
			limit -= fetch
		}

		m, err := c.membersAfter(guildID, after, fetch)
		if err != nil {
			return mems, err
		}
		mems = append(mems, m...)

		if len(m) < MaxMemberFetchLimit {
			break
		}

		after = m[len(m)-1].User.ID
	}

	if len(mems) == 0 {
		return nil, nil
	}

	return mems, nil
}

func (c *Client) membersAfter(
	guildID discord.GuildID, after discord.UserID, limit uint) ([]discord.Member, error) {

	switch {
	case limit == 0:
		limit = 1
	case limit > 1000:
		limit = 1000
	}

	var param struct {
		After discord.UserID `schema:"after,omitempty"`

		Limit uint `schema:"limit"`
	}

	param.After = after
	param.Limit = limit

	var mems []discord.Member
	return mems, c.RequestJSON(
		&mems, "GET",
		EndpointGuilds+guildID.String()+"/members",
		httputil.WithSchema(c, param),
	)
}

// SearchGuildMembersData is the data for SearchGuildMembers.
type SearchGuildMembersData struct {
	// Query is the query string to match usernames and nicknames against.
	Query string `schema:"query"`
	// Limit is the maximum number of members to return (1-1000, default 1).
	Limit uint `schema:"limit,omitempty"`
}

// SearchGuildMembers returns a list of guild member objects whose username or
// nickname starts with a provided string.
func (c *Client) SearchGuildMembers(
	guildID discord.GuildID, data SearchGuildMembersData) ([]discord.Member, error) {

	var mems []discord.Member
	return mems, c.RequestJSON(
		&mems, "GET",
		EndpointGuilds+guildID.String()+"/members/search",
		httputil.WithSchema(c, data),
	)
}

// ModifyMemberData is the data for ModifyMember.
//
// https://discord.com/developers/docs/resources/guild#modify-guild-member-json-params
type ModifyMemberData struct {
	// Nick is the value to set the member's nickname to.
	//
	// Requires the MANAGE_NICKNAMES permission.
	Nick option.String `json:"nick,omitempty"`
	// Roles is an array of role ids the member is assigned.
	//
	// Requires the MANAGE_ROLES permission.
	Roles *[]discord.RoleID `json:"roles,omitempty"`
	// Mute specifies whether the user is muted in voice channels.
	//
	// Requires the MUTE_MEMBERS permission.
	Mute option.Bool `json:"mute,omitempty"`
	// Deaf specifies whether the user is deafened in voice channels.
	//
	// Requires the DEAFEN_MEMBERS permission.
	Deaf option.Bool `json:"deaf,omitempty"`

	// VoiceChannel is the id of the channel to move the user to.
	//
	// Requires the MOVE_MEMBERS permission.
	VoiceChannel discord.ChannelID `json:"channel_id,string,omitempty"`

	// CommunicationDisabledUntil is when the user's timeout will expire and
	// the user will be able to communicate in the guild again. May be set to
	// null to remove the timeout. Up to 28 days in the future.
	//
	// Requires the MODERATE_MEMBERS permission.
	CommunicationDisabledUntil *discord.Timestamp `json:"communication_disabled_until,omitempty"`

	AuditLogReason `json:"-"`
}

// ModifyMember modifies attributes of a guild member. If the VoiceChannel is
// set to 0, this will force the target user to be disconnected from voice.
//
// Fires a GuildMemberUpdateEvent on the gateway.
func (c *Client) ModifyMember(
	guildID discord.GuildID, userID discord.UserID, data ModifyMemberData) error {

	return c.FastRequest(
		"PATCH",
		EndpointGuilds+guildID.String()+"/members/"+userID.String(),
		httputil.WithJSONBody(data),
		httputil.WithHeaders(data.Header()),
	)
}

// ModifyCurrentMemberData is the data for ModifyCurrentMember.
type ModifyCurrentMemberData struct {
	// Nick is the value to set the current user's nickname to.
	//
	// Requires the CHANGE_NICKNAMES permission.
	Nick option.NullableString `json:"nick,omitempty"`

	AuditLogReason `json:"-"`
}

// ModifyCurrentMember modifies the current member in the given guild.
//
// Fires a GuildMemberUpdateEvent on the gateway.
func (c *Client) ModifyCurrentMember(
	guildID discord.GuildID, data ModifyCurrentMemberData) error {

	return c.FastRequest(
		"PATCH",
		EndpointGuilds+guildID.String()+"/members/@me",
		httputil.WithJSONBody(data),
		httputil.WithHeaders(data.Header()),
	)
}

// AddRole adds a role to a guild member.
//
// Requires the MANAGE_ROLES permission. Fires a GuildMemberUpdateEvent on the
// gateway.
func (c *Client) AddRole(
	guildID discord.GuildID, userID discord.UserID,
	roleID discord.RoleID, reason AuditLogReason) error {

	return c.FastRequest(
		"PUT",
		EndpointGuilds+guildID.String()+
			"/members/"+userID.String()+
			"/roles/"+roleID.String(),
		httputil.WithHeaders(reason.Header()),
	)
}

// RemoveRole removes a role from a guild member.
//
// Requires the MANAGE_ROLES permission. Fires a GuildMemberUpdateEvent on the
// gateway.
func (c *Client) RemoveRole(
	guildID discord.GuildID, userID discord.UserID,
	roleID discord.RoleID, reason AuditLogReason) error {

	return c.FastRequest(
		"DELETE",
		EndpointGuilds+guildID.String()+
			"/members/"+userID.String()+
			"/roles/"+roleID.String(),
		httputil.WithHeaders(reason.Header()),
	)
}
