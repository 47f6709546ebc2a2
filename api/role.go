package api

import (
	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/httputil"
	"github.com/accordlib/accord/utils/json/option"
)

// Roles returns a list of role objects for the guild.
func (c *Client) Roles(guildID discord.GuildID) ([]discord.Role, error) {
	var roles []discord.Role
	return roles, c.RequestJSON(&roles, "GET", EndpointGuilds+guildID.String()+"/roles")
}

// CreateRoleData is the data for CreateRole.
//
// https://discord.com/developers/docs/resources/guild#create-guild-role-json-params
type CreateRoleData struct {
	// Name is the name of the role.
	Name string `json:"name,omitempty"`
	// Permissions is the bitwise value of the enabled/disabled permissions.
	Permissions discord.Permissions `json:"permissions,string,omitempty"`
	// Color is the RGB color value of the role.
	Color discord.Color `json:"color,omitempty"`
	// Hoist specifies whether the role should be displayed separately in the
	// sidebar.
	Hoist bool `json:"hoist,omitempty"`
	// Mentionable specifies whether the role should be mentionable.
	Mentionable bool `json:"mentionable,omitempty"`

	AuditLogReason `json:"-"`
}

// CreateRole creates a new role for the guild.
//
// Requires the MANAGE_ROLES permission. Fires a GuildRoleCreateEvent on the
// gateway.
func (c *Client) CreateRole(
	guildID discord.GuildID, data CreateRoleData) (*discord.Role, error) {

	var role *discord.Role
	return role, c.RequestJSON(
		&role, "POST",
		EndpointGuilds+guildID.String()+"/roles",
		httputil.WithJSONBody(data),
		httputil.WithHeaders(data.Header()),
	)
}

// MoveRoleData is a single change to a role's position.
type MoveRoleData struct {
	// ID is the id of the role.
	ID discord.RoleID `json:"id"`
	// Position is the new sorting position of the role.
	Position option.NullableInt `json:"position,omitempty"`
}

// MoveRoles modifies the positions of a set of role objects for the guild.
// Returns a list of all of the guild's role objects on success.
//
// Requires the MANAGE_ROLES permission. Fires multiple GuildRoleUpdateEvents
// on the gateway.
func (c *Client) MoveRoles(
	guildID discord.GuildID, data []MoveRoleData) ([]discord.Role, error) {

	var roles []discord.Role
	return roles, c.RequestJSON(
		&roles, "PATCH",
		EndpointGuilds+guildID.String()+"/roles",
		httputil.WithJSONBody(data),
	)
}

// ModifyRoleData is the data for ModifyRole.
//
// https://discord.com/developers/docs/resources/guild#modify-guild-role-json-params
type ModifyRoleData struct {
	// Name is the name of the role.
	Name option.NullableString `json:"name,omitempty"`
	// Permissions is the bitwise value of the enabled/disabled permissions.
	Permissions *discord.Permissions `json:"permissions,string,omitempty"`
	// Color is the RGB color value of the role.
	Color discord.OptionalColor `json:"color,omitempty"`
	// Hoist specifies whether the role should be displayed separately in the
	// sidebar.
	Hoist option.NullableBool `json:"hoist,omitempty"`
	// Mentionable specifies whether the role should be mentionable.
	Mentionable option.NullableBool `json:"mentionable,omitempty"`

	AuditLogReason `json:"-"`
}

// ModifyRole modifies a guild role.
//
// Requires the MANAGE_ROLES permission. Fires a GuildRoleUpdateEvent on the
// gateway.
func (c *Client) ModifyRole(
	guildID discord.GuildID,
	roleID discord.RoleID, data ModifyRoleData) (*discord.Role, error) {

	var role *discord.Role
	return role, c.RequestJSON(
		&role, "PATCH",
		EndpointGuilds+guildID.String()+"/roles/"+roleID.String(),
		httputil.WithJSONBody(data),
		httputil.WithHeaders(data.Header()),
	)
}

// DeleteRole deletes a guild role.
//
// Requires the MANAGE_ROLES permission. Fires a GuildRoleDeleteEvent on the
// gateway.
func (c *Client) DeleteRole(
	guildID discord.GuildID, roleID discord.RoleID, reason AuditLogReason) error {

	return c.FastRequest(
		"DELETE",
		EndpointGuilds+guildID.String()+"/roles/"+roleID.String(),
		httputil.WithHeaders(reason.Header()),
	)
}
