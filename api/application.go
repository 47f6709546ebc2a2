package api

import (
	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/httputil"
	"github.com/accordlib/accord/utils/json"
)

// CreateCommandData is the data for CreateCommand.
//
// https://discord.com/developers/docs/interactions/application-commands#create-global-application-command-json-params
type CreateCommandData struct {
	// Name is the 1-32 character name.
	Name string `json:"name"`
	// NameLocalizations is the localizations for Name.
	NameLocalizations discord.StringLocales `json:"name_localizations,omitempty"`
	// Description is the 1-100 character description.
	Description string `json:"description"`
	// DescriptionLocalizations is the localizations for Description.
	DescriptionLocalizations discord.StringLocales `json:"description_localizations,omitempty"`
	// Options are the parameters for the command.
	Options discord.CommandOptions `json:"options,omitempty"`
	// DefaultMemberPermissions is the set of permissions required to use the
	// command.
	DefaultMemberPermissions *discord.Permissions `json:"default_member_permissions,string,omitempty"`
	// NoDMPermission indicates whether the command is NOT available in DMs
	// with the app, only for globally-scoped commands.
	NoDMPermission bool `json:"-"`
	// NoDefaultPermission disables the command for everyone except admins
	// by default.
	NoDefaultPermission bool `json:"-"`
	// Type is the type of the command.
	Type discord.CommandType `json:"type,omitempty"`
}

// MarshalJSON marshals the CreateCommandData, inverting the DM and default
// permission fields to match the wire format.
func (c CreateCommandData) MarshalJSON() ([]byte, error) {
	type RawCreateCommandData CreateCommandData

	cmd := struct {
		RawCreateCommandData
		DMPermission      bool `json:"dm_permission"`
		DefaultPermission bool `json:"default_permission"`
	}{
		RawCreateCommandData: (RawCreateCommandData)(c),
		DMPermission:         !c.NoDMPermission,
		DefaultPermission:    !c.NoDefaultPermission,
	}

	return json.Marshal(cmd)
}

// Commands returns a list of global commands for the application.
func (c *Client) Commands(appID discord.AppID) ([]discord.Command, error) {
	var cmds []discord.Command
	return cmds, c.RequestJSON(
		&cmds, "GET", EndpointApplications+appID.String()+"/commands")
}

// Command returns one global command for the application.
func (c *Client) Command(
	appID discord.AppID, commandID discord.CommandID) (*discord.Command, error) {

	var cmd *discord.Command
	return cmd, c.RequestJSON(
		&cmd, "GET",
		EndpointApplications+appID.String()+"/commands/"+commandID.String())
}

// CreateCommand creates a new global command. New global commands will be
// available in all guilds after 1 hour.
//
// Creating a command with the same name as an existing command for your
// application will overwrite the old command.
func (c *Client) CreateCommand(
	appID discord.AppID, data CreateCommandData) (*discord.Command, error) {

	var cmd *discord.Command
	return cmd, c.RequestJSON(
		&cmd, "POST",
		EndpointApplications+appID.String()+"/commands",
		httputil.WithJSONBody(data),
	)
}

// EditCommand edits a global command.
func (c *Client) EditCommand(
	appID discord.AppID,
	commandID discord.CommandID, data CreateCommandData) (*discord.Command, error) {

	var cmd *discord.Command
	return cmd, c.RequestJSON(
		&cmd, "PATCH",
		EndpointApplications+appID.String()+"/commands/"+commandID.String(),
		httputil.WithJSONBody(data),
	)
}

// DeleteCommand deletes a global command.
func (c *Client) DeleteCommand(appID discord.AppID, commandID discord.CommandID) error {
	return c.FastRequest(
		"DELETE",
		EndpointApplications+appID.String()+"/commands/"+commandID.String())
}

// BulkOverwriteCommands takes a slice of application commands, overwriting
// the existing global command list for the application. Commands that do not
// already exist will count toward daily application command create limits.
func (c *Client) BulkOverwriteCommands(
	appID discord.AppID, commands []CreateCommandData) ([]discord.Command, error) {

	var cmds []discord.Command
	return cmds, c.RequestJSON(
		&cmds, "PUT",
		EndpointApplications+appID.String()+"/commands",
		httputil.WithJSONBody(commands),
	)
}

// GuildCommands returns a list of application commands in the guild.
func (c *Client) GuildCommands(
	appID discord.AppID, guildID discord.GuildID) ([]discord.Command, error) {

	var cmds []discord.Command
	return cmds, c.RequestJSON(
		&cmds, "GET",
		EndpointApplications+appID.String()+"/guilds/"+guildID.String()+"/commands")
}

// GuildCommand returns one application command in the guild.
func (c *Client) GuildCommand(
	appID discord.AppID, guildID discord.GuildID,
	commandID discord.CommandID) (*discord.Command, error) {

	var cmd *discord.Command
	return cmd, c.RequestJSON(
		&cmd, "GET",
		EndpointApplications+appID.String()+
			"/guilds/"+guildID.String()+
			"/commands/"+commandID.String())
}

// CreateGuildCommand creates a new command in the guild. New guild commands
// will be available in the guild immediately.
func (c *Client) CreateGuildCommand(
	appID discord.AppID,
	guildID discord.GuildID, data CreateCommandData) (*discord.Command, error) {

	var cmd *discord.Command
	return cmd, c.RequestJSON(
		&cmd, "POST",
		EndpointApplications+appID.String()+"/guilds/"+guildID.String()+"/commands",
		httputil.WithJSONBody(data),
	)
}

// EditGuildCommand edits a command in the guild.
func (c *Client) EditGuildCommand(
	appID discord.AppID, guildID discord.GuildID,
	commandID discord.CommandID, data CreateCommandData) (*discord.Command, error) {

	var cmd *discord.Command
	return cmd, c.RequestJSON(
		&cmd, "PATCH",
		EndpointApplications+appID.String()+
			"/guilds/"+guildID.String()+
			"/commands/"+commandID.String(),
		httputil.WithJSONBody(data),
	)
}

// DeleteGuildCommand deletes a command in the guild.
func (c *Client) DeleteGuildCommand(
	appID discord.AppID, guildID discord.GuildID, commandID discord.CommandID) error {

	return c.FastRequest(
		"DELETE",
		EndpointApplications+appID.String()+
			"/guilds/"+guildID.String()+
			"/commands/"+commandID.String())
}

// BulkOverwriteGuildCommands takes a slice of application commands,
// overwriting the existing command list for the application in the guild.
func (c *Client) BulkOverwriteGuildCommands(
	appID discord.AppID,
	guildID discord.GuildID, commands []CreateCommandData) ([]discord.Command, error) {

	var cmds []discord.Command
	return cmds, c.RequestJSON(
		&cmds, "PUT",
		EndpointApplications+appID.String()+"/guilds/"+guildID.String()+"/commands",
		httputil.WithJSONBody(commands),
	)
}

// CurrentApplication returns the application object associated with the
// requesting bot user.
func (c *Client) CurrentApplication() (*discord.Application, error) {
	var app *discord.Application
	return app, c.RequestJSON(&app, "GET", EndpointApplications+"@me")
}
