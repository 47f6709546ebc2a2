package api

import (
	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/httputil"
)

// Me returns the user object of the requester's account.
func (c *Client) Me() (*discord.User, error) {
	var me *discord.User
	return me, c.RequestJSON(&me, "GET", EndpointMe)
}

// User returns a user object for a given user ID.
func (c *Client) User(userID discord.UserID) (*discord.User, error) {
	var u *discord.User
	return u, c.RequestJSON(&u, "GET", EndpointUsers+userID.String())
}

// ModifySelfData is the data for ModifySelf.
type ModifySelfData struct {
	// Username is the user's username, if changed may cause the user's
	// discriminator to be randomized.
	Username string `json:"username,omitempty"`
	// Avatar modifies the user's avatar.
	Avatar *Image `json:"avatar,omitempty"`
}

// ModifySelf modifies the requester's user account settings.
func (c *Client) ModifySelf(data ModifySelfData) (*discord.User, error) {
	var u *discord.User
	return u, c.RequestJSON(&u, "PATCH", EndpointMe, httputil.WithJSONBody(data))
}

// MaxGuildFetchLimit is the limit of guilds that can be fetched in a single
// request.
const MaxGuildFetchLimit = 100

// Guilds returns a list of partial guild objects the current user is a
// member of. This method automatically paginates until it reaches the
// passed limit, or, if the limit is set to 0, has fetched all guilds the
// user is a member of.
//
// Requires the guilds OAuth2 scope.
func (c *Client) Guilds(limit uint) ([]discord.Guild, error) {
	return c.GuildsAfter(0, limit)
}

// GuildsBefore returns a list of partial guild objects the current user is a
// member of. This method automatically paginates until it reaches the
// passed limit, or, if the limit is set to 0, has fetched all guilds with an
// id smaller than before.
//
// Requires the guilds OAuth2 scope.
func (c *Client) GuildsBefore(before discord.GuildID, limit uint) ([]discord.Guild, error) {
	guilds := make([]discord.Guild, 0, limit)

	fetch := uint(MaxGuildFetchLimit)

	unlimited := limit == 0

	for limit > 0 || unlimited {
		if limit > 0 {
			if fetch > limit {
				fetch = limit
			}
			limit -= fetch
		}

		g, err := c.guildsRange(before, 0, fetch)
		if err != nil {
			return guilds, err
		}
		// Prepend so that the slice deliberately gets sorted from the oldest
		// to the latest.
		guilds = append(g, guilds...)

		if len(g) < MaxGuildFetchLimit {
			break
		}

		before = g[0].ID
	}

	if len(guilds) == 0 {
		return nil, nil
	}

	return guilds, nil
}

// GuildsAfter returns a list of partial guild objects the current user is a
// member of. This method automatically paginates until it reaches the
// passed limit, or, if the limit is set to 0, has fetched all guilds with an
// id higher than after.
//
// Requires the guilds OAuth2 scope.
func (c *Client) GuildsAfter(after discord.GuildID, limit uint) ([]discord.Guild, error) {
	var guilds []discord.Guild

	fetch := uint(MaxGuildFetchLimit)

	unlimited := limit == 0

	for limit > 0 || unlimited {
		if limit > 0 {
			if fetch > limit {
				fetch = limit
			}
			limit -= fetch
		}

		g, err := c.guildsRange(0, after, fetch)
		if err != nil {
			return guilds, err
		}
		guilds = append(guilds, g...)

		if len(g) < MaxGuildFetchLimit {
			break
		}

		after = g[len(g)-1].ID
	}

	if len(guilds) == 0 {
		return nil, nil
	}

	return guilds, nil
}

func (c *Client) guildsRange(
	before, after discord.GuildID, limit uint) ([]discord.Guild, error) {

	switch {
	case limit == 0:
		limit = 100
	case limit > 100:
		limit = 100
	}

	var param struct {
		Before discord.GuildID `schema:"before,omitempty"`
		After  discord.GuildID `schema:"after,omitempty"`

		Limit uint `schema:"limit"`
	}

	param.Before = before
	param.After = after
	param.Limit = limit

	var guilds []discord.Guild
	return guilds, c.RequestJSON(
		&guilds, "GET",
		EndpointMe+"/guilds",
		httputil.WithSchema(c, param),
	)
}

// CreatePrivateChannel creates a new DM channel with the given recipient.
func (c *Client) CreatePrivateChannel(recipientID discord.UserID) (*discord.Channel, error) {
	var param struct {
		RecipientID discord.UserID `json:"recipient_id"`
	}
	param.RecipientID = recipientID

	var dm *discord.Channel
	return dm, c.RequestJSON(&dm, "POST", EndpointMe+"/channels", httputil.WithJSONBody(param))
}
