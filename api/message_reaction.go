package api

import (
	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/httputil"
)

// React creates a reaction for the message.
//
// This endpoint requires the READ_MESSAGE_HISTORY permission to be present on
// the current user. Additionally, if nobody else has reacted to the message
// using this emoji, this endpoint requires the ADD_REACTIONS permission to be
// present on the current user.
func (c *Client) React(
	channelID discord.ChannelID, messageID discord.MessageID, emoji discord.APIEmoji) error {

	return c.FastRequest(
		"PUT",
		EndpointChannels+channelID.String()+
			"/messages/"+messageID.String()+
			"/reactions/"+emoji.PathString()+"/@me")
}

// Unreact removes a reaction the current user has made for the message.
func (c *Client) Unreact(
	channelID discord.ChannelID, messageID discord.MessageID, emoji discord.APIEmoji) error {

	return c.DeleteUserReaction(channelID, messageID, 0, emoji)
}

// Reactions returns a list of users that reacted with the passed emoji. This
// method automatically paginates until it reaches the passed limit, or, if
// the limit is set to 0, has fetched all users within the passed range.
//
// As the underlying endpoint has a maximum of 100 users per request, at
// maximum a total of limit/100 rounded up requests will be made, although
// they may be less, if no more users are available.
//
// When fetching the users, those with the smallest ID will be fetched first.
func (c *Client) Reactions(
	channelID discord.ChannelID, messageID discord.MessageID,
	emoji discord.APIEmoji, limit uint) ([]discord.User, error) {

	return c.ReactionsAfter(channelID, messageID, 0, emoji, limit)
}

// ReactionsAfter returns a list of users that reacted with the passed emoji.
// This method automatically paginates until it reaches the passed limit, or,
// if the limit is set to 0, has fetched all users with an id higher than
// after.
func (c *Client) ReactionsAfter(
	channelID discord.ChannelID, messageID discord.MessageID,
	after discord.UserID, emoji discord.APIEmoji, limit uint) ([]discord.User, error) {

	users := make([]discord.User, 0, limit)

	fetch := uint(MaxMessageReactionFetchLimit)

	unlimited := limit == 0

	for limit > 0 || unlimited {
		if limit > 0 {
			if fetch > limit {
				fetch = limit
			}
			limit -= fetch
		}

		r, err := c.reactionsRange(channelID, messageID, after, emoji, fetch)
		if err != nil {
			return users, err
		}
		users = append(users, r...)

		if len(r) < MaxMessageReactionFetchLimit {
			break
		}

		after = r[len(r)-1].ID
	}

	if len(users) == 0 {
		return nil, nil
	}

	return users, nil
}

// MaxMessageReactionFetchLimit is the limit of users that can be fetched in
// a single reactions request.
const MaxMessageReactionFetchLimit = 100

func (c *Client) reactionsRange(
	channelID discord.ChannelID, messageID discord.MessageID,
	after discord.UserID, emoji discord.APIEmoji, limit uint) ([]discord.User, error) {

	switch {
	case limit == 0:
		limit = 25
	case limit > 100:
		limit = 100
	}

	var param struct {
		After discord.UserID `schema:"after,omitempty"`

		Limit uint `schema:"limit"`
	}

	param.After = after
	param.Limit = limit

	var users []discord.User
	return users, c.RequestJSON(
		&users, "GET", EndpointChannels+channelID.String()+
			"/messages/"+messageID.String()+
			"/reactions/"+emoji.PathString(),
		httputil.WithSchema(c, param),
	)
}

// DeleteUserReaction deletes another user's reaction.
//
// This endpoint requires the MANAGE_MESSAGES permission to be present on the
// current user.
func (c *Client) DeleteUserReaction(
	channelID discord.ChannelID, messageID discord.MessageID,
	userID discord.UserID, emoji discord.APIEmoji) error {

	var user = "@me"
	if userID > 0 {
		user = userID.String()
	}

	return c.FastRequest(
		"DELETE",
		EndpointChannels+channelID.String()+
			"/messages/"+messageID.String()+
			"/reactions/"+emoji.PathString()+"/"+user)
}

// DeleteEmojiReactions deletes all the reactions for a given emoji.
//
// This endpoint requires the MANAGE_MESSAGES permission to be present on the
// current user.
func (c *Client) DeleteEmojiReactions(
	channelID discord.ChannelID, messageID discord.MessageID, emoji discord.APIEmoji) error {

	return c.FastRequest(
		"DELETE",
		EndpointChannels+channelID.String()+
			"/messages/"+messageID.String()+
			"/reactions/"+emoji.PathString())
}

// DeleteAllReactions deletes all reactions on a message.
//
// This endpoint requires the MANAGE_MESSAGES permission to be present on the
// current user.
//
// Fires a MessageReactionRemoveAllEvent on the gateway.
func (c *Client) DeleteAllReactions(
	channelID discord.ChannelID, messageID discord.MessageID) error {

	return c.FastRequest(
		"DELETE",
		EndpointChannels+channelID.String()+
			"/messages/"+messageID.String()+"/reactions")
}
