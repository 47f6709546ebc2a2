package api

import (
	"mime/multipart"

	"github.com/pkg/errors"

	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/httputil"
	"github.com/accordlib/accord/utils/json/option"
	"github.com/accordlib/accord/utils/sendpart"
)

// MaxMessageFetchLimit is the limit of messages that can be fetched in a
// single request.
const MaxMessageFetchLimit = 100

// Messages returns a slice filled with the most recent messages sent in the
// channel with the passed ID. The method automatically paginates until it
// reaches the passed limit, or, if the limit is set to 0, has fetched all
// messages in the channel.
//
// As the underlying endpoint is capped at a maximum of 100 messages per
// request, at maximum a total of limit/100 rounded up requests will be made,
// although they may be less, if no more messages are available.
//
// When fetching the messages, those with the highest ID, will be fetched
// first. The returned slice will be sorted from latest to oldest.
func (c *Client) Messages(channelID discord.ChannelID, limit uint) ([]discord.Message, error) {
	// Since before is 0 it will be omitted by the http lib, which in turn
	// will lead the API to send us the most recent messages without any
	// filtering.
	return c.MessagesBefore(channelID, 0, limit)
}

// MessagesAround returns messages around the ID, with a limit of 100.
func (c *Client) MessagesAround(
	channelID discord.ChannelID, around discord.MessageID, limit uint) ([]discord.Message, error) {

	return c.messagesRange(channelID, 0, 0, around, limit)
}

// MessagesBefore returns a slice filled with the messages sent in the channel
// with the passed id. The method automatically paginates until it reaches the
// passed limit, or, if the limit is set to 0, has fetched all messages in the
// channel with an id smaller than before.
func (c *Client) MessagesBefore(
	channelID discord.ChannelID, before discord.MessageID, limit uint) ([]discord.Message, error) {

	msgs := make([]discord.Message, 0, limit)

	fetch := uint(MaxMessageFetchLimit)

	// Check if we are truly fetching unlimited messages to avoid confusion
	// later on, if the limit reaches 0.
	unlimited := limit == 0

	for limit > 0 || unlimited {
		if limit > 0 {
			if fetch > limit {
				fetch = limit
			}
			limit -= fetch
		}

		m, err := c.messagesRange(channelID, before, 0, 0, fetch)
		if err != nil {
			return msgs, err
		}
		msgs = append(msgs, m...)

		if len(m) < MaxMessageFetchLimit {
			break
		}

		before = m[len(m)-1].ID
	}

	if len(msgs) == 0 {
		return nil, nil
	}

	return msgs, nil
}

// MessagesAfter returns a slice filled with the messages sent in the channel
// with the passed ID. The method automatically paginates until it reaches the
// passed limit, or, if the limit is set to 0, has fetched all messages in the
// channel with an id higher than after.
//
// The returned slice will be sorted from latest to oldest.
func (c *Client) MessagesAfter(
	channelID discord.ChannelID, after discord.MessageID, limit uint) ([]discord.Message, error) {

	// 0 is uint's zero value and will lead to the after param getting
	// omitted, which in turn will lead to the most recent messages being
	// returned. Setting this to 1 will prevent that.
	if after == 0 {
		after = 1
	}

	var msgs []discord.Message

	fetch := uint(MaxMessageFetchLimit)

	// Check if we are truly fetching unlimited messages to avoid confusion
	// later on, if the limit reaches 0.
	unlimited := limit == 0

	for limit > 0 || unlimited {
		if limit > 0 {
			if fetch > limit {
				fetch = limit
			}
			limit -= fetch
		}

		m, err := c.messagesRange(channelID, 0, after, 0, fetch)
		if err != nil {
			return msgs, err
		}
		// Prepend so that the slice deliberately gets sorted from latest to
		// oldest.
		msgs = append(m, msgs...)

		if len(m) < MaxMessageFetchLimit {
			break
		}

		after = m[0].ID
	}

	if len(msgs) == 0 {
		return nil, nil
	}

	return msgs, nil
}

func (c *Client) messagesRange(
	channelID discord.ChannelID,
	before, after, around discord.MessageID, limit uint) ([]discord.Message, error) {

	switch {
	case limit == 0:
		limit = 50
	case limit > 100:
		limit = 100
	}

	var param struct {
		Before discord.MessageID `schema:"before,omitempty"`
		After  discord.MessageID `schema:"after,omitempty"`
		Around discord.MessageID `schema:"around,omitempty"`

		Limit uint `schema:"limit"`
	}

	param.Before = before
	param.After = after
	param.Around = around
	param.Limit = limit

	var msgs []discord.Message
	return msgs, c.RequestJSON(
		&msgs, "GET",
		EndpointChannels+channelID.String()+"/messages",
		httputil.WithSchema(c, param),
	)
}

// Message returns a specific message in the channel.
//
// If operating on a guild channel, this endpoint requires the
// READ_MESSAGE_HISTORY permission to be present on the current user.
func (c *Client) Message(
	channelID discord.ChannelID, messageID discord.MessageID) (*discord.Message, error) {

	var msg *discord.Message
	return msg, c.RequestJSON(&msg, "GET",
		EndpointChannels+channelID.String()+"/messages/"+messageID.String())
}

// SendMessage posts a message to a guild text or DM channel.
//
// If operating on a guild channel, this endpoint requires the SEND_MESSAGES
// permission to be present on the current user.
//
// Fires a MessageCreateEvent on the gateway.
func (c *Client) SendMessage(
	channelID discord.ChannelID, content string, embeds ...discord.Embed) (*discord.Message, error) {

	return c.SendMessageComplex(channelID, SendMessageData{
		Content: content,
		Embeds:  embeds,
	})
}

// SendMessageReply posts a reply to a message in a guild text or DM channel.
//
// If operating on a guild channel, this endpoint requires the SEND_MESSAGES
// permission to be present on the current user.
//
// Fires a MessageCreateEvent on the gateway.
func (c *Client) SendMessageReply(
	channelID discord.ChannelID,
	content string,
	referenceID discord.MessageID, embeds ...discord.Embed) (*discord.Message, error) {

	return c.SendMessageComplex(channelID, SendMessageData{
		Content:   content,
		Embeds:    embeds,
		Reference: &discord.MessageReference{MessageID: referenceID},
	})
}

// EditMessageData is the data to be sent with EditMessageComplex.
type EditMessageData struct {
	// Content is the new message contents (up to 2000 characters).
	Content option.NullableString `json:"content,omitempty"`
	// Embeds contains embedded rich content.
	Embeds *[]discord.Embed `json:"embeds,omitempty"`
	// Components contains the new components to attach.
	Components *discord.ContainerComponents `json:"components,omitempty"`
	// AllowedMentions are the allowed mentions for a message.
	AllowedMentions *AllowedMentions `json:"allowed_mentions,omitempty"`
	// Attachments are the attached files to keep.
	Attachments *[]discord.Attachment `json:"attachments,omitempty"`
	// Flags edits the flags of a message. Currently only SuppressEmbeds can
	// be set or unset.
	Flags *discord.MessageFlags `json:"flags,omitempty"`

	// Files represents a list of files to upload. This will not be JSON
	// encoded and will only be available through WriteMultipart.
	Files []sendpart.File `json:"-"`
}

// NeedsMultipart returns true if the EditMessageData has files.
func (data EditMessageData) NeedsMultipart() bool {
	return len(data.Files) > 0
}

// WriteMultipart writes the EditMessageData into the given multipart writer.
func (data EditMessageData) WriteMultipart(body *multipart.Writer) error {
	return sendpart.Write(body, data, data.Files)
}

// EditMessage edits a previously sent message. For more documentation, refer
// to EditMessageComplex.
func (c *Client) EditMessage(
	channelID discord.ChannelID, messageID discord.MessageID,
	content string, embeds ...discord.Embed) (*discord.Message, error) {

	return c.EditMessageComplex(channelID, messageID, EditMessageData{
		Content: option.NewNullableString(content),
		Embeds:  &embeds,
	})
}

// EditEmbeds edits the embeds of a previously sent message. For more
// documentation, refer to EditMessageComplex.
func (c *Client) EditEmbeds(
	channelID discord.ChannelID,
	messageID discord.MessageID, embeds ...discord.Embed) (*discord.Message, error) {

	return c.EditMessageComplex(channelID, messageID, EditMessageData{
		Embeds: &embeds,
	})
}

// EditMessageComplex edits a previously sent message. The fields Content,
// Embeds, and Flags can be edited by the original message author. Other users
// can only edit Flags and only if they have the MANAGE_MESSAGES permission in
// the corresponding channel.
//
// Fires a MessageUpdateEvent on the gateway.
func (c *Client) EditMessageComplex(
	channelID discord.ChannelID,
	messageID discord.MessageID, data EditMessageData) (*discord.Message, error) {

	if data.AllowedMentions != nil {
		if err := data.AllowedMentions.Verify(); err != nil {
			return nil, errors.Wrap(err, "allowedMentions error")
		}
	}

	if data.Embeds != nil {
		sum := 0
		for _, embed := range *data.Embeds {
			if err := embed.Validate(); err != nil {
				return nil, errors.Wrap(err, "embed error")
			}
			sum += embed.Length()
			if sum > 6000 {
				return nil, &discord.ErrOverbound{
					Count: sum,
					Max:   6000,
					Thing: "sum of all text in embeds",
				}
			}
		}
	}

	var msg *discord.Message
	return msg, sendpart.PATCH(
		c.Client, data, &msg,
		EndpointChannels+channelID.String()+"/messages/"+messageID.String())
}

// DeleteMessage deletes a message. If operating on a guild channel and trying
// to delete a message that was not sent by the current user, this endpoint
// requires the MANAGE_MESSAGES permission.
//
// Fires a MessageDeleteEvent on the gateway.
func (c *Client) DeleteMessage(
	channelID discord.ChannelID, messageID discord.MessageID, reason AuditLogReason) error {

	return c.FastRequest(
		"DELETE",
		EndpointChannels+channelID.String()+"/messages/"+messageID.String(),
		httputil.WithHeaders(reason.Header()),
	)
}

// DeleteMessages deletes multiple messages in a single request. This endpoint
// can only be used on guild channels and requires the MANAGE_MESSAGES
// permission. This endpoint only works for bots.
//
// This endpoint will not delete messages older than 2 weeks, and will fail if
// any message provided is older than that. The IDs must also not be
// duplicated, as that will error as well.
//
// Because the limit of messages per request is 100, this method will
// paginate automatically for larger requests.
//
// Fires multiple MessageDeleteEvents on the gateway.
func (c *Client) DeleteMessages(
	channelID discord.ChannelID, messageIDs []discord.MessageID, reason AuditLogReason) error {

	switch {
	case len(messageIDs) == 0:
		return nil
	case len(messageIDs) == 1:
		return c.DeleteMessage(channelID, messageIDs[0], reason)
	case len(messageIDs) <= MaxMessageDeleteLimit:
		return c.deleteMessages(channelID, messageIDs, reason)
	}

	for start := 0; start < len(messageIDs); start += MaxMessageDeleteLimit {
		end := start + MaxMessageDeleteLimit
		if end > len(messageIDs) {
			end = len(messageIDs)
		}

		if err := c.deleteMessages(channelID, messageIDs[start:end], reason); err != nil {
			return errors.Wrapf(err, "failed to delete messages [%d, %d)", start, end)
		}
	}

	return nil
}

// MaxMessageDeleteLimit is the limit of messages that can be deleted in a
// single bulk delete request.
const MaxMessageDeleteLimit = 100

func (c *Client) deleteMessages(
	channelID discord.ChannelID, messageIDs []discord.MessageID, reason AuditLogReason) error {

	param := struct {
		Messages []discord.MessageID `json:"messages"`
	}{
		Messages: messageIDs,
	}

	return c.FastRequest(
		"POST",
		EndpointChannels+channelID.String()+"/messages/bulk-delete",
		httputil.WithJSONBody(param),
		httputil.WithHeaders(reason.Header()),
	)
}

// CrosspostMessage crossposts a message in a news channel to following
// channels. This endpoint requires the SEND_MESSAGES permission if the
// current user sent the message, or additionally the MANAGE_MESSAGES
// permission for all other messages.
func (c *Client) CrosspostMessage(
	channelID discord.ChannelID, messageID discord.MessageID) (*discord.Message, error) {

	var msg *discord.Message
	return msg, c.RequestJSON(
		&msg, "POST",
		EndpointChannels+channelID.String()+"/messages/"+messageID.String()+"/crosspost")
}

// PinnedMessages returns all pinned messages in the channel as a slice of
// messages.
func (c *Client) PinnedMessages(channelID discord.ChannelID) ([]discord.Message, error) {
	var pinned []discord.Message
	return pinned, c.RequestJSON(&pinned, "GET",
		EndpointChannels+channelID.String()+"/pins")
}

// PinMessage pins a message in the channel. This endpoint requires the
// MANAGE_MESSAGES permission.
func (c *Client) PinMessage(
	channelID discord.ChannelID, messageID discord.MessageID, reason AuditLogReason) error {

	return c.FastRequest(
		"PUT",
		EndpointChannels+channelID.String()+"/pins/"+messageID.String(),
		httputil.WithHeaders(reason.Header()),
	)
}

// UnpinMessage deletes a pinned message in the channel. This endpoint
// requires the MANAGE_MESSAGES permission.
func (c *Client) UnpinMessage(
	channelID discord.ChannelID, messageID discord.MessageID, reason AuditLogReason) error {

	return c.FastRequest(
		"DELETE",
		EndpointChannels+channelID.String()+"/pins/"+messageID.String(),
		httputil.WithHeaders(reason.Header()),
	)
}
