package api

import (
	"mime/multipart"

	"github.com/pkg/errors"

	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/json/option"
	"github.com/accordlib/accord/utils/sendpart"
)

const AttachmentSpoilerPrefix = "SPOILER_"

// AllowedMentions is a whitelist of mentions for a message.
//
// # Whitelists
//
// Roles and Users are slices that act as whitelists for IDs that are allowed
// to be mentioned. For example, if only 1 ID is provided in Users, then only
// that ID will be parsed in the message. No other IDs will be. The same
// example also applies for roles.
//
// If Parse is an empty slice and both Users and Roles are empty slices, then
// no mentions will be parsed.
//
// # Constraints
//
// If the Users slice is not empty, then Parse must not have
// AllowUserMention. Likewise, if the Roles slice is not empty, then Parse
// must not have AllowRoleMention. This is because everything provided in
// Parse will make the API parse it completely, meaning they would be
// mutually exclusive with the whitelist slices, Roles and Users.
type AllowedMentions struct {
	// Parse is an array of allowed mention types to parse from the content.
	Parse []AllowedMentionType `json:"parse"`
	// Roles is an array of role IDs to mention. Maximum 100.
	Roles []discord.RoleID `json:"roles,omitempty"`
	// Users is an array of user IDs to mention. Maximum 100.
	Users []discord.UserID `json:"users,omitempty"`
	// RepliedUser is used for replies to indicate whether to mention the
	// author of the message being replied to.
	RepliedUser option.Bool `json:"replied_user,omitempty"`
}

// AllowedMentionType is a constant that tells the API what is allowed to be
// parsed from a message content. This can help prevent things such as an
// unintentional @everyone mention.
type AllowedMentionType string

const (
	// AllowRoleMention makes the API parse roles in the content.
	AllowRoleMention AllowedMentionType = "roles"
	// AllowUserMention makes the API parse user mentions in the content.
	AllowUserMention AllowedMentionType = "users"
	// AllowEveryoneMention makes the API parse @everyone mentions.
	AllowEveryoneMention AllowedMentionType = "everyone"
)

// Verify checks the AllowedMentions against the constraints mentioned in
// AllowedMentions' documentation. This is called on SendMessageComplex.
func (am AllowedMentions) Verify() error {
	if len(am.Roles) > 100 {
		return errors.Errorf("roles slice length %d is over 100", len(am.Roles))
	}
	if len(am.Users) > 100 {
		return errors.Errorf("users slice length %d is over 100", len(am.Users))
	}

	for _, allowed := range am.Parse {
		switch allowed {
		case AllowRoleMention:
			if len(am.Roles) > 0 {
				return errors.New("parse has AllowRoleMention and Roles slice is not empty")
			}
		case AllowUserMention:
			if len(am.Users) > 0 {
				return errors.New("parse has AllowUserMention and Users slice is not empty")
			}
		}
	}

	return nil
}

// ErrEmptyMessage is returned if either a SendMessageData or an
// ExecuteWebhookData has no content, embeds, components or files.
var ErrEmptyMessage = errors.New("message is empty")

// SendMessageData is the full structure to send a new message to the API
// with.
type SendMessageData struct {
	// Content is the message content, up to 2000 characters.
	Content string `json:"content,omitempty"`
	// Nonce is a number or string that can be used to verify a message was
	// sent. It will appear in the MessageCreateEvent for the message.
	Nonce string `json:"nonce,omitempty"`

	// TTS is true if this is a TTS message.
	TTS bool `json:"tts,omitempty"`
	// Embeds contains embedded rich content.
	Embeds []discord.Embed `json:"embeds,omitempty"`
	// Components is the list of components (such as buttons) to be attached
	// to the message.
	Components discord.ContainerComponents `json:"components,omitempty"`

	// Files represents a list of files to upload. This will not be JSON
	// encoded and will only be available through WriteMultipart.
	Files []sendpart.File `json:"-"`

	// AllowedMentions allows you to specify which mentions are valid for
	// this message.
	AllowedMentions *AllowedMentions `json:"allowed_mentions,omitempty"`
	// Reference allows you to reference another message to create a reply.
	Reference *discord.MessageReference `json:"message_reference,omitempty"`

	// Flags are the message flags. Only SuppressEmbeds and
	// SuppressNotifications can be set.
	Flags discord.MessageFlags `json:"flags,omitempty"`
}

// NeedsMultipart returns true if the SendMessageData has files.
func (data SendMessageData) NeedsMultipart() bool {
	return len(data.Files) > 0
}

// WriteMultipart writes the SendMessageData into the given multipart writer.
func (data SendMessageData) WriteMultipart(body *multipart.Writer) error {
	return sendpart.Write(body, data, data.Files)
}

// SendMessageComplex posts a message to a guild text or DM channel. If
// operating on a guild channel, this endpoint requires the SEND_MESSAGES
// permission to be present on the current user. If the tts field is set to
// true, the SEND_TTS_MESSAGES permission is required for the message to be
// spoken. Returns the created message object.
//
// Fires a MessageCreateEvent on the gateway.
func (c *Client) SendMessageComplex(
	channelID discord.ChannelID, data SendMessageData) (*discord.Message, error) {

	if data.Content == "" &&
		len(data.Embeds) == 0 &&
		len(data.Files) == 0 &&
		len(data.Components) == 0 {

		return nil, ErrEmptyMessage
	}

	if data.AllowedMentions != nil {
		if err := data.AllowedMentions.Verify(); err != nil {
			return nil, errors.Wrap(err, "allowedMentions error")
		}
	}

	sum := 0
	for i, embed := range data.Embeds {
		if err := embed.Validate(); err != nil {
			return nil, errors.Wrapf(err, "embed error at %d", i)
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

	var msg *discord.Message
	return msg, sendpart.POST(
		c.Client, data, &msg,
		EndpointChannels+channelID.String()+"/messages")
}
