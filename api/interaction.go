package api

import (
	"mime/multipart"

	"github.com/pkg/errors"

	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/json/option"
	"github.com/accordlib/accord/utils/sendpart"
)

// InteractionResponseType is the type of InteractionResponse.
//
// https://discord.com/developers/docs/interactions/receiving-and-responding#interaction-response-object-interaction-callback-type
type InteractionResponseType uint

const (
	// PongInteraction responds to a ping.
	PongInteraction InteractionResponseType = iota + 1
	_
	_
	// MessageInteractionWithSource responds to an interaction with a
	// message.
	MessageInteractionWithSource
	// DeferredMessageInteractionWithSource acknowledges an interaction and
	// edits a response later, the user sees a loading state.
	DeferredMessageInteractionWithSource
	// DeferredMessageUpdate acknowledges a component interaction and edits
	// the original message later; the user does not see a loading state.
	//
	// Only valid for component-based interactions.
	DeferredMessageUpdate
	// UpdateMessage edits the message the component was attached to.
	//
	// Only valid for component-based interactions.
	UpdateMessage
	// AutocompleteResult responds to an autocomplete interaction with
	// suggested choices.
	AutocompleteResult
	// ModalResponse responds to an interaction with a popup modal.
	ModalResponse
)

// InteractionResponseFlags is an alias for message flags.
type InteractionResponseFlags = discord.MessageFlags

// EphemeralResponse is the flag for an ephemeral response message, which is
// only visible to the interaction's user.
const EphemeralResponse InteractionResponseFlags = discord.EphemeralMessage

// InteractionResponse is a response to an interaction.
type InteractionResponse struct {
	// Type is the type of response.
	Type InteractionResponseType `json:"type"`
	// Data is an optional response message.
	//
	// It is required for MessageInteractionWithSource, AutocompleteResult
	// and ModalResponse.
	Data *InteractionResponseData `json:"data,omitempty"`
}

// NeedsMultipart returns true if the InteractionResponse has files.
func (resp InteractionResponse) NeedsMultipart() bool {
	return resp.Data != nil && resp.Data.NeedsMultipart()
}

// WriteMultipart writes the InteractionResponse into the given multipart
// writer.
func (resp InteractionResponse) WriteMultipart(body *multipart.Writer) error {
	var files []sendpart.File
	if resp.Data != nil {
		files = resp.Data.Files
	}
	return sendpart.Write(body, resp, files)
}

// AutocompleteChoices are the choices to send back to the autocompleting
// user.
type AutocompleteChoices interface {
	choices()
}

// AutocompleteStringChoices are string choices.
type AutocompleteStringChoices []discord.StringChoice

func (AutocompleteStringChoices) choices() {}

// AutocompleteIntegerChoices are integer choices.
type AutocompleteIntegerChoices []discord.IntegerChoice

func (AutocompleteIntegerChoices) choices() {}

// AutocompleteNumberChoices are double choices.
type AutocompleteNumberChoices []discord.NumberChoice

func (AutocompleteNumberChoices) choices() {}

// InteractionResponseData is the data for an InteractionResponse.
//
// https://discord.com/developers/docs/interactions/receiving-and-responding#interaction-response-object
type InteractionResponseData struct {
	// Content are the message contents (up to 2000 characters).
	Content option.NullableString `json:"content,omitempty"`
	// TTS is true if this is a TTS message.
	TTS bool `json:"tts,omitempty"`
	// Embeds contains embedded rich content.
	Embeds *[]discord.Embed `json:"embeds,omitempty"`
	// Components is the list of components attached to the message.
	Components *discord.ContainerComponents `json:"components,omitempty"`
	// AllowedMentions are the allowed mentions for the message.
	AllowedMentions *AllowedMentions `json:"allowed_mentions,omitempty"`
	// Flags are the interaction response's flags. Only SuppressEmbeds and
	// EphemeralResponse can be set.
	Flags InteractionResponseFlags `json:"flags,omitempty"`

	// Files represents a list of files to upload. This will not be JSON
	// encoded and will only be available through WriteMultipart.
	Files []sendpart.File `json:"-"`

	// Choices are the results to display on autocomplete interaction
	// events.
	//
	// During autocomplete, it is recommended to search with
	// strings.HasPrefix or strings.Contains of the corresponding
	// autocomplete option.
	Choices AutocompleteChoices `json:"choices,omitempty"`

	// CustomID used with the modal.
	CustomID option.NullableString `json:"custom_id,omitempty"`
	// Title is the heading of the modal window.
	Title option.NullableString `json:"title,omitempty"`
}

// NeedsMultipart returns true if the InteractionResponseData has files.
func (data InteractionResponseData) NeedsMultipart() bool {
	return len(data.Files) > 0
}

// WriteMultipart writes the InteractionResponseData into the given multipart
// writer.
func (data InteractionResponseData) WriteMultipart(body *multipart.Writer) error {
	return sendpart.Write(body, data, data.Files)
}

// RespondInteraction responds to an incoming interaction. It is also known as
// an "interaction callback".
func (c *Client) RespondInteraction(
	id discord.InteractionID, token string, resp InteractionResponse) error {

	switch resp.Type {
	case MessageInteractionWithSource:
		// A new message is being created, so we need to apply the same
		// checks as sending a regular message.
		if resp.Data == nil {
			return errors.New("data must be provided for MessageInteractionWithSource")
		}

		sentEmpty := resp.Data.Content == nil || resp.Data.Content.Val == ""
		if sentEmpty && resp.Data.Embeds == nil && len(resp.Data.Files) == 0 {
			return ErrEmptyMessage
		}
	case DeferredMessageInteractionWithSource:
		// Deferred interactions don't allow any of the data fields except
		// for flags.
		if resp.Data != nil && (resp.Data.Content != nil ||
			resp.Data.Embeds != nil ||
			len(resp.Data.Files) > 0) {

			return errors.New(
				"only flags can be set for DeferredMessageInteractionWithSource")
		}
	case AutocompleteResult:
		if resp.Data == nil || resp.Data.Choices == nil {
			return errors.New("choices must be provided for AutocompleteResult")
		}
	case ModalResponse:
		if resp.Data == nil || resp.Data.CustomID == nil || resp.Data.Title == nil {
			return errors.New("CustomID and Title must be provided for ModalResponse")
		}
	}

	if resp.Data != nil {
		if resp.Data.AllowedMentions != nil {
			if err := resp.Data.AllowedMentions.Verify(); err != nil {
				return errors.Wrap(err, "allowedMentions error")
			}
		}
		if resp.Data.Embeds != nil {
			sum := 0
			for i, embed := range *resp.Data.Embeds {
				if err := embed.Validate(); err != nil {
					return errors.Wrapf(err, "embed error at %d", i)
				}
				sum += embed.Length()
				if sum > 6000 {
					return &discord.ErrOverbound{
						Count: sum,
						Max:   6000,
						Thing: "sum of all text in embeds",
					}
				}
			}
		}
	}

	URL := EndpointInteractions + id.String() + "/" + token + "/callback"
	return sendpart.POST(c.Client, resp, nil, URL)
}

// InteractionResponse returns the initial interaction response.
func (c *Client) InteractionResponse(
	appID discord.AppID, token string) (*discord.Message, error) {

	var m *discord.Message
	return m, c.RequestJSON(
		&m, "GET",
		EndpointWebhooks+appID.String()+"/"+token+"/messages/@original")
}

// EditInteractionResponse edits the initial interaction response.
func (c *Client) EditInteractionResponse(
	appID discord.AppID,
	token string, data EditInteractionResponseData) (*discord.Message, error) {

	return c.editInteractionFollowup(appID, "@original", token, data)
}

// DeleteInteractionResponse deletes the initial interaction response.
func (c *Client) DeleteInteractionResponse(appID discord.AppID, token string) error {
	return c.deleteInteractionFollowup(appID, "@original", token)
}

// EditInteractionResponseData is the data for EditInteractionResponse and
// EditInteractionFollowup. It is equal to EditWebhookMessageData.
type EditInteractionResponseData = EditWebhookMessageData

// CreateInteractionFollowup creates a followup message to an interaction.
// The followup message is tied to the interaction token, and therefore
// needs no authentication.
func (c *Client) CreateInteractionFollowup(
	appID discord.AppID,
	token string, data InteractionResponseData) (*discord.Message, error) {

	if data.AllowedMentions != nil {
		if err := data.AllowedMentions.Verify(); err != nil {
			return nil, errors.Wrap(err, "allowedMentions error")
		}
	}

	if data.Embeds != nil {
		sum := 0
		for i, embed := range *data.Embeds {
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
	}

	var m *discord.Message
	return m, sendpart.POST(
		c.Client, data, &m,
		EndpointWebhooks+appID.String()+"/"+token)
}

// EditInteractionFollowup edits a followup message of an interaction.
func (c *Client) EditInteractionFollowup(
	appID discord.AppID, messageID discord.MessageID,
	token string, data EditInteractionResponseData) (*discord.Message, error) {

	return c.editInteractionFollowup(appID, messageID.String(), token, data)
}

func (c *Client) editInteractionFollowup(
	appID discord.AppID, messageID string,
	token string, data EditInteractionResponseData) (*discord.Message, error) {

	var m *discord.Message
	return m, sendpart.PATCH(
		c.Client, data, &m,
		EndpointWebhooks+appID.String()+"/"+token+"/messages/"+messageID)
}

// DeleteInteractionFollowup deletes a followup message of an interaction.
func (c *Client) DeleteInteractionFollowup(
	appID discord.AppID, messageID discord.MessageID, token string) error {

	return c.deleteInteractionFollowup(appID, messageID.String(), token)
}

func (c *Client) deleteInteractionFollowup(
	appID discord.AppID, messageID string, token string) error {

	return c.FastRequest(
		"DELETE", EndpointWebhooks+appID.String()+"/"+token+"/messages/"+messageID)
}
