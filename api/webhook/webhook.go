// Package webhook provides means to interact with webhooks directly and not
// through the bot API.
package webhook

import (
	"context"
	"mime/multipart"
	"net/url"
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	"github.com/accordlib/accord/api"
	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/httputil"
	"github.com/accordlib/accord/utils/json/option"
	"github.com/accordlib/accord/utils/sendpart"
)

var webhookURLRe = regexp.MustCompile(`https://discord(?:app)?.com/api/webhooks/(\d+)/(.+)`)

// ParseURL parses the given webhook URL into its ID and token.
func ParseURL(webhookURL string) (id discord.WebhookID, token string, err error) {
	matches := webhookURLRe.FindStringSubmatch(webhookURL)
	if matches == nil {
		return 0, "", errors.New("invalid webhook URL")
	}

	idInt, err := strconv.ParseUint(matches[1], 10, 64)
	if err != nil {
		return 0, "", errors.Wrap(err, "failed to parse webhook ID")
	}

	return discord.WebhookID(idInt), matches[2], nil
}

// Session keeps a single webhook session. It is referenced by other webhook
// clients using the same session.
type Session struct {
	// ID is the ID of the webhook.
	ID discord.WebhookID
	// Token is the token of the webhook.
	Token string
}

// Client creates a new webhook API client from the session.
func (s *Session) Client() *Client {
	return &Client{httputil.NewClient(), s}
}

// Client is the client used to interact with a webhook. Webhook requests are
// authorized by the webhook token alone, so no bot token is needed.
type Client struct {
	*httputil.Client
	*Session
}

// New creates a new Client using the passed webhook token and ID.
func New(id discord.WebhookID, token string) *Client {
	return NewCustom(id, token, httputil.NewClient())
}

// NewCustom creates a new webhook client using the passed webhook token, ID
// and a copy of the given httputil.Client.
func NewCustom(id discord.WebhookID, token string, hcl *httputil.Client) *Client {
	return &Client{
		Client: hcl.Copy(),
		Session: &Session{
			ID:    id,
			Token: token,
		},
	}
}

// NewFromURL creates a new webhook client using the passed webhook URL.
func NewFromURL(url string) (*Client, error) {
	id, token, err := ParseURL(url)
	if err != nil {
		return nil, err
	}
	return New(id, token), nil
}

// FromAPI creates a new client that shares the same internal HTTP client with
// the given API client. This is often useful for bots that need webhook
// interaction.
func FromAPI(id discord.WebhookID, token string, c *api.Client) *Client {
	return &Client{
		Client: c.Client,
		Session: &Session{
			ID:    id,
			Token: token,
		},
	}
}

// WithContext returns a shallow copy of Client with the given context. It's
// used for method timeouts and such. This method is thread-safe.
func (c *Client) WithContext(ctx context.Context) *Client {
	return &Client{
		Client:  c.Client.WithContext(ctx),
		Session: c.Session,
	}
}

func (c *Client) endpoint() string {
	return api.EndpointWebhooks + c.ID.String() + "/" + c.Token
}

// Get gets the webhook.
func (c *Client) Get() (*discord.Webhook, error) {
	var w *discord.Webhook
	return w, c.RequestJSON(&w, "GET", c.endpoint())
}

// Modify modifies the webhook. Only the name and avatar can be modified with
// a webhook token.
func (c *Client) Modify(data api.ModifyWebhookData) (*discord.Webhook, error) {
	var w *discord.Webhook
	return w, c.RequestJSON(
		&w, "PATCH",
		c.endpoint(),
		httputil.WithJSONBody(data),
	)
}

// Delete deletes a webhook permanently.
func (c *Client) Delete() error {
	return c.FastRequest("DELETE", c.endpoint())
}

// ExecuteData is the data for Execute and ExecuteAndWait.
//
// https://discord.com/developers/docs/resources/webhook#execute-webhook-jsonform-params
type ExecuteData struct {
	// Content are the message contents (up to 2000 characters).
	//
	// Required: one of content, file, embeds
	Content string `json:"content,omitempty"`

	// ThreadID causes the message to be sent to the specified thread within
	// the webhook's channel. The thread will automatically be unarchived.
	ThreadID discord.ChannelID `json:"-"`

	// Username overrides the default username of the webhook.
	Username string `json:"username,omitempty"`
	// AvatarURL overrides the default avatar of the webhook.
	AvatarURL discord.URL `json:"avatar_url,omitempty"`

	// TTS is true if this is a TTS message.
	TTS bool `json:"tts,omitempty"`
	// Embeds contains embedded rich content.
	//
	// Required: one of content, file, embeds
	Embeds []discord.Embed `json:"embeds,omitempty"`

	// Components is the list of components (such as buttons) to be attached
	// to the message.
	Components discord.ContainerComponents `json:"components,omitempty"`

	// Files represents a list of files to upload. This will not be
	// JSON-encoded and will only be available through WriteMultipart.
	Files []sendpart.File `json:"-"`

	// AllowedMentions are the allowed mentions for the message.
	AllowedMentions *api.AllowedMentions `json:"allowed_mentions,omitempty"`
}

// NeedsMultipart returns true if the ExecuteData has files.
func (data ExecuteData) NeedsMultipart() bool {
	return len(data.Files) > 0
}

// WriteMultipart writes the webhook data into the given multipart body. It
// does not close body.
func (data ExecuteData) WriteMultipart(body *multipart.Writer) error {
	return sendpart.Write(body, data, data.Files)
}

// Execute sends a message to the webhook, but doesn't wait for the message
// to get created. This is generally faster, but only applicable if no
// further interaction is required.
func (c *Client) Execute(data ExecuteData) (err error) {
	_, err = c.execute(data, false)
	return
}

// ExecuteAndWait executes the webhook, and waits for the generated
// discord.Message to be returned.
func (c *Client) ExecuteAndWait(data ExecuteData) (*discord.Message, error) {
	return c.execute(data, true)
}

func (c *Client) execute(data ExecuteData, wait bool) (*discord.Message, error) {
	if data.Content == "" && len(data.Embeds) == 0 && len(data.Files) == 0 {
		return nil, api.ErrEmptyMessage
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

	param := make(url.Values, 2)
	if wait {
		param["wait"] = []string{"true"}
	}
	if data.ThreadID.IsValid() {
		param["thread_id"] = []string{data.ThreadID.String()}
	}

	URL := c.endpoint()
	if len(param) > 0 {
		URL += "?" + param.Encode()
	}

	var msg *discord.Message
	var ptr interface{}
	if wait {
		ptr = &msg
	}

	return msg, sendpart.POST(c.Client, data, ptr, URL)
}

// Message returns a previously-sent webhook message from the same token.
func (c *Client) Message(messageID discord.MessageID) (*discord.Message, error) {
	var m *discord.Message
	return m, c.RequestJSON(
		&m, "GET", c.endpoint()+"/messages/"+messageID.String())
}

// EditMessageData is the data for EditMessage.
//
// https://discord.com/developers/docs/resources/webhook#edit-webhook-message-jsonform-params
type EditMessageData struct {
	// Content is the new message contents (up to 2000 characters).
	Content option.NullableString `json:"content,omitempty"`
	// Embeds contains embedded rich content.
	Embeds *[]discord.Embed `json:"embeds,omitempty"`
	// Components contains the new components to attach.
	Components *discord.ContainerComponents `json:"components,omitempty"`
	// AllowedMentions are the allowed mentions for a message.
	AllowedMentions *api.AllowedMentions `json:"allowed_mentions,omitempty"`
	// Attachments are the attached files to keep.
	Attachments *[]discord.Attachment `json:"attachments,omitempty"`

	// Files represents a list of files to upload. This will not be
	// JSON-encoded and will only be available through WriteMultipart.
	Files []sendpart.File `json:"-"`
}

// NeedsMultipart returns true if the EditMessageData has files.
func (data EditMessageData) NeedsMultipart() bool {
	return len(data.Files) > 0
}

// WriteMultipart writes the webhook data into the given multipart body. It
// does not close body.
func (data EditMessageData) WriteMultipart(body *multipart.Writer) error {
	return sendpart.Write(body, data, data.Files)
}

// EditMessage edits a previously-sent webhook message from the same webhook.
func (c *Client) EditMessage(
	messageID discord.MessageID, data EditMessageData) (*discord.Message, error) {

	if data.AllowedMentions != nil {
		if err := data.AllowedMentions.Verify(); err != nil {
			return nil, errors.Wrap(err, "allowedMentions error")
		}
	}

	if data.Embeds != nil {
		sum := 0
		for _, e := range *data.Embeds {
			if err := e.Validate(); err != nil {
				return nil, errors.Wrap(err, "embed error")
			}
			sum += e.Length()
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
		c.endpoint()+"/messages/"+messageID.String())
}

// DeleteMessage deletes a message that was previously created by the same
// webhook.
func (c *Client) DeleteMessage(messageID discord.MessageID) error {
	return c.FastRequest("DELETE", c.endpoint()+"/messages/"+messageID.String())
}
