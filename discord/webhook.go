package discord

// Webhook is a low-effort way to post messages to channels. They do not
// require a bot user or authentication to use.
//
// https://discord.com/developers/docs/resources/webhook#webhook-object
type Webhook struct {
	// ID is the id of the webhook.
	ID WebhookID `json:"id"`
	// Type is the type of the webhook.
	Type WebhookType `json:"type"`
	// GuildID is the guild id this webhook is for, if any.
	GuildID GuildID `json:"guild_id,omitempty"`
	// ChannelID is the channel id this webhook is for, if any.
	ChannelID ChannelID `json:"channel_id"`
	// User is the user this webhook was created by. This field is not
	// returned when getting a webhook with its token.
	User *User `json:"user,omitempty"`

	// Name is the default name of the webhook.
	Name string `json:"name"`
	// Avatar is the default user avatar hash of the webhook.
	Avatar Hash `json:"avatar"`
	// Token is the secure token of the webhook, returned for incoming
	// webhooks.
	Token string `json:"token,omitempty"`

	// ApplicationID is the bot or OAuth2 application that created this
	// webhook, if any.
	ApplicationID AppID `json:"application_id,omitempty"`
}

// WebhookType is the type of a webhook.
//
// https://discord.com/developers/docs/resources/webhook#webhook-object-webhook-types
type WebhookType uint8

const (
	_ WebhookType = iota
	// IncomingWebhook is a webhook that can post messages to channels with
	// a generated token.
	IncomingWebhook
	// ChannelFollowerWebhook is an internal webhook used with channel
	// following to post new messages into channels.
	ChannelFollowerWebhook
	// ApplicationWebhook is a webhook used with interactions.
	ApplicationWebhook
)
