package discord

import "time"

// Message represents a message sent in a channel within Discord.
//
// https://discord.com/developers/docs/resources/channel#message-object
type Message struct {
	// ID is the id of the message.
	ID MessageID `json:"id"`
	// Type is the type of message.
	Type MessageType `json:"type"`
	// ChannelID is the id of the channel the message was sent in.
	ChannelID ChannelID `json:"channel_id"`
	// GuildID is the id of the guild the message was sent in.
	//
	// This field is only present for gateway message dispatches.
	GuildID GuildID `json:"guild_id,omitempty"`

	// Flags are the message flags.
	Flags MessageFlags `json:"flags,omitempty"`

	// Author is the author of the message.
	//
	// The author object follows the structure of the user object, but is
	// only a valid user in the case where the message is generated by a
	// user or bot user. If the message is generated by a webhook, the
	// author object corresponds to the webhook's id, username and avatar.
	// You can tell if a message is generated by a webhook by checking for
	// the webhook_id on the message object.
	Author User `json:"author"`

	// Content contains the contents of the message.
	Content string `json:"content"`

	// Timestamp specifies when the message was sent.
	Timestamp Timestamp `json:"timestamp,omitempty"`
	// EditedTimestamp specifies when this message was edited. It is null
	// (or never) if the message was never edited.
	EditedTimestamp Timestamp `json:"edited_timestamp,omitempty"`

	// TTS specifies whether this was a TTS message.
	TTS bool `json:"tts"`
	// Pinned specifies whether the message is pinned.
	Pinned bool `json:"pinned"`

	// MentionEveryone specifies whether the message mentions everyone.
	MentionEveryone bool `json:"mention_everyone"`
	// Mentions contains the users specifically mentioned in the message.
	//
	// The user objects in the mentions array will only have the partial
	// member field present in message create and message update dispatches
	// from text-based guild channels.
	Mentions []GuildUser `json:"mentions"`
	// MentionRoleIDs contains the ids of the roles specifically mentioned in
	// the message.
	MentionRoleIDs []RoleID `json:"mention_roles"`
	// MentionChannels are the channels specifically mentioned in the
	// message.
	//
	// Not all channel mentions in a message will appear in mention_channels:
	// only textual channels that are visible to everyone in a lurkable guild
	// will ever be included.
	MentionChannels []ChannelMention `json:"mention_channels,omitempty"`

	// Attachments contains any attached files.
	Attachments []Attachment `json:"attachments"`
	// Embeds contains any embedded content.
	Embeds []Embed `json:"embeds"`
	// Components contains any attached components.
	Components ContainerComponents `json:"components,omitempty"`
	// Stickers contains the sticker items sent with the message.
	Stickers []StickerItem `json:"sticker_items,omitempty"`

	// Reactions contains any reactions to the message.
	Reactions []Reaction `json:"reactions,omitempty"`

	// Nonce is used for validating whether a message was sent.
	Nonce string `json:"nonce,omitempty"`

	// WebhookID is the id of the webhook, if the message was generated by a
	// webhook.
	WebhookID WebhookID `json:"webhook_id,omitempty"`

	// Activity is sent with rich presence-related chat embeds.
	Activity *MessageActivity `json:"activity,omitempty"`
	// Application is sent with rich presence-related chat embeds.
	Application *MessageApplication `json:"application,omitempty"`

	// Reference is the message crosspost or reply source.
	Reference *MessageReference `json:"message_reference,omitempty"`
	// ReferencedMessage is the message that was replied to. If not present
	// and the type is InlinedReplyMessage, the backend couldn't fetch the
	// replied-to message. If null, the message was deleted. If present and
	// non-null, it is a message object.
	ReferencedMessage *Message `json:"referenced_message,omitempty"`

	// Interaction is sent when the message is a response to an interaction,
	// excluding deferred responses and follow-up messages.
	Interaction *MessageInteraction `json:"interaction,omitempty"`
}

// CreatedAt returns a time object representing when the message was created.
func (m Message) CreatedAt() time.Time {
	return m.ID.Time()
}

// EditedAt returns the time the message was last edited, or the zero time if
// the message was never edited.
func (m Message) EditedAt() time.Time {
	return m.EditedTimestamp.Time()
}

// URL generates a message link in the format of
// https://discord.com/channels/123/456/789.
func (m Message) URL() string {
	var guildID = "@me"
	if m.GuildID.IsValid() {
		guildID = m.GuildID.String()
	}

	return "https://discord.com/channels/" +
		guildID + "/" +
		m.ChannelID.String() + "/" +
		m.ID.String()
}

// MessageType is the type of a message.
//
// https://discord.com/developers/docs/resources/channel#message-object-message-types
type MessageType uint8

const (
	DefaultMessage MessageType = iota
	RecipientAddMessage
	RecipientRemoveMessage
	CallMessage
	ChannelNameChangeMessage
	ChannelIconChangeMessage
	ChannelPinnedMessage
	GuildMemberJoinMessage
	NitroBoostMessage
	NitroTier1Message
	NitroTier2Message
	NitroTier3Message
	ChannelFollowAddMessage
	_
	GuildDiscoveryDisqualifiedMessage
	GuildDiscoveryRequalifiedMessage
	GuildDiscoveryGracePeriodInitialWarning
	GuildDiscoveryGracePeriodFinalWarning
	ThreadCreatedMessage
	// InlinedReplyMessage is a message that replies to another message.
	InlinedReplyMessage
	// ChatInputCommandMessage is the response of a slash command.
	ChatInputCommandMessage
	// ThreadStarterMessage is the first message in a thread, pointing to the
	// message the thread was started from.
	ThreadStarterMessage
	GuildInviteReminderMessage
	// ContextMenuCommandMessage is the response of a context menu command.
	ContextMenuCommandMessage
	// AutoModerationActionMessage is sent when auto moderation takes an
	// action.
	AutoModerationActionMessage
)

// MessageFlags are the flags of a message.
//
// https://discord.com/developers/docs/resources/channel#message-object-message-flags
type MessageFlags uint32

const (
	// CrosspostedMessage specifies whether the message has been published to
	// subscribed channels.
	CrosspostedMessage MessageFlags = 1 << iota
	// MessageIsCrosspost specifies whether the message originated from a
	// message in another channel.
	MessageIsCrosspost
	// SuppressEmbeds specifies whether to not include any embeds when
	// serializing the message.
	SuppressEmbeds
	// SourceMessageDeleted specifies whether the source message for the
	// crosspost has been deleted.
	SourceMessageDeleted
	// URGMessage specifies whether the message came from the urgent message
	// system.
	URGMessage
	// MessageHasThread specifies whether the message has an associated
	// thread, with the same id as the message.
	MessageHasThread
	// EphemeralMessage specifies whether the message is only visible to the
	// user who invoked the interaction.
	EphemeralMessage
	// MessageLoading specifies whether the message is an interaction
	// response and the bot is "thinking".
	MessageLoading
	// FailedToMentionSomeRolesInThread specifies whether the message failed
	// to mention some roles and add their members to the thread.
	FailedToMentionSomeRolesInThread
)

// ChannelMention is a textual channel mentioned in a message.
//
// https://discord.com/developers/docs/resources/channel#channel-mention-object
type ChannelMention struct {
	// ChannelID is the id of the channel.
	ChannelID ChannelID `json:"id"`
	// GuildID is the id of the guild containing the channel.
	GuildID GuildID `json:"guild_id"`
	// ChannelType is the type of the channel.
	ChannelType ChannelType `json:"type"`
	// ChannelName is the name of the channel.
	ChannelName string `json:"name"`
}

// GuildUser is a user with an optional partial Member field, as sent in
// message mention arrays and typing start events.
type GuildUser struct {
	User
	// Member is the member object of the user, partial in most cases.
	Member *Member `json:"member,omitempty"`
}

// Attachment is a file attached to a message.
//
// https://discord.com/developers/docs/resources/channel#attachment-object
type Attachment struct {
	// ID is the attachment id.
	ID AttachmentID `json:"id"`
	// Filename is the name of the file attached.
	Filename string `json:"filename"`
	// Description is the description of the file.
	Description string `json:"description,omitempty"`
	// ContentType is the media type of the file.
	ContentType string `json:"content_type,omitempty"`
	// Size is the size of the file in bytes.
	Size uint64 `json:"size"`

	// URL is the source URL of the file.
	URL URL `json:"url"`
	// Proxy is the proxied URL of the file.
	Proxy URL `json:"proxy_url"`

	// Height is the height of the file, if it is an image.
	Height uint `json:"height,omitempty"`
	// Width is the width of the file, if it is an image.
	Width uint `json:"width,omitempty"`

	// Ephemeral specifies whether the attachment is ephemeral. Ephemeral
	// attachments will automatically be removed after a set period of time.
	// They are guaranteed to be available as long as their message itself
	// exists.
	Ephemeral bool `json:"ephemeral,omitempty"`
}

// Reaction is a reaction to a message.
//
// https://discord.com/developers/docs/resources/channel#reaction-object
type Reaction struct {
	// Count is the number of times this emoji has been used to react.
	Count int `json:"count"`
	// Me specifies whether the current user reacted using this emoji.
	Me bool `json:"me"`
	// Emoji contains partial emoji information.
	Emoji Emoji `json:"emoji"`
}

// MessageReference is a reference to the source message of a crosspost,
// channel follow add, pin or reply.
//
// https://discord.com/developers/docs/resources/channel#message-reference-object
type MessageReference struct {
	// MessageID is the id of the originating message.
	MessageID MessageID `json:"message_id,omitempty"`
	// ChannelID is the id of the originating message's channel. It is
	// optional when sending a reply.
	ChannelID ChannelID `json:"channel_id,omitempty"`
	// GuildID is the id of the originating message's guild.
	GuildID GuildID `json:"guild_id,omitempty"`
}

// MessageActivity is the activity sent with rich presence-related chat
// embeds.
type MessageActivity struct {
	// Type is the type of the message activity.
	Type MessageActivityType `json:"type"`
	// PartyID is the party id from a rich presence event.
	PartyID string `json:"party_id,omitempty"`
}

// MessageActivityType is the type of a message activity.
type MessageActivityType uint8

const (
	JoinMessage MessageActivityType = iota + 1
	SpectateMessage
	ListenMessage
	_
	JoinRequestMessage
)

// MessageApplication is the application sent with rich presence-related chat
// embeds.
type MessageApplication struct {
	// ID is the id of the application.
	ID AppID `json:"id"`
	// CoverID is the id of the embed's image asset.
	CoverID string `json:"cover_image,omitempty"`
	// Description is the application's description.
	Description string `json:"description"`
	// Icon is the id of the application's icon.
	Icon string `json:"icon"`
	// Name is the name of the application.
	Name string `json:"name"`
}

// MessageInteraction is sent on a message when it is a response to an
// interaction.
//
// https://discord.com/developers/docs/interactions/receiving-and-responding#message-interaction-object
type MessageInteraction struct {
	// ID is the id of the interaction.
	ID InteractionID `json:"id"`
	// Type is the type of the interaction.
	Type InteractionDataType `json:"type"`
	// Name is the name of the application command.
	Name string `json:"name"`
	// User is the user who invoked the interaction.
	User User `json:"user"`
}
