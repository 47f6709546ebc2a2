package gateway

//go:generate go run ../utils/cmd/genevent -p gateway -o event_methods.go

import "github.com/accordlib/accord/discord"

// HelloEvent is an event for Op 10. It is the first payload the gateway sends
// after connecting.
type HelloEvent struct {
	HeartbeatInterval discord.Milliseconds `json:"heartbeat_interval"`
}

// HeartbeatAckEvent is an event for Op 11.
type HeartbeatAckEvent struct{}

// InvalidSessionEvent is an event for Op 9. Its value indicates whether the
// session is resumable.
type InvalidSessionEvent bool

// ReconnectEvent is an event for Op 7. The server uses it to ask the client
// to reconnect.
type ReconnectEvent struct{}

// ResumedEvent is a dispatch event for RESUMED.
type ResumedEvent struct{}

// ChannelCreateEvent is a dispatch event for CHANNEL_CREATE.
type ChannelCreateEvent struct {
	discord.Channel
}

// ChannelUpdateEvent is a dispatch event for CHANNEL_UPDATE.
type ChannelUpdateEvent struct {
	discord.Channel
}

// ChannelDeleteEvent is a dispatch event for CHANNEL_DELETE.
type ChannelDeleteEvent struct {
	discord.Channel
}

// ChannelPinsUpdateEvent is a dispatch event for CHANNEL_PINS_UPDATE.
type ChannelPinsUpdateEvent struct {
	GuildID   discord.GuildID   `json:"guild_id,omitempty"`
	ChannelID discord.ChannelID `json:"channel_id,omitempty"`
	LastPin   discord.Timestamp `json:"last_pin_timestamp,omitempty"`
}

// ThreadCreateEvent is a dispatch event for THREAD_CREATE. It is also sent
// when the current user is added to a private thread.
type ThreadCreateEvent struct {
	discord.Channel
	NewlyCreated bool `json:"newly_created,omitempty"`
}

// ThreadUpdateEvent is a dispatch event for THREAD_UPDATE.
type ThreadUpdateEvent struct {
	discord.Channel
}

// ThreadDeleteEvent is a dispatch event for THREAD_DELETE.
type ThreadDeleteEvent struct {
	ID       discord.ChannelID   `json:"id"`
	GuildID  discord.GuildID     `json:"guild_id"`
	ParentID discord.ChannelID   `json:"parent_id,omitempty"`
	Type     discord.ChannelType `json:"type"`
}

// ThreadListSyncEvent is a dispatch event for THREAD_LIST_SYNC. It is sent
// when the current user gains access to a channel.
type ThreadListSyncEvent struct {
	GuildID    discord.GuildID        `json:"guild_id"`
	ChannelIDs []discord.ChannelID    `json:"channel_ids,omitempty"`
	Threads    []discord.Channel      `json:"threads"`
	Members    []discord.ThreadMember `json:"members"`
}

// ThreadMemberUpdateEvent is a dispatch event for THREAD_MEMBER_UPDATE.
type ThreadMemberUpdateEvent struct {
	discord.ThreadMember
	GuildID discord.GuildID `json:"guild_id"`
}

// ThreadMembersUpdateEvent is a dispatch event for THREAD_MEMBERS_UPDATE.
type ThreadMembersUpdateEvent struct {
	ID          discord.ChannelID `json:"id"`
	GuildID     discord.GuildID   `json:"guild_id"`
	MemberCount int               `json:"member_count"`

	AddedMembers     []discord.ThreadMember `json:"added_members,omitempty"`
	RemovedMemberIDs []discord.UserID       `json:"removed_member_ids,omitempty"`
}

// GuildCreateEvent is a dispatch event for GUILD_CREATE.
type GuildCreateEvent struct {
	discord.Guild

	Joined      discord.Timestamp `json:"joined_at,omitempty"`
	Large       bool              `json:"large,omitempty"`
	Unavailable bool              `json:"unavailable,omitempty"`
	MemberCount uint64            `json:"member_count,omitempty"`

	VoiceStates []discord.VoiceState    `json:"voice_states,omitempty"`
	Members     []discord.Member        `json:"members,omitempty"`
	Channels    []discord.Channel       `json:"channels,omitempty"`
	Threads     []discord.Channel       `json:"threads,omitempty"`
	Presences   []discord.Presence      `json:"presences,omitempty"`
	Stages      []discord.StageInstance `json:"stage_instances,omitempty"`
}

// GuildUpdateEvent is a dispatch event for GUILD_UPDATE.
type GuildUpdateEvent struct {
	discord.Guild
}

// GuildDeleteEvent is a dispatch event for GUILD_DELETE.
type GuildDeleteEvent struct {
	ID discord.GuildID `json:"id"`
	// Unavailable is false if the user was removed from the guild.
	Unavailable bool `json:"unavailable"`
}

// GuildBanAddEvent is a dispatch event for GUILD_BAN_ADD.
type GuildBanAddEvent struct {
	GuildID discord.GuildID `json:"guild_id"`
	User    discord.User    `json:"user"`
}

// GuildBanRemoveEvent is a dispatch event for GUILD_BAN_REMOVE.
type GuildBanRemoveEvent struct {
	GuildID discord.GuildID `json:"guild_id"`
	User    discord.User    `json:"user"`
}

// GuildEmojisUpdateEvent is a dispatch event for GUILD_EMOJIS_UPDATE.
type GuildEmojisUpdateEvent struct {
	GuildID discord.GuildID `json:"guild_id"`
	Emojis  []discord.Emoji `json:"emojis"`
}

// GuildIntegrationsUpdateEvent is a dispatch event for
// GUILD_INTEGRATIONS_UPDATE.
type GuildIntegrationsUpdateEvent struct {
	GuildID discord.GuildID `json:"guild_id"`
}

// GuildMemberAddEvent is a dispatch event for GUILD_MEMBER_ADD.
type GuildMemberAddEvent struct {
	discord.Member
	GuildID discord.GuildID `json:"guild_id"`
}

// GuildMemberRemoveEvent is a dispatch event for GUILD_MEMBER_REMOVE.
type GuildMemberRemoveEvent struct {
	GuildID discord.GuildID `json:"guild_id"`
	User    discord.User    `json:"user"`
}

// GuildMemberUpdateEvent is a dispatch event for GUILD_MEMBER_UPDATE.
type GuildMemberUpdateEvent struct {
	GuildID      discord.GuildID   `json:"guild_id"`
	RoleIDs      []discord.RoleID  `json:"roles"`
	User         discord.User      `json:"user"`
	Nick         string            `json:"nick,omitempty"`
	Avatar       discord.Hash      `json:"avatar"`
	JoinedAt     discord.Timestamp `json:"joined_at"`
	BoostedSince discord.Timestamp `json:"premium_since,omitempty"`
	IsPending    bool              `json:"pending,omitempty"`
}

// UpdateMember applies the event's changes onto the given member.
func (u *GuildMemberUpdateEvent) UpdateMember(m *discord.Member) {
	m.RoleIDs = u.RoleIDs
	m.User = u.User
	m.Nick = u.Nick
	m.Avatar = u.Avatar
	m.BoostedSince = u.BoostedSince
}

// GuildMembersChunkEvent is a dispatch event for GUILD_MEMBERS_CHUNK. It is
// sent in response to a RequestGuildMembersCommand.
type GuildMembersChunkEvent struct {
	GuildID discord.GuildID  `json:"guild_id"`
	Members []discord.Member `json:"members"`

	ChunkIndex int `json:"chunk_index"`
	ChunkCount int `json:"chunk_count"`

	NotFound []string `json:"not_found,omitempty"`

	// Presences is only filled if requested.
	Presences []discord.Presence `json:"presences,omitempty"`
	Nonce     string             `json:"nonce,omitempty"`
}

// GuildRoleCreateEvent is a dispatch event for GUILD_ROLE_CREATE.
type GuildRoleCreateEvent struct {
	GuildID discord.GuildID `json:"guild_id"`
	Role    discord.Role    `json:"role"`
}

// GuildRoleUpdateEvent is a dispatch event for GUILD_ROLE_UPDATE.
type GuildRoleUpdateEvent struct {
	GuildID discord.GuildID `json:"guild_id"`
	Role    discord.Role    `json:"role"`
}

// GuildRoleDeleteEvent is a dispatch event for GUILD_ROLE_DELETE.
type GuildRoleDeleteEvent struct {
	GuildID discord.GuildID `json:"guild_id"`
	RoleID  discord.RoleID  `json:"role_id"`
}

// InviteCreateEvent is a dispatch event for INVITE_CREATE.
type InviteCreateEvent struct {
	Code      string            `json:"code"`
	CreatedAt discord.Timestamp `json:"created_at"`
	ChannelID discord.ChannelID `json:"channel_id"`
	GuildID   discord.GuildID   `json:"guild_id,omitempty"`

	Inviter    *discord.User          `json:"inviter,omitempty"`
	Target     *discord.User          `json:"target_user,omitempty"`
	TargetType discord.InviteUserType `json:"target_user_type,omitempty"`

	discord.InviteMetadata
}

// InviteDeleteEvent is a dispatch event for INVITE_DELETE.
type InviteDeleteEvent struct {
	Code      string            `json:"code"`
	ChannelID discord.ChannelID `json:"channel_id"`
	GuildID   discord.GuildID   `json:"guild_id,omitempty"`
}

// MessageCreateEvent is a dispatch event for MESSAGE_CREATE.
type MessageCreateEvent struct {
	discord.Message
	Member *discord.Member `json:"member,omitempty"`
}

// MessageUpdateEvent is a dispatch event for MESSAGE_UPDATE. The embedded
// message is partial; only the changed fields are set.
type MessageUpdateEvent struct {
	discord.Message
	Member *discord.Member `json:"member,omitempty"`
}

// MessageDeleteEvent is a dispatch event for MESSAGE_DELETE.
type MessageDeleteEvent struct {
	ID        discord.MessageID `json:"id"`
	ChannelID discord.ChannelID `json:"channel_id"`
	GuildID   discord.GuildID   `json:"guild_id,omitempty"`
}

// MessageDeleteBulkEvent is a dispatch event for MESSAGE_DELETE_BULK.
type MessageDeleteBulkEvent struct {
	IDs       []discord.MessageID `json:"ids"`
	ChannelID discord.ChannelID   `json:"channel_id"`
	GuildID   discord.GuildID     `json:"guild_id,omitempty"`
}

// MessageReactionAddEvent is a dispatch event for MESSAGE_REACTION_ADD.
type MessageReactionAddEvent struct {
	UserID    discord.UserID    `json:"user_id"`
	ChannelID discord.ChannelID `json:"channel_id"`
	MessageID discord.MessageID `json:"message_id"`

	Emoji discord.Emoji `json:"emoji"`

	GuildID discord.GuildID `json:"guild_id,omitempty"`
	Member  *discord.Member `json:"member,omitempty"`
}

// MessageReactionRemoveEvent is a dispatch event for MESSAGE_REACTION_REMOVE.
type MessageReactionRemoveEvent struct {
	UserID    discord.UserID    `json:"user_id"`
	ChannelID discord.ChannelID `json:"channel_id"`
	MessageID discord.MessageID `json:"message_id"`
	Emoji     discord.Emoji     `json:"emoji"`
	GuildID   discord.GuildID   `json:"guild_id,omitempty"`
}

// MessageReactionRemoveAllEvent is a dispatch event for
// MESSAGE_REACTION_REMOVE_ALL.
type MessageReactionRemoveAllEvent struct {
	ChannelID discord.ChannelID `json:"channel_id"`
	MessageID discord.MessageID `json:"message_id"`
	GuildID   discord.GuildID   `json:"guild_id,omitempty"`
}

// MessageReactionRemoveEmojiEvent is a dispatch event for
// MESSAGE_REACTION_REMOVE_EMOJI.
type MessageReactionRemoveEmojiEvent struct {
	ChannelID discord.ChannelID `json:"channel_id"`
	MessageID discord.MessageID `json:"message_id"`
	Emoji     discord.Emoji     `json:"emoji"`
	GuildID   discord.GuildID   `json:"guild_id,omitempty"`
}

// PresenceUpdateEvent is a dispatch event for PRESENCE_UPDATE.
type PresenceUpdateEvent struct {
	discord.Presence
}

// TypingStartEvent is a dispatch event for TYPING_START.
type TypingStartEvent struct {
	ChannelID discord.ChannelID     `json:"channel_id"`
	UserID    discord.UserID        `json:"user_id"`
	Timestamp discord.UnixTimestamp `json:"timestamp"`

	GuildID discord.GuildID `json:"guild_id,omitempty"`
	Member  *discord.Member `json:"member,omitempty"`
}

// UserUpdateEvent is a dispatch event for USER_UPDATE.
type UserUpdateEvent struct {
	discord.User
}

// VoiceStateUpdateEvent is a dispatch event for VOICE_STATE_UPDATE.
type VoiceStateUpdateEvent struct {
	discord.VoiceState
}

// VoiceServerUpdateEvent is a dispatch event for VOICE_SERVER_UPDATE.
type VoiceServerUpdateEvent struct {
	Token    string          `json:"token"`
	GuildID  discord.GuildID `json:"guild_id"`
	Endpoint string          `json:"endpoint"`
}

// WebhooksUpdateEvent is a dispatch event for WEBHOOKS_UPDATE.
type WebhooksUpdateEvent struct {
	GuildID   discord.GuildID   `json:"guild_id"`
	ChannelID discord.ChannelID `json:"channel_id"`
}

// InteractionCreateEvent is a dispatch event for INTERACTION_CREATE.
type InteractionCreateEvent struct {
	discord.InteractionEvent
}

// StageInstanceCreateEvent is a dispatch event for STAGE_INSTANCE_CREATE.
type StageInstanceCreateEvent struct {
	discord.StageInstance
}

// StageInstanceUpdateEvent is a dispatch event for STAGE_INSTANCE_UPDATE.
type StageInstanceUpdateEvent struct {
	discord.StageInstance
}

// StageInstanceDeleteEvent is a dispatch event for STAGE_INSTANCE_DELETE.
type StageInstanceDeleteEvent struct {
	discord.StageInstance
}
