package api

import (
	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/httputil"
)

// StartThreadData is the data for StartThreadWithMessage and
// StartThreadWithoutMessage.
//
// https://discord.com/developers/docs/resources/channel#start-thread-with-message-json-params
// https://discord.com/developers/docs/resources/channel#start-thread-without-message-json-params
type StartThreadData struct {
	// Name is the 1-100 character channel name.
	Name string `json:"name"`
	// AutoArchiveDuration is the duration in minutes to automatically
	// archive the thread after recent activity.
	AutoArchiveDuration discord.ArchiveDuration `json:"auto_archive_duration,omitempty"`

	// Type is the type of thread to create.
	//
	// This field can only be used when starting a thread without a message.
	Type discord.ChannelType `json:"type,omitempty"`
	// Invitable specifies whether non-moderators can add other
	// non-moderators to a thread.
	//
	// This field can only be used when creating a private thread.
	Invitable bool `json:"invitable,omitempty"`

	AuditLogReason `json:"-"`
}

// StartThreadWithMessage creates a new thread from an existing message.
//
// When called on a GuildText channel, this creates a GuildPublicThread. When
// called on a GuildNews channel, this creates a GuildNewsThread. The id of
// the created thread will be the same as the id of the message, and as such
// a message can only have a single thread created from it.
//
// Fires a ThreadCreateEvent on the gateway.
func (c *Client) StartThreadWithMessage(
	channelID discord.ChannelID,
	messageID discord.MessageID, data StartThreadData) (*discord.Channel, error) {

	data.Type = 0

	var ch *discord.Channel
	return ch, c.RequestJSON(
		&ch, "POST",
		EndpointChannels+channelID.String()+"/messages/"+messageID.String()+"/threads",
		httputil.WithJSONBody(data),
		httputil.WithHeaders(data.Header()),
	)
}

// StartThreadWithoutMessage creates a new thread that is not connected to an
// existing message.
//
// Fires a ThreadCreateEvent on the gateway.
func (c *Client) StartThreadWithoutMessage(
	channelID discord.ChannelID, data StartThreadData) (*discord.Channel, error) {

	var ch *discord.Channel
	return ch, c.RequestJSON(
		&ch, "POST",
		EndpointChannels+channelID.String()+"/threads",
		httputil.WithJSONBody(data),
		httputil.WithHeaders(data.Header()),
	)
}

// JoinThread adds the current user to a thread. Also requires the thread to
// be not archived.
//
// Fires a ThreadMembersUpdateEvent on the gateway.
func (c *Client) JoinThread(threadID discord.ChannelID) error {
	return c.FastRequest(
		"PUT", EndpointChannels+threadID.String()+"/thread-members/@me")
}

// AddThreadMember adds another member to a thread. Requires the ability to
// send messages in the thread. Also requires the thread to be not archived.
//
// Fires a ThreadMembersUpdateEvent on the gateway.
func (c *Client) AddThreadMember(threadID discord.ChannelID, userID discord.UserID) error {
	return c.FastRequest(
		"PUT", EndpointChannels+threadID.String()+"/thread-members/"+userID.String())
}

// LeaveThread removes the current user from a thread. Also requires the
// thread to be not archived.
//
// Fires a ThreadMembersUpdateEvent on the gateway.
func (c *Client) LeaveThread(threadID discord.ChannelID) error {
	return c.FastRequest(
		"DELETE", EndpointChannels+threadID.String()+"/thread-members/@me")
}

// RemoveThreadMember removes another member from a thread. Requires the
// MANAGE_THREADS permission, or the creator of the thread if it is a
// GuildPrivateThread. Also requires the thread to be not archived.
//
// Fires a ThreadMembersUpdateEvent on the gateway.
func (c *Client) RemoveThreadMember(threadID discord.ChannelID, userID discord.UserID) error {
	return c.FastRequest(
		"DELETE", EndpointChannels+threadID.String()+"/thread-members/"+userID.String())
}

// ThreadMember returns the thread member object for the specified user if
// they are a member of the thread.
func (c *Client) ThreadMember(
	threadID discord.ChannelID, userID discord.UserID) (*discord.ThreadMember, error) {

	var m *discord.ThreadMember
	return m, c.RequestJSON(
		&m, "GET", EndpointChannels+threadID.String()+"/thread-members/"+userID.String())
}

// ThreadMembers lists all members of the thread.
//
// This endpoint requires the GUILD_MEMBERS privileged intent to be enabled
// for the application.
func (c *Client) ThreadMembers(threadID discord.ChannelID) ([]discord.ThreadMember, error) {
	var m []discord.ThreadMember
	return m, c.RequestJSON(
		&m, "GET", EndpointChannels+threadID.String()+"/thread-members")
}

// ArchivedThreads is the response of the archived thread listing endpoints.
type ArchivedThreads struct {
	// Threads are the archived threads.
	Threads []discord.Channel `json:"threads"`
	// Members contains a thread member object for each returned thread the
	// current user has joined.
	Members []discord.ThreadMember `json:"members"`
	// More specifies whether there are potentially additional threads that
	// could be returned on a subsequent call.
	More bool `json:"has_more"`
}

// PublicArchivedThreadsBefore returns archived threads in the channel that
// are public.
//
// When called on a GuildText channel, returns threads of type
// GuildPublicThread. When called on a GuildNews channel, returns threads of
// type GuildNewsThread.
//
// Threads are ordered by the archive timestamp in descending order.
// Requires the READ_MESSAGE_HISTORY permission.
func (c *Client) PublicArchivedThreadsBefore(
	channelID discord.ChannelID,
	before discord.Timestamp, limit uint) (*ArchivedThreads, error) {

	return c.archivedThreads(
		EndpointChannels+channelID.String()+"/threads/archived/public", before, limit)
}

// PrivateArchivedThreadsBefore returns archived threads in the channel that
// are of type GuildPrivateThread.
//
// Threads are ordered by the archive timestamp in descending order.
// Requires both the READ_MESSAGE_HISTORY and MANAGE_THREADS permissions.
func (c *Client) PrivateArchivedThreadsBefore(
	channelID discord.ChannelID,
	before discord.Timestamp, limit uint) (*ArchivedThreads, error) {

	return c.archivedThreads(
		EndpointChannels+channelID.String()+"/threads/archived/private", before, limit)
}

// JoinedPrivateArchivedThreadsBefore returns archived threads in the channel
// that are of type GuildPrivateThread, and the user has joined.
//
// Threads are ordered by their id in descending order. Requires the
// READ_MESSAGE_HISTORY permission.
func (c *Client) JoinedPrivateArchivedThreadsBefore(
	channelID discord.ChannelID,
	before discord.Timestamp, limit uint) (*ArchivedThreads, error) {

	return c.archivedThreads(
		EndpointChannels+channelID.String()+"/users/@me/threads/archived/private", before, limit)
}

func (c *Client) archivedThreads(
	url string, before discord.Timestamp, limit uint) (*ArchivedThreads, error) {

	var param struct {
		Before string `schema:"before,omitempty"`
		Limit  uint   `schema:"limit,omitempty"`
	}

	if before.IsValid() {
		param.Before = before.Format(discord.TimestampFormat)
	}
	param.Limit = limit

	var t *ArchivedThreads
	return t, c.RequestJSON(&t, "GET", url, httputil.WithSchema(c, param))
}
