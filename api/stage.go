package api

import (
	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/httputil"
	"github.com/accordlib/accord/utils/json/option"
)

// CreateStageInstanceData is the data for CreateStageInstance.
//
// https://discord.com/developers/docs/resources/stage-instance#create-stage-instance-json-params
type CreateStageInstanceData struct {
	// ChannelID is the id of the stage channel.
	ChannelID discord.ChannelID `json:"channel_id"`
	// Topic is the topic of the stage instance (1-120 characters).
	Topic string `json:"topic"`
	// PrivacyLevel is the privacy level of the stage instance. Defaults to
	// GuildOnlyStage.
	PrivacyLevel discord.PrivacyLevel `json:"privacy_level,omitempty"`

	AuditLogReason `json:"-"`
}

// CreateStageInstance creates a new stage instance associated to a stage
// channel.
//
// It requires the user to be a moderator of the stage channel.
func (c *Client) CreateStageInstance(
	data CreateStageInstanceData) (*discord.StageInstance, error) {

	var s *discord.StageInstance
	return s, c.RequestJSON(
		&s, "POST",
		EndpointStageInstances,
		httputil.WithJSONBody(data),
		httputil.WithHeaders(data.Header()),
	)
}

// StageInstance gets the stage instance associated with the stage channel,
// if it exists.
func (c *Client) StageInstance(
	channelID discord.ChannelID) (*discord.StageInstance, error) {

	var s *discord.StageInstance
	return s, c.RequestJSON(
		&s, "GET", EndpointStageInstances+"/"+channelID.String())
}

// UpdateStageInstanceData is the data for UpdateStageInstance.
//
// https://discord.com/developers/docs/resources/stage-instance#update-stage-instance-json-params
type UpdateStageInstanceData struct {
	// Topic is the topic of the stage instance (1-120 characters).
	Topic option.NullableString `json:"topic,omitempty"`
	// PrivacyLevel is the privacy level of the stage instance.
	PrivacyLevel discord.PrivacyLevel `json:"privacy_level,omitempty"`

	AuditLogReason `json:"-"`
}

// UpdateStageInstance updates the fields of a given stage instance.
//
// It requires the user to be a moderator of the stage channel.
func (c *Client) UpdateStageInstance(
	channelID discord.ChannelID, data UpdateStageInstanceData) error {

	return c.FastRequest(
		"PATCH",
		EndpointStageInstances+"/"+channelID.String(),
		httputil.WithJSONBody(data),
		httputil.WithHeaders(data.Header()),
	)
}

// DeleteStageInstance deletes the stage instance of the given stage channel.
//
// It requires the user to be a moderator of the stage channel.
func (c *Client) DeleteStageInstance(
	channelID discord.ChannelID, reason AuditLogReason) error {

	return c.FastRequest(
		"DELETE",
		EndpointStageInstances+"/"+channelID.String(),
		httputil.WithHeaders(reason.Header()),
	)
}
