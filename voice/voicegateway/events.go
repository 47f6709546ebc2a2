package voicegateway

//go:generate go run ../../utils/cmd/genevent -p voicegateway -o event_methods.go

import (
	"strconv"

	"github.com/accordlib/accord/discord"
)

// ReadyEvent is an event for Op 2.
//
// https://discord.com/developers/docs/topics/voice-connections#establishing-a-voice-websocket-connection-example-voice-ready-payload
type ReadyEvent struct {
	IP          string   `json:"ip"`
	Modes       []string `json:"modes"`
	Experiments []string `json:"experiments"`
	Port        int      `json:"port"`
	SSRC        uint32   `json:"ssrc"`

	// The heartbeat_interval field in this payload is erroneous per the API
	// documentation. The correct value comes from the hello payload.
}

// Addr returns the UDP address from the voice server's IP and port.
func (r ReadyEvent) Addr() string {
	return r.IP + ":" + strconv.Itoa(r.Port)
}

// SessionDescriptionEvent is an event for Op 4.
//
// https://discord.com/developers/docs/topics/voice-connections#establishing-a-voice-udp-connection-example-session-description-payload
type SessionDescriptionEvent struct {
	Mode      string   `json:"mode"`
	SecretKey [32]byte `json:"secret_key"`
}

// HeartbeatAckEvent is an event for Op 6. Its value is the nonce of the
// acknowledged heartbeat.
//
// https://discord.com/developers/docs/topics/voice-connections#heartbeating-example-heartbeat-ack-payload
type HeartbeatAckEvent uint64

// HelloEvent is an event for Op 8.
//
// https://discord.com/developers/docs/topics/voice-connections#heartbeating-example-hello-payload
type HelloEvent struct {
	HeartbeatInterval discord.Milliseconds `json:"heartbeat_interval"`
}

// ResumedEvent is an event for Op 9.
//
// https://discord.com/developers/docs/topics/voice-connections#resuming-voice-connection-example-resumed-payload
type ResumedEvent struct{}

// ClientConnectEvent is an event for Op 12.
//
// It is undocumented but observed on the wire.
type ClientConnectEvent struct {
	UserID    discord.UserID `json:"user_id"`
	AudioSSRC uint32         `json:"audio_ssrc"`
	VideoSSRC uint32         `json:"video_ssrc"`
}

// ClientDisconnectEvent is an event for Op 13.
//
// Its existence is mentioned in
// https://github.com/discord/discord-api-docs/issues/510.
type ClientDisconnectEvent struct {
	UserID discord.UserID `json:"user_id"`
}
