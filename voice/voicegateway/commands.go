package voicegateway

import (
	"github.com/accordlib/accord/discord"
)

// IdentifyCommand is a command for Op 0.
//
// https://discord.com/developers/docs/topics/voice-connections#establishing-a-voice-websocket-connection-example-voice-identify-payload
type IdentifyCommand struct {
	// GuildID is the guild that the voice channel belongs to. The wire name
	// is historical.
	GuildID   discord.GuildID `json:"server_id"`
	UserID    discord.UserID  `json:"user_id"`
	SessionID string          `json:"session_id"`
	Token     string          `json:"token"`
}

// SelectProtocolCommand is a command for Op 1.
//
// https://discord.com/developers/docs/topics/voice-connections#establishing-a-voice-udp-connection-example-select-protocol-payload
type SelectProtocolCommand struct {
	Protocol string             `json:"protocol"`
	Data     SelectProtocolData `json:"data"`
}

// SelectProtocolData is the data inside a SelectProtocolCommand.
type SelectProtocolData struct {
	Address string `json:"address"`
	Port    uint16 `json:"port"`
	Mode    string `json:"mode"`
}

// HeartbeatCommand is a command for Op 3. Its value is a nonce that the
// server echoes back in the acknowledgement.
//
// https://discord.com/developers/docs/topics/voice-connections#heartbeating-example-heartbeat-payload
type HeartbeatCommand uint64

// SpeakingFlag is the type for the speaking bitfield.
//
// https://discord.com/developers/docs/topics/voice-connections#speaking
type SpeakingFlag uint64

const (
	// Microphone is normal transmission of audio.
	Microphone SpeakingFlag = 1 << iota
	// Soundshare is transmission of context audio for video, no speaking
	// indicator.
	Soundshare
	// Priority lowers the audio of other speakers.
	Priority
)

// NotSpeaking is the zero SpeakingFlag for stopping transmission.
const NotSpeaking SpeakingFlag = 0

// SpeakingEvent is an event for Op 5.
//
// The same payload is sent to start or stop transmission, so it doubles as a
// command.
//
// https://discord.com/developers/docs/topics/voice-connections#speaking-example-speaking-payload
type SpeakingEvent struct {
	Speaking SpeakingFlag   `json:"speaking"`
	Delay    int            `json:"delay"`
	SSRC     uint32         `json:"ssrc"`
	UserID   discord.UserID `json:"user_id,omitempty"`
}

// ResumeCommand is a command for Op 7.
//
// https://discord.com/developers/docs/topics/voice-connections#resuming-voice-connection-example-resume-connection-payload
type ResumeCommand struct {
	// GuildID is the guild that the voice channel belongs to. The wire name
	// is historical.
	GuildID   discord.GuildID `json:"server_id"`
	SessionID string          `json:"session_id"`
	Token     string          `json:"token"`
}
