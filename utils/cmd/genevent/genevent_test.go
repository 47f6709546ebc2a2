package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestScreamingSnake(t *testing.T) {
	cases := map[string]string{
		"MessageCreateEvent":     "MESSAGE_CREATE",
		"ReadyEvent":             "READY",
		"GuildBanAddEvent":       "GUILD_BAN_ADD",
		"TypingStartEvent":       "TYPING_START",
		"InteractionCreateEvent": "INTERACTION_CREATE",
	}

	for in, want := range cases {
		if got := screamingSnake(in); got != want {
			t.Errorf("screamingSnake(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestScanFile(t *testing.T) {
	const src = `package gateway

// MessageCreateEvent is a dispatch event for MESSAGE_CREATE.
type MessageCreateEvent struct{}

// TypingStartEvent is a dispatch event.
type TypingStartEvent struct{}

// HelloEvent is an event for Op 10.
type HelloEvent struct{}

// HeartbeatCommand is a command for Op 1.
type HeartbeatCommand uint64

// ResumedEvent is a dispatch event for RESUMED. It is
// sent by the server after a successful resume.
type ResumedEvent struct{}
`

	path := filepath.Join(t.TempDir(), "events.go")
	if err := os.WriteFile(path, []byte(src), 0666); err != nil {
		t.Fatal(err)
	}

	types, err := scanFile(path)
	if err != nil {
		t.Fatal("scanFile returned error:", err)
	}

	want := []eventType{
		{StructName: "MessageCreateEvent", EventName: "MESSAGE_CREATE", IsDispatch: true, OpCode: -1},
		{StructName: "TypingStartEvent", EventName: "TYPING_START", IsDispatch: true, OpCode: -1},
		{StructName: "HelloEvent", IsDispatch: false, OpCode: 10},
		{StructName: "HeartbeatCommand", IsDispatch: false, OpCode: 1},
		{StructName: "ResumedEvent", EventName: "RESUMED", IsDispatch: true, OpCode: -1},
	}

	if !reflect.DeepEqual(types, want) {
		t.Fatalf("unexpected scan result:\ngot  %#v\nwant %#v", types, want)
	}
}
