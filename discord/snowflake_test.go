package discord

import (
	"testing"
	"time"

	"github.com/accordlib/accord/utils/json"
)

func TestSnowflake(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		s, err := ParseSnowflake("175928847299117063")
		if err != nil {
			t.Fatal("failed to parse snowflake:", err)
		}
		if s != 175928847299117063 {
			t.Fatal("unexpected snowflake:", s)
		}
	})

	t.Run("parse null", func(t *testing.T) {
		s, err := ParseSnowflake("null")
		if err != nil {
			t.Fatal("failed to parse null snowflake:", err)
		}
		if s != NullSnowflake {
			t.Fatal("unexpected snowflake:", s)
		}
	})

	const value = 175928847299117063
	var expect = time.Date(2016, 04, 30, 11, 18, 25, 796*int(time.Millisecond), time.UTC)

	t.Run("methods", func(t *testing.T) {
		s := Snowflake(value)

		if ts := s.Time(); !ts.Equal(expect) {
			t.Fatal("unexpected time (expected/got):", expect, ts)
		}

		if s.Worker() != 1 {
			t.Fatal("unexpected worker:", s.Worker())
		}

		if s.PID() != 0 {
			t.Fatal("unexpected PID:", s.PID())
		}

		if s.Increment() != 7 {
			t.Fatal("unexpected increment:", s.Increment())
		}
	})

	t.Run("new", func(t *testing.T) {
		if s := NewSnowflake(expect); !s.Time().Equal(expect) {
			t.Fatal("unexpected new snowflake from expected time:", s)
		}
	})
}

func TestSnowflakeJSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		b, err := json.Marshal(Snowflake(175928847299117063))
		if err != nil {
			t.Fatal("failed to marshal snowflake:", err)
		}
		if string(b) != `"175928847299117063"` {
			t.Fatal("unexpected JSON:", string(b))
		}
	})

	t.Run("marshal null", func(t *testing.T) {
		b, err := json.Marshal(NullSnowflake)
		if err != nil {
			t.Fatal("failed to marshal null snowflake:", err)
		}
		if string(b) != "null" {
			t.Fatal("unexpected JSON:", string(b))
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		var s UserID
		if err := json.Unmarshal([]byte(`"175928847299117063"`), &s); err != nil {
			t.Fatal("failed to unmarshal user ID:", err)
		}
		if s != 175928847299117063 {
			t.Fatal("unexpected user ID:", s)
		}
	})

	t.Run("unmarshal null", func(t *testing.T) {
		var s UserID
		if err := json.Unmarshal([]byte("null"), &s); err != nil {
			t.Fatal("failed to unmarshal null user ID:", err)
		}
		if !s.IsNull() {
			t.Fatal("unexpected user ID:", s)
		}
	})
}

func TestSnowflakeMention(t *testing.T) {
	tests := []struct {
		mention string
		expect  string
	}{
		{UserID(1).Mention(), "<@1>"},
		{RoleID(2).Mention(), "<@&2>"},
		{ChannelID(3).Mention(), "<#3>"},
	}

	for _, test := range tests {
		if test.mention != test.expect {
			t.Errorf("unexpected mention %q, expected %q", test.mention, test.expect)
		}
	}
}
