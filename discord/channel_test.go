package discord

import (
	"testing"

	"github.com/accordlib/accord/utils/json"
)

func TestOverwriteTypeUnmarshal(t *testing.T) {
	// Most endpoints send the overwrite type as an integer, but audit logs
	// send it as a string.
	tests := []struct {
		body   string
		expect OverwriteType
	}{
		{`0`, OverwriteRole},
		{`1`, OverwriteMember},
		{`"0"`, OverwriteRole},
		{`"1"`, OverwriteMember},
	}

	for _, test := range tests {
		var typ OverwriteType
		if err := typ.UnmarshalJSON([]byte(test.body)); err != nil {
			t.Fatalf("failed to unmarshal %q: %v", test.body, err)
		}
		if typ != test.expect {
			t.Errorf("unexpected type for %q: %v", test.body, typ)
		}
	}
}

func TestChannelUnmarshalThread(t *testing.T) {
	const payload = `{
		"id": "1",
		"guild_id": "2",
		"type": 11,
		"name": "needle",
		"parent_id": "3",
		"thread_metadata": {
			"archived": false,
			"auto_archive_duration": 1440,
			"archive_timestamp": "2021-07-12T00:00:00+00:00",
			"locked": false
		}
	}`

	var ch Channel
	if err := json.Unmarshal([]byte(payload), &ch); err != nil {
		t.Fatal("failed to unmarshal thread channel:", err)
	}

	if ch.Type != GuildPublicThread {
		t.Fatal("unexpected channel type:", ch.Type)
	}
	if ch.ThreadMetadata == nil {
		t.Fatal("missing thread metadata")
	}
	if ch.ThreadMetadata.AutoArchiveDuration != OneDayArchive {
		t.Fatal("unexpected archive duration:", ch.ThreadMetadata.AutoArchiveDuration)
	}
}

func TestMessageURL(t *testing.T) {
	m := Message{
		ID:        3,
		ChannelID: 2,
		GuildID:   1,
	}

	if url := m.URL(); url != "https://discord.com/channels/1/2/3" {
		t.Fatal("unexpected URL:", url)
	}

	dm := Message{ID: 3, ChannelID: 2}
	if url := dm.URL(); url != "https://discord.com/channels/@me/2/3" {
		t.Fatal("unexpected DM URL:", url)
	}
}
