package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/json"
	"github.com/accordlib/accord/utils/json/option"
	"github.com/accordlib/accord/utils/ws"
)

func TestAddGatewayParams(t *testing.T) {
	url := AddGatewayParams("wss://gateway.discord.gg")
	assert.Equal(t, "wss://gateway.discord.gg?encoding=json&v="+Version, url)
}

func TestOpUnmarshalers(t *testing.T) {
	fn := OpUnmarshalers.Lookup(0, "MESSAGE_CREATE")
	require.NotNil(t, fn)
	assert.IsType(t, &MessageCreateEvent{}, fn())

	fn = OpUnmarshalers.Lookup(10, "")
	require.NotNil(t, fn)
	assert.IsType(t, &HelloEvent{}, fn())

	assert.Nil(t, OpUnmarshalers.Lookup(0, "NOT_AN_EVENT"))
}

func TestEventTypesRoundTrip(t *testing.T) {
	// Each registered constructor must return an event whose methods agree
	// with its registry key.
	OpUnmarshalers.Each(func(op ws.OpCode, t2 ws.EventType, fn ws.OpFunc) bool {
		ev := fn()
		assert.Equal(t, op, ev.Op())
		assert.Equal(t, t2, ev.EventType())
		return false
	})
}

func TestRequestGuildMembersMarshal(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		b, err := json.Marshal(RequestGuildMembersCommand{
			GuildIDs: []discord.GuildID{1},
			UserIDs:  []discord.UserID{2, 3},
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"guild_id": ["1"], "user_ids": ["2", "3"], "limit": 0}`, string(b))
	})

	t.Run("all members", func(t *testing.T) {
		b, err := json.Marshal(RequestGuildMembersCommand{
			GuildIDs: []discord.GuildID{1},
			Query:    option.NewString(""),
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"guild_id": ["1"], "query": "", "limit": 0}`, string(b))
	})
}

func TestGuildCreateEventUnmarshal(t *testing.T) {
	body := []byte(`{
		"id": "41771983423143937",
		"name": "my guild",
		"member_count": 3,
		"large": true,
		"channels": [{"id": "41771983423143938", "type": 0, "name": "general"}],
		"members": [{"user": {"id": "123", "username": "someone"}}]
	}`)

	var ev GuildCreateEvent
	require.NoError(t, json.Unmarshal(body, &ev))

	assert.Equal(t, discord.GuildID(41771983423143937), ev.ID)
	assert.Equal(t, "my guild", ev.Name)
	assert.Equal(t, uint64(3), ev.MemberCount)
	require.Len(t, ev.Channels, 1)
	assert.Equal(t, "general", ev.Channels[0].Name)
	require.Len(t, ev.Members, 1)
	assert.Equal(t, discord.UserID(123), ev.Members[0].User.ID)
}

func TestIntents(t *testing.T) {
	i := IntentGuilds | IntentGuildMessages

	assert.True(t, i.Has(IntentGuilds))
	assert.False(t, i.Has(IntentGuildPresences))

	assert.Equal(t, IntentGuildMessages|IntentDirectMessages, EventIntents["MESSAGE_CREATE"])
}

func TestIdentifyCommandShard(t *testing.T) {
	var id IdentifyCommand
	id.SetShard(2, 4)

	require.NotNil(t, id.Shard)
	assert.Equal(t, 2, id.Shard.ShardID())
	assert.Equal(t, 4, id.Shard.NumShards())
}
