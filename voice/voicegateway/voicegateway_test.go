package voicegateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/json"
	"github.com/accordlib/accord/utils/ws"
)

func TestAddGatewayParams(t *testing.T) {
	url := AddGatewayParams("smart.loyal.discord.gg:80")
	assert.Equal(t, "wss://smart.loyal.discord.gg/?v="+Version, url)

	url = AddGatewayParams("smart.loyal.discord.gg")
	assert.Equal(t, "wss://smart.loyal.discord.gg/?v="+Version, url)
}

func TestOpUnmarshalers(t *testing.T) {
	fn := OpUnmarshalers.Lookup(2, "")
	require.NotNil(t, fn)
	assert.IsType(t, &ReadyEvent{}, fn())

	fn = OpUnmarshalers.Lookup(8, "")
	require.NotNil(t, fn)
	assert.IsType(t, &HelloEvent{}, fn())

	assert.Nil(t, OpUnmarshalers.Lookup(99, ""))
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

func TestReadyEventUnmarshal(t *testing.T) {
	body := []byte(`{
		"ssrc": 1,
		"ip": "127.0.0.1",
		"port": 1234,
		"modes": ["xsalsa20_poly1305", "xsalsa20_poly1305_suffix"]
	}`)

	var ev ReadyEvent
	require.NoError(t, json.Unmarshal(body, &ev))

	assert.Equal(t, uint32(1), ev.SSRC)
	assert.Equal(t, "127.0.0.1:1234", ev.Addr())
	assert.Contains(t, ev.Modes, "xsalsa20_poly1305")
}

func TestIdentifyCommandMarshal(t *testing.T) {
	b, err := json.Marshal(IdentifyCommand{
		GuildID:   41771983423143937,
		UserID:    80351110224678912,
		SessionID: "my_session_id",
		Token:     "my_token",
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"server_id": "41771983423143937",
		"user_id": "80351110224678912",
		"session_id": "my_session_id",
		"token": "my_token"
	}`, string(b))
}

func TestGatewayState(t *testing.T) {
	g := New(State{
		GuildID:  41771983423143937,
		UserID:   80351110224678912,
		Endpoint: "smart.loyal.discord.gg:80",
	})

	assert.Equal(t, discord.GuildID(41771983423143937), g.State().GuildID)
	assert.Zero(t, g.Latency())
	assert.Zero(t, g.Ready().SSRC)
}
