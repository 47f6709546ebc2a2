package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accordlib/accord/gateway"
)

func TestNew(t *testing.T) {
	s := New("Bot token")

	assert.Equal(t, "Bot token", s.id.Token)
	assert.NotNil(t, s.Client)
	assert.NotNil(t, s.Handler)
	assert.Nil(t, s.Gateway())
	assert.False(t, s.GatewayIsAlive())
}

func TestNewWithIntents(t *testing.T) {
	s := NewWithIntents("Bot token", gateway.IntentGuilds, gateway.IntentGuildMessages)

	assert.True(t, s.id.Intents.Has(gateway.IntentGuilds))
	assert.True(t, s.id.Intents.Has(gateway.IntentGuildMessages))
	assert.False(t, s.id.Intents.Has(gateway.IntentGuildPresences))
}

func TestClosedSession(t *testing.T) {
	s := New("Bot token")
	ctx := context.Background()

	err := s.Send(ctx, &gateway.UpdatePresenceCommand{})
	require.ErrorIs(t, err, ErrClosed)

	err = s.Wait(ctx)
	require.ErrorIs(t, err, ErrClosed)

	// Closing a session that was never opened is a no-op.
	require.NoError(t, s.Close())
}
