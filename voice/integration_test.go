//go:build integration

package voice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/accordlib/accord/internal/testenv"
	"github.com/accordlib/accord/session"
	"github.com/accordlib/accord/voice/voicegateway"
)

func TestJoinChannelIntegration(t *testing.T) {
	env := testenv.Must(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	s := session.New("Bot " + env.BotToken)
	require.NoError(t, s.Open(ctx), "failed to open session")
	defer s.Close()

	ch, err := s.Channel(env.VoiceChID)
	require.NoError(t, err, "failed to get voice channel")

	v := NewSession(s)
	require.NoError(t, v.JoinChannel(ctx, ch.GuildID, ch.ID, false, true))
	defer v.Leave(ctx)

	require.NoError(t, v.Speaking(ctx, voicegateway.Microphone))
	require.NoError(t, v.Speaking(ctx, voicegateway.NotSpeaking))
}
