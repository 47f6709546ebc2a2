//go:build integration

package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/accordlib/accord/internal/testenv"
	"github.com/accordlib/accord/utils/ws"
)

func TestConnectIntegration(t *testing.T) {
	env := testenv.Must(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	g, err := New(ctx, "Bot "+env.BotToken)
	require.NoError(t, err, "failed to create gateway")

	connectCtx, stop := context.WithCancel(ctx)
	defer stop()

	ch := g.Connect(connectCtx)

	for op := range ch {
		switch data := op.Data.(type) {
		case *ReadyEvent:
			t.Log("logged in as", data.User.Username)
			stop()
		case *ws.BackgroundErrorEvent:
			t.Error("background error:", data.Err)
		}
	}

	require.NoError(t, g.LastError())
}
