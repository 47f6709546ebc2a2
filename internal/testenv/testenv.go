// Package testenv resolves the environment variables used by integration
// tests.
package testenv

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/accordlib/accord/discord"
)

// PerseveranceTime is the duration that long-running integration tests are
// expected to stay alive for.
const PerseveranceTime = 50 * time.Minute

// Env holds the environment variables required by integration tests.
type Env struct {
	BotToken  string
	ChannelID discord.ChannelID
	VoiceChID discord.ChannelID
}

var (
	globalEnv Env
	globalErr error
	once      sync.Once
)

// Must returns the integration test environment, skipping the test if any of
// the variables are missing.
func Must(t *testing.T) Env {
	e, err := GetEnv()
	if err != nil {
		t.Skip("integration test variables missing:", err)
	}
	return e
}

// GetEnv returns the integration test environment. A .env file in the
// working directory is loaded first, if present.
func GetEnv() (Env, error) {
	once.Do(getEnv)
	return globalEnv, globalErr
}

func getEnv() {
	// Missing .env is fine, the variables may be exported directly.
	godotenv.Load()

	var token = os.Getenv("BOT_TOKEN")
	if token == "" {
		globalErr = errors.New("missing $BOT_TOKEN")
		return
	}

	cid, err := parseChannelID(os.Getenv("CHANNEL_ID"))
	if err != nil {
		globalErr = errors.Wrap(err, "invalid $CHANNEL_ID")
		return
	}

	vid, err := parseChannelID(os.Getenv("VOICE_ID"))
	if err != nil {
		globalErr = errors.Wrap(err, "invalid $VOICE_ID")
		return
	}

	globalEnv = Env{
		BotToken:  token,
		ChannelID: cid,
		VoiceChID: vid,
	}
}

func parseChannelID(env string) (discord.ChannelID, error) {
	if env == "" {
		return 0, errors.New("missing variable")
	}

	id, err := discord.ParseSnowflake(env)
	if err != nil {
		return 0, err
	}

	return discord.ChannelID(id), nil
}
