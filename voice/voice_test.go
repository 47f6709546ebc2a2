package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/accordlib/accord/session"
)

var _ MainSession = (*session.Session)(nil)

func TestNewSession(t *testing.T) {
	s := NewSession(session.New("Bot token"))

	assert.NotNil(t, s.Handler)
	assert.False(t, s.ChannelID().IsValid())
}
