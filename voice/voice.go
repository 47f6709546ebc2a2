// Package voice handles the signaling flow for joining voice channels: it
// updates the voice state over the main gateway, collects the voice server
// answer, and drives the voice signaling gateway. It does not open a media
// transport.
package voice

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/gateway"
	"github.com/accordlib/accord/internal/moreatomic"
	"github.com/accordlib/accord/utils/handler"
	"github.com/accordlib/accord/utils/ws"
	"github.com/accordlib/accord/utils/ws/ophandler"
	"github.com/accordlib/accord/voice/voicegateway"
)

// WSTimeout is the timeout for voice gateway operations called without a
// deadline on the context.
const WSTimeout = 25 * time.Second

// ErrAlreadyConnecting is returned when a join is started while another join
// on the same Session has not finished.
var ErrAlreadyConnecting = errors.New("already connecting to a voice channel")

// MainSession is the subset of session.Session that the voice session needs.
type MainSession interface {
	// AddHandler describes the method in handler.Handler.
	AddHandler(handler interface{}) (rm func())
	// Send sends a command over the main gateway.
	Send(ctx context.Context, data ws.Event) error
	// Me returns the current user.
	Me() (*discord.User, error)
}

// Session is a single voice channel membership. Voice gateway events are
// dispatched into its Handler.
type Session struct {
	// Handler dispatches events from the voice gateway, such as
	// voicegateway.SpeakingEvent. It must not be reset while the session is
	// joined.
	*handler.Handler

	ses MainSession

	mut       moreatomic.CtxMutex
	joining   moreatomic.Bool
	channelID moreatomic.Snowflake

	// All fields below are guarded by mut.
	gateway *voicegateway.Gateway
	cancel  context.CancelFunc
	doneCh  <-chan struct{}
}

// NewSession creates a new voice Session on top of the given main session.
func NewSession(ses MainSession) *Session {
	return &Session{
		Handler: handler.New(),
		ses:     ses,
	}
}

// ChannelID returns the voice channel that the session is currently in, or 0
// if the session has left.
func (s *Session) ChannelID() discord.ChannelID {
	return discord.ChannelID(s.channelID.Get())
}

// JoinChannel joins the given voice channel. It sends the voice state update
// over the main gateway, waits for the server answer, then connects the voice
// signaling gateway and waits for it to become ready.
func (s *Session) JoinChannel(
	ctx context.Context,
	guildID discord.GuildID, chID discord.ChannelID, mute, deaf bool) error {

	if !s.joining.Acquire() {
		return ErrAlreadyConnecting
	}
	defer s.joining.Set(false)

	if err := s.mut.Lock(ctx); err != nil {
		return err
	}
	defer s.mut.Unlock()

	me, err := s.ses.Me()
	if err != nil {
		return errors.Wrap(err, "failed to get the current user")
	}

	// Register before sending so the answer cannot slip past.
	stateCh := make(chan *gateway.VoiceStateUpdateEvent, 4)
	rmState := s.ses.AddHandler(stateCh)
	defer rmState()

	serverCh := make(chan *gateway.VoiceServerUpdateEvent, 4)
	rmServer := s.ses.AddHandler(serverCh)
	defer rmServer()

	err = s.ses.Send(ctx, &gateway.UpdateVoiceStateCommand{
		GuildID:   guildID,
		ChannelID: chID,
		SelfMute:  mute,
		SelfDeaf:  deaf,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send voice state update")
	}

	vgState := voicegateway.State{
		GuildID:   guildID,
		ChannelID: chID,
		UserID:    me.ID,
	}

	var gotState, gotServer bool
	for !gotState || !gotServer {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-stateCh:
			if ev.GuildID != guildID || ev.UserID != me.ID {
				continue
			}
			vgState.SessionID = ev.SessionID
			gotState = true

		case ev := <-serverCh:
			if ev.GuildID != guildID {
				continue
			}
			vgState.Token = ev.Token
			vgState.Endpoint = ev.Endpoint
			gotServer = true
		}
	}

	if err := s.connectLocked(ctx, vgState); err != nil {
		return err
	}

	s.channelID.Set(discord.Snowflake(chID))
	return nil
}

func (s *Session) connectLocked(ctx context.Context, state voicegateway.State) error {
	s.disconnectLocked()

	readyCh := make(chan *voicegateway.ReadyEvent, 1)
	rmReady := s.AddHandler(readyCh)
	defer rmReady()

	connectCtx, cancel := context.WithCancel(context.Background())

	g := voicegateway.New(state)
	ops := g.Connect(connectCtx)
	done := ophandler.Loop(ops, s.Handler)

	select {
	case <-ctx.Done():
		cancel()
		return ctx.Err()

	case <-done:
		cancel()
		if err := g.LastError(); err != nil {
			return errors.Wrap(err, "voice gateway error")
		}
		return errors.New("voice gateway closed before ready")

	case <-readyCh:
	}

	s.gateway = g
	s.cancel = cancel
	s.doneCh = done
	return nil
}

// Speaking sends a speaking indication over the voice gateway. It must be
// called after joining.
func (s *Session) Speaking(ctx context.Context, flag voicegateway.SpeakingFlag) error {
	if err := s.mut.Lock(ctx); err != nil {
		return err
	}
	g := s.gateway
	s.mut.Unlock()

	if g == nil {
		return errors.New("not in a voice channel")
	}

	return g.Speaking(ctx, flag)
}

// Leave disconnects from the voice channel and stops the voice gateway.
func (s *Session) Leave(ctx context.Context) error {
	if err := s.mut.Lock(ctx); err != nil {
		return err
	}
	defer s.mut.Unlock()

	guildID := discord.GuildID(0)
	if s.gateway != nil {
		guildID = s.gateway.State().GuildID
	}

	s.disconnectLocked()
	s.channelID.Set(0)

	if !guildID.IsValid() {
		return nil
	}

	err := s.ses.Send(ctx, &gateway.UpdateVoiceStateCommand{
		GuildID:   guildID,
		ChannelID: discord.NullChannelID,
	})
	return errors.Wrap(err, "failed to clear voice state")
}

func (s *Session) disconnectLocked() {
	if s.cancel == nil {
		return
	}

	s.cancel()
	<-s.doneCh

	s.gateway = nil
	s.cancel = nil
	s.doneCh = nil
}
