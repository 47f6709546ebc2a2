// Package voicegateway provides a connection to the voice signaling gateway.
// It negotiates the session that a media transport would use, but does not
// carry any voice data itself.
package voicegateway

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/ws"
)

// Version is the voice gateway protocol version.
const Version = "4"

var (
	// ErrMissingForIdentify is returned when a connection is started without
	// enough state to identify.
	ErrMissingForIdentify = errors.New("missing GuildID, UserID, SessionID, or Token for identify")
	// ErrMissingForResume is returned when a connection is resumed without
	// enough state to resume.
	ErrMissingForResume = errors.New("missing GuildID, SessionID, or Token for resuming")
)

// CloseCodes are the voice gateway close codes that should not be reconnected
// from.
var CloseCodes = []int{
	4004, // authentication failed
	4006, // session no longer valid
	4009, // session timed out
	4014, // voice channel was deleted or the client was kicked
	4016, // unknown encryption mode
}

// State is the information needed to authorize with the voice gateway. It is
// assembled from the VoiceStateUpdate and VoiceServerUpdate events.
type State struct {
	GuildID   discord.GuildID
	ChannelID discord.ChannelID
	UserID    discord.UserID

	SessionID string
	Token     string
	Endpoint  string
}

// AddGatewayParams appends the version parameter onto a voice endpoint
// the way the voice server hands it out.
func AddGatewayParams(endpoint string) string {
	return "wss://" + strings.TrimSuffix(endpoint, ":80") + "/?v=" + Version
}

// Gateway describes a voice gateway connection. Its event loop is run by
// ws.Gateway; this type injects the signaling protocol.
type Gateway struct {
	gateway *ws.Gateway

	mutex     sync.Mutex
	state     State
	ready     ReadyEvent
	sessDesc  SessionDescriptionEvent
	resuming  bool
	beatNonce HeartbeatCommand
	sentBeat  time.Time
	echoBeat  time.Time
}

// New creates a new voice Gateway from the given state. The state must carry
// the endpoint received in a VoiceServerUpdate event.
func New(state State) *Gateway {
	opts := ws.DefaultGatewayOpts
	opts.FatalCloseCodes = CloseCodes

	return &Gateway{
		gateway: ws.NewGateway(
			ws.NewWebsocket(ws.NewCodec(OpUnmarshalers), AddGatewayParams(state.Endpoint)),
			&opts,
		),
		state: state,
	}
}

// State returns a copy of the gateway's connection state.
func (g *Gateway) State() State {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return g.state
}

// Ready returns the Ready event received after identifying. Its zero value
// is returned before the event arrives.
func (g *Gateway) Ready() ReadyEvent {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return g.ready
}

// SessionDescription returns the last received session description. Its zero
// value is returned before a protocol has been selected.
func (g *Gateway) SessionDescription() SessionDescriptionEvent {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return g.sessDesc
}

// Latency returns the duration between the last sent heartbeat and its
// acknowledgement, or 0 if no heartbeat has been acknowledged yet.
func (g *Gateway) Latency() time.Duration {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if g.echoBeat.IsZero() {
		return 0
	}

	return g.echoBeat.Sub(g.sentBeat)
}

// LastError returns the gateway's last error after its event loop has exited.
func (g *Gateway) LastError() error {
	return g.gateway.LastError()
}

// Send sends a command payload over the voice gateway.
func (g *Gateway) Send(ctx context.Context, data ws.Event) error {
	return g.gateway.Send(ctx, data)
}

// Speaking sends a speaking payload with the SSRC received in the Ready
// event. It must be sent before transmitting and after resuming.
func (g *Gateway) Speaking(ctx context.Context, flag SpeakingFlag) error {
	g.mutex.Lock()
	ssrc := g.ready.SSRC
	g.mutex.Unlock()

	return g.gateway.Send(ctx, &SpeakingEvent{
		Speaking: flag,
		Delay:    0,
		SSRC:     ssrc,
	})
}

// SelectProtocol tells the voice server where and how the media transport
// would receive data. The resulting session description is emitted as a
// SessionDescriptionEvent.
func (g *Gateway) SelectProtocol(ctx context.Context, data SelectProtocolCommand) error {
	return g.gateway.Send(ctx, &data)
}

// Connect starts the event loop and returns the event channel. The channel
// is closed once the loop exits, either from a fatal close code or from ctx
// being cancelled. Connecting an already connected Gateway returns the same
// channel.
func (g *Gateway) Connect(ctx context.Context) <-chan ws.Op {
	if err := g.validateState(); err != nil {
		// Surface state errors over the channel like any other dial error.
		ch := make(chan ws.Op, 1)
		ch <- ws.Op{
			Code: -1,
			Data: &ws.BackgroundErrorEvent{Err: err},
		}
		close(ch)
		return ch
	}

	return g.gateway.Connect(ctx, (*gatewayImpl)(g))
}

func (g *Gateway) validateState() error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if !g.state.GuildID.IsValid() ||
		!g.state.UserID.IsValid() ||
		g.state.SessionID == "" ||
		g.state.Token == "" {

		return ErrMissingForIdentify
	}

	return nil
}

// gatewayImpl implements ws.Handler with the voice signaling protocol.
type gatewayImpl Gateway

var _ ws.Handler = (*gatewayImpl)(nil)

func (g *gatewayImpl) OnOp(ctx context.Context, op ws.Op) bool {
	switch data := op.Data.(type) {
	case *HelloEvent:
		// The voice gateway wants the heartbeat at a slightly lower
		// interval than advertised.
		interval := time.Duration(float64(data.HeartbeatInterval.Duration()) * 0.8)
		g.gateway.ResetHeartbeat(interval)

		g.mutex.Lock()
		resuming := g.resuming
		g.resuming = false
		state := g.state
		g.mutex.Unlock()

		if resuming {
			g.sendResume(ctx, state)
		} else {
			g.sendIdentify(ctx, state)
		}

	case *ReadyEvent:
		g.mutex.Lock()
		g.ready = *data
		g.mutex.Unlock()

	case *SessionDescriptionEvent:
		g.mutex.Lock()
		g.sessDesc = *data
		g.mutex.Unlock()

	case *HeartbeatAckEvent:
		g.mutex.Lock()
		if HeartbeatCommand(*data) == g.beatNonce {
			g.echoBeat = time.Now()
		}
		g.mutex.Unlock()

	case *ws.CloseEvent:
		g.mutex.Lock()
		g.resuming = true
		g.mutex.Unlock()

		g.gateway.QueueReconnect()
	}

	return true
}

func (g *gatewayImpl) SendHeartbeat(ctx context.Context) {
	g.mutex.Lock()
	missed := !g.sentBeat.IsZero() && g.echoBeat.Before(g.sentBeat)
	g.beatNonce = HeartbeatCommand(time.Now().UnixNano())
	nonce := g.beatNonce
	g.sentBeat = time.Now()
	g.mutex.Unlock()

	if missed {
		g.gateway.SendErrorWrap(errors.New("no heartbeat ack"), "heartbeat timed out")
		g.gateway.QueueReconnect()
		return
	}

	if err := g.gateway.Send(ctx, &nonce); err != nil {
		g.gateway.SendErrorWrap(err, "heartbeat error")
		g.gateway.QueueReconnect()
	}
}

func (g *gatewayImpl) Close() error {
	return nil
}

func (g *gatewayImpl) sendIdentify(ctx context.Context, state State) {
	err := g.gateway.Send(ctx, &IdentifyCommand{
		GuildID:   state.GuildID,
		UserID:    state.UserID,
		SessionID: state.SessionID,
		Token:     state.Token,
	})
	if err != nil {
		g.gateway.SendErrorWrap(err, "failed to identify")
		g.gateway.QueueReconnect()
	}
}

func (g *gatewayImpl) sendResume(ctx context.Context, state State) {
	if !state.GuildID.IsValid() || state.SessionID == "" || state.Token == "" {
		g.gateway.SendError(ErrMissingForResume)
		return
	}

	err := g.gateway.Send(ctx, &ResumeCommand{
		GuildID:   state.GuildID,
		SessionID: state.SessionID,
		Token:     state.Token,
	})
	if err != nil {
		g.gateway.SendErrorWrap(err, "failed to resume")
		g.gateway.QueueReconnect()
	}
}
