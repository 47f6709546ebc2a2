// Package gateway provides a connection to the event gateway over a managed
// websocket. It handles identifying, heartbeating and the command payloads,
// and emits every received event over a single channel.
//
// This package does not dispatch events to callbacks; that is the job of the
// session package.
package gateway

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/accordlib/accord/api"
	"github.com/accordlib/accord/discord"
	"github.com/accordlib/accord/utils/httputil"
	"github.com/accordlib/accord/utils/ws"
)

// Version is the gateway protocol version.
var Version = api.Version

// dispatchOp is the op code carrying dispatch events.
const dispatchOp ws.OpCode = 0

// Encoding is the payload encoding asked of the gateway.
var Encoding = "json"

// CloseCodes are the gateway close codes that should not be reconnected from.
// A bot that hits one of these has a configuration problem.
var CloseCodes = []int{
	4004, // authentication failed
	4010, // invalid shard
	4011, // sharding required
	4012, // invalid API version
	4013, // invalid intents
	4014, // disallowed intents
}

// BotData contains the gateway URL along with sharding metadata.
type BotData struct {
	URL        string             `json:"url"`
	Shards     int                `json:"shards,omitempty"`
	StartLimit *SessionStartLimit `json:"session_start_limit"`
}

// SessionStartLimit describes the current session start quota.
type SessionStartLimit struct {
	Total          int                  `json:"total"`
	Remaining      int                  `json:"remaining"`
	ResetAfter     discord.Milliseconds `json:"reset_after"`
	MaxConcurrency int                  `json:"max_concurrency"`
}

// URL asks the API for the websocket URL to the gateway.
func URL(ctx context.Context) (string, error) {
	var g BotData

	c := httputil.NewClient()
	err := c.WithContext(ctx).RequestJSON(&g, "GET", api.EndpointGateway)
	return g.URL, err
}

// BotURL fetches the gateway URL along with sharding metadata. The token is
// used as-is, without a "Bot" prefix.
func BotURL(ctx context.Context, token string) (*BotData, error) {
	var g *BotData

	c := httputil.NewClient()
	err := c.WithContext(ctx).RequestJSON(
		&g, "GET",
		api.EndpointGatewayBot,
		httputil.WithHeaders(http.Header{
			"Authorization": {token},
		}),
	)
	return g, err
}

// AddGatewayParams appends the version and encoding parameters onto a plain
// gateway URL.
func AddGatewayParams(baseURL string) string {
	param := url.Values{
		"v":        {Version},
		"encoding": {Encoding},
	}

	return baseURL + "?" + param.Encode()
}

// State is the gateway's connection state. It is used to resume the session
// after a disconnection.
type State struct {
	Identifier
	SessionID string
	Sequence  int64
}

// Gateway describes an event gateway connection. Its event loop is run by
// ws.Gateway; this type injects the protocol behavior.
type Gateway struct {
	gateway *ws.Gateway

	mutex    sync.Mutex
	state    State
	sentBeat time.Time
	echoBeat time.Time
}

// New fetches the gateway URL and creates a new Gateway with the given token.
func New(ctx context.Context, token string) (*Gateway, error) {
	return NewWithIdentifier(ctx, DefaultIdentifier(token))
}

// NewWithIntents is New but adds the given intents into the identify payload.
func NewWithIntents(ctx context.Context, token string, intents ...Intents) (*Gateway, error) {
	id := DefaultIdentifier(token)
	for _, intent := range intents {
		id.Intents |= intent
	}

	return NewWithIdentifier(ctx, id)
}

// NewWithIdentifier fetches the gateway URL and creates a new Gateway with the
// given identifier.
func NewWithIdentifier(ctx context.Context, id Identifier) (*Gateway, error) {
	gatewayURL, err := URL(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get gateway endpoint")
	}

	return NewCustom(AddGatewayParams(gatewayURL), id), nil
}

// NewCustom creates a new Gateway with a custom gateway URL. The URL should
// already carry the version and encoding parameters.
func NewCustom(gatewayURL string, id Identifier) *Gateway {
	opts := ws.DefaultGatewayOpts
	opts.FatalCloseCodes = CloseCodes

	return &Gateway{
		gateway: ws.NewGateway(
			ws.NewWebsocket(ws.NewCodec(OpUnmarshalers), gatewayURL),
			&opts,
		),
		state: State{Identifier: id},
	}
}

// State returns a copy of the gateway's connection state.
func (g *Gateway) State() State {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return g.state
}

// SetState overrides the gateway's connection state. It is only safe to call
// before Connect.
func (g *Gateway) SetState(state State) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.state = state
}

// AddIntents adds the given intents into the identify payload. It is only
// safe to call before Connect.
func (g *Gateway) AddIntents(i Intents) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.state.Intents |= i
}

// HasIntents reports whether the gateway will identify with the given intents.
func (g *Gateway) HasIntents(intents Intents) bool {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return g.state.Intents.Has(intents)
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

// Send sends a command payload over the gateway.
func (g *Gateway) Send(ctx context.Context, data ws.Event) error {
	return g.gateway.Send(ctx, data)
}

// Connect starts the event loop and returns the event channel. The channel is
// closed once the loop exits, either from a fatal close code or from ctx
// being cancelled. Connecting an already connected Gateway returns the same
// channel.
func (g *Gateway) Connect(ctx context.Context) <-chan ws.Op {
	return g.gateway.Connect(ctx, (*gatewayImpl)(g))
}

// gatewayImpl implements ws.Handler with the gateway protocol.
type gatewayImpl Gateway

var _ ws.Handler = (*gatewayImpl)(nil)

func (g *gatewayImpl) OnOp(ctx context.Context, op ws.Op) bool {
	if op.Code == dispatchOp {
		g.mutex.Lock()
		if op.Sequence > g.state.Sequence {
			g.state.Sequence = op.Sequence
		}
		g.mutex.Unlock()
	}

	switch data := op.Data.(type) {
	case *HelloEvent:
		g.gateway.ResetHeartbeat(data.HeartbeatInterval.Duration())

		state := (*Gateway)(g).State()
		if state.SessionID != "" && state.Sequence > 0 {
			g.sendResume(ctx, state)
		} else {
			g.sendIdentify(ctx, state)
		}

	case *ReadyEvent:
		g.mutex.Lock()
		g.state.SessionID = data.SessionID
		g.mutex.Unlock()

	case *InvalidSessionEvent:
		if !bool(*data) {
			g.mutex.Lock()
			g.state.SessionID = ""
			g.state.Sequence = 0
			g.mutex.Unlock()
		}
		g.gateway.QueueReconnect()

	case *ReconnectEvent:
		g.gateway.QueueReconnect()

	case *HeartbeatCommand:
		// The server is requesting an immediate heartbeat.
		g.SendHeartbeat(ctx)

	case *HeartbeatAckEvent:
		g.mutex.Lock()
		g.echoBeat = time.Now()
		g.mutex.Unlock()

	case *ws.CloseEvent:
		g.gateway.QueueReconnect()
	}

	return true
}

func (g *gatewayImpl) SendHeartbeat(ctx context.Context) {
	g.mutex.Lock()
	missed := !g.sentBeat.IsZero() && g.echoBeat.Before(g.sentBeat)
	sequence := g.state.Sequence
	g.sentBeat = time.Now()
	g.mutex.Unlock()

	if missed {
		g.gateway.SendErrorWrap(errors.New("no heartbeat ack"), "heartbeat timed out")
		g.gateway.QueueReconnect()
		return
	}

	heartbeat := HeartbeatCommand(sequence)
	if err := g.gateway.Send(ctx, &heartbeat); err != nil {
		g.gateway.SendErrorWrap(err, "heartbeat error")
		g.gateway.QueueReconnect()
	}
}

func (g *gatewayImpl) Close() error {
	return nil
}

func (g *gatewayImpl) sendIdentify(ctx context.Context, state State) {
	if err := state.Identifier.Wait(ctx); err != nil {
		g.gateway.SendErrorWrap(err, "can't wait for identify rate limiters")
		g.gateway.QueueReconnect()
		return
	}

	if err := g.gateway.Send(ctx, &state.Identifier.IdentifyCommand); err != nil {
		g.gateway.SendErrorWrap(err, "failed to identify")
		g.gateway.QueueReconnect()
	}
}

func (g *gatewayImpl) sendResume(ctx context.Context, state State) {
	err := g.gateway.Send(ctx, &ResumeCommand{
		Token:     state.Token,
		SessionID: state.SessionID,
		Sequence:  state.Sequence,
	})
	if err != nil {
		g.gateway.SendErrorWrap(err, "failed to resume")
		g.gateway.QueueReconnect()
	}
}
