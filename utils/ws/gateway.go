package ws

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/accordlib/accord/internal/lazytime"
	"github.com/accordlib/accord/utils/json"
)

// ConnectionError is emitted when the gateway fails to connect or reconnect.
// Check for it with errors.As.
type ConnectionError struct {
	Err error
}

// Unwrap returns err.Err.
func (err ConnectionError) Unwrap() error { return err.Err }

func (err ConnectionError) Error() string {
	return fmt.Sprintf("error reconnecting: %s", err.Err)
}

// BackgroundErrorEvent is a non-fatal error that the event loop stumbled upon
// while running. It is delivered through the regular event channel.
type BackgroundErrorEvent struct {
	Err error
}

var _ Event = (*BackgroundErrorEvent)(nil)

// Unwrap returns err.Err.
func (err *BackgroundErrorEvent) Unwrap() error { return err.Err }

func (err *BackgroundErrorEvent) Error() string {
	return "background gateway error: " + err.Err.Error()
}

// Op implements Event. It returns -1.
func (err *BackgroundErrorEvent) Op() OpCode { return -1 }

// EventType implements Event.
func (err *BackgroundErrorEvent) EventType() EventType {
	return "__ws.BackgroundErrorEvent"
}

// GatewayOpts controls the gateway event loop.
type GatewayOpts struct {
	// ReconnectDelay returns the duration to idle after the given failed try.
	// The default grows linearly from 4 seconds.
	ReconnectDelay func(try int) time.Duration

	// FatalCloseCodes lists close codes that cause the event loop to exit
	// instead of reconnecting.
	FatalCloseCodes []int

	// DialTimeout is the timeout for each websocket dial. 0 means no timeout.
	DialTimeout time.Duration

	// ReconnectAttempt is the maximum number of reconnect attempts before the
	// whole gateway is aborted. 0 means unlimited.
	ReconnectAttempt int

	// AlwaysCloseGracefully makes the gateway close with a close frame once
	// the context given to Connect is cancelled. Default is true.
	AlwaysCloseGracefully bool
}

// DefaultGatewayOpts is the default event loop configuration.
var DefaultGatewayOpts = GatewayOpts{
	ReconnectDelay: func(try int) time.Duration {
		// minimum 4 seconds
		return time.Duration(4+(2*try)) * time.Second
	},
	DialTimeout:           0,
	ReconnectAttempt:      0,
	AlwaysCloseGracefully: true,
}

// ErrorIsFatalClose reports whether err is a CloseEvent with a code listed in
// opts.FatalCloseCodes.
func (opts GatewayOpts) ErrorIsFatalClose(err error) bool {
	var closeErr *CloseEvent
	if !errors.As(err, &closeErr) {
		return false
	}

	for _, code := range opts.FatalCloseCodes {
		if code == closeErr.Code {
			return true
		}
	}

	return false
}

// Gateway is a concurrent event loop that maintains a websocket connection,
// reconnecting as needed. The protocol-specific behavior is injected through
// a Handler.
type Gateway struct {
	ws *Websocket

	reconnect chan struct{}
	heart     lazytime.Ticker
	srcOp     <-chan Op // from the websocket
	outer     outerState
	lastError error

	opts GatewayOpts
}

// outerState is the caller-facing state. It is mutex-guarded because the
// caller may touch it while the event loop is running; the loop itself only
// ever takes copies.
type outerState struct {
	sync.Mutex
	ch      chan Op
	started bool
}

// Handler governs the protocol behavior of a Gateway event loop.
type Handler interface {
	// OnOp is called on every received Op. If it returns false, the loop
	// fatally exits.
	OnOp(context.Context, Op) (canContinue bool)
	// SendHeartbeat is called whenever a heartbeat is due.
	SendHeartbeat(context.Context)
	// Close closes the handler.
	Close() error
}

// NewGateway creates a new Gateway over the given Websocket. If opts is nil,
// DefaultGatewayOpts is used.
func NewGateway(ws *Websocket, opts *GatewayOpts) *Gateway {
	if opts == nil {
		opts = &DefaultGatewayOpts
	}

	return &Gateway{
		ws:   ws,
		opts: *opts,
	}
}

// Opts returns a copy of the gateway options. Options cannot be changed after
// construction.
func (g *Gateway) Opts() *GatewayOpts {
	cpy := g.opts
	return &cpy
}

// Send marshals and sends an event payload to the gateway.
func (g *Gateway) Send(ctx context.Context, data Event) error {
	op := Op{
		Code: data.Op(),
		Type: data.EventType(),
		Data: data,
	}

	WSDebug("sending command op", op.Code, "type", op.Type)

	b, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	// The Websocket handles thread safety.
	return g.ws.Send(ctx, b)
}

// HasStarted returns true if the event loop is currently running.
func (g *Gateway) HasStarted() bool {
	g.outer.Lock()
	defer g.outer.Unlock()

	return g.outer.started
}

// AssertIsNotRunning panics if the gateway event loop is still running. It
// lets the caller read loop-owned state safely after shutdown.
func (g *Gateway) AssertIsNotRunning() {
	g.outer.Lock()
	defer g.outer.Unlock()

	if !g.outer.started {
		return
	}

	select {
	case _, ok := <-g.outer.ch:
		if !ok {
			return
		}
		// We stole an event from a live loop. There is no safe recovery.
		panic("ws: gateway state read while the event loop is running")
	default:
		panic("ws: gateway state read while the event loop is running")
	}
}

// Connect starts the background event loop that maintains the connection. The
// returned channel carries every received Op; it is closed once the loop
// exits. Calling Connect on an already started Gateway returns the same
// channel.
func (g *Gateway) Connect(ctx context.Context, h Handler) <-chan Op {
	g.outer.Lock()
	defer g.outer.Unlock()

	if !g.outer.started {
		g.outer.started = true
		g.outer.ch = make(chan Op, 1)
		go g.spin(ctx, h)
	}

	return g.outer.ch
}

// LastError returns the last error the gateway received. It must only be
// called after the event loop has stopped.
func (g *Gateway) LastError() error {
	g.AssertIsNotRunning()
	return g.lastError
}

// finalize closes the gateway permanently.
func (g *Gateway) finalize(h Handler) {
	var err error

	if g.opts.AlwaysCloseGracefully {
		err = g.ws.CloseGracefully()
	} else {
		err = g.ws.Close()
	}

	if err != nil {
		g.SendErrorWrap(err, "failed to finalize websocket")
	}

	if err := h.Close(); err != nil {
		g.SendError(err)
	}

	g.outer.Lock()
	close(g.outer.ch)
	g.outer.started = false
	g.outer.Unlock()
}

// QueueReconnect queues a reconnection. It must only be called from within
// the event loop, and at most once per received Op.
func (g *Gateway) QueueReconnect() {
	select {
	case g.reconnect <- struct{}{}:
	default:
	}

	g.heart.Stop()
}

// ResetHeartbeat resets the heartbeat interval to the given duration.
func (g *Gateway) ResetHeartbeat(d time.Duration) {
	g.heart.Reset(d)
}

// SendError wraps the error in a BackgroundErrorEvent and delivers it into
// the event channel.
func (g *Gateway) SendError(err error) {
	event := &BackgroundErrorEvent{err}

	g.outer.ch <- Op{
		Code: event.Op(),
		Type: event.EventType(),
		Data: event,
	}
	g.lastError = err
}

// SendErrorWrap is a convenience wrapper around SendError.
func (g *Gateway) SendErrorWrap(err error, message string) {
	g.SendError(fmt.Errorf("%s: %w", message, err))
}

func (g *Gateway) spin(ctx context.Context, h Handler) {
	defer g.finalize(h)

	var retryTimer lazytime.Timer
	defer retryTimer.Stop()

	g.reconnect = make(chan struct{}, 1)
	g.reconnect <- struct{}{}

	for {
		select {
		case <-ctx.Done():
			return

		case op, ok := <-g.srcOp:
			if !ok {
				// The websocket closed its channel. Wait for either a
				// reconnect or a cancellation.
				continue
			}

			if data, ok := op.Data.(*CloseEvent); ok && g.opts.ErrorIsFatalClose(data) {
				// Pipe the close event through unwrapped and bail.
				g.outer.ch <- op
				g.lastError = data
				return
			}

			ok = h.OnOp(ctx, op)
			g.outer.ch <- op
			if !ok {
				return
			}

			g.lastError = nil

		case <-g.heart.C:
			h.SendHeartbeat(ctx)

		case <-g.reconnect:
			// Close the previous connection if it's still up.
			if err := g.ws.Close(); err != nil && !errors.Is(err, ErrWebsocketClosed) {
				g.SendErrorWrap(err, "error closing before reconnecting")
			}

			g.srcOp = nil

			var err error

		retryLoop:
			for try := 0; g.opts.ReconnectAttempt == 0 || try < g.opts.ReconnectAttempt; try++ {
				g.srcOp, err = g.dial(ctx)
				if err == nil {
					break
				}

				select {
				case <-ctx.Done():
					err = ctx.Err()
					break retryLoop
				default:
				}

				g.SendError(ConnectionError{err})

				retryTimer.Reset(g.opts.ReconnectDelay(try))
				if err := retryTimer.Wait(ctx); err != nil {
					g.SendError(ConnectionError{ctx.Err()})
					return
				}
			}

			if g.srcOp == nil {
				err = fmt.Errorf("failed to reconnect after max attempts: %w", err)
				g.SendError(ConnectionError{err})
				return
			}
		}
	}
}

func (g *Gateway) dial(ctx context.Context) (<-chan Op, error) {
	if g.opts.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.DialTimeout)
		defer cancel()
	}

	return g.ws.Dial(ctx)
}
