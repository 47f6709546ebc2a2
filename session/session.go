// Package session glues the REST client and the gateway together, exposing
// both behind a single type with a reflect-based event handler.
package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/accordlib/accord/api"
	"github.com/accordlib/accord/gateway"
	"github.com/accordlib/accord/utils/handler"
	"github.com/accordlib/accord/utils/ws"
	"github.com/accordlib/accord/utils/ws/ophandler"
)

// ErrClosed is returned by Session methods that need an open gateway when the
// Session has not been opened or has already been closed.
var ErrClosed = errors.New("session is closed")

// Session manages both the API client and the gateway. It inherits the API
// client's methods and dispatches gateway events through its Handler.
//
//	s := session.New("Bot " + token)
//	s.AddHandler(func(m *gateway.MessageCreateEvent) {
//		log.Println(m.Author.Username, "said", m.Content)
//	})
type Session struct {
	*api.Client
	*handler.Handler

	id gateway.Identifier

	mutex   sync.Mutex
	gateway *gateway.Gateway
	cancel  context.CancelFunc
	doneCh  <-chan struct{}
}

// New creates a new Session with the given token. The token is used as-is for
// the Authorization header, so bot tokens must carry the "Bot " prefix.
func New(token string) *Session {
	return NewWithIdentifier(gateway.DefaultIdentifier(token))
}

// NewWithIntents is New but also adds the given intents into the identify
// payload.
func NewWithIntents(token string, intents ...gateway.Intents) *Session {
	id := gateway.DefaultIdentifier(token)
	for _, intent := range intents {
		id.Intents |= intent
	}

	return NewWithIdentifier(id)
}

// NewWithIdentifier creates a new Session from an existing identifier.
func NewWithIdentifier(id gateway.Identifier) *Session {
	return &Session{
		Client:  api.NewClient(id.Token),
		Handler: handler.New(),
		id:      id,
	}
}

// NewWithGateway creates a new Session that connects over an already
// constructed gateway.
func NewWithGateway(g *gateway.Gateway, h *handler.Handler) *Session {
	state := g.State()

	return &Session{
		Client:  api.NewClient(state.Identifier.Token),
		Handler: h,
		id:      state.Identifier,
		gateway: g,
	}
}

// GatewayIsAlive returns true if the gateway is currently connected.
func (s *Session) GatewayIsAlive() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.cancel != nil
}

// Gateway returns the current gateway, or nil if the Session has never been
// opened.
func (s *Session) Gateway() *gateway.Gateway {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.gateway
}

// Send sends a command over the gateway.
func (s *Session) Send(ctx context.Context, data ws.Event) error {
	s.mutex.Lock()
	g := s.gateway
	s.mutex.Unlock()

	if g == nil {
		return ErrClosed
	}

	return g.Send(ctx, data)
}

// Connect opens the gateway and blocks until the connection is closed, either
// fatally or by cancelling ctx.
func (s *Session) Connect(ctx context.Context) error {
	if err := s.Open(ctx); err != nil {
		return err
	}

	return s.Wait(ctx)
}

// Open connects the gateway and waits for the Ready event before returning.
// The connection stays alive in the background until Close is called, even
// after ctx expires.
func (s *Session) Open(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.cancel != nil {
		return errors.New("session is already open")
	}

	if s.gateway == nil {
		g, err := gateway.NewWithIdentifier(ctx, s.id)
		if err != nil {
			return errors.Wrap(err, "failed to create gateway")
		}
		s.gateway = g
	}

	// Register before connecting so the first Ready cannot slip past.
	readyCh := make(chan *gateway.ReadyEvent, 1)
	rmReady := s.AddSyncHandler(readyCh)
	defer rmReady()

	errCh := make(chan *ws.BackgroundErrorEvent, 4)
	rmErr := s.AddSyncHandler(errCh)
	defer rmErr()

	connectCtx, cancel := context.WithCancel(context.Background())

	ops := s.gateway.Connect(connectCtx)
	done := ophandler.Loop(ops, s.Handler)

	s.cancel = cancel
	s.doneCh = done

	for {
		select {
		case <-ctx.Done():
			cancel()
			s.cancel = nil
			return ctx.Err()

		case <-done:
			s.cancel = nil
			if err := s.gateway.LastError(); err != nil {
				return err
			}
			return errors.New("gateway closed before Ready")

		case err := <-errCh:
			// Background errors before the first Ready usually mean the
			// token or the identify payload is rejected.
			if s.gateway.State().SessionID == "" {
				cancel()
				s.cancel = nil
				return errors.Wrap(err.Err, "failed to open gateway")
			}

		case <-readyCh:
			return nil
		}
	}
}

// Wait blocks until the gateway event loop exits or ctx expires. It returns
// the gateway's last error, if any.
func (s *Session) Wait(ctx context.Context) error {
	s.mutex.Lock()
	done := s.doneCh
	g := s.gateway
	s.mutex.Unlock()

	if done == nil {
		return ErrClosed
	}

	if err := ophandler.WaitForDone(ctx, done); err != nil {
		return err
	}

	return g.LastError()
}

// Close stops the gateway connection and waits for the event loop to finish
// delivering pending events.
func (s *Session) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.cancel == nil {
		return nil
	}

	s.cancel()
	s.cancel = nil

	<-s.doneCh
	s.doneCh = nil

	if err := s.gateway.LastError(); err != nil {
		var closeEv *ws.CloseEvent
		if errors.As(err, &closeEv) {
			// A close initiated by us is not an error.
			return nil
		}
		return err
	}

	return nil
}
