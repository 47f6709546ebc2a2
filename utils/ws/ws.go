// Package ws provides a managed websocket connection with send and dial rate
// limiting. It underpins both the event gateway and the voice signaling
// gateway.
package ws

import (
	"context"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

var wslog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().
	Timestamp().
	Str("component", "ws").
	Logger()

var (
	// WSError is called on background websocket errors. It can be reassigned
	// to route errors elsewhere.
	WSError = func(err error) { wslog.Error().Err(err).Msg("gateway error") }
	// WSDebug is used for verbose debug logging. It is a no-op unless
	// reassigned, for example to WSDebugLog.
	WSDebug = func(v ...interface{}) {}
)

// WSDebugLog writes the given values into the package logger at debug level.
// Assign it to WSDebug to trace the connection state.
func WSDebugLog(v ...interface{}) {
	wslog.Debug().Msgf("%v", v)
}

// Websocket wraps a Connection with thread safety and rate limiting for
// sending and dialing.
type Websocket struct {
	mutex sync.Mutex
	conn  Connection
	addr  string

	sendLimiter *rate.Limiter
	dialLimiter *rate.Limiter
}

// NewWebsocket creates a default Websocket with the given address.
func NewWebsocket(c Codec, addr string) *Websocket {
	return NewCustomWebsocket(NewConn(c), addr)
}

// NewCustomWebsocket creates a new undialed Websocket from a custom
// Connection.
func NewCustomWebsocket(conn Connection, addr string) *Websocket {
	return &Websocket{
		conn: conn,
		addr: addr,

		sendLimiter: NewSendLimiter(),
		dialLimiter: NewDialLimiter(),
	}
}

// Dial waits until the dial rate limiter allows then dials the websocket.
func (ws *Websocket) Dial(ctx context.Context) (<-chan Op, error) {
	if err := ws.dialLimiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to wait for dial rate limiter")
	}

	ws.mutex.Lock()
	defer ws.mutex.Unlock()

	// A fresh connection gets a fresh send quota.
	ws.sendLimiter = NewSendLimiter()

	return ws.conn.Dial(ctx, ws.addr)
}

// Send sends b over the websocket once the send rate limiter allows it.
func (ws *Websocket) Send(ctx context.Context, b []byte) error {
	ws.mutex.Lock()
	sendLimiter := ws.sendLimiter
	conn := ws.conn
	ws.mutex.Unlock()

	if err := sendLimiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "send rate limiter timed out")
	}

	return conn.Send(ctx, b)
}

// Close closes the websocket connection. The Websocket is considered closed
// even when an error is returned. If it was already closed before,
// ErrWebsocketClosed is returned.
func (ws *Websocket) Close() error {
	ws.mutex.Lock()
	defer ws.mutex.Unlock()

	return ws.conn.Close(false)
}

// CloseGracefully is similar to Close, except a proper close frame is sent
// first, invalidating the session so it cannot be resumed.
func (ws *Websocket) CloseGracefully() error {
	ws.mutex.Lock()
	defer ws.mutex.Unlock()

	return ws.conn.Close(true)
}
