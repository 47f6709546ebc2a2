package ws

import (
	"compress/zlib"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const rwBufferSize = 1 << 15 // 32KB

// ErrWebsocketClosed is returned if the websocket is already closed.
var ErrWebsocketClosed = errors.New("websocket is closed")

// Connection abstracts a websocket driver. Implementations handle transport
// compression themselves and do not need to be safe for concurrent use.
type Connection interface {
	// Dial dials the given address. The context is used for the timeout. The
	// Connection must be dialable again after Close is called.
	Dial(context.Context, string) (<-chan Op, error)

	// Send sends raw bytes over the connection.
	Send(context.Context, []byte) error

	// Close closes the connection. The Connection must still be reusable even
	// if Close returns an error. If gracefully is true, a close frame is sent
	// first.
	Close(gracefully bool) error
}

// Conn is the default gorilla/websocket-backed Connection. Binary frames are
// assumed to be zlib-compressed payloads.
type Conn struct {
	dialer websocket.Dialer
	codec  Codec

	// conn is copied out under mut before use.
	conn *connMutex
	mut  sync.Mutex

	// CloseTimeout is the timeout for graceful closing. Defaults to 5s.
	CloseTimeout time.Duration
}

type connMutex struct {
	*websocket.Conn
	wrmut  chan struct{}
	cancel context.CancelFunc
}

var _ Connection = (*Conn)(nil)

// NewConn creates a new websocket connection with a default dialer.
func NewConn(codec Codec) *Conn {
	return NewConnWithDialer(codec, websocket.Dialer{
		Proxy:             http.ProxyFromEnvironment,
		HandshakeTimeout:  10 * time.Second,
		ReadBufferSize:    rwBufferSize,
		WriteBufferSize:   rwBufferSize,
		EnableCompression: true,
	})
}

// NewConnWithDialer creates a new websocket connection with a custom dialer.
func NewConnWithDialer(codec Codec, dialer websocket.Dialer) *Conn {
	return &Conn{
		dialer:       dialer,
		codec:        codec,
		CloseTimeout: 5 * time.Second,
	}
}

// Dial starts a new connection and returns its event channel. If the
// connection is already dialed, it is closed first.
func (c *Conn) Dial(ctx context.Context, addr string) (<-chan Op, error) {
	c.mut.Lock()
	defer c.mut.Unlock()

	if c.conn != nil {
		c.conn.close(c.CloseTimeout, false)
	}

	conn, _, err := c.dialer.DialContext(ctx, addr, c.codec.Headers)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial websocket")
	}

	ctx, cancel := context.WithCancel(context.Background())

	events := make(chan Op, 1)
	go readLoop(ctx, conn, c.codec, events)

	c.conn = &connMutex{
		wrmut:  make(chan struct{}, 1),
		Conn:   conn,
		cancel: cancel,
	}

	return events, nil
}

// Close implements Connection.
func (c *Conn) Close(gracefully bool) error {
	c.mut.Lock()
	defer c.mut.Unlock()

	return c.conn.close(c.CloseTimeout, gracefully)
}

func (c *connMutex) close(timeout time.Duration, gracefully bool) error {
	if c == nil || c.Conn == nil {
		WSDebug("close called on already closed connection")
		return ErrWebsocketClosed
	}

	if gracefully {
		deadline := time.Now().Add(timeout)

		ctx, cancel := context.WithDeadline(context.Background(), deadline)
		defer cancel()

		select {
		case c.wrmut <- struct{}{}:
			c.SetWriteDeadline(deadline)

			WSDebug("sending close frame before closing")

			if err := c.WriteMessage(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			); err != nil {
				WSError(err)
			}

			<-c.wrmut

		case <-ctx.Done():
			// Couldn't acquire the write lock in time. Close the connection
			// without a close frame.
		}
	}

	err := c.Conn.Close()
	c.Conn = nil

	c.cancel()
	c.cancel = nil

	return err
}

// resetDeadline resets the write deadline after a context deadline was used.
var resetDeadline = time.Time{}

// Send implements Connection.
func (c *Conn) Send(ctx context.Context, b []byte) error {
	c.mut.Lock()
	conn := c.conn
	c.mut.Unlock()

	if conn == nil || conn.Conn == nil {
		return ErrWebsocketClosed
	}

	select {
	case conn.wrmut <- struct{}{}:
		defer func() { <-conn.wrmut }()

		if d, ok := ctx.Deadline(); ok {
			conn.SetWriteDeadline(d)
			defer conn.SetWriteDeadline(resetDeadline)
		}

		return conn.WriteMessage(websocket.TextMessage, b)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// loopState is the read loop's private state. It is deliberately detached
// from any synchronization that doesn't involve the connection itself.
type loopState struct {
	conn  *websocket.Conn
	codec Codec
	zlib  io.ReadCloser
	buf   DecodeBuffer
}

func readLoop(ctx context.Context, conn *websocket.Conn, codec Codec, opCh chan<- Op) {
	defer close(opCh)

	state := loopState{
		conn:  conn,
		codec: codec,
		buf:   NewDecodeBuffer(1 << 14), // 16KB
	}

	for {
		if err := state.handle(ctx, opCh); err != nil {
			WSDebug("fatal connection error:", err)

			closeEv := &CloseEvent{
				Err:  err,
				Code: -1,
			}

			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				closeEv.Code = closeErr.Code
				closeEv.Err = fmt.Errorf("%d %s", closeErr.Code, closeErr.Text)
			}

			opCh <- Op{
				Code: closeEv.Op(),
				Type: closeEv.EventType(),
				Data: closeEv,
			}

			return
		}
	}
}

func (state *loopState) handle(ctx context.Context, opCh chan<- Op) error {
	t, r, err := state.conn.NextReader()
	if err != nil {
		return err
	}

	if t == websocket.BinaryMessage {
		// Binary frames are zlib-compressed payloads.
		if state.zlib == nil {
			z, err := zlib.NewReader(r)
			if err != nil {
				return errors.Wrap(err, "failed to create a zlib reader")
			}
			state.zlib = z
		} else {
			if err := state.zlib.(zlib.Resetter).Reset(r, nil); err != nil {
				return errors.Wrap(err, "failed to reset zlib reader")
			}
		}

		defer state.zlib.Close()
		r = state.zlib
	}

	if err := state.codec.DecodeInto(ctx, r, &state.buf, opCh); err != nil {
		return errors.Wrap(err, "error distributing event")
	}

	return nil
}
