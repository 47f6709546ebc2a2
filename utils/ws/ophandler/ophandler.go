// Package ophandler pipes an Op channel into an event handler.
package ophandler

import (
	"context"

	"github.com/accordlib/accord/utils/handler"
	"github.com/accordlib/accord/utils/ws"
)

// Loop starts a background goroutine that reads from src and dispatches each
// event into the given handler. The returned channel is closed once src is
// closed.
func Loop(src <-chan ws.Op, dst *handler.Handler) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		for op := range src {
			dst.Call(op.Data)
		}
		close(done)
	}()
	return done
}

// WaitForDone waits until the done channel returned by Loop is closed or the
// context expires.
func WaitForDone(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
