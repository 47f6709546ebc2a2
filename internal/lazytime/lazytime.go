// Package lazytime provides timers and tickers that are allocated on first
// use, so the zero value can sit in a struct until it is needed.
package lazytime

import (
	"context"
	"time"
)

// Timer wraps a time.Timer that is allocated on the first Reset call. The
// zero value is ready to use.
type Timer struct {
	C <-chan time.Time

	t *time.Timer
}

// Reset arms the timer to fire after d, allocating it on first use. A pending
// tick from a previous arming is drained first.
func (t *Timer) Reset(d time.Duration) {
	if t.t == nil {
		t.t = time.NewTimer(d)
		t.C = t.t.C
		return
	}

	t.Stop()
	t.t.Reset(d)
}

// Stop disarms the timer and drains a pending tick. Calling Stop before the
// first Reset does nothing.
func (t *Timer) Stop() {
	if t.t == nil {
		return
	}

	if !t.t.Stop() {
		select {
		case <-t.t.C:
		default:
		}
	}
}

// Wait blocks until the timer fires or ctx is canceled.
func (t *Timer) Wait(ctx context.Context) error {
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ticker wraps a time.Ticker that is allocated on the first Reset call. The
// zero value is ready to use.
type Ticker struct {
	C <-chan time.Time

	t *time.Ticker
}

// Reset sets the tick interval to d, allocating the ticker on first use.
func (t *Ticker) Reset(d time.Duration) {
	if t.t == nil {
		t.t = time.NewTicker(d)
		t.C = t.t.C
		return
	}

	t.t.Reset(d)
}

// Stop pauses the ticker. Calling Stop before the first Reset does nothing.
func (t *Ticker) Stop() {
	if t.t != nil {
		t.t.Stop()
	}
}
