package lazytime

import (
	"context"
	"testing"
	"time"
)

func TestTimer(t *testing.T) {
	var timer Timer
	// Stop on the zero value must not panic.
	timer.Stop()

	timer.Reset(time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := timer.Wait(ctx); err != nil {
		t.Fatal("timer did not fire:", err)
	}

	timer.Reset(time.Hour)
	timer.Stop()

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	if err := timer.Wait(canceled); err == nil {
		t.Fatal("expected context error from stopped timer")
	}
}

func TestTicker(t *testing.T) {
	var ticker Ticker
	ticker.Stop()

	ticker.Reset(time.Millisecond)
	defer ticker.Stop()

	select {
	case <-ticker.C:
		// ok
	case <-time.After(time.Second):
		t.Fatal("ticker did not tick")
	}

	ticker.Reset(time.Millisecond)

	select {
	case <-ticker.C:
		// ok
	case <-time.After(time.Second):
		t.Fatal("ticker did not tick after Reset")
	}
}
