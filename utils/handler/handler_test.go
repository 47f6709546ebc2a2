package handler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockEvent struct {
	content string
}

type otherEvent struct{}

func TestCall(t *testing.T) {
	h := New()
	h.Synchronous = true

	var got *mockEvent
	rm := h.AddHandler(func(ev *mockEvent) {
		got = ev
	})

	ev := &mockEvent{content: "hello"}
	h.Call(ev)
	require.NotNil(t, got)
	assert.Equal(t, "hello", got.content)

	// Mismatched types are skipped.
	got = nil
	h.Call(&otherEvent{})
	assert.Nil(t, got)

	// Removed handlers no longer fire.
	rm()
	h.Call(ev)
	assert.Nil(t, got)
}

func TestCallInterface(t *testing.T) {
	h := New()
	h.Synchronous = true

	var calls int
	h.AddHandler(func(ev interface{}) {
		calls++
	})

	h.Call(&mockEvent{})
	h.Call(&otherEvent{})
	assert.Equal(t, 2, calls)
}

func TestChannelHandler(t *testing.T) {
	h := New()

	ch := make(chan *mockEvent, 1)
	rm := h.AddHandler(ch)

	h.Call(&mockEvent{content: "ping"})

	select {
	case ev := <-ch:
		assert.Equal(t, "ping", ev.content)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel handler")
	}

	// Removal must release blocked sends even with a full buffer.
	ch <- &mockEvent{}
	h.Call(&mockEvent{})
	rm()
}

func TestAddHandlerCheck(t *testing.T) {
	h := New()

	_, err := h.AddHandlerCheck("not a function")
	assert.Error(t, err)

	_, err = h.AddHandlerCheck(func(a, b *mockEvent) {})
	assert.Error(t, err)

	_, err = h.AddHandlerCheck(func(ev mockEvent) {})
	assert.Error(t, err, "non-pointer argument must be rejected")

	_, err = h.AddHandlerCheck(func(ev *mockEvent) {})
	assert.NoError(t, err)
}

func TestWaitFor(t *testing.T) {
	h := New()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	go func() {
		h.Call(&mockEvent{content: "skip me"})
		h.Call(&mockEvent{content: "take me"})
	}()

	v := h.WaitFor(ctx, func(v interface{}) bool {
		ev, ok := v.(*mockEvent)
		return ok && ev.content == "take me"
	})

	ev, ok := v.(*mockEvent)
	require.True(t, ok, "WaitFor returned %T", v)
	assert.Equal(t, "take me", ev.content)
}

func TestWaitForCancel(t *testing.T) {
	h := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := h.WaitFor(ctx, func(interface{}) bool { return true })
	assert.Nil(t, v)
}

func TestChanFor(t *testing.T) {
	h := New()
	h.Synchronous = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := h.ChanFor(ctx, func(v interface{}) bool {
		_, ok := v.(*mockEvent)
		return ok
	})

	h.Call(&otherEvent{})
	h.Call(&mockEvent{content: "first"})

	select {
	case v := <-ch:
		assert.Equal(t, "first", v.(*mockEvent).content)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for ChanFor event")
	}
}
