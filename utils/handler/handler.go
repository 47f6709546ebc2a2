// Package handler handles incoming gateway events. It reflects a callback's
// first argument and uses the cached type to filter dispatched events.
//
// AddHandler accepts a function with a single pointer or interface argument,
// or a channel of such a type, similarly to Discordgo's AddHandler.
package handler

import (
	"context"
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

// Handler is a container for event callbacks and channels. A zero-value
// Handler is a valid Handler.
type Handler struct {
	// Synchronous makes Call dispatch handlers in the calling goroutine
	// instead of one goroutine per handler. Handlers that block will then
	// block the whole dispatch.
	Synchronous bool

	mutex sync.RWMutex
	slab  slab
}

// New constructs a new asynchronous Handler.
func New() *Handler {
	return &Handler{}
}

// Call dispatches the event to all handlers whose argument type matches.
func (h *Handler) Call(ev interface{}) {
	v := reflect.ValueOf(ev)
	t := v.Type()

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	h.slab.Each(func(entry *handler) bool {
		if entry.wants(t) {
			if h.Synchronous || entry.sync {
				entry.call(v)
			} else {
				go entry.call(v)
			}
		}
		return true
	})
}

// WaitFor blocks until the filter returns true on an event, then returns that
// event. It returns nil if the context expires first. The filter is called in
// the dispatch goroutine, so it must not block.
func (h *Handler) WaitFor(ctx context.Context, fn func(interface{}) bool) interface{} {
	result := make(chan interface{})

	rm := h.addHandler(func(v interface{}) {
		if !fn(v) {
			return
		}

		select {
		case result <- v:
		case <-ctx.Done():
		}
	}, true)
	defer rm()

	select {
	case r := <-result:
		return r
	case <-ctx.Done():
		return nil
	}
}

// ChanFor returns a channel that receives all events passing the filter until
// the context expires. Events are dropped if the channel's buffer is full.
// The filter must not block.
func (h *Handler) ChanFor(ctx context.Context, fn func(interface{}) bool) <-chan interface{} {
	result := make(chan interface{}, 1)

	rm := h.addHandler(func(v interface{}) {
		if !fn(v) {
			return
		}

		select {
		case result <- v:
		default:
		}
	}, true)

	// Remove the handler once the context expires.
	go func() {
		<-ctx.Done()
		rm()
	}()

	return result
}

// AddHandler adds a handler and returns a function to remove it. The handler
// must be either a function with a single pointer or interface argument, or a
// channel of such a type. AddHandler panics if the handler is invalid; use
// AddHandlerCheck to get an error instead.
func (h *Handler) AddHandler(handler interface{}) (rm func()) {
	rm, err := h.addHandlerCheck(handler, false)
	if err != nil {
		panic(err)
	}
	return rm
}

// AddSyncHandler is like AddHandler, but the handler is always called
// synchronously in the dispatch goroutine, even if Synchronous is false.
func (h *Handler) AddSyncHandler(handler interface{}) (rm func()) {
	rm, err := h.addHandlerCheck(handler, true)
	if err != nil {
		panic(err)
	}
	return rm
}

// AddHandlerCheck is AddHandler with an error return instead of a panic.
func (h *Handler) AddHandlerCheck(handler interface{}) (rm func(), err error) {
	return h.addHandlerCheck(handler, false)
}

func (h *Handler) addHandler(fn func(interface{}), sync bool) (rm func()) {
	return h.add(&handler{
		event:    reflect.TypeOf((*interface{})(nil)).Elem(),
		callback: reflect.ValueOf(fn),
		isIface:  true,
		sync:     sync,
	})
}

func (h *Handler) addHandlerCheck(unknown interface{}, sync bool) (rm func(), err error) {
	entry, err := newHandler(unknown)
	if err != nil {
		return nil, errors.Wrap(err, "invalid handler")
	}

	entry.sync = sync
	return h.add(entry), nil
}

func (h *Handler) add(entry *handler) (rm func()) {
	h.mutex.Lock()
	i := h.slab.Put(entry)
	h.mutex.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			h.mutex.Lock()
			popped := h.slab.Pop(i)
			h.mutex.Unlock()
			popped.cleanup()
		})
	}
}
