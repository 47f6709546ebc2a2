package handler

import (
	"reflect"

	"github.com/pkg/errors"
)

// handler is a single registered callback or channel with its cached event
// type.
type handler struct {
	event    reflect.Type  // the accepted event type
	callback reflect.Value // func or channel
	chClose  reflect.Value // valid only for channel handlers
	isIface  bool
	sync     bool
}

// newHandler reflects the given function or channel into a handler. The
// original value is kept in the returned handler.
func newHandler(unknown interface{}) (*handler, error) {
	fnV := reflect.ValueOf(unknown)
	fnT := fnV.Type()

	entry := handler{callback: fnV}

	switch fnT.Kind() {
	case reflect.Func:
		if fnT.NumIn() != 1 {
			return nil, errors.New("function must accept exactly one argument")
		}
		if fnT.NumOut() > 0 {
			return nil, errors.New("function must not return anything")
		}

		entry.event = fnT.In(0)

	case reflect.Chan:
		entry.event = fnT.Elem()
		entry.chClose = reflect.ValueOf(make(chan struct{}))

	default:
		return nil, errors.New("handler is not a function or channel")
	}

	switch entry.event.Kind() {
	case reflect.Interface:
		entry.isIface = true
	case reflect.Ptr:
		// ok
	default:
		return nil, errors.New("event type is not a pointer or interface")
	}

	return &entry, nil
}

// wants reports whether the handler accepts the given event type.
func (h *handler) wants(event reflect.Type) bool {
	if h.isIface {
		return event.Implements(h.event)
	}
	return h.event == event
}

func (h *handler) call(ev reflect.Value) {
	if h.chClose.IsValid() {
		// Channel handler. Block until either the send goes through or the
		// handler is removed.
		reflect.Select([]reflect.SelectCase{
			{Dir: reflect.SelectSend, Chan: h.callback, Send: ev},
			{Dir: reflect.SelectRecv, Chan: h.chClose},
		})
	} else {
		h.callback.Call([]reflect.Value{ev})
	}
}

// cleanup releases any blocked channel sends. The event channel itself is
// never closed; it belongs to the caller.
func (h *handler) cleanup() {
	if h.chClose.IsValid() {
		h.chClose.Close()
	}
}
