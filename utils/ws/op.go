package ws

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/accordlib/accord/utils/json"
)

// OpCode is the type for websocket operation codes. Codes below 0 are
// synthesized locally and never go over the wire.
type OpCode int

// EventType is the type for dispatch event names, the "t" field of a payload.
type EventType string

// Event is the data of a gateway operation. Every payload type implements it.
type Event interface {
	Op() OpCode
	EventType() EventType
}

// Op is a single gateway operation frame.
type Op struct {
	Code OpCode `json:"op"`
	Data Event  `json:"d,omitempty"`

	// Type is only set for dispatch events.
	Type EventType `json:"t,omitempty"`
	// Sequence is only set for dispatch events (op 0).
	Sequence int64 `json:"s,omitempty"`
}

// CloseEvent is emitted into the Op channel when the websocket closes. It
// doubles as an error.
type CloseEvent struct {
	// Err is the underlying error.
	Err error
	// Code is the websocket close code, or -1 if there is none.
	Code int
}

// Unwrap returns e.Err.
func (e *CloseEvent) Unwrap() error { return e.Err }

func (e *CloseEvent) Error() string {
	return fmt.Sprintf("websocket closed, reason: %s", e.Err)
}

// Op implements Event. It returns -1.
func (e *CloseEvent) Op() OpCode { return -1 }

// EventType implements Event.
func (e *CloseEvent) EventType() EventType { return "__ws.CloseEvent" }

// EnableRawEvents, if true, makes the codec emit a RawEvent alongside each
// decoded event. It should only be used for debugging.
var EnableRawEvents = false

// RawEvent carries the raw JSON of an event. It is only emitted if
// EnableRawEvents is true.
type RawEvent struct {
	json.Raw
	OriginalCode OpCode    `json:"-"`
	OriginalType EventType `json:"-"`
}

// Op implements Event. It returns -1.
func (e *RawEvent) Op() OpCode { return -1 }

// EventType implements Event.
func (e *RawEvent) EventType() EventType { return "__ws.RawEvent" }

// OpFunc is a constructor function for an event payload.
type OpFunc func() Event

// OpUnmarshalers maps (op, t) pairs to event constructor functions.
type OpUnmarshalers struct {
	r map[opFuncID]OpFunc
}

type opFuncID struct {
	Op OpCode
	T  EventType
}

// NewOpUnmarshalers creates an OpUnmarshalers from the given constructor
// functions.
func NewOpUnmarshalers(funcs ...OpFunc) OpUnmarshalers {
	m := OpUnmarshalers{r: make(map[opFuncID]OpFunc, len(funcs))}
	m.Add(funcs...)
	return m
}

// Add registers the given constructor functions.
func (m OpUnmarshalers) Add(funcs ...OpFunc) {
	for _, fn := range funcs {
		ev := fn()
		m.r[opFuncID{Op: ev.Op(), T: ev.EventType()}] = fn
	}
}

// Lookup returns the constructor function for the given op and event type, or
// nil if none is registered.
func (m OpUnmarshalers) Lookup(op OpCode, t EventType) OpFunc {
	return m.r[opFuncID{op, t}]
}

// Each iterates over the registry until f returns true.
func (m OpUnmarshalers) Each(f func(OpCode, EventType, OpFunc) (done bool)) {
	for id, fn := range m.r {
		if f(id.Op, id.T, fn) {
			return
		}
	}
}

// UnknownEventError is emitted in a BackgroundErrorEvent when an event is
// received that has no registered constructor. It is not fatal.
type UnknownEventError struct {
	Op   OpCode
	Type EventType
}

func (err UnknownEventError) Error() string {
	return fmt.Sprintf("unknown op %d, event %s", err.Op, err.Type)
}

// IsUnknownEvent returns true if the error is an UnknownEventError.
func IsUnknownEvent(err error) bool {
	var uevent UnknownEventError
	return errors.As(err, &uevent)
}

// ReadOp reads a single Op from the channel.
func ReadOp(ctx context.Context, ch <-chan Op) (Op, error) {
	select {
	case <-ctx.Done():
		return Op{}, ctx.Err()
	case op := <-ch:
		return op, nil
	}
}

// ReadOps reads up to n Ops from the channel into a slice.
func ReadOps(ctx context.Context, ch <-chan Op, n int) ([]Op, error) {
	ops := make([]Op, 0, n)
	for {
		select {
		case <-ctx.Done():
			return ops, ctx.Err()
		case op := <-ch:
			ops = append(ops, op)
			if len(ops) == n {
				return ops, nil
			}
		}
	}
}
