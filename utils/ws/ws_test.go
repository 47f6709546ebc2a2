package ws

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type helloEvent struct {
	Interval int `json:"heartbeat_interval"`
}

func (*helloEvent) Op() OpCode          { return 10 }
func (*helloEvent) EventType() EventType { return "" }

type dispatchEvent struct {
	Content string `json:"content"`
}

func (*dispatchEvent) Op() OpCode          { return 0 }
func (*dispatchEvent) EventType() EventType { return "MESSAGE_CREATE" }

func testUnmarshalers() OpUnmarshalers {
	return NewOpUnmarshalers(
		func() Event { return &helloEvent{} },
		func() Event { return &dispatchEvent{} },
	)
}

func TestOpUnmarshalers(t *testing.T) {
	m := testUnmarshalers()

	fn := m.Lookup(10, "")
	require.NotNil(t, fn)
	assert.IsType(t, &helloEvent{}, fn())

	fn = m.Lookup(0, "MESSAGE_CREATE")
	require.NotNil(t, fn)

	assert.Nil(t, m.Lookup(0, "UNKNOWN_EVENT"))
}

func TestDecodeInto(t *testing.T) {
	codec := NewCodec(testUnmarshalers())
	buf := NewDecodeBuffer(1024)

	out := make(chan Op, 1)

	r := strings.NewReader(`{"op":0,"t":"MESSAGE_CREATE","s":3,"d":{"content":"hello"}}`)
	err := codec.DecodeInto(context.Background(), r, &buf, out)
	require.NoError(t, err)

	op := <-out
	assert.Equal(t, OpCode(0), op.Code)
	assert.Equal(t, EventType("MESSAGE_CREATE"), op.Type)
	assert.Equal(t, int64(3), op.Sequence)

	ev, ok := op.Data.(*dispatchEvent)
	require.True(t, ok, "unexpected data type %T", op.Data)
	assert.Equal(t, "hello", ev.Content)
}

func TestDecodeIntoUnknown(t *testing.T) {
	codec := NewCodec(testUnmarshalers())
	buf := NewDecodeBuffer(1024)

	out := make(chan Op, 1)

	r := strings.NewReader(`{"op":0,"t":"NOT_A_REAL_EVENT","d":{}}`)
	err := codec.DecodeInto(context.Background(), r, &buf, out)
	require.NoError(t, err)

	op := <-out
	bg, ok := op.Data.(*BackgroundErrorEvent)
	require.True(t, ok, "unexpected data type %T", op.Data)
	assert.True(t, IsUnknownEvent(bg.Err))
}

func TestReadOp(t *testing.T) {
	ch := make(chan Op, 1)
	ch <- Op{Code: 10}

	op, err := ReadOp(context.Background(), ch)
	require.NoError(t, err)
	assert.Equal(t, OpCode(10), op.Code)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = ReadOp(ctx, ch)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestErrorIsFatalClose(t *testing.T) {
	opts := GatewayOpts{FatalCloseCodes: []int{4004, 4010}}

	assert.True(t, opts.ErrorIsFatalClose(&CloseEvent{Code: 4004}))
	assert.False(t, opts.ErrorIsFatalClose(&CloseEvent{Code: 1000}))
	assert.False(t, opts.ErrorIsFatalClose(context.Canceled))
}
