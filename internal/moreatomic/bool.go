package moreatomic

import "go.uber.org/atomic"

// Bool is an atomic boolean.
type Bool struct {
	v atomic.Bool
}

func (b *Bool) Get() bool {
	return b.v.Load()
}

func (b *Bool) Set(t bool) {
	b.v.Store(t)
}

// Acquire sets the boolean to true. It reports whether the boolean was false
// before the call.
func (b *Bool) Acquire() bool {
	return b.v.CompareAndSwap(false, true)
}
