// Package moreatomic provides concurrency helpers on top of the atomic
// packages.
package moreatomic

import (
	"context"

	"github.com/sasha-s/go-csync"
)

// CtxMutex is a mutex that can be acquired with a context, so that a slow
// lock holder doesn't block the caller past its deadline.
type CtxMutex struct {
	mut csync.Mutex
}

// Lock acquires the mutex, giving up when the context expires.
func (m *CtxMutex) Lock(ctx context.Context) error {
	return m.mut.CLock(ctx)
}

// TryLock acquires the mutex without blocking. It reports whether the lock
// was taken.
func (m *CtxMutex) TryLock() bool {
	return m.mut.TryLock()
}

// Unlock releases the mutex.
func (m *CtxMutex) Unlock() {
	m.mut.Unlock()
}
