package hdf5

import (
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// The native library is a single shared resource: it keeps the open-object
// table, the property machinery, and the error stack in process globals and
// is not safe for concurrent use. One process-wide lock serializes every
// entry. The lock is reentrant per goroutine so that a wrapped operation can
// compose other wrapped operations without deadlocking; the scoped Sync and
// SyncValue entry points are the only way in, and the lock itself is never
// handed out.

type reentrantLock struct {
	mu sync.Mutex

	// owner holds the goroutine id of the current holder, zero when free.
	// It is written only by the holder: set after mu is acquired, cleared
	// before mu is released, so a goroutine can only ever observe its own
	// id here while it actually holds mu. A gid of zero is never treated
	// as owning; it would collide with the free sentinel.
	owner atomic.Int64

	// depth counts nested acquisitions. Touched only by the owner.
	depth int
}

func (l *reentrantLock) lock() {
	gid := goid.Get()
	if gid != 0 && l.owner.Load() == gid {
		l.depth++
		return
	}
	l.mu.Lock()
	l.owner.Store(gid)
	l.depth = 1
}

func (l *reentrantLock) unlock() {
	if l.owner.Load() != goid.Get() {
		panic("hdf5: serializer released by a goroutine that does not hold it")
	}
	l.depth--
	if l.depth == 0 {
		l.owner.Store(0)
		l.mu.Unlock()
	}
}

// held reports whether the calling goroutine currently holds the serializer.
func (l *reentrantLock) held() bool {
	gid := goid.Get()
	return gid != 0 && l.owner.Load() == gid
}

// global serializes every entry into the native library for the life of the
// process. There is deliberately no way to tear it down.
var global reentrantLock

// Sync runs f while holding the process-wide serializer. Nested calls from
// the same goroutine are free; calls from other goroutines block until f
// returns. The serializer is released even if f panics.
//
// f must not block on work that needs another goroutine to enter the
// library, or both goroutines deadlock.
func Sync(f func()) {
	global.lock()
	defer global.unlock()
	ensureNative()
	f()
}

// SyncValue runs f under the serializer and returns its result. It is the
// expression-shaped form of Sync:
//
//	count := hdf5.SyncValue(func() int { return raw.OpenObjectCount() })
func SyncValue[T any](f func() T) T {
	global.lock()
	defer global.unlock()
	ensureNative()
	return f()
}
