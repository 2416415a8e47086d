// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockless

import "code.hybscloud.com/atomix"

const (
	unlocked uint32 = iota
	locked
)

// SpinMutex owns a value of type T and serializes access to it with an
// atomic flag. Waiters poll; they are never parked on a scheduler queue,
// so SpinMutex suits only very short critical sections.
//
// There is no fairness: a waiter may starve under contention.
// Calling Lock while holding a Guard of the same mutex deadlocks.
//
// The zero value is an unlocked mutex holding the zero T that waits with
// SpinBackoff. A SpinMutex must not be copied after first use.
type SpinMutex[T any] struct {
	state   atomix.Uint32
	backoff BackoffFunc
	value   T
}

// NewSpinMutex returns an unlocked mutex wrapping value.
// WithBackoff selects the waiting policy used by Lock.
func NewSpinMutex[T any](value T, opts ...Option) *SpinMutex[T] {
	c := newConfig(opts)
	return &SpinMutex[T]{
		backoff: c.backoff,
		value:   value,
	}
}

// TryLock makes a single attempt to acquire the mutex and never waits.
// It returns (guard, true) on success and (nil, false) if the mutex is held.
func (m *SpinMutex[T]) TryLock() (*Guard[T], bool) {
	if m.state.CompareAndSwapAcqRel(unlocked, locked) {
		return &Guard[T]{m: m}, true
	}
	return nil, false
}

// Lock acquires the mutex, polling until the current holder releases it.
func (m *SpinMutex[T]) Lock() *Guard[T] {
	if m.state.CompareAndSwapAcqRel(unlocked, locked) {
		return &Guard[T]{m: m}
	}
	var b Backoff
	if m.backoff != nil {
		b = m.backoff()
	} else {
		b = SpinBackoff()
	}
	for {
		// Test-and-test-and-set: wait on a plain load so the cache line
		// stays shared until the holder releases.
		SpinUntil(func() bool { return m.state.LoadRelaxed() == unlocked }, b)
		if m.state.CompareAndSwapAcqRel(unlocked, locked) {
			return &Guard[T]{m: m}
		}
		b.Wait()
	}
}

// Do runs f with exclusive access to the value and releases the mutex on
// every exit path, including a panic in f.
func (m *SpinMutex[T]) Do(f func(v *T)) {
	g := m.Lock()
	defer g.Unlock()
	f(g.Value())
}

// Locked reports whether the mutex was held at the time of the call.
func (m *SpinMutex[T]) Locked() bool {
	return m.state.LoadRelaxed() == locked
}

// Guard is exclusive access to the value of a locked SpinMutex.
// It is valid until Unlock; afterwards every method panics.
type Guard[T any] struct {
	m *SpinMutex[T]
}

func (g *Guard[T]) mutex() *SpinMutex[T] {
	if g.m == nil {
		panic("lockless: use of released guard")
	}
	return g.m
}

// Value returns a pointer to the protected value. The pointer must not be
// retained past Unlock.
func (g *Guard[T]) Value() *T { return &g.mutex().value }

// Get returns a copy of the protected value.
func (g *Guard[T]) Get() T { return g.mutex().value }

// Set replaces the protected value.
func (g *Guard[T]) Set(v T) { g.mutex().value = v }

// Unlock releases the mutex with release ordering, publishing every write
// made through the guard to the next acquirer.
func (g *Guard[T]) Unlock() {
	m := g.mutex()
	g.m = nil
	m.state.StoreRelease(unlocked)
}
