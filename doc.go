// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lockless provides low-level concurrency primitives built only on
// atomic operations with explicit memory ordering.
//
// # Primitives
//
//   - Ring: a bounded single-producer single-consumer queue. [NewRingBuffer]
//     returns the only [Producer] and the only [Consumer] of a ring.
//   - SpinMutex: a busy-wait mutex owning a value. [SpinMutex.Lock] and
//     [SpinMutex.TryLock] return a [Guard], the only way to reach the value.
//   - Stack: a lock-free LIFO list with concurrent [Stack.Push] over an
//     index arena.
//
// # Ring Protocol
//
// Each slot carries an explicit Free/Occupied tag. The producer fills the
// slot at end, tags it Occupied and publishes end+1 with a release store.
// The consumer observes end with an acquire load, moves the value out, tags
// the slot Free and publishes start+1 with a release store. start and end
// are monotonic, so end-start is the exact occupied count and a full ring
// is never mistaken for an empty one.
//
// Producer and Consumer each write only their own side of the ring; the
// split is enforced by the handle types, not by runtime checks.
//
// # Errors
//
// [ErrQueueFull] and [ErrQueueEmpty] are retryable and classify as
// [code.hybscloud.com/iox.ErrWouldBlock]:
//
//	if lockless.IsWouldBlock(err) {
//		// backpressure: retry later
//	}
//
// [ErrDisconnected] is terminal: it is returned after either handle of a
// ring is closed (the consumer first drains what was published).
//
// # Waiting
//
// Lock, Send and Recv poll through a [Backoff] policy selected with
// [WithBackoff]: [SpinBackoff] (CPU pause, the SpinMutex default),
// [YieldBackoff], [ExponentialBackoff], [BoundedBackoff] (spin, then fall
// back to iox.Backoff) or [AdaptiveBackoff] (iox.Backoff, the ring default).
//
// # Example
//
//	p, c := lockless.NewRingBuffer[int](2)
//	_ = p.TrySend(1)
//	v, err := c.TryRecv() // 1, nil
//
//	m := lockless.NewSpinMutex(0)
//	g := m.Lock()
//	*g.Value()++
//	g.Unlock()
//
// # Race Detection
//
// The race detector does not observe the happens-before edges created by
// atomix acquire/release pairs on separate variables. Concurrent tests of
// these primitives are skipped under -race.
package lockless
