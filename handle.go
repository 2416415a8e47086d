// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockless

// Producer is the send-only capability of a ring.
// It is not safe for use by more than one goroutine at a time.
type Producer[T any] struct {
	r           *ring[T]
	cachedStart uint64 // last observed consumer position
}

// Consumer is the receive-only capability of a ring.
// It is not safe for use by more than one goroutine at a time.
type Consumer[T any] struct {
	r         *ring[T]
	cachedEnd uint64 // last observed producer position
}

// TrySend publishes v into the next free slot.
// Returns ErrQueueFull without side effects when all slots are occupied,
// or ErrDisconnected after either handle has been closed.
func (p *Producer[T]) TrySend(v T) error {
	r := p.r
	if r.prod.closed.LoadRelaxed() != 0 || r.cons.closed.LoadAcquire() != 0 {
		return ErrDisconnected
	}
	end := r.prod.end.LoadRelaxed()
	if end-p.cachedStart >= r.capacity {
		p.cachedStart = r.cons.start.LoadAcquire()
		if end-p.cachedStart >= r.capacity {
			r.bump(&r.prod.fullRejects)
			return ErrQueueFull
		}
	}

	s := &r.slots[end%r.capacity]
	if s.state.LoadAcquire() != slotFree {
		panic("lockless: slot state corrupted")
	}
	s.value = v
	s.state.StoreRelease(slotOccupied)
	r.prod.end.StoreRelease(end + 1)
	r.bump(&r.prod.sent)
	return nil
}

// Send retries TrySend under the configured backoff policy until the value
// is published or the ring is disconnected. The default policy is
// AdaptiveBackoff.
func (p *Producer[T]) Send(v T) error {
	var err error
	SpinUntil(func() bool {
		err = p.TrySend(v)
		return err != ErrQueueFull
	}, p.r.cfg.newBackoff(AdaptiveBackoff))
	return err
}

// Close marks the producer side closed. The consumer still receives every
// value published before Close, then ErrDisconnected. Close is idempotent.
func (p *Producer[T]) Close() {
	p.r.prod.closed.StoreRelease(1)
}

// Disconnected reports whether either handle has been closed.
func (p *Producer[T]) Disconnected() bool { return p.r.disconnected() }

// Len returns a snapshot of the number of occupied slots.
func (p *Producer[T]) Len() int { return p.r.length() }

// Cap returns the fixed ring capacity.
func (p *Producer[T]) Cap() int { return int(p.r.capacity) }

// Stats returns a snapshot of the ring counters.
func (p *Producer[T]) Stats() RingStats { return p.r.stats() }

// TryRecv moves the oldest value out of the ring.
// Returns ErrQueueEmpty without side effects when no slot is occupied.
// Once the producer is closed and the ring drained, or once this consumer
// is closed, it returns ErrDisconnected.
func (c *Consumer[T]) TryRecv() (T, error) {
	var zero T
	r := c.r
	if r.cons.closed.LoadRelaxed() != 0 {
		return zero, ErrDisconnected
	}
	start := r.cons.start.LoadRelaxed()
	if start >= c.cachedEnd {
		// closed is read before end: a producer that closed has
		// published its last end before the close flag.
		closed := r.prod.closed.LoadAcquire() != 0
		c.cachedEnd = r.prod.end.LoadAcquire()
		if start >= c.cachedEnd {
			if closed {
				return zero, ErrDisconnected
			}
			r.bump(&r.cons.emptyPolls)
			return zero, ErrQueueEmpty
		}
	}

	s := &r.slots[start%r.capacity]
	if s.state.LoadAcquire() != slotOccupied {
		panic("lockless: slot state corrupted")
	}
	v := s.value
	s.value = zero
	s.state.StoreRelease(slotFree)
	r.cons.start.StoreRelease(start + 1)
	r.bump(&r.cons.received)
	return v, nil
}

// Recv retries TryRecv under the configured backoff policy until a value
// arrives or the ring is disconnected and drained.
func (c *Consumer[T]) Recv() (T, error) {
	var (
		v   T
		err error
	)
	SpinUntil(func() bool {
		v, err = c.TryRecv()
		return err != ErrQueueEmpty
	}, c.r.cfg.newBackoff(AdaptiveBackoff))
	return v, err
}

// Close marks the consumer side closed and drops every value it can see
// in place, freeing the slots. Later TrySend calls return ErrDisconnected.
// Close is idempotent.
func (c *Consumer[T]) Close() {
	var zero T
	r := c.r
	if r.cons.closed.LoadRelaxed() != 0 {
		return
	}
	r.cons.closed.StoreRelease(1)
	start := r.cons.start.LoadRelaxed()
	end := r.prod.end.LoadAcquire()
	for ; start < end; start++ {
		s := &r.slots[start%r.capacity]
		s.value = zero
		s.state.StoreRelease(slotFree)
	}
	r.cons.start.StoreRelease(start)
	c.cachedEnd = end
}

// Disconnected reports whether either handle has been closed.
func (c *Consumer[T]) Disconnected() bool { return c.r.disconnected() }

// Len returns a snapshot of the number of occupied slots.
func (c *Consumer[T]) Len() int { return c.r.length() }

// Cap returns the fixed ring capacity.
func (c *Consumer[T]) Cap() int { return int(c.r.capacity) }

// Stats returns a snapshot of the ring counters.
func (c *Consumer[T]) Stats() RingStats { return c.r.stats() }
