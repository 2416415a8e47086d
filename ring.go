// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockless

import (
	"code.hybscloud.com/atomix"
	"golang.org/x/sys/cpu"
)

const (
	slotFree uint32 = iota
	slotOccupied
)

// slot is one storage cell. state is the explicit Free/Occupied tag;
// value is meaningful only while state is slotOccupied.
type slot[T any] struct {
	state atomix.Uint32
	value T
}

// producerSide holds the fields only the Producer writes.
type producerSide struct {
	end         atomix.Uint64 // next position to publish
	closed      atomix.Uint32
	sent        atomix.Uint64
	fullRejects atomix.Uint64
}

// consumerSide holds the fields only the Consumer writes.
type consumerSide struct {
	start      atomix.Uint64 // next position to read
	closed     atomix.Uint32
	received   atomix.Uint64
	emptyPolls atomix.Uint64
}

// ring is the shared state behind a Producer/Consumer pair.
//
// start and end are monotonic counters; the physical slot is
// counter % capacity and end-start is the occupied count, so an empty
// ring (end == start) and a full one (end-start == capacity) never share
// an encoding.
type ring[T any] struct {
	_        cpu.CacheLinePad
	prod     producerSide
	_        cpu.CacheLinePad
	cons     consumerSide
	_        cpu.CacheLinePad
	slots    []slot[T]
	capacity uint64
	cfg      config
}

// RingStats is a snapshot of the ring counters.
// Each counter has a single writer, so values are exact for that role
// and at most slightly stale for the other.
type RingStats struct {
	Sent        uint64
	Received    uint64
	FullRejects uint64
	EmptyPolls  uint64
}

// NewRingBuffer creates a bounded SPSC ring of exactly capacity slots and
// returns its only Producer and only Consumer. Hand each to a different
// goroutine; neither handle may be shared between goroutines.
//
// Panics if capacity < 1.
func NewRingBuffer[T any](capacity int, opts ...Option) (*Producer[T], *Consumer[T]) {
	if capacity < 1 {
		panic("lockless: capacity must be >= 1")
	}
	r := &ring[T]{
		slots:    make([]slot[T], capacity),
		capacity: uint64(capacity),
		cfg:      newConfig(opts),
	}
	return &Producer[T]{r: r}, &Consumer[T]{r: r}
}

// length is an occupied-count snapshot, clamped to capacity.
func (r *ring[T]) length() int {
	start := r.cons.start.LoadAcquire()
	end := r.prod.end.LoadAcquire()
	n := end - start
	if n > r.capacity {
		n = r.capacity
	}
	return int(n)
}

func (r *ring[T]) disconnected() bool {
	return r.prod.closed.LoadAcquire() != 0 || r.cons.closed.LoadAcquire() != 0
}

func (r *ring[T]) stats() RingStats {
	return RingStats{
		Sent:        r.prod.sent.LoadRelaxed(),
		Received:    r.cons.received.LoadRelaxed(),
		FullRejects: r.prod.fullRejects.LoadRelaxed(),
		EmptyPolls:  r.cons.emptyPolls.LoadRelaxed(),
	}
}

// bump increments a single-writer counter without a locked instruction.
func (r *ring[T]) bump(c *atomix.Uint64) {
	if r.cfg.stats {
		c.StoreRelaxed(c.LoadRelaxed() + 1)
	}
}
