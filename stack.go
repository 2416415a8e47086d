// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockless

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
	"golang.org/x/sys/cpu"
)

// stackNode links by arena index + 1; 0 terminates the list.
type stackNode[T any] struct {
	value T
	next  uint64
}

// Stack is a lock-free LIFO list supporting concurrent Push from any
// number of goroutines.
//
// Nodes live in a fixed arena and are addressed by index, never by
// pointer. An index is claimed once and never reused, which rules out ABA
// on the head and makes reclamation trivial. There is no Pop: removing
// nodes needs a reclamation scheme (epoch or hazard based) first.
type Stack[T any] struct {
	head  atomix.Uint64
	_     cpu.CacheLinePad
	alloc atomix.Uint64
	_     cpu.CacheLinePad
	nodes []stackNode[T]
}

// NewStack creates a stack whose arena holds capacity nodes.
// Panics if capacity < 1.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity < 1 {
		panic("lockless: capacity must be >= 1")
	}
	return &Stack[T]{nodes: make([]stackNode[T], capacity)}
}

// Push inserts v at the head. Returns ErrStackFull once the arena is
// exhausted.
func (s *Stack[T]) Push(v T) error {
	idx := s.alloc.Add(1) - 1
	if idx >= uint64(len(s.nodes)) {
		return ErrStackFull
	}
	n := &s.nodes[idx]
	n.value = v

	sw := spin.Wait{}
	for {
		head := s.head.LoadAcquire()
		n.next = head
		if s.head.CompareAndSwapAcqRel(head, idx+1) {
			return nil
		}
		sw.Once()
	}
}

// Range calls f for each value reachable from the head at the time of the
// call, newest first, until f returns false.
func (s *Stack[T]) Range(f func(v T) bool) {
	for ref := s.head.LoadAcquire(); ref != 0; {
		n := &s.nodes[ref-1]
		if !f(n.value) {
			return
		}
		ref = n.next
	}
}

// Len returns the number of nodes reachable from the head.
func (s *Stack[T]) Len() int {
	n := 0
	s.Range(func(T) bool {
		n++
		return true
	})
	return n
}

// Cap returns the arena capacity.
func (s *Stack[T]) Cap() int { return len(s.nodes) }
