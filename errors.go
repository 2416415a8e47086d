// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockless

import (
	"errors"

	"code.hybscloud.com/iox"
)

// QueueFullError is returned by TrySend when every slot is occupied.
// It is a zero-size comparable value and classifies as iox.ErrWouldBlock.
type QueueFullError struct{}

func (QueueFullError) Error() string { return "spsc queue is full" }

// Is reports whether target is iox.ErrWouldBlock.
func (QueueFullError) Is(target error) bool { return target == iox.ErrWouldBlock }

// QueueEmptyError is returned by TryRecv when no slot is occupied.
// It is a zero-size comparable value and classifies as iox.ErrWouldBlock.
type QueueEmptyError struct{}

func (QueueEmptyError) Error() string { return "spsc queue is empty" }

// Is reports whether target is iox.ErrWouldBlock.
func (QueueEmptyError) Is(target error) bool { return target == iox.ErrWouldBlock }

// DisconnectedError is returned once the peer handle of a ring, or the
// calling handle itself, has been closed. It is terminal for the handle.
type DisconnectedError struct{}

func (DisconnectedError) Error() string { return "spsc peer disconnected" }

// StackFullError is returned by Push when the node arena is exhausted.
// Arena slots are never reused, so the condition is permanent.
type StackFullError struct{}

func (StackFullError) Error() string { return "stack arena exhausted" }

var (
	ErrQueueFull    error = QueueFullError{}
	ErrQueueEmpty   error = QueueEmptyError{}
	ErrDisconnected error = DisconnectedError{}
	ErrStackFull    error = StackFullError{}
)

// IsWouldBlock reports whether err is a retryable backpressure signal:
// ErrQueueFull, ErrQueueEmpty or anything wrapping iox.ErrWouldBlock.
func IsWouldBlock(err error) bool {
	return err != nil && errors.Is(err, iox.ErrWouldBlock)
}
