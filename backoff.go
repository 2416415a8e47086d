// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockless

import (
	"runtime"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
	"github.com/valyala/fastrand"
)

// Backoff is a waiting policy for a polling loop.
// Wait is called after each failed poll; Reset after a successful one.
// *iox.Backoff satisfies Backoff.
type Backoff interface {
	Wait()
	Reset()
}

// BackoffFunc builds a fresh Backoff for one wait episode.
type BackoffFunc func() Backoff

// SpinUntil polls cond until it reports true, calling b.Wait between
// failed polls. It never parks the goroutine itself; whether the policy
// yields, sleeps or pauses the CPU is up to b.
func SpinUntil(cond func() bool, b Backoff) {
	for !cond() {
		b.Wait()
	}
}

// SpinBackoff returns a pure busy-wait policy: each Wait issues a CPU
// pause hint via spin.Wait. It is the SpinMutex default.
func SpinBackoff() Backoff {
	return &spinBackoff{}
}

type spinBackoff struct {
	sw spin.Wait
}

func (b *spinBackoff) Wait()  { b.sw.Once() }
func (b *spinBackoff) Reset() { b.sw = spin.Wait{} }

// YieldBackoff returns a policy that hands the processor back to the
// Go scheduler on every Wait. The goroutine stays runnable.
func YieldBackoff() Backoff {
	return yieldBackoff{}
}

type yieldBackoff struct{}

func (yieldBackoff) Wait()  { runtime.Gosched() }
func (yieldBackoff) Reset() {}

// AdaptiveBackoff returns an iox.Backoff. It is the default for the
// polling Send and Recv of a ring.
func AdaptiveBackoff() Backoff {
	return new(iox.Backoff)
}

// ExponentialBackoff returns a policy that yields a randomized number of
// times per Wait, doubling the bound from min up to max.
func ExponentialBackoff(min, max int) BackoffFunc {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	return func() Backoff {
		return &expBackoff{min: min, max: max, cur: min}
	}
}

type expBackoff struct {
	min, max, cur int
}

func (b *expBackoff) Wait() {
	n := 1 + int(fastrand.Uint32n(uint32(b.cur)))
	for range n {
		runtime.Gosched()
	}
	if b.cur < b.max {
		b.cur <<= 1
		if b.cur > b.max {
			b.cur = b.max
		}
	}
}

func (b *expBackoff) Reset() { b.cur = b.min }

// BoundedBackoff returns a policy that busy-waits for spins rounds and
// then falls back to iox.Backoff for every later Wait.
func BoundedBackoff(spins int) BackoffFunc {
	return func() Backoff {
		return &boundedBackoff{limit: spins}
	}
}

type boundedBackoff struct {
	limit  int
	rounds int
	sw     spin.Wait
	bo     iox.Backoff
}

func (b *boundedBackoff) Wait() {
	if b.rounds < b.limit {
		b.rounds++
		b.sw.Once()
		return
	}
	b.bo.Wait()
}

func (b *boundedBackoff) Reset() {
	b.rounds = 0
	b.sw = spin.Wait{}
	b.bo.Reset()
}

// Spinning reports whether the policy is still in its busy-wait phase.
func (b *boundedBackoff) Spinning() bool { return b.rounds < b.limit }
