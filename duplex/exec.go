// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duplex

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Exec runs protocol on ep, waiting with iox.Backoff whenever a ring
// would block. It panics if the peer disconnects while ep still expects
// traffic from it.
func Exec[R any](ep *Endpoint, protocol kont.Eff[R]) R {
	return kont.Handle(protocol, handler[R]{t: &ep.t})
}

// Step evaluates protocol up to its first session effect.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Eff[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(kont.Reify(protocol))
}

// Advance dispatches the suspended effect on ep without blocking.
//
// On success the suspension is consumed and the protocol runs to its next
// effect or to completion. On a would-block error the suspension is
// returned unconsumed and may be retried once the peer has made progress.
// lockless.ErrDisconnected means the peer closed and will never make
// progress.
func Advance[R any](ep *Endpoint, susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	sop, ok := susp.Op().(dispatcher)
	if !ok {
		panic("duplex: unhandled effect in Advance")
	}
	v, err := sop.DispatchSession(&ep.t)
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}

// Run creates a pair, runs a on one endpoint and b on the other, and
// returns both results. Both sides are interleaved on the calling
// goroutine; when neither can progress it waits with iox.Backoff.
func Run[A, B any](a kont.Eff[A], b kont.Eff[B]) (A, B) {
	epA, epB := New()
	resultA, suspA := Step(a)
	resultB, suspB := Step(b)
	var bo iox.Backoff
	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			var err error
			resultA, suspA, err = Advance(epA, suspA)
			progress = progressed(err) || progress
		}
		if suspB != nil {
			var err error
			resultB, suspB, err = Advance(epB, suspB)
			progress = progressed(err) || progress
		}
		if progress {
			bo.Reset()
		} else {
			bo.Wait()
		}
	}
	return resultA, resultB
}

// progressed reports whether an Advance made progress, panicking on
// anything other than would-block.
func progressed(err error) bool {
	if err == nil {
		return true
	}
	mustWouldBlock(err)
	return false
}
