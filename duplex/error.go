// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duplex

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// errorDispatcher is the structural interface of kont error effects.
type errorDispatcher[E any] interface {
	DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
}

// errorHandler handles session effects like handler and short-circuits on
// kont error effects.
type errorHandler[E, A any] struct {
	t      *transport
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler. Session effects are tried first.
func (h errorHandler[E, A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if sop, ok := op.(dispatcher); ok {
		return dispatchWait(h.t, sop), true
	}
	if eop, ok := op.(errorDispatcher[E]); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("duplex: unhandled effect in errorHandler")
}

// ExecError runs protocol on ep like Exec, with kont error effects.
// Returns Right on success and Left with the thrown value on Throw.
func ExecError[E, R any](ep *Endpoint, protocol kont.Eff[R]) kont.Either[E, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[E, R]](protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	return kont.Handle(wrapped, errorHandler[E, R]{t: &ep.t, errCtx: &errCtx})
}

// StepError evaluates protocol with error support up to its first effect.
func StepError[E, R any](protocol kont.Eff[R]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]]) {
	wrapped := kont.ExprMap(kont.Reify(protocol), func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	return kont.StepExpr(wrapped)
}

// AdvanceError dispatches the suspended effect on ep. Session effects never
// block and may return a would-block error; a thrown error discards the
// suspension and completes with Left.
func AdvanceError[E, R any](ep *Endpoint, susp *kont.Suspension[kont.Either[E, R]]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]], error) {
	if sop, ok := susp.Op().(dispatcher); ok {
		v, err := sop.DispatchSession(&ep.t)
		if err != nil {
			var zero kont.Either[E, R]
			return zero, susp, err
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	if eop, ok := susp.Op().(errorDispatcher[E]); ok {
		var ctx kont.ErrorContext[E]
		v, _ := eop.DispatchError(&ctx)
		if ctx.HasErr {
			susp.Discard()
			return kont.Left[E, R](ctx.Err), nil, nil
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	panic("duplex: unhandled effect in AdvanceError")
}

// RunError is Run with kont error effects on both sides.
func RunError[E, A, B any](a kont.Eff[A], b kont.Eff[B]) (kont.Either[E, A], kont.Either[E, B]) {
	epA, epB := New()
	resultA, suspA := StepError[E](a)
	resultB, suspB := StepError[E](b)
	var bo iox.Backoff
	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			var err error
			resultA, suspA, err = AdvanceError[E](epA, suspA)
			progress = progressed(err) || progress
		}
		if suspB != nil {
			var err error
			resultB, suspB, err = AdvanceError[E](epB, suspB)
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
