// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duplex

import (
	"code.hybscloud.com/kont"
)

// SendThen sends v, then continues with next.
func SendThen[T, B any](v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Send[T]{Value: v}), next)
}

// RecvBind receives a T and passes it to f.
func RecvBind[T, B any](f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Recv[T]{}), f)
}

// CloseDone closes the endpoint and returns a.
func CloseDone[A any](a A) kont.Eff[A] {
	return kont.Then(kont.Perform(Close{}), kont.Pure(a))
}

// SelectLThen picks the left branch, then continues with next.
func SelectLThen[B any](next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(SelectL{}), next)
}

// SelectRThen picks the right branch, then continues with next.
func SelectRThen[B any](next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(SelectR{}), next)
}

// OfferBranch waits for the peer's choice and continues with onLeft or
// onRight.
func OfferBranch[A any](onLeft, onRight func() kont.Eff[A]) kont.Eff[A] {
	return kont.Bind(kont.Perform(Offer{}), func(e kont.Either[struct{}, struct{}]) kont.Eff[A] {
		if e.IsLeft() {
			return onLeft()
		}
		return onRight()
	})
}

// Loop runs a recursive protocol. step returns Left(next state) to go
// around again or Right(result) to finish.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(step(initial), func(e kont.Either[S, A]) kont.Eff[A] {
		if s, ok := e.GetLeft(); ok {
			return Loop(s, step)
		}
		a, _ := e.GetRight()
		return kont.Pure(a)
	})
}
