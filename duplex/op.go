// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duplex

import (
	"code.hybscloud.com/kont"
)

// Send is the effect that transfers Value to the peer.
type Send[T any] struct {
	kont.Phantom[struct{}]
	Value T
}

// DispatchSession publishes Value on the outbound data ring.
func (s Send[T]) DispatchSession(t *transport) (kont.Resumed, error) {
	if err := t.dataOut.TrySend(s.Value); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// Recv is the effect that takes the next value sent by the peer.
// The value must have dynamic type T.
type Recv[T any] struct {
	kont.Phantom[T]
}

// DispatchSession takes the oldest value from the inbound data ring.
func (Recv[T]) DispatchSession(t *transport) (kont.Resumed, error) {
	v, err := t.dataIn.TryRecv()
	if err != nil {
		return nil, err
	}
	return v.(T), nil
}

// Close is the effect that ends this endpoint's outbound traffic.
type Close struct {
	kont.Phantom[struct{}]
}

// DispatchSession closes both outbound rings. It never fails.
func (Close) DispatchSession(t *transport) (kont.Resumed, error) {
	t.close()
	return struct{}{}, nil
}

// Pre-boxed Offer results; boxing Either into kont.Resumed allocates.
var (
	offerLeft  kont.Resumed = kont.Left[struct{}, struct{}](struct{}{})
	offerRight kont.Resumed = kont.Right[struct{}](struct{}{})
)

// SelectL is the effect that picks the left branch of the peer's Offer.
type SelectL struct {
	kont.Phantom[struct{}]
}

// DispatchSession publishes a left choice.
func (SelectL) DispatchSession(t *transport) (kont.Resumed, error) {
	if err := t.choiceOut.TrySend(true); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// SelectR is the effect that picks the right branch of the peer's Offer.
type SelectR struct {
	kont.Phantom[struct{}]
}

// DispatchSession publishes a right choice.
func (SelectR) DispatchSession(t *transport) (kont.Resumed, error) {
	if err := t.choiceOut.TrySend(false); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// Offer is the effect that waits for the peer's SelectL or SelectR.
// It resumes with Left for SelectL and Right for SelectR.
type Offer struct {
	kont.Phantom[kont.Either[struct{}, struct{}]]
}

// DispatchSession takes the next choice from the inbound choice ring.
func (Offer) DispatchSession(t *transport) (kont.Resumed, error) {
	left, err := t.choiceIn.TryRecv()
	if err != nil {
		return nil, err
	}
	if left {
		return offerLeft, nil
	}
	return offerRight, nil
}
