// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duplex

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"code.hybscloud.com/lockless"
)

// ringCapacity is the slot count of every transport ring.
const ringCapacity = 4

// Serial identifies the pair an endpoint belongs to. Serials increase
// monotonically across calls to New.
type Serial = uint32

var serials atomix.Uint32

// transport is one endpoint's view of the rings: producers for outbound
// traffic, consumers for inbound.
type transport struct {
	dataOut   *lockless.Producer[any]
	dataIn    *lockless.Consumer[any]
	choiceOut *lockless.Producer[bool]
	choiceIn  *lockless.Consumer[bool]
}

func (t *transport) close() {
	t.dataOut.Close()
	t.choiceOut.Close()
}

// dispatcher is implemented by every session effect.
// DispatchSession must not block; it reports a full or empty ring with a
// would-block error.
type dispatcher interface {
	DispatchSession(t *transport) (kont.Resumed, error)
}

// Endpoint is one side of a connected pair.
// An endpoint must be driven by one goroutine at a time.
type Endpoint struct {
	t      transport
	serial Serial
}

// Serial returns the serial shared by both endpoints of the pair.
func (ep *Endpoint) Serial() Serial {
	return ep.serial
}

// New creates a connected pair of endpoints over four SPSC rings:
// data and choice, one of each per direction.
func New() (*Endpoint, *Endpoint) {
	s := serials.Add(1)
	abData, abDataIn := lockless.NewRingBuffer[any](ringCapacity)
	baData, baDataIn := lockless.NewRingBuffer[any](ringCapacity)
	abChoice, abChoiceIn := lockless.NewRingBuffer[bool](ringCapacity)
	baChoice, baChoiceIn := lockless.NewRingBuffer[bool](ringCapacity)

	a := &Endpoint{
		t: transport{
			dataOut:   abData,
			dataIn:    baDataIn,
			choiceOut: abChoice,
			choiceIn:  baChoiceIn,
		},
		serial: s,
	}
	b := &Endpoint{
		t: transport{
			dataOut:   baData,
			dataIn:    abDataIn,
			choiceOut: baChoice,
			choiceIn:  abChoiceIn,
		},
		serial: s,
	}
	return a, b
}

// handler implements kont.Handler for session effects, turning the
// non-blocking dispatch into a waiting one.
type handler[R any] struct {
	t *transport
}

// Dispatch implements kont.Handler.
func (h handler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	sop, ok := op.(dispatcher)
	if !ok {
		panic("duplex: unhandled effect in handler")
	}
	return dispatchWait(h.t, sop), true
}

// dispatchWait retries sop with iox.Backoff while the ring would block.
// A disconnected peer is a protocol violation and panics.
func dispatchWait(t *transport, sop dispatcher) kont.Resumed {
	var bo iox.Backoff
	for {
		v, err := sop.DispatchSession(t)
		if err == nil {
			return v
		}
		mustWouldBlock(err)
		bo.Wait()
	}
}

func mustWouldBlock(err error) {
	if !lockless.IsWouldBlock(err) {
		panic("duplex: " + err.Error())
	}
}
