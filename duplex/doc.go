// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package duplex runs session-typed protocols, written as algebraic effects
// on [code.hybscloud.com/kont], over a pair of connected endpoints whose
// transport is [code.hybscloud.com/lockless] SPSC rings.
//
// # Transport
//
// [New] returns two endpoints. Each direction has a data ring and a
// branch-choice ring; an endpoint owns the producer of its outbound rings
// and the consumer of its inbound rings, so every ring keeps exactly one
// writer and one reader.
//
// Dispatch never blocks: a full or empty ring surfaces as a
// [lockless.IsWouldBlock] error. [Close] closes the outbound rings; the
// peer drains what was sent and then sees [lockless.ErrDisconnected].
//
// # Operations
//
//   - Effects: [Send], [Recv], [Close], [SelectL], [SelectR], [Offer].
//   - Fused constructors: [SendThen], [RecvBind], [CloseDone],
//     [SelectLThen], [SelectRThen], [OfferBranch], and [Loop] for recursion.
//   - Stepping: [Step] and [Advance] evaluate one effect at a time.
//   - Waiting: [Exec] and [Run] (and their Error variants) wait past
//     would-block with iox.Backoff.
//
// # Example
//
//	client := duplex.SendThen(42, duplex.CloseDone("sent"))
//	server := duplex.RecvBind(func(n int) kont.Eff[int] {
//		return duplex.CloseDone(n)
//	})
//	_, got := duplex.Run[string, int](client, server) // got == 42
package duplex
