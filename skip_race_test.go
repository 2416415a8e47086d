// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package lockless_test

import "testing"

// skipRace skips tests that share a ring, mutex or stack across goroutines.
// The race detector tracks per-variable happens-before and cannot see the
// cross-variable ordering of atomix (store-release on the slot state and
// index, load-acquire on the peer), producing false positives.
func skipRace(tb testing.TB) {
	tb.Helper()
	tb.Skip("skip: primitives use cross-variable memory ordering")
}
