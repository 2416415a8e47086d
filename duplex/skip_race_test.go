// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package duplex_test

import "testing"

// skipRace skips tests that drive both endpoints of a pair concurrently.
// The race detector tracks per-variable happens-before and cannot see the
// cross-variable ordering of atomix (store-release on the slot state and
// index, load-acquire on the peer), producing false positives.
func skipRace(tb testing.TB) {
	tb.Helper()
	tb.Skip("skip: duplex rings use cross-variable memory ordering")
}
