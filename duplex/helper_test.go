// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duplex_test

import (
	"code.hybscloud.com/kont"
	"code.hybscloud.com/lockless"
	"code.hybscloud.com/lockless/duplex"
)

// stepAll drives protocol on ep through the non-blocking Step/Advance path,
// retrying while the peer has not caught up.
func stepAll[R any](ep *duplex.Endpoint, protocol kont.Eff[R]) R {
	result, susp := duplex.Step(protocol)
	for susp != nil {
		var err error
		result, susp, err = duplex.Advance(ep, susp)
		if err != nil && !lockless.IsWouldBlock(err) {
			panic(err)
		}
	}
	return result
}
