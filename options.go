// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockless

// Option configures a ring or a SpinMutex at construction.
type Option func(*config)

type config struct {
	backoff BackoffFunc
	stats   bool
}

func newConfig(opts []Option) config {
	c := config{stats: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// newBackoff builds a waiter from the configured policy, or from def when
// no policy was set.
func (c *config) newBackoff(def BackoffFunc) Backoff {
	if c.backoff != nil {
		return c.backoff()
	}
	return def()
}

// WithBackoff sets the wait policy used by SpinMutex.Lock and by the
// polling Send/Recv of a ring. A nil fn keeps the default.
func WithBackoff(fn BackoffFunc) Option {
	return func(c *config) {
		c.backoff = fn
	}
}

// WithStats enables or disables the per-role ring counters.
// Counters are enabled by default.
func WithStats(enabled bool) Option {
	return func(c *config) {
		c.stats = enabled
	}
}
