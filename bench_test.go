// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lockless_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/lfq"
	"code.hybscloud.com/lockless"
)

// BenchmarkRingSendRecv measures a send/recv pair on one goroutine.
func BenchmarkRingSendRecv(b *testing.B) {
	b.ReportAllocs()
	p, c := lockless.NewRingBuffer[int](1024)
	for b.Loop() {
		_ = p.TrySend(42)
		_, _ = c.TryRecv()
	}
}

// BenchmarkRingSendRecvNoStats measures the same pair with counters off.
func BenchmarkRingSendRecvNoStats(b *testing.B) {
	b.ReportAllocs()
	p, c := lockless.NewRingBuffer[int](1024, lockless.WithStats(false))
	for b.Loop() {
		_ = p.TrySend(42)
		_, _ = c.TryRecv()
	}
}

// BenchmarkLFQSPSCSendRecv is the lfq baseline for BenchmarkRingSendRecv.
func BenchmarkLFQSPSCSendRecv(b *testing.B) {
	b.ReportAllocs()
	q := lfq.NewSPSC[int](1024)
	v := 42
	for b.Loop() {
		_ = q.Enqueue(&v)
		_, _ = q.Dequeue()
	}
}

// BenchmarkRingPipeline measures throughput across two goroutines.
func BenchmarkRingPipeline(b *testing.B) {
	skipRace(b)
	b.ReportAllocs()
	p, c := lockless.NewRingBuffer[int](1024)
	n := b.N
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range n {
			_ = p.Send(i)
		}
	}()
	b.ResetTimer()
	for range n {
		_, _ = c.Recv()
	}
	wg.Wait()
}

// BenchmarkSpinMutexUncontended measures Lock/Unlock with no contention.
func BenchmarkSpinMutexUncontended(b *testing.B) {
	b.ReportAllocs()
	m := lockless.NewSpinMutex(0)
	for b.Loop() {
		g := m.Lock()
		*g.Value()++
		g.Unlock()
	}
}

// BenchmarkSpinMutexContended measures Lock/Unlock under parallel load.
func BenchmarkSpinMutexContended(b *testing.B) {
	skipRace(b)
	m := lockless.NewSpinMutex(0)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			m.Do(func(v *int) { *v++ })
		}
	})
}

// BenchmarkStackPush measures parallel pushes into a large arena.
func BenchmarkStackPush(b *testing.B) {
	skipRace(b)
	s := lockless.NewStack[int](b.N + 1)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = s.Push(1)
		}
	})
}
