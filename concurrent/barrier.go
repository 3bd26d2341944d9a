// SPDX-License-Identifier: MIT
// Package: msf/concurrent
//
// barrier.go - one-shot spinning rendezvous for a fixed party of goroutines.

package concurrent

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// Barrier is a one-shot rendezvous point for exactly `parties` goroutines.
//
// Each participant calls Arrive exactly once. Calling it more or fewer times
// is a contract violation with undefined outcome (typically a goroutine that
// spins forever). There is no timeout and no cancellation.
type Barrier struct {
	pending atomic.Int64
	parties int
}

// NewBarrier returns a Barrier waiting for `parties` arrivals.
// Panics if parties < 1.
func NewBarrier(parties int) *Barrier {
	if parties < 1 {
		panic(fmt.Sprintf("concurrent: NewBarrier requires parties ≥ 1, got %d", parties))
	}
	b := &Barrier{parties: parties}
	b.pending.Store(int64(parties))

	return b
}

// Parties returns the number of participants the barrier was built for.
func (b *Barrier) Parties() int {
	return b.parties
}

// Arrive records the caller's arrival and busy-waits, yielding between polls,
// until all participants have arrived.
func (b *Barrier) Arrive() {
	if b.pending.Add(-1) == 0 {
		return
	}
	for b.pending.Load() > 0 {
		runtime.Gosched()
	}
}
