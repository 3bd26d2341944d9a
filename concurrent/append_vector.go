// SPDX-License-Identifier: MIT
// Package: msf/concurrent
//
// append_vector.go - append-only vector with concurrent PushBack, Get and Snapshot.

package concurrent

import (
	"sync"
	"sync/atomic"
)

// AppendVector is an append-only sequence safe for concurrent PushBack,
// indexed Get and Snapshot.
//
// Locking discipline:
//   - writeMu serialises writers, so at most one goroutine touches the tail.
//   - growMu guards the items slice header: readers hold it shared, a writer
//     takes it exclusively only when the backing array must be reallocated.
//   - items is always fully allocated (len == cap); slots at or beyond length
//     are unpublished.
//   - length publishes the element count; a slot at index i is written before
//     length becomes i+1, so readers never see a half-written element.
type AppendVector[T any] struct {
	writeMu sync.Mutex
	growMu  sync.RWMutex
	items   []T
	length  atomic.Int64
}

// NewAppendVector returns an empty vector with room for capacity elements
// before the first reallocation. A negative capacity is treated as zero.
func NewAppendVector[T any](capacity int) *AppendVector[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &AppendVector[T]{items: make([]T, capacity)}
}

// PushBack appends v.
func (a *AppendVector[T]) PushBack(v T) {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	n := int(a.length.Load())
	if n == len(a.items) {
		a.growMu.Lock()
		grown := make([]T, 2*n+1)
		copy(grown, a.items[:n])
		a.items = grown
		a.growMu.Unlock()
	}
	// The tail slot lies beyond the published length: no reader touches it.
	a.items[n] = v
	a.length.Store(int64(n + 1))
}

// Get returns the element at index i and true, or the zero value and false
// when i is outside [0, Len()).
func (a *AppendVector[T]) Get(i int) (T, bool) {
	a.growMu.RLock()
	defer a.growMu.RUnlock()

	if i < 0 || i >= int(a.length.Load()) {
		var zero T
		return zero, false
	}

	return a.items[i], true
}

// Len returns the number of published elements.
func (a *AppendVector[T]) Len() int {
	return int(a.length.Load())
}

// Snapshot returns a point-in-time copy of all elements. It blocks writers
// and growth for the duration of the copy.
func (a *AppendVector[T]) Snapshot() []T {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()
	a.growMu.RLock()
	defer a.growMu.RUnlock()

	n := int(a.length.Load())
	out := make([]T, n)
	copy(out, a.items[:n])

	return out
}
