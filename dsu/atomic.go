// SPDX-License-Identifier: MIT
// Package: msf/dsu
//
// atomic.go - lock-free union-find with CAS linking and CAS path compression.

package dsu

import (
	"runtime"
	"sync/atomic"
)

// Atomic is a lock-free union-find over the elements 0..n-1.
//
// The zero value is an empty structure of size 0; use NewAtomic.
// All methods are safe for concurrent use.
type Atomic struct {
	parent     []atomic.Int64 // parent[v] == v marks a root
	components atomic.Int64   // live component count
}

// NewAtomic creates n singleton components. n must be non-negative.
// Complexity: O(n).
func NewAtomic(n int) *Atomic {
	if n < 0 {
		panic("dsu: NewAtomic with negative size")
	}
	d := &Atomic{parent: make([]atomic.Int64, n)}
	for i := range d.parent {
		d.parent[i].Store(int64(i))
	}
	d.components.Store(int64(n))

	return d
}

// Len returns the number of elements.
func (d *Atomic) Len() int {
	return len(d.parent)
}

// FindLeader returns the representative of v's component.
//
// The walk is iterative. Once the root is known, every pointer on the path
// from v is redirected to it with a CAS that only succeeds if the pointer
// still holds the value observed during the walk, so a concurrent compression
// is never overwritten with an older target. Under concurrent Unite the
// returned root may already have been linked beneath another one.
func (d *Atomic) FindLeader(v int) int {
	// 1. Locate the root.
	root := int64(v)
	for {
		p := d.parent[root].Load()
		if p == root {
			break
		}
		root = p
	}

	// 2. Compress the path v → root. Indices grow along every path, so the
	// nodes below root are exactly those with a smaller index. A pointer that
	// already reaches root (or past it, if root was linked meanwhile) is left alone.
	cur := int64(v)
	for cur < root {
		next := d.parent[cur].Load()
		if next >= root {
			break
		}
		d.parent[cur].CompareAndSwap(next, root)
		cur = next
	}

	return int(root)
}

// Unite merges the components of u and v.
// It returns true iff this call committed the merge, false if both were
// already in the same component when the link was attempted.
//
// Retry loop: resolve both roots, order them, then CAS the smaller root's
// parent from itself to the larger root. A failed CAS means another goroutine
// linked that root first; the roots are resolved again and the loop retries.
func (d *Atomic) Unite(u, v int) bool {
	for {
		ru := int64(d.FindLeader(u))
		rv := int64(d.FindLeader(v))
		if ru == rv {
			return false
		}
		if ru > rv {
			ru, rv = rv, ru
		}
		if d.parent[ru].CompareAndSwap(ru, rv) {
			d.components.Add(-1)

			return true
		}
		runtime.Gosched()
	}
}

// SameComponent reports whether u and v currently share a representative.
// See the package documentation for the restriction under concurrent Unite.
func (d *Atomic) SameComponent(u, v int) bool {
	return d.FindLeader(u) == d.FindLeader(v)
}

// GetComponentsQuantity returns the live component count.
func (d *Atomic) GetComponentsQuantity() int {
	return int(d.components.Load())
}
