// SPDX-License-Identifier: MIT
// Package: msf/dsu
//
// Package dsu provides a lock-free disjoint-set union (union-find) over the
// integer elements 0..n-1, built for fork-join algorithms where many goroutines
// discover and merge components at the same time.
//
// What & Why
//
//   - Atomic keeps one parent pointer per element in a []atomic.Int64 and a live
//     component counter. Every mutation is a compare-and-swap; no mutex is held on
//     any path, so a stalled goroutine can never block the others.
//   - Only path compression is applied. Union by rank needs a second word per root
//     updated together with the parent pointer, which a single CAS cannot do; in
//     Borůvka every round roughly halves the number of roots, so trees stay shallow.
//
// Invariants
//
//   - Roots are always linked in a fixed total order: the smaller index is hung
//     beneath the larger one. Parent indices therefore strictly increase along every
//     path, and two concurrent unions in opposite directions cannot form a cycle.
//   - Compression only redirects a pointer to an ancestor of its current target, so
//     it never creates a cycle and never skips past the true root.
//   - The component counter is decremented exactly once per successful link.
//
// Restrictions
//
//   - SameComponent is exact only when no Unite runs concurrently. Under concurrent
//     merges it may report "different" for elements that were just joined; callers
//     must re-validate a negative answer before acting on it (Unite does).
//   - Components are never split. There is no Reset: construct a new Atomic instead.
//
// Complexity
//
//   - NewAtomic: O(n) time and memory.
//   - FindLeader / Unite / SameComponent: amortised near-constant per call in the
//     absence of contention; CAS retries are bounded by global progress, not by time.
package dsu
