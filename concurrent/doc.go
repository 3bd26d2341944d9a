// SPDX-License-Identifier: MIT
// Package: msf/concurrent
//
// Package concurrent holds the two small synchronisation building blocks used by
// the parallel Borůvka rounds:
//
//   - Barrier: a one-shot rendezvous for a fixed number of goroutines. Arrive
//     spins (yielding the processor between polls) until every participant has
//     arrived. A fresh Barrier is built for every phase boundary; it is never reset.
//
//   - AppendVector: an append-only slice that many goroutines may PushBack into
//     while others read by index. Appends are serialised by a writer mutex; only
//     growth of the backing array takes the exclusive side of a read/write lock,
//     so indexed reads proceed under the shared side in the common case.
//
// Memory model
//
//	Both types publish through sync/atomic, whose operations are sequentially
//	consistent in Go. Everything a goroutine wrote before Barrier.Arrive is visible
//	to every participant once its own Arrive returns, and an element written by
//	PushBack is visible to any reader that observes the incremented length.
package concurrent
