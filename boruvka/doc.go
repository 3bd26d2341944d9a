// Package boruvka computes a minimum spanning forest of a weighted, undirected
// graph with a parallel formulation of Borůvka's algorithm.
//
// What & Why
//
//   - What is a minimum spanning forest?
//     Given an undirected graph G = (V, E) with integer edge costs, a minimum
//     spanning forest F ⊆ E connects every connected component of G with a tree
//     and has the smallest possible total cost. For a connected graph F is the
//     MST; for a disconnected one it is one MST per component.
//
//   - Why Borůvka?
//     Every round finds, for every current component, its cheapest edge leaving
//     the component and adds all of them at once. Those searches are independent
//     of each other, so a round splits naturally across workers, and the number of
//     components at least halves per round: O(log V) rounds in total.
//
// Algorithm
//
//	The input is a vertex count n and a flat edge list. A Boruvka value owns the
//	edge list, a lock-free union-find (dsu.Atomic), one "cheapest edge" slot per
//	vertex (only the slots of current component leaders are used) and an
//	append-only accumulator (concurrent.AppendVector). Each round spawns W
//	goroutines; worker i owns the i-th contiguous block of edge indices and,
//	independently, the i-th contiguous block of vertex indices.
//
//	  1. Discover. For every edge in its block whose endpoints lie in different
//	     components, the worker offers the edge to the slot of both components.
//	     An offer is a CAS loop that installs the edge unless the slot already holds
//	     one at least as good.
//	  2. Rendezvous on a fresh concurrent.Barrier.
//	  3. Merge. The worker re-scans its block and collects every edge that is the
//	     recorded winner of either endpoint's component, rendezvous once more so no
//	     leader changes while slots are still being read, then calls Unite for each
//	     collected edge. A successful Unite adds the edge cost to the total and
//	     appends the edge to the forest; an edge chosen by both components merges once.
//	  4. Clear. The worker resets the slots of its vertex block.
//
//	The coordinator joins all workers and compares the component count before and
//	after the round. An unchanged count is a fixed point: no edge can join two
//	components any more, and the computation stops.
//
// Ordering and ties
//
//	Edges are compared by (Cost, index in the input slice). The order is strict,
//	so every component has exactly one cheapest outgoing edge, every chosen edge
//	belongs to the same unique forest, and the result does not depend on the worker
//	count or on scheduling: it equals Kruskal's result with a stable sort by cost.
//
// Error Conditions
//
//	New validates before any goroutine starts and returns errors that match
//	ErrInvalidInput under errors.Is, plus a specific sentinel:
//
//	- ErrNoWorkers          - workers < 1.
//	- ErrNegativeVertices   - n < 0.
//	- ErrVertexOutOfRange   - an endpoint outside [0, n); the message names the edge.
//
//	GetBuiltMST returns ErrNotComputed until CalcMST has finished.
//	Self-loops are accepted and never selected.
//
// Concurrency
//
//	CalcMST is the only entry point that spawns goroutines; it blocks until the
//	fixed point is reached and cannot be cancelled. A Boruvka value is single-use:
//	repeated CalcMST calls return the cost of the first run.
//
// Observability
//
//	WithLogger attaches a *zap.Logger (per-round Debug, one Info on completion).
//	WithMetrics attaches Prometheus counters created by NewMetrics.
//
// Complexity
//
//   - Time: O((E + V) / W · log V) per worker in the contention-free case.
//   - Memory: O(E + V).
package boruvka
