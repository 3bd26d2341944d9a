// Package msf computes minimum spanning forests of weighted, undirected graphs
// in parallel, with Borůvka's algorithm on lock-free primitives.
//
// 🚀 What is inside?
//
//	A small, focused library whose hot path holds no locks:
//		• boruvka/    — the parallel Borůvka coordinator: Edge, New, CalcMST, GetBuiltMST
//		• dsu/        — lock-free union-find (CAS linking, CAS path compression)
//		• concurrent/ — one-shot spinning Barrier and a concurrent AppendVector
//		• kruskal/    — sequential Kruskal reference + forest/component checks
//		• builder/    — deterministic synthetic edge lists for tests and benchmarks
//
// ✨ Guarantees
//
//   - Same cost and, thanks to (cost, index) tie-breaking, the same edge set for
//     every worker count, equal to Kruskal's with a stable sort.
//   - Disconnected input yields a spanning forest: one tree per component.
//   - Invalid input is rejected before any goroutine starts.
//
// Quick ASCII example:
//
//	    0───1      3───4
//	     \ /        \ /
//	      2          5
//
//	two triangles, n = 6: the forest has 4 edges and 2 components.
//
//	go get github.com/katalvlaran/msf
package msf
