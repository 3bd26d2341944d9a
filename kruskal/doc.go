// Package kruskal is the sequential reference for package boruvka: Kruskal's
// algorithm over the same flat edge lists, plus the structural checks the
// parallel results are validated against.
//
// What & Why
//
//   - Forest(edges, n) sorts edges by ascending cost with a stable sort (ties keep
//     input order), then scans them once with a union-find, keeping every edge that
//     joins two different components. Because ties break by input index, the
//     resulting edge set is the same one boruvka produces for any worker count.
//
//   - Components(edges, n) counts connected components of the input graph.
//
//   - IsForest(edges, n) reports whether an edge set is acyclic.
//
// Error Conditions
//
//	All functions validate with boruvka.Validate and return its errors unchanged,
//	so callers branch with errors.Is against boruvka.ErrInvalidInput and friends.
//
// Complexity
//
//   - Forest: O(E log E + α(V)·E) time, O(E + V) memory.
//   - Components / IsForest: O(α(V)·E + V) time, O(V) memory.
package kruskal
