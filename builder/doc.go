// SPDX-License-Identifier: MIT
// Package: msf/builder
//
// Package builder generates deterministic synthetic graphs as flat edge lists
// (n, []boruvka.Edge) for tests, examples and benchmarks of the spanning forest
// algorithms.
//
// Model
//
//	Build(opts, cons...) resolves the options once and runs the constructors in
//	order. Each constructor appends a NEW block of vertices after those created
//	by the previous constructors and only connects vertices of its own block, so
//	composing constructors yields a disjoint union of graphs:
//
//	    n, edges, err := builder.Build(nil, builder.Cycle(3), builder.Cycle(3))
//	    // two disjoint triangles: n = 6, len(edges) = 6, 2 components
//
// Constructors
//
//   - Path(n)              : P_n, n ≥ 1.
//   - Cycle(n)             : C_n, n ≥ 3.
//   - Star(n)              : center 0 and n-1 leaves, n ≥ 1.
//   - Complete(n)          : K_n, n ≥ 1.
//   - Tree(n)              : random recursive tree (vertex i attaches to a uniform
//     earlier vertex), n ≥ 1, needs RNG.
//   - LinkedGraph(n, dense): Tree(n) plus random extra edges (parallel edges allowed)
//     until a geometric stop with mean 2n (sparse) or 100n (dense); needs RNG.
//   - RandomSparse(n, p)   : Erdős–Rényi G(n, p); RNG required for 0 < p < 1.
//
// Costs
//
//	Every edge cost is drawn from the configured CostFn. Default: constant 1.
//	WithCostRange(min, max) draws uniformly from [min, max]; WithCostFn plugs any
//	generator. Stochastic constructors require WithSeed or WithRand.
//
// Determinism
//
//	Same options, seed and constructor order ⇒ identical (n, edges).
//
// Errors
//
//	Constructors never panic at runtime and return the sentinels in errors.go
//	wrapped with the constructor name. Option constructors panic on meaningless
//	input (nil RNG, min > max): those are programmer errors.
package builder
