// SPDX-License-Identifier: MIT
// Package: msf/builder
//
// impl_random.go - stochastic topologies: Tree, LinkedGraph, RandomSparse.
//
// Contract:
//   - Size first (ErrTooFewVertices), then probability (ErrInvalidProbability),
//     then RNG presence (ErrNeedRandSource). g is untouched on error.
//   - Every random draw comes from cfg.rng in a fixed order, so a fixed seed
//     reproduces the same edge list.

package builder

import "fmt"

const (
	methodTree         = "Tree"
	methodLinkedGraph  = "LinkedGraph"
	methodRandomSparse = "RandomSparse"

	minTreeNodes   = 1
	minLinkedNodes = 2
	minSparseNodes = 1

	probMin = 0.0
	probMax = 1.0

	// LinkedGraph stops after each extra edge with probability 1/(factor·n).
	sparseStopFactor = 2
	denseStopFactor  = 100
	// maxExtraEdges bounds LinkedGraph regardless of the stop draws.
	maxExtraEdges = 10_000_000
)

// Tree builds a random recursive tree: vertex i (i ≥ 1) is attached to a
// uniformly chosen vertex in [0, i). Edges are emitted as i—parent.
func Tree(n int) Constructor {
	return func(g *graph, cfg builderConfig) error {
		if n < minTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodTree, n, minTreeNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil && n > 2 {
			return fmt.Errorf("%s: %w", methodTree, ErrNeedRandSource)
		}
		base := g.addVertices(n)
		for i := 1; i < n; i++ {
			parent := 0
			if i > 1 {
				parent = cfg.rng.Intn(i)
			}
			g.addEdge(base+i, base+parent, cfg)
		}

		return nil
	}
}

// LinkedGraph builds a connected multigraph: a random Tree(n) followed by
// random non-loop edges. After each extra edge generation stops with
// probability 1/(2n) when sparse, 1/(100n) when dense. Parallel edges may
// appear and are meaningful (the cheaper one should win).
func LinkedGraph(n int, dense bool) Constructor {
	return func(g *graph, cfg builderConfig) error {
		if n < minLinkedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLinkedGraph, n, minLinkedNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodLinkedGraph, ErrNeedRandSource)
		}
		if err := Tree(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodLinkedGraph, err)
		}
		base := g.n - n

		stop := sparseStopFactor * n
		if dense {
			stop = denseStopFactor * n
		}
		for extra := 0; extra < maxExtraEdges; extra++ {
			u := cfg.rng.Intn(n)
			v := cfg.rng.Intn(n - 1)
			if v >= u {
				v++ // uniform over [0,n) \ {u}
			}
			g.addEdge(base+u, base+v, cfg)
			if cfg.rng.Intn(stop) == 0 {
				break
			}
		}

		return nil
	}
}

// RandomSparse samples G(n, p): each unordered pair {i, j}, i < j, is included
// independently with probability p, in i-then-j ascending trial order.
// p ∈ {0, 1} needs no RNG.
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph, cfg builderConfig) error {
		if n < minSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseNodes, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		base := g.addVertices(n)
		if p == probMin {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == probMax || cfg.rng.Float64() < p {
					g.addEdge(base+i, base+j, cfg)
				}
			}
		}

		return nil
	}
}
