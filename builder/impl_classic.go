// SPDX-License-Identifier: MIT
// Package: msf/builder
//
// impl_classic.go - deterministic topologies: Path, Cycle, Star, Complete.
//
// Contract (all four):
//   - Validate n first; ErrTooFewVertices on violation, g untouched.
//   - Vertices are allocated as one block [base, base+n).
//   - Edges are emitted in a stable, documented order; one cost draw per edge.
//
// Complexity: O(n) for Path/Cycle/Star, O(n²) for Complete.

package builder

import "fmt"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes     = 1
	minCycleNodes    = 3
	minStarNodes     = 1
	minCompleteNodes = 1
)

// Path builds P_n: edges (i-1)—i for i = 1..n-1.
func Path(n int) Constructor {
	return func(g *graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := g.addVertices(n)
		for i := 1; i < n; i++ {
			g.addEdge(base+i-1, base+i, cfg)
		}

		return nil
	}
}

// Cycle builds C_n: the path edges followed by the closing edge (n-1)—0.
func Cycle(n int) Constructor {
	return func(g *graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := g.addVertices(n)
		for i := 1; i < n; i++ {
			g.addEdge(base+i-1, base+i, cfg)
		}
		g.addEdge(base+n-1, base, cfg)

		return nil
	}
}

// Star builds a star with center base and leaves base+1..base+n-1.
func Star(n int) Constructor {
	return func(g *graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		base := g.addVertices(n)
		for i := 1; i < n; i++ {
			g.addEdge(base, base+i, cfg)
		}

		return nil
	}
}

// Complete builds K_n: edges i—j for i < j, i ascending then j ascending.
func Complete(n int) Constructor {
	return func(g *graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := g.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.addEdge(base+i, base+j, cfg)
			}
		}

		return nil
	}
}
