// SPDX-License-Identifier: MIT
// Package: msf/builder
//
// api.go - the Build orchestrator and the shared edge accumulator.

package builder

import (
	"fmt"

	"github.com/katalvlaran/msf/boruvka"
)

// graph accumulates vertices and edges while constructors run.
type graph struct {
	n     int
	edges []boruvka.Edge
}

// addVertices reserves k new vertices and returns the index of the first one.
func (g *graph) addVertices(k int) int {
	base := g.n
	g.n += k

	return base
}

// addEdge appends an edge u—v with the next configured cost.
func (g *graph) addEdge(u, v int, cfg builderConfig) {
	g.edges = append(g.edges, boruvka.Edge{From: u, To: v, Cost: cfg.cost()})
}

// Constructor appends one vertex block and its edges to g. Constructors MUST
// validate parameters before mutating g and return sentinel errors, never panic.
type Constructor func(g *graph, cfg builderConfig) error

// Build resolves opts and applies all constructors in order, returning the
// vertex count and the edge list of the disjoint union.
// Any constructor error is wrapped with "Build: %w" and returned immediately.
func Build(opts []Option, cons ...Constructor) (int, []boruvka.Edge, error) {
	cfg := newBuilderConfig(opts...)
	g := &graph{}
	for i, fn := range cons {
		if fn == nil {
			return 0, nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return 0, nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g.n, g.edges, nil
}
