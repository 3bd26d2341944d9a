// Package boruvka defines the Edge value and the sentinel errors.
package boruvka

import (
	"errors"
	"fmt"
)

// Sentinel errors for construction and result access.
var (
	// ErrInvalidInput is matched (errors.Is) by every validation failure of New.
	ErrInvalidInput = errors.New("boruvka: invalid input")

	// ErrNoWorkers indicates a worker count below one.
	ErrNoWorkers = errors.New("boruvka: worker count must be positive")

	// ErrNegativeVertices indicates a negative vertex count.
	ErrNegativeVertices = errors.New("boruvka: negative vertex count")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("boruvka: vertex out of range")

	// ErrNotComputed indicates GetBuiltMST was called before CalcMST finished.
	ErrNotComputed = errors.New("boruvka: spanning forest not computed yet")
)

// Edge is an undirected, weighted edge between vertices From and To.
// Two edges are equal when all three fields are equal.
type Edge struct {
	// From is one endpoint, a vertex index in [0, n).
	From int

	// To is the other endpoint, a vertex index in [0, n).
	To int

	// Cost is the edge weight; negative costs are allowed.
	Cost int64
}

// Less orders edges by Cost only.
func (e Edge) Less(other Edge) bool {
	return e.Cost < other.Cost
}

// String renders the edge as "from-to(cost)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.From, e.To, e.Cost)
}

// Validate checks the arguments New would receive, without the worker count.
// It is exported so that sequential reference implementations reject exactly
// the same inputs.
func Validate(edges []Edge, n int) error {
	if n < 0 {
		return fmt.Errorf("n=%d: %w: %w", n, ErrInvalidInput, ErrNegativeVertices)
	}
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("edge %d (%s) with n=%d: %w: %w", i, e, n, ErrInvalidInput, ErrVertexOutOfRange)
		}
	}

	return nil
}
