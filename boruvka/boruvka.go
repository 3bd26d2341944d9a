// Package boruvka provides the Boruvka coordinator: construction, the round
// loop and result access.
package boruvka

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/msf/concurrent"
	"github.com/katalvlaran/msf/dsu"
)

// candidate marks edge `index` as the best known outgoing edge of a component.
// Slots hold *candidate; nil means "no candidate this round".
type candidate struct {
	index int
}

// Boruvka computes a minimum spanning forest over a fixed edge list.
// Build it with New, run CalcMST once, then read GetBuiltMST.
type Boruvka struct {
	workers  int
	vertices int
	edges    []Edge
	cands    []candidate                 // cands[i] is the slot value for edge i
	cheapest []atomic.Pointer[candidate] // per component leader, reset every round
	dsu      *dsu.Atomic
	forest   *concurrent.AppendVector[Edge]
	cost     atomic.Int64

	once     sync.Once
	computed atomic.Bool
	rounds   int

	logger  *zap.Logger
	metrics *Metrics
}

// New validates the input and prepares a single-use computation over n
// vertices with `workers` goroutines per round. The edge slice is copied.
//
// Errors (all match ErrInvalidInput):
//   - ErrNoWorkers        : workers < 1.
//   - ErrNegativeVertices : n < 0.
//   - ErrVertexOutOfRange : some endpoint outside [0, n).
//
// Complexity: O(E + V).
func New(edges []Edge, n, workers int, opts ...Option) (*Boruvka, error) {
	if workers < 1 {
		return nil, fmt.Errorf("New: workers=%d: %w: %w", workers, ErrInvalidInput, ErrNoWorkers)
	}
	if err := Validate(edges, n); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	o := newOptions(opts...)
	b := &Boruvka{
		workers:  workers,
		vertices: n,
		edges:    append([]Edge(nil), edges...),
		cands:    make([]candidate, len(edges)),
		cheapest: make([]atomic.Pointer[candidate], n), // zero value: nil, no candidate
		dsu:      dsu.NewAtomic(n),
		forest:   concurrent.NewAppendVector[Edge](max(n-1, 0)),
		logger:   o.logger,
		metrics:  o.metrics,
	}
	for i := range b.cands {
		b.cands[i].index = i
	}

	return b, nil
}

// CalcMST runs Borůvka rounds until the component count stops changing and
// returns the total cost of the spanning forest. Only the first call computes;
// later calls return the same total.
func (b *Boruvka) CalcMST() int64 {
	b.once.Do(b.run)

	return b.cost.Load()
}

// GetBuiltMST returns a copy of the accepted edges in no particular order.
// For a disconnected graph this is a spanning forest, not a single tree.
// Returns ErrNotComputed until CalcMST has finished. Repeated calls return the
// same content.
func (b *Boruvka) GetBuiltMST() ([]Edge, error) {
	if !b.computed.Load() {
		return nil, ErrNotComputed
	}

	return b.forest.Snapshot(), nil
}

// Components returns the live component count: n before CalcMST, the number of
// connected components of the input after it.
func (b *Boruvka) Components() int {
	return b.dsu.GetComponentsQuantity()
}

// Rounds returns the number of rounds executed by CalcMST, including the last
// one that found nothing to merge. Zero before CalcMST.
func (b *Boruvka) Rounds() int {
	if !b.computed.Load() {
		return 0
	}

	return b.rounds
}

// SpanningForest is the one-shot form: it validates, computes and returns the
// forest edges with their total cost.
func SpanningForest(edges []Edge, n, workers int, opts ...Option) ([]Edge, int64, error) {
	b, err := New(edges, n, workers, opts...)
	if err != nil {
		return nil, 0, err
	}
	total := b.CalcMST()
	forest, err := b.GetBuiltMST()
	if err != nil {
		return nil, 0, err
	}

	return forest, total, nil
}

// run is the fixed-point loop behind CalcMST.
func (b *Boruvka) run() {
	start := time.Now()
	for {
		before := b.dsu.GetComponentsQuantity()
		roundStart := time.Now()
		merged := b.round()
		after := b.dsu.GetComponentsQuantity()
		b.rounds++

		took := time.Since(roundStart)
		b.metrics.observeRound(merged, took)
		b.logger.Debug("boruvka round finished",
			zap.Int("round", b.rounds),
			zap.Int("components-before", before),
			zap.Int("components-after", after),
			zap.Int("merged", merged),
			zap.Duration("took", took),
		)

		if after == before {
			break
		}
	}

	b.metrics.observeRun()
	b.computed.Store(true)
	b.logger.Info("spanning forest computed",
		zap.Int("vertices", b.vertices),
		zap.Int("edges", len(b.edges)),
		zap.Int("workers", b.workers),
		zap.Int("rounds", b.rounds),
		zap.Int("components", b.dsu.GetComponentsQuantity()),
		zap.Int("forest-edges", b.forest.Len()),
		zap.Int64("cost", b.cost.Load()),
		zap.Duration("took", time.Since(start)),
	)
}
