package boruvka

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/msf/concurrent"
)

// span is a half-open index range [lo, hi).
type span struct {
	lo, hi int
}

// block returns the i-th of `parts` contiguous near-equal blocks of [0, size).
// Trailing blocks may be empty when size < parts.
func block(i, parts, size int) span {
	length := (size + parts - 1) / parts
	lo := min(i*length, size)
	hi := min(lo+length, size)

	return span{lo: lo, hi: hi}
}

// round runs one fork-join Borůvka round and returns the number of merges.
// Every worker must reach both barriers, so all W goroutines are started even
// when some blocks are empty.
func (b *Boruvka) round() int {
	var (
		g          errgroup.Group
		merged     atomic.Int64
		discovered = concurrent.NewBarrier(b.workers)
		collected  = concurrent.NewBarrier(b.workers)
	)
	parties := discovered.Parties()
	for w := 0; w < parties; w++ {
		edges := block(w, parties, len(b.edges))
		vertices := block(w, parties, b.vertices)
		g.Go(func() error {
			b.discover(edges)
			discovered.Arrive()

			winners := b.collect(edges)
			collected.Arrive()

			merged.Add(int64(b.merge(winners)))
			b.clear(vertices)

			return nil
		})
	}
	// The group is a plain fork/join: every worker returns nil.
	_ = g.Wait()

	return int(merged.Load())
}

// better reports whether edge i beats edge j: cheaper, or equally cheap with a
// smaller input index.
func (b *Boruvka) better(i, j int) bool {
	ci, cj := b.edges[i].Cost, b.edges[j].Cost

	return ci < cj || (ci == cj && i < j)
}

// offer installs edge i as the cheapest outgoing edge of component `leader`
// unless the slot already holds an edge at least as good.
func (b *Boruvka) offer(i, leader int) {
	slot := &b.cheapest[leader]
	next := &b.cands[i]
	for {
		cur := slot.Load()
		if cur != nil && !b.better(i, cur.index) {
			return
		}
		if slot.CompareAndSwap(cur, next) {
			return
		}
	}
}

// discover offers every inter-component edge of the block to both components.
// No Unite runs during this phase, so leaders are stable and the
// same-component test is exact.
func (b *Boruvka) discover(s span) {
	for i := s.lo; i < s.hi; i++ {
		e := b.edges[i]
		from, to := b.dsu.FindLeader(e.From), b.dsu.FindLeader(e.To)
		if from == to {
			continue
		}
		b.offer(i, from)
		b.offer(i, to)
	}
}

// collect returns the edges of the block that won the slot of either
// endpoint's component.
func (b *Boruvka) collect(s span) []int {
	var winners []int
	for i := s.lo; i < s.hi; i++ {
		e, c := b.edges[i], &b.cands[i]
		if b.cheapest[b.dsu.FindLeader(e.From)].Load() == c ||
			b.cheapest[b.dsu.FindLeader(e.To)].Load() == c {
			winners = append(winners, i)
		}
	}

	return winners
}

// merge unites the winners; Unite's own check makes a repeated or now
// redundant edge a no-op. Returns the number of committed merges.
func (b *Boruvka) merge(winners []int) int {
	merged := 0
	for _, i := range winners {
		e := b.edges[i]
		if b.dsu.Unite(e.From, e.To) {
			b.cost.Add(e.Cost)
			b.forest.PushBack(e)
			merged++
		}
	}

	return merged
}

// clear resets the slots of the vertex block. Blocks are disjoint across
// workers, and no worker reads slots after the second barrier.
func (b *Boruvka) clear(s span) {
	for v := s.lo; v < s.hi; v++ {
		b.cheapest[v].Store(nil)
	}
}
