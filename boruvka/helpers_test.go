package boruvka_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/msf/boruvka"
	"github.com/katalvlaran/msf/builder"
	"github.com/stretchr/testify/require"
)

// workerCounts is the worker-count grid every property is checked against.
var workerCounts = []int{1, 2, 4, 8, 16, 32}

// sorted returns a copy of edges ordered by (Cost, From, To) so that forests
// emitted in nondeterministic discovery order can be compared.
func sorted(edges []boruvka.Edge) []boruvka.Edge {
	out := append([]boruvka.Edge(nil), edges...)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Cost != b.Cost {
			return a.Cost < b.Cost
		}
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})

	return out
}

// totalCost sums the costs of edges.
func totalCost(edges []boruvka.Edge) int64 {
	var total int64
	for _, e := range edges {
		total += e.Cost
	}

	return total
}

// mixedGraph builds a deterministic disconnected multigraph: a sparse linked
// graph, a random tree, a G(n,p) sample with isolated vertices and one lone
// vertex. Costs come from a narrow range so that ties are frequent.
func mixedGraph(t testing.TB, seed int64) (int, []boruvka.Edge) {
	n, edges, err := builder.Build(
		[]builder.Option{builder.WithSeed(seed), builder.WithCostRange(-5, 20)},
		builder.LinkedGraph(300, false),
		builder.Tree(80),
		builder.RandomSparse(60, 0.03),
		builder.Path(1),
	)
	require.NoError(t, err)

	return n, edges
}
