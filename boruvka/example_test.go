package boruvka_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/msf/boruvka"
)

// ExampleBoruvka computes the spanning forest of two disjoint triangles with
// four workers. The forest has one tree per triangle.
func ExampleBoruvka() {
	edges := []boruvka.Edge{
		{From: 0, To: 1, Cost: 4}, {From: 1, To: 2, Cost: 6}, {From: 2, To: 0, Cost: 5},
		{From: 3, To: 4, Cost: 1}, {From: 4, To: 5, Cost: 2}, {From: 5, To: 3, Cost: 3},
	}
	b, err := boruvka.New(edges, 6, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	total := b.CalcMST()
	forest, _ := b.GetBuiltMST()
	// Discovery order is not deterministic; sort for printing.
	sort.Slice(forest, func(i, j int) bool { return forest[i].Cost < forest[j].Cost })

	fmt.Println("Total:", total, "Components:", b.Components())
	fmt.Println("Edges:", forest)
	// Output:
	// Total: 12 Components: 2
	// Edges: [3-4(1) 4-5(2) 0-1(4) 2-0(5)]
}

// ExampleSpanningForest shows that among parallel edges the cheapest wins.
func ExampleSpanningForest() {
	edges := []boruvka.Edge{{From: 0, To: 1, Cost: 3}, {From: 0, To: 1, Cost: 1}, {From: 0, To: 1, Cost: 2}}
	forest, total, err := boruvka.SpanningForest(edges, 4, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(total, forest)
	// Output: 1 [0-1(1)]
}
