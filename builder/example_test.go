package builder_test

import (
	"fmt"

	"github.com/katalvlaran/msf/builder"
)

// ExampleBuild composes two triangles and a path into one disjoint union.
func ExampleBuild() {
	n, edges, err := builder.Build(
		[]builder.Option{builder.WithCostFn(builder.ConstantCostFn(2))},
		builder.Cycle(3), builder.Cycle(3), builder.Path(2),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n, len(edges))
	fmt.Println(edges[3], edges[6])
	// Output:
	// 8 7
	// 3-4(2) 6-7(2)
}
