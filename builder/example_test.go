package builder_test

import (
	"fmt"

	"github.com/katalvlaran/dwgraph/builder"
)

// ExampleBuildGraph assembles a lettered unweighted cycle and prints its
// canonical dump.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{
			builder.WithUnweighted(),
			builder.WithIDScheme(builder.SymbolIDFn),
		},
		builder.Cycle(3),
	)
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}
	fmt.Print(g)

	// Output:
	// A (
	//   A -> B | U
	// )
	// B (
	//   B -> C | U
	// )
	// C (
	//   C -> A | U
	// )
}
