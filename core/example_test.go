package core_test

import (
	"fmt"

	"github.com/katalvlaran/dwgraph/core"
)

// ExampleGraph demonstrates basic construction, mutation, and the
// canonical dump.
func ExampleGraph() {
	// 1) Create a graph over string nodes with int weights:
	g := core.NewGraphFrom[string, int]("A", "B", "C")

	// 2) Add one unweighted and two weighted edges:
	g.InsertEdge("A", "B")
	g.InsertWeightedEdge("A", "B", 7)
	g.InsertWeightedEdge("B", "C", 3)

	// 3) The dump lists nodes ascending, edges in canonical order:
	fmt.Print(g)

	// Output:
	// A (
	//   A -> B | U
	//   A -> B | W | 7
	// )
	// B (
	//   B -> C | W | 3
	// )
	// C (
	// )
}

// ExampleGraph_iteration walks the flattened edge sequence with a cursor.
func ExampleGraph_iteration() {
	g := core.NewGraphFrom[int, int](1, 2, 3)
	g.InsertWeightedEdge(1, 2, 10)
	g.InsertEdge(1, 3)
	g.InsertWeightedEdge(3, 2, 5)

	for it := g.Begin(); !it.IsEnd(); it.Next() {
		fmt.Println(it.Value())
	}

	// Output:
	// 1 -> 2 | W | 10
	// 1 -> 3 | U
	// 3 -> 2 | W | 5
}

// ExampleGraph_MergeReplaceNode shows the rewrite-and-deduplicate merge.
func ExampleGraph_MergeReplaceNode() {
	g := core.NewGraphFrom[string, int]("A", "B", "C", "D")
	g.InsertWeightedEdge("A", "B", 1)
	g.InsertWeightedEdge("A", "C", 2)
	g.InsertWeightedEdge("A", "D", 3)

	g.MergeReplaceNode("A", "B")
	fmt.Print(g)

	// Output:
	// B (
	//   B -> B | W | 1
	//   B -> C | W | 2
	//   B -> D | W | 3
	// )
	// C (
	// )
	// D (
	// )
}
