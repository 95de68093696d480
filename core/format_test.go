// Package core_test verifies the canonical dump format.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dwgraph/core"
)

func TestString_EmptyGraphRendersNothing(t *testing.T) {
	g := core.NewGraph[int, int]()

	require.Equal(t, "", g.String())
}

func TestString_IsolatedNodesEmitEmptyBlocks(t *testing.T) {
	g := core.NewGraphFrom[string, float64](NodeA, NodeB, NodeC)
	ok, err := g.InsertWeightedEdge(NodeA, NodeB, 1.5)
	require.NoError(t, err)
	require.True(t, ok)

	want := "A (\n" +
		"  A -> B | W | 1.5\n" +
		")\n" +
		"B (\n" +
		")\n" +
		"C (\n" +
		")\n"
	require.Equal(t, want, g.String())
}

func TestString_MultiEdgesInCanonicalOrder(t *testing.T) {
	g := core.NewGraphFrom[int, int](Node1, Node2)
	for _, insert := range []func() (bool, error){
		func() (bool, error) { return g.InsertEdge(Node1, Node2) },
		func() (bool, error) { return g.InsertWeightedEdge(Node1, Node2, Weight5) },
		func() (bool, error) { return g.InsertWeightedEdge(Node1, Node2, Weight3) },
	} {
		ok, err := insert()
		require.NoError(t, err)
		require.True(t, ok)
	}

	want := "1 (\n" +
		"  1 -> 2 | U\n" +
		"  1 -> 2 | W | 3\n" +
		"  1 -> 2 | W | 5\n" +
		")\n" +
		"2 (\n" +
		")\n"
	require.Equal(t, want, g.String())
}

// TestString_ReferenceScenario locks in the normative dump of the
// twelve-edge integer graph with isolated node 64.
func TestString_ReferenceScenario(t *testing.T) {
	g := buildIntGraph(t, scenarioNodes, scenarioEdges)

	want := "1 (\n" +
		"  1 -> 5 | W | -1\n" +
		")\n" +
		"2 (\n" +
		"  2 -> 1 | W | 1\n" +
		"  2 -> 4 | U\n" +
		"  2 -> 4 | W | 2\n" +
		")\n" +
		"3 (\n" +
		"  3 -> 2 | W | 2\n" +
		"  3 -> 6 | W | -8\n" +
		")\n" +
		"4 (\n" +
		"  4 -> 1 | U\n" +
		"  4 -> 1 | W | -4\n" +
		"  4 -> 5 | W | 3\n" +
		")\n" +
		"5 (\n" +
		"  5 -> 2 | U\n" +
		")\n" +
		"6 (\n" +
		"  6 -> 2 | W | 5\n" +
		"  6 -> 3 | W | 10\n" +
		")\n" +
		"64 (\n" +
		")\n"
	require.Equal(t, want, g.String())
}
