// Package core_test contains shared fixtures for dwgraph/core tests.
//
// Purpose:
//   - Provide small, deterministic fixtures for Graph[N, E].
//   - Avoid magic values in test bodies via named constants.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dwgraph/core"
)

// Common node values used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"

	Node1 = 1
	Node2 = 2
	Node3 = 3
	Node4 = 4
	Node5 = 5
	Node6 = 6

	NodeIsolated = 64
)

// Common weights used across core tests.
const (
	Weight1  = 1
	Weight2  = 2
	Weight3  = 3
	Weight5  = 5
	Weight10 = 10
)

// intEdge is a (src, dst, weight) triple for table-driven fixtures;
// a nil weight inserts the unweighted edge.
type intEdge struct {
	src, dst int
	weight   *int
}

func w(v int) *int { return &v }

// buildIntGraph inserts all nodes and edges, failing the test on any error.
func buildIntGraph(t *testing.T, nodes []int, edges []intEdge) *core.Graph[int, int] {
	t.Helper()
	g := core.NewGraphFrom[int, int](nodes...)
	for _, e := range edges {
		var (
			ok  bool
			err error
		)
		if e.weight == nil {
			ok, err = g.InsertEdge(e.src, e.dst)
		} else {
			ok, err = g.InsertWeightedEdge(e.src, e.dst, *e.weight)
		}
		require.NoError(t, err)
		require.True(t, ok, "fixture edge (%d,%d) must be new", e.src, e.dst)
	}

	return g
}

// scenarioNodes / scenarioEdges reproduce the reference twelve-edge graph
// with one isolated node, used by formatting and traversal tests.
var (
	scenarioNodes = []int{Node1, Node2, Node3, Node4, Node5, Node6, NodeIsolated}

	scenarioEdges = []intEdge{
		{4, 1, w(-4)},
		{3, 2, w(2)},
		{2, 4, nil},
		{2, 4, w(2)},
		{2, 1, w(1)},
		{4, 1, nil},
		{6, 2, w(5)},
		{6, 3, w(10)},
		{1, 5, w(-1)},
		{3, 6, w(-8)},
		{4, 5, w(3)},
		{5, 2, nil},
	}
)
