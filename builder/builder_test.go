// Package builder_test verifies topology constructors, option resolution,
// determinism, and idempotent re-runs.

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dwgraph/builder"
)

func TestBuildGraph_Cycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(4))
	require.NoError(t, err)

	require.Equal(t, []string{"0", "1", "2", "3"}, g.Nodes())
	require.Equal(t, 4, g.EdgeCount())
	for _, pair := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "0"}} {
		connected, err := g.IsConnected(pair[0], pair[1])
		require.NoError(t, err)
		require.True(t, connected, "cycle edge %s->%s must exist", pair[0], pair[1])
	}
}

func TestBuildGraph_PathUnweighted(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithUnweighted(), builder.WithIDScheme(builder.SymbolIDFn)},
		builder.Path(3),
	)
	require.NoError(t, err)

	want := "A (\n" +
		"  A -> B | U\n" +
		")\n" +
		"B (\n" +
		"  B -> C | U\n" +
		")\n" +
		"C (\n" +
		")\n"
	require.Equal(t, want, g.String())
}

func TestBuildGraph_Star(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Star(4))
	require.NoError(t, err)

	require.Equal(t, []string{"0", "1", "2", builder.StarCenterID}, g.Nodes())
	dsts, err := g.Connections(builder.StarCenterID)
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2"}, dsts)
}

func TestBuildGraph_Complete(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(3))
	require.NoError(t, err)

	// K_3: every ordered pair, no loops.
	require.Equal(t, 6, g.EdgeCount())
	connected, err := g.IsConnected("0", "0")
	require.NoError(t, err)
	require.False(t, connected)
}

func TestBuildGraph_TooFewNodes(t *testing.T) {
	for _, tc := range []struct {
		name string
		cons builder.Constructor
	}{
		{"Cycle", builder.Cycle(2)},
		{"Path", builder.Path(1)},
		{"Star", builder.Star(1)},
		{"Complete", builder.Complete(0)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.cons)
			require.ErrorIs(t, err, builder.ErrTooFewNodes)
		})
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_SeededUniformWeightsDeterministic(t *testing.T) {
	build := func() *builder.Graph {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{
				builder.WithSeed(42),
				builder.WithWeightFn(builder.UniformWeightFn(1, 100)),
			},
			builder.Cycle(5),
		)
		require.NoError(t, err)

		return g
	}

	// Same seed and composition produce structurally identical graphs.
	require.True(t, build().Equal(build()))
}

func TestBuildGraph_IdempotentRerun(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(3), builder.Cycle(3))
	require.NoError(t, err)

	// The second pass re-inserts the same nodes and edges: all no-ops.
	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 3, g.EdgeCount())
}

func TestIDFn_Schemes(t *testing.T) {
	require.Equal(t, "0", builder.DefaultIDFn(0))
	require.Equal(t, "42", builder.DefaultIDFn(42))
	require.Equal(t, "A", builder.SymbolIDFn(0))
	require.Equal(t, "Z", builder.SymbolIDFn(25))
	require.Equal(t, "ff", builder.HexIDFn(255))

	require.Panics(t, func() { builder.SymbolIDFn(26) })
	require.Panics(t, func() { builder.HexIDFn(-1) })
}

func TestWeightFn_Validation(t *testing.T) {
	require.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })

	// Unseeded uniform builds fall back to min deterministically.
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithWeightFn(builder.UniformWeightFn(7, 9))},
		builder.Path(2),
	)
	require.NoError(t, err)
	edges, err := g.Edges("0", "1")
	require.NoError(t, err)
	require.Len(t, edges, 1)
	weight, ok := edges[0].Weight()
	require.True(t, ok)
	require.Equal(t, int64(7), weight)
}
