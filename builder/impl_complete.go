// SPDX-License-Identifier: MIT
// Package: dwgraph/builder
//
// impl_complete.go - complete digraph topology.

package builder

// Complete builds the complete digraph K_n on n nodes: one edge u→v for
// every ordered pair with u ≠ v (no loops).
// Requires n ≥ MinCompleteNodes (ErrTooFewNodes otherwise).
// Complexity: O(n) nodes + O(n²) edges.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		ids := addIDNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := linkEdge(g, cfg, MethodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
