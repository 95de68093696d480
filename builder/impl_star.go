// SPDX-License-Identifier: MIT
// Package: dwgraph/builder
//
// impl_star.go - star topology.

package builder

// Star builds a star with fixed hub StarCenterID and n-1 leaves: edges
// run hub→leaf. Requires n ≥ MinStarNodes (ErrTooFewNodes otherwise).
// Complexity: O(n) nodes + O(n-1) edges.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		g.InsertNode(StarCenterID)
		for i := 0; i < n-1; i++ {
			leaf := cfg.idFn(i)
			g.InsertNode(leaf)
			if err := linkEdge(g, cfg, MethodStar, StarCenterID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
