// SPDX-License-Identifier: MIT
// Package: dwgraph/builder
//
// impl_path.go - directed path topology.

package builder

// Path builds an n-node directed path P_n: 0→1→…→(n-1).
// Requires n ≥ MinPathNodes (ErrTooFewNodes otherwise).
// Complexity: O(n) nodes + O(n-1) edges.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		ids := addIDNodes(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := linkEdge(g, cfg, MethodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
