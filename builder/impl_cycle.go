// SPDX-License-Identifier: MIT
// Package: dwgraph/builder
//
// impl_cycle.go - directed cycle topology.

package builder

// Cycle builds an n-node directed cycle C_n: 0→1→…→(n-1)→0.
// Requires n ≥ MinCycleNodes (ErrTooFewNodes otherwise).
// Complexity: O(n) nodes + O(n) edges.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		ids := addIDNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := linkEdge(g, cfg, MethodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
