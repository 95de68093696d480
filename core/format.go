// Package core: canonical textual rendering.
//
// One normative format, a pure function of the store:
//
//	<node> (
//	  <src> -> <dst> | U
//	  <src> -> <dst> | W | <weight>
//	)
//
// Nodes in ascending order; within a block, edges in canonical order; a
// node without outgoing edges still emits an empty block; an empty graph
// renders as the empty string.

package core

import (
	"fmt"
	"strings"
)

// String renders the edge as "src -> dst | U" or "src -> dst | W | weight",
// with no trailing line break. Implements fmt.Stringer.
func (e Edge[N, E]) String() string {
	if e.weighted {
		return fmt.Sprintf("%v -> %v | W | %v", e.src, e.dst, e.weight)
	}

	return fmt.Sprintf("%v -> %v | U", e.src, e.dst)
}

// String renders the canonical dump of the whole graph.
// Implements fmt.Stringer. Complexity: O(V + E).
func (g *Graph[N, E]) String() string {
	var sb strings.Builder
	for _, v := range g.order {
		fmt.Fprintf(&sb, "%v (\n", v)
		for _, handle := range g.nodes[v].out {
			sb.WriteString("  ")
			sb.WriteString(handle.String())
			sb.WriteByte('\n')
		}
		sb.WriteString(")\n")
	}

	return sb.String()
}
