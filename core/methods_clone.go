// Package core: value-semantics copying and structural comparison.

package core

import "slices"

// CloneEmpty returns a new graph with the same node set and no edges.
// Node values are copied; the clone shares no storage with the receiver.
// Complexity: O(V)
func (g *Graph[N, E]) CloneEmpty() *Graph[N, E] {
	clone := NewGraph[N, E]()
	clone.order = slices.Clone(g.order)
	for v := range g.nodes {
		clone.nodes[v] = &adjacency[N, E]{}
	}

	return clone
}

// Clone returns a deep copy of the graph: every node value and every edge
// payload is re-allocated, so the clone and the receiver are fully
// independent: mutating one never affects the other.
// Complexity: O(V + E)
func (g *Graph[N, E]) Clone() *Graph[N, E] {
	clone := g.CloneEmpty()
	// Walk outgoing slices in node order: each payload is allocated once
	// and linked into both the new src's out and the new dst's in, which
	// preserves the single-ownership, two-reference shape.
	for _, v := range g.order {
		rec := g.nodes[v]
		crec := clone.nodes[v]
		crec.out = make([]*Edge[N, E], len(rec.out))
		for i, handle := range rec.out {
			payload := *handle
			crec.out[i] = &payload
			clone.nodes[payload.dst].in = append(clone.nodes[payload.dst].in, &payload)
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Equal reports structural equality: the same node set and, per node, an
// identical ordered outgoing-edge sequence. Payload addresses never
// participate in the comparison.
// Complexity: O(V + E)
func (g *Graph[N, E]) Equal(other *Graph[N, E]) bool {
	if g == other {
		return true
	}
	if other == nil || len(g.order) != len(other.order) {
		return false
	}
	for i, v := range g.order {
		if other.order[i] != v {
			return false
		}
		a, b := g.nodes[v].out, other.nodes[v].out
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if *a[j] != *b[j] {
				return false
			}
		}
	}

	return true
}
