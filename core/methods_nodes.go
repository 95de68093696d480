// Package core: node lifecycle and node-level queries.

package core

import "slices"

// InsertNode inserts a new node with the given value.
// Returns false (and leaves the node set unchanged) when an equal node
// already exists. Invalidates every outstanding iterator.
// Complexity: O(log V) search + O(V) key-slice shift.
func (g *Graph[N, E]) InsertNode(v N) bool {
	g.version++

	return g.addNode(v)
}

// ReplaceNode replaces every occurrence of old with new.
// Returns ErrReplaceNode when old is absent; returns false without effect
// when new already exists. Otherwise every edge incident to old is
// re-created with the endpoint rewritten to new (rewrites colliding with
// an existing edge are dropped), and old is removed.
// Invalidates every outstanding iterator.
// Complexity: O(deg(old) · log E') where E' is the rewritten degree.
func (g *Graph[N, E]) ReplaceNode(oldData, newData N) (bool, error) {
	if _, exists := g.nodes[oldData]; !exists {
		return false, ErrReplaceNode
	}
	g.version++
	if _, exists := g.nodes[newData]; exists {
		return false, nil
	}
	g.rewriteNode(oldData, newData, true)

	return true, nil
}

// MergeReplaceNode redirects every edge incident to old onto the existing
// node new, deduplicating rewrites against edges already present, then
// removes old. Returns ErrMergeReplaceNode when either node is absent.
// old == new is a no-op. Invalidates every outstanding iterator.
// Complexity: O(deg(old) · log E').
func (g *Graph[N, E]) MergeReplaceNode(oldData, newData N) error {
	_, oldExists := g.nodes[oldData]
	_, newExists := g.nodes[newData]
	if !oldExists || !newExists {
		return ErrMergeReplaceNode
	}
	g.version++
	if oldData == newData {
		return nil
	}
	g.rewriteNode(oldData, newData, false)

	return nil
}

// EraseNode removes v and every edge incident to it, in both directions.
// Returns false when v is absent. Invalidates every outstanding iterator.
// Complexity: O(deg(v) + V).
func (g *Graph[N, E]) EraseNode(v N) bool {
	g.version++

	return g.removeNode(v)
}

// IsNode reports whether a node with the given value exists.
// Complexity: O(1).
func (g *Graph[N, E]) IsNode(v N) bool {
	_, exists := g.nodes[v]

	return exists
}

// Empty reports whether the graph contains no nodes.
func (g *Graph[N, E]) Empty() bool {
	return len(g.order) == 0
}

// Nodes returns a copy of all node values in ascending order.
// Complexity: O(V).
func (g *Graph[N, E]) Nodes() []N {
	return slices.Clone(g.order)
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph[N, E]) NodeCount() int {
	return len(g.order)
}
