// Package core: central type declarations.
//
// This file declares Edge (a closed tagged value covering the weighted and
// unweighted variants), the adjacency record, the Graph container, and the
// constructors. Mutation and query methods live in the methods_*.go files;
// the bidirectional cursor lives in iterator.go.

package core

import (
	"cmp"
	"slices"
)

// Edge is a directed edge between two nodes, optionally carrying a weight.
//
// Edge is a closed tagged value: the weighted flag selects the variant, and
// an unweighted Edge always carries the zero weight, so plain == is exactly
// content equality (src, dst, weightedness-and-weight). Edges are created
// only through NewEdge and NewWeightedEdge; the zero Edge is a valid
// unweighted edge between zero-valued nodes.
type Edge[N cmp.Ordered, E cmp.Ordered] struct {
	src      N
	dst      N
	weight   E
	weighted bool
}

// NewEdge returns an unweighted edge src -> dst.
func NewEdge[N cmp.Ordered, E cmp.Ordered](src, dst N) Edge[N, E] {
	return Edge[N, E]{src: src, dst: dst}
}

// NewWeightedEdge returns a weighted edge src -> dst carrying weight.
func NewWeightedEdge[N cmp.Ordered, E cmp.Ordered](src, dst N, weight E) Edge[N, E] {
	return Edge[N, E]{src: src, dst: dst, weight: weight, weighted: true}
}

// Nodes returns the (source, destination) pair of the edge.
func (e Edge[N, E]) Nodes() (src, dst N) {
	return e.src, e.dst
}

// IsWeighted reports whether the edge carries a weight.
func (e Edge[N, E]) IsWeighted() bool {
	return e.weighted
}

// Weight returns the weight and true for a weighted edge,
// or the zero weight and false for an unweighted one.
func (e Edge[N, E]) Weight() (E, bool) {
	return e.weight, e.weighted
}

// Equal reports content equality: same src, same dst, and same
// weightedness-and-weight. Storage location never participates.
func (e Edge[N, E]) Equal(other Edge[N, E]) bool {
	return e == other
}

// Compare orders edges canonically: by src, then dst, then unweighted
// before weighted, then ascending weight. Compare(x) == 0 iff Equal(x).
func (e Edge[N, E]) Compare(other Edge[N, E]) int {
	if c := cmp.Compare(e.src, other.src); c != 0 {
		return c
	}
	if c := cmp.Compare(e.dst, other.dst); c != 0 {
		return c
	}
	if e.weighted != other.weighted {
		if e.weighted {
			return 1 // weighted sorts after unweighted
		}

		return -1
	}
	if !e.weighted {
		return 0
	}

	return cmp.Compare(e.weight, other.weight)
}

// adjacency is the per-node record: outgoing edge handles in canonical
// order, incoming edge handles in arrival order (membership only).
// A handle appearing in out here also appears in exactly one in slice
// (this very record when the edge is reflexive); the payload is shared,
// never duplicated.
type adjacency[N cmp.Ordered, E cmp.Ordered] struct {
	out []*Edge[N, E]
	in  []*Edge[N, E]
}

// outIndex locates e in the sorted out slice.
// Returns the insertion index and whether an equal edge is present.
func (a *adjacency[N, E]) outIndex(e Edge[N, E]) (int, bool) {
	return slices.BinarySearchFunc(a.out, e, func(h *Edge[N, E], target Edge[N, E]) int {
		return h.Compare(target)
	})
}

// Graph is the generic directed weighted multigraph container.
//
// Storage is a node-keyed map of adjacency records plus a maintained
// ascending key slice (the ordered-map analog). The version counter is
// bumped by every mutating call; iterators capture it and refuse to
// operate once it moves on.
type Graph[N cmp.Ordered, E cmp.Ordered] struct {
	nodes     map[N]*adjacency[N, E]
	order     []N // ascending node keys, kept in lockstep with nodes
	edgeCount int
	version   uint64
}

// NewGraph creates an empty graph.
// Complexity: O(1)
func NewGraph[N cmp.Ordered, E cmp.Ordered]() *Graph[N, E] {
	return &Graph[N, E]{nodes: make(map[N]*adjacency[N, E])}
}

// NewGraphFrom creates a graph containing the given nodes and no edges.
// Duplicate values collapse to a single node; input order is irrelevant
// to the final state.
// Complexity: O(n log n)
func NewGraphFrom[N cmp.Ordered, E cmp.Ordered](nodes ...N) *Graph[N, E] {
	g := NewGraph[N, E]()
	for _, v := range nodes {
		g.addNode(v)
	}

	return g
}

// nodeIndex locates v in the ordered key slice.
// Returns the insertion index and whether v is present.
func (g *Graph[N, E]) nodeIndex(v N) (int, bool) {
	return slices.BinarySearch(g.order, v)
}

// addNode inserts v without touching the version counter.
// Returns false if an equal node already exists.
func (g *Graph[N, E]) addNode(v N) bool {
	if _, exists := g.nodes[v]; exists {
		return false
	}
	g.nodes[v] = &adjacency[N, E]{}
	i, _ := g.nodeIndex(v)
	g.order = slices.Insert(g.order, i, v)

	return true
}
