// Package core: edge lifecycle and edge-level queries.
//
// All insertion/erasure funnels through the shared internals in methods.go
// so the multi-edge invariant (one unweighted edge per pair, weighted edges
// with pairwise distinct weights) is enforced in exactly one place.

package core

import "slices"

// InsertEdge inserts an unweighted edge src -> dst.
// Both endpoints must already exist (ErrInsertEdge otherwise). Returns
// false when an equal edge is already present. Reflexive edges are
// permitted. Invalidates every outstanding iterator.
// Complexity: O(log V + log deg(src)) search + O(deg(src)) shift.
func (g *Graph[N, E]) InsertEdge(src, dst N) (bool, error) {
	return g.insertCheckedEdge(NewEdge[N, E](src, dst))
}

// InsertWeightedEdge inserts a weighted edge src -> dst carrying weight.
// Same contract as InsertEdge; edges between the same pair are
// distinguished by weight.
func (g *Graph[N, E]) InsertWeightedEdge(src, dst N, weight E) (bool, error) {
	return g.insertCheckedEdge(NewWeightedEdge[N, E](src, dst, weight))
}

func (g *Graph[N, E]) insertCheckedEdge(e Edge[N, E]) (bool, error) {
	_, srcExists := g.nodes[e.src]
	_, dstExists := g.nodes[e.dst]
	if !srcExists || !dstExists {
		return false, ErrInsertEdge
	}
	g.version++

	return g.insertEdge(e), nil
}

// EraseEdge removes the unweighted edge src -> dst.
// Both endpoints must exist (ErrEraseEdge otherwise). Returns whether a
// matching edge was found and removed. Invalidates every outstanding
// iterator.
// Complexity: O(log V + deg).
func (g *Graph[N, E]) EraseEdge(src, dst N) (bool, error) {
	return g.eraseCheckedEdge(NewEdge[N, E](src, dst))
}

// EraseWeightedEdge removes the weighted edge src -> dst with the given
// weight. Same contract as EraseEdge.
func (g *Graph[N, E]) EraseWeightedEdge(src, dst N, weight E) (bool, error) {
	return g.eraseCheckedEdge(NewWeightedEdge[N, E](src, dst, weight))
}

func (g *Graph[N, E]) eraseCheckedEdge(e Edge[N, E]) (bool, error) {
	rec, srcExists := g.nodes[e.src]
	_, dstExists := g.nodes[e.dst]
	if !srcExists || !dstExists {
		return false, ErrEraseEdge
	}
	g.version++
	i, found := rec.outIndex(e)
	if !found {
		return false, nil
	}
	g.removeEdge(rec.out[i])

	return true, nil
}

// IsConnected reports whether any edge src -> dst exists.
// Both endpoints must exist (ErrIsConnected otherwise).
// Complexity: O(log V + log deg(src)).
func (g *Graph[N, E]) IsConnected(src, dst N) (bool, error) {
	rec, srcExists := g.nodes[src]
	_, dstExists := g.nodes[dst]
	if !srcExists || !dstExists {
		return false, ErrIsConnected
	}
	i := rec.lowerBound(dst)

	return i < len(rec.out) && rec.out[i].dst == dst, nil
}

// Edges returns copies of all edges src -> dst in canonical order:
// the unweighted edge first if present, then weighted edges ascending by
// weight. Both endpoints must exist (ErrEdges otherwise).
// Complexity: O(log deg(src) + k) for k returned edges.
func (g *Graph[N, E]) Edges(src, dst N) ([]Edge[N, E], error) {
	rec, srcExists := g.nodes[src]
	_, dstExists := g.nodes[dst]
	if !srcExists || !dstExists {
		return nil, ErrEdges
	}
	var res []Edge[N, E]
	for i := rec.lowerBound(dst); i < len(rec.out) && rec.out[i].dst == dst; i++ {
		res = append(res, *rec.out[i])
	}

	return res, nil
}

// Connections returns the ascending, duplicate-free destination set of
// src's outgoing edges. src must exist (ErrConnections otherwise).
// Complexity: O(deg(src)).
func (g *Graph[N, E]) Connections(src N) ([]N, error) {
	rec, exists := g.nodes[src]
	if !exists {
		return nil, ErrConnections
	}
	// out is sorted by dst first, so duplicates are adjacent.
	var res []N
	for _, handle := range rec.out {
		if len(res) == 0 || res[len(res)-1] != handle.dst {
			res = append(res, handle.dst)
		}
	}

	return res, nil
}

// EdgeCount returns the total number of stored edges. O(1).
func (g *Graph[N, E]) EdgeCount() int {
	return g.edgeCount
}

// lowerBound returns the index of the first outgoing edge whose
// destination is >= dst. Within one node's outgoing slice the destination
// is the leading sort key, so edges to one destination form one run.
func (a *adjacency[N, E]) lowerBound(dst N) int {
	i, _ := slices.BinarySearchFunc(a.out, dst, func(h *Edge[N, E], target N) int {
		// Collapse the weight tie-breaks: every edge to target compares
		// equal, so the search lands on the first edge of the run.
		switch {
		case h.dst < target:
			return -1
		case h.dst > target:
			return 1
		default:
			return 0
		}
	})

	return i
}
