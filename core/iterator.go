// Package core: bidirectional traversal cursor.
//
// The Iterator walks the flattened edge sequence of a graph: outgoing
// edges in canonical order within each node, nodes in ascending key order,
// nodes without outgoing edges transparently skipped in both directions.
//
// Validity model: every mutating Graph call bumps the store's version
// counter; an Iterator captures the counter at creation and panics with
// panicInvalidated when used after any mutation. The only iterator that
// survives an EraseAt is the one it returns.

package core

import "cmp"

// Iterator is a bidirectional cursor over a graph's edge sequence.
//
// A value-initialized (zero) Iterator is attached to no graph; it compares
// equal only to another zero Iterator and panics on any other use. The end
// sentinel of a graph is positioned one past the last node key.
type Iterator[N cmp.Ordered, E cmp.Ordered] struct {
	g       *Graph[N, E]
	version uint64
	node    int // index into g.order; len(g.order) means end
	edge    int // index into the node's outgoing slice; 0 at end
}

// Begin returns a cursor at the first edge in canonical order,
// or End() when the graph has no edges.
func (g *Graph[N, E]) Begin() Iterator[N, E] {
	it := Iterator[N, E]{g: g, version: g.version}
	it.skipEmptyForward()

	return it
}

// End returns the end sentinel cursor.
func (g *Graph[N, E]) End() Iterator[N, E] {
	return Iterator[N, E]{g: g, version: g.version, node: len(g.order)}
}

// Find returns a cursor positioned at the unweighted edge src -> dst,
// or End() when no such edge (or either node) exists. Never errors.
func (g *Graph[N, E]) Find(src, dst N) Iterator[N, E] {
	return g.find(NewEdge[N, E](src, dst))
}

// FindWeighted returns a cursor positioned at the weighted edge
// src -> dst with the given weight, or End() when absent.
func (g *Graph[N, E]) FindWeighted(src, dst N, weight E) Iterator[N, E] {
	return g.find(NewWeightedEdge[N, E](src, dst, weight))
}

func (g *Graph[N, E]) find(e Edge[N, E]) Iterator[N, E] {
	ni, found := g.nodeIndex(e.src)
	if !found {
		return g.End()
	}
	ei, found := g.nodes[e.src].outIndex(e)
	if !found {
		return g.End()
	}

	return Iterator[N, E]{g: g, version: g.version, node: ni, edge: ei}
}

// Value returns the flattened (from, to, optional weight) record of the
// currently referenced edge. Panics on the end sentinel or after any
// mutation of the underlying graph.
func (it Iterator[N, E]) Value() Edge[N, E] {
	it.check()
	if it.node >= len(it.g.order) {
		panic(panicDerefEnd)
	}

	return *it.rec().out[it.edge]
}

// Next advances the cursor to the following edge in canonical order,
// skipping nodes with no outgoing edges; it lands on the end sentinel
// after the last edge. Panics when already at end.
func (it *Iterator[N, E]) Next() {
	it.check()
	if it.node >= len(it.g.order) {
		panic(panicAdvanceEnd)
	}
	it.edge++
	if it.edge >= len(it.rec().out) {
		it.node++
		it.edge = 0
		it.skipEmptyForward()
	}
}

// Prev moves the cursor to the preceding edge, skipping nodes with no
// outgoing edges. From the end sentinel it lands on the last edge of the
// last non-empty node. Panics when no predecessor exists.
func (it *Iterator[N, E]) Prev() {
	it.check()
	if it.node >= len(it.g.order) {
		if len(it.g.order) == 0 {
			panic(panicDecEmpty)
		}
		if !it.stepBackFrom(len(it.g.order)) {
			panic(panicDecAllEmpty)
		}

		return
	}
	if it.edge > 0 {
		it.edge--

		return
	}
	if !it.stepBackFrom(it.node) {
		panic(panicDecBeforeBegin)
	}
}

// Equal reports whether two cursors reference the same position: same
// graph, same node position, and (when not at end) same edge position.
// Cursors from different graphs are never equal; zero cursors are equal
// only to each other.
func (it Iterator[N, E]) Equal(other Iterator[N, E]) bool {
	if it.g == nil || other.g == nil {
		return it.g == nil && other.g == nil
	}
	if it.g != other.g {
		return false
	}
	it.check()
	other.check()

	return it.node == other.node && it.edge == other.edge
}

// IsEnd reports whether the cursor is at the end sentinel.
// A zero cursor reports true.
func (it Iterator[N, E]) IsEnd() bool {
	if it.g == nil {
		return true
	}
	it.check()

	return it.node >= len(it.g.order)
}

// EraseAt removes the edge the cursor references and returns a cursor to
// the immediately following edge in traversal order (End() if none
// remains). Every other outstanding iterator, including the argument, is
// invalidated. Panics on the end sentinel, a foreign cursor, or a stale
// cursor.
func (g *Graph[N, E]) EraseAt(it Iterator[N, E]) Iterator[N, E] {
	if it.g == nil {
		panic(panicUnattached)
	}
	if it.g != g {
		panic(panicForeignGraph)
	}
	it.check()
	if it.node >= len(g.order) {
		panic(panicEraseEnd)
	}
	g.version++
	g.removeEdge(it.rec().out[it.edge])

	// The follower keeps the same indices: erasure shifted it into place.
	next := Iterator[N, E]{g: g, version: g.version, node: it.node, edge: it.edge}
	if next.edge >= len(next.rec().out) {
		next.node++
		next.edge = 0
		next.skipEmptyForward()
	}

	return next
}

// EraseRange removes every edge in the half-open range [first, last) by
// repeated EraseAt and returns a cursor at last's pre-erasure position,
// re-derived against the post-erasure store. Panics on foreign or stale
// cursors.
func (g *Graph[N, E]) EraseRange(first, last Iterator[N, E]) Iterator[N, E] {
	if first.g == nil || last.g == nil {
		panic(panicUnattached)
	}
	if first.g != g || last.g != g {
		panic(panicForeignGraph)
	}
	first.check()
	last.check()

	stopAtEnd := last.node >= len(g.order)
	var stop Edge[N, E]
	if !stopAtEnd {
		stop = last.Value()
	}
	it := first
	for !it.IsEnd() {
		if !stopAtEnd && it.Value() == stop {
			break
		}
		it = g.EraseAt(it)
	}

	return it
}

// check panics when the cursor is unattached or the graph has mutated
// since the cursor was obtained.
func (it Iterator[N, E]) check() {
	if it.g == nil {
		panic(panicUnattached)
	}
	if it.version != it.g.version {
		panic(panicInvalidated)
	}
}

// rec returns the adjacency record of the cursor's current node.
func (it Iterator[N, E]) rec() *adjacency[N, E] {
	return it.g.nodes[it.g.order[it.node]]
}

// skipEmptyForward advances past nodes with no outgoing edges, landing on
// the end sentinel when none remain. The edge index must already be 0.
func (it *Iterator[N, E]) skipEmptyForward() {
	for it.node < len(it.g.order) && len(it.rec().out) == 0 {
		it.node++
	}
}

// stepBackFrom positions the cursor on the last edge of the closest
// non-empty node strictly before index bound. Reports whether one exists.
func (it *Iterator[N, E]) stepBackFrom(bound int) bool {
	for i := bound - 1; i >= 0; i-- {
		if out := it.g.nodes[it.g.order[i]].out; len(out) > 0 {
			it.node, it.edge = i, len(out)-1

			return true
		}
	}

	return false
}
