// Package core: shared mutation internals.
//
// Exported mutation methods live in methods_nodes.go and methods_edges.go;
// this file holds the linking/unlinking primitives they all funnel through,
// plus Clear. Every exported mutator bumps the version counter exactly once,
// right after argument validation succeeds, so a failed call never
// invalidates iterators and a successful (even no-op) call always does.

package core

import "slices"

// insertEdge links e into the store, deduplicating against an equal edge.
// Both endpoints must already exist. The payload is allocated once and
// shared by src's outgoing and dst's incoming slices (the same record
// twice for a reflexive edge).
// Returns false when an equal edge is already present.
func (g *Graph[N, E]) insertEdge(e Edge[N, E]) bool {
	src := g.nodes[e.src]
	i, found := src.outIndex(e)
	if found {
		return false
	}
	handle := &e
	src.out = slices.Insert(src.out, i, handle)
	g.nodes[e.dst].in = append(g.nodes[e.dst].in, handle)
	g.edgeCount++

	return true
}

// removeEdge unlinks the handle from both adjacency slices.
// The handle must be resident in the store.
func (g *Graph[N, E]) removeEdge(handle *Edge[N, E]) {
	src := g.nodes[handle.src]
	if i, found := src.outIndex(*handle); found {
		src.out = slices.Delete(src.out, i, i+1)
	}
	dst := g.nodes[handle.dst]
	for i, h := range dst.in {
		if h == handle {
			dst.in = slices.Delete(dst.in, i, i+1)
			break
		}
	}
	g.edgeCount--
}

// removeNode erases v's record and every incident edge, without touching
// the version counter. Returns false when v is absent.
func (g *Graph[N, E]) removeNode(v N) bool {
	rec, exists := g.nodes[v]
	if !exists {
		return false
	}
	// Unlink outgoing handles from their destinations' incoming slices.
	for _, handle := range rec.out {
		if handle.dst == v {
			continue // reflexive; the whole record goes away below
		}
		dst := g.nodes[handle.dst]
		for i, h := range dst.in {
			if h == handle {
				dst.in = slices.Delete(dst.in, i, i+1)
				break
			}
		}
	}
	// Unlink incoming handles from their sources' outgoing slices.
	removed := len(rec.out)
	for _, handle := range rec.in {
		if handle.src == v {
			continue // reflexive; already counted via rec.out
		}
		src := g.nodes[handle.src]
		if i, found := src.outIndex(*handle); found {
			src.out = slices.Delete(src.out, i, i+1)
		}
		removed++
	}
	g.edgeCount -= removed

	delete(g.nodes, v)
	if i, found := g.nodeIndex(v); found {
		g.order = slices.Delete(g.order, i, i+1)
	}

	return true
}

// rewriteNode re-creates every edge incident to old with the old endpoint
// substituted by new, dropping any rewrite that collides with an existing
// edge, then removes old and its original edges. When create is set, new
// is inserted first (ReplaceNode); otherwise new must already exist
// (MergeReplaceNode).
func (g *Graph[N, E]) rewriteNode(oldData, newData N, create bool) {
	rec := g.nodes[oldData]
	// Capture incident edge values before the store changes under us.
	captured := make([]Edge[N, E], 0, len(rec.out)+len(rec.in))
	for _, handle := range rec.out {
		captured = append(captured, *handle)
	}
	for _, handle := range rec.in {
		if handle.src == oldData {
			continue // reflexive; captured via rec.out already
		}
		captured = append(captured, *handle)
	}

	g.removeNode(oldData)
	if create {
		g.addNode(newData)
	}
	for _, e := range captured {
		if e.src == oldData {
			e.src = newData
		}
		if e.dst == oldData {
			e.dst = newData
		}
		g.insertEdge(e) // duplicates after rewriting are dropped, not errors
	}
}

// Clear removes all nodes and edges; the graph becomes logically empty.
// Invalidates every outstanding iterator.
// Complexity: O(1) plus garbage collection of the old store.
func (g *Graph[N, E]) Clear() {
	g.version++
	g.nodes = make(map[N]*adjacency[N, E])
	g.order = nil
	g.edgeCount = 0
}
