// Package core provides a generic, value-semantic, in-memory directed
// weighted multigraph with a minimal, composable API surface.
//
// The Graph G = (V,E) is parameterized over two ordered types:
//
//   - N — the node value: unique, comparable, totally ordered, copyable.
//   - E — the edge weight: comparable, totally ordered, copyable.
//
// Both render textually through fmt verbs, which the canonical dump
// format (String) relies on.
//
// Core guarantees:
//
//   - Node uniqueness — the store holds exactly one owned copy per
//     distinct node value.
//   - Multi-edge discipline — per (src, dst) pair: at most one unweighted
//     edge, plus any number of weighted edges with pairwise distinct
//     weights.
//   - Canonical edge order — src, then dst, then unweighted before
//     weighted, then ascending weight. This order governs String(),
//     Edges(), and iteration.
//   - Single ownership — every edge payload is allocated once and shared
//     by exactly two adjacency references (outgoing at src, incoming at
//     dst; one record referenced twice when the edge is reflexive).
//     Clone deep-copies nodes and payloads; clones never alias.
//   - Total iterator invalidation — every mutating call invalidates every
//     previously obtained Iterator. Stale iterators panic on use rather
//     than observe torn state.
//
// Reported errors are sentinels, raised before any structural change, so
// a failed call always leaves the graph untouched:
//
//	ErrInsertEdge       - InsertEdge src or dst node missing.
//	ErrReplaceNode      - ReplaceNode old node missing.
//	ErrMergeReplaceNode - MergeReplaceNode old or new node missing.
//	ErrEraseEdge        - EraseEdge src or dst node missing.
//	ErrIsConnected      - IsConnected src or dst node missing.
//	ErrEdges            - Edges src or dst node missing.
//	ErrConnections      - Connections src node missing.
//
// Precondition violations (dereferencing the end iterator, decrementing
// before the beginning, using an iterator after a mutation) are panics
// with fixed messages, not recoverable errors.
//
// Core Methods:
//
//	// Construction
//	NewGraph[N, E]() *Graph[N, E]                 // O(1)
//	NewGraphFrom[N, E](nodes ...N) *Graph[N, E]   // O(n log n), duplicates collapse
//	Clone() *Graph[N, E]                          // O(V+E) deep copy
//	CloneEmpty() *Graph[N, E]                     // O(V) nodes only
//
//	// Node lifecycle
//	InsertNode(v N) bool                          // O(log V) search + O(V) shift
//	ReplaceNode(old, new N) (bool, error)         // O(deg(old)·log E')
//	MergeReplaceNode(old, new N) error            // O(deg(old)·log E')
//	EraseNode(v N) bool                           // O(deg(v) + V)
//
//	// Edge lifecycle
//	InsertEdge(src, dst N) (bool, error)                    // O(log V + log deg)
//	InsertWeightedEdge(src, dst N, w E) (bool, error)       // O(log V + log deg)
//	EraseEdge(src, dst N) (bool, error)                     // O(log V + deg)
//	EraseWeightedEdge(src, dst N, w E) (bool, error)        // O(log V + deg)
//	EraseAt(it Iterator[N, E]) Iterator[N, E]               // O(deg)
//	EraseRange(first, last Iterator[N, E]) Iterator[N, E]   // O(k·deg)
//	Clear()                                                 // O(1)
//
//	// Query (pure reads, never invalidate iterators)
//	IsNode(v N) bool
//	Empty() bool
//	Nodes() []N                                   // ascending copy
//	IsConnected(src, dst N) (bool, error)
//	Edges(src, dst N) ([]Edge[N, E], error)       // canonical order, copies
//	Connections(src N) ([]N, error)               // ascending unique dsts
//	Find(src, dst N) Iterator[N, E]
//	FindWeighted(src, dst N, w E) Iterator[N, E]
//	NodeCount() int
//	EdgeCount() int
//
//	// Comparison & rendering
//	Equal(other *Graph[N, E]) bool                // structural
//	String() string                               // canonical dump
//
//	// Iteration
//	Begin() Iterator[N, E]
//	End() Iterator[N, E]
//
// The container is not synchronized; concurrent use from multiple
// goroutines requires external locking.
package core
