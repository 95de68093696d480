// Package dwgraph is your in-memory toolkit for building and inspecting
// generic directed, weighted multigraphs with strict value semantics.
//
// 🚀 What is dwgraph?
//
//	A modern, zero-surprise library that brings together:
//		• Generic container: Graph[N, E] over any ordered node and weight type
//		• Multi-edges: one unweighted edge per pair plus any number of
//		  weighted edges distinguished by weight
//		• Canonical ordering: src, then dst, then unweighted-before-weighted,
//		  then ascending weight — everywhere, deterministically
//		• Bidirectional iteration: a cursor over the flattened edge sequence
//		  that transparently skips nodes without outgoing edges
//		• Value semantics: Clone deep-copies every node and edge payload;
//		  two graphs never alias storage
//		• Deterministic fixtures: the builder package assembles cycles,
//		  paths, stars and complete graphs from composable options
//
// ✨ Why choose dwgraph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – every invariant documented and tested
//   - Pure Go – no cgo, no hidden deps
//   - Honest contracts – mutations invalidate every outstanding iterator,
//     and the iterators enforce it instead of silently misbehaving
//
// Under the hood, everything is organized under two subpackages:
//
//	core/    — the generic Graph, Edge and Iterator types with all
//	           mutation, query, comparison and rendering operations
//	builder/ — functional-options topology constructors producing
//	           deterministic core graphs for tests and demos
//
// Quick ASCII example:
//
//	    1 ──(W|10)──▶ 2
//	    │             │
//	  (U)│           (W|5)
//	    ▼             ▼
//	    3 ──(W|7)──▶  4
//
// See core/doc.go for the full contract and examples/ for runnable demos.
package dwgraph
