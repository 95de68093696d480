// SPDX-License-Identifier: MIT
// Package: dwgraph/builder
//
// api.go - thin public entry-points.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves
//     cfg, runs cons in order.
//   - All public factories are declared in impl_*.go and return
//     Constructor closures.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical
//     graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dwgraph/core"
)

// Graph is the concrete container the builder assembles: string nodes,
// int64 weights, the shape every fixture and demo in this module uses.
type Graph = core.Graph[string, int64]

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit nodes and edges in a stable, documented order.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph creates a new core graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error
// is wrapped with the context "BuildGraph: %w" and returned immediately;
// no partial cleanup is attempted by design.
//
// Complexity: O(len(bopts)) resolution + Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	g := core.NewGraph[string, int64]()
	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addIDNodes inserts n nodes named by cfg.idFn and returns their IDs in
// index order. Duplicate inserts are no-ops by core semantics.
func addIDNodes(g *Graph, cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		g.InsertNode(ids[i])
	}

	return ids
}

// linkEdge inserts one edge u -> v honoring the configured edge mode.
// Duplicate edges are silently skipped (idempotent re-runs).
func linkEdge(g *Graph, cfg builderConfig, method, u, v string) error {
	var err error
	if cfg.unweighted {
		_, err = g.InsertEdge(u, v)
	} else {
		_, err = g.InsertWeightedEdge(u, v, cfg.weightFn(cfg.rng, u, v))
	}
	if err != nil {
		return wrapf(method, fmt.Sprintf("insert edge %s->%s", u, v), err)
	}

	return nil
}
