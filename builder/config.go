// SPDX-License-Identifier: MIT
// Package: dwgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in order (later overrides earlier).

package builder

import (
	"fmt"
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors (immutable to callers).
type builderConfig struct {
	// Node ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic weight functions; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges; ignored when unweighted is set.
	weightFn WeightFn
	// Emit unweighted edges instead of weighted ones.
	unweighted bool
}

// BuilderOption mutates the builder configuration before use.
type BuilderOption func(*builderConfig)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: ConstantWeightFn(defaultConstWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed installs a deterministic RNG for stochastic weight functions.
// Same seed, same options, same constructor order ⇒ identical graphs.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithIDScheme overrides the node-ID scheme.
// Panics when fn is nil (programmer error in configuration).
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme requires a non-nil IDFn")
	}

	return func(cfg *builderConfig) { cfg.idFn = fn }
}

// WithWeightFn overrides the edge-weight distribution.
// Panics when fn is nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn requires a non-nil WeightFn")
	}

	return func(cfg *builderConfig) { cfg.weightFn = fn }
}

// WithUnweighted makes constructors emit unweighted edges.
func WithUnweighted() BuilderOption {
	return func(cfg *builderConfig) { cfg.unweighted = true }
}

// validateMin ensures n >= min for the given constructor method.
func validateMin(method string, n, min int) error {
	if n < min {
		return wrapf(method, fmt.Sprintf("need at least %d nodes, got %d", min, n), ErrTooFewNodes)
	}

	return nil
}
