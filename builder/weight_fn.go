// Package builder: edge-weight distributions for graph constructors.

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces the weight for the edge u -> v. Implementations must
// be deterministic for a fixed RNG state; rng is nil unless WithSeed was
// applied.
type WeightFn func(rng *rand.Rand, u, v string) int64

// ConstantWeightFn returns a WeightFn emitting the fixed value w for
// every edge. Never panics.
func ConstantWeightFn(w int64) WeightFn {
	return func(*rand.Rand, string, string) int64 { return w }
}

// UniformWeightFn returns a WeightFn drawing weights uniformly from
// [min, max]. Requires a seeded RNG at build time (WithSeed).
// Panics if min > max (programmer error in configuration).
func UniformWeightFn(min, max int64) WeightFn {
	if min > max {
		panic(fmt.Sprintf("UniformWeightFn: min %d exceeds max %d", min, max))
	}

	return func(rng *rand.Rand, _, _ string) int64 {
		if rng == nil {
			// Deterministic fallback keeps unseeded builds reproducible.
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
