// Package builder provides reusable "functional-options"-style building
// blocks for assembling deterministic core graphs. It lives alongside the
// core package to centralize common configuration, ID schemes, weight
// distributions, and validation logic, keeping fixtures DRY, testable,
// and consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, ID scheme, weight function, edge mode.
//   - Node-ID schemes (IDFn implementations):
//     – DefaultIDFn:    decimal strings ("0","1",…).
//     – SymbolIDFn:     single letters ("A","B",…).
//     – HexIDFn:        lowercase hexadecimal ("0","a","ff",…).
//   - Edge-weight distributions (WeightFn implementations):
//     – ConstantWeightFn: fixed user-provided value.
//     – UniformWeightFn:  uniform ∼U[min,max] from the seeded RNG.
//   - Topology constructors (Constructor factories):
//     – Cycle(n):     directed cycle C_n (n ≥ 3).
//     – Path(n):      directed path P_n (n ≥ 2).
//     – Star(n):      center "Center" with n-1 leaves (n ≥ 2).
//     – Complete(n):  complete digraph K_n without loops (n ≥ 1).
//
// Guarantees:
//
//   - Idempotent construction: re-running the same constructor on g will
//     not duplicate nodes or edges (core dedupes both). Stochastic weight
//     functions are the one exception: a re-run drawing fresh weights adds
//     parallel edges distinguished by weight.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; structured sentinel errors for invalid build
//     parameters.
//   - Determinism: same options, seed, and constructor order produce
//     identical graphs.
//
// See individual function documentation for detailed contracts, panic
// conditions, and performance notes.
package builder
