// SPDX-License-Identifier: MIT
// Package: dwgraph/builder
//
// errors.go - sentinel errors.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition
//     site; implementations attach context via %w wrapping.
//   - Constructors never panic at runtime; validation panics are confined
//     to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates that a size parameter is smaller than the
// allowed minimum for the requested topology.
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrConstructFailed indicates the builder could not assemble the
// requested topology (e.g. a nil constructor was supplied).
// Usage: if errors.Is(err, ErrConstructFailed) { /* fix composition */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf attaches method context to a sentinel or lower-level error,
// preserving errors.Is semantics through %w.
func wrapf(method, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, err)
}
