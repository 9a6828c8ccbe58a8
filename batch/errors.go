// SPDX-License-Identifier: MIT
// Package batch: sentinel error set.
// All public entry points return these sentinels (possibly wrapped with an
// operation tag); callers match them with errors.Is. Nothing in this package
// panics on user input; option constructors panic on programmer errors only.

package batch

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (checked in this order, first failure wins):
// nil result -> input shape -> eccentricity domain -> non-finite mean anomaly
// -> output buffer shape (SolveInto).

var (
	// ErrShapeMismatch is returned when M and ecc cannot be broadcast to a
	// common length, or when SolveInto buffers do not match that length.
	ErrShapeMismatch = errors.New("batch: shape mismatch")

	// ErrEccentricity is returned when any eccentricity is NaN or outside
	// [0, 1). Hyperbolic and parabolic orbits are not supported.
	ErrEccentricity = errors.New("batch: ecc must be in the range 0 <= ecc < 1")

	// ErrNonFinite is returned when a mean anomaly is NaN or ±Inf and
	// finite-value validation is enabled (the default).
	ErrNonFinite = errors.New("batch: NaN or Inf mean anomaly")

	// ErrNilResult is returned by SolveInto when dst is nil.
	ErrNilResult = errors.New("batch: nil result")

	// ErrOutOfRange indicates an element index outside the result.
	ErrOutOfRange = errors.New("batch: index out of range")
)

// batchErrorf tags err with the operation name.
func batchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
