// SPDX-License-Identifier: MIT
// Package: batch
//
// Purpose:
//   - One canonical place for the batch-level precondition checks.
//   - Each validator returns its sentinel wrapped once with the validator
//     name, so call sites can add their own tag and callers use errors.Is.
//
// Determinism & Performance:
//   - Pure, allocation-free on success; O(n) single passes.

package batch

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// validatorErrorf wraps err with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateEccentricity ensures every ecc[i] is in [0, 1). The common all-valid
// case is decided with vectorized min/max scans; on failure the first
// offending index is located and reported in the message.
//
// Errors: ErrEccentricity.
// Complexity: O(n).
func ValidateEccentricity(ecc []float64) error {
	if len(ecc) == 0 {
		return nil
	}
	// NaN defeats min/max comparisons, so rule it out first.
	if !floats.HasNaN(ecc) && floats.Min(ecc) >= 0 && floats.Max(ecc) < 1 {
		return nil
	}
	for i, e := range ecc {
		if !(e >= 0 && e < 1) {
			return validatorErrorf(fmt.Sprintf("ValidateEccentricity: ecc[%d]=%v", i, e), ErrEccentricity)
		}
	}

	return nil
}

// ValidateFinite ensures every M[i] is finite.
//
// Errors: ErrNonFinite.
// Complexity: O(n).
func ValidateFinite(M []float64) error {
	for i, v := range M {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite: M[%d]=%v", i, v), ErrNonFinite)
		}
	}

	return nil
}

// ValidateResult ensures dst is non-nil and each of its buffers has length n.
//
// Errors: ErrNilResult, ErrShapeMismatch.
// Complexity: O(1).
func ValidateResult(dst *Result, n int) error {
	if dst == nil {
		return validatorErrorf("ValidateResult", ErrNilResult)
	}
	if len(dst.E) != n || len(dst.CosF) != n || len(dst.SinF) != n {
		return validatorErrorf(
			fmt.Sprintf("ValidateResult: len(E,CosF,SinF)=(%d,%d,%d), want %d", len(dst.E), len(dst.CosF), len(dst.SinF), n),
			ErrShapeMismatch,
		)
	}

	return nil
}
