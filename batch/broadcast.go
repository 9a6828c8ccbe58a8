// SPDX-License-Identifier: MIT

package batch

import "fmt"

// Broadcast brings M and ecc to a common length using the 1-D broadcasting
// rules callers know from array libraries:
//   - equal lengths pass through unchanged (the input slices are returned as is);
//   - a length-1 operand is repeated to the other's length (which may be 0);
//   - anything else fails with ErrShapeMismatch.
//
// Complexity: O(1) when lengths match, O(n) when one side is expanded.
func Broadcast(M, ecc []float64) ([]float64, []float64, error) {
	nm, ne := len(M), len(ecc)
	switch {
	case nm == ne:
		return M, ecc, nil
	case nm == 1:
		return repeat(M[0], ne), ecc, nil
	case ne == 1:
		return M, repeat(ecc[0], nm), nil
	default:
		return nil, nil, fmt.Errorf("Broadcast: len(M)=%d, len(ecc)=%d: %w", nm, ne, ErrShapeMismatch)
	}
}

// repeat returns a fresh slice of n copies of v.
func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}
