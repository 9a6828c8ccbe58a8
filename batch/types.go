// SPDX-License-Identifier: MIT

package batch

import (
	"fmt"

	"github.com/katalvlaran/kepler/anomaly"
)

// Result holds the three parallel output arrays of a batch solve.
//
//   - E:    eccentric anomaly in [0, 2π).
//   - CosF: cos f of the true anomaly.
//   - SinF: sin f of the true anomaly.
//
// All three have the broadcast length of the inputs. A Result returned by
// Solve is owned by the caller.
type Result struct {
	E    []float64
	CosF []float64
	SinF []float64
}

// NewResult allocates a Result with room for n elements, suitable for SolveInto.
func NewResult(n int) *Result {
	return &Result{
		E:    make([]float64, n),
		CosF: make([]float64, n),
		SinF: make([]float64, n),
	}
}

// Len returns the number of elements.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}

	return len(r.E)
}

// TrueAnomaly returns the true anomaly f ∈ [0, 2π) of element i.
// Returns ErrOutOfRange for an invalid index.
func (r *Result) TrueAnomaly(i int) (float64, error) {
	if i < 0 || i >= r.Len() {
		return 0, fmt.Errorf("TrueAnomaly: index %d, len %d: %w", i, r.Len(), ErrOutOfRange)
	}

	return anomaly.TrueAngle(r.CosF[i], r.SinF[i]), nil
}
