// SPDX-License-Identifier: MIT

package anomaly

import "math"

// TrueAnomaly returns (cos f, sin f) for the true anomaly f of an orbit with
// eccentricity ecc at eccentric anomaly E.
//
// Implementation:
//   - Stage 1: denom = 1 + cos E and the guard mask m = (denom > tol) as 1 or 0.
//   - Stage 2: make the denominator safe where m = 0 (denom += 1 − m).
//   - Stage 3: t = tan(f/2) = sqrt((1+ecc)/(1−ecc)) · sin E / denom, then
//     cos f = (1 − t²)/(1 + t²), sin f = 2t/(1 + t²). For |t| > 1 the same
//     identity is evaluated in 1/t so that t² cannot overflow.
//   - Stage 4: blend with the apoapsis limit: cos f·m − (1 − m), sin f·m.
//
// Behavior highlights:
//   - Near E = π (within the tol guard) the result is exactly (−1, 0).
//   - Outputs are finite for every finite E, every ecc ∈ [0, 1) and every
//     tol ≥ 0, and cos²f + sin²f = 1 to machine precision.
//
// Complexity: O(1); one Sincos, one square root.
func TrueAnomaly(E, ecc, tol float64) (cosf, sinf float64) {
	sinE, cosE := math.Sincos(E)

	denom := 1 + cosE
	m := mask(denom > tol)
	denom += 1 - m

	t := math.Sqrt((1+ecc)/(1-ecc)) * sinE / denom
	if math.Abs(t) <= 1 {
		t2 := t * t
		inv := 1 / (1 + t2)
		cosf = (1 - t2) * inv
		sinf = 2 * t * inv
	} else {
		it := 1 / t
		it2 := it * it
		inv := 1 / (it2 + 1)
		cosf = (it2 - 1) * inv
		sinf = 2 * it * inv
	}

	return cosf*m - (1 - m), sinf * m
}

// TrueAngle returns the true anomaly f ∈ [0, 2π) for a (cos f, sin f) pair.
func TrueAngle(cosf, sinf float64) float64 {
	return Wrap(math.Atan2(sinf, cosf))
}

// mask converts a predicate into a 1/0 blend weight.
func mask(ok bool) float64 {
	if ok {
		return 1
	}

	return 0
}
