// SPDX-License-Identifier: MIT

package anomaly

import "math"

// Starter returns Markley's (1995) closed-form initial estimate of the
// eccentric anomaly for a reduced mean anomaly mr ∈ [0, π] and ecc ∈ [0, 1).
//
// The estimate replaces sin E by a Padé-type rational approximation whose
// coefficient alpha varies with (π − mr)/(1 + ecc), then solves the resulting
// cubic in closed form:
//
//	d  = 3(1 − ecc) + alpha·ecc
//	q  = 2·alpha·d·(1 − ecc) − mr²
//	r  = 3·alpha·d·(d − 1 + ecc)·mr + mr³
//	w  = (|r| + sqrt(q³ + r²))^(2/3)
//	E0 = (2·r·w / (w² + w·q + q²) + mr) / d
//
// The single expression covers both the periapsis end (mr → 0, where the cubic
// term dominates) and the flat apoapsis end (mr → π), so there is no blend
// boundary and E0 is continuous over the whole reduced domain. Its error is
// small enough that one Refine step reaches double precision.
//
// Complexity: O(1); one square root and one cube root, no trigonometry.
func Starter(mr, ecc float64) float64 {
	ome := 1 - ecc
	m2 := mr * mr

	alpha := starterFactor1 + starterFactor2*(math.Pi-mr)/(1+ecc)
	d := 3*ome + alpha*ecc
	alphad := alpha * d
	r := (3*alphad*(d-ome) + m2) * mr
	q := 2*alphad*ome - m2
	q2 := q * q

	// (x)^(2/3) as cbrt(x)²
	w := math.Cbrt(math.Abs(r) + math.Sqrt(q2*q+r*r))
	w *= w

	return (2*r*w/(w*w+w*q+q2) + mr) / d
}
