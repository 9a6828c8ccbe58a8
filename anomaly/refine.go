// SPDX-License-Identifier: MIT

package anomaly

import "math"

// Refine applies exactly one high-order correction to the estimate e0 of the
// root of g(E) = E − ecc·sin E − mr and returns the corrected value.
//
// The step is the fifth-order member of the Householder family used by
// Nijenhuis (1991) and Markley (1995). With g and its derivatives at e0
//
//	g0 = ecc·(e0 − sin e0) + (1 − ecc)·e0 − mr
//	g1 = ecc·(1 − cos e0) + (1 − ecc)
//	g2 = ecc·sin e0
//	g3 = ecc·cos e0
//
// three nested Taylor denominators are formed:
//
//	d3 = −g0 / (g1 − g0·g2 / (2·g1))
//	d4 = −g0 / (g1 + d3·g2/2 + d3²·g3/6)
//	d5 = −g0 / (g1 + d4·g2/2 + d4²·g3/6 − d4³·g2/24)
//
// and e0 + d5 is returned. g0 and g1 are written in the (1 − ecc) split form
// so that near-parabolic orbits do not lose the small terms to cancellation.
//
// Complexity: O(1); one Sincos and a fixed handful of divisions. The cost does
// not depend on how far e0 is from the root.
func Refine(mr, ecc, e0 float64) float64 {
	ome := 1 - ecc
	sinE, cosE := math.Sincos(e0)

	g0 := ecc*eMinusSin(e0, sinE) + e0*ome - mr
	g1 := ecc*oneMinusCos(sinE, cosE) + ome
	g2 := ecc * sinE
	g3 := ecc * cosE

	d3 := -g0 / (g1 - 0.5*g0*g2/g1)
	d4 := -g0 / (g1 + 0.5*d3*g2 + d3*d3*g3/6)
	d42 := d4 * d4
	d5 := -g0 / (g1 + 0.5*d4*g2 + d42*g3/6 - d42*d4*g2/24)

	return e0 + d5
}

// eMinusSin returns x − sin x. For |x| below seriesCutoff the direct
// difference cancels almost every significant bit, so a fixed-length Taylor
// series is summed instead:
//
//	x³/3! − x⁵/5! + x⁷/7! − …
func eMinusSin(x, sinx float64) float64 {
	if math.Abs(x) >= seriesCutoff {
		return x - sinx
	}

	x2 := x * x
	term := x * x2 / 6
	sum := term
	n := 4.0
	for k := 0; k < seriesTerms; k++ {
		term *= -x2 / (n * (n + 1))
		sum += term
		n += 2
	}

	return sum
}

// oneMinusCos returns 1 − cos x from an already computed (sin x, cos x) pair.
// On the cos x > 0 half it uses sin²x / (1 + cos x), which does not cancel
// near x = 0.
func oneMinusCos(sinx, cosx float64) float64 {
	if cosx > 0 {
		return sinx * sinx / (1 + cosx)
	}

	return 1 - cosx
}
