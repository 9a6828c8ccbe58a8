// SPDX-License-Identifier: MIT

package anomaly

import "math"

// Reduce maps a raw mean anomaly onto the half period the starter is built
// for: mr = |M rem 2π| ∈ [0, π] and s = +1 or −1 recording which half of the
// orbit M fell in.
//
// Implementation:
//   - Stage 1: r = math.Remainder(M, 2π) ∈ [−π, π]. The IEEE remainder is
//     exact, so a large |M| loses nothing beyond the rounding already present
//     in M, and an exact multiple of 2π reduces to ±0.
//   - Stage 2: fold |r| and keep the sign bit (−0 counts as negative, which
//     Unreduce maps back to 0).
//
// Complexity: O(1).
func Reduce(M float64) (mr, s float64) {
	r := math.Remainder(M, TwoPi)
	s = 1
	if math.Signbit(r) {
		s = -1
	}

	return math.Abs(r), s
}

// Unreduce maps a reduced solution er ∈ [0, π] back into [0, 2π) using the
// sign s returned by Reduce: er for s = +1, 2π − er for s = −1. A value that
// rounds to 2π is folded to 0.
func Unreduce(er, s float64) float64 {
	E := er
	if s < 0 {
		E = TwoPi - er
	}
	if E >= TwoPi {
		E -= TwoPi
	}

	return E
}

// Wrap returns x modulo 2π in [0, 2π), with the sign convention of a floored
// modulo (the result takes the sign of the divisor).
func Wrap(x float64) float64 {
	w := math.Mod(x, TwoPi)
	if w < 0 {
		w += TwoPi
	}
	// w + 2π can round up to 2π for tiny negative w.
	if w >= TwoPi {
		w = 0
	}

	return w
}

// AngleDiff returns a − b reduced to [−π, π]. Useful for comparing angles
// that may sit on either side of the 0/2π seam.
func AngleDiff(a, b float64) float64 {
	return math.Remainder(a-b, TwoPi)
}
