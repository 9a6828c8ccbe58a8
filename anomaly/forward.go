// SPDX-License-Identifier: MIT

package anomaly

import "math"

// Mean returns the mean anomaly M = E − ecc·sin E for an eccentric anomaly E.
// It is the forward direction of Kepler's equation and is not wrapped.
func Mean(E, ecc float64) float64 {
	return E - ecc*math.Sin(E)
}

// Residual returns E − ecc·sin E − M reduced to [−π, π]: zero (up to rounding)
// when E solves Kepler's equation for M modulo 2π.
func Residual(E, M, ecc float64) float64 {
	return AngleDiff(Mean(E, ecc), M)
}

// TrueFromEccentric returns the true anomaly f ∈ [0, 2π) for eccentric anomaly
// E, using atan2 on the unnormalized pair (sqrt(1−ecc²)·sin E, cos E − ecc).
// It is an independent route to f, handy for cross-checks.
func TrueFromEccentric(E, ecc float64) float64 {
	sinE, cosE := math.Sincos(E)

	return Wrap(math.Atan2(math.Sqrt(1-ecc*ecc)*sinE, cosE-ecc))
}
