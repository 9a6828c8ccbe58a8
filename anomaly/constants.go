// SPDX-License-Identifier: MIT

package anomaly

import "math"

// Angles.
const (
	// TwoPi is the period of Kepler's equation in M and E.
	TwoPi = 2 * math.Pi
)

// Numeric policy.
const (
	// DefaultTolerance is the threshold on 1 + cos E below which TrueAnomaly
	// returns the apoapsis limit (cos f = −1, sin f = 0). It guards a
	// division; it is not a convergence criterion.
	DefaultTolerance = 1e-10
)

// Markley (1995) starter factors, precomputed once:
//
//	alpha = factor1 + factor2·(π − M)/(1 + ecc)
//	factor1 = 3π² / (π² − 6),  factor2 = 1.6π / (π² − 6)
const (
	starterFactor1 = 3 * math.Pi / (math.Pi - 6/math.Pi)
	starterFactor2 = 1.6 / (math.Pi - 6/math.Pi)
)

// seriesCutoff bounds |E| for the Taylor form of E − sin E. Below it the
// nine retained terms are exact to well under one ULP.
const seriesCutoff = 0.25

// seriesTerms is the fixed number of extra terms after x³/6 in eMinusSin.
const seriesTerms = 8
