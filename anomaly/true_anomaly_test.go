package anomaly_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/kepler/anomaly"
)

// TestTrueAnomaly_Pythagorean checks cos²f + sin²f = 1 across E and ecc.
func TestTrueAnomaly_Pythagorean(t *testing.T) {
	for _, ecc := range append(eccGrid(40), 1-1e-6, 1-1e-12) {
		for _, E := range floats.Span(make([]float64, 401), -10, 10) {
			cosf, sinf := anomaly.TrueAnomaly(E, ecc, anomaly.DefaultTolerance)
			assert.InDelta(t, 1, cosf*cosf+sinf*sinf, 1e-15, "ecc=%v E=%v", ecc, E)
		}
	}
}

// TestTrueAnomaly_MatchesAtan2Route compares the half-angle identity with the
// independent atan2 route away from the apoapsis guard band.
func TestTrueAnomaly_MatchesAtan2Route(t *testing.T) {
	for _, ecc := range []float64{0, 0.2, 0.5, 0.8, 0.9} {
		for _, E := range floats.Span(make([]float64, 401), -10, 10) {
			cosf, sinf := anomaly.TrueAnomaly(E, ecc, anomaly.DefaultTolerance)
			f := anomaly.TrueFromEccentric(E, ecc)
			assert.InDelta(t, math.Cos(f), cosf, 1e-11, "ecc=%v E=%v", ecc, E)
			assert.InDelta(t, math.Sin(f), sinf, 1e-11, "ecc=%v E=%v", ecc, E)
		}
	}
}

// TestTrueAnomaly_Circular: with ecc = 0 the true anomaly equals E.
func TestTrueAnomaly_Circular(t *testing.T) {
	for _, E := range []float64{0, 0.3, 1, 2, 3, 4, 5, 6} {
		cosf, sinf := anomaly.TrueAnomaly(E, 0, anomaly.DefaultTolerance)
		assert.InDelta(t, math.Cos(E), cosf, 1e-15, "E=%v", E)
		assert.InDelta(t, math.Sin(E), sinf, 1e-15, "E=%v", E)
	}
}

// TestTrueAnomaly_ApoapsisGuard checks the masked branch: exact (−1, 0) inside
// the guard band and finite output for any tol ≥ 0, including tol = 0.
func TestTrueAnomaly_ApoapsisGuard(t *testing.T) {
	cosf, sinf := anomaly.TrueAnomaly(math.Pi, 0.5, anomaly.DefaultTolerance)
	assert.Equal(t, -1.0, cosf)
	assert.Equal(t, 0.0, sinf)

	for _, tol := range []float64{0, 1e-300, 1e-16, anomaly.DefaultTolerance, 1e-3} {
		for k := -50; k <= 50; k++ {
			E := math.Pi + float64(k)*1e-9
			for _, ecc := range []float64{0, 0.5, 1 - 1e-9} {
				cosf, sinf := anomaly.TrueAnomaly(E, ecc, tol)
				assert.False(t, math.IsNaN(cosf) || math.IsInf(cosf, 0), "tol=%v E=%v ecc=%v", tol, E, ecc)
				assert.False(t, math.IsNaN(sinf) || math.IsInf(sinf, 0), "tol=%v E=%v ecc=%v", tol, E, ecc)
				assert.InDelta(t, 1, cosf*cosf+sinf*sinf, 1e-15)
			}
		}
	}
}

// TestTrueAnomaly_Periapsis: E = 0 maps to f = 0 for every eccentricity.
func TestTrueAnomaly_Periapsis(t *testing.T) {
	for _, ecc := range eccGrid(20) {
		cosf, sinf := anomaly.TrueAnomaly(0, ecc, anomaly.DefaultTolerance)
		assert.Equal(t, 1.0, cosf)
		assert.Equal(t, 0.0, sinf)
	}
}

// TestForward checks Mean, Residual, TrueAngle and TrueFromEccentric.
func TestForward(t *testing.T) {
	assert.Equal(t, 0.0, anomaly.Mean(0, 0.7))
	assert.InDelta(t, math.Pi, anomaly.Mean(math.Pi, 0.7), 1e-15)
	assert.InDelta(t, 1-0.5*math.Sin(1), anomaly.Mean(1, 0.5), 1e-15)

	E := anomaly.Eccentric(1234.5, 0.6)
	assert.InDelta(t, 0, anomaly.Residual(E, 1234.5, 0.6), 1e-12)

	assert.Equal(t, 0.0, anomaly.TrueFromEccentric(0, 0.3))
	assert.InDelta(t, math.Pi, anomaly.TrueFromEccentric(math.Pi, 0.3), 1e-15)

	assert.InDelta(t, math.Pi/2, anomaly.TrueAngle(0, 1), 1e-15)
	assert.InDelta(t, 3*math.Pi/2, anomaly.TrueAngle(0, -1), 1e-15)
	assert.Equal(t, 0.0, anomaly.TrueAngle(1, 0))
}
