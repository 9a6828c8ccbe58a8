package batch_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/kepler/batch"
)

// TestValidateEccentricity covers the domain boundaries and NaN.
func TestValidateEccentricity(t *testing.T) {
	cases := []struct {
		name string
		ecc  []float64
		ok   bool
	}{
		{"empty", nil, true},
		{"zero", []float64{0}, true},
		{"just below one", []float64{0.5, math.Nextafter(1, 0)}, true},
		{"one", []float64{0.2, 1}, false},
		{"negative", []float64{-1e-300, 0.3}, false},
		{"negative zero", []float64{math.Copysign(0, -1)}, true},
		{"nan", []float64{0.1, math.NaN(), 0.2}, false},
		{"inf", []float64{math.Inf(1)}, false},
		{"hyperbolic", []float64{1.5}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := batch.ValidateEccentricity(tc.ecc)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, batch.ErrEccentricity)
		})
	}
}

// TestValidateEccentricity_ReportsFirstIndex checks the message names the first offender.
func TestValidateEccentricity_ReportsFirstIndex(t *testing.T) {
	err := batch.ValidateEccentricity([]float64{0.1, 0.2, 1.2, -1})
	assert.ErrorIs(t, err, batch.ErrEccentricity)
	assert.Contains(t, err.Error(), "ecc[2]=1.2")
}

// TestValidateFinite rejects NaN and both infinities.
func TestValidateFinite(t *testing.T) {
	assert.NoError(t, batch.ValidateFinite(nil))
	assert.NoError(t, batch.ValidateFinite([]float64{-1e300, 0, 1e300}))
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := batch.ValidateFinite([]float64{1, bad})
		assert.ErrorIs(t, err, batch.ErrNonFinite)
		assert.Contains(t, err.Error(), "M[1]")
	}
}

// TestValidateResult checks nil and per-buffer length mismatches.
func TestValidateResult(t *testing.T) {
	assert.ErrorIs(t, batch.ValidateResult(nil, 0), batch.ErrNilResult)
	assert.NoError(t, batch.ValidateResult(batch.NewResult(3), 3))
	assert.ErrorIs(t, batch.ValidateResult(batch.NewResult(3), 4), batch.ErrShapeMismatch)

	r := batch.NewResult(3)
	r.SinF = r.SinF[:2]
	assert.ErrorIs(t, batch.ValidateResult(r, 3), batch.ErrShapeMismatch)
}

// TestBroadcast covers pass-through, scalar expansion and mismatch.
func TestBroadcast(t *testing.T) {
	M := []float64{1, 2, 3}
	ecc := []float64{0.1, 0.2, 0.3}

	m, e, err := batch.Broadcast(M, ecc)
	assert.NoError(t, err)
	assert.Same(t, &M[0], &m[0], "equal lengths are borrowed, not copied")
	assert.Same(t, &ecc[0], &e[0])

	m, e, err = batch.Broadcast(M, []float64{0.5})
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, m)
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, e)

	m, e, err = batch.Broadcast([]float64{4}, ecc)
	assert.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 4}, m)
	assert.Equal(t, ecc, e)

	m, e, err = batch.Broadcast([]float64{4}, []float64{})
	assert.NoError(t, err)
	assert.Len(t, m, 0)
	assert.Len(t, e, 0)

	_, _, err = batch.Broadcast([]float64{1, 2}, ecc)
	assert.ErrorIs(t, err, batch.ErrShapeMismatch)
}
