// SPDX-License-Identifier: MIT

package batch

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kepler/anomaly"
)

// Solve solves Kepler's equation for every element of the broadcast inputs
// and returns freshly allocated E, cos f and sin f arrays.
//
// Implementation:
//   - Stage 1 (Broadcast): M and ecc to a common length N (ErrShapeMismatch).
//   - Stage 2 (Validate): ecc ∈ [0, 1) for all elements (ErrEccentricity),
//     then finite M unless WithNoValidateFinite (ErrNonFinite).
//   - Stage 3 (Execute): element-wise solve, chunked across goroutines when
//     N exceeds the chunk size.
//
// Postconditions: E[i] ∈ [0, 2π); CosF[i]² + SinF[i]² = 1 to machine
// precision; E[i] − ecc[i]·sin E[i] ≡ M[i] (mod 2π).
//
// Errors are reported for the batch as a whole; no partial output is returned.
//
// Complexity: O(N) time with a fixed per-element cost, O(N) output memory.
func Solve(M, ecc []float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	m, e, err := prepare(M, ecc, o)
	if err != nil {
		return nil, batchErrorf("Solve", err)
	}

	res := NewResult(len(m))
	execute(res, m, e, o)

	return res, nil
}

// SolveInto is Solve writing into caller-owned buffers. dst must hold exactly
// the broadcast length in each of E, CosF and SinF. On error dst is left
// untouched.
//
// Errors: ErrNilResult, ErrShapeMismatch, ErrEccentricity, ErrNonFinite.
func SolveInto(dst *Result, M, ecc []float64, opts ...Option) error {
	if dst == nil {
		return batchErrorf("SolveInto", ErrNilResult)
	}
	o := gatherOptions(opts...)

	m, e, err := prepare(M, ecc, o)
	if err != nil {
		return batchErrorf("SolveInto", err)
	}
	if err = ValidateResult(dst, len(m)); err != nil {
		return batchErrorf("SolveInto", err)
	}

	execute(dst, m, e, o)

	return nil
}

// prepare runs the broadcast and the batch-level checks.
func prepare(M, ecc []float64, o Options) (m, e []float64, err error) {
	if m, e, err = Broadcast(M, ecc); err != nil {
		return nil, nil, err
	}
	if err = ValidateEccentricity(e); err != nil {
		return nil, nil, err
	}
	if o.validateFinite {
		if err = ValidateFinite(m); err != nil {
			return nil, nil, err
		}
	}

	return m, e, nil
}

// execute fills dst from validated, equal-length inputs. Small batches (or a
// single worker) run inline; otherwise contiguous chunks are handed to at most
// o.workers goroutines. Chunks never overlap, so no synchronization beyond
// the final Wait is needed.
func execute(dst *Result, m, e []float64, o Options) {
	n := len(m)
	if o.workers == 1 || n <= o.chunkSize {
		solveRange(dst, m, e, o.tol, 0, n)
		return
	}

	var g errgroup.Group
	g.SetLimit(o.workers)
	for lo := 0; lo < n; lo += o.chunkSize {
		lo := lo // per-iteration copy (go directive < 1.22)
		hi := min(lo+o.chunkSize, n)
		g.Go(func() error {
			solveRange(dst, m, e, o.tol, lo, hi)
			return nil
		})
	}
	// Chunks cannot fail; Wait only joins.
	_ = g.Wait()
}

// solveRange solves elements [lo, hi).
func solveRange(dst *Result, m, e []float64, tol float64, lo, hi int) {
	E, cosf, sinf := dst.E[lo:hi], dst.CosF[lo:hi], dst.SinF[lo:hi]
	m, e = m[lo:hi], e[lo:hi]
	for i := range E {
		E[i], cosf[i], sinf[i] = anomaly.Solve(m[i], e[i], tol)
	}
}
