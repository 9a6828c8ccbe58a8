// Package batch is the array entry point of the Kepler solver: it takes
// parallel slices of mean anomalies and eccentricities and returns parallel
// slices of eccentric anomalies and true-anomaly pairs.
//
// 🚀 What it does
//
//	solve(M[N], ecc[N]) → (E[N], cos f[N], sin f[N])
//
//	  1. Broadcast: a length-1 operand is expanded to the other's length.
//	  2. Validate : ecc ∈ [0, 1) (and finite M) checked ONCE for the batch.
//	  3. Solve    : element-wise anomaly.Eccentric + anomaly.TrueAnomaly.
//
// ✨ Key properties:
//   - Whole-batch semantics: either every element is solved or one error is
//     returned before any output is produced.
//   - Fixed cost per element, no convergence loop, no tolerance on E.
//   - Large batches are split into contiguous chunks solved concurrently
//     (errgroup with a worker limit); chunks write disjoint output ranges.
//   - Inputs are borrowed and never mutated.
//
// ⚙️ Usage:
//
//	res, err := batch.Solve(M, ecc,
//	    batch.WithTolerance(1e-10), // apoapsis guard, not a convergence knob
//	    batch.WithWorkers(4),
//	)
//	if err != nil {
//	    // errors.Is(err, batch.ErrEccentricity) etc.
//	}
//	for i := 0; i < res.Len(); i++ {
//	    _ = res.E[i]; _ = res.CosF[i]; _ = res.SinF[i]
//	}
//
// For hot loops that solve the same batch shape repeatedly, SolveInto writes
// into caller-owned buffers.
package batch
