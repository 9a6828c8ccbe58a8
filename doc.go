// Package kepler is a fast, non-iterative solver for Kepler's equation
//
//	E − ecc·sin E = M  (mod 2π),  0 ≤ ecc < 1
//
// returning the eccentric anomaly E and the true-anomaly pair (cos f, sin f)
// for whole arrays of mean anomalies at once. It is meant for orbit and
// light-curve codes that evaluate millions of positions per fit.
//
// 🚀 Why non-iterative?
//
//	A Newton loop has a data-dependent step count and can crawl near
//	ecc → 1. Here every element costs the same: a closed-form starter
//	(Markley 1995) plus exactly one fifth-order correction (Nijenhuis 1991)
//	reach double precision over the whole domain.
//
// Under the hood the module is split into:
//
//	anomaly/    - scalar core: range reduction, starter, corrector, true anomaly
//	batch/      - array entry point: broadcasting, validation, options, parallel chunks
//	cmd/kepler/ - CSV/JSON command-line front end
//
// Quick example:
//
//	res, err := batch.Solve(M, []float64{0.3})
//	// res.E[i], res.CosF[i], res.SinF[i]
//
//	go get github.com/katalvlaran/kepler
package kepler
