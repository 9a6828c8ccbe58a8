// SPDX-License-Identifier: MIT

// Package batch: functional configuration for the batch solver.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults and overrides.
//
// Design goals:
//   - Deterministic behavior: output does not depend on workers or chunk size.
//   - No dead switches: each option changes behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package batch

import (
	"math"
	"runtime"

	"github.com/katalvlaran/kepler/anomaly"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the apoapsis guard threshold on 1 + cos E.
	// It never changes the cost of the solve.
	DefaultTolerance = anomaly.DefaultTolerance

	// DefaultWorkers = 0 means "use runtime.GOMAXPROCS(0) at call time".
	DefaultWorkers = 0

	// DefaultChunkSize is the number of elements one goroutine solves in a
	// row. Batches no longer than this run inline on the caller's goroutine.
	DefaultChunkSize = 8192

	// DefaultValidateFinite rejects NaN/±Inf mean anomalies up front.
	DefaultValidateFinite = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "batch: WithTolerance: tol must be finite, non-negative"
	panicWorkersInvalid   = "batch: WithWorkers: n must be >= 1"
	panicChunkSizeInvalid = "batch: WithChunkSize: n must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Options are applied in order; the last
// writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	tol            float64 // >= 0; DefaultTolerance
	workers        int     // >= 1 after gatherOptions
	chunkSize      int     // >= 1; DefaultChunkSize
	validateFinite bool    // DefaultValidateFinite
}

// WithTolerance sets the apoapsis guard threshold: elements with
// 1 + cos E <= tol return cos f = −1, sin f = 0.
//
// Panics if tol is NaN, ±Inf or negative.
//
// Notes:
//   - This is NOT a convergence tolerance; the solver has fixed cost.
//   - The default 1e-10 keeps tan(f/2) well inside float64 range.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithWorkers caps the number of goroutines solving chunks concurrently.
// WithWorkers(1) forces a single-goroutine solve. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithChunkSize sets the number of contiguous elements per goroutine.
// Panics if n < 1.
//
// AI-Hints:
//   - Per-element cost is ~two Sincos calls; chunks of a few thousand keep
//     goroutine overhead negligible.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic(panicChunkSizeInvalid)
	}

	return func(o *Options) { o.chunkSize = n }
}

// WithValidateFinite rejects NaN/±Inf mean anomalies with ErrNonFinite (default).
func WithValidateFinite() Option {
	return func(o *Options) { o.validateFinite = true }
}

// WithNoValidateFinite lets NaN/±Inf mean anomalies through; the matching
// outputs are then NaN. Eccentricity is always validated.
func WithNoValidateFinite() Option {
	return func(o *Options) { o.validateFinite = false }
}

// gatherOptions applies user-provided setters on top of the defaults and
// resolves DefaultWorkers to runtime.GOMAXPROCS(0).
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:            DefaultTolerance,
		workers:        DefaultWorkers,
		chunkSize:      DefaultChunkSize,
		validateFinite: DefaultValidateFinite,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
