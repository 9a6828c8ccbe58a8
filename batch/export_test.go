package batch

// Test bridge: exposes the resolved options and panic messages to batch_test
// without widening the production API.

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Tol            float64
	Workers        int
	ChunkSize      int
	ValidateFinite bool
}

// GatherOptionsSnapshot resolves opts exactly as Solve does.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Tol:            o.tol,
		Workers:        o.workers,
		ChunkSize:      o.chunkSize,
		ValidateFinite: o.validateFinite,
	}
}

// Panic message exports to avoid magic strings in tests.
const (
	PanicToleranceInvalid = panicToleranceInvalid
	PanicWorkersInvalid   = panicWorkersInvalid
	PanicChunkSizeInvalid = panicChunkSizeInvalid
)
