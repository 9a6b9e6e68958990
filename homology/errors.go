package homology

import "errors"

// Sentinel errors. Configuration failures surface before any extraction or
// engine work; engine-reported failures are returned unchanged, never
// reinterpreted or masked.
var (
	// ErrNilEngine indicates a nil Engine passed to a Compute entry point.
	ErrNilEngine = errors.New("homology: nil engine")

	// ErrNilMatrix indicates a nil flag matrix.
	ErrNilMatrix = errors.New("homology: nil matrix")

	// ErrUnknownFiltration indicates a filtration name outside the fixed
	// registry; the wrapping message names the value and the valid set.
	ErrUnknownFiltration = errors.New("homology: filtration not recognized")

	// ErrDomainNoMaxLength indicates a matrix value domain for which no
	// default max edge length exists (currently Bool). Pass an explicit
	// WithMaxEdgeLength instead, or use ComputeStatic.
	ErrDomainNoMaxLength = errors.New("homology: no default max edge length for this domain")
)
