// Package flagmat: sentinel error set.
// All constructors and mutators return these sentinels (possibly wrapped
// with fmt.Errorf("...: %w", ...)); callers match them via errors.Is.
// No public entry point panics on user-triggered conditions.
package flagmat

import "errors"

var (
	// ErrInvalidOrder indicates a requested matrix order n <= 0.
	ErrInvalidOrder = errors.New("flagmat: order must be > 0")

	// ErrOutOfRange indicates a row or column index outside [0, n).
	ErrOutOfRange = errors.New("flagmat: index out of range")

	// ErrSelfLoop indicates an attempt to set an edge (i, i).
	// The diagonal is reserved for vertex weights.
	ErrSelfLoop = errors.New("flagmat: self-loop not allowed, diagonal holds vertex weights")

	// ErrNaNWeight indicates a NaN weight at ingestion. ±Inf is permitted:
	// +Inf is the conventional "infinitely distant edge" sentinel used by
	// filtration trimming.
	ErrNaNWeight = errors.New("flagmat: NaN weight not allowed")

	// ErrNonSquare indicates a gonum matrix with rows != cols was passed
	// to an adapter that requires a square input.
	ErrNonSquare = errors.New("flagmat: matrix is not square")

	// ErrNilMatrix indicates a nil FlagMatrix (receiver or argument).
	ErrNilMatrix = errors.New("flagmat: nil matrix")

	// ErrBadDensity indicates a random-generator density outside [0, 1].
	ErrBadDensity = errors.New("flagmat: density must be in [0,1]")
)
