package flagio

import "errors"

// Sentinel errors for .flag parsing. Load wraps each of them with the
// 1-based line number of the offending input; match via errors.Is.
// I/O failures from the underlying stream are propagated unchanged.
var (
	// ErrMissingHeader indicates the input ended before the vertex-weight
	// header line.
	ErrMissingHeader = errors.New("flagio: missing 'dim 0' header line")

	// ErrNoVertices indicates the vertex-weight line is missing or empty.
	ErrNoVertices = errors.New("flagio: missing vertex-weight line")

	// ErrEdgeTokens indicates an edge record with fewer than three tokens.
	ErrEdgeTokens = errors.New("flagio: edge line needs 'row col weight'")

	// ErrBadNumber indicates a token that does not parse as a float.
	ErrBadNumber = errors.New("flagio: malformed numeric token")

	// ErrIndexRange indicates an edge endpoint outside [0, n), where n is
	// the vertex count inferred from the vertex-weight line.
	ErrIndexRange = errors.New("flagio: edge index out of range")

	// ErrNilMatrix indicates a nil matrix passed to Save.
	ErrNilMatrix = errors.New("flagio: nil matrix")
)
