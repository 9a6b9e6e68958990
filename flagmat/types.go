// Package flagmat: domain-facing types shared by the Dense and Sparse
// variants. Errors live in errors.go, options in options.go, per the
// global package conventions.
package flagmat

import "math"

// Domain identifies the value domain of a flag matrix. It is an attribute
// of the matrix, not of individual entries, and drives two behaviors
// downstream: the on-disk edge-record shape (Bool matrices omit the weight
// column) and the default max-edge-length resolution for persistence
// extraction (Float64 → +Inf, Int64 → MaxInt64, Bool → unsupported).
type Domain int

const (
	// Float64 is the default domain: IEEE-754 double weights.
	Float64 Domain = iota
	// Int64 restricts weights to integers; Set truncates toward zero.
	Int64
	// Bool restricts weights to presence flags; Set coerces non-zero to 1.
	Bool
)

// String implements fmt.Stringer for diagnostics and CLI output.
func (d Domain) String() string {
	switch d {
	case Float64:
		return "float64"
	case Int64:
		return "int64"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// valid reports whether d belongs to the closed domain set.
func (d Domain) valid() bool {
	return d == Float64 || d == Int64 || d == Bool
}

// FlagMatrix is the capability surface shared by all variants.
// It deliberately exposes presence as a first-class notion (EdgeWeight's
// present flag, EdgesDo's enumeration) instead of a numeric sentinel, so
// that "assigned zero" and "unassigned" can never be conflated.
//
// Complexity notes: accessors are O(1) except Diagonal (O(n)), EdgesDo
// (O(#present)) and Clone (O(storage)).
type FlagMatrix interface {
	// Order returns n, the vertex count (= row = column count).
	Order() int

	// Domain returns the matrix value domain.
	Domain() Domain

	// VertexWeight returns the diagonal entry i.
	// Returns ErrOutOfRange if i is outside [0, n).
	VertexWeight(i int) (float64, error)

	// SetVertexWeight assigns the diagonal entry i.
	// Returns ErrOutOfRange or ErrNaNWeight.
	SetVertexWeight(i int, w float64) error

	// Diagonal returns a fresh copy of the n vertex weights.
	Diagonal() []float64

	// EdgeWeight returns the off-diagonal entry (row, col) together with
	// its presence. Dense variants report present=true for every valid
	// off-diagonal cell; Sparse variants only for explicitly-assigned ones.
	// Returns ErrOutOfRange on bad indices, ErrSelfLoop when row == col.
	EdgeWeight(row, col int) (w float64, present bool, err error)

	// SetEdge assigns the off-diagonal entry (row, col). On Sparse this is
	// an explicit assignment: the cell becomes present even when w == 0.
	// Returns ErrOutOfRange, ErrSelfLoop or ErrNaNWeight.
	SetEdge(row, col int, w float64) error

	// NumEdges returns the number of present off-diagonal entries:
	// n·(n−1) on Dense, the explicit-assignment count on Sparse.
	NumEdges() int

	// EdgesDo calls fn once per present off-diagonal entry and stops on the
	// first non-nil error, returning it. Enumeration order is part of the
	// contract: row-major on Dense, first-assignment order on Sparse (the
	// codec passes this order through to disk for round-trip fidelity).
	// The diagonal is never visited.
	EdgesDo(fn func(row, col int, weight float64) error) error

	// Clone returns an independent deep copy of the same variant.
	Clone() FlagMatrix
}

// coerce maps w into domain d: Bool → {0,1}, Int64 → trunc(w), Float64 → w.
// Callers have already rejected NaN.
func coerce(d Domain, w float64) float64 {
	switch d {
	case Bool:
		if w != 0 {
			return 1
		}
		return 0
	case Int64:
		return math.Trunc(w)
	default:
		return w
	}
}
