package homology

import (
	"fmt"
	"math"

	"github.com/katalvlaran/flagcx/flagmat"
)

// ExtractStatic converts a flag matrix into engine form under the
// unweighted/static policy: every weight is coerced to a 0/1 presence flag.
// Which edges appear at all follows the matrix storage mode — all
// off-diagonal cells on Dense, explicitly-assigned cells on Sparse — and
// the diagonal is never emitted as an edge.
// Complexity: O(n + #present).
func ExtractStatic(m flagmat.FlagMatrix) (*VertexEdgeSet, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	out := &VertexEdgeSet{Vertices: make([]float64, m.Order())}
	for i, w := range m.Diagonal() {
		out.Vertices[i] = presence(w)
	}
	err := m.EdgesDo(func(row, col int, w float64) error {
		out.Edges = append(out.Edges, Edge{Source: row, Target: col, Weight: presence(w)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ExtractPersistence converts a flag matrix into engine form under the
// weighted/persistence policy: vertex and edge weights pass through as raw
// values. Edges whose weight strictly exceeds maxEdgeLength are dropped —
// treated as infinitely distant — which trims the filtration without
// mutating the source matrix. A weight exactly equal to maxEdgeLength is
// kept. Presence follows the storage mode exactly as in ExtractStatic.
// Complexity: O(n + #present).
func ExtractPersistence(m flagmat.FlagMatrix, maxEdgeLength float64) (*VertexEdgeSet, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	out := &VertexEdgeSet{Vertices: m.Diagonal()}
	err := m.EdgesDo(func(row, col int, w float64) error {
		if w > maxEdgeLength {
			return nil // beyond the filtration horizon: absent
		}
		out.Edges = append(out.Edges, Edge{Source: row, Target: col, Weight: w})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DefaultMaxEdgeLength resolves the max edge length used when the caller
// does not set one: the maximum representable value of the matrix's value
// domain. Float64 → +Inf, Int64 → MaxInt64. Bool has no meaningful edge
// length and yields ErrDomainNoMaxLength (a configuration error, surfaced
// before any engine work).
func DefaultMaxEdgeLength(d flagmat.Domain) (float64, error) {
	switch d {
	case flagmat.Float64:
		return math.Inf(1), nil
	case flagmat.Int64:
		return float64(math.MaxInt64), nil
	default:
		return 0, fmt.Errorf("homology: domain %s: %w", d, ErrDomainNoMaxLength)
	}
}

// presence coerces a weight to a boolean presence flag: non-zero → 1.
func presence(w float64) float64 {
	if w != 0 {
		return 1
	}

	return 0
}
