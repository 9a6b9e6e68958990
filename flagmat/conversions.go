// Package flagmat: converters between variants and to/from gonum matrices.
//
// Converting Sparse → Dense is lossy in one specific, documented way: cells
// that were absent in the Sparse become present zero-weight edges in the
// Dense, because Dense has no notion of absence. Keep that in mind before
// handing a converted matrix to persistence extraction.
package flagmat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FromMatrix adapts a square gonum mat.Matrix into a Dense flag matrix:
// the diagonal becomes the vertex weights, every off-diagonal cell a present
// edge. The input is copied; later mutations of src are not reflected.
// Returns ErrNonSquare on rectangular input, ErrNaNWeight on NaN entries.
// Complexity: O(n²).
func FromMatrix(src mat.Matrix, opts ...Option) (*Dense, error) {
	r, c := src.Dims()
	if r != c {
		return nil, fmt.Errorf("flagmat: FromMatrix(%dx%d): %w", r, c, ErrNonSquare)
	}
	out, err := NewDense(r, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := src.At(i, j)
			if math.IsNaN(v) {
				return nil, fmt.Errorf("flagmat: FromMatrix: cell (%d,%d): %w", i, j, ErrNaNWeight)
			}
			out.grid.Set(i, j, coerce(out.domain, v))
		}
	}

	return out, nil
}

// ToSparse converts any FlagMatrix into a Sparse one, preserving the present
// set exactly: only entries enumerated by EdgesDo become explicit
// assignments, in the same order. Converting a Dense therefore yields a
// Sparse in which every off-diagonal cell is explicitly assigned.
// Complexity: O(n + #present).
func ToSparse(m FlagMatrix) (*Sparse, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	out, err := NewSparse(m.Order(), WithDomain(m.Domain()))
	if err != nil {
		return nil, err
	}
	for i, w := range m.Diagonal() {
		out.diag[i] = w
	}
	if err = m.EdgesDo(out.SetEdge); err != nil {
		return nil, err
	}

	return out, nil
}

// ToDense converts any FlagMatrix into a Dense one. Absent cells of a
// Sparse input become present zero-weight edges — see the package note.
// Complexity: O(n²).
func ToDense(m FlagMatrix) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	out, err := NewDense(m.Order(), WithDomain(m.Domain()))
	if err != nil {
		return nil, err
	}
	for i, w := range m.Diagonal() {
		out.grid.Set(i, i, w)
	}
	if err = m.EdgesDo(out.SetEdge); err != nil {
		return nil, err
	}

	return out, nil
}
