// Package flagmat: Dense variant.
// Dense stores the full n×n grid in a gonum mat.Dense, so every
// off-diagonal cell is a present edge — including cells holding zero,
// which are present zero-weight edges, never "no edge".
package flagmat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dense is a flag matrix in which every off-diagonal cell is present.
// The zero value is not usable; construct via NewDense or FromMatrix.
type Dense struct {
	n      int
	domain Domain
	grid   *mat.Dense // n×n backing storage
}

// compile-time interface check
var _ FlagMatrix = (*Dense)(nil)

// NewDense creates an n×n Dense flag matrix initialized to zeros.
// Stage 1 (Validate): n must be > 0; options resolved against defaults.
// Stage 2 (Allocate): gonum backing grid.
// Complexity: O(n²) time and memory.
func NewDense(n int, opts ...Option) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("flagmat: NewDense(%d): %w", n, ErrInvalidOrder)
	}
	o := gatherOptions(opts...)

	return &Dense{n: n, domain: o.domain, grid: mat.NewDense(n, n, nil)}, nil
}

// Order returns the vertex count n. Complexity: O(1).
func (m *Dense) Order() int { return m.n }

// Domain returns the matrix value domain. Complexity: O(1).
func (m *Dense) Domain() Domain { return m.domain }

// checkIndex validates a single index against [0, n).
func (m *Dense) checkIndex(i int) error {
	if i < 0 || i >= m.n {
		return fmt.Errorf("flagmat: index %d outside [0,%d): %w", i, m.n, ErrOutOfRange)
	}

	return nil
}

// checkCell validates an off-diagonal cell address.
func (m *Dense) checkCell(row, col int) error {
	if err := m.checkIndex(row); err != nil {
		return err
	}
	if err := m.checkIndex(col); err != nil {
		return err
	}
	if row == col {
		return fmt.Errorf("flagmat: cell (%d,%d): %w", row, col, ErrSelfLoop)
	}

	return nil
}

// VertexWeight returns the diagonal entry i. Complexity: O(1).
func (m *Dense) VertexWeight(i int) (float64, error) {
	if err := m.checkIndex(i); err != nil {
		return 0, err
	}

	return m.grid.At(i, i), nil
}

// SetVertexWeight assigns the diagonal entry i. Complexity: O(1).
func (m *Dense) SetVertexWeight(i int, w float64) error {
	if err := m.checkIndex(i); err != nil {
		return err
	}
	if math.IsNaN(w) {
		return ErrNaNWeight
	}
	m.grid.Set(i, i, coerce(m.domain, w))

	return nil
}

// Diagonal returns a fresh copy of the vertex weights. Complexity: O(n).
func (m *Dense) Diagonal() []float64 {
	diag := make([]float64, m.n)
	for i := 0; i < m.n; i++ {
		diag[i] = m.grid.At(i, i)
	}

	return diag
}

// EdgeWeight returns the off-diagonal entry (row, col); present is always
// true on Dense for a valid cell. Complexity: O(1).
func (m *Dense) EdgeWeight(row, col int) (float64, bool, error) {
	if err := m.checkCell(row, col); err != nil {
		return 0, false, err
	}

	return m.grid.At(row, col), true, nil
}

// SetEdge assigns the off-diagonal entry (row, col). Complexity: O(1).
func (m *Dense) SetEdge(row, col int, w float64) error {
	if err := m.checkCell(row, col); err != nil {
		return err
	}
	if math.IsNaN(w) {
		return ErrNaNWeight
	}
	m.grid.Set(row, col, coerce(m.domain, w))

	return nil
}

// NumEdges returns n·(n−1): on Dense every off-diagonal cell is present.
// Complexity: O(1).
func (m *Dense) NumEdges() int { return m.n * (m.n - 1) }

// EdgesDo visits every off-diagonal cell in row-major order, stored zeros
// included. Stops on the first non-nil fn error and returns it.
// Complexity: O(n²).
func (m *Dense) EdgesDo(fn func(row, col int, weight float64) error) error {
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if i == j {
				continue // diagonal holds vertex weights
			}
			if err := fn(i, j, m.grid.At(i, j)); err != nil {
				return err
			}
		}
	}

	return nil
}

// Clone returns an independent deep copy. Complexity: O(n²).
func (m *Dense) Clone() FlagMatrix {
	grid := mat.NewDense(m.n, m.n, nil)
	grid.Copy(m.grid)

	return &Dense{n: m.n, domain: m.domain, grid: grid}
}

// Matrix exposes the backing grid as a read-only gonum mat.Matrix, so the
// flag matrix can feed gonum routines without copying. Mutating the Dense
// afterwards is visible through the returned view.
func (m *Dense) Matrix() mat.Matrix { return m.grid }
