// Package flagmat: Sparse variant.
// Sparse tracks only explicitly-assigned off-diagonal cells in a
// dictionary-of-keys map, plus a separate key list recording first-assignment
// order. Presence is map containment — never a comparison against zero — so
// an assigned zero stays a present zero-weight edge while an unassigned cell
// stays absent.
package flagmat

import (
	"fmt"
	"math"
)

// cellKey addresses one off-diagonal cell.
type cellKey struct {
	row, col int
}

// Sparse is a flag matrix in which only explicitly-assigned off-diagonal
// cells are present. The diagonal (vertex weights) is always fully present,
// stored apart from the edge map.
type Sparse struct {
	n      int
	domain Domain
	diag   []float64           // vertex weights, length n
	cells  map[cellKey]float64 // present off-diagonal entries
	order  []cellKey           // first-assignment order, drives EdgesDo
}

// compile-time interface check
var _ FlagMatrix = (*Sparse)(nil)

// NewSparse creates an n×n Sparse flag matrix with no present edges and an
// all-zero diagonal.
// Complexity: O(n) time and memory (diagonal only).
func NewSparse(n int, opts ...Option) (*Sparse, error) {
	if n <= 0 {
		return nil, fmt.Errorf("flagmat: NewSparse(%d): %w", n, ErrInvalidOrder)
	}
	o := gatherOptions(opts...)

	return &Sparse{
		n:      n,
		domain: o.domain,
		diag:   make([]float64, n),
		cells:  make(map[cellKey]float64),
	}, nil
}

// Order returns the vertex count n. Complexity: O(1).
func (m *Sparse) Order() int { return m.n }

// Domain returns the matrix value domain. Complexity: O(1).
func (m *Sparse) Domain() Domain { return m.domain }

func (m *Sparse) checkIndex(i int) error {
	if i < 0 || i >= m.n {
		return fmt.Errorf("flagmat: index %d outside [0,%d): %w", i, m.n, ErrOutOfRange)
	}

	return nil
}

func (m *Sparse) checkCell(row, col int) error {
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
func (m *Sparse) VertexWeight(i int) (float64, error) {
	if err := m.checkIndex(i); err != nil {
		return 0, err
	}

	return m.diag[i], nil
}

// SetVertexWeight assigns the diagonal entry i. Complexity: O(1).
func (m *Sparse) SetVertexWeight(i int, w float64) error {
	if err := m.checkIndex(i); err != nil {
		return err
	}
	if math.IsNaN(w) {
		return ErrNaNWeight
	}
	m.diag[i] = coerce(m.domain, w)

	return nil
}

// Diagonal returns a fresh copy of the vertex weights. Complexity: O(n).
func (m *Sparse) Diagonal() []float64 {
	diag := make([]float64, m.n)
	copy(diag, m.diag)

	return diag
}

// EdgeWeight returns the entry (row, col) and whether it was ever assigned.
// An assigned zero reports (0, true, nil); an unassigned cell (0, false, nil).
// Complexity: O(1).
func (m *Sparse) EdgeWeight(row, col int) (float64, bool, error) {
	if err := m.checkCell(row, col); err != nil {
		return 0, false, err
	}
	w, ok := m.cells[cellKey{row, col}]

	return w, ok, nil
}

// SetEdge explicitly assigns the cell (row, col), making it present even
// when w == 0. Re-assignment updates the value in place and keeps the
// cell's original position in the enumeration order.
// Complexity: O(1) amortized.
func (m *Sparse) SetEdge(row, col int, w float64) error {
	if err := m.checkCell(row, col); err != nil {
		return err
	}
	if math.IsNaN(w) {
		return ErrNaNWeight
	}
	k := cellKey{row, col}
	if _, seen := m.cells[k]; !seen {
		m.order = append(m.order, k)
	}
	m.cells[k] = coerce(m.domain, w)

	return nil
}

// NumEdges returns the explicit-assignment count. Complexity: O(1).
func (m *Sparse) NumEdges() int { return len(m.order) }

// EdgesDo visits explicitly-assigned cells in first-assignment order.
// This order is deliberately passed through to the on-disk format, so a
// save/load cycle reproduces the file byte-for-byte.
// Complexity: O(#present).
func (m *Sparse) EdgesDo(fn func(row, col int, weight float64) error) error {
	for _, k := range m.order {
		if err := fn(k.row, k.col, m.cells[k]); err != nil {
			return err
		}
	}

	return nil
}

// Clone returns an independent deep copy, enumeration order included.
// Complexity: O(n + #present).
func (m *Sparse) Clone() FlagMatrix {
	out := &Sparse{
		n:      m.n,
		domain: m.domain,
		diag:   make([]float64, m.n),
		cells:  make(map[cellKey]float64, len(m.cells)),
		order:  make([]cellKey, len(m.order)),
	}
	copy(out.diag, m.diag)
	copy(out.order, m.order)
	for k, v := range m.cells {
		out.cells[k] = v
	}

	return out
}
