// Package flagmat provides square matrix representations of weighted,
// possibly directed graphs, in the form consumed by flag-complex tooling:
// diagonal entries are vertex weights, off-diagonal entries are edge weights.
//
// 🚀 What is a flag matrix?
//
//	An n×n numeric matrix encoding a graph on n vertices:
//	  • cell (i,i) — weight of vertex i, always present
//	  • cell (i,j), i≠j — weight of the edge i→j, present or absent
//	Self-loops are disallowed: the diagonal is reserved for vertex weights.
//
// ✨ The one invariant that matters:
//
//	Whether a zero means "zero-weight edge" or "no edge at all" is a
//	property of the STORAGE, not of the value.
//	  • Dense  — every off-diagonal cell is a present edge; a stored zero
//	    is an edge of weight 0, appearing at filtration value zero.
//	  • Sparse — only explicitly-assigned cells are present; an assigned
//	    zero is a present zero-weight edge, while a cell that was never
//	    assigned is no edge at all.
//	Conflating the two silently corrupts downstream filtrations, so
//	presence is always decided by an explicit containment check, never by
//	comparing a value against zero.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/flagcx/flagmat"
//
//	m, _ := flagmat.NewSparse(3)
//	_ = m.SetVertexWeight(0, 1.0)
//	_ = m.SetEdge(0, 1, 0.0) // present zero-weight edge
//	// cell (1,0) was never assigned: absent, NOT a zero-weight edge
//
// Both variants satisfy the FlagMatrix interface; iteration over present
// edges goes through EdgesDo, which preserves assignment order on Sparse
// and row-major order on Dense.
package flagmat
