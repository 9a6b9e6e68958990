// Package homology: domain types of the engine boundary. Errors live in
// errors.go, options in options.go, per the global package conventions.
package homology

// Edge is one directed edge record in engine form.
type Edge struct {
	Source int
	Target int
	Weight float64
}

// VertexEdgeSet is the flat form an engine consumes: vertex weights indexed
// by vertex id, plus one Edge per present off-diagonal matrix entry.
// Under the static policy both carry 0/1 presence flags; under the
// persistence policy both carry raw weights.
type VertexEdgeSet struct {
	Vertices []float64
	Edges    []Edge
}

// PersistencePair is one (birth, death) point of a persistence diagram.
type PersistencePair struct {
	Birth float64
	Death float64
}

// Diagram is the persistence diagram of a single homology dimension.
type Diagram []PersistencePair

// Result is the reshaped output of one homology computation. It is created
// fresh per Compute call and owned solely by the caller: no slice aliases
// engine-held memory, and no state is shared across calls.
//
// Diagrams, CellCount and Betti are parallel, indexed by homology dimension
// starting at the requested minimum dimension.
type Result struct {
	// Diagrams holds one persistence diagram per computed dimension.
	Diagrams []Diagram

	// CellCount holds the number of cells per computed dimension.
	CellCount []int

	// Betti holds the Betti number per computed dimension.
	Betti []int

	// Euler is the Euler characteristic of the complex.
	Euler int
}
