package homology

// Engine sentinel values. They exist only on the wire of the boundary call:
// option state is kept explicit everywhere inside the package and collapsed
// to these integers exclusively in boundaryParams.
const (
	// UnboundedDimension requests no maximum-dimension bound.
	UnboundedDimension = -1

	// NoApproximation requests full precision.
	NoApproximation = -1
)

// Params is the scalar parameter block of one engine call. MaxDimension and
// Approximation are sentinel-encoded at this point (and nowhere earlier).
// Coefficient and Directed are passed through unvalidated: their validity
// is the engine's responsibility.
type Params struct {
	MinDimension  int
	MaxDimension  int // ≥ 0, or UnboundedDimension
	Directed      bool
	Coefficient   int
	Approximation int // budget (negative = highest precision), or NoApproximation
	Filtration    string
}

// EngineOutput is the raw result of one engine call, before reshaping into
// a caller-owned Result. Slices may alias engine-held memory; Compute
// copies them.
type EngineOutput struct {
	Diagrams  []Diagram
	CellCount []int
	Betti     []int
	Euler     int
}

// Engine is the black-box homology computation boundary: a synchronous
// call consuming the extracted vertex/edge form plus scalar parameters.
// Implementations may wrap a native library, a subprocess, or a test stub.
// Compute* blocks until the engine returns; any engine failure is passed
// back to the caller unchanged.
type Engine interface {
	Compute(vertices []float64, edges []Edge, p Params) (*EngineOutput, error)
}

// boundaryParams collapses resolved options into wire Params. This is the
// single place the -1 sentinels are produced.
func boundaryParams(o Options) Params {
	p := Params{
		MinDimension:  o.minDim,
		MaxDimension:  UnboundedDimension,
		Directed:      o.directed,
		Coefficient:   o.coefficient,
		Approximation: NoApproximation,
		Filtration:    o.filtration,
	}
	if !o.unboundedDim {
		p.MaxDimension = o.maxDim
	}
	if !o.noApproximation {
		p.Approximation = o.approximation
	}

	return p
}
