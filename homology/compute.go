package homology

import (
	"math"

	"github.com/katalvlaran/flagcx/flagmat"
)

// ComputeStatic computes homology of an unweighted flag complex.
// Stage 1 (Validate): nil checks, filtration registry — fail fast, no
// partial work before the first possible failure point is cleared.
// Stage 2 (Extract): static policy, weights coerced to presence flags.
// Stage 3 (Boundary): sentinel-encoded Params, one blocking engine call.
// Stage 4 (Reshape): copy engine output into a caller-owned Result.
// Engine failures return unchanged. Complexity: extraction plus the engine.
func ComputeStatic(eng Engine, m flagmat.FlagMatrix, opts ...Option) (*Result, error) {
	if eng == nil {
		return nil, ErrNilEngine
	}
	if m == nil {
		return nil, ErrNilMatrix
	}
	o := gatherOptions(opts...)
	if err := validateFiltration(o.filtration); err != nil {
		return nil, err
	}

	set, err := ExtractStatic(m)
	if err != nil {
		return nil, err
	}
	out, err := eng.Compute(set.Vertices, set.Edges, boundaryParams(o))
	if err != nil {
		return nil, err
	}

	return reshape(out, math.Inf(1)), nil
}

// ComputePersistence computes persistent homology of a weighted flag
// complex. Follows the same staging as ComputeStatic, with two additions:
// the max edge length is resolved (explicit option, else the domain default
// — ErrDomainNoMaxLength for domains with none), and infinite birth/death
// values in the returned diagrams are substituted with that resolved length
// so diagram points always carry finite coordinates.
func ComputePersistence(eng Engine, m flagmat.FlagMatrix, opts ...Option) (*Result, error) {
	if eng == nil {
		return nil, ErrNilEngine
	}
	if m == nil {
		return nil, ErrNilMatrix
	}
	o := gatherOptions(opts...)
	if err := validateFiltration(o.filtration); err != nil {
		return nil, err
	}

	maxEdgeLength := o.maxEdgeLength
	if !o.hasMaxEdgeLength {
		var err error
		if maxEdgeLength, err = DefaultMaxEdgeLength(m.Domain()); err != nil {
			return nil, err
		}
	}

	set, err := ExtractPersistence(m, maxEdgeLength)
	if err != nil {
		return nil, err
	}
	out, err := eng.Compute(set.Vertices, set.Edges, boundaryParams(o))
	if err != nil {
		return nil, err
	}

	return reshape(out, maxEdgeLength), nil
}

// reshape deep-copies engine output into a fresh Result, substituting +Inf
// diagram coordinates with posInf (the resolved max edge length under the
// persistence policy). The copy guarantees the Result shares no memory with
// the engine: callers own it outright.
func reshape(out *EngineOutput, posInf float64) *Result {
	res := &Result{
		Diagrams:  make([]Diagram, len(out.Diagrams)),
		CellCount: make([]int, len(out.CellCount)),
		Betti:     make([]int, len(out.Betti)),
		Euler:     out.Euler,
	}
	copy(res.CellCount, out.CellCount)
	copy(res.Betti, out.Betti)
	for d, dgm := range out.Diagrams {
		cp := make(Diagram, len(dgm))
		for i, pair := range dgm {
			if math.IsInf(pair.Birth, 1) {
				pair.Birth = posInf
			}
			if math.IsInf(pair.Death, 1) {
				pair.Death = posInf
			}
			cp[i] = pair
		}
		res.Diagrams[d] = cp
	}

	return res
}
