// Package flagmat: deterministic fixture generators.
//
// Contract (shared by both generators):
//   - n ≥ 1 (else ErrInvalidOrder).
//   - Weight policy: wf(rng) per cell; a nil wf falls back to DefaultWeightFn.
//   - Stable trial order: for each row i asc, col j asc, diagonal first —
//     deterministic outcomes for a fixed seed.
//   - Self-loops never generated; the diagonal receives vertex weights.
package flagmat

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is produced by DefaultWeightFn for every cell.
const DefaultEdgeWeight float64 = 1

// WeightFn produces a weight from a seeded RNG. It must be deterministic
// for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight. Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 { return DefaultEdgeWeight }

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if max < min (programmer error).
func UniformWeightFn(min, max float64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("flagmat: UniformWeightFn: require min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if max == min {
			return min
		}

		return min + (max-min)*rng.Float64()
	}
}

// Complete builds a Dense flag matrix of order n in which every vertex and
// every directed edge receives a weight from wf.
// Determinism: diagonal i asc, then rows i asc / cols j asc.
// Complexity: O(n²).
func Complete(n int, wf WeightFn, seed int64, opts ...Option) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("flagmat: Complete(%d): %w", n, ErrInvalidOrder)
	}
	if wf == nil {
		wf = DefaultWeightFn
	}
	out, err := NewDense(n, opts...)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		out.grid.Set(i, i, coerce(out.domain, wf(rng)))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			out.grid.Set(i, j, coerce(out.domain, wf(rng)))
		}
	}

	return out, nil
}

// RandomSparse builds a Sparse flag matrix of order n: each admissible
// ordered pair (i,j), i≠j, is explicitly assigned with probability density
// (Erdős–Rényi-like, directed). Vertex weights always receive wf values.
// Determinism: fixed trial order (i asc, j asc) under a fixed seed.
// Returns ErrBadDensity when density is outside [0,1].
// Complexity: O(n²) trials.
func RandomSparse(n int, density float64, wf WeightFn, seed int64, opts ...Option) (*Sparse, error) {
	if n <= 0 {
		return nil, fmt.Errorf("flagmat: RandomSparse(%d): %w", n, ErrInvalidOrder)
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("flagmat: RandomSparse: density %g: %w", density, ErrBadDensity)
	}
	if wf == nil {
		wf = DefaultWeightFn
	}
	out, err := NewSparse(n, opts...)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		out.diag[i] = coerce(out.domain, wf(rng))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() < density {
				if err = out.SetEdge(i, j, wf(rng)); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}
