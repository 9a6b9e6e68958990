// Package homology_test contains unit tests for the Compute entry points:
// option normalization at the engine boundary, reshaping, and error flow.
package homology_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/flagcx/flagmat"
	"github.com/katalvlaran/flagcx/homology"
	"github.com/stretchr/testify/require"
)

// TestComputeStaticDefaults verifies the documented defaults reach the
// engine sentinel-encoded: unbounded dimension and no approximation are -1,
// directed true, filtration "max", coefficient 2.
func TestComputeStaticDefaults(t *testing.T) {
	eng := &stubEngine{out: emptyOutput()}

	_, err := homology.ComputeStatic(eng, sparse3(t))
	require.NoError(t, err)
	require.Equal(t, 1, eng.calls)

	require.Equal(t, homology.Params{
		MinDimension:  0,
		MaxDimension:  homology.UnboundedDimension,
		Directed:      true,
		Coefficient:   2,
		Approximation: homology.NoApproximation,
		Filtration:    "max",
	}, eng.params)

	// Static policy: vertices and edges arrive as presence flags.
	require.Equal(t, []float64{1, 1, 1}, eng.vertices)
	require.Equal(t, []homology.Edge{{Source: 0, Target: 1, Weight: 1}}, eng.edges)
}

// TestComputeExplicitOptions verifies concrete bounds pass through unchanged
// and sentinels are produced only for the explicit "unbounded"/"none" states.
func TestComputeExplicitOptions(t *testing.T) {
	eng := &stubEngine{out: emptyOutput()}

	_, err := homology.ComputePersistence(eng, sparse3(t),
		homology.WithMinDimension(1),
		homology.WithMaxDimension(3),
		homology.WithUndirected(),
		homology.WithCoefficient(7),
		homology.WithApproximation(100000),
		homology.WithFiltration("vertex_degree"),
	)
	require.NoError(t, err)

	require.Equal(t, homology.Params{
		MinDimension:  1,
		MaxDimension:  3,
		Directed:      false,
		Coefficient:   7,
		Approximation: 100000,
		Filtration:    "vertex_degree",
	}, eng.params)
}

// TestComputeNegativeApproximationPassesThrough: a negative budget is a
// valid "highest precision" request, not a sentinel produced by us.
func TestComputeNegativeApproximationPassesThrough(t *testing.T) {
	eng := &stubEngine{out: emptyOutput()}

	_, err := homology.ComputeStatic(eng, sparse3(t), homology.WithApproximation(-5))
	require.NoError(t, err)
	require.Equal(t, -5, eng.params.Approximation)
}

// TestComputePersistenceEndToEnd walks the canonical 3-vertex example
// through extraction with explicit max edge lengths.
func TestComputePersistenceEndToEnd(t *testing.T) {
	eng := &stubEngine{out: emptyOutput()}
	m := sparse3(t)

	_, err := homology.ComputePersistence(eng, m, homology.WithMaxEdgeLength(10))
	require.NoError(t, err)
	require.Equal(t, []float64{1.0, 2.0, 3.0}, eng.vertices)
	require.Equal(t, []homology.Edge{{Source: 0, Target: 1, Weight: 5.0}}, eng.edges)

	_, err = homology.ComputePersistence(eng, m, homology.WithMaxEdgeLength(4))
	require.NoError(t, err)
	require.Empty(t, eng.edges) // 5.0 > 4: trimmed out
}

// TestComputePersistenceDomainDefault verifies default max-edge-length
// resolution: Float64 keeps +Inf weights, Bool fails fast before the engine.
func TestComputePersistenceDomainDefault(t *testing.T) {
	eng := &stubEngine{out: emptyOutput()}

	m := sparse3(t)
	require.NoError(t, m.SetEdge(1, 2, math.Inf(1)))
	_, err := homology.ComputePersistence(eng, m)
	require.NoError(t, err)
	require.Len(t, eng.edges, 2) // +Inf ≤ +Inf default: kept

	boolMat, err := flagmat.NewSparse(2, flagmat.WithDomain(flagmat.Bool))
	require.NoError(t, err)
	eng.calls = 0
	_, err = homology.ComputePersistence(eng, boolMat)
	require.ErrorIs(t, err, homology.ErrDomainNoMaxLength)
	require.Zero(t, eng.calls)

	// An explicit max edge length overrides the domain resolution entirely.
	_, err = homology.ComputePersistence(eng, boolMat, homology.WithMaxEdgeLength(1))
	require.NoError(t, err)
}

// TestComputeReshapesOutput verifies the Result is a deep copy with +Inf
// diagram coordinates substituted by the resolved max edge length.
func TestComputeReshapesOutput(t *testing.T) {
	out := &homology.EngineOutput{
		Diagrams: []homology.Diagram{
			{{Birth: 0, Death: math.Inf(1)}, {Birth: 1, Death: 2}},
			{{Birth: 3, Death: math.Inf(1)}},
		},
		CellCount: []int{3, 1},
		Betti:     []int{1, 0},
		Euler:     2,
	}
	eng := &stubEngine{out: out}

	res, err := homology.ComputePersistence(eng, sparse3(t), homology.WithMaxEdgeLength(9))
	require.NoError(t, err)

	require.Equal(t, homology.Diagram{{Birth: 0, Death: 9}, {Birth: 1, Death: 2}}, res.Diagrams[0])
	require.Equal(t, homology.Diagram{{Birth: 3, Death: 9}}, res.Diagrams[1])
	require.Equal(t, []int{3, 1}, res.CellCount)
	require.Equal(t, []int{1, 0}, res.Betti)
	require.Equal(t, 2, res.Euler)

	// Deep copy: mutating the engine's buffers must not touch the Result.
	out.CellCount[0] = 99
	out.Diagrams[0][1].Death = 99
	require.Equal(t, 3, res.CellCount[0])
	require.Equal(t, 2.0, res.Diagrams[0][1].Death)
}

// TestComputeStaticKeepsInfiniteDeaths verifies the static policy performs
// no substitution: infinite deaths stay infinite.
func TestComputeStaticKeepsInfiniteDeaths(t *testing.T) {
	eng := &stubEngine{out: &homology.EngineOutput{
		Diagrams:  []homology.Diagram{{{Birth: 0, Death: math.Inf(1)}}},
		CellCount: []int{1},
		Betti:     []int{1},
	}}

	res, err := homology.ComputeStatic(eng, sparse3(t))
	require.NoError(t, err)
	require.True(t, math.IsInf(res.Diagrams[0][0].Death, 1))
}

// TestComputeEngineErrorPassthrough verifies engine failures come back
// unchanged, with no reinterpretation.
func TestComputeEngineErrorPassthrough(t *testing.T) {
	engineErr := errors.New("flagser: reduction failed")
	eng := &stubEngine{err: engineErr}

	_, err := homology.ComputeStatic(eng, sparse3(t))
	require.Equal(t, engineErr, err)

	_, err = homology.ComputePersistence(eng, sparse3(t))
	require.Equal(t, engineErr, err)
}

// TestComputeNilArguments verifies the nil guards.
func TestComputeNilArguments(t *testing.T) {
	_, err := homology.ComputeStatic(nil, sparse3(t))
	require.ErrorIs(t, err, homology.ErrNilEngine)

	_, err = homology.ComputePersistence(&stubEngine{}, nil)
	require.ErrorIs(t, err, homology.ErrNilMatrix)
}

// TestOptionConstructorPanics documents the programmer-error panics.
func TestOptionConstructorPanics(t *testing.T) {
	require.Panics(t, func() { homology.WithMaxDimension(-1) })
	require.Panics(t, func() { homology.WithMaxEdgeLength(math.NaN()) })
}
