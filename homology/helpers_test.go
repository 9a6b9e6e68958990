// Package homology_test: shared fixtures — a recording stub Engine and
// small matrix builders.
package homology_test

import (
	"testing"

	"github.com/katalvlaran/flagcx/flagmat"
	"github.com/katalvlaran/flagcx/homology"
	"github.com/stretchr/testify/require"
)

// stubEngine records its last invocation and replays a canned output.
type stubEngine struct {
	calls    int
	vertices []float64
	edges    []homology.Edge
	params   homology.Params

	out *homology.EngineOutput
	err error
}

func (s *stubEngine) Compute(vertices []float64, edges []homology.Edge, p homology.Params) (*homology.EngineOutput, error) {
	s.calls++
	s.vertices = vertices
	s.edges = edges
	s.params = p
	if s.err != nil {
		return nil, s.err
	}
	return s.out, nil
}

// emptyOutput is the minimal well-formed engine reply.
func emptyOutput() *homology.EngineOutput {
	return &homology.EngineOutput{
		Diagrams:  []homology.Diagram{{}},
		CellCount: []int{0},
		Betti:     []int{0},
	}
}

// sparse3 builds the canonical 3-vertex fixture: diagonal [1,2,3] and a
// single edge 0→1 of weight 5.
func sparse3(t *testing.T) *flagmat.Sparse {
	t.Helper()
	m, err := flagmat.NewSparse(3)
	require.NoError(t, err)
	require.NoError(t, m.SetVertexWeight(0, 1.0))
	require.NoError(t, m.SetVertexWeight(1, 2.0))
	require.NoError(t, m.SetVertexWeight(2, 3.0))
	require.NoError(t, m.SetEdge(0, 1, 5.0))
	return m
}
