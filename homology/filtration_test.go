// Package homology_test contains unit tests for the filtration registry.
package homology_test

import (
	"testing"

	"github.com/katalvlaran/flagcx/homology"
	"github.com/stretchr/testify/require"
)

// allFiltrations is the closed set the registry must expose, exactly.
var allFiltrations = []string{
	"dimension", "max", "max3", "max_plus_one", "pmean", "pmoment",
	"product", "remove_edges", "sum", "vertex_degree", "zero",
}

// TestFiltrationsRegistry verifies the sorted registry contents.
func TestFiltrationsRegistry(t *testing.T) {
	require.Equal(t, allFiltrations, homology.Filtrations())
}

// TestFiltrationsReturnsCopy ensures callers cannot corrupt the registry.
func TestFiltrationsReturnsCopy(t *testing.T) {
	got := homology.Filtrations()
	got[0] = "corrupted"
	require.Equal(t, allFiltrations, homology.Filtrations())
}

// TestEachValidFiltrationAccepted runs a compute with every registry name.
func TestEachValidFiltrationAccepted(t *testing.T) {
	for _, name := range allFiltrations {
		name := name
		t.Run(name, func(t *testing.T) {
			eng := &stubEngine{out: emptyOutput()}
			m := sparse3(t)
			_, err := homology.ComputeStatic(eng, m, homology.WithFiltration(name))
			require.NoError(t, err)
			require.Equal(t, name, eng.params.Filtration)
		})
	}
}

// TestUnknownFiltrationRejected verifies the fail-fast configuration error,
// naming the bogus value and listing the valid set — and that the engine
// was never called.
func TestUnknownFiltrationRejected(t *testing.T) {
	eng := &stubEngine{out: emptyOutput()}
	m := sparse3(t)

	_, err := homology.ComputeStatic(eng, m, homology.WithFiltration("bogus"))
	require.ErrorIs(t, err, homology.ErrUnknownFiltration)
	require.Contains(t, err.Error(), `"bogus"`)
	for _, name := range allFiltrations {
		require.Contains(t, err.Error(), name)
	}
	require.Zero(t, eng.calls) // fail fast: no engine work attempted

	_, err = homology.ComputePersistence(eng, m, homology.WithFiltration("bogus"))
	require.ErrorIs(t, err, homology.ErrUnknownFiltration)
	require.Zero(t, eng.calls)
}
