package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flagcx/flagio"
)

const fixture = "dim 0\n1.0 2.0 3.0\ndim 1\n0 1 5.0\n1 2 12.0\n"

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.flag")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))
	return path
}

// TestInspectCommand verifies the summary output fields.
func TestInspectCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"inspect", writeFixture(t)})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "vertices: 3")
	require.Contains(t, out.String(), "edges:    2")
	require.Contains(t, out.String(), "weights:  [5, 12]")
}

// TestTrimCommand verifies heavy edges are dropped, equal-weight kept.
func TestTrimCommand(t *testing.T) {
	in := writeFixture(t)
	outPath := filepath.Join(t.TempDir(), "out.flag")

	root := newRootCmd()
	root.SetArgs([]string{"trim", in, outPath, "--max-edge-length", "5"})
	require.NoError(t, root.Execute())

	m, err := flagio.LoadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, 3, m.Order())
	require.Equal(t, 1, m.NumEdges()) // 12.0 > 5 dropped, 5.0 == 5 kept

	_, present, err := m.EdgeWeight(0, 1)
	require.NoError(t, err)
	require.True(t, present)
}

// TestFiltrationsCommand verifies the registry listing.
func TestFiltrationsCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"filtrations"})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "vertex_degree")
	require.Contains(t, out.String(), "max_plus_one")
}
