package flagio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/flagcx/flagmat"
)

// Header lines of the .flag format.
const (
	headerVertices = "dim 0"
	headerEdges    = "dim 1"
)

// weightFmt reproduces the reference writer's `%.18e`: 18 fractional digits
// of scientific notation, bit-faithful for float64 on round-trip.
const weightFmt = "%.18e"

// Save writes m as a .flag stream.
// Stage 1 (Vertices): header plus the diagonal as one space-separated line.
// Stage 2 (Edges): header plus one record per present off-diagonal entry,
// in the matrix's EdgesDo order — first-assignment order on Sparse,
// row-major on Dense. Bool-domain matrices omit the weight column.
// Stream write failures propagate unchanged through the buffered flush.
// Complexity: O(n + #present).
func Save(w io.Writer, m flagmat.FlagMatrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	bw := bufio.NewWriter(w)

	// Stage 1: vertex weights.
	if _, err := fmt.Fprintln(bw, headerVertices); err != nil {
		return err
	}
	for i, vw := range m.Diagonal() {
		if i > 0 {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, weightFmt, vw); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	// Stage 2: edge records.
	if _, err := fmt.Fprintln(bw, headerEdges); err != nil {
		return err
	}
	boolean := m.Domain() == flagmat.Bool
	err := m.EdgesDo(func(row, col int, weight float64) error {
		if boolean {
			// Presence is implied; no weight column for Bool matrices.
			_, werr := fmt.Fprintf(bw, "%d %d\n", row, col)
			return werr
		}
		_, werr := fmt.Fprintf(bw, "%d %d "+weightFmt+"\n", row, col, weight)
		return werr
	})
	if err != nil {
		return err
	}

	return bw.Flush()
}

// SaveFile writes m to path via Save, creating or truncating the file.
func SaveFile(path string, m flagmat.FlagMatrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Save(f, m); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
