package flagio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/flagcx/flagmat"
)

// Load parses a .flag stream into a Sparse flag matrix.
// Stage 1 (Header): consume the vertex-weight header line.
// Stage 2 (Vertices): parse the n vertex weights; n fixes the matrix order.
// Stage 3 (Edges): consume the edge-section header, then one explicit
// assignment per record — an assigned zero remains a present edge.
//
// The header lines must be present but their text is not inspected,
// matching the reference reader's tolerance for variant headers.
// Format failures are wrapped with the 1-based line number; stream errors
// propagate unchanged.
// Complexity: O(n + #edges) time, O(n + #edges) memory.
func Load(r io.Reader) (*flagmat.Sparse, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024) // vertex line grows with n

	// Stage 1: vertex-weight header.
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("flagio: line 1: %w", ErrMissingHeader)
	}

	// Stage 2: vertex weights.
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("flagio: line 2: %w", ErrNoVertices)
	}
	tokens := strings.Fields(sc.Text())
	if len(tokens) == 0 {
		return nil, fmt.Errorf("flagio: line 2: %w", ErrNoVertices)
	}
	m, err := flagmat.NewSparse(len(tokens))
	if err != nil {
		return nil, err
	}
	for i, tok := range tokens {
		w, perr := strconv.ParseFloat(tok, 64)
		if perr != nil {
			return nil, fmt.Errorf("flagio: line 2: vertex weight %q: %w", tok, ErrBadNumber)
		}
		if err = m.SetVertexWeight(i, w); err != nil {
			return nil, err
		}
	}

	// Stage 3: edge section. A file may legitimately end here.
	if !sc.Scan() {
		if err = sc.Err(); err != nil {
			return nil, err
		}
		return m, nil
	}
	line := 3 // the edge header we just consumed
	for sc.Scan() {
		line++
		if err = parseEdgeLine(m, sc.Text(), line); err != nil {
			return nil, err
		}
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}

	return m, nil
}

// parseEdgeLine applies one `row col weight` record as an explicit
// assignment on m. Blank lines are tolerated (trailing newlines).
// Row/col tokens may be written as floats and are truncated to int.
func parseEdgeLine(m *flagmat.Sparse, text string, line int) error {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	if len(fields) < 3 {
		return fmt.Errorf("flagio: line %d: got %d tokens: %w", line, len(fields), ErrEdgeTokens)
	}

	nums := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return fmt.Errorf("flagio: line %d: token %q: %w", line, fields[i], ErrBadNumber)
		}
		nums[i] = v
	}

	row, col := int(nums[0]), int(nums[1])
	n := m.Order()
	if row < 0 || row >= n || col < 0 || col >= n {
		return fmt.Errorf("flagio: line %d: edge (%d,%d) vs order %d: %w", line, row, col, n, ErrIndexRange)
	}
	if err := m.SetEdge(row, col, nums[2]); err != nil {
		// Self-loop records are rejected: the diagonal holds vertex weights.
		return fmt.Errorf("flagio: line %d: %w", line, err)
	}

	return nil
}

// LoadFile opens path and delegates to Load. The matrix domain is always
// Float64: the on-disk format does not record a value domain.
func LoadFile(path string) (*flagmat.Sparse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}
