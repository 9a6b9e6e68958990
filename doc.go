// Package flagcx marshals weighted directed graphs between square flag
// matrices, the `.flag` text file format, and the vertex/edge form consumed
// by flag-complex homology engines.
//
// 🚀 What is flagcx?
//
//	A small data-marshaling layer for topological data analysis:
//	  • flagmat/  — Dense and Sparse flag matrices with exact
//	    "assigned zero vs. absent edge" semantics, plus gonum adapters
//	    and deterministic fixture generators
//	  • flagio/   — the line-oriented `.flag` codec with byte-identical
//	    save/load round-trips
//	  • homology/ — static and persistence weight extraction, the
//	    filtration-name registry, sentinel-free option handling, and the
//	    black-box Engine boundary
//	  • cmd/flagcx — a thin CLI to inspect and trim `.flag` files
//
// ✨ Why the fuss about zeros?
//
//	The diagonal of a flag matrix carries vertex weights; off-diagonal
//	cells carry edge weights. Whether an off-diagonal zero means "edge of
//	weight 0" or "no edge" depends on the matrix storage mode, and getting
//	it wrong corrupts a filtration silently instead of failing. flagcx
//	keeps presence explicit end to end: dense storage means every cell is
//	an edge, sparse storage means only explicit assignments are.
//
// flagcx computes no homology itself: homology.Engine is the seam where a
// native flagser binding, a subprocess wrapper, or a test stub plugs in.
//
//	go get github.com/katalvlaran/flagcx
package flagcx
