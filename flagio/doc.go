// Package flagio reads and writes the line-oriented, space-delimited
// `.flag` text format used to exchange flag matrices with homology tools.
//
// ⚙️ Format:
//
//	dim 0
//	<w0> <w1> ... <w(n-1)>
//	dim 1
//	<row> <col> <weight>
//	...
//
//	• Line 1 is the vertex-weight header.
//	• Line 2 holds n space-separated float vertex weights; n is inferred
//	  from the token count of this line.
//	• Line 3 is the edge-section header; it and everything after it are
//	  optional (a file may describe a graph with no edges).
//	• Each remaining line is one edge record. Numeric matrices carry three
//	  tokens `row col weight`; Bool-domain matrices are written with two
//	  tokens `row col` (presence implied). Row/col may be written as
//	  floats and are truncated on read.
//
// ✨ Semantics worth knowing:
//
//	Load always produces a flagmat.Sparse: every edge line is an explicit
//	assignment, so a weight of exactly 0 in the file stays a present
//	zero-weight edge after loading.
//
//	Save enumerates edges in the matrix's EdgesDo order — first-assignment
//	order on Sparse — rather than sorting. Load order never changes matrix
//	semantics, but passing storage order through is what makes a
//	save/load/save cycle byte-identical.
//
// Weights are formatted with 18 fractional digits of scientific notation,
// enough to reproduce the exact float64 bit pattern on re-read.
package flagio
