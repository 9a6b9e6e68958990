// Package homology: functional configuration for the Compute entry points.
// Option state is explicit ("unbounded", "no approximation", "no explicit
// max edge length"); the engine's -1 sentinels are produced only when the
// boundary Params are built, in engine.go.
package homology

import (
	"fmt"
	"math"
)

// Documented defaults — single source of truth for zero-value behavior.
const (
	// DefaultMinDimension is the lowest homology dimension computed.
	DefaultMinDimension = 0

	// DefaultDirected builds the directed flag complex.
	DefaultDirected = true

	// DefaultFiltration is the filtration algorithm used when none is set.
	DefaultFiltration = "max"

	// DefaultCoefficient is the prime field size 𝔽₂.
	DefaultCoefficient = 2
)

const (
	panicMaxDimensionNegative = "homology: WithMaxDimension: dimension must be ≥ 0; use WithUnboundedDimension"
	panicMaxEdgeLengthNaN     = "homology: WithMaxEdgeLength: NaN not allowed"
)

// Option mutates compute options. Safe to apply repeatedly (last-writer-wins).
type Option func(*Options)

// Options stores the effective configuration after applying setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	minDim       int
	maxDim       int
	unboundedDim bool // true ⇒ maxDim ignored, engine gets the sentinel

	directed    bool
	filtration  string
	coefficient int

	approximation   int
	noApproximation bool // true ⇒ approximation ignored, engine gets the sentinel

	maxEdgeLength    float64
	hasMaxEdgeLength bool // false ⇒ resolved from the matrix domain
}

// WithMinDimension sets the minimum homology dimension.
// Passed through to the engine unvalidated (its responsibility).
func WithMinDimension(d int) Option {
	return func(o *Options) { o.minDim = d }
}

// WithMaxDimension bounds the maximum homology dimension.
// Panics on a negative bound (programmer error — unbounded is expressed
// with WithUnboundedDimension, not with a sentinel).
func WithMaxDimension(d int) Option {
	if d < 0 {
		panic(panicMaxDimensionNegative)
	}

	return func(o *Options) {
		o.maxDim = d
		o.unboundedDim = false
	}
}

// WithUnboundedDimension removes the maximum-dimension bound (the default).
func WithUnboundedDimension() Option {
	return func(o *Options) { o.unboundedDim = true }
}

// WithDirected computes the directed flag complex (the default).
func WithDirected() Option {
	return func(o *Options) { o.directed = true }
}

// WithUndirected computes the undirected flag complex.
func WithUndirected() Option {
	return func(o *Options) { o.directed = false }
}

// WithFiltration selects the filtration algorithm by name. The name is
// validated against the closed registry when Compute runs, not here, so an
// invalid name surfaces as ErrUnknownFiltration rather than a panic.
func WithFiltration(name string) Option {
	return func(o *Options) { o.filtration = name }
}

// WithCoefficient sets the prime field size for the homology coefficients.
// Passed through to the engine unvalidated (its responsibility).
func WithCoefficient(p int) Option {
	return func(o *Options) { o.coefficient = p }
}

// WithApproximation caps the number of entries per reduction-matrix column;
// cells above the cap are skipped. A good budget for hard problems is often
// 100000. A negative budget is itself a valid request meaning "highest
// possible precision" and passes through unchanged.
func WithApproximation(budget int) Option {
	return func(o *Options) {
		o.approximation = budget
		o.noApproximation = false
	}
}

// WithNoApproximation disables approximation entirely (the default).
func WithNoApproximation() Option {
	return func(o *Options) { o.noApproximation = true }
}

// WithMaxEdgeLength sets the maximum edge weight kept in the filtration for
// ComputePersistence; heavier edges are treated as infinitely distant.
// When unset, the default is resolved from the matrix domain by
// DefaultMaxEdgeLength. +Inf is legal (keep everything); NaN panics.
// Ignored by ComputeStatic.
func WithMaxEdgeLength(x float64) Option {
	if math.IsNaN(x) {
		panic(panicMaxEdgeLengthNaN)
	}

	return func(o *Options) {
		o.maxEdgeLength = x
		o.hasMaxEdgeLength = true
	}
}

// gatherOptions resolves setters against the documented defaults.
// Last-writer-wins; pure aside from mutating the returned value.
func gatherOptions(user ...Option) Options {
	o := Options{
		minDim:          DefaultMinDimension,
		unboundedDim:    true,
		directed:        DefaultDirected,
		filtration:      DefaultFiltration,
		coefficient:     DefaultCoefficient,
		noApproximation: true,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// String aids debugging of resolved options in failure messages.
func (o Options) String() string {
	maxDim := "∞"
	if !o.unboundedDim {
		maxDim = fmt.Sprintf("%d", o.maxDim)
	}

	return fmt.Sprintf("homology.Options{dim=[%d,%s] directed=%t filtration=%s coeff=%d}",
		o.minDim, maxDim, o.directed, o.filtration, o.coefficient)
}
