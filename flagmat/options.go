// Package flagmat: functional configuration for matrix constructors.
// Options follow the usual shape: documented Default* constants, WithX
// setters that panic only on programmer error, and a gatherOptions helper
// resolving setters against defaults (last-writer-wins).
package flagmat

// DefaultDomain is the value domain used when no WithDomain option is given.
const DefaultDomain = Float64

const panicDomainInvalid = "flagmat: WithDomain: domain outside {Float64, Int64, Bool}"

// Option mutates constructor options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective constructor configuration.
// Fields are unexported; public constructors accept ...Option.
type Options struct {
	domain Domain
}

// WithDomain selects the value domain of the matrix under construction.
// Panics on a Domain outside the closed set (programmer error).
// Complexity: O(1).
func WithDomain(d Domain) Option {
	if !d.valid() {
		panic(panicDomainInvalid)
	}

	return func(o *Options) { o.domain = d }
}

// gatherOptions resolves setters against defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{domain: DefaultDomain}
	for _, set := range user {
		set(&o)
	}

	return o
}
