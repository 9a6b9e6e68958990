// Package homology prepares flag matrices for a flag-complex homology
// engine and reshapes the engine's raw output into caller-owned results.
//
// 🚀 What lives here?
//
//   - Weight extraction — turning a flagmat.FlagMatrix into the flat
//     (vertex weights, edge triples) form an engine consumes, in two
//     policies: static (boolean presence) and persistence (raw weights
//     with max-edge-length trimming).
//   - Parameter normalization — explicit option state ("unbounded
//     dimension", "no approximation") translated to the engine's -1
//     sentinels only at the boundary call, never propagated inward.
//   - The filtration-name registry — a fixed, closed set of eleven
//     algorithm names; anything else fails fast before engine work starts.
//   - ComputeStatic / ComputePersistence — the two public entry points
//     tying the above together around a black-box Engine.
//
// ✨ Presence semantics carry through:
//
//	Extraction enumerates edges via EdgesDo, so the dense/sparse absence
//	distinction established in flagmat decides exactly which edges the
//	engine sees. An explicitly-assigned zero reaches the engine as a
//	zero-weight edge; an unassigned sparse cell never reaches it at all.
//
// ⚠️ Deliberately out of scope:
//
//	The homology computation itself — Engine is an interface, satisfied
//	by cgo bindings, subprocess wrappers, or test stubs — and any check
//	that a user-supplied edge filtration is mathematically consistent
//	(skipped for performance; the engine contract states this).
//
// The package is synchronous and single-threaded: Compute* blocks until
// the engine returns. Callers wanting timeouts wrap the Engine they pass.
package homology
