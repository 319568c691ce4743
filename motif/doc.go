// Package motif provides the motif builder capability used by the generalised
// configuration model: a Builder maps an ordered tuple of vertex identifiers
// to the edge set of one motif instance.
//
// The package offers the following key components:
//
//   - Builder:  the capability interface (Size + Build).
//   - Shapes:
//     – Clique(n):   every pair of the n vertices (2-clique = edge, 3-clique = triangle).
//     – Cycle(n):    ring v0-v1-…-v(n-1)-v0, n ≥ 3.
//     – Diamond():   4-cycle plus both chords (v0,v2) and (v1,v3).
//     – Path(n):     chain v0-v1-…-v(n-1), n ≥ 2.
//     – Star(n):     hub v0 joined to v1…v(n-1), n ≥ 2.
//     – Wheel(n):    ring over v1…v(n-1) plus spokes from hub v0, n ≥ 4.
//     – Func(n, fn): adapts a plain function.
//   - Lookup(name, size): resolves configuration names to shapes.
//   - Validate(b): dry-runs a builder on the trial tuple 0..Size()-1.
//
// Guarantees:
//
//   - Builders are pure: the same tuple always yields the same pairs, in a
//     stable, documented order.
//   - Builders never panic; they return sentinel errors wrapped with context.
//   - Repeated vertices in a tuple (a stub-matching artifact) are passed
//     through unchanged; the caller decides what to do with loops.
package motif
