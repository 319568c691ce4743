// SPDX-License-Identifier: MIT
// Package: motifnet/motif
//
// errors.go — sentinel errors for the motif package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.

package motif

import "errors"

// ErrTooFewVertices indicates that a shape parameter n is smaller than the
// minimum for the requested motif (e.g. Cycle(2), Wheel(3)).
var ErrTooFewVertices = errors.New("motif: parameter too small")

// ErrVertexCount indicates that Build received a tuple whose length differs
// from the builder's Size().
var ErrVertexCount = errors.New("motif: wrong number of vertices")

// ErrUnknownMotif indicates that Lookup was asked for a shape it does not know.
var ErrUnknownMotif = errors.New("motif: unknown motif")

// ErrNilBuilder indicates a nil Builder or a nil function passed to Func.
var ErrNilBuilder = errors.New("motif: nil builder")
