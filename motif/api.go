// SPDX-License-Identifier: MIT
// Package: motifnet/motif
//
// api.go — the Builder capability and thin helpers shared by every shape.
//
// Design contract (strict):
//   - A Builder is pure: Build depends only on its input tuple.
//   - Pairs are emitted in a stable order documented per shape.
//   - Build validates the tuple length first and never panics.

package motif

import "fmt"

// Pair is one unordered edge of a motif, expressed as emitted by the builder.
type Pair struct {
	U int
	V int
}

// Builder maps an ordered vertex tuple of length Size() to the edge set of
// one motif instance.
type Builder interface {
	// Size is the number of vertices per motif instance.
	Size() int

	// Build returns the motif's pairs over vertices.
	Build(vertices []int) ([]Pair, error)
}

// Validate dry-runs b on the trial tuple 0..Size()-1. A builder that cannot
// build its own trial tuple is a configuration error.
// Complexity: cost of one Build.
func Validate(b Builder) error {
	if b == nil {
		return ErrNilBuilder
	}
	size := b.Size()
	tuple := make([]int, size)
	for i := range tuple {
		tuple[i] = i
	}
	if _, err := b.Build(tuple); err != nil {
		return fmt.Errorf("Validate: trial tuple of size %d: %w", size, err)
	}

	return nil
}

// funcBuilder adapts a plain function to Builder.
type funcBuilder struct {
	size int
	fn   func([]int) []Pair
}

// Func adapts fn to a Builder of the given size.
// A nil fn yields a builder whose Build returns ErrNilBuilder.
func Func(size int, fn func(vertices []int) []Pair) Builder {
	return funcBuilder{size: size, fn: fn}
}

func (f funcBuilder) Size() int { return f.size }

func (f funcBuilder) Build(vertices []int) ([]Pair, error) {
	if f.fn == nil {
		return nil, fmt.Errorf("Func: %w", ErrNilBuilder)
	}
	if f.size < 1 {
		return nil, fmt.Errorf("Func: size=%d < min=1: %w", f.size, ErrTooFewVertices)
	}
	if err := checkTuple("Func", vertices, f.size); err != nil {
		return nil, err
	}

	return f.fn(vertices), nil
}

// checkTuple enforces len(vertices) == want.
func checkTuple(method string, vertices []int, want int) error {
	if len(vertices) != want {
		return fmt.Errorf("%s: got %d vertices, want %d: %w", method, len(vertices), want, ErrVertexCount)
	}

	return nil
}

// checkMin enforces n >= min.
func checkMin(method string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}
