// SPDX-License-Identifier: MIT
// Package: motifnet/motif
//
// impl_star.go — Star(n): hub vertices[0] joined to the n-1 leaves.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits spokes hub -> vertices[i] for i=1..n-1.

package motif

const (
	methodStar   = "Star"
	minStarNodes = 2
)

type star struct{ n int }

// Star returns a Builder for the n-vertex star motif; the first tuple entry is the hub.
func Star(n int) Builder { return star{n: n} }

func (s star) Size() int { return s.n }

func (s star) Build(vertices []int) ([]Pair, error) {
	if err := checkMin(methodStar, s.n, minStarNodes); err != nil {
		return nil, err
	}
	if err := checkTuple(methodStar, vertices, s.n); err != nil {
		return nil, err
	}

	return spokes(vertices[0], vertices[1:]), nil
}

// spokes joins hub to every rim vertex in order.
func spokes(hub int, rim []int) []Pair {
	pairs := make([]Pair, 0, len(rim))
	for _, v := range rim {
		pairs = append(pairs, Pair{U: hub, V: v})
	}

	return pairs
}
