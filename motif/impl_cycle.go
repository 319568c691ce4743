// SPDX-License-Identifier: MIT
// Package: motifnet/motif
//
// impl_cycle.go — Cycle(n): the chordless ring C_n over the tuple.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits pairs in stable order i -> (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n). Space: O(n) for the returned slice.

package motif

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

type cycle struct{ n int }

// Cycle returns a Builder for the n-vertex ring motif.
func Cycle(n int) Builder { return cycle{n: n} }

func (c cycle) Size() int { return c.n }

func (c cycle) Build(vertices []int) ([]Pair, error) {
	if err := checkMin(methodCycle, c.n, minCycleNodes); err != nil {
		return nil, err
	}
	if err := checkTuple(methodCycle, vertices, c.n); err != nil {
		return nil, err
	}

	return ring(vertices), nil
}

// ring closes vertices into a cycle; shared with Diamond and Wheel.
func ring(vertices []int) []Pair {
	n := len(vertices)
	pairs := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, Pair{U: vertices[i], V: vertices[(i+1)%n]})
	}

	return pairs
}
