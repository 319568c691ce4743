// SPDX-License-Identifier: MIT
// Package: motifnet/motif
//
// impl_clique.go — Clique(n): the complete graph K_n over the tuple.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once, lexicographic by (i,j).
//
// Complexity:
//   • Time: O(n²) pairs. Space: O(n²) for the returned slice.

package motif

const (
	methodClique   = "Clique"
	minCliqueNodes = 2
)

type clique struct{ n int }

// Clique returns a Builder for the complete motif K_n.
// Clique(2) is a plain edge, Clique(3) a triangle.
func Clique(n int) Builder { return clique{n: n} }

func (c clique) Size() int { return c.n }

func (c clique) Build(vertices []int) ([]Pair, error) {
	if err := checkMin(methodClique, c.n, minCliqueNodes); err != nil {
		return nil, err
	}
	if err := checkTuple(methodClique, vertices, c.n); err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0, c.n*(c.n-1)/2)
	for i := 0; i < c.n; i++ {
		for j := i + 1; j < c.n; j++ {
			pairs = append(pairs, Pair{U: vertices[i], V: vertices[j]})
		}
	}

	return pairs, nil
}
