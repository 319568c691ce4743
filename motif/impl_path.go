// SPDX-License-Identifier: MIT
// Package: motifnet/motif
//
// impl_path.go — Path(n): the open chain P_n over the tuple.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits pairs i -> i+1 for i=0..n-2.

package motif

const (
	methodPath   = "Path"
	minPathNodes = 2
)

type path struct{ n int }

// Path returns a Builder for the n-vertex chain motif.
func Path(n int) Builder { return path{n: n} }

func (p path) Size() int { return p.n }

func (p path) Build(vertices []int) ([]Pair, error) {
	if err := checkMin(methodPath, p.n, minPathNodes); err != nil {
		return nil, err
	}
	if err := checkTuple(methodPath, vertices, p.n); err != nil {
		return nil, err
	}
	pairs := make([]Pair, 0, p.n-1)
	for i := 0; i+1 < p.n; i++ {
		pairs = append(pairs, Pair{U: vertices[i], V: vertices[i+1]})
	}

	return pairs, nil
}
