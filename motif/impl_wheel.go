// SPDX-License-Identifier: MIT
// Package: motifnet/motif
//
// impl_wheel.go — Wheel(n): W_n = C_{n-1} over vertices[1:] plus hub vertices[0].
//
// Contract:
//   • n ≥ 4 (outer cycle of size n-1 must be ≥ 3).
//   • Emits the rim cycle first, then spokes hub -> rim in tuple order.

package motif

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

type wheel struct{ n int }

// Wheel returns a Builder for the n-vertex wheel motif; the first tuple entry is the hub.
func Wheel(n int) Builder { return wheel{n: n} }

func (w wheel) Size() int { return w.n }

func (w wheel) Build(vertices []int) ([]Pair, error) {
	if err := checkMin(methodWheel, w.n, minWheelNodes); err != nil {
		return nil, err
	}
	if err := checkTuple(methodWheel, vertices, w.n); err != nil {
		return nil, err
	}
	pairs := ring(vertices[1:])
	pairs = append(pairs, spokes(vertices[0], vertices[1:])...)

	return pairs, nil
}
