// SPDX-License-Identifier: MIT
// Package: motifnet/motif
//
// impl_diamond.go — Diamond(): a 4-cycle with both chords added.
//
// Contract:
//   • Exactly 4 vertices.
//   • Emits the ring v0-v1, v1-v2, v2-v3, v3-v0, then chords v0-v2, v1-v3.

package motif

const (
	methodDiamond = "Diamond"
	diamondNodes  = 4
)

type diamond struct{}

// Diamond returns a Builder for the 4-vertex diamond motif.
func Diamond() Builder { return diamond{} }

func (diamond) Size() int { return diamondNodes }

func (diamond) Build(vertices []int) ([]Pair, error) {
	if err := checkTuple(methodDiamond, vertices, diamondNodes); err != nil {
		return nil, err
	}
	pairs := ring(vertices)
	pairs = append(pairs,
		Pair{U: vertices[0], V: vertices[2]},
		Pair{U: vertices[1], V: vertices[3]},
	)

	return pairs, nil
}
