// SPDX-License-Identifier: MIT
// Package: motifnet/jointdegree
//
// handshake.go — divisibility correction of a joint degree sequence.
//
// Contract:
//   • For every topology t whose stub total S_t is not a multiple of
//     sizes[t], add sizes[t] - S_t mod sizes[t] stubs to vertices chosen
//     uniformly with replacement. One extra motif results per topology.
//   • jds is modified in place; the number of stubs added is returned.

package jointdegree

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Handshake makes every topology's stub total divisible by its motif size.
func Handshake(jds [][]int, sizes []int, rng *rand.Rand) (int, error) {
	for i, s := range sizes {
		if s < 1 {
			return 0, fmt.Errorf("Handshake: sizes[%d]=%d: %w", i, s, ErrBadMotifSize)
		}
	}
	if len(jds) == 0 {
		return 0, nil
	}
	totals := make([]int, len(sizes))
	for v, jd := range jds {
		if len(jd) != len(sizes) {
			return 0, fmt.Errorf("Handshake: vertex %d has %d components, %d sizes: %w",
				v, len(jd), len(sizes), ErrBadMotifSize)
		}
		for t, k := range jd {
			totals[t] += k
		}
	}

	added := 0
	for t, total := range totals {
		rem := total % sizes[t]
		if rem == 0 {
			continue
		}
		for i := 0; i < sizes[t]-rem; i++ {
			jds[rng.Intn(len(jds))][t]++
			added++
		}
	}

	return added, nil
}

// MotifCounts returns the expected stub totals of n vertices under d divided
// by sizes: the motif counts a sampled sequence will carry on average.
func MotifCounts(d Distribution, n int, sizes []int) ([]float64, error) {
	mean, err := d.Mean()
	if err != nil {
		return nil, fmt.Errorf("MotifCounts: %w", err)
	}
	if len(mean) != len(sizes) {
		return nil, fmt.Errorf("MotifCounts: %d components, %d sizes: %w", len(mean), len(sizes), ErrBadMotifSize)
	}
	out := make([]float64, len(sizes))
	for t, m := range mean {
		if sizes[t] < 1 {
			return nil, fmt.Errorf("MotifCounts: sizes[%d]=%d: %w", t, sizes[t], ErrBadMotifSize)
		}
		out[t] = m * float64(n) / float64(sizes[t])
	}

	return out, nil
}
