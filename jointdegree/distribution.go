// SPDX-License-Identifier: MIT
// Package: motifnet/jointdegree
//
// distribution.go — weighted joint-degree keys, normalisation and sampling.
//
// Determinism:
//   • Keys are visited in sorted order, so a fixed RNG state fixes the sample.
//
// Complexity:
//   • Sample: O(K log K + n log K) for K keys.

package jointdegree

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/katalvlaran/motifnet/correlation"
)

// Distribution maps joint-degree keys ("a,b,...") to non-negative weights.
type Distribution map[string]float64

// Keys returns the parsed keys in sorted order.
func (d Distribution) Keys() ([]correlation.DegreeVector, error) {
	names := make([]string, 0, len(d))
	for k := range d {
		names = append(names, k)
	}
	sort.Strings(names)

	out := make([]correlation.DegreeVector, 0, len(names))
	width := -1
	for _, name := range names {
		v, err := correlation.ParseDegreeVector(name)
		if err != nil {
			return nil, fmt.Errorf("Keys: %w", err)
		}
		if width >= 0 && len(v) != width {
			return nil, fmt.Errorf("Keys: %q has %d components, want %d: %w", name, len(v), width, ErrInconsistentKeys)
		}
		width = len(v)
		out = append(out, v)
	}

	return out, nil
}

// Normalise returns a copy of d scaled to sum to 1.
func (d Distribution) Normalise() (Distribution, error) {
	var total float64
	for k, w := range d {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("Normalise: %q=%g: %w", k, w, ErrNegativeWeight)
		}
		total += w
	}
	if total == 0 {
		return nil, ErrEmptyDistribution
	}
	out := make(Distribution, len(d))
	for k, w := range d {
		out[k] = w / total
	}

	return out, nil
}

// Sample draws n joint-degree vectors with replacement, weighted by d.
// Weights need not be normalised.
func (d Distribution) Sample(n int, rng *rand.Rand) ([][]int, error) {
	norm, err := d.Normalise()
	if err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}
	keys, err := norm.Keys()
	if err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}
	weights := make([]float64, len(keys))
	for i, k := range keys {
		weights[i] = norm[k.Key()]
	}

	ws := sampleuv.NewWeighted(weights, rng)
	jds := make([][]int, n)
	for i := range jds {
		idx, ok := ws.Take()
		if !ok {
			return nil, fmt.Errorf("Sample: draw %d: %w", i, ErrEmptyDistribution)
		}
		// Take removes the item; restore it so draws are with replacement.
		ws.Reweight(idx, weights[idx])
		jds[i] = append([]int(nil), keys[idx]...)
	}

	return jds, nil
}

// FromSequence returns the empirical distribution of jds.
func FromSequence(jds [][]int) Distribution {
	d := make(Distribution)
	if len(jds) == 0 {
		return d
	}
	inc := 1.0 / float64(len(jds))
	for _, jd := range jds {
		d[correlation.DegreeVector(jd).Key()] += inc
	}

	return d
}

// Mean returns the average joint-degree vector under d.
func (d Distribution) Mean() ([]float64, error) {
	norm, err := d.Normalise()
	if err != nil {
		return nil, fmt.Errorf("Mean: %w", err)
	}
	keys, err := norm.Keys()
	if err != nil {
		return nil, fmt.Errorf("Mean: %w", err)
	}
	mean := make([]float64, len(keys[0]))
	for _, k := range keys {
		w := norm[k.Key()]
		for t, c := range k {
			mean[t] += w * float64(c)
		}
	}

	return mean, nil
}
