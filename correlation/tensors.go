// SPDX-License-Identifier: MIT
// Package: motifnet/correlation
//
// tensors.go — per-topology matrices, target construction and validation.

package correlation

import (
	"fmt"
	"math"
	"sort"
)

// Matrix maps pair keys to frequencies for one topology.
type Matrix map[PairKey]float64

// Sum returns the total weight of m.
func (m Matrix) Sum() float64 {
	var s float64
	for _, w := range m {
		s += w
	}

	return s
}

// Clone returns a copy of m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for k, w := range m {
		out[k] = w
	}

	return out
}

// Keys returns the pair keys of m, sorted.
func (m Matrix) Keys() []PairKey {
	out := make([]PairKey, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Tensors holds one Matrix per topology plus the excess vectors that occur
// as halves of its keys.
type Tensors struct {
	// Topologies in joint-degree component order.
	Topologies []string
	// Matrices per topology name.
	Matrices map[string]Matrix
	// ExcessKeys per topology, distinct and sorted.
	ExcessKeys map[string][]DegreeVector
}

// NewTensors wraps matrices as Tensors and derives ExcessKeys from the key
// halves. Every topology needs a matrix and every matrix a topology.
//
// Key halves must all share one width. The width is not tied to
// len(topologies): tensors may cover a subset of a network's topologies
// while their vectors span all of them, as Extract produces for a subset.
// Matching the width against a network is the consumer's job.
func NewTensors(topologies []string, matrices map[string]Matrix) (*Tensors, error) {
	if len(topologies) != len(matrices) {
		return nil, fmt.Errorf("NewTensors: %d topologies, %d matrices: %w",
			len(topologies), len(matrices), ErrTopologyMismatch)
	}
	t := &Tensors{
		Topologies: append([]string(nil), topologies...),
		Matrices:   make(map[string]Matrix, len(matrices)),
		ExcessKeys: make(map[string][]DegreeVector, len(matrices)),
	}
	width := -1
	for _, name := range topologies {
		m, ok := matrices[name]
		if !ok {
			return nil, fmt.Errorf("NewTensors: no matrix for %q: %w", name, ErrTopologyMismatch)
		}
		seen := make(map[string]DegreeVector)
		for key := range m {
			l, r, err := key.Split()
			if err != nil {
				return nil, fmt.Errorf("NewTensors(%q): %w", name, err)
			}
			if width < 0 {
				width = len(l)
			}
			if len(l) != width {
				return nil, fmt.Errorf("NewTensors(%q): key %q has vectors of length %d, want %d: %w",
					name, key, len(l), width, ErrMalformedKey)
			}
			seen[l.Key()] = l
			seen[r.Key()] = r
		}
		t.Matrices[name] = m.Clone()
		t.ExcessKeys[name] = sortedVectors(seen)
	}

	return t, nil
}

// Lookup returns the weight of key under topology and whether it exists.
func (t *Tensors) Lookup(topology string, key PairKey) (float64, bool) {
	m, ok := t.Matrices[topology]
	if !ok {
		return 0, false
	}
	w, ok := m[key]

	return w, ok
}

// Width returns the length of the excess vectors, or 0 when every matrix
// is empty.
func (t *Tensors) Width() int {
	for _, name := range t.Topologies {
		if keys := t.ExcessKeys[name]; len(keys) > 0 {
			return len(keys[0])
		}
	}

	return 0
}

// TopologyIndex returns the position of topology in t.Topologies, or -1.
// It is a joint-degree component index only when t covers every network
// topology in network order; core.Network.TopologyIndex answers that
// question for a network.
func (t *Tensors) TopologyIndex(topology string) int {
	for i, name := range t.Topologies {
		if name == topology {
			return i
		}
	}

	return -1
}

// Validate checks that every matrix is symmetric and sums to 1, both within tol.
// Empty matrices are skipped.
func (t *Tensors) Validate(tol float64) error {
	for _, name := range t.Topologies {
		m := t.Matrices[name]
		if len(m) == 0 {
			continue
		}
		if s := m.Sum(); math.Abs(s-1) > tol {
			return fmt.Errorf("Validate(%q): sum %.12g: %w", name, s, ErrNotNormalised)
		}
		for key, w := range m {
			rev, err := key.Reverse()
			if err != nil {
				return fmt.Errorf("Validate(%q): %w", name, err)
			}
			if math.Abs(m[rev]-w) > tol {
				return fmt.Errorf("Validate(%q): %q=%.12g, %q=%.12g: %w", name, key, w, rev, m[rev], ErrNotSymmetric)
			}
		}
	}

	return nil
}

// Marginal maps excess-vector keys to probabilities.
type Marginal map[string]float64

// ExcessDistributions returns, per topology, the row sums of its matrix:
// q(k) = Σ_j e(k‖j) over the topology's ExcessKeys. Missing entries count
// as zero.
func (t *Tensors) ExcessDistributions() map[string]Marginal {
	out := make(map[string]Marginal, len(t.Topologies))
	for _, name := range t.Topologies {
		m := t.Matrices[name]
		keys := t.ExcessKeys[name]
		q := make(Marginal, len(keys))
		for _, left := range keys {
			var row float64
			for _, right := range keys {
				row += m[NewPairKey(left, right)]
			}
			q[left.Key()] = row
		}
		out[name] = q
	}

	return out
}

func sortedVectors(set map[string]DegreeVector) []DegreeVector {
	out := make([]DegreeVector, 0, len(set))
	for _, v := range set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}
