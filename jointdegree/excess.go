// SPDX-License-Identifier: MIT
// Package: motifnet/jointdegree
//
// excess.go — inversion of excess-degree marginals into a joint degree
// distribution.

package jointdegree

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/motifnet/correlation"
)

// FromExcess inverts per-topology excess marginals (as returned by
// correlation.Tensors.ExcessDistributions) into one joint degree
// distribution.
//
// For topology t, P_t(k) ∝ q_t(k-e_t)/k_t. Every P_t is scaled so that it
// agrees with the reference topology's estimate on the smallest key all
// estimates share; the estimates are then merged (later topologies win on
// shared keys) and renormalised.
func FromExcess(qks map[string]correlation.Marginal, topologies []string, reference string) (Distribution, error) {
	ref := -1
	for i, name := range topologies {
		if name == reference {
			ref = i
		}
	}
	if ref < 0 {
		return nil, fmt.Errorf("FromExcess: reference %q not in %v: %w", reference, topologies, ErrInconsistentKeys)
	}

	estimates := make([]Distribution, len(topologies))
	for t, name := range topologies {
		p, err := invert(qks[name], t, len(topologies))
		if err != nil {
			return nil, fmt.Errorf("FromExcess(%q): %w", name, err)
		}
		estimates[t] = p
	}

	common := commonKeys(estimates)
	if len(common) == 0 {
		return nil, ErrNoCommonKey
	}
	anchor := common[0]
	base := estimates[ref][anchor]
	for t, p := range estimates {
		if t == ref {
			continue
		}
		scale := base / p[anchor]
		for k := range p {
			p[k] *= scale
		}
	}

	merged := make(Distribution)
	for _, p := range estimates {
		for k, w := range p {
			merged[k] = w
		}
	}

	return merged.Normalise()
}

// invert turns one excess marginal into the joint degree estimate P_t.
func invert(q correlation.Marginal, t, width int) (Distribution, error) {
	var bottom float64
	shifted := make(map[string]float64, len(q))
	for key, w := range q {
		v, err := correlation.ParseDegreeVector(key)
		if err != nil {
			return nil, err
		}
		if len(v) != width {
			return nil, fmt.Errorf("key %q has %d components, want %d: %w", key, len(v), width, ErrInconsistentKeys)
		}
		if w < 0 {
			return nil, fmt.Errorf("key %q=%g: %w", key, w, ErrNegativeWeight)
		}
		v[t]++
		top := w / float64(v[t])
		shifted[v.Key()] = top
		bottom += top
	}
	if bottom == 0 {
		return nil, ErrEmptyDistribution
	}
	out := make(Distribution, len(shifted))
	for k, top := range shifted {
		out[k] = top / bottom
	}

	return out, nil
}

// commonKeys returns the keys with positive weight in every estimate, sorted.
func commonKeys(ps []Distribution) []string {
	var out []string
	for k := range ps[0] {
		shared := true
		for _, p := range ps {
			if p[k] <= 0 {
				shared = false
				break
			}
		}
		if shared {
			out = append(out, k)
		}
	}
	sort.Strings(out)

	return out
}
