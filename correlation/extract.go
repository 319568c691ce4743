// SPDX-License-Identifier: MIT
// Package: motifnet/correlation
//
// extract.go — ejk tensors of a labelled network.
//
// Contract:
//   • Each non-loop edge of topology t adds 1/(2m_t) to excess(u)‖excess(v)
//     and 1/(2m_t) to the reverse key, m_t being the number of such edges.
//     A symmetric key thus gains 1/m_t per edge and every matrix sums to 1.
//   • Self-loops carry no correlation and are skipped.
//   • Pure read of the network; repeated calls give identical tensors.
//
// Complexity: O(E·T + K log K) for E edges, T topologies, K distinct vectors.

package correlation

import (
	"fmt"

	"github.com/katalvlaran/motifnet/core"
)

// Extract computes the tensors of net for the named topologies.
// Unknown names fail with core.ErrUnknownTopology.
func Extract(net *core.Network, topologies []string) (*Tensors, error) {
	index := make(map[string]int, len(topologies))
	for _, name := range topologies {
		i, err := net.TopologyIndex(name)
		if err != nil {
			return nil, fmt.Errorf("Extract: %w", err)
		}
		index[name] = i
	}

	jd := make([]DegreeVector, net.VertexCount())
	for _, v := range net.Vertices() {
		jd[v.ID] = v.JointDegree
	}

	edges := net.Edges()
	counts := make(map[string]int, len(topologies))
	for _, e := range edges {
		if e.U != e.V {
			counts[e.Topology]++
		}
	}

	t := &Tensors{
		Topologies: append([]string(nil), topologies...),
		Matrices:   make(map[string]Matrix, len(topologies)),
		ExcessKeys: make(map[string][]DegreeVector, len(topologies)),
	}
	seen := make(map[string]map[string]DegreeVector, len(topologies))
	for _, name := range topologies {
		t.Matrices[name] = make(Matrix)
		seen[name] = make(map[string]DegreeVector)
	}

	for _, e := range edges {
		ti, ok := index[e.Topology]
		if !ok || e.U == e.V {
			continue
		}
		w := 1.0 / float64(2*counts[e.Topology])
		eu, ev := jd[e.U].Excess(ti), jd[e.V].Excess(ti)
		m := t.Matrices[e.Topology]
		m[NewPairKey(eu, ev)] += w
		m[NewPairKey(ev, eu)] += w
		seen[e.Topology][eu.Key()] = eu
		seen[e.Topology][ev.Key()] = ev
	}
	for _, name := range topologies {
		t.ExcessKeys[name] = sortedVectors(seen[name])
	}

	return t, nil
}
