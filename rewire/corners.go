// SPDX-License-Identifier: MIT
// Package: motifnet/rewire
//
// corners.go — suitability of a corner pairing, pairing and the swap itself.

package rewire

import (
	"github.com/katalvlaran/motifnet/core"
)

// pair is one u0 corner matched with one v0 corner of the same topology.
type pair struct {
	left  core.Edge // (u0,u1)
	right core.Edge // (v0,v1)
	u1    int
	v1    int
}

// Proposal is a new edge created by an accepted swap, with the labels of
// the corner it replaces.
type Proposal struct {
	U, V     int
	Topology string
	MotifID  int64
}

// proposals returns (u0,v1) labelled as (v0,v1) and (v0,u1) labelled as (u0,u1).
func (p pair) proposals(u0, v0 int) [2]Proposal {
	return [2]Proposal{
		{U: u0, V: p.v1, Topology: p.right.Topology, MotifID: p.right.MotifID},
		{U: v0, V: p.u1, Topology: p.left.Topology, MotifID: p.left.MotifID},
	}
}

// unsuitable returns why uc and vc cannot be swapped, or "" if they can.
func (e *Engine) unsuitable(u0, v0 int, uc, vc []core.Edge) string {
	if u0 == v0 {
		return "same anchor"
	}
	if len(uc) != len(vc) {
		return "corner counts differ"
	}
	ut, vt := byTopology(uc), byTopology(vc)
	if len(ut) != len(vt) {
		return "corner topologies differ"
	}
	for name, list := range ut {
		if len(vt[name]) != len(list) {
			return "corner topologies differ"
		}
	}
	for _, p := range pairCorners(u0, v0, uc, vc) {
		if p.left.MotifID == p.right.MotifID {
			return "same motif"
		}
	}
	for _, cu := range uc {
		u1 := otherEnd(cu, u0)
		if u1 == v0 {
			return "would create a self-loop"
		}
		for _, cv := range vt[cu.Topology] {
			v1 := otherEnd(cv, v0)
			if v1 == u0 {
				return "would create a self-loop"
			}
			if e.net.HasEdge(u0, v1) || e.net.HasEdge(v0, u1) {
				return "target edge exists"
			}
		}
	}

	return ""
}

// pairCorners matches every u0 corner with a v0 corner of its topology,
// consuming the v0 corners last-in-first-out.
func pairCorners(u0, v0 int, uc, vc []core.Edge) []pair {
	pool := byTopology(vc)
	pairs := make([]pair, 0, len(uc))
	for _, cu := range uc {
		list := pool[cu.Topology]
		cv := list[len(list)-1]
		pool[cu.Topology] = list[:len(list)-1]
		pairs = append(pairs, pair{left: cu, right: cv, u1: otherEnd(cu, u0), v1: otherEnd(cv, v0)})
	}

	return pairs
}

// apply removes the paired corners and inserts the proposals in the network
// and the draw set, then checks the edge count.
func (e *Engine) apply(u0, v0 int, pairs []pair) error {
	const op = "Rewire"
	for _, p := range pairs {
		for _, old := range [2]core.Edge{p.left, p.right} {
			if err := e.net.RemoveEdge(old.U, old.V); err != nil {
				return newErr(KindInvariant, op, err, "remove corner %d-%d", old.U, old.V)
			}
			e.edges.Remove(old.Key())
		}
	}
	for _, p := range pairs {
		for _, np := range p.proposals(u0, v0) {
			if err := e.net.AddEdge(np.U, np.V, np.Topology, np.MotifID); err != nil {
				return newErr(KindInvariant, op, err, "add proposal %d-%d", np.U, np.V)
			}
			e.edges.Add(core.NewEdgeKey(np.U, np.V))
		}
	}
	if got := e.net.EdgeCount(); got != e.edgeCount || e.edges.Len() != e.edgeCount {
		return newErr(KindInvariant, op, nil, "edge count %d (draw set %d) after swap, want %d",
			got, e.edges.Len(), e.edgeCount)
	}

	return nil
}

func byTopology(corners []core.Edge) map[string][]core.Edge {
	out := make(map[string][]core.Edge, 1)
	for _, c := range corners {
		out[c.Topology] = append(out[c.Topology], c)
	}

	return out
}

func otherEnd(c core.Edge, u int) int {
	if c.U == u {
		return c.V
	}

	return c.U
}
