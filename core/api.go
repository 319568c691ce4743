// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters and snapshots.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
//   - Every exported function documents complexity and locking strategy.

package core

// NetworkStats is a read-only snapshot of catalog sizes and label counts.
type NetworkStats struct {
	// AllowsLoops reports the loop policy flag.
	AllowsLoops bool

	// VertexCount is N.
	VertexCount int

	// EdgeCount is the total number of edges.
	EdgeCount int

	// SelfLoops is the number of stored self-loops.
	SelfLoops int

	// EdgesByTopology counts edges per topology name.
	EdgesByTopology map[string]int

	// MotifsByTopology counts distinct motif ids per topology name.
	MotifsByTopology map[string]int
}

// Label is the (topology, motif id) pair carried by an edge.
type Label struct {
	Topology string
	MotifID  int64
}

// Looped reports whether self-loops (u==v) are permitted by policy.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
//
// Implementation:
//   - Stage 1: Acquire mu read lock to observe configuration consistently.
//   - Stage 2: Return the immutable loops policy flag.
//
// Returns:
//   - bool: true if self-loops are permitted.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - This is a policy flag; existing self-loops can only exist if this was enabled at creation time.
func (n *Network) Looped() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.allowLoops
}

// Stats produces a deterministic, read-only snapshot of sizes and per-topology
// edge and motif counts.
//
// Implementation:
//   - Stage 1: Acquire mu read lock.
//   - Stage 2: Single pass over the edge catalog classifying by topology and motif id.
//
// Returns:
//   - *NetworkStats: immutable-by-convention snapshot.
//
// Determinism:
//   - Deterministic for a fixed network state.
//
// Complexity:
//   - Time O(E), Space O(T + motifs).
func (n *Network) Stats() *NetworkStats {
	n.mu.RLock()
	defer n.mu.RUnlock()

	stats := NetworkStats{
		AllowsLoops:      n.allowLoops,
		VertexCount:      len(n.jointDegrees),
		EdgeCount:        len(n.edges),
		EdgesByTopology:  make(map[string]int, len(n.topologies)),
		MotifsByTopology: make(map[string]int, len(n.topologies)),
	}
	seen := make(map[Label]struct{})
	for _, e := range n.edges {
		if e.U == e.V {
			stats.SelfLoops++
		}
		stats.EdgesByTopology[e.Topology]++
		label := Label{Topology: e.Topology, MotifID: e.MotifID}
		if _, ok := seen[label]; !ok {
			seen[label] = struct{}{}
			stats.MotifsByTopology[e.Topology]++
		}
	}

	return &stats
}

// LabelCounts returns the multiset of edge labels: how many edges carry each
// (topology, motif id) pair. Rewiring swaps must leave it unchanged.
//
// Complexity:
//   - Time O(E), Space O(motifs).
func (n *Network) LabelCounts() map[Label]int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make(map[Label]int)
	for _, e := range n.edges {
		out[Label{Topology: e.Topology, MotifID: e.MotifID}]++
	}

	return out
}
