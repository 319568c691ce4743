// File: methods_clone.go
// Role: Cloning network instances.
// Determinism:
//   - Clone preserves vertex IDs, joint degrees, edge labels and the loop policy.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source network.

package core

// CloneEmpty returns a new Network with identical configuration, topologies and
// joint-degree vectors, but no edges.
//
// Complexity: O(N·T).
func (n *Network) CloneEmpty() *Network {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.cloneEmptyLocked()
}

// Clone returns a deep copy of the Network: configuration, joint degrees,
// edges with their labels, and adjacency.
//
// Complexity: O(N·T + E).
func (n *Network) Clone() *Network {
	n.mu.RLock()
	defer n.mu.RUnlock()
	clone := n.cloneEmptyLocked()
	for key, e := range n.edges {
		ne := &Edge{U: e.U, V: e.V, Topology: e.Topology, MotifID: e.MotifID}
		clone.edges[key] = ne
		clone.adjacency[key.U][key.V] = ne
		clone.adjacency[key.V][key.U] = ne
	}

	return clone
}

// cloneEmptyLocked copies configuration and vertices; callers hold mu.
func (n *Network) cloneEmptyLocked() *Network {
	var opts []NetworkOption
	if n.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewNetwork(len(n.jointDegrees), n.topologies, opts...)
	for id, jd := range n.jointDegrees {
		copy(clone.jointDegrees[id], jd)
	}

	return clone
}
