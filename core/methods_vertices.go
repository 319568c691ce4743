// File: methods_vertices.go
// Role: Vertex queries and joint-degree bookkeeping.
//
// Determinism:
//   - Vertices() returns snapshots sorted by ID ascending.
//
// Concurrency:
//   - Reads under mu read lock, joint-degree mutation under mu write lock.
//
// Joint-degree vectors are written by the generator while motifs are placed
// and by edge-list readers; afterwards they are read-only by convention.
package core

import "fmt"

// VertexCount returns the number of vertices N.
// Complexity: O(1).
func (n *Network) VertexCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.jointDegrees)
}

// HasVertex reports whether id lies in 0..N-1.
// Complexity: O(1).
func (n *Network) HasVertex(id int) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.hasVertex(id)
}

// Topologies returns a copy of the topology names, in joint-degree index order.
// Complexity: O(T).
func (n *Network) Topologies() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return append([]string(nil), n.topologies...)
}

// TopologyIndex returns the joint-degree index of the named topology.
// Returns ErrUnknownTopology if the name is not registered.
// Complexity: O(1).
func (n *Network) TopologyIndex(name string) (int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	i, ok := n.topologyIndex[name]
	if !ok {
		return 0, fmt.Errorf("TopologyIndex(%q): %w", name, ErrUnknownTopology)
	}

	return i, nil
}

// JointDegree returns a copy of the joint-degree vector of vertex id.
//
// Errors:
//   - ErrVertexNotFound: id outside 0..N-1.
//
// Complexity: O(T).
func (n *Network) JointDegree(id int) ([]int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if !n.hasVertex(id) {
		return nil, fmt.Errorf("JointDegree(%d): %w", id, ErrVertexNotFound)
	}

	return append([]int(nil), n.jointDegrees[id]...), nil
}

// IncrementJointDegree adds one to component t of vertex id's joint-degree vector.
//
// Errors:
//   - ErrVertexNotFound: id outside 0..N-1.
//   - ErrUnknownTopology: t outside 0..T-1.
//
// Complexity: O(1).
func (n *Network) IncrementJointDegree(id, t int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.hasVertex(id) {
		return fmt.Errorf("IncrementJointDegree(%d): %w", id, ErrVertexNotFound)
	}
	if t < 0 || t >= len(n.topologies) {
		return fmt.Errorf("IncrementJointDegree(%d, t=%d): %w", id, t, ErrUnknownTopology)
	}
	n.jointDegrees[id][t]++

	return nil
}

// SetJointDegree replaces the joint-degree vector of vertex id.
// The vector must have one component per topology.
// Complexity: O(T).
func (n *Network) SetJointDegree(id int, jd []int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.hasVertex(id) {
		return fmt.Errorf("SetJointDegree(%d): %w", id, ErrVertexNotFound)
	}
	if len(jd) != len(n.topologies) {
		return fmt.Errorf("SetJointDegree(%d): vector length %d, want %d: %w",
			id, len(jd), len(n.topologies), ErrUnknownTopology)
	}
	copy(n.jointDegrees[id], jd)

	return nil
}

// Vertices returns snapshots of all vertices sorted by ID.
// Complexity: O(N·T).
func (n *Network) Vertices() []Vertex {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Vertex, len(n.jointDegrees))
	for id, jd := range n.jointDegrees {
		out[id] = Vertex{ID: id, JointDegree: append([]int(nil), jd...)}
	}

	return out
}

// Degree returns the number of edges incident to id; a self-loop counts once.
// Complexity: O(1).
func (n *Network) Degree(id int) (int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if !n.hasVertex(id) {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrVertexNotFound)
	}

	return len(n.adjacency[id]), nil
}

// hasVertex is the lock-free membership check; callers hold mu.
func (n *Network) hasVertex(id int) bool {
	return id >= 0 && id < len(n.jointDegrees)
}
