// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RelabelEdge/RemoveEdge/HasEdge/Edge/Edges/
//       EdgeCount, incident and motif-corner queries, filtered removals.
// Determinism:
//   - Edges() returns edges sorted by (U,V) asc.
//   - IncidentEdges()/MotifCorners() return edges sorted by the opposite endpoint.
// Concurrency:
//   - Mutations under mu write lock; read queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge creates the undirected edge {u,v} labelled with topology and motifID.
//
// Steps:
//  1. Validate endpoints, topology, loop policy.
//  2. Reject an already present pair (ErrDuplicateEdge).
//  3. Store in the edge catalog and link adjacency (mirrored unless a loop).
//
// Errors: ErrVertexNotFound, ErrUnknownTopology, ErrLoopNotAllowed, ErrDuplicateEdge.
// Complexity: O(1) amortized.
func (n *Network) AddEdge(u, v int, topology string, motifID int64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	// 1) Input validation
	if !n.hasVertex(u) || !n.hasVertex(v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexNotFound)
	}
	if _, ok := n.topologyIndex[topology]; !ok {
		return fmt.Errorf("AddEdge(%d,%d, %q): %w", u, v, topology, ErrUnknownTopology)
	}
	if u == v && !n.allowLoops {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	// 2) Simple-graph constraint
	key := NewEdgeKey(u, v)
	if _, exists := n.edges[key]; exists {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
	}

	// 3) Store and link adjacency
	e := &Edge{U: key.U, V: key.V, Topology: topology, MotifID: motifID}
	n.edges[key] = e
	n.adjacency[key.U][key.V] = e
	n.adjacency[key.V][key.U] = e // same slot when U == V

	return nil
}

// RelabelEdge overwrites the topology and motif id of the existing edge {u,v}.
//
// Errors: ErrEdgeNotFound, ErrUnknownTopology.
// Complexity: O(1).
func (n *Network) RelabelEdge(u, v int, topology string, motifID int64) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.topologyIndex[topology]; !ok {
		return fmt.Errorf("RelabelEdge(%d,%d, %q): %w", u, v, topology, ErrUnknownTopology)
	}
	e, ok := n.edges[NewEdgeKey(u, v)]
	if !ok {
		return fmt.Errorf("RelabelEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	e.Topology = topology
	e.MotifID = motifID

	return nil
}

// RemoveEdge deletes the edge {u,v} and its mirror.
//
// Errors: ErrEdgeNotFound (removing an absent edge is never silently ignored).
// Complexity: O(1).
func (n *Network) RemoveEdge(u, v int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	key := NewEdgeKey(u, v)
	if _, ok := n.edges[key]; !ok {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	n.unlink(key)

	return nil
}

// HasEdge reports whether the unordered pair {u,v} carries an edge.
// Complexity: O(1).
func (n *Network) HasEdge(u, v int) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.edges[NewEdgeKey(u, v)]

	return ok
}

// Edge returns a copy of the edge {u,v}.
//
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (n *Network) Edge(u, v int) (Edge, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	e, ok := n.edges[NewEdgeKey(u, v)]
	if !ok {
		return Edge{}, fmt.Errorf("Edge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}

	return *e, nil
}

// Edges returns copies of all edges sorted by (U,V) asc.
// Complexity: O(E log E).
func (n *Network) Edges() []Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Edge, 0, len(n.edges))
	for _, e := range n.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (n *Network) EdgeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.edges)
}

// IncidentEdges returns copies of the edges incident to u, sorted by the
// opposite endpoint.
//
// Errors: ErrVertexNotFound.
// Complexity: O(d log d).
func (n *Network) IncidentEdges(u int) ([]Edge, error) {
	return n.incident(u, func(*Edge) bool { return true })
}

// MotifCorners returns the edges incident to u that belong to motif instance
// motifID, sorted by the opposite endpoint. These are u's corners of that motif.
//
// Errors: ErrVertexNotFound.
// Complexity: O(d log d).
func (n *Network) MotifCorners(u int, motifID int64) ([]Edge, error) {
	return n.incident(u, func(e *Edge) bool { return e.MotifID == motifID })
}

// FilterEdges removes all edges failing the predicate and returns how many were removed.
//
// Contract:
//   - pred is pure; must not mutate the network.
//
// Complexity: O(E).
func (n *Network) FilterEdges(pred func(Edge) bool) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	removed := 0
	for key, e := range n.edges {
		if !pred(*e) {
			n.unlink(key)
			removed++
		}
	}

	return removed
}

// RemoveSelfLoops removes every self-loop and returns how many were removed.
// Complexity: O(E).
func (n *Network) RemoveSelfLoops() int {
	return n.FilterEdges(func(e Edge) bool { return e.U != e.V })
}

// SelfLoopCount returns the number of self-loops currently stored.
// Complexity: O(N).
func (n *Network) SelfLoopCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	count := 0
	for u, nbrs := range n.adjacency {
		if _, ok := nbrs[u]; ok {
			count++
		}
	}

	return count
}

// incident collects the edges around u that satisfy keep.
func (n *Network) incident(u int, keep func(*Edge) bool) ([]Edge, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if !n.hasVertex(u) {
		return nil, fmt.Errorf("incident(%d): %w", u, ErrVertexNotFound)
	}
	out := make([]Edge, 0, len(n.adjacency[u]))
	for _, e := range n.adjacency[u] {
		if keep(e) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return otherOf(out[i], u) < otherOf(out[j], u)
	})

	return out, nil
}

// unlink drops key from the catalog and adjacency; callers hold mu.
func (n *Network) unlink(key EdgeKey) {
	delete(n.edges, key)
	delete(n.adjacency[key.U], key.V)
	delete(n.adjacency[key.V], key.U)
}

// otherOf is Edge.Other for an endpoint already known to be on e.
func otherOf(e Edge, u int) int {
	if e.U == u {
		return e.V
	}

	return e.U
}
