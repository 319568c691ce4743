// SPDX-License-Identifier: MIT
// Package core defines the labelled Network produced by the generalised
// configuration model and consumed by the rewiring engine.
//
// This file declares Vertex, Edge, EdgeKey, Network, NetworkOption,
// sentinel errors, and the NewNetwork constructor.
//
// Errors:
//
//	ErrVertexNotFound    - vertex ID outside 0..N-1.
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrLoopNotAllowed    - self-loop when loops are disabled.
//	ErrDuplicateEdge     - the unordered pair already carries an edge.
//	ErrUnknownTopology   - topology name or index not registered on the network.
//	ErrNotInEdge         - vertex is not an endpoint of the edge.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core network operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex outside 0..N-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the unordered vertex pair already carries an edge.
	ErrDuplicateEdge = errors.New("core: edge already present")

	// ErrUnknownTopology indicates a topology name or index that the network does not know.
	ErrUnknownTopology = errors.New("core: unknown topology")

	// ErrNotInEdge indicates a vertex that is not an endpoint of the given edge.
	ErrNotInEdge = errors.New("core: vertex not in edge")
)

// Vertex is a snapshot of one vertex: its identifier and joint-degree vector.
//
// JointDegree[t] counts the motifs of topology t the vertex participates in.
// Snapshots returned by the Network are copies; mutating them has no effect.
type Vertex struct {
	// ID is the vertex identifier in 0..N-1.
	ID int

	// JointDegree is index-aligned with Network.Topologies().
	JointDegree []int
}

// EdgeKey is the canonical form of an undirected vertex pair (U <= V).
type EdgeKey struct {
	U int
	V int
}

// NewEdgeKey returns the canonical key for the unordered pair {u, v}.
// Complexity: O(1).
func NewEdgeKey(u, v int) EdgeKey {
	if u > v {
		u, v = v, u
	}

	return EdgeKey{U: u, V: v}
}

// IsLoop reports whether the key joins a vertex to itself.
func (k EdgeKey) IsLoop() bool { return k.U == k.V }

// Edge is an undirected edge labelled with the motif instance it belongs to.
//
// U and V are stored canonically (U <= V). Every edge of one motif instance
// shares Topology and MotifID.
type Edge struct {
	// U is the lower endpoint.
	U int

	// V is the higher endpoint.
	V int

	// Topology names the motif pattern, e.g. "2-clique" or "3-clique".
	Topology string

	// MotifID identifies the physically constructed motif instance.
	MotifID int64
}

// Key returns the canonical EdgeKey of e.
func (e Edge) Key() EdgeKey { return EdgeKey{U: e.U, V: e.V} }

// Other returns the endpoint of e opposite to u.
// Returns ErrNotInEdge if u is not an endpoint.
// Complexity: O(1).
func (e Edge) Other(u int) (int, error) {
	switch u {
	case e.U:
		return e.V, nil
	case e.V:
		return e.U, nil
	default:
		return 0, ErrNotInEdge
	}
}

// NetworkOption configures behavior of a Network before creation.
type NetworkOption func(n *Network)

// WithLoops permits self-loops (edges from a vertex to itself).
// Stub matching can emit them; the rewiring engine refuses to run on them.
func WithLoops() NetworkOption {
	return func(n *Network) { n.allowLoops = true }
}

// Network is the owned, labelled, undirected simple graph of the model.
//
// Vertices are dense integers 0..N-1 with a joint-degree vector each.
// Edges are unique per unordered pair and carry a topology and motif id.
// mu guards every table; the rewiring engine additionally owns the
// network exclusively for the length of a run.
type Network struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool

	// Topology names, index-aligned with every joint-degree vector.
	topologies    []string
	topologyIndex map[string]int

	// Storage
	jointDegrees [][]int           // vertex ID → joint-degree vector
	edges        map[EdgeKey]*Edge // canonical pair → edge

	// adjacency[u][v] = edge; undirected edges are mirrored, loops stored once.
	adjacency []map[int]*Edge
}

// NewNetwork creates a Network with vertices 0..n-1, all joint-degree vectors
// zeroed, and no edges. Negative n is treated as zero.
// By default the network forbids self-loops.
// Complexity: O(n·T) where T = len(topologies).
func NewNetwork(n int, topologies []string, opts ...NetworkOption) *Network {
	if n < 0 {
		n = 0
	}
	net := &Network{
		topologies:    append([]string(nil), topologies...),
		topologyIndex: make(map[string]int, len(topologies)),
		jointDegrees:  make([][]int, n),
		edges:         make(map[EdgeKey]*Edge),
		adjacency:     make([]map[int]*Edge, n),
	}
	for i, name := range net.topologies {
		net.topologyIndex[name] = i
	}
	for v := 0; v < n; v++ {
		net.jointDegrees[v] = make([]int, len(topologies))
		net.adjacency[v] = make(map[int]*Edge)
	}
	// Apply options
	for _, opt := range opts {
		opt(net)
	}

	return net
}
