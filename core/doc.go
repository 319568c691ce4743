// Package core provides the in-memory labelled Network of the generalised
// configuration model: an undirected simple graph whose vertices carry
// joint-degree vectors and whose edges carry motif provenance.
//
// The Network N = (V,E) is built around a few rules:
//
//   - Vertices are dense integers 0..N-1, fixed at construction (NewNetwork).
//   - Every vertex holds a joint-degree vector, index-aligned with Topologies();
//     component t counts the motifs of topology t the vertex takes part in.
//   - Edges are undirected and unique per unordered pair; EdgeKey stores the
//     pair canonically (U <= V).
//   - Every edge carries a Topology name and a MotifID. All edges of one
//     motif instance share both labels.
//   - Self-loops only with WithLoops(); stub matching may produce them and the
//     rewiring engine refuses to run while any remain.
//   - One sync.RWMutex guards every table.
//
// Core Methods:
//
//	// Vertices
//	VertexCount() int                           // O(1)
//	JointDegree(id int) ([]int, error)          // O(T), copy
//	IncrementJointDegree(id, t int) error       // O(1)
//	Vertices() []Vertex                         // O(N·T), sorted by ID
//
//	// Edges
//	AddEdge(u, v int, topology string, motifID int64) error  // O(1)
//	RelabelEdge(u, v int, topology string, motifID int64) error
//	RemoveEdge(u, v int) error                  // O(1)
//	HasEdge(u, v int) bool                      // O(1)
//	Edges() []Edge                              // O(E log E), sorted by (U,V)
//	MotifCorners(u int, motifID int64) ([]Edge, error) // O(d log d)
//
//	// Maintenance
//	FilterEdges(pred func(Edge) bool) int       // O(E)
//	RemoveSelfLoops() int                       // O(E)
//	Clone() *Network                            // O(N·T + E)
//	Stats() *NetworkStats                       // O(E)
//	LabelCounts() map[Label]int                 // O(E)
//
// Errors:
//
//	ErrVertexNotFound  – vertex outside 0..N-1
//	ErrEdgeNotFound    – missing edge
//	ErrLoopNotAllowed  – self-loop when loops disabled
//	ErrDuplicateEdge   – pair already carries an edge
//	ErrUnknownTopology – topology not registered
//	ErrNotInEdge       – vertex is not an endpoint
package core
