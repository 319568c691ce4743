// Package correlation extracts and compares joint excess-degree correlation
// tensors ("ejk matrices") of labelled networks.
//
// For a topology t, the excess degree of a vertex is its joint-degree vector
// with component t decremented: the connectivity left once one corner of a
// t-motif is held fixed. Each edge (u,v) of topology t contributes the pair
// key excess(u)‖excess(v) and its reverse; a Matrix maps those pair keys to
// frequencies, so it is symmetric and sums to 1.
//
// Keys are plain strings ("0,3" for a vector, "0,3,4,1" for a pair) so that
// tensors can be written to YAML and compared across runs without custom
// marshalling.
//
// Main entry points:
//
//	Extract(net, topologies) (*Tensors, error)  // O(E + K log K)
//	NewTensors(topologies, matrices)            // target tensors
//	(*Tensors).Validate(tol) error              // symmetry and normalisation
//	(*Tensors).ExcessDistributions()            // row sums q_k
//	Deviate(actual, target) Deviation           // absolute deviation
package correlation
