// Package edgelist persists labelled networks.
//
// The text format is line oriented, whitespace separated, and carries
// everything a core.Network holds:
//
//	# comment
//	topologies 2-clique 3-clique
//	vertices 4
//	loops false
//	jd 0 1,0
//	jd 1 2,1
//	edge 0 1 2-clique 0
//	edge 1 2 3-clique 5
//
// The header lines (topologies, vertices, loops) come first; jd and edge
// lines follow in any order. Vertices without a jd line keep a zero vector.
// Topology names must not contain whitespace.
//
// WriteDOT renders a network in Graphviz DOT through gonum's encoder, with
// topology and motif id as edge attributes, for visual inspection.
package edgelist
