// Package rewire implements correlation-preserving rewiring: a Markov chain
// of double-motif-corner swaps, accepted under a Metropolis criterion, that
// drives a labelled network's joint excess-degree correlations towards a
// target tensor while preserving every vertex's joint degree and the
// (topology, motif id) label of every edge.
//
// One trial:
//
//  1. draw edge e0 uniformly; u0 is one of its endpoints, chosen uniformly;
//     u0's corners are its edges sharing e0's motif id;
//  2. draw e1 up to SearchLimit times until it has e0's topology and v0's
//     corners form a suitable partner (same size, same topology counts,
//     different motifs, no target pair already present, no loop created);
//  3. pair corners by topology and propose (u0,v1) and (v0,u1) per pair;
//  4. accept with probability min(1, π), π being the ratio of target
//     weights of the new excess keys over the old ones;
//  5. on acceptance, swap the edges in the network and the draw set.
//
// A proposal edge replacing corner (v0,v1) by (u0,v1) inherits the labels
// of (v0,v1), and (v0,u1) inherits those of (u0,u1): u0 and v0 trade places
// between the two motif instances, which therefore stay whole.
//
// The chain is sequential. An Engine owns its network for the whole run and
// is not safe for concurrent use.
package rewire
