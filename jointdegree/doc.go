// Package jointdegree builds joint degree sequences (JDS) from joint degree
// distributions (JDD) and inverts excess-degree marginals back into a JDD.
//
// A Distribution maps joint-degree keys ("a,b,...") to weights. Sample draws
// n keys with replacement, in proportion to their weights, using gonum's
// weighted sampler. Handshake then tops up each topology's stub total to a
// multiple of its motif size, so that stub matching leaves no short chunk.
//
// FromExcess inverts per-topology excess marginals q_k into one JDD:
//
//	P_t(k) ∝ q_t(k - e_t) / k_t
//
// and rescales every topology's estimate onto a reference topology through
// a key all estimates share.
package jointdegree
