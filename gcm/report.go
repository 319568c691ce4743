// SPDX-License-Identifier: MIT
// Package: motifnet/gcm
//
// report.go — artifact bookkeeping of one Generate call.

package gcm

// Report counts what one Generate call produced and what the artifact
// policy did to stub-matching leftovers.
type Report struct {
	// Motifs is the number of motif instances placed, per topology.
	Motifs map[string]int
	// Edges is the final edge count of the network.
	Edges int
	// SelfLoopsKept / SelfLoopsDropped count loop pairs by outcome.
	SelfLoopsKept    int
	SelfLoopsDropped int
	// DuplicatesRelabelled / DuplicatesSkipped count repeated pairs by outcome.
	DuplicatesRelabelled int
	DuplicatesSkipped    int
	// DiscardedStubs counts stubs left in a short trailing chunk, per topology.
	DiscardedStubs map[string]int
}

func newReport(names []string) Report {
	r := Report{
		Motifs:         make(map[string]int, len(names)),
		DiscardedStubs: make(map[string]int, len(names)),
	}
	for _, n := range names {
		r.Motifs[n] = 0
		r.DiscardedStubs[n] = 0
	}

	return r
}

func (r Report) clone() Report {
	out := r
	out.Motifs = make(map[string]int, len(r.Motifs))
	for k, v := range r.Motifs {
		out.Motifs[k] = v
	}
	out.DiscardedStubs = make(map[string]int, len(r.DiscardedStubs))
	for k, v := range r.DiscardedStubs {
		out.DiscardedStubs[k] = v
	}

	return out
}
