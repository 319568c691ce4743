// SPDX-License-Identifier: MIT
// Package: motifnet/rewire
//
// outcome.go — trial outcomes, run statistics and the observer hook.

package rewire

import "fmt"

// Outcome is the result of one trial.
type Outcome int

const (
	Accepted Outcome = iota
	RejectedMetropolis
	RejectedKeyMiss
	RejectedZero
	RejectedNoOp
	SearchExhausted
)

// Outcomes lists every Outcome in declaration order.
var Outcomes = []Outcome{Accepted, RejectedMetropolis, RejectedKeyMiss, RejectedZero, RejectedNoOp, SearchExhausted}

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case RejectedMetropolis:
		return "rejected_metropolis"
	case RejectedKeyMiss:
		return "rejected_key_miss"
	case RejectedZero:
		return "rejected_zero"
	case RejectedNoOp:
		return "rejected_noop"
	case SearchExhausted:
		return "search_exhausted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Observer receives run diagnostics. Calls happen on the rewiring goroutine.
type Observer interface {
	// ObserveTrial is called once per iteration.
	ObserveTrial(o Outcome)
	// ObserveSample is called every sample interval with the running
	// accepted/proposal counters.
	ObserveSample(accepted, proposals int, ratio float64)
}

type nopObserver struct{}

func (nopObserver) ObserveTrial(Outcome)            {}
func (nopObserver) ObserveSample(int, int, float64) {}

// Stats are the cumulative counters of an Engine.
type Stats struct {
	// Iterations counts trials, whatever their outcome.
	Iterations int
	// SearchAttempts counts e1 draws.
	SearchAttempts int
	// Proposals counts trials that reached the Metropolis evaluation.
	Proposals int
	// Accepted counts applied swaps.
	Accepted int
	// Outcomes counts trials per outcome.
	Outcomes map[Outcome]int
	// AcceptanceRatios holds Accepted/Proposals sampled every interval.
	AcceptanceRatios []float64
}

// AcceptanceRatio returns Accepted/Proposals, or 0 before any proposal.
func (s Stats) AcceptanceRatio() float64 {
	if s.Proposals == 0 {
		return 0
	}

	return float64(s.Accepted) / float64(s.Proposals)
}

func (s Stats) clone() Stats {
	out := s
	out.Outcomes = make(map[Outcome]int, len(s.Outcomes))
	for k, v := range s.Outcomes {
		out.Outcomes[k] = v
	}
	out.AcceptanceRatios = append([]float64(nil), s.AcceptanceRatios...)

	return out
}
