// SPDX-License-Identifier: MIT
// Package: motifnet/rewire
//
// engine.go — engine construction and the trial loop.
//
// Determinism:
//   • A fixed seed, a fixed network and a fixed target fix the run: corner
//     lists are sorted by opposite endpoint and the draw set is built from
//     the sorted edge list.
//
// Complexity:
//   • NewEngine: O(E log E + N·T).
//   • One trial: O(S·(d log d + c²)) for search limit S, vertex degree d and
//     corner count c.

package rewire

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/motifnet/core"
	"github.com/katalvlaran/motifnet/correlation"
	"github.com/katalvlaran/motifnet/drawset"
)

// Engine rewires one network towards one target.
type Engine struct {
	net    *core.Network
	target *correlation.Tensors
	cfg    config
	rng    *rand.Rand
	log    *logrus.Entry
	debug  bool

	edges     *drawset.Set[core.EdgeKey]
	edgeCount int

	// excess[t][v] is the excess-degree key of v under topology index t.
	excess [][]string

	stats Stats
}

// NewEngine prepares a run on net towards target.
//
// Errors (KindConfiguration): nil network or target; self-loops present
// without WithSelfLoopFilter; an edge topology missing from the target; target
// vectors whose length differs from the network's topology count; no edges
// while swaps are requested.
func NewEngine(net *core.Network, target *correlation.Tensors, opts ...Option) (*Engine, error) {
	const op = "NewEngine"
	if net == nil {
		return nil, newErr(KindConfiguration, op, nil, "nil network")
	}
	if target == nil {
		return nil, newErr(KindConfiguration, op, nil, "nil target")
	}
	cfg := newConfig(opts...)

	if loops := net.SelfLoopCount(); loops > 0 {
		if !cfg.filterLoops {
			return nil, newErr(KindConfiguration, op, core.ErrLoopNotAllowed,
				"network holds %d self-loops; remove them or use WithSelfLoopFilter", loops)
		}
		removed := net.RemoveSelfLoops()
		cfg.log.WithField("removed", removed).Info("self-loops filtered before rewiring")
	}

	topologies := net.Topologies()
	for name, keys := range target.ExcessKeys {
		for _, k := range keys {
			if len(k) != len(topologies) {
				return nil, newErr(KindConfiguration, op, correlation.ErrMalformedKey,
					"target %q: vector %v has %d components, network has %d topologies",
					name, k, len(k), len(topologies))
			}
		}
	}

	edges := net.Edges()
	set := drawset.New[core.EdgeKey](cfg.rng, len(edges))
	for _, e := range edges {
		if _, ok := target.Matrices[e.Topology]; !ok {
			return nil, newErr(KindConfiguration, op, core.ErrUnknownTopology,
				"target has no matrix for topology %q", e.Topology)
		}
		set.Add(e.Key())
	}
	if cfg.convergence < 0 {
		cfg.convergence = convergencePerEdge * len(edges)
	}
	if cfg.convergence > 0 && len(edges) == 0 {
		return nil, newErr(KindConfiguration, op, nil, "no edges to rewire")
	}

	excess := make([][]string, len(topologies))
	vertices := net.Vertices()
	for t := range topologies {
		excess[t] = make([]string, len(vertices))
		for _, v := range vertices {
			excess[t][v.ID] = correlation.DegreeVector(v.JointDegree).Excess(t).Key()
		}
	}

	return &Engine{
		net:       net,
		target:    target,
		cfg:       cfg,
		rng:       cfg.rng,
		log:       cfg.log,
		debug:     cfg.log.Logger.IsLevelEnabled(logrus.DebugLevel),
		edges:     set,
		edgeCount: len(edges),
		excess:    excess,
		stats:     Stats{Outcomes: make(map[Outcome]int, len(Outcomes))},
	}, nil
}

// ConvergenceLimit returns the number of accepted swaps one Rewire call makes.
func (e *Engine) ConvergenceLimit() int { return e.cfg.convergence }

// Stats returns a copy of the cumulative counters.
func (e *Engine) Stats() Stats { return e.stats.clone() }

// Rewire runs the chain until ConvergenceLimit swaps have been accepted and
// returns the mutated network (the one passed to NewEngine).
//
// Errors:
//   - KindSearchExhausted: StallLimit consecutive iterations without an
//     accepted swap.
//   - KindInvariant: a broken edge count, a zero Metropolis denominator, or
//     a network that refused a vetted mutation. The network must be
//     considered corrupt.
func (e *Engine) Rewire() (*core.Network, error) {
	return e.RewireContext(context.Background())
}

// RewireContext is Rewire with cancellation, checked once per sample
// interval. A cancelled run returns ctx's error; every swap applied so far
// is complete, so the network is consistent and Stats is current.
func (e *Engine) RewireContext(ctx context.Context) (*core.Network, error) {
	const op = "Rewire"
	e.log.WithFields(logrus.Fields{
		"edges":        e.edgeCount,
		"convergence":  e.cfg.convergence,
		"search_limit": e.cfg.searchLimit,
	}).Info("rewiring started")

	accepted, stall := 0, 0
	for accepted < e.cfg.convergence {
		e.stats.Iterations++
		if e.stats.Iterations%e.cfg.sampleInterval == 0 {
			e.sample()
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("%s: after %d/%d swaps: %w", op, accepted, e.cfg.convergence, err)
			}
		}

		outcome, err := e.trial()
		if err != nil {
			return nil, err
		}
		e.stats.Outcomes[outcome]++
		e.cfg.observer.ObserveTrial(outcome)

		if outcome != Accepted {
			stall++
			if stall >= e.cfg.stallLimit {
				return nil, newErr(KindSearchExhausted, op, nil,
					"no swap accepted in %d consecutive iterations (%d/%d accepted)",
					stall, accepted, e.cfg.convergence)
			}
			continue
		}
		stall = 0
		accepted++
	}
	e.sample()

	e.log.WithFields(logrus.Fields{
		"iterations": e.stats.Iterations,
		"proposals":  e.stats.Proposals,
		"accepted":   e.stats.Accepted,
		"ratio":      e.stats.AcceptanceRatio(),
	}).Info("rewiring finished")

	return e.net, nil
}

// sample records the running acceptance ratio.
func (e *Engine) sample() {
	if e.stats.Proposals == 0 {
		return
	}
	ratio := e.stats.AcceptanceRatio()
	e.stats.AcceptanceRatios = append(e.stats.AcceptanceRatios, ratio)
	e.cfg.observer.ObserveSample(e.stats.Accepted, e.stats.Proposals, ratio)
}

// trial runs one iteration: anchors, search, Metropolis, mutation.
func (e *Engine) trial() (Outcome, error) {
	const op = "Rewire"
	k0, err := e.edges.Draw()
	if err != nil {
		return 0, newErr(KindInvariant, op, err, "draw set emptied during run")
	}
	e0, err := e.net.Edge(k0.U, k0.V)
	if err != nil {
		return 0, newErr(KindInvariant, op, err, "draw set holds missing edge %v", k0)
	}
	u0 := e.endpoint(k0)
	uc, err := e.net.MotifCorners(u0, e0.MotifID)
	if err != nil {
		return 0, newErr(KindInvariant, op, err, "corners of %d", u0)
	}

	v0, vc, found, err := e.search(e0, u0, uc)
	if err != nil {
		return 0, err
	}
	if !found {
		if e.debug {
			e.log.WithFields(logrus.Fields{
				"edge":     k0,
				"topology": e0.Topology,
				"motif":    e0.MotifID,
			}).Debug("no swap partner within search limit")
		}
		return SearchExhausted, nil
	}

	pairs := pairCorners(u0, v0, uc, vc)
	e.stats.Proposals++
	outcome, err := e.metropolis(u0, v0, pairs)
	if err != nil || outcome != Accepted {
		return outcome, err
	}
	if err := e.apply(u0, v0, pairs); err != nil {
		return 0, err
	}
	e.stats.Accepted++

	return Accepted, nil
}

// search draws e1 up to the search limit and returns the first suitable
// right anchor v0 with its corners.
func (e *Engine) search(e0 core.Edge, u0 int, uc []core.Edge) (int, []core.Edge, bool, error) {
	const op = "Rewire"
	for attempt := 0; attempt < e.cfg.searchLimit; attempt++ {
		e.stats.SearchAttempts++
		k1, err := e.edges.Draw()
		if err != nil {
			return 0, nil, false, newErr(KindInvariant, op, err, "draw set emptied during run")
		}
		e1, err := e.net.Edge(k1.U, k1.V)
		if err != nil {
			return 0, nil, false, newErr(KindInvariant, op, err, "draw set holds missing edge %v", k1)
		}
		if e1.Topology != e0.Topology {
			continue
		}
		v0 := e.endpoint(k1)
		vc, err := e.net.MotifCorners(v0, e1.MotifID)
		if err != nil {
			return 0, nil, false, newErr(KindInvariant, op, err, "corners of %d", v0)
		}
		if reason := e.unsuitable(u0, v0, uc, vc); reason != "" {
			if e.debug {
				e.log.WithFields(logrus.Fields{"u0": u0, "v0": v0, "reason": reason}).Debug("corners unsuitable")
			}
			continue
		}
		return v0, vc, true, nil
	}

	return 0, nil, false, nil
}

// endpoint picks one end of k uniformly.
func (e *Engine) endpoint(k core.EdgeKey) int {
	if e.rng.Intn(2) == 0 {
		return k.U
	}

	return k.V
}
