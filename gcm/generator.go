// SPDX-License-Identifier: MIT
// Package: motifnet/gcm
//
// generator.go — stub lists, shuffling, chunking and motif placement.
//
// Determinism:
//   • Topologies are processed in spec order; stubs are laid out in vertex
//     order before shuffling, so a fixed seed fixes the network.
//
// Complexity:
//   • Time: O(S + Σ pairs) where S is the total stub count.
//   • Space: O(S) for the stub lists, released after Generate returns.

package gcm

import (
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/motifnet/core"
	"github.com/katalvlaran/motifnet/motif"
)

// MotifSpec describes one topology: motif size, its builder and its name.
type MotifSpec struct {
	Size     int
	Builder  motif.Builder
	Topology string
}

// JDS is a joint degree sequence: JDS[v][t] is the number of motifs of
// topology t that vertex v takes part in.
type JDS [][]int

// Generator turns a JDS into a labelled network.
type Generator struct {
	mu     sync.Mutex
	specs  []MotifSpec
	names  []string
	rng    *rand.Rand
	log    *logrus.Entry
	policy ArtifactPolicy
	nextID int64
	last   Report
}

// NewGenerator validates specs and returns a ready Generator.
//
// Errors (KindConfiguration): empty specs, nil builder, Size < 1,
// Size != Builder.Size(), empty or duplicate topology name, or a builder
// that fails motif.Validate.
func NewGenerator(specs []MotifSpec, opts ...Option) (*Generator, error) {
	const op = "NewGenerator"
	if len(specs) == 0 {
		return nil, configErr(op, nil, "no motif specs")
	}
	seen := make(map[string]bool, len(specs))
	names := make([]string, len(specs))
	for i, s := range specs {
		switch {
		case s.Builder == nil:
			return nil, configErr(op, motif.ErrNilBuilder, "spec %d (%q): missing builder", i, s.Topology)
		case s.Size < 1:
			return nil, configErr(op, nil, "spec %d (%q): size %d < 1", i, s.Topology, s.Size)
		case s.Size != s.Builder.Size():
			return nil, configErr(op, motif.ErrVertexCount, "spec %d (%q): size %d, builder size %d",
				i, s.Topology, s.Size, s.Builder.Size())
		case s.Topology == "":
			return nil, configErr(op, nil, "spec %d: empty topology name", i)
		case seen[s.Topology]:
			return nil, configErr(op, nil, "spec %d: duplicate topology %q", i, s.Topology)
		}
		if err := motif.Validate(s.Builder); err != nil {
			return nil, configErr(op, err, "spec %d (%q): builder rejected its trial tuple", i, s.Topology)
		}
		seen[s.Topology] = true
		names[i] = s.Topology
	}

	cfg := newConfig(opts...)
	specCopy := make([]MotifSpec, len(specs))
	copy(specCopy, specs)

	return &Generator{
		specs:  specCopy,
		names:  names,
		rng:    cfg.rng,
		log:    cfg.log,
		policy: cfg.policy,
		nextID: cfg.firstMotif,
	}, nil
}

// Topologies returns the topology names in JDS component order.
func (g *Generator) Topologies() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// MotifSizes returns the motif sizes in JDS component order.
func (g *Generator) MotifSizes() []int {
	out := make([]int, len(g.specs))
	for i, s := range g.specs {
		out[i] = s.Size
	}

	return out
}

// NextMotifID returns the id the next placed motif will receive.
func (g *Generator) NextMotifID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.nextID
}

// LastReport returns the artifact report of the most recent Generate call.
func (g *Generator) LastReport() Report {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.last.clone()
}

// Generate builds a network realising jds.
//
// Errors:
//   - KindConfiguration: a vector of the wrong length or a negative count.
//   - KindInvariant: the network rejected an edge the generator had vetted,
//     or a builder failed on a full-size chunk.
func (g *Generator) Generate(jds JDS) (*core.Network, error) {
	const op = "Generate"
	g.mu.Lock()
	defer g.mu.Unlock()

	want := len(g.specs)
	for v, vec := range jds {
		if len(vec) != want {
			return nil, configErr(op, nil, "vertex %d: joint degree has %d components, want %d", v, len(vec), want)
		}
		for t, k := range vec {
			if k < 0 {
				return nil, configErr(op, nil, "vertex %d: negative count %d for %q", v, k, g.names[t])
			}
		}
	}

	var netOpts []core.NetworkOption
	if !g.policy.DropSelfLoops {
		netOpts = append(netOpts, core.WithLoops())
	}
	net := core.NewNetwork(len(jds), g.names, netOpts...)
	report := newReport(g.names)

	for t, spec := range g.specs {
		stubs := stubList(jds, t)
		g.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		full := len(stubs) / spec.Size * spec.Size
		if rem := len(stubs) - full; rem > 0 {
			report.DiscardedStubs[spec.Topology] += rem
			g.log.WithFields(logrus.Fields{
				"topology": spec.Topology,
				"stubs":    len(stubs),
				"size":     spec.Size,
				"dropped":  rem,
			}).Warn("stub count not divisible by motif size; trailing chunk discarded")
		}

		for start := 0; start < full; start += spec.Size {
			chunk := stubs[start : start+spec.Size]
			if err := g.place(net, t, spec, chunk, &report); err != nil {
				return nil, err
			}
		}
	}

	report.Edges = net.EdgeCount()
	g.last = report
	g.log.WithFields(logrus.Fields{
		"vertices":   net.VertexCount(),
		"edges":      report.Edges,
		"self_loops": report.SelfLoopsKept + report.SelfLoopsDropped,
		"duplicates": report.DuplicatesRelabelled + report.DuplicatesSkipped,
	}).Info("network generated")

	return net, nil
}

// place builds one motif instance on chunk and records it in net.
func (g *Generator) place(net *core.Network, t int, spec MotifSpec, chunk []int, report *Report) error {
	const op = "Generate"
	pairs, err := spec.Builder.Build(chunk)
	if err != nil {
		return invariantErr(op, err, "builder for %q failed on chunk %v", spec.Topology, chunk)
	}
	id := g.nextID
	g.nextID++
	report.Motifs[spec.Topology]++

	for _, p := range pairs {
		if p.U == p.V {
			if g.policy.DropSelfLoops {
				report.SelfLoopsDropped++
				continue
			}
		}
		if net.HasEdge(p.U, p.V) {
			if g.policy.Duplicates == SkipDuplicates {
				report.DuplicatesSkipped++
				continue
			}
			report.DuplicatesRelabelled++
			if err := net.RelabelEdge(p.U, p.V, spec.Topology, id); err != nil {
				return invariantErr(op, err, "relabel %d-%d", p.U, p.V)
			}
			continue
		}
		if err := net.AddEdge(p.U, p.V, spec.Topology, id); err != nil {
			return invariantErr(op, err, "add %d-%d", p.U, p.V)
		}
		if p.U == p.V {
			report.SelfLoopsKept++
		}
	}
	for _, v := range chunk {
		if err := net.IncrementJointDegree(v, t); err != nil {
			return invariantErr(op, err, "joint degree of %d", v)
		}
	}

	return nil
}

// stubList repeats every vertex v jds[v][t] times, in vertex order.
func stubList(jds JDS, t int) []int {
	total := 0
	for _, vec := range jds {
		total += vec[t]
	}
	stubs := make([]int, 0, total)
	for v, vec := range jds {
		for k := 0; k < vec[t]; k++ {
			stubs = append(stubs, v)
		}
	}

	return stubs
}
