package rewire_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/motifnet/core"
	"github.com/katalvlaran/motifnet/correlation"
	"github.com/katalvlaran/motifnet/gcm"
	"github.com/katalvlaran/motifnet/jointdegree"
	"github.com/katalvlaran/motifnet/motif"
	"github.com/katalvlaran/motifnet/rewire"
)

var mixedTopologies = []string{"2-clique", "3-clique"}

// mixedNetwork generates an edge/triangle network of n vertices.
func mixedNetwork(seed uint64, n int) (*core.Network, error) {
	rng := rand.New(rand.NewSource(seed))
	jds, err := jointdegree.Distribution{"1,0": 0.3, "2,1": 0.4, "3,0": 0.1, "1,2": 0.2}.Sample(n, rng)
	if err != nil {
		return nil, err
	}
	if _, err := jointdegree.Handshake(jds, []int{2, 3}, rng); err != nil {
		return nil, err
	}
	g, err := gcm.NewGenerator([]gcm.MotifSpec{
		{Size: 2, Builder: motif.Clique(2), Topology: "2-clique"},
		{Size: 3, Builder: motif.Clique(3), Topology: "3-clique"},
	}, gcm.WithRand(rng), gcm.WithLogger(quietLogger()),
		gcm.WithArtifactPolicy(gcm.ArtifactPolicy{DropSelfLoops: true, Duplicates: gcm.SkipDuplicates}))
	if err != nil {
		return nil, err
	}
	return g.Generate(gcm.JDS(jds))
}

// neutralTarget is the uncorrelated tensor q(k)q(j) of net's own marginals,
// so every key the network can reach has positive weight.
func neutralTarget(net *core.Network) (*correlation.Tensors, error) {
	observed, err := correlation.Extract(net, mixedTopologies)
	if err != nil {
		return nil, err
	}
	qks := observed.ExcessDistributions()
	matrices := make(map[string]correlation.Matrix, len(mixedTopologies))
	for _, name := range mixedTopologies {
		m := make(correlation.Matrix)
		keys := observed.ExcessKeys[name]
		for _, a := range keys {
			for _, b := range keys {
				m[correlation.NewPairKey(a, b)] = qks[name][a.Key()] * qks[name][b.Key()]
			}
		}
		matrices[name] = m
	}
	return correlation.NewTensors(mixedTopologies, matrices)
}

// realisedDegrees counts each vertex's incident edges per topology.
func realisedDegrees(net *core.Network) map[int]map[string]int {
	out := make(map[int]map[string]int)
	for _, e := range net.Edges() {
		for _, v := range []int{e.U, e.V} {
			if out[v] == nil {
				out[v] = make(map[string]int)
			}
			out[v][e.Topology]++
		}
	}
	return out
}

// fullTriangles counts 3-clique motifs that still hold three edges over
// three distinct vertices.
func fullTriangles(net *core.Network) int {
	members := make(map[int64]map[int]bool)
	edges := make(map[int64]int)
	for _, e := range net.Edges() {
		if e.Topology != "3-clique" {
			continue
		}
		if members[e.MotifID] == nil {
			members[e.MotifID] = make(map[int]bool)
		}
		members[e.MotifID][e.U] = true
		members[e.MotifID][e.V] = true
		edges[e.MotifID]++
	}
	full := 0
	for id, n := range edges {
		if n == 3 && len(members[id]) == 3 {
			full++
		}
	}
	return full
}

// TestRewire_PreservesStructure checks, over many generated networks, that
// rewiring keeps the edge count, the label multiset, every vertex's
// per-topology degree and every whole triangle whole.
func TestRewire_PreservesStructure(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	properties.Property("swaps preserve degrees and motifs", prop.ForAll(
		func(seed uint64) bool {
			net, err := mixedNetwork(seed, 80)
			if err != nil {
				return false
			}
			target, err := neutralTarget(net)
			if err != nil {
				return false
			}
			edges, labels := net.EdgeCount(), net.LabelCounts()
			degrees, triangles := realisedDegrees(net), fullTriangles(net)

			eng, err := rewire.NewEngine(net, target,
				rewire.WithSeed(seed), rewire.WithConvergenceLimit(40),
				rewire.WithStallLimit(50000), rewire.WithLogger(quietLogger()))
			if err != nil {
				return false
			}
			if _, err := eng.Rewire(); err != nil {
				return false
			}

			if net.EdgeCount() != edges || net.SelfLoopCount() != 0 {
				return false
			}
			if !equalLabels(labels, net.LabelCounts()) || !equalDegrees(degrees, realisedDegrees(net)) {
				return false
			}
			return fullTriangles(net) == triangles
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func equalLabels(a, b map[core.Label]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

func equalDegrees(a, b map[int]map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for v, byTop := range a {
		if len(b[v]) != len(byTop) {
			return false
		}
		for name, d := range byTop {
			if b[v][name] != d {
				return false
			}
		}
	}
	return true
}
