package gcm_test

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motifnet/core"
	"github.com/katalvlaran/motifnet/gcm"
	"github.com/katalvlaran/motifnet/motif"
)

// cliqueSpecs is the usual edge + triangle pair of topologies.
func cliqueSpecs() []gcm.MotifSpec {
	return []gcm.MotifSpec{
		{Size: 2, Builder: motif.Clique(2), Topology: "2-clique"},
		{Size: 3, Builder: motif.Clique(3), Topology: "3-clique"},
	}
}

// quietLogger discards output but keeps entries for inspection.
func quietLogger() (*logrus.Entry, *test.Hook) {
	l, hook := test.NewNullLogger()
	return logrus.NewEntry(l), hook
}

func TestNewGenerator_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name  string
		specs []gcm.MotifSpec
		cause error
	}{
		{"empty", nil, nil},
		{"nil builder", []gcm.MotifSpec{{Size: 2, Topology: "e"}}, motif.ErrNilBuilder},
		{"zero size", []gcm.MotifSpec{{Size: 0, Builder: motif.Clique(2), Topology: "e"}}, nil},
		{"size mismatch", []gcm.MotifSpec{{Size: 3, Builder: motif.Clique(2), Topology: "e"}}, motif.ErrVertexCount},
		{"empty name", []gcm.MotifSpec{{Size: 2, Builder: motif.Clique(2)}}, nil},
		{"duplicate name", []gcm.MotifSpec{
			{Size: 2, Builder: motif.Clique(2), Topology: "e"},
			{Size: 3, Builder: motif.Clique(3), Topology: "e"},
		}, nil},
		{"broken builder", []gcm.MotifSpec{{Size: 2, Builder: motif.Cycle(2), Topology: "c"}}, motif.ErrTooFewVertices},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gcm.NewGenerator(tc.specs)
			require.Nil(t, g)
			require.ErrorIs(t, err, gcm.ErrConfiguration)
			require.NotErrorIs(t, err, gcm.ErrInvariantViolated)

			var gerr *gcm.Error
			require.True(t, errors.As(err, &gerr))
			require.Equal(t, gcm.KindConfiguration, gerr.Kind)
			require.Equal(t, "NewGenerator", gerr.Op)
			if tc.cause != nil {
				require.ErrorIs(t, err, tc.cause)
			}
		})
	}
}

func TestGenerate_JDSErrors(t *testing.T) {
	log, _ := quietLogger()
	g, err := gcm.NewGenerator(cliqueSpecs(), gcm.WithSeed(1), gcm.WithLogger(log))
	require.NoError(t, err)

	_, err = g.Generate(gcm.JDS{{1, 0}, {1}})
	require.ErrorIs(t, err, gcm.ErrConfiguration)

	_, err = g.Generate(gcm.JDS{{1, 0}, {-1, 0}})
	require.ErrorIs(t, err, gcm.ErrConfiguration)
}

func TestGenerate_SingleTriangle(t *testing.T) {
	log, _ := quietLogger()
	g, err := gcm.NewGenerator(cliqueSpecs(), gcm.WithSeed(3), gcm.WithLogger(log), gcm.WithFirstMotifID(100))
	require.NoError(t, err)

	net, err := g.Generate(gcm.JDS{{0, 1}, {0, 1}, {0, 1}})
	require.NoError(t, err)
	require.Equal(t, []string{"2-clique", "3-clique"}, net.Topologies())

	edges := net.Edges()
	require.Len(t, edges, 3)
	for _, e := range edges {
		require.Equal(t, "3-clique", e.Topology)
		require.Equal(t, int64(100), e.MotifID)
	}
	for _, v := range net.Vertices() {
		require.Equal(t, []int{0, 1}, v.JointDegree)
	}
	require.Equal(t, int64(101), g.NextMotifID())

	report := g.LastReport()
	require.Equal(t, 1, report.Motifs["3-clique"])
	require.Equal(t, 0, report.Motifs["2-clique"])
	require.Equal(t, 3, report.Edges)
}

func TestGenerate_JointDegreesMatchJDS(t *testing.T) {
	log, _ := quietLogger()
	g, err := gcm.NewGenerator(cliqueSpecs(), gcm.WithSeed(11), gcm.WithLogger(log))
	require.NoError(t, err)

	// Stub totals: 2-clique 12 (divisible by 2), 3-clique 9 (divisible by 3).
	jds := gcm.JDS{{1, 0}, {2, 1}, {3, 2}, {1, 1}, {2, 2}, {3, 3}}
	net, err := g.Generate(jds)
	require.NoError(t, err)
	for v, want := range jds {
		got, err := net.JointDegree(v)
		require.NoError(t, err)
		require.Equal(t, want, got, "vertex %d", v)
	}
	report := g.LastReport()
	require.Equal(t, 6, report.Motifs["2-clique"])
	require.Equal(t, 3, report.Motifs["3-clique"])
	require.Zero(t, report.DiscardedStubs["2-clique"])

	labels := net.LabelCounts()
	for label, n := range labels {
		switch label.Topology {
		case "2-clique":
			require.Equal(t, 1, n)
		case "3-clique":
			require.LessOrEqual(t, n, 3)
		}
	}
}

func TestGenerate_SeedDeterminism(t *testing.T) {
	jds := gcm.JDS{{1, 1}, {2, 1}, {1, 2}, {2, 1}, {3, 1}, {1, 0}, {2, 3}}
	run := func() []core.Edge {
		log, _ := quietLogger()
		g, err := gcm.NewGenerator(cliqueSpecs(), gcm.WithSeed(99), gcm.WithLogger(log))
		require.NoError(t, err)
		net, err := g.Generate(jds)
		require.NoError(t, err)
		return net.Edges()
	}
	require.Equal(t, run(), run())
}

func TestGenerate_SelfLoopPolicy(t *testing.T) {
	specs := []gcm.MotifSpec{{Size: 2, Builder: motif.Clique(2), Topology: "2-clique"}}
	jds := gcm.JDS{{2}} // the only chunk is [0 0]

	log, _ := quietLogger()
	keep, err := gcm.NewGenerator(specs, gcm.WithSeed(1), gcm.WithLogger(log))
	require.NoError(t, err)
	net, err := keep.Generate(jds)
	require.NoError(t, err)
	require.True(t, net.Looped())
	require.Equal(t, 1, net.SelfLoopCount())
	require.Equal(t, 1, keep.LastReport().SelfLoopsKept)

	drop, err := gcm.NewGenerator(specs, gcm.WithSeed(1), gcm.WithLogger(log),
		gcm.WithArtifactPolicy(gcm.ArtifactPolicy{DropSelfLoops: true}))
	require.NoError(t, err)
	net, err = drop.Generate(jds)
	require.NoError(t, err)
	require.False(t, net.Looped())
	require.Zero(t, net.EdgeCount())
	require.Equal(t, 1, drop.LastReport().SelfLoopsDropped)

	jd, err := net.JointDegree(0)
	require.NoError(t, err)
	require.Equal(t, []int{2}, jd, "joint degree counts the dropped corner too")
}

func TestGenerate_DuplicatePolicy(t *testing.T) {
	// Two edge topologies over two vertices always propose 0-1 twice.
	specs := []gcm.MotifSpec{
		{Size: 2, Builder: motif.Clique(2), Topology: "a"},
		{Size: 2, Builder: motif.Clique(2), Topology: "b"},
	}
	jds := gcm.JDS{{1, 1}, {1, 1}}

	tests := []struct {
		policy    gcm.DuplicatePolicy
		topology  string
		motifID   int64
		relabeled int
		skipped   int
	}{
		{gcm.RelabelDuplicates, "b", 1, 1, 0},
		{gcm.SkipDuplicates, "a", 0, 0, 1},
	}
	for _, tc := range tests {
		t.Run(tc.policy.String(), func(t *testing.T) {
			log, _ := quietLogger()
			g, err := gcm.NewGenerator(specs, gcm.WithSeed(5), gcm.WithLogger(log),
				gcm.WithArtifactPolicy(gcm.ArtifactPolicy{Duplicates: tc.policy}))
			require.NoError(t, err)
			net, err := g.Generate(jds)
			require.NoError(t, err)

			e, err := net.Edge(0, 1)
			require.NoError(t, err)
			require.Equal(t, tc.topology, e.Topology)
			require.Equal(t, tc.motifID, e.MotifID)
			require.Equal(t, 1, net.EdgeCount())

			report := g.LastReport()
			require.Equal(t, tc.relabeled, report.DuplicatesRelabelled)
			require.Equal(t, tc.skipped, report.DuplicatesSkipped)
		})
	}
}

func TestGenerate_DiscardsShortChunk(t *testing.T) {
	log, hook := quietLogger()
	specs := []gcm.MotifSpec{{Size: 2, Builder: motif.Clique(2), Topology: "2-clique"}}
	g, err := gcm.NewGenerator(specs, gcm.WithSeed(2), gcm.WithLogger(log))
	require.NoError(t, err)

	net, err := g.Generate(gcm.JDS{{1}, {1}, {1}})
	require.NoError(t, err)
	require.Equal(t, 1, net.EdgeCount())
	require.Equal(t, 1, g.LastReport().DiscardedStubs["2-clique"])

	total := 0
	for _, v := range net.Vertices() {
		total += v.JointDegree[0]
	}
	require.Equal(t, 2, total)

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warned = true
			require.Equal(t, "2-clique", entry.Data["topology"])
		}
	}
	require.True(t, warned)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { gcm.WithRand(nil) })
	require.Panics(t, func() { gcm.WithLogger(nil) })
	require.Panics(t, func() { gcm.WithFirstMotifID(-1) })
	require.Panics(t, func() { gcm.WithArtifactPolicy(gcm.ArtifactPolicy{Duplicates: 7}) })
}
