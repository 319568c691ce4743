package config_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motifnet/config"
	"github.com/katalvlaran/motifnet/gcm"
)

func TestLoad_Run(t *testing.T) {
	c, err := config.Load("testdata/run.yaml")
	require.NoError(t, err)

	require.Equal(t, 200, c.Vertices)
	require.NotNil(t, c.Seed)
	require.Equal(t, uint64(11), *c.Seed)
	require.Equal(t, []string{"2-clique", "3-clique"}, c.TopologyNames())
	require.Equal(t, []int{2, 3}, c.Sizes())
	require.Equal(t, gcm.ArtifactPolicy{DropSelfLoops: true, Duplicates: gcm.SkipDuplicates}, c.ArtifactPolicy())

	specs, err := c.Specs()
	require.NoError(t, err)
	require.Len(t, specs, 2)
	require.Equal(t, "3-clique", specs[1].Topology)
	require.Equal(t, 3, specs[1].Builder.Size())

	d, err := c.Distribution()
	require.NoError(t, err)
	require.InDelta(t, 0.5, d["1,1"], 1e-12)
	require.InDelta(t, 0.25, d["2,0"], 1e-12)

	ts, err := c.Tensors()
	require.NoError(t, err)
	w, ok := ts.Lookup("3-clique", "1,0,0,1")
	require.True(t, ok)
	require.Equal(t, 0.05, w)

	l, _ := test.NewNullLogger()
	log := logrus.NewEntry(l)
	require.Len(t, c.GeneratorOptions(c.Rand(), log), 3)
	require.Len(t, c.RewireOptions(c.Rand(), log), 7)
}

func TestLoad_FromTarget(t *testing.T) {
	c, err := config.Load("testdata/from_target.yaml")
	require.NoError(t, err)
	require.True(t, c.JointDegree.FromTarget)

	d, err := c.Distribution()
	require.NoError(t, err)
	require.InDelta(t, 0.5, d["1,1"], 1e-9)
	require.InDelta(t, 0.25, d["2,0"], 1e-9)
	require.InDelta(t, 0.25, d["0,2"], 1e-9)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load("testdata/nope.yaml")
	require.Error(t, err)
}

func TestRead_Invalid(t *testing.T) {
	const base = `
vertices: 10
topologies:
  - {name: e, motif: clique, size: 2}
`
	tests := []struct {
		name    string
		in      string
		invalid bool
	}{
		{"unknown key", base + "colour: red\n", false},
		{"self loop action", base + "artifacts: {self_loops: maybe}\n", true},
		{"duplicate action", base + "artifacts: {duplicates: merge}\n", true},
		{"negative vertices", "vertices: -1\ntopologies: [{name: e, motif: clique, size: 2}]\n", true},
		{"no topologies", "vertices: 3\n", true},
		{"unknown motif", "topologies: [{name: e, motif: blob, size: 2}]\n", true},
		{"motif size", "topologies: [{name: e, motif: diamond, size: 3}]\n", true},
		{"duplicate topology", "topologies: [{name: e, motif: clique, size: 2}, {name: e, motif: cycle, size: 3}]\n", true},
		{"distribution width", base + "joint_degree: {distribution: {\"1,1\": 1}}\n", true},
		{"negative weight", base + "joint_degree: {distribution: {\"1\": -1}}\n", true},
		{"from target without target", base + "joint_degree: {from_target: true}\n", true},
		{"unknown reference", base + "joint_degree: {reference: f}\n", true},
		{"negative limit", base + "rewire: {stall_limit: -3}\n", true},
		{"target not normalised", base + "target: {e: {\"0,0\": 0.5}}\n", true},
		{"target topology", base + "target: {f: {\"0,0\": 1}}\n", true},
		{"target width", base + "target: {e: {\"0,0,0,0\": 1}}\n", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Read(strings.NewReader(tc.in))
			require.Error(t, err)
			if tc.invalid {
				require.ErrorIs(t, err, config.ErrInvalid)
			}
		})
	}
}

func TestWriteRead(t *testing.T) {
	c, err := config.Load("testdata/run.yaml")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))
	back, err := config.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, c, back)
}

func TestRand_Seeded(t *testing.T) {
	c, err := config.Read(strings.NewReader("seed: 5\ntopologies: [{name: e, motif: path, size: 2}]\n"))
	require.NoError(t, err)
	require.Equal(t, c.Rand().Uint64(), c.Rand().Uint64())
}
