package gcm_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/motifnet/gcm"
	"github.com/katalvlaran/motifnet/jointdegree"
)

// TestGenerate_LargeNetworkEdgeCounts samples 100k vertices from a mixed
// edge/triangle joint-degree distribution and checks that the realised
// edge counts per topology stay within half a percent of the stub totals.
func TestGenerate_LargeNetworkEdgeCounts(t *testing.T) {
	if testing.Short() {
		t.Skip("large network")
	}
	const n = 100000

	dist := jointdegree.Distribution{
		"1,0": 0.2,
		"2,1": 0.5,
		"3,0": 0.1,
		"5,1": 0.2,
	}
	rng := rand.New(rand.NewSource(2024))
	jds, err := dist.Sample(n, rng)
	require.NoError(t, err)
	_, err = jointdegree.Handshake(jds, []int{2, 3}, rng)
	require.NoError(t, err)

	log, _ := quietLogger()
	g, err := gcm.NewGenerator(cliqueSpecs(), gcm.WithRand(rng), gcm.WithLogger(log))
	require.NoError(t, err)
	net, err := g.Generate(gcm.JDS(jds))
	require.NoError(t, err)
	require.Equal(t, n, net.VertexCount())

	var sum0, sum1 int
	for _, jd := range jds {
		sum0 += jd[0]
		sum1 += jd[1]
	}
	stats := net.Stats()
	want2 := float64(sum0) / 2
	want3 := float64(sum1)
	require.InDelta(t, want2, float64(stats.EdgesByTopology["2-clique"]), want2*0.005)
	require.InDelta(t, want3, float64(stats.EdgesByTopology["3-clique"]), want3*0.005)
}
