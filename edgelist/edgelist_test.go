package edgelist_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motifnet/core"
	"github.com/katalvlaran/motifnet/edgelist"
)

func sample(t *testing.T) *core.Network {
	t.Helper()
	net := core.NewNetwork(4, []string{"2-clique", "3-clique"}, core.WithLoops())
	require.NoError(t, net.AddEdge(0, 1, "3-clique", 5))
	require.NoError(t, net.AddEdge(1, 2, "3-clique", 5))
	require.NoError(t, net.AddEdge(0, 2, "3-clique", 5))
	require.NoError(t, net.AddEdge(3, 2, "2-clique", 6))
	require.NoError(t, net.AddEdge(3, 3, "2-clique", 7))
	for v, jd := range [][]int{{0, 1}, {0, 1}, {1, 1}, {3, 0}} {
		require.NoError(t, net.SetJointDegree(v, jd))
	}
	return net
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, edgelist.Write(&buf, sample(t)))
	require.Equal(t, strings.Join([]string{
		"topologies 2-clique 3-clique",
		"vertices 4",
		"loops true",
		"jd 0 0,1",
		"jd 1 0,1",
		"jd 2 1,1",
		"jd 3 3,0",
		"edge 0 1 3-clique 5",
		"edge 0 2 3-clique 5",
		"edge 1 2 3-clique 5",
		"edge 2 3 2-clique 6",
		"edge 3 3 2-clique 7",
		"",
	}, "\n"), buf.String())
}

func TestRoundTrip(t *testing.T) {
	net := sample(t)
	var buf bytes.Buffer
	require.NoError(t, edgelist.Write(&buf, net))

	back, err := edgelist.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, net.Topologies(), back.Topologies())
	require.Equal(t, net.Vertices(), back.Vertices())
	require.Equal(t, net.Edges(), back.Edges())
	require.True(t, back.Looped())
}

func TestRead_CommentsAndDefaults(t *testing.T) {
	in := `
# two vertices, one edge
topologies e
vertices 3

edge 0 1 e 42
`
	net, err := edgelist.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.False(t, net.Looped())
	require.Equal(t, 3, net.VertexCount())
	e, err := net.Edge(1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(42), e.MotifID)
	jd, err := net.JointDegree(2)
	require.NoError(t, err)
	require.Equal(t, []int{0}, jd)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"no header", "edge 0 1 e 1\n", edgelist.ErrHeader},
		{"repeated vertices", "vertices 2\nvertices 3\n", edgelist.ErrHeader},
		{"header after body", "topologies e\nvertices 2\nedge 0 1 e 1\nvertices 2\n", edgelist.ErrHeader},
		{"unknown record", "topologies e\nnode 1\n", edgelist.ErrSyntax},
		{"bad edge", "topologies e\nvertices 2\nedge 0 x e 1\n", edgelist.ErrSyntax},
		{"short jd", "topologies e\nvertices 2\njd 0\n", edgelist.ErrSyntax},
		{"bad loops", "loops maybe\n", edgelist.ErrSyntax},
		{"unknown topology", "topologies e\nvertices 2\nedge 0 1 f 1\n", core.ErrUnknownTopology},
		{"loop not allowed", "topologies e\nvertices 2\nedge 1 1 e 1\n", core.ErrLoopNotAllowed},
		{"duplicate", "topologies e\nvertices 2\nedge 0 1 e 1\nedge 1 0 e 2\n", core.ErrDuplicateEdge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := edgelist.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWrite_RejectsSpacedTopology(t *testing.T) {
	net := core.NewNetwork(1, []string{"two words"})
	require.ErrorIs(t, edgelist.Write(&bytes.Buffer{}, net), edgelist.ErrTopologyName)
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, edgelist.WriteDOT(&buf, sample(t), "sample"))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "strict graph sample {") || strings.HasPrefix(out, "graph sample {"), out)
	require.Contains(t, out, "3-clique")
	require.Contains(t, out, "motif=5")
	require.Contains(t, out, "motif=6")
	require.NotContains(t, out, "motif=7", "self-loops are not exported")
}
