package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motifnet/bfs"
	"github.com/katalvlaran/motifnet/core"
)

// layered is a triangle {0,1,2} (3-clique) with a 2-clique tail 2-3-4,
// an isolated vertex 5 and a 2-clique pair 6-7.
func layered(t *testing.T) *core.Network {
	t.Helper()
	net := core.NewNetwork(8, []string{"2-clique", "3-clique"}, core.WithLoops())
	require.NoError(t, net.AddEdge(0, 1, "3-clique", 0))
	require.NoError(t, net.AddEdge(1, 2, "3-clique", 0))
	require.NoError(t, net.AddEdge(0, 2, "3-clique", 0))
	require.NoError(t, net.AddEdge(2, 3, "2-clique", 1))
	require.NoError(t, net.AddEdge(3, 4, "2-clique", 2))
	require.NoError(t, net.AddEdge(6, 7, "2-clique", 3))
	require.NoError(t, net.AddEdge(5, 5, "2-clique", 4))
	return net
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrNetworkNil)

	net := layered(t)
	_, err = bfs.BFS(net, 42)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(net, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
	_, err = bfs.BFS(net, 0, bfs.WithTopologies(""))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DepthsAndPaths(t *testing.T) {
	res, err := bfs.BFS(layered(t), 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
	require.Equal(t, []int{0, 1, 1, 2, 3, -1, -1, -1}, res.Depth)

	path, err := res.PathTo(4)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 3, 4}, path)

	_, err = res.PathTo(6)
	require.ErrorIs(t, err, bfs.ErrNoPath)
	require.False(t, res.Reached(5))
}

func TestBFS_TopologyFilterAndDepth(t *testing.T) {
	net := layered(t)

	res, err := bfs.BFS(net, 0, bfs.WithTopologies("3-clique"))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Order)

	res, err = bfs.BFS(net, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, res.Order)
}

func TestBFS_SelfLoopIgnored(t *testing.T) {
	res, err := bfs.BFS(layered(t), 5)
	require.NoError(t, err)
	require.Equal(t, []int{5}, res.Order)
}

func TestBFS_OnVisitAndCancel(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(layered(t), 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(layered(t), 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	comps, err := bfs.Components(layered(t))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 2, 3, 4}, {6, 7}, {5}}, comps)

	comps, err = bfs.Components(layered(t), bfs.WithTopologies("3-clique"))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 2}, {3}, {4}, {5}, {6}, {7}}, comps)

	_, err = bfs.Components(nil)
	require.ErrorIs(t, err, bfs.ErrNetworkNil)
}
