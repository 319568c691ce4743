// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Network: hop
// distances, parent links and visit order from one start vertex, plus
// connected components of the whole network.
//
// Edges can be restricted to a subset of topologies with WithTopologies,
// which answers questions such as "how far does the triangle layer alone
// reach". Self-loops never contribute a neighbour.
//
// Example:
//
//	res, _ := bfs.BFS(net, 0, bfs.WithMaxDepth(2))
//	path, _ := res.PathTo(7)
//
//	comps, _ := bfs.Components(net)
//	giant := len(comps[0])
package bfs
