// SPDX-License-Identifier: MIT
// Package: motifnet/bfs

package bfs

import (
	"sort"

	"github.com/katalvlaran/motifnet/core"
)

// Components partitions net into connected components, largest first
// (ties by smallest member). Members are sorted. Isolated vertices form
// singleton components. WithMaxDepth and WithOnVisit are ignored.
func Components(net *core.Network, opts ...Option) ([][]int, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	o.MaxDepth = 0
	o.OnVisit = func(int, int) error { return nil }

	n := net.VertexCount()
	w := &walker{net: net, opts: o, res: &Result{Depth: filled(n, -1), Parent: filled(n, -1)}}
	var comps [][]int
	for v := 0; v < n; v++ {
		if w.res.Depth[v] >= 0 {
			continue
		}
		w.res.Order = w.res.Order[:0]
		w.enqueue(v, 0, -1)
		if err := w.loop(); err != nil {
			return nil, err
		}
		comp := append([]int(nil), w.res.Order...)
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	sort.SliceStable(comps, func(i, j int) bool { return len(comps[i]) > len(comps[j]) })

	return comps, nil
}
