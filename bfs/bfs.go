// SPDX-License-Identifier: MIT
// Package: motifnet/bfs
//
// bfs.go — single-source breadth-first search.
//
// Determinism: neighbours are expanded in ascending ID order (the order of
// core.Network.IncidentEdges), so Order is fixed for a fixed network.
//
// Complexity: O(V + E).

package bfs

import (
	"fmt"

	"github.com/katalvlaran/motifnet/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	net   *core.Network
	opts  Options
	queue []int
	res   *Result
}

// BFS runs breadth-first search on net from start.
// Returns ErrNetworkNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
func BFS(net *core.Network, start int, opts ...Option) (*Result, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if !net.HasVertex(start) {
		return nil, fmt.Errorf("BFS(%d): %w", start, ErrStartVertexNotFound)
	}

	n := net.VertexCount()
	w := &walker{
		net:   net,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  filled(n, -1),
			Parent: filled(n, -1),
		},
	}
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func filled(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return out
}

func (w *walker) enqueue(id, depth, parent int) {
	w.res.Depth[id] = depth
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[id]
		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			continue
		}
		if err := w.enqueueNeighbours(id, depth); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) enqueueNeighbours(id, depth int) error {
	incident, err := w.net.IncidentEdges(id)
	if err != nil {
		return fmt.Errorf("bfs: neighbours of %d: %w", id, err)
	}
	for _, e := range incident {
		if e.U == e.V || !w.opts.follows(e.Topology) {
			continue
		}
		nbr, _ := e.Other(id)
		if w.res.Depth[nbr] < 0 {
			w.enqueue(nbr, depth+1, id)
		}
	}

	return nil
}
