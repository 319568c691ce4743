// SPDX-License-Identifier: MIT
// Package: motifnet/bfs
//
// types.go — options, sentinel errors and the traversal result.

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("bfs: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for an unreached vertex.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures a traversal. An invalid Option is recorded and
// surfaced as ErrOptionViolation when the traversal starts.
type Option func(*Options)

// Options holds traversal parameters and callbacks.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// the traversal aborts and propagates that error.
	OnVisit func(id, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// Topologies, if non-empty, restricts traversal to edges carrying one
	// of these topology names.
	Topologies map[string]bool

	err error
}

// DefaultOptions returns background context, no depth limit, every
// topology and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search below depth d; d == 0 means no limit and
// d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithTopologies restricts traversal to edges of the named topologies.
// An empty name is an ErrOptionViolation.
func WithTopologies(names ...string) Option {
	return func(o *Options) {
		if o.Topologies == nil {
			o.Topologies = make(map[string]bool, len(names))
		}
		for _, n := range names {
			if n == "" {
				o.err = fmt.Errorf("%w: empty topology name", ErrOptionViolation)
				return
			}
			o.Topologies[n] = true
		}
	}
}

func (o Options) follows(topology string) bool {
	return len(o.Topologies) == 0 || o.Topologies[topology]
}

// Result holds the outcome of one traversal. Depth and Parent are indexed
// by vertex ID; -1 marks an unreached vertex (Depth) or the root and
// unreached vertices (Parent).
type Result struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether id was visited.
func (r *Result) Reached(id int) bool {
	return id >= 0 && id < len(r.Depth) && r.Depth[id] >= 0
}

// PathTo reconstructs the path from the start vertex to dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("PathTo(%d): %w", dest, ErrNoPath)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur >= 0; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
