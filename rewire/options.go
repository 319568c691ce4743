// SPDX-License-Identifier: MIT
// Package: motifnet/rewire
//
// options.go — functional options for the rewiring engine.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Defaults: search limit 25, convergence limit 10×|E|, sample interval 50,
//     stall limit 1,000,000, time-seeded RNG, standard logrus logger,
//     no observer, self-loops rejected.

package rewire

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

const (
	DefaultSearchLimit    = 25
	DefaultSampleInterval = 50
	DefaultStallLimit     = 1000000
	convergencePerEdge    = 10
)

// Option customises an Engine.
type Option func(*config)

type config struct {
	searchLimit    int
	convergence    int // <0: derive from the edge count
	sampleInterval int
	stallLimit     int
	filterLoops    bool
	rng            *rand.Rand
	log            *logrus.Entry
	observer       Observer
}

func newConfig(opts ...Option) config {
	cfg := config{
		searchLimit:    DefaultSearchLimit,
		convergence:    -1,
		sampleInterval: DefaultSampleInterval,
		stallLimit:     DefaultStallLimit,
		observer:       nopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if cfg.log == nil {
		cfg.log = logrus.NewEntry(logrus.StandardLogger())
	}
	cfg.log = cfg.log.WithField("component", "rewire")

	return cfg
}

// WithSearchLimit bounds the e1 draws per trial. Panics if n < 1.
func WithSearchLimit(n int) Option {
	if n < 1 {
		panic("rewire: WithSearchLimit(n<1)")
	}
	return func(c *config) { c.searchLimit = n }
}

// WithConvergenceLimit sets the number of accepted swaps per Rewire call.
// Panics if n < 0.
func WithConvergenceLimit(n int) Option {
	if n < 0 {
		panic("rewire: WithConvergenceLimit(n<0)")
	}
	return func(c *config) { c.convergence = n }
}

// WithSampleInterval sets how many iterations pass between acceptance-ratio
// samples. Panics if n < 1.
func WithSampleInterval(n int) Option {
	if n < 1 {
		panic("rewire: WithSampleInterval(n<1)")
	}
	return func(c *config) { c.sampleInterval = n }
}

// WithStallLimit aborts a run after n consecutive iterations without an
// accepted swap. Panics if n < 1.
func WithStallLimit(n int) Option {
	if n < 1 {
		panic("rewire: WithStallLimit(n<1)")
	}
	return func(c *config) { c.stallLimit = n }
}

// WithSelfLoopFilter removes self-loops from the network before the run.
// Without it a network holding self-loops is rejected by NewEngine.
func WithSelfLoopFilter() Option {
	return func(c *config) { c.filterLoops = true }
}

// WithSeed seeds a private RNG.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("rewire: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithLogger sets the log entry. Panics on nil.
func WithLogger(l *logrus.Entry) Option {
	if l == nil {
		panic("rewire: WithLogger(nil)")
	}
	return func(c *config) { c.log = l }
}

// WithObserver registers o for trial outcomes and samples. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("rewire: WithObserver(nil)")
	}
	return func(c *config) { c.observer = o }
}
