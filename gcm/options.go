// SPDX-License-Identifier: MIT
// Package: motifnet/gcm
//
// options.go — functional options for the generator.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generate itself never panics.
//   • Determinism is explicit: seed with WithSeed or WithRand.
//   • Defaults: time-seeded RNG, standard logrus logger, KeepSelfLoops +
//     RelabelDuplicates, first motif id 0.

package gcm

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// DuplicatePolicy decides what happens when a motif proposes a pair that
// already carries an edge.
type DuplicatePolicy int

const (
	// RelabelDuplicates keeps one edge and gives it the later motif's labels.
	RelabelDuplicates DuplicatePolicy = iota
	// SkipDuplicates keeps the first motif's labels and drops the new pair.
	SkipDuplicates
)

func (p DuplicatePolicy) String() string {
	if p == SkipDuplicates {
		return "skip"
	}

	return "relabel"
}

// ArtifactPolicy states how stub-matching artifacts are treated.
type ArtifactPolicy struct {
	// DropSelfLoops discards loop pairs as motifs are placed. When false the
	// network is created with core.WithLoops and keeps them.
	DropSelfLoops bool
	// Duplicates chooses between relabelling and skipping repeated pairs.
	Duplicates DuplicatePolicy
}

// Option customises a Generator.
type Option func(*config)

type config struct {
	rng        *rand.Rand
	log        *logrus.Entry
	policy     ArtifactPolicy
	firstMotif int64
}

func newConfig(opts ...Option) config {
	cfg := config{
		policy: ArtifactPolicy{Duplicates: RelabelDuplicates},
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
	cfg.log = cfg.log.WithField("component", "gcm")

	return cfg
}

// WithSeed seeds a private RNG; identical seeds give identical networks.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the RNG used for shuffling. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gcm: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithLogger sets the log entry. Panics on nil.
func WithLogger(l *logrus.Entry) Option {
	if l == nil {
		panic("gcm: WithLogger(nil)")
	}
	return func(c *config) {
		c.log = l
	}
}

// WithArtifactPolicy sets the self-loop and duplicate policy.
// Panics on an unknown DuplicatePolicy.
func WithArtifactPolicy(p ArtifactPolicy) Option {
	if p.Duplicates != RelabelDuplicates && p.Duplicates != SkipDuplicates {
		panic("gcm: WithArtifactPolicy: unknown duplicate policy")
	}
	return func(c *config) {
		c.policy = p
	}
}

// WithFirstMotifID sets the first motif id handed out. Panics if id < 0.
func WithFirstMotifID(id int64) Option {
	if id < 0 {
		panic("gcm: WithFirstMotifID(id<0)")
	}
	return func(c *config) {
		c.firstMotif = id
	}
}
