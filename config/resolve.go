// SPDX-License-Identifier: MIT
// Package: motifnet/config
//
// resolve.go — conversion of a Config into package inputs and options.

package config

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/motifnet/correlation"
	"github.com/katalvlaran/motifnet/gcm"
	"github.com/katalvlaran/motifnet/jointdegree"
	"github.com/katalvlaran/motifnet/motif"
	"github.com/katalvlaran/motifnet/rewire"
)

// TargetTolerance bounds the normalisation and symmetry error accepted in a
// configured target.
const TargetTolerance = 1e-6

// TopologyNames returns the topology names in file order.
func (c *Config) TopologyNames() []string {
	out := make([]string, len(c.Topologies))
	for i, t := range c.Topologies {
		out[i] = t.Name
	}

	return out
}

// Sizes returns the motif sizes in file order.
func (c *Config) Sizes() []int {
	out := make([]int, len(c.Topologies))
	for i, t := range c.Topologies {
		out[i] = t.Size
	}

	return out
}

// Specs resolves every topology into a generator spec.
func (c *Config) Specs() ([]gcm.MotifSpec, error) {
	specs := make([]gcm.MotifSpec, len(c.Topologies))
	for i, t := range c.Topologies {
		b, err := motif.Lookup(t.Motif, t.Size)
		if err != nil {
			return nil, fmt.Errorf("Specs: %s: %w", t.Name, err)
		}
		specs[i] = gcm.MotifSpec{Size: t.Size, Builder: b, Topology: t.Name}
	}

	return specs, nil
}

// Tensors returns the configured target, or nil when there is none.
func (c *Config) Tensors() (*correlation.Tensors, error) {
	if c.Target == nil {
		return nil, nil
	}
	matrices := make(map[string]correlation.Matrix, len(c.Target))
	for name, entries := range c.Target {
		m := make(correlation.Matrix, len(entries))
		for key, w := range entries {
			m[correlation.PairKey(key)] = w
		}
		matrices[name] = m
	}
	ts, err := correlation.NewTensors(c.TopologyNames(), matrices)
	if err != nil {
		return nil, fmt.Errorf("Tensors: %w", err)
	}
	if w := ts.Width(); w != 0 && w != len(c.Topologies) {
		return nil, fmt.Errorf("Tensors: target vectors have %d components, want %d: %w",
			w, len(c.Topologies), correlation.ErrMalformedKey)
	}
	if err := ts.Validate(TargetTolerance); err != nil {
		return nil, fmt.Errorf("Tensors: %w", err)
	}

	return ts, nil
}

// Distribution returns the joint degree distribution, inverting the
// target's excess marginals when from_target is set.
func (c *Config) Distribution() (jointdegree.Distribution, error) {
	if !c.JointDegree.FromTarget {
		d := make(jointdegree.Distribution, len(c.JointDegree.Distribution))
		for k, w := range c.JointDegree.Distribution {
			d[k] = w
		}
		return d.Normalise()
	}

	ts, err := c.Tensors()
	if err != nil {
		return nil, fmt.Errorf("Distribution: %w", err)
	}
	ref := c.JointDegree.Reference
	if ref == "" {
		ref = c.Topologies[0].Name
	}
	d, err := jointdegree.FromExcess(ts.ExcessDistributions(), c.TopologyNames(), ref)
	if err != nil {
		return nil, fmt.Errorf("Distribution: %w", err)
	}

	return d, nil
}

// Rand returns an RNG seeded from the file, or from the clock when the file
// has no seed.
func (c *Config) Rand() *rand.Rand {
	if c.Seed != nil {
		return rand.New(rand.NewSource(*c.Seed))
	}

	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}

// ArtifactPolicy converts the artifacts section.
func (c *Config) ArtifactPolicy() gcm.ArtifactPolicy {
	p := gcm.ArtifactPolicy{
		DropSelfLoops: c.Artifacts.SelfLoops == DropSelfLoops,
		Duplicates:    gcm.RelabelDuplicates,
	}
	if c.Artifacts.Duplicates == SkipDuplicates {
		p.Duplicates = gcm.SkipDuplicates
	}

	return p
}

// GeneratorOptions returns the gcm options this file selects.
func (c *Config) GeneratorOptions(rng *rand.Rand, log *logrus.Entry) []gcm.Option {
	return []gcm.Option{
		gcm.WithRand(rng),
		gcm.WithLogger(log),
		gcm.WithArtifactPolicy(c.ArtifactPolicy()),
	}
}

// RewireOptions returns the rewire options this file selects; extra
// options are appended last.
func (c *Config) RewireOptions(rng *rand.Rand, log *logrus.Entry, extra ...rewire.Option) []rewire.Option {
	opts := []rewire.Option{rewire.WithRand(rng), rewire.WithLogger(log)}
	r := c.Rewire
	if r.SearchLimit > 0 {
		opts = append(opts, rewire.WithSearchLimit(r.SearchLimit))
	}
	if r.Convergence > 0 {
		opts = append(opts, rewire.WithConvergenceLimit(r.Convergence))
	}
	if r.SampleInterval > 0 {
		opts = append(opts, rewire.WithSampleInterval(r.SampleInterval))
	}
	if r.StallLimit > 0 {
		opts = append(opts, rewire.WithStallLimit(r.StallLimit))
	}
	if r.FilterSelfLoops {
		opts = append(opts, rewire.WithSelfLoopFilter())
	}

	return append(opts, extra...)
}
