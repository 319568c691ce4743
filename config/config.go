// SPDX-License-Identifier: MIT
// Package: motifnet/config
//
// config.go — YAML schema, loading and validation.
//
// Contract:
//   • Unknown keys are rejected.
//   • Read validates; a *Config returned without error is internally
//     consistent (names, sizes, target key widths).

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/motifnet/correlation"
	"github.com/katalvlaran/motifnet/motif"
)

// ErrInvalid marks a configuration that parses but cannot be run.
var ErrInvalid = errors.New("config: invalid")

// Config is one run description.
type Config struct {
	Vertices    int                           `yaml:"vertices"`
	Seed        *uint64                       `yaml:"seed,omitempty"`
	Topologies  []Topology                    `yaml:"topologies"`
	JointDegree JointDegree                   `yaml:"joint_degree,omitempty"`
	Artifacts   Artifacts                     `yaml:"artifacts,omitempty"`
	Rewire      Rewire                        `yaml:"rewire,omitempty"`
	Target      map[string]map[string]float64 `yaml:"target,omitempty"`
}

// Topology names one motif shape and its size.
type Topology struct {
	Name  string `yaml:"name"`
	Motif string `yaml:"motif"`
	Size  int    `yaml:"size"`
}

// JointDegree chooses where the joint degree distribution comes from:
// an explicit Distribution, or inversion of the target's excess marginals
// when FromTarget is set.
type JointDegree struct {
	Distribution map[string]float64 `yaml:"distribution,omitempty"`
	FromTarget   bool               `yaml:"from_target,omitempty"`

	// Reference is the topology whose estimate fixes the scale when
	// inverting; it defaults to the first topology.
	Reference string `yaml:"reference,omitempty"`
}

// Artifacts is the stub-matching artifact policy.
type Artifacts struct {
	SelfLoops  SelfLoopAction  `yaml:"self_loops,omitempty"`
	Duplicates DuplicateAction `yaml:"duplicates,omitempty"`
}

// Rewire holds engine limits; zero selects the engine default.
type Rewire struct {
	SearchLimit     int  `yaml:"search_limit,omitempty"`
	Convergence     int  `yaml:"convergence,omitempty"`
	SampleInterval  int  `yaml:"sample_interval,omitempty"`
	StallLimit      int  `yaml:"stall_limit,omitempty"`
	FilterSelfLoops bool `yaml:"filter_self_loops,omitempty"`
}

// SelfLoopAction is "keep" or "drop"; empty means keep.
type SelfLoopAction string

const (
	KeepSelfLoops SelfLoopAction = "keep"
	DropSelfLoops SelfLoopAction = "drop"
)

// UnmarshalYAML accepts keep/drop in any case.
func (a *SelfLoopAction) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch v := SelfLoopAction(strings.ToLower(strings.TrimSpace(s))); v {
	case "", KeepSelfLoops, DropSelfLoops:
		*a = v
	default:
		return fmt.Errorf("line %d: self_loops must be one of %v, got %q: %w",
			value.Line, []SelfLoopAction{KeepSelfLoops, DropSelfLoops}, s, ErrInvalid)
	}

	return nil
}

// DuplicateAction is "relabel" or "skip"; empty means relabel.
type DuplicateAction string

const (
	RelabelDuplicates DuplicateAction = "relabel"
	SkipDuplicates    DuplicateAction = "skip"
)

// UnmarshalYAML accepts relabel/skip in any case.
func (a *DuplicateAction) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch v := DuplicateAction(strings.ToLower(strings.TrimSpace(s))); v {
	case "", RelabelDuplicates, SkipDuplicates:
		*a = v
	default:
		return fmt.Errorf("line %d: duplicates must be one of %v, got %q: %w",
			value.Line, []DuplicateAction{RelabelDuplicates, SkipDuplicates}, s, ErrInvalid)
	}

	return nil
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return c, nil
}

// Read decodes and validates a configuration.
func Read(in io.Reader) (*Config, error) {
	c := new(Config)
	dec := yaml.NewDecoder(in)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Write encodes c as YAML.
func (c *Config) Write(out io.Writer) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return enc.Close()
}

// Validate checks everything that does not need a random source.
func (c *Config) Validate() error {
	if c.Vertices < 0 {
		return fmt.Errorf("Validate: vertices=%d: %w", c.Vertices, ErrInvalid)
	}
	if len(c.Topologies) == 0 {
		return fmt.Errorf("Validate: no topologies: %w", ErrInvalid)
	}
	seen := make(map[string]bool, len(c.Topologies))
	for i, t := range c.Topologies {
		if t.Name == "" || strings.ContainsAny(t.Name, " \t\r\n") {
			return fmt.Errorf("Validate: topologies[%d]: bad name %q: %w", i, t.Name, ErrInvalid)
		}
		if seen[t.Name] {
			return fmt.Errorf("Validate: topologies[%d]: duplicate name %q: %w", i, t.Name, ErrInvalid)
		}
		seen[t.Name] = true
		if _, err := motif.Lookup(t.Motif, t.Size); err != nil {
			return fmt.Errorf("Validate: topologies[%d] (%s): %v: %w", i, t.Name, err, ErrInvalid)
		}
	}

	jd := c.JointDegree
	switch {
	case jd.FromTarget && len(jd.Distribution) > 0:
		return fmt.Errorf("Validate: joint_degree: distribution and from_target are exclusive: %w", ErrInvalid)
	case jd.FromTarget && c.Target == nil:
		return fmt.Errorf("Validate: joint_degree.from_target needs a target: %w", ErrInvalid)
	case jd.Reference != "" && !seen[jd.Reference]:
		return fmt.Errorf("Validate: joint_degree.reference %q is not a topology: %w", jd.Reference, ErrInvalid)
	}
	for key, w := range jd.Distribution {
		v, err := correlation.ParseDegreeVector(key)
		if err != nil || len(v) != len(c.Topologies) {
			return fmt.Errorf("Validate: joint_degree.distribution key %q: want %d components: %w",
				key, len(c.Topologies), ErrInvalid)
		}
		if w < 0 {
			return fmt.Errorf("Validate: joint_degree.distribution[%q]=%g: %w", key, w, ErrInvalid)
		}
	}

	r := c.Rewire
	if r.SearchLimit < 0 || r.Convergence < 0 || r.SampleInterval < 0 || r.StallLimit < 0 {
		return fmt.Errorf("Validate: rewire limits must be non-negative: %w", ErrInvalid)
	}

	if c.Target != nil {
		if _, err := c.Tensors(); err != nil {
			return fmt.Errorf("Validate: %v: %w", err, ErrInvalid)
		}
	}

	return nil
}
