// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/motifnet/config"
	"github.com/katalvlaran/motifnet/core"
	"github.com/katalvlaran/motifnet/correlation"
	"github.com/katalvlaran/motifnet/edgelist"
	"github.com/katalvlaran/motifnet/gcm"
	"github.com/katalvlaran/motifnet/jointdegree"
	"github.com/katalvlaran/motifnet/metrics"
	"github.com/katalvlaran/motifnet/rewire"
)

var errNoTarget = errors.New("configuration has no target tensor")

func runGenerate(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(input.configPath)
		if err != nil {
			return err
		}
		reg := metrics.NewRegistry()
		net, err := generate(c, c.Rand(), input.log(), reg)
		if err != nil {
			return err
		}

		return writeOutputs(cmd, input, net, reg)
	}
}

func runRewire(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(input.configPath)
		if err != nil {
			return err
		}
		net, err := readNetwork(cmd, input.inPath)
		if err != nil {
			return err
		}
		reg := metrics.NewRegistry()
		if err := rewireNetwork(ctx, c, net, c.Rand(), input.log(), reg); err != nil {
			return err
		}

		return writeOutputs(cmd, input, net, reg)
	}
}

func runPipeline(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(input.configPath)
		if err != nil {
			return err
		}
		rng, log := c.Rand(), input.log()
		reg := metrics.NewRegistry()
		net, err := generate(c, rng, log, reg)
		if err != nil {
			return err
		}
		if err := rewireNetwork(ctx, c, net, rng, log, reg); err != nil {
			return err
		}

		return writeOutputs(cmd, input, net, reg)
	}
}

func runExtract(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		net, err := readNetwork(cmd, input.inPath)
		if err != nil {
			return err
		}
		ts, err := correlation.Extract(net, net.Topologies())
		if err != nil {
			return err
		}

		out := struct {
			Target map[string]map[string]float64 `yaml:"target"`
		}{Target: make(map[string]map[string]float64, len(ts.Topologies))}
		for name, m := range ts.Matrices {
			entries := make(map[string]float64, len(m))
			for key, w := range m {
				entries[string(key)] = w
			}
			out.Target[name] = entries
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}

		return enc.Close()
	}
}

// generate samples a joint degree sequence from c and builds its network.
func generate(c *config.Config, rng *rand.Rand, log *logrus.Entry, reg *metrics.Registry) (*core.Network, error) {
	d, err := c.Distribution()
	if err != nil {
		return nil, err
	}
	jds, err := d.Sample(c.Vertices, rng)
	if err != nil {
		return nil, err
	}
	added, err := jointdegree.Handshake(jds, c.Sizes(), rng)
	if err != nil {
		return nil, err
	}
	log.WithField("stubs_added", added).Debug("handshake correction applied")

	specs, err := c.Specs()
	if err != nil {
		return nil, err
	}
	g, err := gcm.NewGenerator(specs, c.GeneratorOptions(rng, log)...)
	if err != nil {
		return nil, err
	}
	net, err := g.Generate(gcm.JDS(jds))
	if err != nil {
		return nil, err
	}
	reg.RecordReport(g.LastReport())
	if err := reg.RecordNetwork(net); err != nil {
		return nil, err
	}

	return net, nil
}

// rewireNetwork runs the chain on net towards the configured target.
func rewireNetwork(ctx context.Context, c *config.Config, net *core.Network, rng *rand.Rand, log *logrus.Entry, reg *metrics.Registry) error {
	target, err := c.Tensors()
	if err != nil {
		return err
	}
	if target == nil {
		return fmt.Errorf("rewire: %s: %w", c.TopologyNames(), errNoTarget)
	}

	eng, err := rewire.NewEngine(net, target, c.RewireOptions(rng, log, rewire.WithObserver(reg))...)
	if err != nil {
		return err
	}
	before, err := correlation.Extract(net, target.Topologies)
	if err != nil {
		return err
	}
	if _, err := eng.RewireContext(ctx); err != nil {
		return err
	}
	after, err := correlation.Extract(net, target.Topologies)
	if err != nil {
		return err
	}

	dev := correlation.Deviate(after, target)
	reg.RecordDeviation(dev)
	if err := reg.RecordNetwork(net); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"deviation_before": correlation.Deviate(before, target).Total,
		"deviation_after":  dev.Total,
	}).Info("target deviation")

	return nil
}

func readNetwork(cmd *cobra.Command, path string) (*core.Network, error) {
	if stdio(path) {
		return edgelist.Read(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return edgelist.Read(f)
}

func writeOutputs(cmd *cobra.Command, input *Input, net *core.Network, reg *metrics.Registry) error {
	if err := writeFile(cmd, input.outPath, func(w io.Writer) error { return edgelist.Write(w, net) }); err != nil {
		return err
	}
	if input.dotPath != "" {
		if err := writeFile(cmd, input.dotPath, func(w io.Writer) error { return edgelist.WriteDOT(w, net, "motifnet") }); err != nil {
			return err
		}
	}
	if input.metricsFile != "" {
		return reg.WriteTextfile(input.metricsFile)
	}

	return nil
}

func writeFile(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if stdio(path) {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
