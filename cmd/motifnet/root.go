// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute is the entry point of the CLI.
func Execute(ctx context.Context, version string) error {
	input := new(Input)
	return createRootCommand(ctx, input, version).Execute()
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "motifnet",
		Short:        "Generate motif-structured networks and rewire them towards a target correlation tensor.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if input.verbose {
				input.log().Logger.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&input.configPath, "config", "c", "motifnet.yaml", "path to the run configuration")

	rootCmd.AddCommand(
		newGenerateCommand(ctx, input),
		newRewireCommand(ctx, input),
		newRunCommand(ctx, input),
		newExtractCommand(ctx, input),
	)

	return rootCmd
}

func newGenerateCommand(ctx context.Context, input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Sample a joint degree sequence and build a network by stub matching",
		Args:  cobra.NoArgs,
		RunE:  runGenerate(ctx, input),
	}
	cmd.Flags().StringVarP(&input.outPath, "out", "o", "-", "edge list output, - for stdout")
	cmd.Flags().StringVar(&input.dotPath, "dot", "", "also write a Graphviz DOT file")
	cmd.Flags().StringVar(&input.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")

	return cmd
}

func newRewireCommand(ctx context.Context, input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewire",
		Short: "Rewire an edge list towards the configured target tensor",
		Args:  cobra.NoArgs,
		RunE:  runRewire(ctx, input),
	}
	cmd.Flags().StringVarP(&input.inPath, "in", "i", "-", "edge list input, - for stdin")
	cmd.Flags().StringVarP(&input.outPath, "out", "o", "-", "edge list output, - for stdout")
	cmd.Flags().StringVar(&input.dotPath, "dot", "", "also write a Graphviz DOT file")
	cmd.Flags().StringVar(&input.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")

	return cmd
}

func newRunCommand(ctx context.Context, input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a network and rewire it in one go",
		Args:  cobra.NoArgs,
		RunE:  runPipeline(ctx, input),
	}
	cmd.Flags().StringVarP(&input.outPath, "out", "o", "-", "edge list output, - for stdout")
	cmd.Flags().StringVar(&input.dotPath, "dot", "", "also write a Graphviz DOT file")
	cmd.Flags().StringVar(&input.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")

	return cmd
}

func newExtractCommand(ctx context.Context, input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Print the correlation tensors of an edge list as YAML",
		Args:  cobra.NoArgs,
		RunE:  runExtract(ctx, input),
	}
	cmd.Flags().StringVarP(&input.inPath, "in", "i", "-", "edge list input, - for stdin")

	return cmd
}
