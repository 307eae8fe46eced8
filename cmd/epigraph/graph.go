// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/epigraph/bfs"
	"github.com/katalvlaran/epigraph/config"
	"github.com/katalvlaran/epigraph/core"
	"github.com/katalvlaran/epigraph/render"
)

func newGraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph [scenario.yaml]",
		Short: "Build, aggregate and render a layered contact graph",
		Long: `Build every layer of a scenario over one population, aggregate the layers
with probabilistic OR, and render the result.

Without a scenario file the reference town is used: 100 people in
households (weight 0.8) and workplaces (weight 0.2).

Examples:
  epigraph graph
  epigraph graph town.yaml --format dot --output town.dot
  epigraph graph --nodes 500 --seed 7 --stats --output -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, args, a)
		},
	}
	cmd.Flags().Int("nodes", 0, "Population size (overrides the scenario)")
	cmd.Flags().Int64("seed", 0, "RNG seed (overrides the scenario)")
	cmd.Flags().String("format", "", "Output format: html, dot, mermaid, json (default: from --output extension)")
	cmd.Flags().String("output", "", "Output file, - for stdout (default: scenario output path)")
	cmd.Flags().String("title", "", "Graph title")
	cmd.Flags().Bool("stats", false, "Print layer and component statistics to stderr")
	return cmd
}

func runGraph(cmd *cobra.Command, args []string, a *app) error {
	s, err := loadScenario(args)
	if err != nil {
		return err
	}
	if err = applyGraphFlags(cmd, s); err != nil {
		return err
	}

	g, layers, err := buildScenario(s, a.logger)
	if err != nil {
		return err
	}

	format, err := outputFormat(s.Output)
	if err != nil {
		return err
	}
	title := s.Output.Title
	if title == "" {
		title = s.Name
	}
	opts := []render.Option{render.WithTitle(title), render.WithRunID(a.runID)}

	if s.Output.Path == "-" {
		if err = render.Write(cmd.OutOrStdout(), format, g.Export(), opts...); err != nil {
			return err
		}
	} else {
		if err = writeFile(s.Output.Path, func(w io.Writer) error {
			return render.Write(w, format, g.Export(), opts...)
		}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Graph written to %s\n", s.Output.Path)
	}
	a.logger.Info("graph rendered",
		zap.String("format", string(format)),
		zap.String("path", s.Output.Path),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	if stats, _ := cmd.Flags().GetBool("stats"); stats {
		return printStats(cmd.ErrOrStderr(), g, layers)
	}
	return nil
}

func loadScenario(args []string) (*config.Scenario, error) {
	if len(args) == 0 {
		s := config.Default()
		return &s, nil
	}
	s, err := config.Load(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to load scenario: %w", err)
	}
	return s, nil
}

// applyGraphFlags lets explicitly set flags override the scenario.
func applyGraphFlags(cmd *cobra.Command, s *config.Scenario) error {
	f := cmd.Flags()
	if f.Changed("nodes") {
		s.Nodes, _ = f.GetInt("nodes")
	}
	if f.Changed("seed") {
		s.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("format") {
		s.Output.Format, _ = f.GetString("format")
	}
	if f.Changed("output") {
		s.Output.Path, _ = f.GetString("output")
	}
	if f.Changed("title") {
		s.Output.Title, _ = f.GetString("title")
	}
	if s.Output.Path == "" {
		s.Output.Path = config.Default().Output.Path
	}
	return s.Validate()
}

// outputFormat resolves the explicit format, else the path extension,
// else HTML.
func outputFormat(o config.Output) (render.Format, error) {
	if o.Format != "" {
		return render.ParseFormat(o.Format)
	}
	if ext := filepath.Ext(o.Path); ext != "" && o.Path != "-" {
		return render.ParseFormat(ext)
	}
	return render.FormatHTML, nil
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()
	return fn(f)
}

func printStats(w io.Writer, g *core.Graph[int], layers []layerResult) error {
	for _, l := range layers {
		if err := printGraphStats(w, l.Name, l.Graph); err != nil {
			return err
		}
	}
	return printGraphStats(w, "aggregate", g)
}

func printGraphStats(w io.Writer, name string, g *core.Graph[int]) error {
	st := g.Stats()
	hist, err := bfs.SizeHistogram(g)
	if err != nil {
		return fmt.Errorf("%s: components: %w", name, err)
	}
	fmt.Fprintf(w, "%s: nodes=%d edges=%d isolated=%d weight[min=%.2f mean=%.2f max=%.2f] expected_degree=%.3f\n",
		name, st.NodeCount, st.EdgeCount, st.IsolatedNodes,
		st.MinWeight, st.MeanWeight, st.MaxWeight, st.MeanExpectedDegree)
	fmt.Fprintf(w, "  components by size:")
	for _, size := range slices.Sorted(maps.Keys(hist)) {
		fmt.Fprintf(w, " %d×%d", hist[size], size)
	}
	fmt.Fprintln(w)
	return nil
}
