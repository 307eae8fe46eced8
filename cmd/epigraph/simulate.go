// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/epigraph/config"
	"github.com/katalvlaran/epigraph/epidemic"
)

func newSimulateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [scenario.yaml]",
		Short: "Run the homogeneous-mixing pool model",
		Long: `Run the pool model for a number of iterations, optionally over several
independent trials, and print infected counts, cumulative infections and
the empirical reproduction number.

Parameters come from the epidemic section of a scenario file; flags
override them.

Examples:
  epigraph simulate --n 100 --r0 2 --n0 3 --ttl 2 --fatality 0.01 --iterations 10
  epigraph simulate town.yaml --trials 20 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, args, a)
		},
	}
	f := cmd.Flags()
	f.Int("n", 100, "Number of nodes")
	f.Float64("r0", 2.0, "Average number of infections caused per infected node per step")
	f.Int("n0", 1, "Initial number of infected")
	f.Int("ttl", 2, "Steps before an infected node recovers")
	f.Float64("fatality", 0.0, "Fatality rate per step while infected")
	f.Int("iterations", 10, "Number of iterations to run")
	f.BoolP("acquired", "a", false, "Recovered nodes become fully immune")
	f.Float64("immunity-rate", 0.0, "Share of the population with initial immunity")
	f.Float64("immunity-scalar", 0.0, "Strength of initial immunity")
	f.IntP("trials", "t", 1, "Number of trials to run")
	f.Int64("seed", 1, "RNG seed")
	f.Bool("json", false, "Print the trial summary as JSON")
	return cmd
}

func runSimulate(cmd *cobra.Command, args []string, a *app) error {
	e, seed, err := simulationSettings(cmd, args)
	if err != nil {
		return err
	}
	trials := max(e.Trials, 1)

	summary, err := epidemic.RunTrials(cmd.Context(), e.Params(), e.Iterations, trials,
		epidemic.WithSeed(seed), epidemic.WithLogger(a.logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			RunID string `json:"run_id"`
			epidemic.TrialSummary
		}{a.runID, summary})
	}

	for i, r := range summary.Trials {
		fmt.Fprintf(out, "Trial %d\n%s\n\n", i, r)
	}
	fmt.Fprintf(out, "Average R: %v\n", summary.AverageR)
	fmt.Fprintf(out, "Average cumulative infected: %v\n", summary.AverageCumulativeInfected)
	return nil
}

// simulationSettings merges the scenario's epidemic section (if any) with
// explicitly set flags and validates the result.
func simulationSettings(cmd *cobra.Command, args []string) (config.Epidemic, int64, error) {
	f := cmd.Flags()
	var (
		e    config.Epidemic
		seed int64
	)
	e.N, _ = f.GetInt("n")
	e.R0, _ = f.GetFloat64("r0")
	e.N0, _ = f.GetInt("n0")
	e.TTL, _ = f.GetInt("ttl")
	e.FatalityRate, _ = f.GetFloat64("fatality")
	e.Iterations, _ = f.GetInt("iterations")
	e.AcquiredImmunity, _ = f.GetBool("acquired")
	e.ImmunityRate, _ = f.GetFloat64("immunity-rate")
	e.ImmunityScalar, _ = f.GetFloat64("immunity-scalar")
	e.Trials, _ = f.GetInt("trials")
	seed, _ = f.GetInt64("seed")

	if len(args) == 1 {
		s, err := config.Load(args[0])
		if err != nil {
			return e, 0, fmt.Errorf("failed to load scenario: %w", err)
		}
		if s.Epidemic == nil {
			return e, 0, fmt.Errorf("scenario %q has no epidemic section", s.Name)
		}
		flagged := e
		e = *s.Epidemic
		if !f.Changed("seed") {
			seed = s.Seed
		}
		overrideChanged(cmd, &e, flagged)
	}

	if err := e.Params().Validate(); err != nil {
		return e, 0, err
	}
	if e.Iterations <= 0 {
		return e, 0, fmt.Errorf("iterations=%d must be > 0: %w", e.Iterations, epidemic.ErrInvalidParameter)
	}
	return e, seed, nil
}

// overrideChanged copies the explicitly set flag values from flagged into e.
func overrideChanged(cmd *cobra.Command, e *config.Epidemic, flagged config.Epidemic) {
	f := cmd.Flags()
	if f.Changed("n") {
		e.N = flagged.N
	}
	if f.Changed("r0") {
		e.R0 = flagged.R0
	}
	if f.Changed("n0") {
		e.N0 = flagged.N0
	}
	if f.Changed("ttl") {
		e.TTL = flagged.TTL
	}
	if f.Changed("fatality") {
		e.FatalityRate = flagged.FatalityRate
	}
	if f.Changed("iterations") {
		e.Iterations = flagged.Iterations
	}
	if f.Changed("acquired") {
		e.AcquiredImmunity = flagged.AcquiredImmunity
	}
	if f.Changed("immunity-rate") {
		e.ImmunityRate = flagged.ImmunityRate
	}
	if f.Changed("immunity-scalar") {
		e.ImmunityScalar = flagged.ImmunityScalar
	}
	if f.Changed("trials") {
		e.Trials = flagged.Trials
	}
}
