// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version   = "0.1.0"
	commit    = "dev"
	buildTime = "unknown"
)

// app carries per-invocation state shared by subcommands.
type app struct {
	logger *zap.Logger
	runID  string
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "epigraph",
		Short: "Layered contact graphs and epidemic pool simulations",
		Long: `epigraph partitions a population into randomly sized clusters
(households, workplaces, ...), aggregates the layers into one weighted
contact graph with probabilistic OR, and renders it. It also runs the
homogeneous-mixing pool model.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			asJSON, _ := cmd.Flags().GetBool("log-json")
			logger, err := newLogger(level, asJSON)
			if err != nil {
				return err
			}
			a.runID = uuid.NewString()
			a.logger = logger.With(zap.String("run_id", a.runID))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit JSON logs (production encoder)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGraphCmd(a))
	rootCmd.AddCommand(newSimulateCmd(a))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "epigraph v%s (%s) built %s\n", version, commit, buildTime)
		},
	}
}

// newLogger builds a console (development) or JSON (production) logger
// writing to stderr at the given level.
func newLogger(level string, asJSON bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	if asJSON {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
