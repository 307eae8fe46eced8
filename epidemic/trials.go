// SPDX-License-Identifier: MIT
// File: trials.go
// Role: repeated independent runs of one scenario and their averages.

package epidemic

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// TrialSummary aggregates several runs of the same scenario.
type TrialSummary struct {
	Trials                    []Results `json:"trials"`
	AverageR                  float64   `json:"average_r"`
	AverageCumulativeInfected float64   `json:"average_cumulative_infected"`
}

// RunTrials runs trials independent pools of params for iterations steps
// each. All pools share one RNG stream, so a seed reproduces the whole batch.
func RunTrials(ctx context.Context, params Params, iterations, trials int, opts ...Option) (TrialSummary, error) {
	if trials <= 0 {
		return TrialSummary{}, fmt.Errorf("RunTrials: trials=%d must be > 0: %w", trials, ErrInvalidParameter)
	}
	cfg := poolConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		return TrialSummary{}, fmt.Errorf("RunTrials: %w", ErrNeedRandSource)
	}

	out := TrialSummary{Trials: make([]Results, 0, trials)}
	var sumR, sumCum float64
	for i := 0; i < trials; i++ {
		pool, err := NewPool(params, withConfig(cfg), WithLogger(cfg.logger.With(zap.Int("trial", i))))
		if err != nil {
			return TrialSummary{}, fmt.Errorf("RunTrials: trial %d: %w", i, err)
		}
		if _, err = pool.Iterate(ctx, iterations); err != nil {
			return TrialSummary{}, fmt.Errorf("RunTrials: trial %d: %w", i, err)
		}
		res := pool.Results()
		out.Trials = append(out.Trials, res)
		sumR += res.R
		sumCum += float64(res.CumulativeInfected)
	}
	out.AverageR = sumR / float64(trials)
	out.AverageCumulativeInfected = sumCum / float64(trials)
	return out, nil
}

// withConfig reuses an already resolved configuration (shared RNG).
func withConfig(c poolConfig) Option {
	return func(dst *poolConfig) { *dst = c }
}
