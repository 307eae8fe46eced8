// SPDX-License-Identifier: MIT
// Package: epigraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(p, w) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like background layer: include each unordered pair {i,j},
//     i<j, independently with probability p; included edges get weight w.
//
// Contract:
//   - 0 ≤ p ≤ 1 and 0 ≤ w ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(V²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i) over the sorted node set.

package builder

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/epigraph/core"
)

// RandomSparse returns a Constructor that samples a G(n, p) layer over the
// node set with edge weight w.
func RandomSparse[K cmp.Ordered](p, w float64) Constructor[K] {
	return func(g *core.Graph[K], nodes []core.Node[K], cfg builderConfig) error {
		if !validProbability(p) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if !validProbability(w) {
			return fmt.Errorf("%s: w=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, w, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		var (
			i, j int
			e    core.Edge[K]
			err  error
		)
		for i = 0; i < len(nodes); i++ {
			for j = i + 1; j < len(nodes); j++ {
				if p == 0.0 || (p < 1.0 && cfg.rng.Float64() >= p) {
					continue
				}
				if e, err = core.NewEdge(nodes[i], nodes[j], w); err != nil {
					return fmt.Errorf("%s: %w: %w", methodRandomSparse, err, ErrConstructFailed)
				}
				if err = g.AddEdge(e); err != nil {
					return fmt.Errorf("%s: %w: %w", methodRandomSparse, err, ErrConstructFailed)
				}
			}
		}
		return nil
	}
}
