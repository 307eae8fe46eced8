// SPDX-License-Identifier: MIT
// Package: epigraph/builder
//
// impl_complete.go - implementation of Complete(w) constructor.
//
// Contract:
//   • 0 ≤ w ≤ 1 (else ErrInvalidProbability).
//   • Emits each unordered pair {i,j} of the node set exactly once.
//   • Deterministic: no randomness involved.
//
// Complexity:
//   • Time: O(V²) edges emission.

package builder

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/epigraph/core"
)

// Complete returns a Constructor that connects every pair of nodes with
// weight w (homogeneous mixing as a graph layer).
func Complete[K cmp.Ordered](w float64) Constructor[K] {
	return func(g *core.Graph[K], nodes []core.Node[K], cfg builderConfig) error {
		if !validProbability(w) {
			return fmt.Errorf("%s: w=%g not in [%.1f,%.1f]: %w",
				methodComplete, w, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if err := g.AddCompleteSubgraph(nodes, w); err != nil {
			return fmt.Errorf("%s: %w: %w", methodComplete, err, ErrConstructFailed)
		}
		return nil
	}
}
