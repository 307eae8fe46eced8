// SPDX-License-Identifier: MIT
// File: aggregate.go
// Role: Probabilistic-OR composition of graphs over one node set.
// Math:
//   - Each side's weight is an independent activation probability, so the
//     combined weight is P(at least one activates) = 1 - (1-wl)(1-wr).
//   - An edge missing on one side contributes weight 0 for that side.
// AI-HINT (file):
//   - Aggregate never mutates its inputs; it returns a new Graph.
//   - The operation is commutative and associative up to floating point, so
//     AggregateAll may fold layers in any order.

package core

import (
	"cmp"
	"fmt"
)

const methodAggregate = "Aggregate"

// Aggregate combines left and right into a new graph whose edge weights are
// the probabilistic union of the two layers.
//
// Errors:
//   - ErrNilGraph if either argument is nil.
//   - ErrNodeSetMismatch if the node sets are not identical.
//
// The result takes its edge color from left.
// Complexity: O(V + E_left + E_right).
func Aggregate[K cmp.Ordered](left, right *Graph[K]) (*Graph[K], error) {
	if left == nil || right == nil {
		return nil, fmt.Errorf("%s: %w", methodAggregate, ErrNilGraph)
	}
	if !left.sameNodeSet(right) {
		return nil, fmt.Errorf("%s: %w", methodAggregate, ErrNodeSetMismatch)
	}

	// Snapshots are independent copies, so no lock is held while combining.
	weights := left.Weights()
	for k, wr := range right.Weights() {
		if wl, ok := weights[k]; ok {
			weights[k] = OrProbability(wl, wr)
		} else {
			weights[k] = wr
		}
	}

	out := left.CloneEmpty()
	for k, w := range weights {
		out.putEdge(Edge[K]{a: Node[K]{id: k.A}, b: Node[K]{id: k.B}, weight: w})
	}
	return out, nil
}

// AggregateAll folds Aggregate over graphs left to right.
// A single graph yields a clone of it; an empty call yields ErrNilGraph.
// Complexity: O(k·(V+E)) for k graphs.
func AggregateAll[K cmp.Ordered](graphs ...*Graph[K]) (*Graph[K], error) {
	if len(graphs) == 0 || graphs[0] == nil {
		return nil, fmt.Errorf("AggregateAll: %w", ErrNilGraph)
	}
	acc := graphs[0].Clone()
	var err error
	for i, g := range graphs[1:] {
		if acc, err = Aggregate(acc, g); err != nil {
			return nil, fmt.Errorf("AggregateAll: layer %d: %w", i+1, err)
		}
	}
	return acc, nil
}

// OrProbability returns 1 - (1-p)(1-q), the probability that at least one
// of two independent events with probabilities p and q occurs.
func OrProbability(p, q float64) float64 {
	return 1 - (1-p)*(1-q)
}
