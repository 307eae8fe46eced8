// SPDX-License-Identifier: MIT
// File: components.go
// Role: Connected components of a contact graph and their size histogram.
// Determinism:
//   - Components are ordered by their smallest member; members ascend.
// AI-HINT (file):
//   - On a partition layer the components are exactly the clusters, so
//     SizeHistogram recovers the empirical cluster-size distribution.

package bfs

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/epigraph/core"
)

// Components returns the connected components of g. Options (MinWeight,
// FilterNeighbor, Ctx) apply to every traversal; MaxDepth and hooks are
// honored as well, so a depth limit yields depth-bounded neighborhoods.
func Components[K cmp.Ordered](g *core.Graph[K], opts ...Option[K]) ([][]K, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[K]bool, g.NodeCount())
	var out [][]K
	for _, id := range g.NodeIDs() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id, opts...)
		if err != nil {
			return nil, fmt.Errorf("bfs: Components from %v: %w", id, err)
		}
		comp := slices.Clone(res.Order)
		slices.Sort(comp)
		for _, v := range comp {
			seen[v] = true
		}
		out = append(out, comp)
	}
	return out, nil
}

// SizeHistogram counts connected components by size.
func SizeHistogram[K cmp.Ordered](g *core.Graph[K], opts ...Option[K]) (map[int]int, error) {
	comps, err := Components(g, opts...)
	if err != nil {
		return nil, err
	}
	hist := make(map[int]int)
	for _, c := range comps {
		hist[len(c)]++
	}
	return hist, nil
}
