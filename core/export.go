// SPDX-License-Identifier: MIT
// File: export.go
// Role: Node/edge export contract consumed by renderers (HTML, DOT, JSON).
// Determinism:
//   - Nodes sorted by identifier; edges sorted by (A, B).

package core

import (
	"cmp"
	"maps"
	"slices"
)

// Network is a renderer-neutral snapshot of a graph.
type Network[K cmp.Ordered] struct {
	Nodes     []K              `json:"nodes"`
	Edges     []NetworkEdge[K] `json:"edges"`
	EdgeColor string           `json:"edge_color"`
}

// NetworkEdge is one exported edge with its display attributes.
type NetworkEdge[K cmp.Ordered] struct {
	A      K       `json:"a"`
	B      K       `json:"b"`
	Weight float64 `json:"weight"`
	Label  string  `json:"label"`
	Color  string  `json:"color"`
}

// Export snapshots the graph into a Network under a single read lock, so the
// color, node list and edge list always describe the same state. The
// returned value shares no memory with the graph.
// Complexity: O(V log V + E log E).
func (g *Graph[K]) Export() Network[K] {
	g.mu.RLock()
	color := g.edgeColor
	ids := slices.Collect(maps.Keys(g.nodes))
	edges := slices.Collect(maps.Values(g.edges))
	g.mu.RUnlock()

	slices.Sort(ids)
	slices.SortFunc(edges, compareEdges[K])

	out := Network[K]{
		Nodes:     ids,
		Edges:     make([]NetworkEdge[K], len(edges)),
		EdgeColor: color,
	}
	for i, e := range edges {
		out.Edges[i] = NetworkEdge[K]{
			A:      e.a.id,
			B:      e.b.id,
			Weight: e.weight,
			Label:  e.Label(),
			Color:  color,
		}
	}
	return out
}
