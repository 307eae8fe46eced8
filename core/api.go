// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade: display settings and read-only snapshots.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.
// AI-HINT (file):
//   - Stats() is an O(V+E) snapshot; use it for diagnostics and CLI summaries.

package core

import "math"

// GraphStats is a read-only snapshot of a graph's size and weight profile.
type GraphStats struct {
	NodeCount     int // |V|
	EdgeCount     int // |E|
	IsolatedNodes int // nodes with no incident edge

	MinWeight  float64 // 0 when the graph has no edges
	MaxWeight  float64 // 0 when the graph has no edges
	MeanWeight float64 // 0 when the graph has no edges

	// MeanExpectedDegree is the average over nodes of the summed incident
	// probabilities (2·Σw / |V|); 0 for an empty node set.
	MeanExpectedDegree float64
}

// EdgeColor returns the display color applied to every edge.
// Complexity: O(1).
func (g *Graph[K]) EdgeColor() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeColor
}

// SetEdgeColor changes the display color independently of any weight.
// An empty color restores DefaultEdgeColor.
// Complexity: O(1).
func (g *Graph[K]) SetEdgeColor(color string) {
	if color == "" {
		color = DefaultEdgeColor
	}
	g.mu.Lock()
	g.edgeColor = color
	g.mu.Unlock()
}

// Stats produces a deterministic snapshot of counts and weight statistics.
//
// Complexity: Time O(V+E), Space O(1).
// Concurrency: single read lock for a consistent view.
func (g *Graph[K]) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
	}
	for id := range g.nodes {
		if len(g.adj[id]) == 0 {
			st.IsolatedNodes++
		}
	}
	if len(g.edges) == 0 {
		return st
	}

	var sum float64
	st.MinWeight = math.Inf(1)
	st.MaxWeight = math.Inf(-1)
	for _, e := range g.edges {
		sum += e.weight
		st.MinWeight = math.Min(st.MinWeight, e.weight)
		st.MaxWeight = math.Max(st.MaxWeight, e.weight)
	}
	st.MeanWeight = sum / float64(len(g.edges))
	st.MeanExpectedDegree = 2 * sum / float64(len(g.nodes))

	return st
}
