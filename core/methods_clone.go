// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock on the source; the clone is a fresh, unshared instance.

package core

import "maps"

// CloneEmpty returns a new Graph with the same node set and edge color, but no edges.
// Complexity: O(V).
func (g *Graph[K]) CloneEmpty() *Graph[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return &Graph[K]{
		edgeColor: g.edgeColor,
		nodes:     maps.Clone(g.nodes),
		edges:     make(map[EdgeKey[K]]Edge[K]),
		adj:       make(map[K]map[K]struct{}, len(g.nodes)),
	}
}

// Clone returns a deep copy of the Graph: node set, edges, adjacency and color.
// Complexity: O(V + E).
func (g *Graph[K]) Clone() *Graph[K] {
	clone := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.edges {
		clone.putEdge(e)
	}
	return clone
}
