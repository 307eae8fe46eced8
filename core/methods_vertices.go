// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Node set queries: Nodes/NodeIDs/HasNode/NodeCount/Degree/ExpectedDegree.
// Determinism:
//   - Nodes() and NodeIDs() return results sorted by identifier asc.
// Concurrency:
//   - Read lock on mu; the node set never changes after construction.

package core

import (
	"fmt"
	"maps"
	"slices"
)

// Nodes returns a sorted copy of the node set.
// Complexity: O(V log V).
func (g *Graph[K]) Nodes() []Node[K] {
	ids := g.NodeIDs()
	out := make([]Node[K], len(ids))
	for i, id := range ids {
		out[i] = Node[K]{id: id}
	}
	return out
}

// NodeIDs returns the sorted node identifiers.
// Complexity: O(V log V).
func (g *Graph[K]) NodeIDs() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Sorted(maps.Keys(g.nodes))
}

// HasNode reports whether id belongs to the node set.
// Complexity: O(1).
func (g *Graph[K]) HasNode(id K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]
	return ok
}

// NodeCount returns the size of the node set.
// Complexity: O(1).
func (g *Graph[K]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Degree returns the number of edges incident to id.
// Complexity: O(1).
func (g *Graph[K]) Degree(id K) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return 0, fmt.Errorf("Degree(%v): %w", id, ErrNodeNotFound)
	}
	return len(g.adj[id]), nil
}

// ExpectedDegree returns the sum of incident edge probabilities of id, i.e.
// the expected number of contacts that activate for that node.
// Complexity: O(d).
func (g *Graph[K]) ExpectedDegree(id K) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return 0, fmt.Errorf("ExpectedDegree(%v): %w", id, ErrNodeNotFound)
	}
	var sum float64
	for v := range g.adj[id] {
		sum += g.edges[NewEdgeKey(id, v)].weight
	}
	return sum, nil
}

// sameNodeSet reports whether g and other have identical node sets.
// The two snapshots are taken one after another so that both read locks are
// never held at once.
func (g *Graph[K]) sameNodeSet(other *Graph[K]) bool {
	g.mu.RLock()
	left := maps.Clone(g.nodes)
	g.mu.RUnlock()

	other.mu.RLock()
	defer other.mu.RUnlock()

	return maps.Equal(left, other.nodes)
}
