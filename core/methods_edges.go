// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddCompleteSubgraph/HasEdge/Edge/Weight/
//       Edges/Weights/EdgeCount/Neighbors.
// Determinism:
//   - Edges() returns edges sorted by (A, B) asc.
//   - Neighbors() returns incident edges sorted by the opposite endpoint.
// Concurrency:
//   - Mutations under mu write lock; read queries under mu read lock.
// AI-HINT (file):
//   - Edges are keyed by endpoints only: adding {a,b} again REPLACES its weight.
//   - AddCompleteSubgraph validates everything before mutating (no partial cliques).

package core

import (
	"cmp"
	"fmt"
	"slices"
)

// AddEdge stores e in the graph, replacing the weight of an existing edge
// with the same endpoints.
//
// Errors:
//   - ErrLoopNotAllowed / ErrBadWeight for a malformed (zero-value) edge.
//   - ErrNodeNotFound if an endpoint is not a member of the node set.
//
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(e Edge[K]) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEdge(e); err != nil {
		return fmt.Errorf("AddEdge(%v): %w", e, err)
	}
	g.putEdge(e)

	return nil
}

// AddCompleteSubgraph connects every unordered pair of distinct nodes in
// nodes with an edge of weight w.
//
// Steps:
//  1. Validate w ∈ [0,1].
//  2. Validate every node is a member of the graph.
//  3. Deduplicate and sort the subset.
//  4. Emit each pair {i,j}, i<j, replacing any stored weight for that pair.
//
// Behavior highlights:
//   - Subsets of size 0 or 1 add nothing.
//   - Fail-fast: on any error the edge set is untouched.
//
// Complexity: O(m log m + m²) for m = len(nodes).
// Concurrency: holds the write lock for the whole call.
func (g *Graph[K]) AddCompleteSubgraph(nodes []Node[K], w float64) error {
	if !ValidWeight(w) {
		return fmt.Errorf("AddCompleteSubgraph: w=%g: %w", w, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, n := range nodes {
		if _, ok := g.nodes[n.id]; !ok {
			return fmt.Errorf("AddCompleteSubgraph: %v: %w", n, ErrNodeNotFound)
		}
	}

	members := slices.Clone(nodes)
	slices.SortFunc(members, Node[K].Compare)
	members = slices.Compact(members)

	var i, j int
	for i = 0; i < len(members); i++ {
		for j = i + 1; j < len(members); j++ {
			// members is strictly ascending, so (i, j) is already canonical.
			g.putEdge(Edge[K]{a: members[i], b: members[j], weight: w})
		}
	}

	return nil
}

// HasEdge reports whether the pair {a, b} is connected, in either order.
// Complexity: O(1).
func (g *Graph[K]) HasEdge(a, b K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edges[NewEdgeKey(a, b)]
	return ok
}

// Edge returns the edge joining a and b, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph[K]) Edge(a, b K) (Edge[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[NewEdgeKey(a, b)]
	if !ok {
		return Edge[K]{}, fmt.Errorf("Edge(%v,%v): %w", a, b, ErrEdgeNotFound)
	}
	return e, nil
}

// Weight returns the probability stored on {a, b}; absent pairs report 0.
// Complexity: O(1).
func (g *Graph[K]) Weight(a, b K) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges[NewEdgeKey(a, b)].weight
}

// Edges returns a copy of all edges sorted by (A, B) asc.
// Complexity: O(E log E).
func (g *Graph[K]) Edges() []Edge[K] {
	g.mu.RLock()
	out := make([]Edge[K], 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.mu.RUnlock()

	slices.SortFunc(out, compareEdges[K])
	return out
}

// Weights returns a fresh map from edge key to weight.
// Complexity: O(E).
func (g *Graph[K]) Weights() map[EdgeKey[K]]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[EdgeKey[K]]float64, len(g.edges))
	for k, e := range g.edges {
		out[k] = e.weight
	}
	return out
}

// EdgeCount returns the number of distinct edges.
// Complexity: O(1).
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns the edges incident to id, sorted by the opposite endpoint.
// Returns ErrNodeNotFound if id is not a member.
// Complexity: O(d log d).
func (g *Graph[K]) Neighbors(id K) ([]Edge[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("Neighbors(%v): %w", id, ErrNodeNotFound)
	}
	nbrs := make([]K, 0, len(g.adj[id]))
	for v := range g.adj[id] {
		nbrs = append(nbrs, v)
	}
	slices.Sort(nbrs)

	out := make([]Edge[K], len(nbrs))
	for i, v := range nbrs {
		out[i] = g.edges[NewEdgeKey(id, v)]
	}
	return out, nil
}

// NeighborIDs returns the sorted identifiers adjacent to id.
// Complexity: O(d log d).
func (g *Graph[K]) NeighborIDs(id K) ([]K, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("NeighborIDs(%v): %w", id, ErrNodeNotFound)
	}
	out := make([]K, 0, len(g.adj[id]))
	for v := range g.adj[id] {
		out = append(out, v)
	}
	slices.Sort(out)
	return out, nil
}

// checkEdge validates e against the node set. Caller holds mu (read or write).
func (g *Graph[K]) checkEdge(e Edge[K]) error {
	if e.a == e.b {
		return ErrLoopNotAllowed
	}
	if !ValidWeight(e.weight) {
		return ErrBadWeight
	}
	if _, ok := g.nodes[e.a.id]; !ok {
		return fmt.Errorf("%v: %w", e.a, ErrNodeNotFound)
	}
	if _, ok := g.nodes[e.b.id]; !ok {
		return fmt.Errorf("%v: %w", e.b, ErrNodeNotFound)
	}
	return nil
}

// putEdge inserts or replaces a validated, canonical edge. Caller holds mu.
func (g *Graph[K]) putEdge(e Edge[K]) {
	g.edges[e.Key()] = e
	ensureAdjacency(g, e.a.id, e.b.id)
	ensureAdjacency(g, e.b.id, e.a.id)
}

// ensureAdjacency records v as adjacent to u.
func ensureAdjacency[K cmp.Ordered](g *Graph[K], u, v K) {
	if g.adj[u] == nil {
		g.adj[u] = make(map[K]struct{})
	}
	g.adj[u][v] = struct{}{}
}

// compareEdges orders edges by their canonical endpoints.
func compareEdges[K cmp.Ordered](x, y Edge[K]) int {
	if c := x.a.Compare(y.a); c != 0 {
		return c
	}
	return x.b.Compare(y.b)
}
