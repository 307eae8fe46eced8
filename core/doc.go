// SPDX-License-Identifier: MIT
// Package core provides a thread-safe, in-memory weighted contact graph with
// a minimal, composable API surface.
//
// The Graph G = (V,E) has these properties:
//
//   - V is fixed at construction and is the identity anchor for aggregation.
//   - Edges are undirected, join two distinct nodes, and carry a weight in
//     [0,1] read as a connection/transmission probability.
//   - Edge identity is the endpoint pair only: Edge(a,b,w) and Edge(b,a,w')
//     share one EdgeKey, so adding a pair again replaces its weight.
//   - Identifiers are any cmp.Ordered type (int, string, ...); Node[K] is a
//     plain value type compared with ==.
//
// Why use core.Graph?
//
//   - Deterministic iteration: Nodes(), Edges(), Neighbors() return sorted results.
//   - Copy isolation: every accessor returns fresh slices/maps.
//   - Layering: Aggregate combines independent layers (households, workplaces)
//     with probabilistic OR, 1 - (1-wl)(1-wr).
//
// Core Methods:
//
//	// Construction
//	NewGraph(nodes, opts...)                    // O(V)
//	NewGraphWithEdges(nodes, edges, opts...)    // O(V+E)
//
//	// Edge lifecycle
//	AddEdge(e Edge[K]) error                    // O(1)
//	AddCompleteSubgraph(nodes, w) error         // O(m²)
//	HasEdge(a, b K) bool                        // O(1)
//	Weight(a, b K) float64                      // O(1), 0 when absent
//
//	// Query
//	Nodes() / NodeIDs() / Edges() / Weights()   // copies, sorted
//	Neighbors(id) / NeighborIDs(id)             // O(d log d)
//	Degree(id) / ExpectedDegree(id)
//	Stats() GraphStats                          // O(V+E)
//
//	// Layers & export
//	Aggregate(left, right) (*Graph, error)      // O(V+E)
//	AggregateAll(graphs...) (*Graph, error)
//	Export() Network[K]                         // renderer contract
//	Clone() / CloneEmpty()
//
// Errors:
//
//	ErrNodeNotFound    – node outside the node set
//	ErrEdgeNotFound    – missing edge
//	ErrBadWeight       – weight NaN or outside [0,1]
//	ErrLoopNotAllowed  – edge between a node and itself
//	ErrNilGraph        – nil graph argument
//	ErrNodeSetMismatch – Aggregate over different node sets
package core
