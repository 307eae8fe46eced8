// SPDX-License-Identifier: MIT
// Package core defines the central Node, Edge, and Graph types of a weighted
// contact graph, and provides thread-safe primitives for building, querying,
// cloning, and aggregating such graphs.
//
// This file declares Node, EdgeKey, Graph, GraphOption, sentinel errors, and
// the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound     - an operation referenced a node outside the node set.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrBadWeight        - weight is NaN or outside [0,1].
//	ErrLoopNotAllowed   - an edge was requested between a node and itself.
//	ErrNilGraph         - a nil *Graph was passed where a graph is required.
//	ErrNodeSetMismatch  - aggregation was attempted over different node sets.
package core

import (
	"cmp"
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node that is not a member of the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight that is NaN or lies outside the closed interval [0,1].
	ErrBadWeight = errors.New("core: weight must be a probability in [0,1]")

	// ErrLoopNotAllowed indicates a self-loop was attempted; contact edges join distinct nodes.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNilGraph indicates a nil *Graph was supplied.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNodeSetMismatch indicates two graphs do not share an identical node set.
	ErrNodeSetMismatch = errors.New("core: node sets differ")
)

// DefaultEdgeColor is the display color applied to every edge of a new Graph.
const DefaultEdgeColor = "white"

// Node is an immutable identity token for one member of the modeled population.
//
// Two nodes are equal iff their identifiers are equal, so Node values may be
// compared with == and used as map keys. Ordering follows the identifier.
type Node[K cmp.Ordered] struct {
	id K
}

// NewNode wraps id into a Node.
func NewNode[K cmp.Ordered](id K) Node[K] {
	return Node[K]{id: id}
}

// ID returns the node identifier.
func (n Node[K]) ID() K { return n.id }

// Compare returns -1, 0 or +1 depending on whether n sorts before, equal to,
// or after other.
func (n Node[K]) Compare(other Node[K]) int { return cmp.Compare(n.id, other.id) }

// Less reports whether n sorts strictly before other.
func (n Node[K]) Less(other Node[K]) bool { return cmp.Less(n.id, other.id) }

// String renders the node as "Node(<id>)".
func (n Node[K]) String() string { return fmt.Sprintf("Node(%v)", n.id) }

// GraphOption configures a Graph before creation.
type GraphOption func(o *graphOptions)

// graphOptions holds construction-time settings shared by all Graph[K].
type graphOptions struct {
	edgeColor string
}

// WithEdgeColor sets the display color applied uniformly to all edges.
// An empty color keeps DefaultEdgeColor.
func WithEdgeColor(color string) GraphOption {
	return func(o *graphOptions) {
		if color != "" {
			o.edgeColor = color
		}
	}
}

// Graph is an undirected, weighted contact graph over a fixed node set.
//
// The node set is fixed at construction and anchors the graph identity for
// Aggregate. Edges grow through AddEdge/AddCompleteSubgraph and are keyed by
// their endpoint pair only, so re-adding a pair replaces its weight.
// mu guards nodes, edges and adjacency.
type Graph[K cmp.Ordered] struct {
	mu sync.RWMutex

	edgeColor string // display color for every edge

	nodes map[K]struct{}         // node ID set
	edges map[EdgeKey[K]]Edge[K] // canonical pair → edge
	adj   map[K]map[K]struct{}   // adj[u][v] mirrors adj[v][u]
}

// NewGraph creates a Graph over nodes with an empty edge set.
// Duplicate nodes collapse into one member.
// Complexity: O(V).
func NewGraph[K cmp.Ordered](nodes []Node[K], opts ...GraphOption) *Graph[K] {
	o := graphOptions{edgeColor: DefaultEdgeColor}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graph[K]{
		edgeColor: o.edgeColor,
		nodes:     make(map[K]struct{}, len(nodes)),
		edges:     make(map[EdgeKey[K]]Edge[K]),
		adj:       make(map[K]map[K]struct{}, len(nodes)),
	}
	for _, n := range nodes {
		g.nodes[n.id] = struct{}{}
	}

	return g
}

// NewGraphWithEdges creates a Graph over nodes seeded with edges.
// Every edge endpoint must belong to nodes, otherwise ErrNodeNotFound is
// returned and no graph is built. Later edges with the same endpoints
// replace earlier ones.
// Complexity: O(V + E).
func NewGraphWithEdges[K cmp.Ordered](nodes []Node[K], edges []Edge[K], opts ...GraphOption) (*Graph[K], error) {
	g := NewGraph(nodes, opts...)
	for _, e := range edges {
		if err := g.checkEdge(e); err != nil {
			return nil, fmt.Errorf("NewGraphWithEdges: %v: %w", e, err)
		}
	}
	for _, e := range edges {
		g.putEdge(e)
	}

	return g, nil
}
