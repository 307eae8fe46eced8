// SPDX-License-Identifier: MIT
// File: edge.go
// Role: Edge value type and its weight-free identity key.
// Determinism:
//   - Endpoints are canonicalized so that A() sorts before B().
// AI-HINT (file):
//   - Edge identity is the endpoint pair only; two edges with equal endpoints
//     and different weights are Equal and share a Key().

package core

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
)

// labelPrecision is the number of decimals kept in display labels.
const labelPrecision = 2

// EdgeKey is the canonical, comparable identity of an undirected edge:
// the endpoint identifiers ordered so that A < B. Weight is not part of it.
type EdgeKey[K cmp.Ordered] struct {
	A K
	B K
}

// NewEdgeKey returns the canonical key for the unordered pair {a, b}.
func NewEdgeKey[K cmp.Ordered](a, b K) EdgeKey[K] {
	if cmp.Less(b, a) {
		a, b = b, a
	}
	return EdgeKey[K]{A: a, B: b}
}

// Edge is an undirected connection between two distinct nodes whose weight is
// interpreted as a connection or transmission probability.
type Edge[K cmp.Ordered] struct {
	a, b   Node[K]
	weight float64
}

// NewEdge builds the edge {a, b} with weight w.
//
// Errors:
//   - ErrLoopNotAllowed if a == b.
//   - ErrBadWeight if w is NaN or outside [0,1].
//
// Complexity: O(1).
func NewEdge[K cmp.Ordered](a, b Node[K], w float64) (Edge[K], error) {
	if a == b {
		return Edge[K]{}, fmt.Errorf("NewEdge(%v,%v): %w", a, b, ErrLoopNotAllowed)
	}
	if !ValidWeight(w) {
		return Edge[K]{}, fmt.Errorf("NewEdge(%v,%v): w=%g: %w", a, b, w, ErrBadWeight)
	}
	if b.Less(a) {
		a, b = b, a
	}

	return Edge[K]{a: a, b: b, weight: w}, nil
}

// A returns the lower endpoint.
func (e Edge[K]) A() Node[K] { return e.a }

// B returns the higher endpoint.
func (e Edge[K]) B() Node[K] { return e.b }

// Weight returns the edge probability.
func (e Edge[K]) Weight() float64 { return e.weight }

// Key returns the weight-free identity of e.
func (e Edge[K]) Key() EdgeKey[K] { return EdgeKey[K]{A: e.a.id, B: e.b.id} }

// Equal reports whether e and other join the same endpoints, ignoring weight.
func (e Edge[K]) Equal(other Edge[K]) bool { return e.Key() == other.Key() }

// Other returns the endpoint opposite to n and whether n is an endpoint at all.
func (e Edge[K]) Other(n Node[K]) (Node[K], bool) {
	switch n {
	case e.a:
		return e.b, true
	case e.b:
		return e.a, true
	}
	return Node[K]{}, false
}

// Label renders the weight rounded to two decimals for display ("0.8", "0.33").
func (e Edge[K]) Label() string { return WeightLabel(e.weight) }

// String renders the edge as "Edge(Node(a), Node(b), w)".
func (e Edge[K]) String() string {
	return fmt.Sprintf("Edge(%v, %v, %v)", e.a, e.b, e.weight)
}

// ValidWeight reports whether w is a probability in the closed interval [0,1].
func ValidWeight(w float64) bool {
	return !math.IsNaN(w) && w >= 0 && w <= 1
}

// WeightLabel rounds w to two decimals and formats it with the shortest
// representation.
func WeightLabel(w float64) string {
	scale := math.Pow(10, labelPrecision)
	return strconv.FormatFloat(math.Round(w*scale)/scale, 'f', -1, 64)
}
