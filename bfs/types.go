// SPDX-License-Identifier: MIT
// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[K comparable] func(*BFSOptions[K])

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions[K comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, before visiting.
	// Receives node ID and its depth from the start.
	OnEnqueue func(id K, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(id K, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id K, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MinWeight drops edges whose probability is below it.
	// The default 0 follows every stored edge.
	MinWeight float64

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor that passed MinWeight.
	FilterNeighbor func(curr, neighbor K) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - every edge followed (MinWeight == 0, no filtering)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions[K comparable]() BFSOptions[K] {
	return BFSOptions[K]{
		Ctx:            context.Background(),
		OnEnqueue:      func(K, int) {},
		OnDequeue:      func(K, int) {},
		OnVisit:        func(K, int) error { return nil },
		MaxDepth:       0,
		MinWeight:      0,
		FilterNeighbor: func(_, _ K) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *BFSOptions[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[K comparable](fn func(id K, depth int)) Option[K] {
	return func(o *BFSOptions[K]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[K comparable](fn func(id K, depth int)) Option[K] {
	return func(o *BFSOptions[K]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[K comparable](fn func(id K, depth int) error) Option[K] {
	return func(o *BFSOptions[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (exclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *BFSOptions[K]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithMinWeight follows only edges whose weight is at least w.
// w must lie in [0,1], otherwise ErrOptionViolation.
func WithMinWeight[K comparable](w float64) Option[K] {
	return func(o *BFSOptions[K]) {
		if math.IsNaN(w) || w < 0 || w > 1 {
			o.err = fmt.Errorf("%w: MinWeight must be in [0,1] (%g)", ErrOptionViolation, w)
			return
		}
		o.MinWeight = w
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[K comparable](fn func(curr, neighbor K) bool) Option[K] {
	return func(o *BFSOptions[K]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: map from node ID to its distance (in edges) from the start.
//   - Parent: map from node ID to its predecessor in the BFS tree.
type BFSResult[K comparable] struct {
	Start  K
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

// PathTo reconstructs the path from the start node to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult[K]) PathTo(dest K) ([]K, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []K{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
