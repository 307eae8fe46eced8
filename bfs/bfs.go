// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, weight thresholds and neighbor filtering.
package bfs

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/epigraph/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a node ID with its BFS depth.
type queueItem[K cmp.Ordered] struct {
	id    K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K cmp.Ordered] struct {
	graph   *core.Graph[K]
	opts    BFSOptions[K]
	ctx     context.Context
	queue   []queueItem[K]
	visited map[K]bool
	res     *BFSResult[K]
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS[K cmp.Ordered](g *core.Graph[K], startID K, opts ...Option[K]) (*BFSResult[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, startID)
	}

	n := g.NodeCount()
	w := &walker[K]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[K], 0, n),
		visited: make(map[K]bool, n),
		res: &BFSResult[K]{
			Start:  startID,
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}

	w.enqueue(startID, 0)
	w.opts.OnEnqueue(startID, 0)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and adds it to the queue.
func (w *walker[K]) enqueue(id K, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem[K]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[K]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[K]) dequeue() queueItem[K] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker[K]) visit(item queueItem[K]) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors walks the incident edges of item in ascending neighbor
// order, applies MinWeight, filtering and MaxDepth, and enqueues each unseen
// neighbor.
func (w *walker[K]) enqueueNeighbors(item queueItem[K]) error {
	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %w", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	self := core.NewNode(item.id)
	for _, e := range edges {
		if e.Weight() < w.opts.MinWeight {
			continue
		}
		other, _ := e.Other(self)
		nbr := other.ID()
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth)
		w.res.Parent[nbr] = item.id
		w.opts.OnEnqueue(nbr, nextDepth)
	}
	return nil
}
