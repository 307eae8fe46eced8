// SPDX-License-Identifier: MIT
// Package core_test verifies thread-safety of core.Graph under concurrent operations.

package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epigraph/core"
)

// TestConcurrentCliquesAndReads builds disjoint cliques from many goroutines
// while readers snapshot the graph.
func TestConcurrentCliquesAndReads(t *testing.T) {
	const (
		cliques = 50
		size    = 4
		readers = 20
	)
	nodes := make([]core.Node[int], cliques*size)
	for i := range nodes {
		nodes[i] = core.NewNode(i)
	}
	g := core.NewGraph(nodes)

	errs := make(chan error, cliques)
	var wg sync.WaitGroup
	wg.Add(cliques + readers)
	for c := 0; c < cliques; c++ {
		go func(c int) {
			defer wg.Done()
			errs <- g.AddCompleteSubgraph(nodes[c*size:(c+1)*size], WeightHalf)
		}(c)
	}
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			_ = g.Stats()
			_ = g.Export()
			_ = g.Clone()
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, cliques*size*(size-1)/2, g.EdgeCount())
	require.Zero(t, g.Stats().IsolatedNodes)
}

// TestExportIsOneSnapshot interleaves color changes with clique additions and
// checks that every export pairs a color with the edges present at that time.
func TestExportIsOneSnapshot(t *testing.T) {
	const (
		cliques = 40
		size    = 4
		perPart = size * (size - 1) / 2
		readers = 8
	)
	nodes := make([]core.Node[int], cliques*size)
	for i := range nodes {
		nodes[i] = core.NewNode(i)
	}
	g := core.NewGraph(nodes, core.WithEdgeColor("c-1"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for c := 0; c < cliques; c++ {
			// color c is published before clique c exists
			g.SetEdgeColor(fmt.Sprintf("c%d", c))
			_ = g.AddCompleteSubgraph(nodes[c*size:(c+1)*size], WeightHalf)
		}
	}()

	var wg sync.WaitGroup
	bad := make(chan string, readers)
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				net := g.Export()
				var c int
				if _, err := fmt.Sscanf(net.EdgeColor, "c%d", &c); err != nil {
					bad <- "unparsable color " + net.EdgeColor
					return
				}
				n := len(net.Edges)
				if n != c*perPart && n != (c+1)*perPart {
					bad <- fmt.Sprintf("color %s with %d edges", net.EdgeColor, n)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(bad)

	for msg := range bad {
		t.Fatal(msg)
	}
	require.Equal(t, fmt.Sprintf("c%d", cliques-1), g.EdgeColor())
}
