// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"github.com/katalvlaran/epigraph/core"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	WeightHome = 0.8
	WeightWork = 0.2
	WeightHalf = 0.5
)

// ints wraps ids into nodes.
func ints(ids ...int) []core.Node[int] {
	out := make([]core.Node[int], len(ids))
	for i, id := range ids {
		out[i] = core.NewNode(id)
	}
	return out
}

// mustEdge builds an edge or panics; fixtures only.
func mustEdge(a, b int, w float64) core.Edge[int] {
	e, err := core.NewEdge(core.NewNode(a), core.NewNode(b), w)
	if err != nil {
		panic(err)
	}
	return e
}
