// SPDX-License-Identifier: MIT
// Package: epigraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(nodes, gopts, bopts, cons...). Creates g over
//     nodes, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same nodes/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose Clusters + RandomSparse in one BuildGraph call to overlay a
//     background layer on a partition; note that overlapping pairs are
//     REPLACED, not OR-combined. Use core.Aggregate to combine layers.

package builder

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/epigraph/core"
)

// Constructor applies a deterministic graph mutation over the node set using
// the resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor[K cmp.Ordered] func(g *core.Graph[K], nodes []core.Node[K], cfg builderConfig) error

// BuildGraph creates a new core.Graph over nodes with graph options gopts,
// resolves the builder configuration from bopts, and applies all constructors
// in order. nodes are passed to constructors sorted and deduplicated.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is against
//     builder sentinels (ErrInvalidProbability, ErrNeedRandSource, ...).
//
// Complexity: O(V log V) + Σ cost of each constructor.
func BuildGraph[K cmp.Ordered](nodes []core.Node[K], gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor[K]) (*core.Graph[K], error) {
	cfg := newBuilderConfig(bopts...)

	// Builder color first so that explicit graph options win.
	opts := make([]core.GraphOption, 0, len(gopts)+1)
	opts = append(opts, core.WithEdgeColor(cfg.edgeColor))
	opts = append(opts, gopts...)
	g := core.NewGraph(nodes, opts...)
	members := g.Nodes()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, members, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
		}
	}

	cfg.logger.Debug("graph built",
		zapMethod(methodBuildGraph),
		zapNodes(g.NodeCount()),
		zapEdges(g.EdgeCount()),
	)
	return g, nil
}

// validProbability reports whether p ∈ [MinProbability, MaxProbability].
func validProbability(p float64) bool {
	return p >= MinProbability && p <= MaxProbability
}
