// SPDX-License-Identifier: MIT
// Package: epigraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng        = nil                 (stochastic constructors reject it)
//   • remainder  = RemainderKeep       (final short cluster is connected)
//   • edgeColor  = core.DefaultEdgeColor
//   • logger     = zap.NewNop()

package builder

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/epigraph/core"
)

// RemainderPolicy decides what happens to the final cluster when fewer nodes
// remain than the drawn cluster size.
type RemainderPolicy int

const (
	// RemainderKeep connects the undersized final cluster like any other.
	RemainderKeep RemainderPolicy = iota
	// RemainderDiscard leaves the undersized final cluster without edges; its
	// nodes stay in the graph as isolated nodes.
	RemainderDiscard
)

// String returns "keep" or "discard".
func (p RemainderPolicy) String() string {
	switch p {
	case RemainderKeep:
		return "keep"
	case RemainderDiscard:
		return "discard"
	}
	return "unknown"
}

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Policy for the undersized final cluster of a partition.
	remainder RemainderPolicy
	// Display color for the edges of generated graphs.
	edgeColor string
	// Structured logger; never nil after newBuilderConfig.
	logger *zap.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,
		remainder: RemainderKeep,
		edgeColor: core.DefaultEdgeColor,
		logger:    zap.NewNop(),
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
