// SPDX-License-Identifier: MIT
// Package: epigraph/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible partitions in tests and scenarios.
//   • Share one WithRand stream across generators to reproduce a whole
//     multi-layer run from a single seed.

package builder

import (
	"math/rand"

	"go.uber.org/zap"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRemainderPolicy selects how an undersized final cluster is handled.
// Panics on an unknown policy.
func WithRemainderPolicy(p RemainderPolicy) BuilderOption {
	if p != RemainderKeep && p != RemainderDiscard {
		panic("builder: WithRemainderPolicy(unknown)")
	}
	return func(c *builderConfig) {
		c.remainder = p
	}
}

// WithAllowRemainder is the boolean form of WithRemainderPolicy:
// true keeps the final short cluster, false discards its edges.
func WithAllowRemainder(allow bool) BuilderOption {
	if allow {
		return WithRemainderPolicy(RemainderKeep)
	}
	return WithRemainderPolicy(RemainderDiscard)
}

// WithEdgeColor sets the display color of generated graphs.
// Empty values keep the default.
func WithEdgeColor(color string) BuilderOption {
	return func(c *builderConfig) {
		if color != "" {
			c.edgeColor = color
		}
	}
}

// WithLogger attaches a structured logger for construction diagnostics.
// Panics on nil.
func WithLogger(l *zap.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
