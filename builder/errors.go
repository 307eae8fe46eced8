// SPDX-License-Identifier: MIT
// Package: epigraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrInvalidProbability indicates that a probability or edge weight lies
// outside the closed interval [0,1] (or is NaN).
// Typical origins: NewPartitionGenerator(weight), Complete(w), RandomSparse(p, w).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilSizeSpace indicates that no cluster-size distribution was supplied.
var ErrNilSizeSpace = errors.New("builder: size space is nil")

// ErrInvalidClusterSize indicates a cluster-size distribution that can draw
// a size smaller than MinClusterSize.
var ErrInvalidClusterSize = errors.New("builder: cluster sizes must be positive integers")

// ErrConstructFailed indicates that a construction step could not complete
// without breaking graph invariants (nil constructor, failed edge insertion).
var ErrConstructFailed = errors.New("builder: construction failed")

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style:
//      return fmt.Errorf("%s: rng is required: %w", methodPartition, ErrNeedRandSource)
//
// 2) Priority when several validations fail:
//    • ErrNilSizeSpace / ErrInvalidClusterSize - distribution checks first.
//    • ErrInvalidProbability - then weights and probabilities.
//    • ErrNeedRandSource     - then RNG presence.
//    • ErrConstructFailed    - only for failures during construction.
