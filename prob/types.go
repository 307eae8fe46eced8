// SPDX-License-Identifier: MIT
// File: types.go
// Role: Space type, sentinel errors and constructors.

package prob

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
)

// Sentinel errors for probability spaces.
var (
	// ErrInvalidWeight indicates a weight that is negative, NaN or infinite.
	ErrInvalidWeight = errors.New("prob: invalid weight")

	// ErrNonPositiveMass indicates that the supplied weights sum to zero (or
	// that no weights were supplied at all).
	ErrNonPositiveMass = errors.New("prob: total weight must be > 0")

	// ErrNeedRandSource indicates Draw was called without a random source.
	ErrNeedRandSource = errors.New("prob: rng is required")
)

// Space is an immutable, normalized distribution over outcomes of type K.
//
// keys are sorted ascending and probs[i] is the mass of keys[i].
type Space[K cmp.Ordered] struct {
	keys  []K
	probs []float64
	index map[K]int
}

// New normalizes weights into a Space: P(k) = w(k) / Σw.
//
// Errors:
//   - ErrInvalidWeight if any weight is negative, NaN or ±Inf.
//   - ErrNonPositiveMass if Σw is not > 0.
//
// Complexity: O(n log n) for n outcomes.
func New[K cmp.Ordered](weights map[K]float64) (*Space[K], error) {
	var total float64
	for k, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("New: weight[%v]=%g: %w", k, w, ErrInvalidWeight)
		}
		total += w
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return nil, fmt.Errorf("New: total=%g: %w", total, ErrNonPositiveMass)
	}

	keys := slices.Sorted(maps.Keys(weights))
	s := &Space[K]{
		keys:  keys,
		probs: make([]float64, len(keys)),
		index: make(map[K]int, len(keys)),
	}
	for i, k := range keys {
		s.probs[i] = weights[k] / total
		s.index[k] = i
	}
	return s, nil
}

// Uniform returns a Space giving equal mass to every distinct key.
func Uniform[K cmp.Ordered](keys ...K) (*Space[K], error) {
	w := make(map[K]float64, len(keys))
	for _, k := range keys {
		w[k] = 1
	}
	return New(w)
}

// Point returns the degenerate Space that always draws k.
func Point[K cmp.Ordered](k K) *Space[K] {
	return &Space[K]{
		keys:  []K{k},
		probs: []float64{1},
		index: map[K]int{k: 0},
	}
}
