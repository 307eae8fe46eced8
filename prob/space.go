// SPDX-License-Identifier: MIT
// File: space.go
// Role: Queries and sampling on Space.
// Determinism:
//   - Draw consumes exactly one rng.Float64() per call.
// AI-HINT (file):
//   - P never fails: absent keys have mass exactly 0.
//   - Draw never fails on a valid Space: rounding shortfall falls back to the
//     last outcome with positive mass.

package prob

import (
	"fmt"
	"math/rand"
)

// P returns the normalized probability of key, or exactly 0 if key is absent.
// Complexity: O(1).
func (s *Space[K]) P(key K) float64 {
	i, ok := s.index[key]
	if !ok {
		return 0
	}
	return s.probs[i]
}

// Draw samples one outcome by inverse-CDF: it draws u ~ U[0,1) and returns
// the first outcome (ascending key order) whose cumulative mass exceeds u.
//
// If floating-point rounding leaves the cumulative sum at or below u, the
// last outcome with positive mass is returned.
//
// Errors:
//   - ErrNeedRandSource if rng is nil.
//
// Complexity: O(n).
func (s *Space[K]) Draw(rng *rand.Rand) (K, error) {
	if rng == nil {
		var zero K
		return zero, fmt.Errorf("Draw: %w", ErrNeedRandSource)
	}

	u := rng.Float64()
	var cum float64
	for i, p := range s.probs {
		cum += p
		if u < cum {
			return s.keys[i], nil
		}
	}
	return s.lastSupported(), nil
}

// lastSupported returns the highest key with positive mass.
func (s *Space[K]) lastSupported() K {
	for i := len(s.probs) - 1; i > 0; i-- {
		if s.probs[i] > 0 {
			return s.keys[i]
		}
	}
	return s.keys[0]
}

// Keys returns a copy of the outcomes in ascending order.
func (s *Space[K]) Keys() []K {
	out := make([]K, len(s.keys))
	copy(out, s.keys)
	return out
}

// Support returns the outcomes with strictly positive mass, ascending.
func (s *Space[K]) Support() []K {
	out := make([]K, 0, len(s.keys))
	for i, k := range s.keys {
		if s.probs[i] > 0 {
			out = append(out, k)
		}
	}
	return out
}

// Len returns the number of outcomes, including zero-mass ones.
func (s *Space[K]) Len() int { return len(s.keys) }

// Probabilities returns a fresh outcome → probability map.
func (s *Space[K]) Probabilities() map[K]float64 {
	out := make(map[K]float64, len(s.keys))
	for i, k := range s.keys {
		out[k] = s.probs[i]
	}
	return out
}

// String renders the space as "Space{k1:p1 k2:p2 ...}".
func (s *Space[K]) String() string {
	buf := []byte("Space{")
	for i, k := range s.keys {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = fmt.Appendf(buf, "%v:%g", k, s.probs[i])
	}
	return string(append(buf, '}'))
}
