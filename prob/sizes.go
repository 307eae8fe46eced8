// SPDX-License-Identifier: MIT
// File: sizes.go
// Role: Helpers for spaces whose outcomes are sizes (cluster sizes, counts).

package prob

// NonNegativeIntKeys reports whether every outcome of s is a non-negative integer.
func NonNegativeIntKeys(s *Space[int]) bool {
	if s == nil {
		return false
	}
	for _, k := range s.keys {
		if k < 0 {
			return false
		}
	}
	return true
}

// PositiveSupport reports whether every outcome that can actually be drawn
// (positive mass) is at least 1. Zero-mass outcomes are ignored.
func PositiveSupport(s *Space[int]) bool {
	if s == nil {
		return false
	}
	for i, k := range s.keys {
		if s.probs[i] > 0 && k < 1 {
			return false
		}
	}
	return true
}

// Mean returns the expected outcome Σ k·P(k).
func Mean(s *Space[int]) float64 {
	if s == nil {
		return 0
	}
	var m float64
	for i, k := range s.keys {
		m += float64(k) * s.probs[i]
	}
	return m
}
