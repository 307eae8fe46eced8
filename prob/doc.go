// SPDX-License-Identifier: MIT
// Package prob provides Space, a normalized discrete probability distribution
// over a finite, ordered outcome set.
//
// A Space is built from relative, non-negative weights:
//
//	s, err := prob.New(map[int]float64{1: 0.5, 2: 0.2, 3: 0.1, 4: 0.1, 5: 0.05, 6: 0.05})
//
// and supports point-mass lookup (P) and inverse-CDF sampling (Draw).
//
// Determinism:
//   - Outcomes are kept in ascending key order; Draw walks the cumulative
//     distribution in that order, so a seeded *rand.Rand reproduces draws
//     across runs and platforms.
//   - Space holds no RNG of its own. Callers pass the stream explicitly;
//     math/rand.Rand is NOT goroutine-safe, so do not share one across goroutines.
//
// Errors:
//
//	ErrInvalidWeight    – negative, NaN or ±Inf weight.
//	ErrNonPositiveMass  – total weight is not strictly positive.
//	ErrNeedRandSource   – Draw called with a nil *rand.Rand.
package prob
