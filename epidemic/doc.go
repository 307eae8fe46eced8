// SPDX-License-Identifier: MIT
// Package epidemic implements a homogeneous-mixing pool model of disease
// spread, the baseline against which contact-graph scenarios are compared.
//
// Model (one Iterate step, t → t+1):
//
//  1. Record the number of infected nodes I(t).
//  2. For every infected node, attempt to infect each node of the pool once:
//     a susceptible node is infected with probability p·(1-immunity), where
//     p = R0/N. Each success restarts the node's timer at TTL.
//  3. Each node infected at the start of the step dies with the fatality
//     rate and leaves the pool.
//  4. Each node infected at the start of the step advances its timer; at
//     zero it recovers (and, with acquired immunity, becomes fully immune).
//
// The empirical reproduction number is cumulative infections divided by the
// number of infectious node-steps.
//
// Determinism:
//
//	All randomness comes from the *rand.Rand supplied via WithSeed/WithRand
//	and is consumed in a fixed order, so a seed reproduces a whole run.
//
// Errors:
//
//	ErrInvalidParameter – a Params field is out of range.
//	ErrNeedRandSource   – no RNG configured.
package epidemic
