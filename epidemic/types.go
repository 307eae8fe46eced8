// SPDX-License-Identifier: MIT
// File: types.go
// Role: Params, sentinel errors, functional options for the pool model.

package epidemic

import (
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"
)

var (
	// ErrInvalidParameter indicates a model parameter outside its domain.
	ErrInvalidParameter = errors.New("epidemic: invalid parameter")

	// ErrNeedRandSource indicates that no *rand.Rand was configured.
	ErrNeedRandSource = errors.New("epidemic: rng is required")
)

// Params describes one pool scenario.
type Params struct {
	N                int     // population size, > 0
	R0               float64 // expected infections per infectious step, > 0
	N0               int     // initially infected, 0 < N0 ≤ N
	TTL              int     // steps an infection lasts, > 0
	FatalityRate     float64 // per-step death probability while infected, [0,1]
	AcquiredImmunity bool    // recovered nodes become fully immune
	ImmunityRate     float64 // share of the population starting immune, [0,1]
	ImmunityScalar   float64 // strength of that initial immunity, [0,1]
}

// Validate checks every field and reports the first violation.
func (p Params) Validate() error {
	switch {
	case p.N <= 0:
		return fmt.Errorf("N=%d must be > 0: %w", p.N, ErrInvalidParameter)
	case !(p.R0 > 0):
		return fmt.Errorf("R0=%g must be > 0: %w", p.R0, ErrInvalidParameter)
	case p.N0 <= 0 || p.N0 > p.N:
		return fmt.Errorf("N0=%d must be in (0,%d]: %w", p.N0, p.N, ErrInvalidParameter)
	case p.TTL <= 0:
		return fmt.Errorf("TTL=%d must be > 0: %w", p.TTL, ErrInvalidParameter)
	case !unit(p.FatalityRate):
		return fmt.Errorf("FatalityRate=%g not in [0,1]: %w", p.FatalityRate, ErrInvalidParameter)
	case !unit(p.ImmunityRate):
		return fmt.Errorf("ImmunityRate=%g not in [0,1]: %w", p.ImmunityRate, ErrInvalidParameter)
	case !unit(p.ImmunityScalar):
		return fmt.Errorf("ImmunityScalar=%g not in [0,1]: %w", p.ImmunityScalar, ErrInvalidParameter)
	}
	return nil
}

// InfectionProbability returns p = R0/N, capped at 1.
func (p Params) InfectionProbability() float64 {
	return min(p.R0/float64(p.N), 1.0)
}

func unit(x float64) bool { return x >= 0 && x <= 1 }

// Option customizes a Pool.
type Option func(*poolConfig)

type poolConfig struct {
	rng    *rand.Rand
	logger *zap.Logger
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("epidemic: WithRand(nil)")
	}
	return func(c *poolConfig) { c.rng = r }
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *poolConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger attaches a structured logger for step summaries. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("epidemic: WithLogger(nil)")
	}
	return func(c *poolConfig) { c.logger = l }
}
