// SPDX-License-Identifier: MIT
// File: pool.go
// Role: Pool construction, Iterate loop, Results.
// Determinism:
//   - RNG draws happen in a fixed order: initial immunities (one per node),
//     then per step infection attempts (pool order), deaths, no draw for recovery.
// AI-HINT (file):
//   - Infected nodes do not consume a draw during infection attempts.
//   - Dead nodes leave the pool; they still count toward I(t) of their step.

package epidemic

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"
)

// Step summarizes one Iterate step. Infected is I(t) at the start of the
// step, Alive the pool size after deaths, R the running reproduction estimate.
type Step struct {
	T             int     `json:"t"`
	Infected      int     `json:"infected"`
	NewlyInfected int     `json:"newly_infected"`
	Died          int     `json:"died"`
	Recovered     int     `json:"recovered"`
	Alive         int     `json:"alive"`
	R             float64 `json:"r"`
}

// Pool is a homogeneous-mixing population.
type Pool struct {
	params Params
	p      float64
	rng    *rand.Rand
	logger *zap.Logger

	nodes []*Node

	cumInfected    int
	cumDenominator int
	infectedAt     []int
	t              int
}

// NewPool validates params and seeds the population: the first N0 nodes are
// infected, every node draws its initial immunity.
//
// Errors: ErrInvalidParameter, ErrNeedRandSource.
func NewPool(params Params, opts ...Option) (*Pool, error) {
	cfg := poolConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("NewPool: %w", err)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("NewPool: %w", ErrNeedRandSource)
	}

	immunities := make([]float64, params.N)
	for i := range immunities {
		immunities[i] = initialImmunity(cfg.rng.Float64(), params.ImmunityRate) * params.ImmunityScalar
	}
	nodes := make([]*Node, params.N)
	for i := range nodes {
		nodes[i] = newNode(i < params.N0, params.TTL, immunities[i], params.AcquiredImmunity)
	}

	return &Pool{
		params: params,
		p:      params.InfectionProbability(),
		rng:    cfg.rng,
		logger: cfg.logger,
		nodes:  nodes,
	}, nil
}

// initialImmunity returns 1 for the (1-rate) share of draws and 0 otherwise;
// the caller scales it by ImmunityScalar.
func initialImmunity(u, rate float64) float64 {
	if u <= 1.0-rate {
		return 1.0
	}
	return 0.0
}

// Params returns the scenario the pool was built from.
func (p *Pool) Params() Params { return p.params }

// Nodes returns the living nodes in pool order. The slice is a copy; the
// nodes are shared.
func (p *Pool) Nodes() []*Node {
	out := make([]*Node, len(p.nodes))
	copy(out, p.nodes)
	return out
}

// Alive returns the current pool size.
func (p *Pool) Alive() int { return len(p.nodes) }

// InfectedCount returns the number of currently infected nodes.
func (p *Pool) InfectedCount() int {
	c := 0
	for _, n := range p.nodes {
		if n.infected {
			c++
		}
	}
	return c
}

// Iterate advances the model t steps and returns their summaries.
// Cancellation is checked between steps; completed steps are returned
// together with ctx.Err().
func (p *Pool) Iterate(ctx context.Context, t int) ([]Step, error) {
	if t <= 0 {
		return nil, fmt.Errorf("Iterate: t=%d must be > 0: %w", t, ErrInvalidParameter)
	}

	steps := make([]Step, 0, t)
	for i := 0; i < t; i++ {
		select {
		case <-ctx.Done():
			return steps, ctx.Err()
		default:
		}
		steps = append(steps, p.step())
	}
	return steps, nil
}

// step runs one iteration of the model.
func (p *Pool) step() Step {
	infected := make([]*Node, 0, len(p.nodes))
	for _, n := range p.nodes {
		if n.infected {
			infected = append(infected, n)
		}
	}
	p.infectedAt = append(p.infectedAt, len(infected))

	before := p.cumInfected
	for range infected {
		p.cumDenominator++
		p.infectPool()
	}

	died := make(map[*Node]struct{})
	for _, n := range infected {
		if p.rng.Float64() < p.params.FatalityRate {
			died[n] = struct{}{}
		}
	}
	if len(died) > 0 {
		alive := p.nodes[:0]
		for _, n := range p.nodes {
			if _, ok := died[n]; !ok {
				alive = append(alive, n)
			}
		}
		clear(p.nodes[len(alive):])
		p.nodes = alive
	}

	recovered := 0
	for _, n := range infected {
		if n.advance() {
			recovered++
		}
	}

	s := Step{
		T:             p.t,
		Infected:      len(infected),
		NewlyInfected: p.cumInfected - before,
		Died:          len(died),
		Recovered:     recovered,
		Alive:         len(p.nodes),
		R:             p.r(),
	}
	p.t++

	p.logger.Info("iteration",
		zap.Int("t", s.T),
		zap.Int("infected", s.Infected),
		zap.Int("newly_infected", s.NewlyInfected),
		zap.Int("died", s.Died),
		zap.Int("recovered", s.Recovered),
		zap.Float64("r", s.R),
	)
	if ce := p.logger.Check(zap.DebugLevel, "population"); ce != nil {
		ce.Write(zap.String("pool", p.String()))
	}
	return s
}

// infectPool makes one infection attempt against every node of the pool.
func (p *Pool) infectPool() {
	for _, n := range p.nodes {
		if n.maybeInfect(p.p, p.rng) {
			p.cumInfected++
		}
	}
}

// r returns cumulative infections per infectious node-step, 0 before any.
func (p *Pool) r() float64 {
	if p.cumDenominator == 0 {
		return 0
	}
	return float64(p.cumInfected) / float64(p.cumDenominator)
}

// Results snapshots the run so far.
func (p *Pool) Results() Results {
	return Results{
		InfectedAt:         append([]int(nil), p.infectedAt...),
		CumulativeInfected: p.cumInfected,
		R:                  p.r(),
	}
}

// String renders the pool as one symbol per living node.
func (p *Pool) String() string {
	var b strings.Builder
	b.Grow(len(p.nodes))
	for _, n := range p.nodes {
		b.WriteRune(n.Symbol())
	}
	return b.String()
}

// Results is the outcome of a run.
type Results struct {
	InfectedAt         []int   `json:"infected_at"`
	CumulativeInfected int     `json:"cumulative_infected"`
	R                  float64 `json:"r"`
}

// String renders the multi-line report:
//
//	Infected at:
//	0: 3
//	...
//
//	Cumulative Infected: 2
//	R: 0.4
func (r Results) String() string {
	var b strings.Builder
	b.WriteString("Infected at:\n")
	for t, n := range r.InfectedAt {
		fmt.Fprintf(&b, "%d: %d\n", t, n)
	}
	fmt.Fprintf(&b, "\nCumulative Infected: %d\n", r.CumulativeInfected)
	fmt.Fprintf(&b, "R: %v", r.R)
	return b.String()
}
