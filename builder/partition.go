// SPDX-License-Identifier: MIT
// Package: epigraph/builder
//
// partition.go - PartitionGenerator: random partitions into weighted cliques.
//
// Canonical model:
//   - Repeatedly draw a cluster size n from the size distribution.
//   - Sample min(n, |remaining|) nodes uniformly without replacement.
//   - Connect the cluster as a complete subgraph with the fixed weight.
//   - Stop when every node has been assigned to exactly one cluster.
//
// Contract:
//   - sizes non-nil (else ErrNilSizeSpace), every drawable size ≥ 1
//     (else ErrInvalidClusterSize).
//   - 0 ≤ weight ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng non-nil (else ErrNeedRandSource).
//   - Generate never mutates the generator; each call works on a fresh copy
//     of the node set.
//
// Complexity:
//   - Time: O(V log V) sort + O(V) sampling + O(Σ c_i²) edges.
//   - Space: O(V) for the working copy.
//
// Determinism:
//   - The working copy starts sorted by node ID; sampling is a partial
//     Fisher–Yates shuffle on it, so a fixed seed yields fixed clusters.

package builder

import (
	"cmp"
	"fmt"
	"math/rand"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/epigraph/core"
	"github.com/katalvlaran/epigraph/prob"
)

// PartitionGenerator draws random partitions of a node set into disjoint
// clusters whose sizes follow a distribution, and materializes each partition
// as a graph of weighted cliques (households, workplaces, ...).
type PartitionGenerator[K cmp.Ordered] struct {
	nodes  []core.Node[K]
	sizes  *prob.Space[int]
	weight float64
	cfg    builderConfig
}

// NewPartitionGenerator validates its inputs and returns a generator over a
// private, sorted, deduplicated copy of nodes.
//
// Errors: ErrNilSizeSpace, ErrInvalidClusterSize, ErrInvalidProbability,
// ErrNeedRandSource (in that priority).
func NewPartitionGenerator[K cmp.Ordered](nodes []core.Node[K], sizes *prob.Space[int], weight float64, opts ...BuilderOption) (*PartitionGenerator[K], error) {
	cfg := newBuilderConfig(opts...)
	if err := validatePartition(sizes, weight, cfg); err != nil {
		return nil, err
	}

	own := slices.Clone(nodes)
	slices.SortFunc(own, core.Node[K].Compare)
	own = slices.Compact(own)

	return &PartitionGenerator[K]{
		nodes:  own,
		sizes:  sizes,
		weight: weight,
		cfg:    cfg,
	}, nil
}

// Nodes returns a copy of the generator's node set, sorted by ID.
func (p *PartitionGenerator[K]) Nodes() []core.Node[K] {
	return slices.Clone(p.nodes)
}

// Weight returns the weight assigned to every cluster edge.
func (p *PartitionGenerator[K]) Weight() float64 { return p.weight }

// Generate draws one partition and returns it as a Graph over the full node
// set whose edges are the union of one complete subgraph per cluster.
// Nodes of a single-node cluster (or of a discarded remainder) stay isolated.
func (p *PartitionGenerator[K]) Generate() (*core.Graph[K], error) {
	g := core.NewGraph(p.nodes, core.WithEdgeColor(p.cfg.edgeColor))
	if err := p.fill(g); err != nil {
		return nil, err
	}
	return g, nil
}

// GenerateClusters draws one partition and returns its clusters in draw
// order, each sorted by node ID. A discarded remainder is still reported.
func (p *PartitionGenerator[K]) GenerateClusters() ([][]core.Node[K], error) {
	parts, err := drawPartition(p.nodes, p.sizes, p.cfg.rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPartition, err)
	}
	out := make([][]core.Node[K], len(parts))
	for i, c := range parts {
		out[i] = c.members
	}
	return out, nil
}

// Constructor exposes the generator as a BuildGraph constructor.
//
// The generator keeps its own node set, sizes, weight, RNG and remainder
// policy; the nodes and configuration resolved by BuildGraph are ignored.
// Every generator node must belong to the target graph, otherwise the
// constructor fails with ErrNodeNotFound and ErrConstructFailed before any
// draw, leaving the graph and the generator's RNG untouched.
func (p *PartitionGenerator[K]) Constructor() Constructor[K] {
	return func(g *core.Graph[K], _ []core.Node[K], _ builderConfig) error {
		for _, n := range p.nodes {
			if !g.HasNode(n.ID()) {
				return fmt.Errorf("%s: %v not in target graph: %w: %w",
					methodPartition, n, core.ErrNodeNotFound, ErrConstructFailed)
			}
		}
		return p.fill(g)
	}
}

// fill draws a partition over p.nodes and connects its clusters in g.
func (p *PartitionGenerator[K]) fill(g *core.Graph[K]) error {
	return connectPartition(g, p.nodes, p.sizes, p.weight, p.cfg, methodPartition)
}

// cluster is one drawn part; short marks a final cluster smaller than its
// drawn size.
type cluster[K cmp.Ordered] struct {
	members []core.Node[K]
	drawn   int
	short   bool
}

// drawPartition consumes a copy of nodes into clusters whose sizes come from
// sizes. nodes must be sorted and deduplicated.
func drawPartition[K cmp.Ordered](nodes []core.Node[K], sizes *prob.Space[int], rng *rand.Rand) ([]cluster[K], error) {
	if rng == nil {
		return nil, fmt.Errorf("rng is required: %w", ErrNeedRandSource)
	}

	remaining := slices.Clone(nodes)
	var out []cluster[K]
	for len(remaining) > 0 {
		n, err := sizes.Draw(rng)
		if err != nil {
			return nil, fmt.Errorf("draw cluster size: %w", err)
		}
		if n < MinClusterSize {
			return nil, fmt.Errorf("drawn size %d: %w", n, ErrInvalidClusterSize)
		}

		m := min(n, len(remaining))
		// Partial Fisher–Yates: the first m slots become a uniform sample
		// without replacement from remaining.
		for i := 0; i < m; i++ {
			j := i + rng.Intn(len(remaining)-i)
			remaining[i], remaining[j] = remaining[j], remaining[i]
		}

		members := slices.Clone(remaining[:m])
		slices.SortFunc(members, core.Node[K].Compare)
		out = append(out, cluster[K]{members: members, drawn: n, short: m < n})
		remaining = remaining[m:]
	}
	return out, nil
}

// connectPartition draws a partition over nodes and adds one complete
// subgraph per cluster, honoring the remainder policy.
func connectPartition[K cmp.Ordered](g *core.Graph[K], nodes []core.Node[K], sizes *prob.Space[int], w float64, cfg builderConfig, method string) error {
	parts, err := drawPartition(nodes, sizes, cfg.rng)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	discarded := 0
	for _, c := range parts {
		if c.short && cfg.remainder == RemainderDiscard {
			discarded = len(c.members)
			continue
		}
		if err = g.AddCompleteSubgraph(c.members, w); err != nil {
			return fmt.Errorf("%s: AddCompleteSubgraph(%d nodes): %w: %w", method, len(c.members), err, ErrConstructFailed)
		}
	}

	cfg.logger.Debug("partition drawn",
		zapMethod(method),
		zapNodes(len(nodes)),
		zap.Int("clusters", len(parts)),
		zap.Int("discarded_remainder", discarded),
		zap.Float64("weight", w),
	)
	return nil
}

// validatePartition checks the distribution, weight and RNG.
func validatePartition(sizes *prob.Space[int], w float64, cfg builderConfig) error {
	if sizes == nil {
		return fmt.Errorf("%s: %w", methodPartition, ErrNilSizeSpace)
	}
	if !prob.PositiveSupport(sizes) {
		return fmt.Errorf("%s: sizes %v: %w", methodPartition, sizes, ErrInvalidClusterSize)
	}
	if !validProbability(w) {
		return fmt.Errorf("%s: weight=%g not in [%.1f,%.1f]: %w",
			methodPartition, w, MinProbability, MaxProbability, ErrInvalidProbability)
	}
	if cfg.rng == nil {
		return fmt.Errorf("%s: rng is required: %w", methodPartition, ErrNeedRandSource)
	}
	return nil
}
