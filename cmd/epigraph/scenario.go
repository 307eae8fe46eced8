// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/epigraph/builder"
	"github.com/katalvlaran/epigraph/config"
	"github.com/katalvlaran/epigraph/core"
)

// layerResult is one built layer before aggregation.
type layerResult struct {
	Name  string
	Graph *core.Graph[int]
}

// buildScenario builds every layer of s over one shared RNG stream and
// aggregates them. The returned layers are in scenario order.
func buildScenario(s *config.Scenario, logger *zap.Logger) (*core.Graph[int], []layerResult, error) {
	rng := rand.New(rand.NewSource(s.Seed))
	nodes := builder.IntNodes(s.Nodes)

	layers := make([]layerResult, 0, len(s.Layers))
	graphs := make([]*core.Graph[int], 0, len(s.Layers))
	for _, l := range s.Layers {
		cons, err := layerConstructor(l)
		if err != nil {
			return nil, nil, err
		}
		g, err := builder.BuildGraph(nodes, nil,
			[]builder.BuilderOption{
				builder.WithRand(rng),
				builder.WithAllowRemainder(l.KeepRemainder()),
				builder.WithEdgeColor(l.EdgeColor),
				builder.WithLogger(logger.With(zap.String("layer", l.Name))),
			},
			cons,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("layer %q: %w", l.Name, err)
		}
		st := g.Stats()
		logger.Info("layer built",
			zap.String("layer", l.Name),
			zap.String("kind", l.Kind),
			zap.Int("edges", st.EdgeCount),
			zap.Int("isolated", st.IsolatedNodes),
			zap.Float64("mean_expected_degree", st.MeanExpectedDegree),
		)
		layers = append(layers, layerResult{Name: l.Name, Graph: g})
		graphs = append(graphs, g)
	}

	agg, err := core.AggregateAll(graphs...)
	if err != nil {
		return nil, nil, fmt.Errorf("aggregate: %w", err)
	}
	agg.SetEdgeColor(s.EdgeColor)
	return agg, layers, nil
}

func layerConstructor(l config.Layer) (builder.Constructor[int], error) {
	switch l.Kind {
	case config.KindClusters:
		sizes, err := l.SizeSpace()
		if err != nil {
			return nil, err
		}
		return builder.Clusters[int](sizes, l.Weight), nil
	case config.KindComplete:
		return builder.Complete[int](l.Weight), nil
	case config.KindRandom:
		return builder.RandomSparse[int](l.Probability, l.Weight), nil
	}
	return nil, fmt.Errorf("layer %q: unknown kind %q", l.Name, l.Kind)
}
