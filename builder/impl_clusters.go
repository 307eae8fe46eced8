// SPDX-License-Identifier: MIT
// Package: epigraph/builder
//
// impl_clusters.go - Clusters(sizes, w) constructor.
//
// Contract:
//   - Same draw/sample/connect loop as PartitionGenerator.Generate, applied to
//     the graph handed in by BuildGraph.
//   - Validation identical to NewPartitionGenerator.

package builder

import (
	"cmp"

	"github.com/katalvlaran/epigraph/core"
	"github.com/katalvlaran/epigraph/prob"
)

// Clusters returns a Constructor that partitions the node set into cliques
// whose sizes follow sizes, each edge carrying weight w.
func Clusters[K cmp.Ordered](sizes *prob.Space[int], w float64) Constructor[K] {
	return func(g *core.Graph[K], nodes []core.Node[K], cfg builderConfig) error {
		if err := validatePartition(sizes, w, cfg); err != nil {
			return err
		}
		return connectPartition(g, nodes, sizes, w, cfg, methodClusters)
	}
}
