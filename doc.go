// Package epigraph builds layered, weighted contact graphs of a population
// and runs a homogeneous-mixing epidemic pool model.
//
// A contact graph G = (V,E) has one node per person and undirected edges whose
// weight in [0,1] is read as a transmission probability. Independent layers
// (households, workplaces, random mixing) are generated over the same node set
// and combined with probabilistic OR, 1 - (1-wl)(1-wr).
//
// Subpackages:
//
//	core/     - Node, Edge, Graph, AddCompleteSubgraph, Aggregate, Export
//	prob/     - DiscreteProbabilitySpace: normalized weights, seeded Draw
//	builder/  - PartitionGenerator and layer constructors (Clusters, Complete, RandomSparse)
//	bfs/      - traversal, connected components, cluster-size histograms
//	epidemic/ - pool model: Params, Pool.Iterate, RunTrials
//	render/   - HTML (vis-network), DOT, Mermaid and JSON export
//	config/   - YAML scenarios validated with struct tags
//	cmd/      - the epigraph CLI (graph, simulate, version)
//
// Quick example, two people sharing a home and a workplace:
//
//	    A═══B      home 0.8, work 0.2
//	              combined: 1 - 0.2·0.8 = 0.84
//
//	go install github.com/katalvlaran/epigraph/cmd/epigraph@latest
package epigraph
