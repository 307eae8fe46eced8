// SPDX-License-Identifier: MIT
// Package builder generates contact-graph layers over a fixed node set.
//
// The central piece is PartitionGenerator: it splits the population into
// disjoint clusters whose sizes are drawn from a prob.Space[int], and connects
// each cluster as a complete subgraph with one fixed weight. Layers built
// this way (households, workplaces, schools) are combined with core.Aggregate.
//
// The package offers the following key components:
//
//   - Generators and constructors:
//     – PartitionGenerator: Generate, GenerateClusters, Constructor.
//     – Clusters(sizes, w): partition layer as a Constructor.
//     – Complete(w):        every pair connected.
//     – RandomSparse(p, w): each pair kept with probability p.
//     – BuildGraph:         runs constructors in order over one graph.
//   - Configuration primitives:
//     – BuilderOption:  WithSeed, WithRand, WithRemainderPolicy,
//     WithAllowRemainder, WithEdgeColor, WithLogger.
//     – builderConfig:  resolved knobs passed by value to constructors.
//   - Node helpers:
//     – IntNodes, LabeledNodes, NodesOf.
//     – IDFn schemes: DefaultIDFn, AlphanumericIDFn, ExcelColumnIDFn, PrefixIDFn.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return errors wrapping the sentinels in
//     errors.go.
//   - Same nodes, options and seed ⇒ identical graphs.
//
// Example:
//
//	sizes, _ := prob.New(map[int]float64{1: .5, 2: .2, 3: .1, 4: .1, 5: .05, 6: .05})
//	gen, _ := builder.NewPartitionGenerator(builder.IntNodes(100), sizes, 0.8, builder.WithSeed(1))
//	households, _ := gen.Generate()
package builder
