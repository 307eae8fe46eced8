// SPDX-License-Identifier: MIT
// Package builder_test verifies BuildGraph orchestration, constructors,
// options and node helpers.

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epigraph/builder"
	"github.com/katalvlaran/epigraph/core"
	"github.com/katalvlaran/epigraph/prob"
)

func TestBuildGraph_Complete(t *testing.T) {
	g, err := builder.BuildGraph(builder.IntNodes(4), nil, nil, builder.Complete[int](0.3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.Equal(t, 0.3, e.Weight())
	}

	_, err = builder.BuildGraph(builder.IntNodes(4), nil, nil, builder.Complete[int](1.3))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestBuildGraph_ClustersMatchesGenerator(t *testing.T) {
	sizes, err := prob.New(map[int]float64{30: .7, 10: .1, 2: .1, 1: .1})
	require.NoError(t, err)
	nodes := builder.IntNodes(100)

	viaBuild, err := builder.BuildGraph(nodes, nil,
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.Clusters[int](sizes, 0.2))
	require.NoError(t, err)

	gen, err := builder.NewPartitionGenerator(nodes, sizes, 0.2, builder.WithSeed(seed))
	require.NoError(t, err)
	viaGen, err := gen.Generate()
	require.NoError(t, err)

	assert.Equal(t, viaGen.Weights(), viaBuild.Weights())
	requireDisjointCliques(t, viaBuild, 0.2)
}

func TestBuildGraph_GeneratorConstructor(t *testing.T) {
	nodes := builder.IntNodes(8)
	gen, err := builder.NewPartitionGenerator(nodes, prob.Point(4), weightHome, builder.WithSeed(seed))
	require.NoError(t, err)

	g, err := builder.BuildGraph(nodes, nil, nil, gen.Constructor())
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount())

	// nodes outside the target graph surface as a construction failure
	_, err = builder.BuildGraph(builder.IntNodes(4), nil, nil, gen.Constructor())
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.ErrorContains(t, err, "Node(4) not in target graph")
}

func TestBuildGraph_GeneratorConstructorMismatchKeepsRand(t *testing.T) {
	nodes := builder.IntNodes(8)
	gen, err := builder.NewPartitionGenerator(nodes, prob.Point(3), weightHome, builder.WithSeed(seed))
	require.NoError(t, err)
	fresh, err := builder.NewPartitionGenerator(nodes, prob.Point(3), weightHome, builder.WithSeed(seed))
	require.NoError(t, err)

	_, err = builder.BuildGraph(builder.IntNodes(5), nil, nil, gen.Constructor())
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	// the rejected call drew nothing, so both generators stay in lockstep
	got, err := gen.GenerateClusters()
	require.NoError(t, err)
	want, err := fresh.GenerateClusters()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBuildGraph_ClustersValidation(t *testing.T) {
	_, err := builder.BuildGraph(builder.IntNodes(4), nil, nil, builder.Clusters[int](prob.Point(2), 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(builder.IntNodes(4), nil,
		[]builder.BuilderOption{builder.WithSeed(1)}, builder.Clusters[int](nil, 0.5))
	assert.ErrorIs(t, err, builder.ErrNilSizeSpace)
}

func TestBuildGraph_RandomSparse(t *testing.T) {
	nodes := builder.IntNodes(30)

	none, err := builder.BuildGraph(nodes, nil, nil, builder.RandomSparse[int](0, 0.5))
	require.NoError(t, err)
	assert.Zero(t, none.EdgeCount())

	all, err := builder.BuildGraph(nodes, nil, nil, builder.RandomSparse[int](1, 0.5))
	require.NoError(t, err)
	assert.Equal(t, 30*29/2, all.EdgeCount())

	_, err = builder.BuildGraph(nodes, nil, nil, builder.RandomSparse[int](0.5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nodes, nil, nil, builder.RandomSparse[int](1.5, 0.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.BuildGraph(nodes, nil, nil, builder.RandomSparse[int](0.5, -1))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	opts := []builder.BuilderOption{builder.WithSeed(seed)}
	a, err := builder.BuildGraph(nodes, nil, opts, builder.RandomSparse[int](0.2, 0.1))
	require.NoError(t, err)
	b, err := builder.BuildGraph(nodes, nil, opts, builder.RandomSparse[int](0.2, 0.1))
	require.NoError(t, err)
	assert.Equal(t, a.Weights(), b.Weights())
	assert.Greater(t, a.EdgeCount(), 0)
	assert.Less(t, a.EdgeCount(), 30*29/2)
}

func TestBuildGraph_ConstructorOrderAndColor(t *testing.T) {
	nodes := builder.IntNodes(3)
	g, err := builder.BuildGraph(nodes,
		[]core.GraphOption{core.WithEdgeColor("blue")},
		[]builder.BuilderOption{builder.WithEdgeColor("red")},
		builder.Complete[int](0.1),
		builder.Complete[int](0.9),
	)
	require.NoError(t, err)
	// later constructors replace weights; graph options win over builder color
	assert.Equal(t, 0.9, g.Weight(0, 1))
	assert.Equal(t, "blue", g.EdgeColor())

	g, err = builder.BuildGraph(nodes, nil, []builder.BuilderOption{builder.WithEdgeColor("red")})
	require.NoError(t, err)
	assert.Equal(t, "red", g.EdgeColor())
	assert.Zero(t, g.EdgeCount())
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(builder.IntNodes(3), nil, nil, builder.Complete[int](0.5), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_SharedRandStream(t *testing.T) {
	sizes, err := prob.New(map[int]float64{1: .5, 2: .2, 3: .3})
	require.NoError(t, err)
	nodes := builder.IntNodes(50)

	run := func() (*core.Graph[int], *core.Graph[int]) {
		rng := rand.New(rand.NewSource(seed))
		opts := []builder.BuilderOption{builder.WithRand(rng)}
		h, err := builder.BuildGraph(nodes, nil, opts, builder.Clusters[int](sizes, 0.8))
		require.NoError(t, err)
		w, err := builder.BuildGraph(nodes, nil, opts, builder.Clusters[int](sizes, 0.2))
		require.NoError(t, err)
		return h, w
	}
	h1, w1 := run()
	h2, w2 := run()
	assert.Equal(t, h1.Weights(), h2.Weights())
	assert.Equal(t, w1.Weights(), w2.Weights())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithLogger(nil) })
	assert.Panics(t, func() { builder.WithRemainderPolicy(builder.RemainderPolicy(99)) })
	assert.NotPanics(t, func() { builder.WithAllowRemainder(true) })
}

func TestRemainderPolicy_String(t *testing.T) {
	assert.Equal(t, "keep", builder.RemainderKeep.String())
	assert.Equal(t, "discard", builder.RemainderDiscard.String())
	assert.Equal(t, "unknown", builder.RemainderPolicy(7).String())
}

func TestNodeHelpers(t *testing.T) {
	assert.Equal(t, []core.Node[int]{core.NewNode(0), core.NewNode(1), core.NewNode(2)}, builder.IntNodes(3))
	assert.Empty(t, builder.IntNodes(0))
	assert.Empty(t, builder.IntNodes(-2))

	assert.Equal(t, builder.NodesOf("A", "B", "C"), builder.LabeledNodes(3, builder.ExcelColumnIDFn))
	assert.Equal(t, builder.NodesOf("0", "1"), builder.LabeledNodes(2, nil))
	assert.Equal(t, builder.NodesOf("p0", "p1"), builder.LabeledNodes(2, builder.PrefixIDFn("p")))
	assert.Empty(t, builder.LabeledNodes(0, nil))
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "42", builder.DefaultIDFn(42))

	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Equal(t, "BA", builder.ExcelColumnIDFn(52))

	assert.Equal(t, "a", builder.AlphanumericIDFn(10))
	assert.Equal(t, "z", builder.AlphanumericIDFn(35))
	assert.Equal(t, "10", builder.AlphanumericIDFn(36))

	assert.Equal(t, "h7", builder.PrefixIDFn("h")(7))

	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { builder.AlphanumericIDFn(-1) })
	assert.Panics(t, func() { builder.PrefixIDFn("x")(-1) })
}
