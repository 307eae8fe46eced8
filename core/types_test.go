// SPDX-License-Identifier: MIT
// Package core_test verifies Node and Edge value semantics.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epigraph/core"
)

func TestNode_EqualityAndOrder(t *testing.T) {
	a, a2, b := core.NewNode(1), core.NewNode(1), core.NewNode(2)

	assert.Equal(t, a, a2)
	assert.True(t, a == a2)
	assert.NotEqual(t, a, b)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(a2))
	assert.Equal(t, "Node(1)", a.String())

	set := map[core.Node[int]]struct{}{a: {}, a2: {}, b: {}}
	assert.Len(t, set, 2)

	s := core.NewNode("alice")
	assert.Equal(t, "alice", s.ID())
	assert.Equal(t, "Node(alice)", s.String())
}

func TestNewEdge_Validation(t *testing.T) {
	a, b := core.NewNode(1), core.NewNode(2)

	_, err := core.NewEdge(a, a, WeightHalf)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	for _, w := range []float64{-0.1, 1.0001, math.NaN(), math.Inf(1)} {
		_, err = core.NewEdge(a, b, w)
		require.ErrorIs(t, err, core.ErrBadWeight, "w=%v", w)
	}

	for _, w := range []float64{0, 1} {
		_, err = core.NewEdge(a, b, w)
		require.NoError(t, err, "boundary w=%v", w)
	}
}

func TestEdge_IdentityIgnoresWeightAndOrder(t *testing.T) {
	ab := mustEdge(1, 2, WeightHome)
	ba := mustEdge(2, 1, WeightWork)

	assert.True(t, ab.Equal(ba))
	assert.Equal(t, ab.Key(), ba.Key())
	assert.Equal(t, core.NewEdgeKey(2, 1), ab.Key())
	assert.Equal(t, core.EdgeKey[int]{A: 1, B: 2}, ba.Key())

	// canonical endpoint order
	assert.Equal(t, 1, ba.A().ID())
	assert.Equal(t, 2, ba.B().ID())
	assert.Equal(t, WeightWork, ba.Weight())

	set := map[core.EdgeKey[int]]float64{ab.Key(): ab.Weight()}
	set[ba.Key()] = ba.Weight()
	assert.Len(t, set, 1)

	assert.False(t, ab.Equal(mustEdge(1, 3, WeightHome)))
}

func TestEdge_Other(t *testing.T) {
	e := mustEdge(3, 7, WeightHalf)

	o, ok := e.Other(core.NewNode(3))
	require.True(t, ok)
	assert.Equal(t, 7, o.ID())

	o, ok = e.Other(core.NewNode(7))
	require.True(t, ok)
	assert.Equal(t, 3, o.ID())

	_, ok = e.Other(core.NewNode(9))
	assert.False(t, ok)
}

func TestEdge_LabelAndString(t *testing.T) {
	assert.Equal(t, "0.8", mustEdge(1, 2, 0.8).Label())
	assert.Equal(t, "0.33", mustEdge(1, 2, 1.0/3).Label())
	assert.Equal(t, "0.67", mustEdge(1, 2, 2.0/3).Label())
	assert.Equal(t, "1", mustEdge(1, 2, 1).Label())
	assert.Equal(t, "0", mustEdge(1, 2, 0).Label())
	assert.Equal(t, "0.84", core.WeightLabel(core.OrProbability(0.8, 0.2)))

	assert.Equal(t, "Edge(Node(1), Node(2), 0.5)", mustEdge(2, 1, 0.5).String())
}

func TestValidWeight(t *testing.T) {
	assert.True(t, core.ValidWeight(0))
	assert.True(t, core.ValidWeight(0.5))
	assert.True(t, core.ValidWeight(1))
	assert.False(t, core.ValidWeight(-1e-9))
	assert.False(t, core.ValidWeight(1+1e-9))
	assert.False(t, core.ValidWeight(math.NaN()))
}
