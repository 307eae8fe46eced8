// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epigraph/core"
)

func TestExport(t *testing.T) {
	g := core.NewGraph(ints(3, 1, 2), core.WithEdgeColor("gray"))
	require.NoError(t, g.AddEdge(mustEdge(3, 1, 1.0/3)))
	require.NoError(t, g.AddEdge(mustEdge(2, 1, WeightHome)))

	net := g.Export()
	assert.Equal(t, []int{1, 2, 3}, net.Nodes)
	assert.Equal(t, "gray", net.EdgeColor)
	assert.Equal(t, []core.NetworkEdge[int]{
		{A: 1, B: 2, Weight: WeightHome, Label: "0.8", Color: "gray"},
		{A: 1, B: 3, Weight: 1.0 / 3, Label: "0.33", Color: "gray"},
	}, net.Edges)

	// snapshot is detached from the graph
	net.Nodes[0] = 42
	net.Edges[0].Weight = 0
	assert.Equal(t, []int{1, 2, 3}, g.NodeIDs())
	assert.Equal(t, WeightHome, g.Weight(1, 2))
}

func TestExport_Empty(t *testing.T) {
	net := core.NewGraph[int](nil).Export()
	assert.Empty(t, net.Nodes)
	assert.Empty(t, net.Edges)
	assert.Equal(t, core.DefaultEdgeColor, net.EdgeColor)
}
