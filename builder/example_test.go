// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/epigraph/builder"
	"github.com/katalvlaran/epigraph/prob"
)

// ExamplePartitionGenerator pairs five people; one is left alone.
func ExamplePartitionGenerator() {
	gen, err := builder.NewPartitionGenerator(builder.IntNodes(5), prob.Point(2), 0.8, builder.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, err := gen.Generate()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	st := g.Stats()
	fmt.Println("nodes:", st.NodeCount, "edges:", st.EdgeCount, "isolated:", st.IsolatedNodes)
	// Output:
	// nodes: 5 edges: 2 isolated: 1
}
