// Package bfs provides breadth-first search over a core.Graph, returning hop
// distances, parent links, and visit order, plus connected components.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Drops edges below a probability threshold via WithMinWeight.
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Components / SizeHistogram group the node set into connected parts.
//
// Why
//
//   - Who can a seed case reach within k contacts, and through which chain?
//   - On a single partition layer, components are the clusters themselves.
//   - On an aggregated graph, components show how layers bridge clusters.
//
// Determinism
//
//	core.Graph.Neighbors returns edges sorted by the opposite endpoint and BFS
//	enqueues neighbors in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E log E) (neighbor lists are sorted on access)
//   - Memory: O(V)           (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithMaxDepth[int](2),
//	    bfs.WithMinWeight[int](0.5),
//	)
//	path, err := res.PathTo(7)
//
//	hist, err := bfs.SizeHistogram(households)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      if invalid Option (negative MaxDepth, MinWeight outside [0,1]).
//   - ErrNeighbors            if core.Neighbors fails for any node.
//   - ErrNoPath               from PathTo when the destination was not reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
