// Package graph implements directed and undirected weighted graphs over an
// adjacency map: a hash map from each vertex to its outgoing edges, trading
// the space efficiency of an adjacency list for O(1) vertex lookup and edge
// insertion.
//
// Key features:
//   - Generic over any comparable vertex value type
//   - Depth-first reachability and connectivity tests
//   - Dijkstra's shortest path (non-negative weights), driven by a reversed
//     priority queue keyed by tentative distance
//   - Bellman-Ford shortest path with negative-weight-cycle detection
//
// Basic usage:
//
//	g := graph.NewUndirected[string]()
//	for _, v := range []string{"a", "b", "c"} {
//		g.AddVertex(v)
//	}
//	_ = g.AddEdge("a", "b", 1)
//	_ = g.AddEdge("b", "c", 2)
//
//	path, cost, err := g.ShortestPath("a", "c")
//	// path = [a b c], cost = 3
package graph
