package graph

import (
	"errors"

	"golang.org/x/exp/maps"
)

var (
	ErrVertexNotFound = errors.New("graph: vertex not found")
	ErrNoPath         = errors.New("graph: no path between vertices")
	ErrNegativeCycle  = errors.New("graph: negative-weight cycle")
)

// Edge is a weighted connection between two vertices. In an undirected graph
// every edge is stored in both orientations; Edges reports each one once.
type Edge[T comparable] struct {
	From   T
	To     T
	Weight float64
}

// Graph is an adjacency-map graph over vertices of a comparable value type.
// The map gives O(1) vertex lookup and edge insertion at the cost of the
// space an adjacency list would save. Construct with NewDirected or
// NewUndirected.
type Graph[T comparable] struct {
	adjacency map[T]map[T]float64
	directed  bool
}

// NewDirected creates an empty directed graph.
func NewDirected[T comparable]() *Graph[T] {
	return &Graph[T]{adjacency: make(map[T]map[T]float64), directed: true}
}

// NewUndirected creates an empty undirected graph.
func NewUndirected[T comparable]() *Graph[T] {
	return &Graph[T]{adjacency: make(map[T]map[T]float64)}
}

// Len returns the number of vertices.
func (g *Graph[T]) Len() int {
	return len(g.adjacency)
}

// IsEmpty reports whether the graph has no vertices.
func (g *Graph[T]) IsEmpty() bool {
	return len(g.adjacency) == 0
}

// Contains reports whether the vertex exists.
func (g *Graph[T]) Contains(vertex T) bool {
	_, ok := g.adjacency[vertex]
	return ok
}

// AddVertex inserts a lone vertex. Adding an existing vertex is a no-op that
// preserves its edges.
func (g *Graph[T]) AddVertex(vertex T) {
	if !g.Contains(vertex) {
		g.adjacency[vertex] = make(map[T]float64)
	}
}

// AddEdge connects two existing vertices with the given weight, replacing
// any previous edge between them. In an undirected graph the symmetric twin
// is inserted as well. Returns ErrVertexNotFound if either endpoint is
// absent.
func (g *Graph[T]) AddEdge(from, to T, weight float64) error {
	if !g.Contains(from) || !g.Contains(to) {
		return ErrVertexNotFound
	}

	g.adjacency[from][to] = weight
	if !g.directed {
		g.adjacency[to][from] = weight
	}
	return nil
}

// HasEdge reports whether an edge exists from one vertex to the other.
// Symmetric for undirected graphs. Returns ErrVertexNotFound if either
// endpoint is absent.
func (g *Graph[T]) HasEdge(from, to T) (bool, error) {
	if !g.Contains(from) || !g.Contains(to) {
		return false, ErrVertexNotFound
	}
	_, ok := g.adjacency[from][to]
	return ok, nil
}

// Vertices returns all vertex values, in no particular order.
func (g *Graph[T]) Vertices() []T {
	return maps.Keys(g.adjacency)
}

// Neighbors returns the outgoing edges of a vertex, in no particular order.
func (g *Graph[T]) Neighbors(vertex T) ([]Edge[T], error) {
	if !g.Contains(vertex) {
		return nil, ErrVertexNotFound
	}

	edges := make([]Edge[T], 0, len(g.adjacency[vertex]))
	for to, weight := range g.adjacency[vertex] {
		edges = append(edges, Edge[T]{From: vertex, To: to, Weight: weight})
	}
	return edges, nil
}

// Edges returns every edge, in no particular order. Undirected edges are
// reported once, in an arbitrary orientation.
func (g *Graph[T]) Edges() []Edge[T] {
	var edges []Edge[T]
	seen := make(map[[2]T]bool)

	for from, neighbors := range g.adjacency {
		for to, weight := range neighbors {
			if !g.directed && seen[[2]T{to, from}] {
				continue
			}
			seen[[2]T{from, to}] = true
			edges = append(edges, Edge[T]{From: from, To: to, Weight: weight})
		}
	}
	return edges
}

// EdgeCount returns the number of edges, counting each undirected edge once.
func (g *Graph[T]) EdgeCount() int {
	return len(g.Edges())
}

// IsReachable reports whether a path exists from one vertex to the other,
// by depth-first search along outgoing edges. Returns ErrVertexNotFound if
// either endpoint is absent.
func (g *Graph[T]) IsReachable(from, to T) (bool, error) {
	if !g.Contains(from) || !g.Contains(to) {
		return false, ErrVertexNotFound
	}
	return g.dfsReaches(from, to, make(map[T]bool)), nil
}

// IsConnected reports whether a path exists between every pair of vertices.
// An empty graph is disconnected; a single vertex is connected. For directed
// graphs this tests reachability along edge direction from an arbitrary
// root, which is weak connectivity only when edges happen to be symmetric.
func (g *Graph[T]) IsConnected() bool {
	if len(g.adjacency) == 0 {
		return false
	}

	explored := make(map[T]bool)
	for root := range g.adjacency {
		g.dfsExplore(root, explored)
		break
	}
	return len(explored) == len(g.adjacency)
}

func (g *Graph[T]) dfsExplore(root T, explored map[T]bool) {
	explored[root] = true
	for next := range g.adjacency[root] {
		if !explored[next] {
			g.dfsExplore(next, explored)
		}
	}
}

func (g *Graph[T]) dfsReaches(root, destination T, explored map[T]bool) bool {
	if root == destination {
		return true
	}
	explored[root] = true
	for next := range g.adjacency[root] {
		if !explored[next] && g.dfsReaches(next, destination, explored) {
			return true
		}
	}
	return false
}
