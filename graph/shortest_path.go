package graph

import (
	"github.com/kiwiko123/collections/priority"
)

// searchState is one tentative distance to a vertex during Dijkstra's
// search. States are never updated in place; an improvement pushes a fresh
// state and the stale one is skipped when popped.
type searchState[T comparable] struct {
	vertex   T
	distance float64
}

// ShortestPath returns the cheapest path between two vertices and its total
// weight, computed with Dijkstra's algorithm on a reversed priority queue
// keyed by tentative distance. Edge weights must be non-negative; use
// BellmanFord when they are not. Returns ErrVertexNotFound for absent
// endpoints and ErrNoPath when the destination is unreachable.
func (g *Graph[T]) ShortestPath(from, to T) ([]T, float64, error) {
	if !g.Contains(from) || !g.Contains(to) {
		return nil, 0, ErrVertexNotFound
	}

	distances := map[T]float64{from: 0}
	parents := make(map[T]T)

	table := priority.NewKeyed(
		func(s searchState[T]) float64 { return s.distance },
		[]searchState[T]{{vertex: from}},
		priority.WithReverse[float64](),
	)

	for !table.IsEmpty() {
		state, _ := table.Pop()
		if state.distance > distances[state.vertex] {
			continue // superseded by a cheaper state
		}
		for next, weight := range g.adjacency[state.vertex] {
			weighted := state.distance + weight
			if current, ok := distances[next]; !ok || weighted < current {
				distances[next] = weighted
				parents[next] = state.vertex
				table.Push(searchState[T]{vertex: next, distance: weighted})
			}
		}
	}

	total, ok := distances[to]
	if !ok {
		return nil, 0, ErrNoPath
	}
	return tracePath(parents, from, to), total, nil
}

// BellmanFord returns the cheapest path between two vertices and its total
// weight, tolerating negative edge weights. Relaxes every edge |V|-1 times,
// then verifies no edge can still be relaxed; if one can, a negative-weight
// cycle exists and ErrNegativeCycle is returned.
func (g *Graph[T]) BellmanFord(from, to T) ([]T, float64, error) {
	if !g.Contains(from) || !g.Contains(to) {
		return nil, 0, ErrVertexNotFound
	}

	distances := map[T]float64{from: 0}
	parents := make(map[T]T)

	relax := func() bool {
		improved := false
		for origin, neighbors := range g.adjacency {
			base, ok := distances[origin]
			if !ok {
				continue
			}
			for next, weight := range neighbors {
				weighted := base + weight
				if current, ok := distances[next]; !ok || weighted < current {
					distances[next] = weighted
					parents[next] = origin
					improved = true
				}
			}
		}
		return improved
	}

	for i := 0; i < len(g.adjacency)-1; i++ {
		if !relax() {
			break
		}
	}
	if relax() {
		return nil, 0, ErrNegativeCycle
	}

	total, ok := distances[to]
	if !ok {
		return nil, 0, ErrNoPath
	}
	return tracePath(parents, from, to), total, nil
}

// tracePath walks the parent links from destination back to origin and
// returns the path origin-first.
func tracePath[T comparable](parents map[T]T, from, to T) []T {
	path := []T{to}
	for current := to; current != from; {
		current = parents[current]
		path = append(path, current)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
