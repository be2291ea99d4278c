package core

import (
	"fmt"
	"iter"
	"math"
)

// AddVertex adds one vertex and returns its id.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj = append(g.adj, nil)
	return len(g.adj) - 1
}

// AddVertices adds n vertices and returns the id of the first one.
// Panics if n is negative.
func (g *Graph) AddVertices(n int) int {
	if n < 0 {
		panic(fmt.Sprintf("core: AddVertices(%d)", n))
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	first := len(g.adj)
	g.adj = append(g.adj, make([][]int, n)...)
	return first
}

// AddEdge connects u and v with weight w and returns the new edge id.
//
// Steps:
//  1. Validate endpoints, weight and loop policy.
//  2. Append the edge.
//  3. Register it at u, and at v too if the graph is undirected.
func (g *Graph) AddEdge(u, v int, w float64) (int, error) {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("%w: %v", ErrBadWeight, w)
	}
	if u == v && !g.allowLoops {
		return 0, fmt.Errorf("%w: %d", ErrLoopNotAllowed, u)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkVertex(u); err != nil {
		return 0, err
	}
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: w})
	g.adj[u] = append(g.adj[u], id)
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], id)
	}

	return id, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adj)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// Edge returns the edge with the given id.
func (g *Graph) Edge(id int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}
	return g.edges[id], nil
}

// Edges iterates over a snapshot of all edges in ascending id order.
func (g *Graph) Edges() iter.Seq2[int, Edge] {
	g.mu.RLock()
	snapshot := make([]Edge, len(g.edges))
	copy(snapshot, g.edges)
	g.mu.RUnlock()

	return func(yield func(int, Edge) bool) {
		for id, e := range snapshot {
			if !yield(id, e) {
				return
			}
		}
	}
}

// OutEdges returns the ids of the edges leaving v (incident to v when the
// graph is undirected) in insertion order. A self-loop appears once.
func (g *Graph) OutEdges(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(v); err != nil {
		return nil, err
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])
	return out, nil
}

// checkVertex must be called with g.mu held.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	return nil
}
