package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge connects From and To with a Weight. In undirected graphs the
// orientation is only the order the endpoints were given in.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Other returns the endpoint of e opposite to v.
func (e Edge) Other(v int) int {
	if e.From == v {
		return e.To
	}
	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes every edge one-way.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithVertices pre-creates n vertices. Panics if n is negative.
func WithVertices(n int) GraphOption {
	if n < 0 {
		panic("core: WithVertices(n<0)")
	}
	return func(g *Graph) { g.adj = make([][]int, n) }
}

// Graph is an in-memory graph over dense vertex and edge ids.
type Graph struct {
	mu sync.RWMutex // guards everything below

	directed   bool
	allowLoops bool

	edges []Edge
	adj   [][]int // vertex -> incident (or outgoing) edge ids
}

// NewGraph creates an empty Graph configured by opts.
// By default the graph is undirected without self-loops.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }
