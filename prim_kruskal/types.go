// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlathds/builder"
	"github.com/katalvlaran/lvlathds/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected graph.
// Returned when graph is nil or directed.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected graph")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It also applies to |V| == 0.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method outside MethodPrim/MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a referenceable heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run and the data structures
// behind it. Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method   string           - one of MethodPrim or MethodKruskal.
//	Root     int              - start vertex for Prim; ignored by Kruskal.
//	HeapImpl builder.HeapImpl - Prim priority queue; ignored by Kruskal.
//	Values   bool             - Kruskal keeps component weights in a
//	                            value-augmented union-find and reads the
//	                            total from it; ignored by Prim.
type MSTOptions struct {
	Method   string
	Root     int
	HeapImpl builder.HeapImpl
	Values   bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim's algorithm.
// Panics if root is negative.
func WithRoot(root int) Option {
	if root < 0 {
		panic(fmt.Sprintf("prim_kruskal: WithRoot(%d): root must be non-negative", root))
	}
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithHeapImpl selects the priority queue used by Prim.
// Panics on an implementation unknown to builder.
func WithHeapImpl(impl builder.HeapImpl) Option {
	if _, err := builder.ParseHeapImpl(impl.String()); err != nil {
		panic(fmt.Sprintf("prim_kruskal: WithHeapImpl: %v", err))
	}
	return func(opts *MSTOptions) {
		opts.HeapImpl = impl
	}
}

// WithComponentWeights makes Kruskal maintain component weights in a
// value-augmented union-find.
func WithComponentWeights() Option {
	return func(opts *MSTOptions) {
		opts.Values = true
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method   = MethodKruskal
//	– Root     = 0
//	– HeapImpl = builder.Pairing
//
// Complexity: O(1) to construct.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:   MethodKruskal,
		Root:     0,
		HeapImpl: builder.Pairing,
	}
}

func resolve(opts []Option) MSTOptions {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Compute selects and runs the MST algorithm based on the resolved Method.
//
//	– MethodKruskal: calls Kruskal(graph, opts...).
//	– MethodPrim:    calls Prim(graph, opts...).
//	– Otherwise:     returns ErrUnknownMethod.
//
// Returns the tree edges, their total weight and an error if computation
// cannot proceed.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	switch m := resolve(opts).Method; m {
	case MethodKruskal:
		return Kruskal(graph, opts...)
	case MethodPrim:
		return Prim(graph, opts...)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, m)
	}
}

// validate performs the shared graph checks and reports the vertex count.
func validate(graph *core.Graph) (int, error) {
	if graph == nil || graph.Directed() {
		return 0, ErrInvalidGraph
	}
	n := graph.VertexCount()
	if n == 0 {
		return 0, ErrDisconnected
	}
	return n, nil
}
