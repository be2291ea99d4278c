// Package prim_kruskal computes Minimum Spanning Trees of an undirected,
// weighted *core.Graph with Prim's and Kruskal's algorithms.
//
// Both algorithms are thin consumers of the lvlathds data structures and
// obtain them through the builder factory:
//
//   - Kruskal(g, opts...) ([]core.Edge, float64, error)
//
//   - Strategy: sort edges by weight (stable on edge id), merge components
//     with a union-find, skip edges whose endpoints are already connected.
//
//   - Structure: builder.NewUnionFind (plain, or value-augmented with
//     WithValues; both satisfy unionfind.Interface).
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
//   - Prim(g, opts...) ([]core.Edge, float64, error)
//
//   - Strategy: grow a tree from Root; every outside vertex keeps one heap
//     entry holding its cheapest connecting edge, lowered with DecreaseKey.
//
//   - Structure: builder.NewHeap with the selected HeapImpl (pairing heap,
//     red-black tree or splay tree behind heap.Referenceable).
//
//   - Complexity: O(E + V log V) amortized with the pairing heap.
//
// Both return the tree edges in the order they were accepted and the total
// weight. A graph with a single vertex has an empty tree.
//
// Errors:
//
//   - ErrInvalidGraph:   nil or directed graph.
//   - ErrDisconnected:   empty graph, or no spanning tree exists.
//   - core.ErrVertexNotFound: Prim root outside [0, V).
//
// Example:
//
//	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1), builder.WithIntWeight(1, 9)},
//	    builder.Complete(8))
//	edges, total, err := prim_kruskal.Prim(g, prim_kruskal.WithHeapImpl(builder.Splay))
package prim_kruskal
