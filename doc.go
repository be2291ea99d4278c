// Package lvlathds is the data-structure layer behind graph algorithms:
// the sets, heaps, trees and range queries that Kruskal, Prim, Dijkstra,
// LCA and friends are built from.
//
// What is inside?
//
//	unionfind/    - plain and value-augmented Union-Find (array-backed)
//	heap/         - Comparator/Ref contracts, pairing heap, index pairing heap
//	bst/          - red-black tree (Size/Min/Max extensions), splay tree with split & meld
//	dyntree/      - link-cut dynamic trees with path min/add and a TreeSize extension
//	rmq/          - static RMQ: sparse table, lookup table, Cartesian linear, ±1 linear
//	lca/          - static lowest common ancestor via Euler tour + ±1 RMQ
//	builder/      - typed factory choosing implementations; deterministic fixtures
//	core/         - minimal index graph (dense vertices, int edge ids)
//	prim_kruskal/ - MST consumers of unionfind and heap
//	dijkstra/     - shortest paths over the index heap
//	cmd/dscheck   - CLI cross-validating the interchangeable implementations
//
// Every structure is single-threaded and performs no I/O; every package
// reports recoverable misuse through sentinel errors and panics only on
// caller bugs documented as such (e.g. an out-of-range union-find id).
//
// Quick example:
//
//	h, _ := builder.NewHeap[int, string](heap.Natural[int](), builder.WithSplit())
//	h.InsertWithValue(3, "c")
//	h.InsertWithValue(1, "a")
//	m, _ := h.ExtractMin() // 1 "a"
//
//	go install github.com/katalvlaran/lvlathds/cmd/dscheck@latest
package lvlathds
