// Package dijkstra implements Dijkstra's shortest-path algorithm on an
// index *core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to
//     all reachable vertices.
//   - Vertices are dense ids, so the priority queue is heap.IndexPairing:
//     one slot per vertex and a true DecreaseKey instead of lazy duplicates.
//   - Supports optional path reconstruction, distance caps and "impassable"
//     edge thresholds.
//
// Performance and complexity:
//
//   - Time:  O(E + V log V) amortized (V extractions, at most E decrease-keys).
//   - Space: O(V) for distances, predecessors and the heap arrays.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     no Source option was given.
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrVertexNotFound:  Source outside [0, V).
//   - ErrNegativeWeight:  some edge has a negative weight (O(E) pre-scan).
//   - ErrBadMaxDistance:  panic from WithMaxDistance on a negative value.
//   - ErrBadInfThreshold: panic from WithInfEdgeThreshold on a value ≤ 0.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist []float64, prev []int, err error)
//
//	  - dist[v]: minimal distance from Source, +Inf if unreachable.
//	  - prev[v]: predecessor of v on one shortest path, -1 for the source
//	    and unreachable vertices. Nil unless WithReturnPath() is given.
//
// Thread safety:
//
//   - core.Graph accessors are synchronized, but a graph mutated during a
//     run yields an unspecified mix of old and new edges.
package dijkstra
