// Package core provides a minimal, thread-safe index graph: the calling
// contract used by the algorithms built on top of the data structures
// (prim_kruskal, dijkstra) and by the random fixtures of the builder package.
//
// Vertices are dense integers 0..VertexCount()-1 and edges are dense
// integers 0..EdgeCount()-1, both assigned in insertion order. Storing
// everything in slices lets the algorithms key their arrays, union-find
// elements and index heaps directly by vertex or edge id.
//
// Configuration Options (GraphOption):
//
//	– WithDirected()
//	    Edges are one-way. OutEdges(v) lists only edges leaving v.
//	    Undirected graphs list every edge at both endpoints.
//
//	– WithLoops()
//	    Permits self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithVertices(n)
//	    Pre-creates vertices 0..n-1.
//
// Core Methods:
//
//	AddVertex() int                         // O(1) amortized
//	AddVertices(n int) int                  // O(n), returns the first new id
//	AddEdge(u, v int, w float64) (int, error) // O(1) amortized
//	Edge(id int) (Edge, error)              // O(1)
//	Edges() iter.Seq2[int, Edge]            // O(E), ascending id
//	OutEdges(v int) ([]int, error)          // O(deg v), insertion order
//	VertexCount(), EdgeCount() int          // O(1)
//
// Errors:
//
//	ErrVertexNotFound  – vertex id outside [0, VertexCount())
//	ErrEdgeNotFound    – edge id outside [0, EdgeCount())
//	ErrBadWeight       – NaN or infinite weight
//	ErrLoopNotAllowed  – self-loop when loops are disabled
//
// Concurrency: a single sync.RWMutex guards all state. Queries copy what
// they return, so results stay valid while other goroutines add edges.
package core
