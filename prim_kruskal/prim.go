package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/lvlathds/builder"
	"github.com/katalvlaran/lvlathds/core"
	"github.com/katalvlaran/lvlathds/heap"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from MSTOptions.Root.
//
// Error Conditions:
//   - ErrInvalidGraph       : if graph is nil or directed.
//   - core.ErrVertexNotFound: if the root vertex does not exist in the graph.
//   - ErrDisconnected       : if |V| == 0 or the graph is not fully connected.
//
// Steps:
//  1. Validate graph and root; |V|==1 → trivial empty MST.
//  2. Create the heap (builder.NewHeap with the selected HeapImpl). Keys are
//     connection weights, values are the connecting edge ids.
//  3. Mark root visited and offer its incident edges.
//  4. Repeatedly extract the cheapest outside vertex, accept its edge and
//     offer the edges of the new vertex:
//     - first sighting inserts a heap entry;
//     - a strictly cheaper edge lowers the entry with DecreaseKey.
//  5. If MST size < |V|-1 after the heap drains → ErrDisconnected.
//
// Complexity: O(E + V log V) amortized, O(V) heap entries.
func Prim(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	cfg := resolve(opts)

	// 1. Validate graph and root.
	n, err := validate(graph)
	if err != nil {
		return nil, 0, err
	}
	if cfg.Root >= n {
		return nil, 0, fmt.Errorf("prim_kruskal: root %d: %w", cfg.Root, core.ErrVertexNotFound)
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Priority queue of outside vertices.
	pq, err := builder.NewHeap[float64, int](heap.Natural[float64](), builder.WithHeapImpl(cfg.HeapImpl))
	if err != nil {
		return nil, 0, err
	}

	var (
		visited = make([]bool, n)
		entry   = make([]heap.Ref[float64, int], n)
		mst     = make([]core.Edge, 0, n-1)
		total   float64
	)

	// offer proposes every edge of u that leaves the tree.
	offer := func(u int) error {
		ids, err := graph.OutEdges(u)
		if err != nil {
			return err
		}
		for _, id := range ids {
			e, err := graph.Edge(id)
			if err != nil {
				return err
			}
			v := e.Other(u)
			if visited[v] {
				continue
			}
			switch ref := entry[v]; {
			case ref == nil:
				entry[v] = pq.InsertWithValue(e.Weight, id)
			case e.Weight < ref.Key():
				if err := pq.DecreaseKey(ref, e.Weight); err != nil {
					return err
				}
				ref.SetValue(id)
			}
		}
		return nil
	}

	// 3. Seed from root.
	visited[cfg.Root] = true
	if err := offer(cfg.Root); err != nil {
		return nil, 0, err
	}

	// 4. Grow.
	for !pq.IsEmpty() {
		ref, err := pq.ExtractMin()
		if err != nil {
			return nil, 0, err
		}
		e, err := graph.Edge(ref.Value())
		if err != nil {
			return nil, 0, err
		}
		v := e.To
		if visited[v] {
			v = e.From
		}
		visited[v] = true
		mst = append(mst, e)
		total += e.Weight

		if err := offer(v); err != nil {
			return nil, 0, err
		}
	}

	// 5. Connectivity.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
