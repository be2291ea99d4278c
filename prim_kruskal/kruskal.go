package prim_kruskal

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvlathds/builder"
	"github.com/katalvlaran/lvlathds/core"
	"github.com/katalvlaran/lvlathds/unionfind"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
//
// Error Conditions:
//   - ErrInvalidGraph  : if graph is nil or graph.Directed() == true.
//   - ErrDisconnected  : if |V| == 0 or |V| > 1 but graph is not fully connected.
//
// Steps:
//  1. Validate the graph; |V|==1 → trivial MST (empty, weight=0).
//  2. Collect all edges in id order, skip self-loops.
//  3. Stable sort by ascending Weight (ties keep edge id order).
//  4. Create one union-find element per vertex.
//  5. Accept (u,v) when find(u) != find(v); stop at |V|-1 edges.
//  6. Fewer than |V|-1 accepted edges → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	cfg := resolve(opts)

	// 1. Validate.
	n, err := validate(graph)
	if err != nil {
		return nil, 0, err
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Collect edges, skipping self-loops.
	edges := make([]core.Edge, 0, graph.EdgeCount())
	for _, e := range graph.Edges() {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 3. Sort by weight.
	slices.SortStableFunc(edges, func(a, b core.Edge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	// 4. Union-find over vertex ids.
	bopts := []builder.BuilderOption{builder.WithExpectedSize(n)}
	if cfg.Values {
		bopts = append(bopts, builder.WithValues())
	}
	uf := builder.NewUnionFind(bopts...)
	for i := 0; i < n; i++ {
		uf.Make()
	}
	weights, _ := uf.(*unionfind.ValueUnionFind)

	// 5. Scan.
	var (
		mst   = make([]core.Edge, 0, n-1)
		total float64
	)
	for _, e := range edges {
		ru, rv := uf.Find(e.From), uf.Find(e.To)
		if ru == rv {
			continue
		}
		if weights != nil {
			// Every member of the merged component ends up with the sum.
			wu, wv := weights.GetValue(ru), weights.GetValue(rv)
			weights.AddValue(ru, wv+e.Weight)
			weights.AddValue(rv, wu+e.Weight)
		}
		uf.Union(ru, rv)
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == n-1 {
			break
		}
	}

	// 6. Connectivity.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}
	if weights != nil {
		total = weights.GetValue(0)
	}

	return mst, total, nil
}
