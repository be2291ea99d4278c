package dscheck

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlathds/builder"
	"github.com/katalvlaran/lvlathds/core"
	"github.com/katalvlaran/lvlathds/dijkstra"
	"github.com/katalvlaran/lvlathds/prim_kruskal"
)

// randomGraph returns a graph on n vertices: a random recursive tree (only
// when connected is set) overlaid with about 3n random edges. Weights are
// integers so sums compare exactly.
func randomGraph(t *trial, n int, connected bool, gopts ...core.GraphOption) (*core.Graph, error) {
	bopts := []builder.BuilderOption{builder.WithRand(t.rng), builder.WithIntWeight(0, 1000)}
	p := min(1, 6/float64(n))

	overlay, err := builder.BuildGraph(gopts, bopts, builder.RandomSparse(n, p))
	if err != nil || !connected {
		return overlay, err
	}
	g, err := builder.BuildGraph(gopts, bopts, builder.RandomTree(n))
	if err != nil {
		return nil, err
	}
	for _, e := range overlay.Edges() {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func mstTrial(r *runner, t *trial) error {
	// Every other trial may be disconnected; all methods must then agree on
	// ErrDisconnected.
	g, err := randomGraph(t, r.in.N, t.index%2 == 0)
	if err != nil {
		return err
	}

	_, want, wantErr := prim_kruskal.Kruskal(g)
	if wantErr != nil && !errors.Is(wantErr, prim_kruskal.ErrDisconnected) {
		return wantErr
	}
	agree := func(total float64, err error) int {
		if !errors.Is(err, wantErr) {
			return 1
		}
		if err == nil && total != want {
			return 1
		}
		return 0
	}

	_, total, err := prim_kruskal.Kruskal(g, prim_kruskal.WithComponentWeights())
	t.record("kruskal/value", agree(total, err))

	for _, impl := range r.heaps {
		root := t.rng.Intn(g.VertexCount())
		_, total, err := prim_kruskal.Prim(g, prim_kruskal.WithRoot(root), prim_kruskal.WithHeapImpl(impl))
		t.record("prim/"+impl.String(), agree(total, err))
	}
	return nil
}

// bellmanFord is the O(VE) shortest-path reference.
func bellmanFord(g *core.Graph, src int) []float64 {
	dist := make([]float64, g.VertexCount())
	for v := range dist {
		dist[v] = math.Inf(1)
	}
	dist[src] = 0
	for range dist {
		changed := false
		for _, e := range g.Edges() {
			if d := dist[e.From] + e.Weight; d < dist[e.To] {
				dist[e.To], changed = d, true
			}
			if d := dist[e.To] + e.Weight; !g.Directed() && d < dist[e.From] {
				dist[e.From], changed = d, true
			}
		}
		if !changed {
			break
		}
	}
	return dist
}

func ssspTrial(r *runner, t *trial) error {
	directed := t.index%2 == 1
	var gopts []core.GraphOption
	if directed {
		gopts = append(gopts, core.WithDirected())
	}
	g, err := randomGraph(t, r.in.N, false, gopts...)
	if err != nil {
		return err
	}

	src := t.rng.Intn(g.VertexCount())
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithReturnPath())
	if err != nil {
		return err
	}

	bad := diffCount(bellmanFord(g, src), dist)
	for v := range prev {
		if !math.IsInf(dist[v], 1) && dijkstra.PathTo(prev, src, v) == nil {
			bad++
		}
	}
	t.record("dijkstra/index", bad)
	return nil
}
