package dijkstra

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvlathds/core"
	"github.com/katalvlaran/lvlathds/heap"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must be a vertex of g (ErrVertexNotFound).
//  4. No edge may have a negative weight (ErrNegativeWeight).
//
// In a directed graph only edges leaving u are relaxed; in an undirected
// graph every incident edge is.
func Dijkstra(g *core.Graph, opts ...Option) ([]float64, []int, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate.
	if cfg.Source == noSource {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.VertexCount()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 3) Pre-scan for negative weights.
	for id, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d (%d→%d) weight=%g", ErrNegativeWeight, id, e.From, e.To, e.Weight)
		}
	}

	// 4) State.
	r := &runner{
		g:    g,
		cfg:  cfg,
		dist: make([]float64, n),
		pq:   heap.NewIndexPairing[float64](n, heap.Natural[float64]()),
	}
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
		for v := range r.prev {
			r.prev[v] = -1
		}
	}

	// 5) Run.
	if err := r.run(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g    *core.Graph
	cfg  Options
	dist []float64
	prev []int
	pq   *heap.IndexPairing[float64]
}

// run extracts vertices in distance order until the heap drains. Only
// vertices within MaxDistance are ever queued, so every extraction is final.
func (r *runner) run() error {
	r.dist[r.cfg.Source] = 0
	if err := r.pq.Insert(r.cfg.Source, 0); err != nil {
		return err
	}

	for !r.pq.IsEmpty() {
		u, err := r.pq.ExtractMin()
		if err != nil {
			return err
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax offers every edge out of u.
func (r *runner) relax(u int) error {
	ids, err := r.g.OutEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: edges of %d: %w", u, err)
	}

	for _, id := range ids {
		e, err := r.g.Edge(id)
		if err != nil {
			return fmt.Errorf("dijkstra: edge %d: %w", id, err)
		}
		if e.Weight >= r.cfg.InfEdgeThreshold {
			continue
		}
		v := e.Other(u)

		nd := r.dist[u] + e.Weight
		if nd > r.cfg.MaxDistance || nd >= r.dist[v] {
			continue
		}

		// Strictly shorter: v is either fresh or still queued.
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		if r.pq.Contains(v) {
			err = r.pq.DecreaseKey(v, nd)
		} else {
			err = r.pq.Insert(v, nd)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// PathTo rebuilds the vertex sequence from the source to target using the
// predecessor slice returned with WithReturnPath. It returns nil when target
// is out of range or unreachable (prev[target] == -1 and target is not the
// source).
func PathTo(prev []int, source, target int) []int {
	if target < 0 || target >= len(prev) {
		return nil
	}
	var path []int
	for v := target; v != -1; v = prev[v] {
		path = append(path, v)
		if v == source {
			break
		}
	}
	if path[len(path)-1] != source {
		return nil
	}
	slices.Reverse(path)
	return path
}
