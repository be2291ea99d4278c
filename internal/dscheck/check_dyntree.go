package dscheck

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlathds/builder"
	"github.com/katalvlaran/lvlathds/dyntree"
)

// forest is the parent-array model of a dynamic forest.
type forest struct {
	parent []int
	weight []float64
}

func (f *forest) root(v int) int {
	for f.parent[v] != -1 {
		v = f.parent[v]
	}
	return v
}

// minEdge returns the source of the lightest edge on v's root path; ties
// go to the edge closest to the root.
func (f *forest) minEdge(v int) (int, bool) {
	best := -1
	for ; f.parent[v] != -1; v = f.parent[v] {
		if best == -1 || f.weight[v] <= f.weight[best] {
			best = v
		}
	}
	return best, best != -1
}

// onPath reports whether u is a non-root vertex on v's root path.
func (f *forest) onPath(v, u int) bool {
	for ; f.parent[v] != -1; v = f.parent[v] {
		if v == u {
			return true
		}
	}
	return false
}

func (f *forest) size(v int) int {
	r, n := f.root(v), 0
	for u := range f.parent {
		if f.root(u) == r {
			n++
		}
	}
	return n
}

func dynTreeTrial(r *runner, t *trial) error {
	if err := linkCutRun(r, t, "linkcut/int", true); err != nil {
		return err
	}
	return linkCutRun(r, t, "linkcut/float", false)
}

// floatWeightLimit bounds the float run: edge weights stay below 1e3 and
// path shifts add at most 1e2 each, so eps = 1e-2 separates all but
// near-identical weights.
const floatWeightLimit = 1e7

// linkCutRun scripts random operations against the forest model. With
// integer weights answers must match exactly; with float weights a minimum
// edge within eps of the model's minimum is accepted.
func linkCutRun(r *runner, t *trial, impl string, intWeights bool) error {
	n := min(r.in.N, 300)
	opts := []builder.BuilderOption{builder.WithTreeSize()}
	eps := 0.0
	if intWeights {
		opts = append(opts, builder.WithIntWeights())
	} else {
		opts = append(opts, builder.WithWeightLimit(floatWeightLimit))
		eps = floatWeightLimit * 1e-9
	}
	dt, sizes, err := builder.NewDynamicTree(opts...)
	if err != nil {
		return err
	}
	weight := func(bound int) float64 {
		if intWeights {
			return float64(t.rng.Intn(bound))
		}
		return t.rng.Float64() * float64(bound)
	}

	vs := make([]*dyntree.Vertex, n)
	f := &forest{parent: make([]int, n), weight: make([]float64, n)}
	for i := range vs {
		vs[i] = dt.MakeTree()
		vs[i].SetData(i)
		f.parent[i] = -1
	}
	index := func(v *dyntree.Vertex) int { return v.Data().(int) }

	bad := 0
	for step := 0; step < 10*n; step++ {
		a, b := t.rng.Intn(n), t.rng.Intn(n)
		switch t.rng.Intn(6) {
		case 0, 1:
			w := weight(1000)
			err := dt.Link(vs[a], vs[b], w)
			switch {
			case f.parent[a] != -1:
				if !errors.Is(err, dyntree.ErrNotRoot) {
					bad++
				}
			case f.root(b) == a:
				if !errors.Is(err, dyntree.ErrSameTree) {
					bad++
				}
			case err != nil:
				return err
			default:
				f.parent[a], f.weight[a] = b, w
			}
		case 2:
			dt.Cut(vs[a])
			f.parent[a] = -1
		case 3:
			d := weight(100)
			dt.AddWeight(vs[a], d)
			for v := a; f.parent[v] != -1; v = f.parent[v] {
				f.weight[v] += d
			}
		case 4:
			e, ok, err := dt.FindMinEdge(vs[a])
			if err != nil {
				return err
			}
			src, wantOK := f.minEdge(a)
			switch {
			case ok != wantOK:
				bad++
			case !ok:
			case intWeights:
				if index(e.Source) != src || e.Weight != f.weight[src] {
					bad++
				}
			default:
				got := index(e.Source)
				if !f.onPath(a, got) || math.Abs(f.weight[got]-f.weight[src]) > eps ||
					math.Abs(e.Weight-f.weight[src]) > eps {
					bad++
				}
			}
		default:
			if index(dt.FindRoot(vs[a])) != f.root(a) {
				bad++
			}
			if sizes.Size(vs[a]) != f.size(a) {
				bad++
			}
			if p := vs[a].Parent(); (p == nil) != (f.parent[a] == -1) || (p != nil && index(p) != f.parent[a]) {
				bad++
			}
		}
	}

	t.record(impl, bad)
	return nil
}
