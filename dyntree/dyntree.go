package dyntree

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlathds/internal/owner"
)

// Tree is a forest of weighted rooted trees.
type Tree struct {
	rootWeight float64
	eps        float64
	exts       []Extension
	tok        *owner.Token
	next       int
}

// New creates an empty forest configured by opts.
// Panics if an extension is already bound to another tree, or if neither
// WithWeightLimit nor WithIntWeights is given.
func New(opts ...Option) *Tree {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.WeightLimit == 0 {
		if !cfg.IntWeights {
			panic(ErrNoWeightLimit.Error())
		}
		cfg.WeightLimit = DefaultIntWeightLimit
	}
	t := &Tree{
		rootWeight: cfg.WeightLimit,
		eps:        cfg.WeightLimit * 1e-9,
		tok:        owner.New(),
	}
	if cfg.IntWeights {
		t.eps = 0
	}
	for _, e := range cfg.Extensions {
		if err := e.bind(t); err != nil {
			panic(err.Error())
		}
		t.exts = append(t.exts, e)
	}

	return t
}

// WeightLimit returns the configured weight limit.
func (t *Tree) WeightLimit() float64 { return t.rootWeight }

// Len returns the number of vertices created since the last Clear.
func (t *Tree) Len() int { return t.next }

// MakeTree creates a new singleton tree and returns its vertex.
func (t *Tree) MakeTree() *Vertex {
	v := &Vertex{weightDiff: t.rootWeight, idx: t.next, tok: t.tok}
	t.next++
	for _, e := range t.exts {
		e.initVertex(v)
	}

	return v
}

// FindRoot returns the root of v's tree.
func (t *Tree) FindRoot(v *Vertex) *Vertex {
	t.mustOwn(v)
	if v.userParent == nil {
		return v
	}
	t.access(v)

	// The forest root is the deepest-right node of the root path.
	r := v
	for r.right != nil {
		r = r.right
	}

	return t.access(r)
}

// FindMinEdge returns the minimum-weight edge on the path from v to its root.
// ok is false when v is a root. Ties resolve to the edge closest to the root.
func (t *Tree) FindMinEdge(v *Vertex) (e MinEdge, ok bool, err error) {
	t.mustOwn(v)
	if v.userParent == nil {
		return MinEdge{}, false, nil
	}
	t.access(v)

	// 1) v is the splay root; its right subtree holds its ancestors.
	w := v.weightDiff
	if v.right == nil || w < v.right.minWeight(w) {
		return MinEdge{Source: v, Weight: w}, true, nil
	}

	// 2) Descend toward the minimum, preferring the rootward (right) side on ties.
	for p := v.right; ; {
		w1 := p.weight(w)
		switch {
		case p.right != nil && p.minWeight(w) >= p.right.minWeight(w1)-t.eps:
			p, w = p.right, w1
		case math.Abs(w1-p.minWeight(w)) <= t.eps:
			t.splay(p)
			if p.userParent == nil {
				return MinEdge{}, false, fmt.Errorf("%w: minimum reached a root (limit %v)", ErrWeightLimit, t.rootWeight)
			}
			return MinEdge{Source: p, Weight: w1}, true, nil
		default:
			p, w = p.left, w1
		}
	}
}

// AddWeight adds w to the weight of every edge on the path from v to its root.
// It is a no-op when v is a root.
func (t *Tree) AddWeight(v *Vertex, w float64) {
	t.mustOwn(v)
	if v.userParent == nil {
		return
	}
	t.access(v)
	if v.right == nil {
		return
	}

	// Shift v's whole splay tree, then shift the deeper part (left) back.
	v.weightDiff += w
	if l := v.left; l != nil {
		l.weightDiff -= w

		nw := v.weightDiff
		minw := math.Min(nw, v.right.minWeight(nw))
		v.minWeightDiff = nw - math.Min(minw, l.minWeight(nw))
	}
}

// Link makes the root child a child of parent through an edge of weight w.
func (t *Tree) Link(child, parent *Vertex, w float64) error {
	if !t.owns(child) || !t.owns(parent) {
		return ErrForeignVertex
	}
	if t.FindRoot(child) != child {
		return fmt.Errorf("%w: %v", ErrNotRoot, child)
	}
	if t.FindRoot(parent) == child {
		return fmt.Errorf("%w: %v and %v", ErrSameTree, child, parent)
	}
	if w >= t.rootWeight/2 {
		return fmt.Errorf("%w: edge weight %v, limit %v", ErrWeightLimit, w, t.rootWeight)
	}

	t1 := t.access(child)
	t2 := t.access(parent)

	// t1 is a root, so it has no right (rootward) subtree. Its weight turns
	// from the root weight into w; the deeper part keeps its absolute weights.
	old := t1.weightDiff
	t1.weightDiff = w
	t1.minWeightDiff = 0
	if l := t1.left; l != nil {
		l.weightDiff += old - w
		t1.minWeightDiff = w - math.Min(w, l.minWeight(w))
	}

	t1.tparent = t2
	t1.userParent = t2
	for _, e := range t.exts {
		e.afterLink(t1)
	}

	return nil
}

// Cut removes the edge from v to its parent. It is a no-op when v is a root.
func (t *Tree) Cut(v *Vertex) {
	t.mustOwn(v)
	t.access(v)
	r := v.right
	if r == nil {
		return
	}
	for _, e := range t.exts {
		e.beforeCut(v)
	}

	// The rootward part becomes an independent splay tree with absolute weights;
	// v becomes a root and takes the root weight.
	orig := v.weightDiff
	r.weightDiff += orig
	v.weightDiff = t.rootWeight
	v.minWeightDiff = 0
	if l := v.left; l != nil {
		l.weightDiff += orig - v.weightDiff
		v.minWeightDiff = v.weightDiff - math.Min(v.weightDiff, l.minWeight(v.weightDiff))
	}

	r.parent = nil
	v.right = nil
	v.userParent = nil
}

// Clear forgets every vertex. Vertices created before Clear become foreign.
func (t *Tree) Clear() {
	t.tok = owner.New()
	t.next = 0
	for _, e := range t.exts {
		e.reset()
	}
}

func (t *Tree) owns(v *Vertex) bool {
	return v != nil && v.tok == t.tok
}

func (t *Tree) mustOwn(v *Vertex) {
	if !t.owns(v) {
		panic(fmt.Sprintf("%v: %v", ErrForeignVertex, v))
	}
}
