package unionfind

// ValueUnionFind is a disjoint-set forest whose elements carry an additive
// value. delta[x] stores x's contribution relative to its parent chain: the
// value of x is the sum of delta along the path from x to its root,
// root included. Path compression rewrites deltas so that every sum is
// preserved exactly.
type ValueUnionFind struct {
	parent []int32
	rank   []uint8
	delta  []float64
}

var _ Interface = (*ValueUnionFind)(nil)

// NewValue creates a ValueUnionFind configured by opts. Pre-created
// elements start with value 0.
func NewValue(opts ...Option) *ValueUnionFind {
	cfg := resolve(opts)
	uf := &ValueUnionFind{
		parent: make([]int32, 0, cfg.Capacity),
		rank:   make([]uint8, 0, cfg.Capacity),
		delta:  make([]float64, 0, cfg.Capacity),
	}
	for i := 0; i < cfg.Size; i++ {
		uf.Make()
	}

	return uf
}

// Make creates a new singleton element with value 0.
func (uf *ValueUnionFind) Make() int {
	return uf.MakeWithValue(0)
}

// MakeWithValue creates a new singleton element with the given value.
func (uf *ValueUnionFind) MakeWithValue(v float64) int {
	id := len(uf.parent)
	uf.parent = append(uf.parent, root)
	uf.rank = append(uf.rank, 0)
	uf.delta = append(uf.delta, v)

	return id
}

// Find returns the representative of x's set and compresses the path.
//
// Let x = p0, p1, ..., pk be the chain below the root r. After compression
// every pi points at r and delta[pi] holds the sum of the old deltas of
// pi..pk, so value(pi) = delta[pi] + delta[r] is unchanged.
func (uf *ValueUnionFind) Find(x int) int {
	checkID(x, len(uf.parent))

	// 1) Locate the root and the total delta of the chain below it.
	var sum float64
	r := int32(x)
	for uf.parent[r] != root {
		sum += uf.delta[r]
		r = uf.parent[r]
	}

	// 2) Re-point the chain, peeling one old delta per step.
	for p := int32(x); p != r; {
		next := uf.parent[p]
		old := uf.delta[p]
		uf.delta[p] = sum
		sum -= old
		uf.parent[p] = r
		p = next
	}

	return int(r)
}

// Union merges the sets of a and b and returns the surviving root.
// The absorbed root's delta is rebased onto the surviving root so that no
// member's value changes.
func (uf *ValueUnionFind) Union(a, b int) int {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return ra
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	} else if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
	uf.parent[rb] = int32(ra)
	uf.delta[rb] -= uf.delta[ra]

	return ra
}

// GetValue returns the aggregate value of x.
func (uf *ValueUnionFind) GetValue(x int) float64 {
	r := uf.Find(x)
	if r == x {
		return uf.delta[x]
	}
	// After Find, x hangs directly under r.
	return uf.delta[x] + uf.delta[r]
}

// AddValue adds v to the value of every member of x's set.
func (uf *ValueUnionFind) AddValue(x int, v float64) {
	uf.delta[uf.Find(x)] += v
}

// Size reports the number of elements created so far.
func (uf *ValueUnionFind) Size() int {
	return len(uf.parent)
}

// Clear removes all elements.
func (uf *ValueUnionFind) Clear() {
	uf.parent = uf.parent[:0]
	uf.rank = uf.rank[:0]
	uf.delta = uf.delta[:0]
}
