package unionfind

// UnionFind is an array-backed disjoint-set forest.
//
// parent[x] is the parent of x, or root (-1) when x is a representative.
// rank[x] is meaningful for representatives only.
type UnionFind struct {
	parent []int32
	rank   []uint8
}

var _ Interface = (*UnionFind)(nil)

// New creates a UnionFind configured by opts.
//
// Complexity: O(Size) time and space.
func New(opts ...Option) *UnionFind {
	cfg := resolve(opts)
	uf := &UnionFind{
		parent: make([]int32, 0, cfg.Capacity),
		rank:   make([]uint8, 0, cfg.Capacity),
	}
	for i := 0; i < cfg.Size; i++ {
		uf.Make()
	}

	return uf
}

// Make creates a new singleton element and returns its identifier.
func (uf *UnionFind) Make() int {
	id := len(uf.parent)
	uf.parent = append(uf.parent, root)
	uf.rank = append(uf.rank, 0)

	return id
}

// Find returns the representative of x's set.
// Every node on the path from x to the root is re-pointed at the root.
// Panics if x is out of range.
func (uf *UnionFind) Find(x int) int {
	checkID(x, len(uf.parent))

	// 1) Walk up to the root.
	r := int32(x)
	for uf.parent[r] != root {
		r = uf.parent[r]
	}

	// 2) Splice the whole path directly under r.
	for p := int32(x); p != r; {
		next := uf.parent[p]
		uf.parent[p] = r
		p = next
	}

	return int(r)
}

// Union merges the sets of a and b and returns the surviving root.
// The lower-rank root is attached under the higher-rank one; on a tie the
// root of a survives and its rank grows by one.
func (uf *UnionFind) Union(a, b int) int {
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

	return ra
}

// Size reports the number of elements created so far.
func (uf *UnionFind) Size() int {
	return len(uf.parent)
}

// Clear removes all elements; the next Make returns 0 again.
func (uf *UnionFind) Clear() {
	uf.parent = uf.parent[:0]
	uf.rank = uf.rank[:0]
}
