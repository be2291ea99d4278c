package lca

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlathds/rmq"
)

// Sentinel errors for LCA build and query.
var (
	// ErrBadParent indicates a parent array that does not describe a forest.
	ErrBadParent = errors.New("lca: parent array is not a forest")

	// ErrVertexOutOfRange indicates a query vertex outside [0, n).
	ErrVertexOutOfRange = errors.New("lca: vertex out of range")

	// ErrDifferentTrees indicates a query for vertices without a common ancestor.
	ErrDifferentTrees = errors.New("lca: vertices are in different trees")
)

// noParent marks a root in the parent array.
const noParent = -1

// LCA is a static lowest-common-ancestor index.
type LCA struct {
	n     int
	tour  []int32 // Euler tour, vertex n is the virtual super-root
	depth []int32 // depth along the tour; the super-root has depth 0
	first []int32 // first tour position of every vertex
	rmq   *rmq.PlusMinusOne
}

// New builds the index for the forest described by parent.
func New(parent []int) (*LCA, error) {
	n := len(parent)
	superRoot := int32(n)

	// 1) Children lists in CSR form; roots hang below the super-root.
	start := make([]int32, n+2)
	for v, p := range parent {
		switch {
		case p == noParent:
			start[n]++
		case p < 0 || p >= n || p == v:
			return nil, fmt.Errorf("%w: parent[%d] = %d", ErrBadParent, v, p)
		default:
			start[p]++
		}
	}
	for v, acc := 0, int32(0); v <= n+1; v++ {
		start[v], acc = acc, acc+start[v]
	}
	children := make([]int32, n)
	next := make([]int32, n+1)
	copy(next, start)
	for v, p := range parent {
		if p == noParent {
			p = n
		}
		children[next[p]] = int32(v)
		next[p]++
	}

	// 2) Iterative Euler tour from the super-root.
	l := &LCA{
		n:     n,
		tour:  make([]int32, 0, 2*n+1),
		depth: make([]int32, 0, 2*n+1),
		first: make([]int32, n+1),
	}
	for v := range l.first {
		l.first[v] = -1
	}
	copy(next, start)
	stack := []int32{superRoot}
	l.visit(superRoot, 0)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		if next[v] < start[v+1] {
			c := children[next[v]]
			next[v]++
			l.visit(c, int32(len(stack)))
			stack = append(stack, c)
			continue
		}
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			l.tour = append(l.tour, stack[len(stack)-1])
			l.depth = append(l.depth, int32(len(stack)-1))
		}
	}

	// 3) Vertices on a cycle are never reached from a root.
	for v := 0; v < n; v++ {
		if l.first[v] < 0 {
			return nil, fmt.Errorf("%w: vertex %d lies on a cycle", ErrBadParent, v)
		}
	}

	r, err := rmq.NewPlusMinusOne(func(i, j int) int {
		return int(l.depth[i] - l.depth[j])
	}, len(l.tour))
	if err != nil {
		return nil, err
	}
	l.rmq = r

	return l, nil
}

func (l *LCA) visit(v, d int32) {
	l.first[v] = int32(len(l.tour))
	l.tour = append(l.tour, v)
	l.depth = append(l.depth, d)
}

// Len returns the number of vertices.
func (l *LCA) Len() int { return l.n }

// Depth returns the number of edges between v and its root.
func (l *LCA) Depth(v int) (int, error) {
	if err := l.check(v); err != nil {
		return 0, err
	}
	return int(l.depth[l.first[v]]) - 1, nil
}

// Query returns the lowest common ancestor of u and v.
func (l *LCA) Query(u, v int) (int, error) {
	if err := l.check(u); err != nil {
		return 0, err
	}
	if err := l.check(v); err != nil {
		return 0, err
	}
	i, j := int(l.first[u]), int(l.first[v])
	if i > j {
		i, j = j, i
	}
	m, err := l.rmq.RangeMin(i, j)
	if err != nil {
		return 0, err
	}
	if a := int(l.tour[m]); a != l.n {
		return a, nil
	}

	return 0, fmt.Errorf("%w: %d and %d", ErrDifferentTrees, u, v)
}

func (l *LCA) check(v int) error {
	if v < 0 || v >= l.n {
		return fmt.Errorf("%w: %d (n=%d)", ErrVertexOutOfRange, v, l.n)
	}
	return nil
}
