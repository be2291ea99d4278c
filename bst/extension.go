package bst

import "github.com/katalvlaran/lvlathds/heap"

// Extension maintains a per-node aggregate of a RedBlack tree. The tree calls
// the hooks at its mutation points; the aggregate lives in a side table
// indexed by the node's slot, so the tree itself never knows what is tracked.
//
// The set of extensions is closed: SizeExtension, MinExtension, MaxExtension.
type Extension[K, V any] interface {
	bind(t *RedBlack[K, V]) error

	// Side-table management. Slots are dense: [0, tree.Size()).
	push(n *node[K, V]) // n.idx == new last slot; initialize it
	move(from, to int)  // copy slot from into slot to
	pop()               // drop the last slot
	reset()             // drop every slot

	afterInsert(n *node[K, V])
	beforeRemove(n *node[K, V])
	beforeSwap(a, b *node[K, V])
	beforeRotateLeft(n *node[K, V])
	beforeRotateRight(n *node[K, V])
}

// extBase binds an extension to a single tree.
type extBase[K, V any] struct {
	tree *RedBlack[K, V]
}

func (b *extBase[K, V]) bind(t *RedBlack[K, V]) error {
	if b.tree != nil {
		return ErrExtensionBound
	}
	b.tree = t

	return nil
}

func (b *extBase[K, V]) node(ref heap.Ref[K, V]) (*node[K, V], error) {
	if b.tree == nil {
		return nil, heap.ErrForeignRef
	}

	return resolve(b.tree.root, ref)
}

// SizeExtension tracks the number of nodes in every subtree.
type SizeExtension[K, V any] struct {
	extBase[K, V]
	data []int
}

// NewSizeExtension returns an unbound subtree-size extension.
func NewSizeExtension[K, V any]() *SizeExtension[K, V] {
	return &SizeExtension[K, V]{}
}

// SubtreeSize returns the number of nodes in the subtree rooted at ref.
func (e *SizeExtension[K, V]) SubtreeSize(ref heap.Ref[K, V]) (int, error) {
	n, err := e.node(ref)
	if err != nil {
		return 0, err
	}

	return e.data[n.idx], nil
}

func (e *SizeExtension[K, V]) size(n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return e.data[n.idx]
}

func (e *SizeExtension[K, V]) push(*node[K, V]) { e.data = append(e.data, 1) }
func (e *SizeExtension[K, V]) move(from, to int) { e.data[to] = e.data[from] }
func (e *SizeExtension[K, V]) pop()              { e.data = e.data[:len(e.data)-1] }
func (e *SizeExtension[K, V]) reset()            { e.data = nil }

func (e *SizeExtension[K, V]) afterInsert(n *node[K, V]) {
	for p := n.parent; p != nil; p = p.parent {
		e.data[p.idx]++
	}
}

func (e *SizeExtension[K, V]) beforeRemove(n *node[K, V]) {
	for p := n.parent; p != nil; p = p.parent {
		e.data[p.idx]--
	}
}

func (e *SizeExtension[K, V]) beforeSwap(a, b *node[K, V]) {
	e.data[a.idx], e.data[b.idx] = e.data[b.idx], e.data[a.idx]
}

// n loses its right child c and gains c's left subtree; c becomes the parent.
func (e *SizeExtension[K, V]) beforeRotateLeft(n *node[K, V]) {
	c := n.right
	cs, gs := e.data[c.idx], e.size(c.left)
	e.data[n.idx] = e.data[n.idx] - cs + gs
	e.data[c.idx] = cs - gs + e.data[n.idx]
}

func (e *SizeExtension[K, V]) beforeRotateRight(n *node[K, V]) {
	c := n.left
	cs, gs := e.data[c.idx], e.size(c.right)
	e.data[n.idx] = e.data[n.idx] - cs + gs
	e.data[c.idx] = cs - gs + e.data[n.idx]
}

// extremeExtension tracks, for every subtree, its leftmost (min) or
// rightmost (max) node. The max variant is the mirror image of the min one:
// every left/right access goes through the near/far accessors.
type extremeExtension[K, V any] struct {
	extBase[K, V]
	data []*node[K, V]
	max  bool
}

// MinExtension tracks the minimal node of every subtree.
type MinExtension[K, V any] struct{ extremeExtension[K, V] }

// MaxExtension tracks the maximal node of every subtree.
type MaxExtension[K, V any] struct{ extremeExtension[K, V] }

// NewMinExtension returns an unbound subtree-minimum extension.
func NewMinExtension[K, V any]() *MinExtension[K, V] {
	return &MinExtension[K, V]{}
}

// NewMaxExtension returns an unbound subtree-maximum extension.
func NewMaxExtension[K, V any]() *MaxExtension[K, V] {
	return &MaxExtension[K, V]{extremeExtension[K, V]{max: true}}
}

// SubtreeMin returns the minimal element of the subtree rooted at ref.
func (e *MinExtension[K, V]) SubtreeMin(ref heap.Ref[K, V]) (heap.Ref[K, V], error) {
	return e.get(ref)
}

// SubtreeMax returns the maximal element of the subtree rooted at ref.
func (e *MaxExtension[K, V]) SubtreeMax(ref heap.Ref[K, V]) (heap.Ref[K, V], error) {
	return e.get(ref)
}

func (e *extremeExtension[K, V]) get(ref heap.Ref[K, V]) (heap.Ref[K, V], error) {
	n, err := e.node(ref)
	if err != nil {
		return nil, err
	}

	return e.data[n.idx], nil
}

// near is the child on the extreme side: left for min, right for max.
func (e *extremeExtension[K, V]) near(n *node[K, V]) *node[K, V] {
	if e.max {
		return n.right
	}
	return n.left
}

func (e *extremeExtension[K, V]) far(n *node[K, V]) *node[K, V] {
	if e.max {
		return n.left
	}
	return n.right
}

// isNear reports whether p is on the extreme side of its parent.
func (e *extremeExtension[K, V]) isNear(p *node[K, V]) bool {
	return p.parent != nil && e.near(p.parent) == p
}

// propagate sets the extreme of every ancestor reached through near links from p.
func (e *extremeExtension[K, V]) propagate(p, ext *node[K, V]) {
	for ; e.isNear(p); p = p.parent {
		e.data[p.parent.idx] = ext
	}
}

func (e *extremeExtension[K, V]) push(n *node[K, V]) { e.data = append(e.data, n) }
func (e *extremeExtension[K, V]) move(from, to int) { e.data[to] = e.data[from] }
func (e *extremeExtension[K, V]) reset()            { e.data = nil }

func (e *extremeExtension[K, V]) pop() {
	e.data[len(e.data)-1] = nil
	e.data = e.data[:len(e.data)-1]
}

func (e *extremeExtension[K, V]) afterInsert(n *node[K, V]) {
	e.propagate(n, n)
}

func (e *extremeExtension[K, V]) beforeRemove(n *node[K, V]) {
	// n has at most one child here.
	var ext *node[K, V]
	switch {
	case e.near(n) != nil:
		ext = e.data[e.near(n).idx]
	case e.far(n) != nil:
		ext = e.data[e.far(n).idx]
	default:
		ext = n.parent
	}
	e.propagate(n, ext)
}

func (e *extremeExtension[K, V]) beforeSwap(a, b *node[K, V]) {
	if e.data[b.idx] == a {
		a, b = b, a
	}
	if e.data[a.idx] == b {
		// a is an ancestor of b and b is a's extreme: b inherits a's role.
		e.propagate(b, a)
		e.data[b.idx] = a
		return
	}

	var aData, bData *node[K, V]
	if e.near(a) != nil {
		bData = e.data[a.idx]
	} else {
		e.propagate(a, b)
		bData = b
	}
	if e.near(b) != nil {
		aData = e.data[b.idx]
	} else {
		e.propagate(b, a)
		aData = a
	}
	e.data[a.idx] = aData
	e.data[b.idx] = bData
}

// Rotating n toward the extreme side: n's near child c becomes its parent
// and inherits n's extreme. Rotating away: n takes over c's inner subtree.
func (e *extremeExtension[K, V]) beforeRotateLeft(n *node[K, V]) {
	if e.max {
		e.rotateAway(n, n.right.left)
	} else {
		e.data[n.right.idx] = e.data[n.idx]
	}
}

func (e *extremeExtension[K, V]) beforeRotateRight(n *node[K, V]) {
	if e.max {
		e.data[n.left.idx] = e.data[n.idx]
	} else {
		e.rotateAway(n, n.left.right)
	}
}

func (e *extremeExtension[K, V]) rotateAway(n, inner *node[K, V]) {
	if inner != nil {
		e.data[n.idx] = e.data[inner.idx]
	} else {
		e.data[n.idx] = n
	}
}
