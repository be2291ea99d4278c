package bst

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlathds/heap"
)

// Splay is a self-adjusting binary search tree. Every access (including
// lookups and neighbor queries) splays the touched node to the root, so the
// shape changes on reads. Each node tracks its subtree size, which makes
// split and meld cheap.
type Splay[K, V any] struct {
	cmp  heap.Comparator[K]
	root *node[K, V]
}

var _ Tree[int, struct{}] = (*Splay[int, struct{}])(nil)

// NewSplay creates an empty splay tree ordered by cmp. Panics if cmp is nil.
func NewSplay[K, V any](cmp heap.Comparator[K]) *Splay[K, V] {
	if cmp == nil {
		panic("bst: NewSplay: nil comparator")
	}

	return &Splay[K, V]{cmp: cmp}
}

// NewOrderedSplay creates a splay tree using the natural order of K.
func NewOrderedSplay[K constraints.Ordered, V any]() *Splay[K, V] {
	return NewSplay[K, V](heap.Natural[K]())
}

// Comparator returns the key order.
func (t *Splay[K, V]) Comparator() heap.Comparator[K] { return t.cmp }

// Size reports the number of elements in O(1).
func (t *Splay[K, V]) Size() int {
	if t.root == nil {
		return 0
	}
	return t.root.size
}

// IsEmpty reports whether the tree has no elements.
func (t *Splay[K, V]) IsEmpty() bool { return t.root == nil }

// Insert adds key with the zero value.
func (t *Splay[K, V]) Insert(key K) heap.Ref[K, V] {
	var zero V
	return t.InsertWithValue(key, zero)
}

// InsertWithValue adds key with value v; the new node becomes the root.
func (t *Splay[K, V]) InsertWithValue(key K, v V) heap.Ref[K, V] {
	n := newNode(key, v)
	t.insertNode(n)

	return n
}

// FindMin splays the minimum to the root and returns it.
func (t *Splay[K, V]) FindMin() (heap.Ref[K, V], error) {
	if t.root == nil {
		return nil, heap.ErrEmpty
	}

	return t.splay(subtreeMin(t.root)), nil
}

// FindMax splays the maximum to the root and returns it.
func (t *Splay[K, V]) FindMax() (heap.Ref[K, V], error) {
	if t.root == nil {
		return nil, heap.ErrEmpty
	}

	return t.splay(subtreeMax(t.root)), nil
}

// ExtractMin removes and returns the minimum.
func (t *Splay[K, V]) ExtractMin() (heap.Ref[K, V], error) {
	if t.root == nil {
		return nil, heap.ErrEmpty
	}
	n := subtreeMin(t.root)
	t.removeNode(n)
	n.linked = false

	return n, nil
}

// Remove deletes the element behind ref.
func (t *Splay[K, V]) Remove(ref heap.Ref[K, V]) error {
	n, err := resolve(t.root, ref)
	if err != nil {
		return err
	}
	t.removeNode(n)
	n.linked = false

	return nil
}

// DecreaseKey lowers ref's key by removing and reinserting the node.
func (t *Splay[K, V]) DecreaseKey(ref heap.Ref[K, V], key K) error {
	n, err := resolve(t.root, ref)
	if err != nil {
		return err
	}
	if t.cmp(key, n.key) > 0 {
		return fmt.Errorf("%w: %v > %v", heap.ErrKeyIncreased, key, n.key)
	}
	t.removeNode(n)
	n.key = key
	t.insertNode(n)

	return nil
}

// Find returns an element with key equivalent to key.
func (t *Splay[K, V]) Find(key K) (heap.Ref[K, V], error) {
	return t.access(findOrNeighbor(t.root, t.cmp, key, neighborNone))
}

// FindOrSmaller returns an element equal to key, else the greatest smaller.
func (t *Splay[K, V]) FindOrSmaller(key K) (heap.Ref[K, V], error) {
	return t.access(findOrNeighbor(t.root, t.cmp, key, neighborSmaller))
}

// FindOrGreater returns an element equal to key, else the smallest greater.
func (t *Splay[K, V]) FindOrGreater(key K) (heap.Ref[K, V], error) {
	return t.access(findOrNeighbor(t.root, t.cmp, key, neighborGreater))
}

// FindSmaller returns the greatest element strictly smaller than key.
func (t *Splay[K, V]) FindSmaller(key K) (heap.Ref[K, V], error) {
	return t.access(findSmaller(t.root, t.cmp, key))
}

// FindGreater returns the smallest element strictly greater than key.
func (t *Splay[K, V]) FindGreater(key K) (heap.Ref[K, V], error) {
	return t.access(findGreater(t.root, t.cmp, key))
}

// Predecessor returns the in-order predecessor of ref.
// Validating ref costs its depth, up to O(n) between splays; both ref and
// the result are splayed, so the bound stays amortized O(log n).
func (t *Splay[K, V]) Predecessor(ref heap.Ref[K, V]) (heap.Ref[K, V], error) {
	n, err := resolve(t.root, ref)
	if err != nil {
		return nil, err
	}
	// resolve walked n's depth; splaying n pays for that walk.
	t.splay(n)

	return t.access(predecessor(n))
}

// Successor returns the in-order successor of ref. Cost as for Predecessor.
func (t *Splay[K, V]) Successor(ref heap.Ref[K, V]) (heap.Ref[K, V], error) {
	n, err := resolve(t.root, ref)
	if err != nil {
		return nil, err
	}
	// resolve walked n's depth; splaying n pays for that walk.
	t.splay(n)

	return t.access(successor(n))
}

// SplitSmaller moves every element with key < key into a new tree.
func (t *Splay[K, V]) SplitSmaller(key K) (Tree[K, V], error) {
	return t.splitSmaller(key), nil
}

// SplitGreater moves every element with key > key into a new tree.
func (t *Splay[K, V]) SplitGreater(key K) (Tree[K, V], error) {
	return t.splitGreater(key), nil
}

// Split moves ref and every element after it into a new tree.
func (t *Splay[K, V]) Split(ref heap.Ref[K, V]) (Tree[K, V], error) {
	n, err := resolve(t.root, ref)
	if err != nil {
		return nil, err
	}

	return t.split(n), nil
}

// Meld moves every element of other into t.
//
// When the key ranges are disjoint the two trees are joined under one splayed
// extreme in amortized O(log n). Otherwise the parts of each range outside
// the overlap are split off, the overlapping elements of other are reinserted
// one by one (O(k log n) for k of them), and the parts are joined back.
func (t *Splay[K, V]) Meld(other heap.Referenceable[K, V]) error {
	h, ok := other.(*Splay[K, V])
	if !ok {
		return fmt.Errorf("%w: %T into %T", heap.ErrMeldMismatch, other, t)
	}
	if h == t {
		return heap.ErrMeldSelf
	}
	if h.root == nil {
		return nil
	}
	if t.root == nil {
		t.root, h.root = h.root, nil
		return nil
	}

	max1 := t.splay(subtreeMax(t.root)).key
	min2 := h.splay(subtreeMin(h.root)).key
	if t.cmp(max1, min2) <= 0 {
		t.root = join(t, h)
		h.root = nil
		return nil
	}
	min1 := t.splay(subtreeMin(t.root)).key
	max2 := h.splay(subtreeMax(h.root)).key
	if t.cmp(min1, max2) >= 0 {
		t.root = join(h, t)
		h.root = nil
		return nil
	}

	// 1) Cut off the parts of either tree lying outside the common range.
	var low, high *Splay[K, V]
	switch c := t.cmp(min1, min2); {
	case c < 0:
		low = t.splitSmaller(min2)
	case c > 0:
		low = h.splitSmaller(min1)
	}
	switch c := t.cmp(max1, max2); {
	case c < 0:
		high = h.splitGreater(max1)
	case c > 0:
		high = t.splitGreater(max2)
	}

	// 2) Reinsert what is left of h, peeling leaves in post-order.
	for n := h.root; n != nil; {
		for {
			for n.left != nil {
				n = n.left
			}
			if n.right == nil {
				break
			}
			n = n.right
		}
		parent := n.parent
		if parent != nil {
			if parent.right == n {
				parent.right = nil
			} else {
				parent.left = nil
			}
		}
		n.unlink()
		n.size = 1
		t.insertNode(n)
		n = parent
	}
	h.root = nil

	// 3) Join the outer parts back on either side.
	if low != nil && low.root != nil {
		t.root = join(low, t)
	}
	if high != nil && high.root != nil {
		t.root = join(t, high)
	}

	return nil
}

// Clear removes every element. Outstanding refs become invalid.
func (t *Splay[K, V]) Clear() {
	if t.root == nil {
		return
	}
	clearTree(t.root)
	t.root = nil
}

// All iterates the elements in key order without splaying.
func (t *Splay[K, V]) All() iter.Seq[heap.Ref[K, V]] {
	return inOrder(t.root)
}

func (t *Splay[K, V]) access(n *node[K, V]) (heap.Ref[K, V], error) {
	if n == nil {
		return nil, ErrNotFound
	}

	return t.splay(n), nil
}

func (t *Splay[K, V]) insertNode(n *node[K, V]) {
	if t.root == nil {
		t.root = n
		return
	}
	insertLeaf(t.root, t.cmp, n)
	for p := n.parent; p != nil; p = p.parent {
		p.size++
	}
	t.splay(n)
}

func (t *Splay[K, V]) removeNode(n *node[K, V]) {
	// 1) Two children: trade places with the successor.
	if n.left != nil && n.right != nil {
		s := successor(n)
		swapNodes(n, s)
		if t.root == n {
			t.root = s
		}
		n.size, s.size = s.size, n.size
	}

	// 2) Splice n out; its only child (if any) takes its place.
	child := n.right
	if n.left != nil {
		child = n.left
	}
	parent := n.parent
	switch {
	case parent == nil:
		t.root = child
	case parent.left == n:
		parent.left = child
	default:
		parent.right = child
	}
	if child != nil {
		child.parent = parent
	}
	for p := parent; p != nil; p = p.parent {
		p.size--
	}
	n.unlink()
	n.size = 1

	// 3) Splay the closest survivor.
	if child != nil {
		t.splay(child)
	} else if parent != nil {
		t.splay(parent)
	}
}

// splitSmaller detaches the elements with key < key.
func (t *Splay[K, V]) splitSmaller(key K) *Splay[K, V] {
	nt := &Splay[K, V]{cmp: t.cmp}
	pred := findSmaller(t.root, t.cmp, key)
	if pred == nil {
		return nt
	}
	t.splay(pred)

	// pred is the root; its right subtree holds every key >= key.
	t.root = pred.right
	if r := pred.right; r != nil {
		pred.size -= r.size
		r.parent = nil
		pred.right = nil
	}
	nt.root = pred

	return nt
}

func (t *Splay[K, V]) splitGreater(key K) *Splay[K, V] {
	succ := findGreater(t.root, t.cmp, key)
	if succ == nil {
		return &Splay[K, V]{cmp: t.cmp}
	}

	return t.split(succ)
}

// split keeps everything before n and returns a tree rooted at n.
func (t *Splay[K, V]) split(n *node[K, V]) *Splay[K, V] {
	t.splay(n)
	t.root = n.left
	if l := n.left; l != nil {
		n.size -= l.size
		l.parent = nil
		n.left = nil
	}

	return &Splay[K, V]{cmp: t.cmp, root: n}
}

// join concatenates t2 after t1, assuming every key of t1 is <= every key of
// t2, and returns the new root. Both trees must be non-empty.
func join[K, V any](t1, t2 *Splay[K, V]) *node[K, V] {
	n := t1.splay(subtreeMax(t1.root))
	n.right = t2.root
	t2.root.parent = n
	n.size += t2.root.size

	return n
}

// splay rotates n to the root with zig, zig-zig and zig-zag steps.
func (t *Splay[K, V]) splay(n *node[K, V]) *node[K, V] {
	for n.parent != nil {
		parent := n.parent
		switch {
		case parent.parent == nil:
			t.rotate(n) // zig
		case n.isLeftChild() == parent.isLeftChild():
			t.rotate(parent) // zig-zig
			t.rotate(n)
		default:
			t.rotate(n) // zig-zag
			t.rotate(n)
		}
	}
	t.root = n

	return n
}

// rotate lifts n above its parent, keeping subtree sizes exact.
func (t *Splay[K, V]) rotate(n *node[K, V]) {
	parent := n.parent
	grandparent := parent.parent

	old := parent.size
	if n.isLeftChild() {
		parent.size = old - n.size + sizeOf(n.right)
		parent.left = n.right
		if parent.left != nil {
			parent.left.parent = parent
		}
		n.right = parent
	} else {
		parent.size = old - n.size + sizeOf(n.left)
		parent.right = n.left
		if parent.right != nil {
			parent.right.parent = parent
		}
		n.left = parent
	}
	n.size = old

	n.parent = grandparent
	parent.parent = n
	if grandparent != nil {
		if grandparent.left == parent {
			grandparent.left = n
		} else {
			grandparent.right = n
		}
	}
}

func sizeOf[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.size
}
