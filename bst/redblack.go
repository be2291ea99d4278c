package bst

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlathds/heap"
)

// RedBlack is a red-black tree with O(log n) worst-case insert, remove and
// search. Rotations, insertions, removals and node swaps are announced to
// registered extensions, which keep per-node aggregates in side tables.
type RedBlack[K, V any] struct {
	cmp  heap.Comparator[K]
	root *node[K, V]
	size int

	exts  []Extension[K, V]
	nodes []*node[K, V] // slot -> node, only when extensions are registered
}

var _ Tree[int, struct{}] = (*RedBlack[int, struct{}])(nil)

// NewRedBlack creates an empty red-black tree ordered by cmp. Extensions
// are bound to the new tree and cannot be shared with another one.
// Panics if cmp is nil or an extension is already bound.
func NewRedBlack[K, V any](cmp heap.Comparator[K], exts ...Extension[K, V]) *RedBlack[K, V] {
	if cmp == nil {
		panic("bst: NewRedBlack: nil comparator")
	}
	t := &RedBlack[K, V]{cmp: cmp}
	for _, e := range exts {
		if err := e.bind(t); err != nil {
			panic(err.Error())
		}
		t.exts = append(t.exts, e)
	}

	return t
}

// NewOrderedRedBlack creates a red-black tree using the natural order of K.
func NewOrderedRedBlack[K constraints.Ordered, V any](exts ...Extension[K, V]) *RedBlack[K, V] {
	return NewRedBlack[K, V](heap.Natural[K](), exts...)
}

// Comparator returns the key order.
func (t *RedBlack[K, V]) Comparator() heap.Comparator[K] { return t.cmp }

// Size reports the number of elements.
func (t *RedBlack[K, V]) Size() int { return t.size }

// IsEmpty reports whether the tree has no elements.
func (t *RedBlack[K, V]) IsEmpty() bool { return t.root == nil }

// Insert adds key with the zero value.
func (t *RedBlack[K, V]) Insert(key K) heap.Ref[K, V] {
	var zero V
	return t.InsertWithValue(key, zero)
}

// InsertWithValue adds key with value v.
func (t *RedBlack[K, V]) InsertWithValue(key K, v V) heap.Ref[K, V] {
	n := newNode(key, v)
	t.insertNode(n)

	return n
}

// FindMin returns the leftmost element.
func (t *RedBlack[K, V]) FindMin() (heap.Ref[K, V], error) {
	if t.root == nil {
		return nil, heap.ErrEmpty
	}

	return subtreeMin(t.root), nil
}

// FindMax returns the rightmost element.
func (t *RedBlack[K, V]) FindMax() (heap.Ref[K, V], error) {
	if t.root == nil {
		return nil, heap.ErrEmpty
	}

	return subtreeMax(t.root), nil
}

// ExtractMin removes and returns the leftmost element.
func (t *RedBlack[K, V]) ExtractMin() (heap.Ref[K, V], error) {
	if t.root == nil {
		return nil, heap.ErrEmpty
	}
	n := subtreeMin(t.root)
	t.removeNode(n)
	n.linked = false

	return n, nil
}

// Remove deletes the element behind ref.
func (t *RedBlack[K, V]) Remove(ref heap.Ref[K, V]) error {
	n, err := resolve(t.root, ref)
	if err != nil {
		return err
	}
	t.removeNode(n)
	n.linked = false

	return nil
}

// DecreaseKey lowers ref's key. Red-black trees cannot reposition a node in
// place, so the node is removed and reinserted; the ref stays valid.
func (t *RedBlack[K, V]) DecreaseKey(ref heap.Ref[K, V], key K) error {
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
func (t *RedBlack[K, V]) Find(key K) (heap.Ref[K, V], error) {
	return found(findOrNeighbor(t.root, t.cmp, key, neighborNone))
}

// FindOrSmaller returns an element equal to key, else the greatest smaller.
func (t *RedBlack[K, V]) FindOrSmaller(key K) (heap.Ref[K, V], error) {
	return found(findOrNeighbor(t.root, t.cmp, key, neighborSmaller))
}

// FindOrGreater returns an element equal to key, else the smallest greater.
func (t *RedBlack[K, V]) FindOrGreater(key K) (heap.Ref[K, V], error) {
	return found(findOrNeighbor(t.root, t.cmp, key, neighborGreater))
}

// FindSmaller returns the greatest element strictly smaller than key.
func (t *RedBlack[K, V]) FindSmaller(key K) (heap.Ref[K, V], error) {
	return found(findSmaller(t.root, t.cmp, key))
}

// FindGreater returns the smallest element strictly greater than key.
func (t *RedBlack[K, V]) FindGreater(key K) (heap.Ref[K, V], error) {
	return found(findGreater(t.root, t.cmp, key))
}

// Predecessor returns the in-order predecessor of ref.
func (t *RedBlack[K, V]) Predecessor(ref heap.Ref[K, V]) (heap.Ref[K, V], error) {
	n, err := resolve(t.root, ref)
	if err != nil {
		return nil, err
	}

	return found(predecessor(n))
}

// Successor returns the in-order successor of ref.
func (t *RedBlack[K, V]) Successor(ref heap.Ref[K, V]) (heap.Ref[K, V], error) {
	n, err := resolve(t.root, ref)
	if err != nil {
		return nil, err
	}

	return found(successor(n))
}

// SplitSmaller is not supported: without subtree sizes there is no cheap
// way to split a red-black tree.
func (t *RedBlack[K, V]) SplitSmaller(K) (Tree[K, V], error) { return nil, ErrUnsupported }

// SplitGreater is not supported.
func (t *RedBlack[K, V]) SplitGreater(K) (Tree[K, V], error) { return nil, ErrUnsupported }

// Split is not supported.
func (t *RedBlack[K, V]) Split(heap.Ref[K, V]) (Tree[K, V], error) { return nil, ErrUnsupported }

// Meld moves every element of other into t. When t is empty (and neither tree
// carries extensions) other's root is adopted in O(1); otherwise other's nodes
// are reinserted one by one in O(k log n). Node identities are kept, so refs
// obtained from other remain valid against t.
func (t *RedBlack[K, V]) Meld(other heap.Referenceable[K, V]) error {
	o, ok := other.(*RedBlack[K, V])
	if !ok {
		return fmt.Errorf("%w: %T into %T", heap.ErrMeldMismatch, other, t)
	}
	if o == t {
		return heap.ErrMeldSelf
	}
	if o.root == nil {
		return nil
	}

	if t.root == nil && len(t.exts) == 0 && len(o.exts) == 0 {
		t.root, t.size = o.root, o.size
	} else {
		// Peel leaves off other in post-order and insert them here.
		for n := o.root; ; {
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
			n.idx = -1
			t.insertNode(n)
			if parent == nil {
				break
			}
			n = parent
		}
	}

	o.root, o.size, o.nodes = nil, 0, nil
	for _, e := range o.exts {
		e.reset()
	}

	return nil
}

// Clear removes every element. Outstanding refs become invalid.
func (t *RedBlack[K, V]) Clear() {
	if t.root == nil {
		return
	}
	clearTree(t.root)
	t.root, t.size, t.nodes = nil, 0, nil
	for _, e := range t.exts {
		e.reset()
	}
}

// All iterates the elements in key order.
func (t *RedBlack[K, V]) All() iter.Seq[heap.Ref[K, V]] {
	return inOrder(t.root)
}

// insertNode links a detached node into the tree and restores balance.
func (t *RedBlack[K, V]) insertNode(n *node[K, V]) {
	// 1) Give the node a side-table slot when extensions are present.
	if len(t.exts) > 0 {
		n.idx = len(t.nodes)
		t.nodes = append(t.nodes, n)
		for _, e := range t.exts {
			e.push(n)
		}
	}

	// 2) Plain BST insert, then recolor/rotate upward.
	if t.root == nil {
		n.red = false
		t.root = n
		t.afterInsert(n)
	} else {
		insertLeaf(t.root, t.cmp, n)
		t.afterInsert(n)
		t.fixAfterInsert(n)
	}
	t.size++
}

func (t *RedBlack[K, V]) fixAfterInsert(n *node[K, V]) {
	parent := n.parent
	n.red = true

	for {
		// Case 1: black parent, nothing is violated.
		if !parent.red {
			return
		}
		// Case 4: red root parent, paint it black.
		if parent == t.root {
			parent.red = false
			return
		}

		grandparent := parent.parent
		uncle := grandparent.left
		if parent == grandparent.left {
			uncle = grandparent.right
		}

		if uncle == nil || !uncle.red {
			// Case 5: inner grandchild, rotate it to the outside first.
			if n == parent.left && parent == grandparent.right {
				t.rotateRight(parent)
				n = parent
				parent = grandparent.right
			} else if n == parent.right && parent == grandparent.left {
				t.rotateLeft(parent)
				n = parent
				parent = grandparent.left
			}
			// Case 6: outer grandchild.
			if parent == grandparent.left {
				t.rotateRight(grandparent)
			} else {
				t.rotateLeft(grandparent)
			}
			parent.red = false
			grandparent.red = true
			return
		}

		// Case 2: red parent and red uncle, push the violation up.
		parent.red, uncle.red = false, false
		grandparent.red = true
		n = grandparent
		if parent = n.parent; parent == nil {
			// Case 3: n is a red root; the tree stays valid.
			return
		}
	}
}

// removeNode unlinks n from the tree and restores balance. n keeps its key,
// value and identity and may be reinserted.
func (t *RedBlack[K, V]) removeNode(n *node[K, V]) {
	defer t.release(n)

	// Lone root.
	if n == t.root && n.left == nil && n.right == nil {
		t.detach(n, nil)
		return
	}

	// Two children: trade places with the successor, which has at most one.
	if n.left != nil && n.right != nil {
		t.swap(n, successor(n))
	}
	parent := n.parent

	// Red node: it is a leaf, just drop it.
	if n.red {
		t.detach(n, nil)
		return
	}

	// Black node with a single (red) child: the child takes its place, painted black.
	if n.left != nil || n.right != nil {
		child := n.left
		if child == nil {
			child = n.right
		}
		child.red = false
		t.detach(n, child)
		return
	}

	// Black leaf: removing it shortens one side of parent.
	leftIsShort := n == parent.left
	t.detach(n, nil)
	t.fixAfterRemove(parent, leftIsShort)
}

// detach replaces n by replace under n's parent.
func (t *RedBlack[K, V]) detach(n, replace *node[K, V]) {
	t.beforeRemove(n)
	parent := n.parent
	switch {
	case parent == nil:
		t.root = replace
	case n == parent.left:
		parent.left = replace
	default:
		parent.right = replace
	}
	if replace != nil {
		replace.parent = parent
	}
	n.unlink()
	n.red = false
	t.size--
}

// fixAfterRemove restores the black height after the side of parent given by
// leftIsShort lost one black node.
func (t *RedBlack[K, V]) fixAfterRemove(parent *node[K, V], leftIsShort bool) {
	for {
		var sibling, distant, near *node[K, V]
		if leftIsShort {
			sibling = parent.right
			distant, near = sibling.right, sibling.left
		} else {
			sibling = parent.left
			distant, near = sibling.left, sibling.right
		}

		// Case 3: red sibling, rotate so the sibling becomes black.
		if sibling.red {
			t.rotate(parent, leftIsShort)
			parent.red = true
			sibling.red = false

			sibling = near
			if leftIsShort {
				distant, near = sibling.right, sibling.left
			} else {
				distant, near = sibling.left, sibling.right
			}
		}

		// Case 6: black sibling, red distant nephew.
		if distant != nil && distant.red {
			t.rotate(parent, leftIsShort)
			sibling.red = parent.red
			parent.red = false
			distant.red = false
			return
		}

		// Case 5: black sibling, red close nephew.
		if near != nil && near.red {
			t.rotate(sibling, !leftIsShort)
			sibling.red = true
			near.red = false
			t.rotate(parent, leftIsShort)
			near.red = parent.red
			parent.red = false
			sibling.red = false
			return
		}

		// Case 4: black sibling and nephews, red parent.
		if parent.red {
			sibling.red = true
			parent.red = false
			return
		}

		// Case 1: everything black, shorten the sibling side and climb.
		sibling.red = true
		grandparent := parent.parent
		if grandparent == nil {
			// Case 2: reached the root, black height dropped by one.
			return
		}
		leftIsShort = parent == grandparent.left
		parent = grandparent
	}
}

func (t *RedBlack[K, V]) rotate(n *node[K, V], left bool) {
	if left {
		t.rotateLeft(n)
	} else {
		t.rotateRight(n)
	}
}

func (t *RedBlack[K, V]) rotateLeft(n *node[K, V]) {
	for _, e := range t.exts {
		e.beforeRotateLeft(n)
	}
	parent, child := n.parent, n.right
	grandchild := child.left

	n.right = grandchild
	if grandchild != nil {
		grandchild.parent = n
	}
	child.left = n
	n.parent = child
	child.parent = parent
	t.replaceChild(parent, n, child)
}

func (t *RedBlack[K, V]) rotateRight(n *node[K, V]) {
	for _, e := range t.exts {
		e.beforeRotateRight(n)
	}
	parent, child := n.parent, n.left
	grandchild := child.right

	n.left = grandchild
	if grandchild != nil {
		grandchild.parent = n
	}
	child.right = n
	n.parent = child
	child.parent = parent
	t.replaceChild(parent, n, child)
}

// replaceChild points parent's link (or the root) at repl instead of old.
func (t *RedBlack[K, V]) replaceChild(parent, old, repl *node[K, V]) {
	switch {
	case parent == nil:
		t.root = repl
	case parent.left == old:
		parent.left = repl
	default:
		parent.right = repl
	}
}

// swap exchanges the tree positions (and colors) of a and b.
func (t *RedBlack[K, V]) swap(a, b *node[K, V]) {
	for _, e := range t.exts {
		e.beforeSwap(a, b)
	}
	swapNodes(a, b)
	if a == t.root {
		t.root = b
	} else if b == t.root {
		t.root = a
	}
	a.red, b.red = b.red, a.red
}

func (t *RedBlack[K, V]) afterInsert(n *node[K, V]) {
	for _, e := range t.exts {
		e.afterInsert(n)
	}
}

func (t *RedBlack[K, V]) beforeRemove(n *node[K, V]) {
	for _, e := range t.exts {
		e.beforeRemove(n)
	}
}

// release frees n's side-table slot by moving the last slot into it.
func (t *RedBlack[K, V]) release(n *node[K, V]) {
	if len(t.exts) == 0 || n.idx < 0 {
		return
	}
	last := len(t.nodes) - 1
	if moved := t.nodes[last]; moved != n {
		t.nodes[n.idx] = moved
		for _, e := range t.exts {
			e.move(last, n.idx)
		}
		moved.idx = n.idx
	}
	t.nodes[last] = nil
	t.nodes = t.nodes[:last]
	for _, e := range t.exts {
		e.pop()
	}
	n.idx = -1
}
