package bst

import (
	"fmt"

	"github.com/katalvlaran/lvlathds/heap"
)

// Tree is a referenceable min-heap with ordered navigation.
//
// Lookups return ErrNotFound when nothing qualifies. Neighbor queries take a
// Ref obtained from the same tree.
type Tree[K, V any] interface {
	heap.Referenceable[K, V]

	// FindMax returns a maximal element (heap.ErrEmpty if none).
	FindMax() (heap.Ref[K, V], error)
	// Find returns an element whose key is equivalent to key.
	Find(key K) (heap.Ref[K, V], error)
	// FindOrSmaller returns an element equal to key, else the greatest smaller one.
	FindOrSmaller(key K) (heap.Ref[K, V], error)
	// FindOrGreater returns an element equal to key, else the smallest greater one.
	FindOrGreater(key K) (heap.Ref[K, V], error)
	// FindSmaller returns the greatest element strictly smaller than key.
	FindSmaller(key K) (heap.Ref[K, V], error)
	// FindGreater returns the smallest element strictly greater than key.
	FindGreater(key K) (heap.Ref[K, V], error)
	// Predecessor returns the in-order predecessor of ref.
	Predecessor(ref heap.Ref[K, V]) (heap.Ref[K, V], error)
	// Successor returns the in-order successor of ref.
	Successor(ref heap.Ref[K, V]) (heap.Ref[K, V], error)

	// SplitSmaller moves every element smaller than key into a new tree.
	SplitSmaller(key K) (Tree[K, V], error)
	// SplitGreater moves every element greater than key into a new tree.
	SplitGreater(key K) (Tree[K, V], error)
	// Split moves ref and every element after it (in order) into a new tree.
	Split(ref heap.Ref[K, V]) (Tree[K, V], error)
}

// node is the node shape shared by the red-black and splay trees.
// left and right are owned; parent is a back link.
// red and idx are used by the red-black tree, size by the splay tree.
type node[K, V any] struct {
	key   K
	value V

	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]

	red    bool
	idx    int // side-table slot in an extended red-black tree, -1 otherwise
	size   int // splay subtree size
	linked bool
}

func newNode[K, V any](key K, v V) *node[K, V] {
	return &node[K, V]{key: key, value: v, idx: -1, size: 1, linked: true}
}

func (n *node[K, V]) Key() K       { return n.key }
func (n *node[K, V]) Value() V     { return n.value }
func (n *node[K, V]) SetValue(v V) { n.value = v }

func (n *node[K, V]) String() string {
	return fmt.Sprintf("<%v>", n.key)
}

func (n *node[K, V]) isLeftChild() bool  { return n.parent != nil && n.parent.left == n }
func (n *node[K, V]) isRightChild() bool { return n.parent != nil && n.parent.right == n }

// unlink clears structural links; key and value are kept for the caller.
func (n *node[K, V]) unlink() {
	n.parent, n.left, n.right = nil, nil, nil
}

// resolve validates that ref is a live node of the tree rooted at root.
// It walks parent links, so the cost is the node's depth.
func resolve[K, V any](root *node[K, V], ref heap.Ref[K, V]) (*node[K, V], error) {
	n, ok := ref.(*node[K, V])
	if !ok || n == nil {
		return nil, fmt.Errorf("%w: %T", heap.ErrForeignRef, ref)
	}
	if !n.linked {
		return nil, heap.ErrNotInserted
	}
	top := n
	for top.parent != nil {
		top = top.parent
	}
	if top != root {
		return nil, heap.ErrForeignRef
	}

	return n, nil
}

// found converts a possibly nil node into a (Ref, error) pair.
func found[K, V any](n *node[K, V]) (heap.Ref[K, V], error) {
	if n == nil {
		return nil, ErrNotFound
	}

	return n, nil
}
