package bst

import (
	"iter"

	"github.com/katalvlaran/lvlathds/heap"
)

// neighbor selects what findOrNeighbor returns when key is absent.
type neighbor uint8

const (
	neighborNone neighbor = iota
	neighborSmaller
	neighborGreater
)

// findOrNeighbor descends from root looking for key. When key is absent the
// search ends at a leaf p, and the requested neighbor is p or one of its
// in-order neighbors.
func findOrNeighbor[K, V any](root *node[K, V], cmp heap.Comparator[K], key K, nb neighbor) *node[K, V] {
	for p := root; p != nil; {
		c := cmp(key, p.key)
		switch {
		case c < 0:
			if p.left == nil {
				switch nb {
				case neighborSmaller:
					return predecessor(p)
				case neighborGreater:
					return p
				}
				return nil
			}
			p = p.left
		case c > 0:
			if p.right == nil {
				switch nb {
				case neighborSmaller:
					return p
				case neighborGreater:
					return successor(p)
				}
				return nil
			}
			p = p.right
		default:
			return p
		}
	}

	return nil
}

// findSmaller returns the greatest node with key strictly less than key.
func findSmaller[K, V any](root *node[K, V], cmp heap.Comparator[K], key K) *node[K, V] {
	for p := root; p != nil; {
		if cmp(key, p.key) <= 0 {
			if p.left == nil {
				return predecessor(p)
			}
			p = p.left
		} else {
			if p.right == nil {
				return p
			}
			p = p.right
		}
	}

	return nil
}

// findGreater returns the smallest node with key strictly greater than key.
func findGreater[K, V any](root *node[K, V], cmp heap.Comparator[K], key K) *node[K, V] {
	for p := root; p != nil; {
		if cmp(key, p.key) >= 0 {
			if p.right == nil {
				return successor(p)
			}
			p = p.right
		} else {
			if p.left == nil {
				return p
			}
			p = p.left
		}
	}

	return nil
}

func subtreeMin[K, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func subtreeMax[K, V any](n *node[K, V]) *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

func predecessor[K, V any](n *node[K, V]) *node[K, V] {
	if n.left != nil {
		return subtreeMax(n.left)
	}
	for p := n; p.parent != nil; p = p.parent {
		if p.isRightChild() {
			return p.parent
		}
	}
	return nil
}

func successor[K, V any](n *node[K, V]) *node[K, V] {
	if n.right != nil {
		return subtreeMin(n.right)
	}
	for p := n; p.parent != nil; p = p.parent {
		if p.isLeftChild() {
			return p.parent
		}
	}
	return nil
}

// insertLeaf hangs n (detached) under root as a new leaf. Keys equal to an
// existing key go to its right, so equal keys keep insertion order.
func insertLeaf[K, V any](root *node[K, V], cmp heap.Comparator[K], n *node[K, V]) {
	for p := root; ; {
		if cmp(n.key, p.key) < 0 {
			if p.left == nil {
				p.left, n.parent = n, p
				return
			}
			p = p.left
		} else {
			if p.right == nil {
				p.right, n.parent = n, p
				return
			}
			p = p.right
		}
	}
}

// clearTree unlinks every node of the tree in post-order without recursion.
func clearTree[K, V any](root *node[K, V]) {
	for p := root; p != nil; {
		for {
			if p.left != nil {
				p = p.left
				continue
			}
			if p.right != nil {
				p = p.right
				continue
			}
			break
		}
		parent := p.parent
		if parent != nil {
			if parent.left == p {
				parent.left = nil
			} else {
				parent.right = nil
			}
		}
		p.unlink()
		p.linked = false
		p = parent
	}
}

// swapNodes exchanges the positions of n1 and n2 in the tree. Only links
// move; keys, values and node identities stay, so outstanding refs remain valid.
// The caller fixes the root pointer and any per-node balance data.
func swapNodes[K, V any](n1, n2 *node[K, V]) {
	if n2 == n1.parent {
		n1, n2 = n2, n1
	}
	if n1 == n2.parent {
		// n2 is a child of n1.
		if n1.isLeftChild() {
			n1.parent.left = n2
		} else if n1.isRightChild() {
			n1.parent.right = n2
		}
		if n1.left == n2 {
			right := n1.right
			if n1.left = n2.left; n1.left != nil {
				n1.left.parent = n1
			}
			if n1.right = n2.right; n1.right != nil {
				n1.right.parent = n1
			}
			n2.left = n1
			if n2.right = right; n2.right != nil {
				n2.right.parent = n2
			}
		} else {
			left := n1.left
			if n1.left = n2.left; n1.left != nil {
				n1.left.parent = n1
			}
			if n1.right = n2.right; n1.right != nil {
				n1.right.parent = n1
			}
			if n2.left = left; n2.left != nil {
				n2.left.parent = n2
			}
			n2.right = n1
		}
		n2.parent = n1.parent
		n1.parent = n2
		return
	}

	// Record sides first: n1 and n2 may be siblings.
	n1Left, n1Right := n1.isLeftChild(), n1.isRightChild()
	n2Left, n2Right := n2.isLeftChild(), n2.isRightChild()
	if n1Left {
		n1.parent.left = n2
	} else if n1Right {
		n1.parent.right = n2
	}
	if n2Left {
		n2.parent.left = n1
	} else if n2Right {
		n2.parent.right = n1
	}

	parent, left, right := n1.parent, n1.left, n1.right
	n1.parent = n2.parent
	if n1.left = n2.left; n1.left != nil {
		n1.left.parent = n1
	}
	if n1.right = n2.right; n1.right != nil {
		n1.right.parent = n1
	}
	n2.parent = parent
	if n2.left = left; n2.left != nil {
		n2.left.parent = n2
	}
	if n2.right = right; n2.right != nil {
		n2.right.parent = n2
	}
}

// inOrder yields the subtree of root in key order without restructuring it.
func inOrder[K, V any](root *node[K, V]) iter.Seq[heap.Ref[K, V]] {
	return func(yield func(heap.Ref[K, V]) bool) {
		if root == nil {
			return
		}
		for n := subtreeMin(root); n != nil; n = successor(n) {
			if !yield(n) {
				return
			}
		}
	}
}
