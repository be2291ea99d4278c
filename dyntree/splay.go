package dyntree

import "math"

// access turns the path from n to its forest root into a single splay tree
// rooted at n. Afterwards n's right subtree holds exactly n's ancestors.
func (t *Tree) access(n *Vertex) *Vertex {
	for p := n; p != nil; {
		p = t.splice(p)
	}
	t.splay(n)

	return n
}

// splice splays n within its path and, if the path hangs below another path,
// merges n's path into the parent path in place of the parent's deeper part.
// It returns the parent path's splay root, or nil at the top.
func (t *Tree) splice(n *Vertex) *Vertex {
	t.splay(n)
	parent := n.tparent
	if parent == nil {
		return nil
	}
	t.splay(parent)

	pw := parent.weightDiff
	n.parent = parent
	n.tparent = nil
	n.weightDiff -= pw

	// The parent's previous deeper part becomes a path of its own.
	if l := parent.left; l != nil {
		l.parent = nil
		l.tparent = parent
		l.weightDiff += pw
	}
	parent.left = n

	minp := math.Max(0, pw-n.minWeight(pw))
	if r := parent.right; r != nil {
		minp = math.Max(minp, pw-r.minWeight(pw))
	}
	parent.minWeightDiff = minp

	return parent
}

// splay lifts n to the root of its splay tree.
func (t *Tree) splay(n *Vertex) {
	for n.parent != nil {
		parent := n.parent
		switch {
		case parent.parent == nil:
			t.rotate(n)
		case n.isLeftChild() == parent.isLeftChild():
			t.rotate(parent)
			t.rotate(n)
		default:
			t.rotate(n)
			t.rotate(n)
		}
	}
}

// rotate lifts n above its splay parent, rewriting relative weights and
// moving the path-parent link to the new subtree root.
func (t *Tree) rotate(n *Vertex) {
	for _, e := range t.exts {
		e.beforeRotate(n)
	}
	parent := n.parent
	grandparent := parent.parent

	// 1) Relative weights. n takes parent's place; parent becomes n's child.
	origN, origP := n.weightDiff, parent.weightDiff
	n.weightDiff = origN + origP
	parent.weightDiff = -origN

	var minN, minP float64
	if n.isLeftChild() {
		// n's right subtree moves under parent.
		if c := n.right; c != nil {
			c.weightDiff += origN
			minP = math.Max(minP, c.minWeightDiff-c.weightDiff)
		}
		if c := parent.right; c != nil {
			minP = math.Max(minP, c.minWeightDiff-c.weightDiff)
		}
		if c := n.left; c != nil {
			minN = math.Max(minN, c.minWeightDiff-c.weightDiff)
		}
	} else {
		if c := n.left; c != nil {
			c.weightDiff += origN
			minP = math.Max(minP, c.minWeightDiff-c.weightDiff)
		}
		if c := parent.left; c != nil {
			minP = math.Max(minP, c.minWeightDiff-c.weightDiff)
		}
		if c := n.right; c != nil {
			minN = math.Max(minN, c.minWeightDiff-c.weightDiff)
		}
	}
	parent.minWeightDiff = minP
	n.minWeightDiff = math.Max(minN, parent.minWeightDiff-parent.weightDiff)

	n.tparent = parent.tparent
	parent.tparent = nil

	// 2) Links.
	if n.isLeftChild() {
		parent.left = n.right
		if parent.left != nil {
			parent.left.parent = parent
		}
		n.right = parent
	} else {
		parent.right = n.left
		if parent.right != nil {
			parent.right.parent = parent
		}
		n.left = parent
	}
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
