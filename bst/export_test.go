package bst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlathds/heap"
)

// CheckRedBlack verifies order, parent links, coloring, black height, size
// and, for every registered extension, the aggregate of every subtree.
func CheckRedBlack[K, V any](t *RedBlack[K, V]) error {
	if t.root != nil && (t.root.red || t.root.parent != nil) {
		return errors.New("root must be black and parentless")
	}
	count, _, err := checkRB(t, t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("reachable %d nodes, size %d", count, t.size)
	}
	if len(t.exts) > 0 && len(t.nodes) != t.size {
		return fmt.Errorf("%d slots for %d nodes", len(t.nodes), t.size)
	}
	for i, n := range t.nodes {
		if n.idx != i {
			return fmt.Errorf("slot %d holds node with idx %d", i, n.idx)
		}
	}
	return nil
}

func checkRB[K, V any](t *RedBlack[K, V], n *node[K, V]) (count, blackHeight int, err error) {
	if n == nil {
		return 0, 1, nil
	}
	if err := checkLinks(t.cmp, n); err != nil {
		return 0, 0, err
	}
	if n.red && ((n.left != nil && n.left.red) || (n.right != nil && n.right.red)) {
		return 0, 0, fmt.Errorf("red node %v has a red child", n)
	}
	lc, lh, err := checkRB(t, n.left)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := checkRB(t, n.right)
	if err != nil {
		return 0, 0, err
	}
	if lh != rh {
		return 0, 0, fmt.Errorf("node %v: black heights %d != %d", n, lh, rh)
	}
	count = lc + rc + 1
	for _, e := range t.exts {
		switch x := e.(type) {
		case *SizeExtension[K, V]:
			if x.data[n.idx] != count {
				return 0, 0, fmt.Errorf("node %v: size %d, want %d", n, x.data[n.idx], count)
			}
		case *MinExtension[K, V]:
			if want := subtreeMin(n); x.data[n.idx] != want {
				return 0, 0, fmt.Errorf("node %v: min %v, want %v", n, x.data[n.idx], want)
			}
		case *MaxExtension[K, V]:
			if want := subtreeMax(n); x.data[n.idx] != want {
				return 0, 0, fmt.Errorf("node %v: max %v, want %v", n, x.data[n.idx], want)
			}
		}
	}
	if !n.red {
		return count, lh + 1, nil
	}
	return count, lh, nil
}

// CheckSplay verifies order, parent links and subtree sizes.
func CheckSplay[K, V any](t *Splay[K, V]) error {
	if t.root != nil && t.root.parent != nil {
		return errors.New("root has a parent")
	}
	_, err := checkSplay(t, t.root)
	return err
}

func checkSplay[K, V any](t *Splay[K, V], n *node[K, V]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if err := checkLinks(t.cmp, n); err != nil {
		return 0, err
	}
	l, err := checkSplay(t, n.left)
	if err != nil {
		return 0, err
	}
	r, err := checkSplay(t, n.right)
	if err != nil {
		return 0, err
	}
	if n.size != l+r+1 {
		return 0, fmt.Errorf("node %v: size %d, want %d", n, n.size, l+r+1)
	}
	return n.size, nil
}

func checkLinks[K, V any](cmp func(a, b K) int, n *node[K, V]) error {
	if n.left != nil {
		if n.left.parent != n {
			return fmt.Errorf("node %v: broken left parent link", n)
		}
		if cmp(n.left.key, n.key) > 0 {
			return fmt.Errorf("order violated: left %v > %v", n.left, n)
		}
	}
	if n.right != nil {
		if n.right.parent != n {
			return fmt.Errorf("node %v: broken right parent link", n)
		}
		if cmp(n.right.key, n.key) < 0 {
			return fmt.Errorf("order violated: right %v < %v", n.right, n)
		}
	}
	return nil
}

// SplayRoot exposes the current root key for splay-on-access tests.
func SplayRoot[K, V any](t *Splay[K, V]) (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.key, true
}

// SplayDepth returns the number of edges between ref's node and the root.
func SplayDepth[K, V any](ref heap.Ref[K, V]) int {
	d := 0
	for n := ref.(*node[K, V]); n.parent != nil; n = n.parent {
		d++
	}
	return d
}
