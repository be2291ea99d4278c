package heap

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlathds/internal/owner"
)

// pairingNode is a multiway-tree node. child owns the first child, next owns
// the right sibling, back is a non-owning link interpreted through kind.
type pairingNode[K, V any] struct {
	key   K
	value V

	child *pairingNode[K, V]
	next  *pairingNode[K, V]
	back  *pairingNode[K, V]
	kind  linkKind

	tok *owner.Token // nil once removed
}

func (n *pairingNode[K, V]) Key() K       { return n.key }
func (n *pairingNode[K, V]) Value() V     { return n.value }
func (n *pairingNode[K, V]) SetValue(v V) { n.value = v }

func (n *pairingNode[K, V]) String() string {
	return fmt.Sprintf("{%v:%v}", n.key, n.value)
}

// Pairing is a pointer-based pairing heap.
type Pairing[K, V any] struct {
	cmp  Comparator[K]
	min  *pairingNode[K, V]
	size int
	tok  *owner.Token
}

var _ Referenceable[int, struct{}] = (*Pairing[int, struct{}])(nil)

// NewPairing creates an empty pairing heap ordered by cmp.
// Panics if cmp is nil.
func NewPairing[K, V any](cmp Comparator[K]) *Pairing[K, V] {
	if cmp == nil {
		panic("heap: NewPairing: nil comparator")
	}

	return &Pairing[K, V]{cmp: cmp, tok: owner.New()}
}

// NewOrderedPairing creates an empty pairing heap using the natural order of K.
func NewOrderedPairing[K constraints.Ordered, V any]() *Pairing[K, V] {
	return NewPairing[K, V](Natural[K]())
}

// Comparator returns the key order of the heap.
func (h *Pairing[K, V]) Comparator() Comparator[K] { return h.cmp }

// Size reports the number of elements.
func (h *Pairing[K, V]) Size() int { return h.size }

// IsEmpty reports whether the heap has no elements.
func (h *Pairing[K, V]) IsEmpty() bool { return h.min == nil }

// Insert adds key with the zero value.
func (h *Pairing[K, V]) Insert(key K) Ref[K, V] {
	var zero V
	return h.InsertWithValue(key, zero)
}

// InsertWithValue adds key with value v. O(1).
func (h *Pairing[K, V]) InsertWithValue(key K, v V) Ref[K, V] {
	n := &pairingNode[K, V]{key: key, value: v, tok: h.tok}
	if h.min == nil {
		h.min = n
	} else {
		h.min = h.link(h.min, n)
	}
	h.size++

	return n
}

// FindMin returns a minimal element without removing it.
func (h *Pairing[K, V]) FindMin() (Ref[K, V], error) {
	if h.min == nil {
		return nil, ErrEmpty
	}

	return h.min, nil
}

// ExtractMin removes and returns a minimal element.
func (h *Pairing[K, V]) ExtractMin() (Ref[K, V], error) {
	if h.min == nil {
		return nil, ErrEmpty
	}
	n := h.min
	h.removeRoot()

	return n, nil
}

// Remove deletes the element behind ref.
func (h *Pairing[K, V]) Remove(ref Ref[K, V]) error {
	n, err := h.node(ref)
	if err != nil {
		return err
	}
	// Hoist n above the current root, then discard the root.
	if n != h.min {
		cut(n)
		addChild(n, h.min)
		h.min = n
	}
	h.removeRoot()

	return nil
}

// DecreaseKey lowers ref's key. The node is cut from its parent together
// with its subtree and melded with the root.
func (h *Pairing[K, V]) DecreaseKey(ref Ref[K, V], key K) error {
	n, err := h.node(ref)
	if err != nil {
		return err
	}
	if h.cmp(key, n.key) > 0 {
		return fmt.Errorf("%w: %v > %v", ErrKeyIncreased, key, n.key)
	}
	n.key = key
	if n == h.min {
		return nil
	}
	cut(n)
	h.min = h.link(h.min, n)

	return nil
}

// Meld moves all elements of other into h. other must be a *Pairing.
func (h *Pairing[K, V]) Meld(other Referenceable[K, V]) error {
	o, ok := other.(*Pairing[K, V])
	if !ok {
		return fmt.Errorf("%w: %T into %T", ErrMeldMismatch, other, h)
	}
	if o == h {
		return ErrMeldSelf
	}

	switch {
	case h.min == nil:
		h.min = o.min
	case o.min != nil:
		h.min = h.link(h.min, o.min)
	}
	h.size += o.size

	// Everything stamped with o's token now belongs to h.
	o.tok.Forward(h.tok)
	o.tok = owner.New()
	o.min = nil
	o.size = 0

	return nil
}

// Clear removes every element. Nodes are unlinked iteratively so that
// outstanding refs do not keep the whole structure reachable.
func (h *Pairing[K, V]) Clear() {
	if h.min == nil {
		return
	}
	// Post-order walk: descend to the deepest rightmost leaf, detach it, climb.
	for p := h.min; ; {
		for p.child != nil {
			p = p.child
			for p.next != nil {
				p = p.next
			}
		}
		prev, kind := p.back, p.kind
		p.back, p.kind, p.tok = nil, linkNone, nil
		if prev == nil {
			break
		}
		if kind == linkSibling {
			prev.next = nil
		} else {
			prev.child = nil
		}
		p = prev
	}
	h.min = nil
	h.size = 0
	h.tok = owner.New()
}

// All iterates the heap in pre-order, starting from the minimum.
func (h *Pairing[K, V]) All() iter.Seq[Ref[K, V]] {
	return func(yield func(Ref[K, V]) bool) {
		if h.min == nil {
			return
		}
		stack := []*pairingNode[K, V]{h.min}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			if n.next != nil {
				stack = append(stack, n.next)
			}
			if n.child != nil {
				stack = append(stack, n.child)
			}
		}
	}
}

// node validates ref against h.
func (h *Pairing[K, V]) node(ref Ref[K, V]) (*pairingNode[K, V], error) {
	n, ok := ref.(*pairingNode[K, V])
	if !ok || n == nil {
		return nil, fmt.Errorf("%w: %T", ErrForeignRef, ref)
	}
	if n.tok == nil {
		return nil, ErrNotInserted
	}
	if !h.tok.Owns(n.tok) {
		return nil, ErrForeignRef
	}

	return n, nil
}

// link melds two detached roots and returns the winner.
func (h *Pairing[K, V]) link(a, b *pairingNode[K, V]) *pairingNode[K, V] {
	if h.cmp(a.key, b.key) > 0 {
		a, b = b, a
	}
	addChild(a, b)

	return a
}

// removeRoot discards h.min and rebuilds the heap from its children
// with the two-pass pairing discipline.
func (h *Pairing[K, V]) removeRoot() {
	r := h.min
	h.size--
	first := r.child
	r.child = nil
	r.tok = nil
	if first == nil {
		h.min = nil
		return
	}

	// 1) Left to right: meld consecutive pairs. The melded pair roots form a
	//    list chained through back (linkSibling), newest last.
	var tail *pairingNode[K, V]
	for next := first; next != nil; {
		n1 := next
		n2 := n1.next
		if n2 == nil {
			detach(n1)
			n1.back, n1.kind = tail, linkSibling
			tail = n1
			break
		}
		next = n2.next
		detach(n1)
		detach(n2)
		n1 = h.link(n1, n2)
		n1.back, n1.kind = tail, linkSibling
		tail = n1
	}

	// 2) Right to left: fold the pair list into a single tree.
	root := tail
	prev := root.back
	root.back, root.kind = nil, linkNone
	for prev != nil {
		other := prev
		prev = other.back
		other.back, other.kind = nil, linkNone
		root = h.link(root, other)
	}
	h.min = root
}

// detach clears a node's sibling and back links; its subtree is kept.
func detach[K, V any](n *pairingNode[K, V]) {
	n.next = nil
	n.back = nil
	n.kind = linkNone
}

// addChild makes c the leftmost child of parent. c must be detached.
func addChild[K, V any](parent, c *pairingNode[K, V]) {
	if old := parent.child; old != nil {
		old.back, old.kind = c, linkSibling
		c.next = old
	}
	parent.child = c
	c.back, c.kind = parent, linkParent
}

// cut removes n (with its subtree) from its parent's child list.
func cut[K, V any](n *pairingNode[K, V]) {
	next := n.next
	if next != nil {
		next.back, next.kind = n.back, n.kind
		n.next = nil
	}
	switch n.kind {
	case linkParent:
		n.back.child = next
	case linkSibling:
		n.back.next = next
	}
	n.back, n.kind = nil, linkNone
}
