package heap

import (
	"fmt"
	"iter"
)

// idxLink tags the back link of an IndexPairing slot.
type idxLink uint8

const (
	idxAbsent  idxLink = iota // id is not in the heap
	idxTop                    // in the heap with no back link (the root, or a tree in transit)
	idxParent                 // back[id] is the parent; id is its leftmost child
	idxSibling                // back[id] is the previous sibling
)

const nilIdx int32 = -1

// IndexPairing is a pairing heap over the fixed id universe [0,n).
// Keys and links live in parallel arrays sized at construction.
// There is no Meld: two heaps would have to share one id universe.
type IndexPairing[K any] struct {
	cmp   Comparator[K]
	keys  []K
	child []int32
	next  []int32
	back  []int32
	kind  []idxLink
	min   int32
	size  int
}

// NewIndexPairing creates an empty index heap for ids in [0,n).
// Panics if n is negative or cmp is nil.
func NewIndexPairing[K any](n int, cmp Comparator[K]) *IndexPairing[K] {
	if n < 0 {
		panic(fmt.Sprintf("heap: NewIndexPairing(%d): size must be non-negative", n))
	}
	if cmp == nil {
		panic("heap: NewIndexPairing: nil comparator")
	}
	h := &IndexPairing[K]{
		cmp:   cmp,
		keys:  make([]K, n),
		child: make([]int32, n),
		next:  make([]int32, n),
		back:  make([]int32, n),
		kind:  make([]idxLink, n),
		min:   nilIdx,
	}
	for i := 0; i < n; i++ {
		h.child[i], h.next[i], h.back[i] = nilIdx, nilIdx, nilIdx
	}

	return h
}

// Cap returns the size of the id universe.
func (h *IndexPairing[K]) Cap() int { return len(h.keys) }

// Size reports the number of ids currently in the heap.
func (h *IndexPairing[K]) Size() int { return h.size }

// IsEmpty reports whether the heap holds no ids.
func (h *IndexPairing[K]) IsEmpty() bool { return h.min == nilIdx }

// Contains reports whether id is currently in the heap.
// Out-of-range ids are simply not contained.
func (h *IndexPairing[K]) Contains(id int) bool {
	return id >= 0 && id < len(h.kind) && h.kind[id] != idxAbsent
}

// Key returns the key of id.
func (h *IndexPairing[K]) Key(id int) (K, error) {
	if err := h.present(id); err != nil {
		var zero K
		return zero, err
	}

	return h.keys[id], nil
}

// Insert adds id with the given key.
func (h *IndexPairing[K]) Insert(id int, key K) error {
	if err := h.inRange(id); err != nil {
		return err
	}
	if h.kind[id] != idxAbsent {
		return fmt.Errorf("%w: %d", ErrAlreadyInserted, id)
	}
	h.keys[id] = key
	h.kind[id] = idxTop
	if h.min == nilIdx {
		h.min = int32(id)
	} else {
		h.min = h.link(h.min, int32(id))
	}
	h.size++

	return nil
}

// FindMin returns an id with minimal key.
func (h *IndexPairing[K]) FindMin() (int, error) {
	if h.min == nilIdx {
		return -1, ErrEmpty
	}

	return int(h.min), nil
}

// ExtractMin removes and returns an id with minimal key.
func (h *IndexPairing[K]) ExtractMin() (int, error) {
	if h.min == nilIdx {
		return -1, ErrEmpty
	}
	id := h.min
	h.removeRoot()

	return int(id), nil
}

// Remove deletes id from the heap.
func (h *IndexPairing[K]) Remove(id int) error {
	if err := h.present(id); err != nil {
		return err
	}
	n := int32(id)
	if n != h.min {
		h.cut(n)
		h.addChild(n, h.min)
		h.min = n
	}
	h.removeRoot()

	return nil
}

// DecreaseKey lowers the key of id.
func (h *IndexPairing[K]) DecreaseKey(id int, key K) error {
	if err := h.present(id); err != nil {
		return err
	}
	if h.cmp(key, h.keys[id]) > 0 {
		return fmt.Errorf("%w: id %d: %v > %v", ErrKeyIncreased, id, key, h.keys[id])
	}
	h.keys[id] = key
	n := int32(id)
	if n == h.min {
		return nil
	}
	h.cut(n)
	h.min = h.link(h.min, n)

	return nil
}

// Clear removes every id. O(size) via a post-order walk.
func (h *IndexPairing[K]) Clear() {
	if h.min == nilIdx {
		return
	}
	var zero K
	stack := []int32{h.min}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c := h.child[n]; c != nilIdx {
			stack = append(stack, c)
		}
		if s := h.next[n]; s != nilIdx {
			stack = append(stack, s)
		}
		h.child[n], h.next[n], h.back[n] = nilIdx, nilIdx, nilIdx
		h.kind[n] = idxAbsent
		h.keys[n] = zero
	}
	h.min = nilIdx
	h.size = 0
}

// All iterates the ids in the heap in pre-order, starting from the minimum.
func (h *IndexPairing[K]) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		if h.min == nilIdx {
			return
		}
		stack := []int32{h.min}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(int(n)) {
				return
			}
			if s := h.next[n]; s != nilIdx {
				stack = append(stack, s)
			}
			if c := h.child[n]; c != nilIdx {
				stack = append(stack, c)
			}
		}
	}
}

func (h *IndexPairing[K]) inRange(id int) error {
	if id < 0 || id >= len(h.keys) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, id, len(h.keys))
	}

	return nil
}

func (h *IndexPairing[K]) present(id int) error {
	if err := h.inRange(id); err != nil {
		return err
	}
	if h.kind[id] == idxAbsent {
		return fmt.Errorf("%w: %d", ErrNotInserted, id)
	}

	return nil
}

func (h *IndexPairing[K]) link(a, b int32) int32 {
	if h.cmp(h.keys[a], h.keys[b]) > 0 {
		a, b = b, a
	}
	h.addChild(a, b)

	return a
}

func (h *IndexPairing[K]) addChild(parent, c int32) {
	if old := h.child[parent]; old != nilIdx {
		h.back[old], h.kind[old] = c, idxSibling
		h.next[c] = old
	}
	h.child[parent] = c
	h.back[c], h.kind[c] = parent, idxParent
}

func (h *IndexPairing[K]) cut(n int32) {
	nx := h.next[n]
	if nx != nilIdx {
		h.back[nx], h.kind[nx] = h.back[n], h.kind[n]
		h.next[n] = nilIdx
	}
	switch h.kind[n] {
	case idxParent:
		h.child[h.back[n]] = nx
	case idxSibling:
		h.next[h.back[n]] = nx
	}
	h.back[n], h.kind[n] = nilIdx, idxTop
}

func (h *IndexPairing[K]) detach(n int32) {
	h.next[n] = nilIdx
	h.back[n] = nilIdx
	h.kind[n] = idxTop
}

// removeRoot mirrors Pairing.removeRoot over the arrays.
func (h *IndexPairing[K]) removeRoot() {
	r := h.min
	h.size--
	first := h.child[r]
	h.child[r] = nilIdx
	h.kind[r] = idxAbsent
	if first == nilIdx {
		h.min = nilIdx
		return
	}

	// 1) Pair left to right; pair roots are chained through back.
	tail := nilIdx
	for nx := first; nx != nilIdx; {
		n1 := nx
		n2 := h.next[n1]
		if n2 == nilIdx {
			h.detach(n1)
			h.back[n1], h.kind[n1] = tail, idxSibling
			tail = n1
			break
		}
		nx = h.next[n2]
		h.detach(n1)
		h.detach(n2)
		n1 = h.link(n1, n2)
		h.back[n1], h.kind[n1] = tail, idxSibling
		tail = n1
	}

	// 2) Fold right to left.
	root := tail
	prev := h.back[root]
	h.back[root], h.kind[root] = nilIdx, idxTop
	for prev != nilIdx {
		other := prev
		prev = h.back[other]
		h.back[other], h.kind[other] = nilIdx, idxTop
		root = h.link(root, other)
	}
	h.min = root
}
