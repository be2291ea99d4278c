package heap

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Comparator is a three-way comparison: negative when a < b, zero when
// they are equivalent, positive when a > b.
type Comparator[K any] func(a, b K) int

// Natural returns the comparator induced by the < operator of K.
func Natural[K constraints.Ordered]() Comparator[K] {
	return func(a, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}

// Reverse returns a comparator ordering keys opposite to c.
func Reverse[K any](c Comparator[K]) Comparator[K] {
	return func(a, b K) int { return c(b, a) }
}

// Ref is a handle to an element stored in a Referenceable heap.
// The key is read-only through the handle; change it with DecreaseKey.
type Ref[K, V any] interface {
	Key() K
	Value() V
	SetValue(v V)
}

// Referenceable is an addressable min-heap: every inserted element is
// reachable through its Ref until it is removed.
type Referenceable[K, V any] interface {
	// Insert adds key with the zero value and returns its handle.
	Insert(key K) Ref[K, V]
	// InsertWithValue adds key with value v and returns its handle.
	InsertWithValue(key K, v V) Ref[K, V]
	// FindMin returns a handle of a minimal element (ErrEmpty if none).
	FindMin() (Ref[K, V], error)
	// ExtractMin removes and returns a minimal element (ErrEmpty if none).
	ExtractMin() (Ref[K, V], error)
	// Remove deletes the element behind ref.
	Remove(ref Ref[K, V]) error
	// DecreaseKey lowers the key of ref to key.
	DecreaseKey(ref Ref[K, V], key K) error
	// Meld moves every element of other into the receiver, leaving other empty.
	Meld(other Referenceable[K, V]) error
	// Size reports the number of elements.
	Size() int
	// IsEmpty reports whether Size() == 0.
	IsEmpty() bool
	// Clear removes all elements. Outstanding refs become invalid.
	Clear()
	// All iterates over every element; the order is implementation defined.
	All() iter.Seq[Ref[K, V]]
	// Comparator returns the key order of the heap.
	Comparator() Comparator[K]
}

// linkKind tags the back link of a pairing node.
type linkKind uint8

const (
	linkNone    linkKind = iota // detached or the heap root
	linkParent                  // back points at the parent; the node is its leftmost child
	linkSibling                 // back points at the previous (left) sibling
)
