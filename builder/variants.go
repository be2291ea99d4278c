// SPDX-License-Identifier: MIT
// Package: lvlathds/builder
//
// variants.go — closed enumerations of the interchangeable implementations.
//
// Names are stable lower-case tokens: they appear in dscheck flags and
// configuration files and round-trip through String/Parse*.

package builder

import (
	"fmt"
	"strings"
)

// HeapImpl selects a referenceable heap implementation.
type HeapImpl int

const (
	// Pairing is the pointer-based pairing heap. No split.
	Pairing HeapImpl = iota
	// RedBlack is the red-black tree. No split.
	RedBlack
	// Splay is the splay tree. Supports split.
	Splay

	heapImplCount
	heapImplUnset HeapImpl = -1
)

var heapImplNames = [heapImplCount]string{"pairing", "redblack", "splay"}

func (h HeapImpl) valid() bool { return h >= 0 && h < heapImplCount }

// String returns the stable token of h.
func (h HeapImpl) String() string {
	if !h.valid() {
		return fmt.Sprintf("HeapImpl(%d)", int(h))
	}
	return heapImplNames[h]
}

// HeapImpls lists every heap implementation.
func HeapImpls() []HeapImpl {
	return []HeapImpl{Pairing, RedBlack, Splay}
}

// ParseHeapImpl returns the implementation named s (case-insensitive).
func ParseHeapImpl(s string) (HeapImpl, error) {
	for i, name := range heapImplNames {
		if strings.EqualFold(s, name) {
			return HeapImpl(i), nil
		}
	}
	return heapImplUnset, fmt.Errorf("%w: heap %q", ErrUnknownImpl, s)
}

// RMQImpl selects a static RMQ implementation.
type RMQImpl int

const (
	// PowerOf2 is the O(n log n) sparse table.
	PowerOf2 RMQImpl = iota
	// LookupTable precomputes every answer in O(n²).
	LookupTable
	// CartesianTrees is the linear structure for arbitrary sequences.
	CartesianTrees
	// PlusMinusOne is the linear structure for ±1 sequences.
	PlusMinusOne

	rmqImplCount
)

var rmqImplNames = [rmqImplCount]string{"powerof2", "lookuptable", "cartesiantrees", "plusminusone"}

func (r RMQImpl) valid() bool { return r >= 0 && r < rmqImplCount }

// String returns the stable token of r.
func (r RMQImpl) String() string {
	if !r.valid() {
		return fmt.Sprintf("RMQImpl(%d)", int(r))
	}
	return rmqImplNames[r]
}

// RMQImpls lists every RMQ implementation.
func RMQImpls() []RMQImpl {
	return []RMQImpl{PowerOf2, LookupTable, CartesianTrees, PlusMinusOne}
}

// ParseRMQImpl returns the implementation named s (case-insensitive).
func ParseRMQImpl(s string) (RMQImpl, error) {
	for i, name := range rmqImplNames {
		if strings.EqualFold(s, name) {
			return RMQImpl(i), nil
		}
	}
	return 0, fmt.Errorf("%w: rmq %q", ErrUnknownImpl, s)
}
