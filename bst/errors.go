package bst

import "errors"

// Sentinel errors for search-tree operations. Heap-contract failures
// (empty tree, foreign refs, increased keys, meld misuse) reuse the heap
// package sentinels so that callers holding a heap.Referenceable can branch
// on them uniformly.
var (
	// ErrNotFound indicates that no element satisfies a lookup or neighbor query.
	ErrNotFound = errors.New("bst: no such element")

	// ErrUnsupported marks an operation the implementation never supports
	// (red-black split). It is a permanent capability gap, not a transient failure.
	ErrUnsupported = errors.New("bst: operation not supported by this tree")

	// ErrExtensionBound is returned when an extension is registered on a second tree.
	ErrExtensionBound = errors.New("bst: extension already attached to a tree")
)
