// Package bst provides referenceable binary search trees: a red-black tree
// with pluggable subtree aggregates and a splay tree with split and meld.
//
// Both trees implement Tree, which extends heap.Referenceable with ordered
// navigation, so either can back any algorithm written against the heap
// contract. They share one node shape and one set of navigation routines
// (find, neighbor search, predecessor/successor, positional swap).
//
// RedBlack:
//
//   - O(log n) worst case for Insert, Remove, DecreaseKey and lookups.
//   - DecreaseKey is remove + reinsert; the Ref stays valid.
//   - Meld adopts the other tree when the receiver is empty, otherwise it
//     reinserts the other tree's nodes one by one (O(k log n)).
//   - SplitSmaller, SplitGreater and Split return ErrUnsupported.
//   - Extensions (SizeExtension, MinExtension, MaxExtension) maintain a
//     per-subtree aggregate in O(1) per rotation. They keep their data in
//     side tables indexed by a dense per-node slot and are queried with a Ref.
//
// Splay:
//
//   - Amortized O(log n) for every operation. Every access, including
//     FindMin, Find* and Predecessor/Successor, moves the touched node to the
//     root, so the tree shape changes on reads.
//   - Subtree sizes are kept on every node, giving O(1) Size.
//   - SplitSmaller(k), SplitGreater(k) and Split(ref) detach a contiguous
//     key range into a new tree in amortized O(log n).
//   - Meld of key-disjoint trees is amortized O(log n); overlapping ranges
//     cost O(k log n) for the k overlapping elements.
//
// Duplicate keys are allowed. A new key goes to the right of equal keys, so
// in-order iteration lists equal keys in insertion order.
//
// Errors:
//
//   - ErrNotFound     - a lookup or neighbor query found nothing.
//   - ErrUnsupported  - red-black split.
//   - heap.ErrEmpty, heap.ErrForeignRef, heap.ErrNotInserted,
//     heap.ErrKeyIncreased, heap.ErrMeldSelf, heap.ErrMeldMismatch as for
//     every Referenceable heap.
//
// Thread safety: none; Splay mutates on reads.
package bst
