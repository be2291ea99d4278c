// Package heap defines the addressable (referenceable) min-heap contract
// shared by every priority structure in lvlathds and provides two pairing
// heap implementations.
//
// Contract:
//
//   - Referenceable[K,V]: Insert returns a Ref handle that stays valid until
//     the element is removed. FindMin, ExtractMin, Remove, DecreaseKey, Meld,
//     Size, IsEmpty, Clear and pre-order/in-order iteration via All.
//     The bst package implements the same contract with red-black and splay
//     trees, so callers such as Prim's algorithm are agnostic to the backend.
//   - Comparator[K]: a three-way comparison (<0, 0, >0). Natural builds one
//     for any ordered type; Reverse flips one.
//
// Implementations:
//
//   - Pairing: pointer-based pairing heap. Each node carries a first-child
//     link, a right-sibling link, and a back link whose meaning (parent or
//     previous sibling) is recorded explicitly as a link kind.
//   - IndexPairing: the same algorithm over a fixed universe of dense integer
//     identifiers [0,n), with all links stored in parallel arrays. No
//     allocation happens after construction, which suits Dijkstra-style
//     algorithms whose vertices are already dense ints.
//
// Complexity (amortized):
//
//   - Insert, FindMin, Meld: O(1).
//   - DecreaseKey: O(1) amortized in practice (o(log n) proven bound).
//   - ExtractMin, Remove: O(log n).
//
// Meld semantics:
//
//   - a.Meld(b) moves every element of b into a and leaves b empty. Refs
//     obtained from b remain valid and must from now on be used with a.
//
// Errors:
//
//   - ErrEmpty            - FindMin/ExtractMin on an empty heap.
//   - ErrKeyIncreased     - DecreaseKey with a key greater than the current one.
//   - ErrMeldSelf         - h.Meld(h).
//   - ErrMeldMismatch     - melding heaps of different implementations.
//   - ErrForeignRef       - a Ref that belongs to another heap.
//   - ErrNotInserted      - a Ref (or id) whose element is no longer in the heap.
//   - ErrAlreadyInserted  - IndexPairing.Insert of an id already present.
//   - ErrIndexOutOfRange  - IndexPairing id outside [0,n).
//
// A failed call never modifies the heap.
//
// Thread safety: none. Heaps are mutated in place.
package heap
