// Package rmq answers static range-minimum queries: after a one-shot build
// over a sequence of length n, RangeMin(i, j) returns the position of the
// minimum in [i, j] in O(1).
//
// The sequence itself is never stored. Every structure is built from a
// Comparator over positions, so the same code serves slices, implicit
// sequences (Euler tours, block minima) and reversed orders alike.
//
// Implementations:
//
//   - PowerOf2:     sparse table of minima over windows of length 2^k.
//     O(n log n) build and space.
//   - LookupTable:  every answer precomputed. O(n²) build and space; a
//     reference implementation for small inputs and cross-validation.
//   - Cartesian:    linear build. The sequence is cut into blocks of
//     ~log2(n)/4 positions; a PowerOf2 table over block minima answers
//     cross-block queries, and blocks sharing a Cartesian-tree signature
//     share one in-block answer table.
//   - PlusMinusOne: linear build for sequences whose adjacent elements
//     differ by exactly one (Euler-tour depths). Blocks of ~log2(n)/2
//     positions are keyed by their up/down steps.
//
// Ties:
//
//   - All implementations return the leftmost minimum, so their answers
//     are identical, not just equal in value.
//
// Errors:
//
//   - ErrBadLength: a build with n <= 0.
//   - ErrBadRange:  a query outside 0 <= i <= j < n.
//
// Thread safety:
//
//   - Structures are immutable after the build and safe for concurrent
//     queries, provided the comparator is.
package rmq
