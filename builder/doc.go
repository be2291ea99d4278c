// SPDX-License-Identifier: MIT
// Package: lvlathds/builder
//
// Package builder is the single entry point for choosing between the
// interchangeable data structures of lvlathds and for producing
// deterministic fixtures to exercise them.
//
// The package offers two families of functions sharing one option set:
//
//   - Typed factories:
//     – NewHeap / NewTree:  pairing heap, red-black tree or splay tree
//     behind heap.Referenceable / bst.Tree.
//     – NewRMQ:             one of the four static RMQ structures.
//     – NewUnionFind:       plain or value-augmented union-find.
//     – NewDynamicTree:     link-cut forest, optionally with TreeSize.
//   - Fixtures:
//     – BuildGraph with Path, Cycle, Star, Wheel, Complete, Grid,
//     RandomSparse and RandomTree constructors over core.Graph.
//     – RandomParents, RandomInts, PlusMinusOneWalk for LCA and RMQ inputs.
//
// Configuration (BuilderOption):
//
//   - Randomness:      WithSeed, WithRand.
//   - Edge weights:    WithWeightFn and the WithXxxWeight shorthands.
//   - Selection:       WithHeapImpl, WithSplit, WithRMQImpl.
//   - Union-find:      WithValues, WithExpectedSize.
//   - Dynamic tree:    WithWeightLimit, WithIntWeights, WithTreeSize.
//
// Guarantees:
//
//   - Fast-fail on meaningless option parameters via panics in option
//     constructors; factories and constructors return sentinel errors.
//   - Requesting a capability the selected implementation lacks
//     (e.g. WithSplit on a red-black tree) yields ErrUnsupported up front.
//   - Determinism: same options, seed and call order ⇒ identical output.
//
// Example:
//
//	h, err := builder.NewHeap[int, string](heap.Natural[int](), builder.WithSplit())
//	// h is a splay tree; h.(bst.Tree[int, string]).SplitSmaller(k) is available.
package builder
