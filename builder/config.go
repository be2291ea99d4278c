// SPDX-License-Identifier: MIT
// Package: lvlathds/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs,
//     both for graph fixtures and for data-structure factories.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng         = nil                 (pure/deterministic unless seeded)
//   • weightFn    = DefaultWeightFn     (constant DefaultEdgeWeight)
//   • heapImpl    = unset               (Pairing for heaps, RedBlack for trees)
//   • rmqImpl     = CartesianTrees
//   • weightLimit = 0                   (unset: required for float weights)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors and factories.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn

	// Heap / tree selection.
	heapImpl HeapImpl
	split    bool // the caller needs Split*; only Splay provides it

	// RMQ selection.
	rmqImpl RMQImpl

	// Union-find.
	values   bool // value-augmented union-find
	expected int  // capacity hint

	// Dynamic tree.
	weightLimit float64
	intWeights  bool
	treeSize    bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn:    DefaultWeightFn,
		heapImpl:    heapImplUnset,
		rmqImpl:     CartesianTrees,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
