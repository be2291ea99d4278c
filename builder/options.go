// SPDX-License-Identifier: MIT
// Package: lvlathds/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors and factories themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • Implementation selection is a hint: swapping implementations never
//     changes observable results, only performance and capabilities.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a constructor or a factory by mutating a
// builderConfig instance before use.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithHeapImpl selects the heap or search-tree implementation.
// Panics on a value outside the HeapImpl enumeration.
func WithHeapImpl(impl HeapImpl) BuilderOption {
	if !impl.valid() {
		panic(fmt.Sprintf("builder: WithHeapImpl(%d): unknown implementation", int(impl)))
	}
	return func(c *builderConfig) {
		c.heapImpl = impl
	}
}

// WithSplit declares that the caller needs SplitSmaller/SplitGreater/Split.
// Without an explicit implementation it selects Splay.
func WithSplit() BuilderOption {
	return func(c *builderConfig) {
		c.split = true
	}
}

// WithRMQImpl selects the RMQ implementation.
// Panics on a value outside the RMQImpl enumeration.
func WithRMQImpl(impl RMQImpl) BuilderOption {
	if !impl.valid() {
		panic(fmt.Sprintf("builder: WithRMQImpl(%d): unknown implementation", int(impl)))
	}
	return func(c *builderConfig) {
		c.rmqImpl = impl
	}
}

// WithValues selects the value-augmented union-find.
func WithValues() BuilderOption {
	return func(c *builderConfig) {
		c.values = true
	}
}

// WithExpectedSize passes a capacity hint to the union-find.
// Panics if n is negative.
func WithExpectedSize(n int) BuilderOption {
	if n < 0 {
		panic(fmt.Sprintf("builder: WithExpectedSize(%d)", n))
	}
	return func(c *builderConfig) {
		c.expected = n
	}
}

// WithWeightLimit sets the dynamic tree weight limit. Panics if limit <= 0.
func WithWeightLimit(limit float64) BuilderOption {
	if !(limit > 0) {
		panic(fmt.Sprintf("builder: WithWeightLimit(%v)", limit))
	}
	return func(c *builderConfig) {
		c.weightLimit = limit
	}
}

// WithIntWeights declares integral dynamic tree weights.
func WithIntWeights() BuilderOption {
	return func(c *builderConfig) {
		c.intWeights = true
	}
}

// WithTreeSize attaches a dyntree.TreeSize extension to the dynamic tree.
func WithTreeSize() BuilderOption {
	return func(c *builderConfig) {
		c.treeSize = true
	}
}
