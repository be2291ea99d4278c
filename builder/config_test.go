// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaults verifies the documented deterministic defaults.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng, "default rng must be nil")
	assert.Equal(t, DefaultEdgeWeight, cfg.weightFn(nil))
	assert.Equal(t, heapImplUnset, cfg.heapImpl)
	assert.Equal(t, CartesianTrees, cfg.rmqImpl)
	assert.Zero(t, cfg.weightLimit, "weight limit is unset by default")
	assert.False(t, cfg.split)
	assert.False(t, cfg.values)
	assert.False(t, cfg.intWeights)
	assert.False(t, cfg.treeSize)
	assert.Zero(t, cfg.expected)
}

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. WithRand stores the exact instance.
	exp := rand.New(rand.NewSource(123))
	cfg := newBuilderConfig(WithRand(exp))
	assert.Same(t, exp, cfg.rng)

	// 2. WithRand(nil) is a programmer error.
	assert.Panics(t, func() { WithRand(nil) })

	// 3. WithSeed is reproducible.
	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	for i := 0; i < 4; i++ {
		assert.Equal(t, a.rng.Int63(), b.rng.Int63())
	}

	// 4. Last option wins.
	c := newBuilderConfig(WithRand(exp), WithSeed(7))
	assert.NotSame(t, exp, c.rng)
}

// TestSelectionOptions checks implementation hints and their validation.
func TestSelectionOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithHeapImpl(Splay), WithRMQImpl(LookupTable), WithSplit())
	assert.Equal(t, Splay, cfg.heapImpl)
	assert.Equal(t, LookupTable, cfg.rmqImpl)
	assert.True(t, cfg.split)

	assert.Panics(t, func() { WithHeapImpl(heapImplUnset) })
	assert.Panics(t, func() { WithHeapImpl(heapImplCount) })
	assert.Panics(t, func() { WithRMQImpl(RMQImpl(-1)) })
	assert.Panics(t, func() { WithRMQImpl(RMQImpl(99)) })
}

// TestStructureOptions covers the union-find and dynamic tree knobs.
func TestStructureOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(
		WithValues(),
		WithExpectedSize(64),
		WithWeightLimit(1e6),
		WithIntWeights(),
		WithTreeSize(),
	)
	assert.True(t, cfg.values)
	assert.Equal(t, 64, cfg.expected)
	assert.Equal(t, 1e6, cfg.weightLimit)
	assert.True(t, cfg.intWeights)
	assert.True(t, cfg.treeSize)

	assert.Panics(t, func() { WithExpectedSize(-1) })
	assert.Panics(t, func() { WithWeightLimit(0) })
	assert.Panics(t, func() { WithWeightLimit(-5) })
	assert.Panics(t, func() { WithWeightFn(nil) })
}

// TestWeightOptions checks that the shorthands install the matching WeightFn.
func TestWeightOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithConstantWeight(3.5))
	assert.Equal(t, 3.5, cfg.weightFn(nil))

	cfg = newBuilderConfig(WithSeed(1), WithIntWeight(2, 4))
	for i := 0; i < 50; i++ {
		w := cfg.weightFn(cfg.rng)
		assert.GreaterOrEqual(t, w, 2.0)
		assert.LessOrEqual(t, w, 4.0)
		assert.Equal(t, float64(int(w)), w)
	}
}
