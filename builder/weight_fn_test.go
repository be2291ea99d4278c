// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlathds/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"IntWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.IntWeightFn(3, 2) }},
		{"NormalWeightFn_stddevNegative", func() builder.WeightFn { return builder.NormalWeightFn(0, -0.1) }},
		{"ExponentialWeightFn_zeroRate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
		{"ExponentialWeightFn_negativeRate", func() builder.WeightFn { return builder.ExponentialWeightFn(-1) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() }, tc.name)
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn:
//   - every stochastic WeightFn yields DefaultEdgeWeight on a nil RNG;
//   - samples stay inside the documented support.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, 7.0, builder.ConstantWeightFn(7)(rng))

	stochastic := map[string]builder.WeightFn{
		"uniform":     builder.UniformWeightFn(2, 9),
		"int":         builder.IntWeightFn(1, 100),
		"normal":      builder.NormalWeightFn(5, 2),
		"exponential": builder.ExponentialWeightFn(0.5),
	}
	for name, fn := range stochastic {
		assert.Equal(t, builder.DefaultEdgeWeight, fn(nil), name)
	}

	uni := builder.UniformWeightFn(2, 9)
	integral := builder.IntWeightFn(1, 100)
	normal := builder.NormalWeightFn(5, 2)
	exp := builder.ExponentialWeightFn(0.5)
	for i := 0; i < 200; i++ {
		u := uni(rng)
		assert.True(t, u >= 2 && u < 9, "uniform %g", u)

		w := integral(rng)
		assert.True(t, w >= 1 && w <= 100 && w == float64(int(w)), "int %g", w)

		assert.GreaterOrEqual(t, normal(rng), 0.0)
		assert.GreaterOrEqual(t, exp(rng), 0.0)
	}

	// Degenerate uniform interval collapses to a constant.
	assert.Equal(t, 3.0, builder.UniformWeightFn(3, 3)(rng))
}
