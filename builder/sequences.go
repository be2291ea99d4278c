// SPDX-License-Identifier: MIT
// Package: lvlathds/builder
//
// sequences.go - deterministic integer sequences for RMQ fixtures.
//
// Determinism policy:
//   - RNG selection uses rngFrom(cfg, seed): cfg.rng when set (shared
//     stream), else a local rand.New(rand.NewSource(seed)).
//   - Same (n, seed, opts...) ⇒ same sequence.

package builder

import (
	"fmt"
)

// RandomInts returns n integers drawn uniformly from [0, bound).
// Errors: ErrBadSize when n < 1 or bound < 1.
func RandomInts(n, bound int, seed int64, opts ...BuilderOption) ([]int, error) {
	if n < 1 || bound < 1 {
		return nil, fmt.Errorf("RandomInts: n=%d, bound=%d: %w", n, bound, ErrBadSize)
	}
	rng := rngFrom(newBuilderConfig(opts...), seed)

	s := make([]int, n)
	for i := range s {
		s[i] = rng.Intn(bound)
	}
	return s, nil
}

// PlusMinusOneWalk returns a random walk of n steps starting at 0 where
// consecutive elements differ by exactly one.
// Errors: ErrBadSize when n < 1.
func PlusMinusOneWalk(n int, seed int64, opts ...BuilderOption) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("PlusMinusOneWalk: n=%d: %w", n, ErrBadSize)
	}
	rng := rngFrom(newBuilderConfig(opts...), seed)

	s := make([]int, n)
	for i := 1; i < n; i++ {
		step := 1
		if rng.Intn(2) == 0 {
			step = -1
		}
		s[i] = s[i-1] + step
	}
	return s, nil
}
