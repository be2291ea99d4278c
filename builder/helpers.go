// SPDX-License-Identifier: MIT
// Package: lvlathds/builder
//
// helpers.go — small shared helpers for the topology constructors.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlathds/core"
)

// addWeightedEdge draws a weight from cfg and adds u→v, wrapping errors with
// the constructor name. When mirror is set and the graph is directed, the
// reverse edge is added with the same weight.
func addWeightedEdge(g *core.Graph, cfg builderConfig, method string, u, v int, mirror bool) error {
	// Decide weight once per edge; deterministic for fixed rng.
	w := cfg.weightFn(cfg.rng)

	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, u, v, w, err)
	}
	// Mirror for directed graphs to preserve symmetric neighborhood.
	if mirror && g.Directed() {
		if _, err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}
	return rand.New(rand.NewSource(seed))
}
