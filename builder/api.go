// SPDX-License-Identifier: MIT
// Package: lvlathds/builder
//
// api.go - thin public entry-points for the graph fixtures.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Each constructor appends its own block of fresh vertices, so composed
//     constructors produce disjoint components.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlathds/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before adding anything
// and return sentinel errors (no panics).
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Topology factories (implemented in impl_*.go):
//
//	Path(n)            P_n, n ≥ 2, edges i→i+1.
//	Cycle(n)           C_n, n ≥ 3, edges i→(i+1)%n.
//	Star(n)            hub + n-1 leaves, n ≥ 2.
//	Wheel(n)           C_{n-1} + hub, n ≥ 4.
//	Complete(n)        K_n, n ≥ 1.
//	Grid(rows, cols)   4-neighborhood grid, row-major ids.
//	RandomSparse(n, p) Erdős–Rényi-like, independent edges with probability p.
//	RandomTree(n)      uniform random recursive tree (vertex i attaches below a random j < i).
