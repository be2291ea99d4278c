// SPDX-License-Identifier: MIT
// Package: lvlathds/builder
//
// impl_random_tree.go - random recursive trees, as a graph constructor and
// as a bare parent array.
//
// Model:
//   - Vertex 0 is the root; vertex i ≥ 1 attaches below a uniform j < i.
//   - Expected depth O(log n), which keeps the fixtures realistic for MST
//     and LCA checks.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices / ErrBadSize).
//   - RandomTree needs cfg.rng for n ≥ 3 (else ErrNeedRandSource).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlathds/core"
)

const (
	methodRandomTree = "RandomTree"
	minTreeNodes     = 1
	randomTreeSeed   = 1
)

// RandomTree returns a Constructor that builds a random recursive tree on n
// vertices. Edges are emitted as parent→child in ascending child order.
func RandomTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomTree, n, minTreeNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil && n > 2 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomTree, ErrNeedRandSource)
		}
		base := g.AddVertices(n)
		for i := 1; i < n; i++ {
			parent := 0
			if i > 1 {
				parent = cfg.rng.Intn(i)
			}
			if err := addWeightedEdge(g, cfg, methodRandomTree, base+parent, base+i, false); err != nil {
				return err
			}
		}
		return nil
	}
}

// RandomParents returns the parent array of a random recursive forest with
// the given number of roots: vertices 0..roots-1 are roots (-1), every other
// vertex points to a uniform smaller vertex. Returns nil when n < 1 or roots
// is not in [1, n].
func RandomParents(n, roots int, opts ...BuilderOption) []int {
	if n < minTreeNodes || roots < 1 || roots > n {
		return nil
	}
	rng := rngFrom(newBuilderConfig(opts...), randomTreeSeed)

	parent := make([]int, n)
	for i := range parent {
		if i < roots {
			parent[i] = -1
			continue
		}
		parent[i] = rng.Intn(i)
	}
	return parent
}
