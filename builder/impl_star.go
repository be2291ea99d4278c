// SPDX-License-Identifier: MIT
// Package: lvlathds/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The hub is the first new vertex; leaves follow in ascending order.
//   • Directed graphs get both spoke directions.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlathds/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := g.AddVertices(n)
		for i := 1; i < n; i++ {
			if err := addWeightedEdge(g, cfg, methodStar, hub, hub+i, true); err != nil {
				return err
			}
		}
		return nil
	}
}
