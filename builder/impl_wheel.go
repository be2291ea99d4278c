// SPDX-License-Identifier: MIT
// Package: lvlathds/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): a ring of n-1 ≥ 3 vertices plus a hub.
//   • Ring vertices come first, the hub is the last new vertex.
//   • Emission order: ring edges i→(i+1)%(n-1), then spokes hub→i.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlathds/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // because outer cycle has size (n-1) which must be ≥ 3
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		base := g.AddVertices(n)
		ring, hub := n-1, base+n-1
		for i := 0; i < ring; i++ {
			if err := addWeightedEdge(g, cfg, methodWheel, base+i, base+(i+1)%ring, false); err != nil {
				return err
			}
		}
		for i := 0; i < ring; i++ {
			if err := addWeightedEdge(g, cfg, methodWheel, hub, base+i, true); err != nil {
				return err
			}
		}
		return nil
	}
}
