// SPDX-License-Identifier: MIT
// Package: lvlathds/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex of cell (r,c) is base + r*cols + c (row-major).
//   • For each (r,c) emit Right then Bottom if present; mirrored in directed graphs.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlathds/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 2) Add all vertices in row-major order.
		base := g.AddVertices(rows * cols)
		cell := func(r, c int) int { return base + r*cols + c }

		// 3) Emit edges: for each (r,c), connect to Right and Bottom neighbors if they exist.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addWeightedEdge(g, cfg, methodGrid, cell(r, c), cell(r, c+1), true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addWeightedEdge(g, cfg, methodGrid, cell(r, c), cell(r+1, c), true); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
