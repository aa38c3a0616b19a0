// SPDX-License-Identifier: MIT
// Package: grafo/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is idFn(0); leaves idFn(1..n-1) are attached in increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grafo/core"
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

		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodStar, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}
		return nil
	}
}
