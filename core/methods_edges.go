// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion and edge catalog snapshots.
// Determinism:
//   - Adjacency lists grow by append, so neighbor order equals insertion order.
//   - Edges() returns the accepted edges in insertion order.
// Concurrency:
//   - Mutators hold mu for writing; snapshots hold mu for reading.

package core

import (
	"errors"
	"fmt"
)

// AddEdge connects u and v in both directions.
//
// Implementation:
//   - Stage 1: Validate both endpoints (no locks; the vertex count is immutable).
//   - Stage 2: Under the write lock append v to u's list and u to v's list.
//   - Stage 3: Record the edge in the catalog.
//
// Behavior highlights:
//   - Parallel edges and self-loops are accepted and duplicate adjacency entries.
//     A self-loop (v,v) lists v twice in its own neighbor list.
//   - On error the graph is unchanged; callers may continue adding other edges.
//
// Errors:
//   - ErrOutOfRange (wrapped with the offending pair) if u or v is outside [1, VertexCount].
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if err := g.Validate(u, v); err != nil {
		return fmt.Errorf("edge (%d, %d): %w", u, v, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency[u] = append(g.adjacency[u], v)
	g.adjacency[v] = append(g.adjacency[v], u)
	g.edges = append(g.edges, Edge{U: u, V: v})

	return nil
}

// AddEdges applies AddEdge to each edge in order. Invalid edges are skipped
// and construction continues; added counts the edges accepted and err joins
// the per-edge failures (nil when every edge was accepted).
//
// Complexity: O(len(edges)).
func (g *Graph) AddEdges(edges ...Edge) (added int, err error) {
	var errs []error
	for _, e := range edges {
		if addErr := g.AddEdge(e.U, e.V); addErr != nil {
			errs = append(errs, addErr)
			continue
		}
		added++
	}

	return added, errors.Join(errs...)
}

// EdgeCount returns the number of accepted edges, parallel edges and loops included.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns a copy of the accepted edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
