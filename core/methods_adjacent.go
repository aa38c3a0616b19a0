// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, Degree).
// Determinism:
//   - Neighbors are yielded in insertion order; duplicates are preserved.
// Concurrency:
//   - Each read holds mu for reading only while it captures the list.
//   - Lists are append-only between Clear calls, so a captured prefix never changes.

package core

import "iter"

// Neighbors returns a lazy sequence over v's neighbors in insertion order.
//
// Behavior highlights:
//   - The sequence is re-iterable: each range over it captures the list as it
//     is when the range starts; edges added during the range are not yielded.
//   - No lock is held while yielding, so the loop body may read or mutate
//     the graph, including AddEdge on v itself.
//   - The sequence is read-only; it exposes ids, never the backing slice.
//
// Errors:
//   - ErrOutOfRange if v is outside [1, VertexCount]; the sequence is nil then.
//
// Complexity:
//   - O(1) to create; O(deg(v)) per full iteration.
func (g *Graph) Neighbors(v int) (iter.Seq[int], error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	return func(yield func(int) bool) {
		g.mu.RLock()
		list := g.adjacency[v]
		g.mu.RUnlock()

		for _, w := range list {
			if !yield(w) {
				return
			}
		}
	}, nil
}

// NeighborIDs returns a copy of v's neighbor list in insertion order.
//
// Errors:
//   - ErrOutOfRange if v is outside [1, VertexCount].
//
// Complexity: O(deg(v)).
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// Degree returns the length of v's neighbor list. Parallel edges count once
// per edge and a self-loop counts twice.
//
// Errors:
//   - ErrOutOfRange if v is outside [1, VertexCount].
//
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[v]), nil
}
