// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over immutable construction-time state.
// Policy:
//   - No algorithms or hidden state here.
//   - Vertex count and limit never change after NewGraph, so no locks are taken.

package core

// VertexCount returns the number of vertices fixed at construction.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return g.vertexCount
}

// MaxVertices returns the ceiling NewGraph validated the vertex count against.
// Complexity: O(1).
func (g *Graph) MaxVertices() int {
	return g.maxVertices
}

// HasVertex reports whether v lies in [1, VertexCount].
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	return g.checkVertex(v) == nil
}

// Validate returns a wrapped ErrOutOfRange naming the first id in ids that
// does not belong to the graph, or nil if all are valid.
//
// Callers use it to reject query endpoints before running a search.
// Complexity: O(len(ids)).
func (g *Graph) Validate(ids ...int) error {
	for _, v := range ids {
		if err := g.checkVertex(v); err != nil {
			return err
		}
	}
	return nil
}
