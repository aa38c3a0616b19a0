// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves adjacency and edge catalog order exactly.
// Concurrency:
//   - Read lock for snapshotting; the source graph is never mutated.

package core

// CloneEmpty returns a new Graph with the same vertex set and limit but no edges.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	return &Graph{
		maxVertices: g.maxVertices,
		vertexCount: g.vertexCount,
		adjacency:   make([][]int, g.vertexCount+1),
	}
}

// Clone returns a deep copy of the Graph: vertex set, adjacency and edges.
// Later mutations of either graph are invisible to the other.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	for v := minVertices; v <= g.vertexCount; v++ {
		if len(g.adjacency[v]) > 0 {
			clone.adjacency[v] = append([]int(nil), g.adjacency[v]...)
		}
	}
	clone.edges = append([]Edge(nil), g.edges...)

	return clone
}

// Clear removes every edge while keeping the vertex set.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for v := range g.adjacency {
		g.adjacency[v] = nil
	}
	g.edges = nil
}
