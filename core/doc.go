// Package core provides a thread-safe, in-memory undirected Graph over a
// dense vertex set 1..N with insertion-ordered adjacency lists.
//
// The Graph G = (V,E) is shaped for unweighted shortest-path queries:
//
//   - Fixed vertex set: NewGraph(n) creates vertices 1..n; there is no vertex
//     deletion and n is bounded by DefaultMaxVertices or WithMaxVertices.
//   - Undirected edges: AddEdge(u, v) appends v to u's list and u to v's list.
//   - Multigraph tolerance: parallel edges and self-loops are kept as duplicate
//     adjacency entries; traversals dedupe through their visited sets.
//   - Insertion order: Neighbors(v) yields ids in the order edges were added,
//     which fixes BFS tie-breaking.
//   - One sync.RWMutex guards adjacency and the edge catalog; the vertex count
//     is immutable, so range checks never lock.
//
// Lifecycle:
//
//	g, err := core.NewGraph(4)           // ErrInvalidSize if outside [1, max]
//	_ = g.AddEdge(1, 2)                  // ErrOutOfRange skips the edge only
//	seq, _ := g.Neighbors(1)             // lazy, re-iterable
//	for w := range seq { ... }
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error) // O(V)
//	AddEdge(u, v int) error                              // O(1) amortized
//	AddEdges(edges ...Edge) (int, error)                 // O(k), skips invalid edges
//	Neighbors(v int) (iter.Seq[int], error)              // O(1), O(deg) per pass
//	NeighborIDs(v int) ([]int, error)                    // O(deg), copy
//	Degree(v int) (int, error)                           // O(1)
//	HasVertex(v int) bool / Validate(ids ...int) error   // O(1) per id
//	VertexCount() / MaxVertices() / EdgeCount() int      // O(1)
//	Edges() []Edge                                       // O(E), insertion order
//
// Errors:
//
//	ErrInvalidSize – vertex count outside [1, MaxVertices]
//	ErrOutOfRange  – vertex id outside [1, VertexCount]
package core
