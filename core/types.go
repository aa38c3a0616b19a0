// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph and Edge types and provides
// thread-safe primitives for building and querying undirected graphs over a
// dense, fixed vertex set 1..N.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrInvalidSize - vertex count outside [1, MaxVertices].
//	ErrOutOfRange  - an operation referenced a vertex outside [1, VertexCount].
package core

import (
	"errors"
	"fmt"
	"sync"
)

// DefaultMaxVertices is the vertex-count ceiling applied when no
// WithMaxVertices option is supplied.
const DefaultMaxVertices = 100

// minVertices is the smallest admissible vertex count.
const minVertices = 1

// Sentinel errors for core graph operations.
var (
	// ErrInvalidSize indicates a vertex count outside [1, MaxVertices].
	ErrInvalidSize = errors.New("core: invalid vertex count")

	// ErrOutOfRange indicates an operation referenced a vertex outside [1, VertexCount].
	ErrOutOfRange = errors.New("core: vertex out of range")
)

// Edge is an unordered pair of vertex ids.
//
// Edges are stored exactly as supplied; (1,2) and (2,1) describe the same
// connection but are recorded separately if both are added.
type Edge struct {
	// U is the first endpoint.
	U int

	// V is the second endpoint.
	V int
}

// String renders the edge as "(u, v)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d)", e.U, e.V)
}

// GraphOption configures a Graph before its vertex count is validated.
type GraphOption func(g *Graph)

// WithMaxVertices sets the upper bound checked by NewGraph.
// Panics if n < 1; option constructors validate eagerly.
func WithMaxVertices(n int) GraphOption {
	if n < minVertices {
		panic(fmt.Sprintf("core: WithMaxVertices(%d): limit must be >= %d", n, minVertices))
	}
	return func(g *Graph) { g.maxVertices = n }
}

// Graph is an undirected multigraph over vertices 1..VertexCount.
//
// adjacency[v] holds v's neighbors in insertion order; index 0 is unused so
// that vertex ids index the slice directly. Self-loops and parallel edges are
// tolerated and simply repeat entries. mu guards adjacency and edges; the
// vertex count and limit are immutable after construction.
type Graph struct {
	mu sync.RWMutex

	// Configuration
	maxVertices int // ceiling validated by NewGraph
	vertexCount int // fixed at construction

	// Storage
	adjacency [][]int // vertex id → neighbor ids, insertion order
	edges     []Edge  // accepted edges, insertion order
}

// NewGraph creates a Graph with vertices 1..vertexCount and empty adjacency
// lists. It returns ErrInvalidSize if vertexCount is below 1 or above the
// configured maximum (DefaultMaxVertices unless WithMaxVertices is given).
// Complexity: O(V).
func NewGraph(vertexCount int, opts ...GraphOption) (*Graph, error) {
	g := &Graph{maxVertices: DefaultMaxVertices}
	for _, opt := range opts {
		opt(g)
	}

	if vertexCount < minVertices || vertexCount > g.maxVertices {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidSize, vertexCount, minVertices, g.maxVertices)
	}

	g.vertexCount = vertexCount
	g.adjacency = make([][]int, vertexCount+1)

	return g, nil
}

// checkVertex reports ErrOutOfRange for ids outside [1, vertexCount].
// vertexCount is immutable, so no lock is required.
func (g *Graph) checkVertex(v int) error {
	if v < minVertices || v > g.vertexCount {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, v, minVertices, g.vertexCount)
	}
	return nil
}
