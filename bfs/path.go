package bfs

import (
	"github.com/katalvlaran/grafo/core"
)

// FindPath returns a shortest path (fewest edges) from start to end in g.
//
// The search seeds the queue with start, expands neighbors in adjacency
// order, and fixes each vertex's parent on first discovery, so the first
// time end is reached its parent chain is minimal. Discovering end stops
// the scan of the current vertex's remaining neighbors; the queue still
// drains unless WithStopOnTarget is given.
//
// An unreachable end is not an error: the Result has Found == false.
// start == end yields the single-vertex path [start].
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - core.ErrOutOfRange (wrapped) if start or end is outside the graph.
//   - ErrOptionViolation for bad options.
//   - The context error on cancellation, or any OnVisit hook error.
//
// Complexity: O(V + E) time, O(V) space.
func FindPath(g *core.Graph, start, end int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = checkEndpoint(g, "start", start); err != nil {
		return nil, err
	}
	if err = checkEndpoint(g, "end", end); err != nil {
		return nil, err
	}

	w := newWalker(g, o)
	w.target = end
	w.found = start == end
	w.enqueue(start, 0, noParent)
	if err = w.loop(); err != nil {
		return nil, err
	}

	res := &Result{Start: start, End: end, Explored: w.head}
	switch {
	case start == end:
		res.Path = []int{start}
	case w.parent[end] == noParent:
		return res, nil
	default:
		res.Path = reconstruct(w.parent, start, end)
	}
	res.Found = true

	return res, nil
}
