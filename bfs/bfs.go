// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/grafo/core"
)

// walker encapsulates mutable BFS state. All per-vertex slices are indexed
// by vertex id and sized VertexCount+1.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []int
	head    int
	visited []bool
	depth   []int
	parent  []int
	order   []int

	// target is the FindPath end vertex; 0 for plain traversals.
	target int
	found  bool
}

// newWalker allocates traversal state for g.
func newWalker(g *core.Graph, o BFSOptions) *walker {
	n := g.VertexCount() + 1
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
		depth:   make([]int, n),
		parent:  make([]int, n),
		order:   make([]int, 0, n),
	}
	for i := range w.depth {
		w.depth[i] = unreached
	}
	return w
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil, core.ErrOutOfRange for a start outside the graph,
// ErrOptionViolation for bad options,
// the context error on cancellation, or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
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

	w := newWalker(g, o)
	w.enqueue(start, 0, noParent)
	err = w.loop()

	return &BFSResult{
		Start:  start,
		Order:  w.order,
		Depth:  w.depth,
		Parent: w.parent,
	}, err
}

// Distances returns the hop distance from start to every vertex, indexed by
// vertex id (index 0 unused). Unreachable vertices hold -1.
func Distances(g *core.Graph, start int, opts ...Option) ([]int, error) {
	res, err := BFS(g, start, opts...)
	if err != nil {
		return nil, err
	}
	return res.Depth, nil
}

// enqueue marks id visited at depth d, records its parent, calls OnEnqueue,
// and appends it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.depth[id] = d
	w.parent[id] = parent
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, id)
}

// dequeue pops the head item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() int {
	id := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(id, w.depth[id])
	return id
}

// loop processes the queue until empty, error, or cancellation. With
// StopOnTarget set it also returns once the target has been discovered.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per dequeue)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}
		if w.found && w.opts.StopOnTarget {
			return nil
		}

		id := w.dequeue()
		if err := w.visit(id); err != nil {
			return err
		}
		w.enqueueNeighbors(id)
	}
	return nil
}

// visit records the vertex in order and calls OnVisit.
func (w *walker) visit(id int) error {
	w.order = append(w.order, id)
	if err := w.opts.OnVisit(id, w.depth[id]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
	}
	return nil
}

// enqueueNeighbors walks id's adjacency in insertion order, applies
// filtering and MaxDepth, and enqueues each unseen neighbor. Discovering the
// target ends the scan of id's remaining neighbors; the queue keeps draining.
func (w *walker) enqueueNeighbors(id int) {
	nextDepth := w.depth[id] + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}

	// only validated ids are ever enqueued, so Neighbors cannot fail here
	seq, _ := w.graph.Neighbors(id)
	for nbr := range seq {
		if w.visited[nbr] || !w.opts.FilterNeighbor(id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, id)
		if nbr == w.target {
			w.found = true
			break
		}
	}
}

// reconstruct walks parent links from end back to start and returns the
// path in start→end order. end must have been reached.
func reconstruct(parent []int, start, end int) []int {
	path := []int{end}
	for cur := end; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
