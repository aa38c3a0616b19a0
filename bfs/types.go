// Package bfs provides tunable options, result types and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/grafo/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.Err and BFSResult.PathTo when the
	// destination was not reached. FindPath itself never returns it.
	ErrNoPath = errors.New("bfs: no path found")
)

// noParent marks a vertex without a BFS predecessor; vertex ids start at 1.
const noParent = 0

// unreached marks a vertex whose depth was never assigned.
const unreached = -1

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
//
// Hooks run without any graph lock held. They may read the graph; edges
// they add to a vertex already being expanded are not followed.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	// Receives vertex ID and its depth from the start.
	OnEnqueue func(id int, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(id int, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id int, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// StopOnTarget ends FindPath as soon as the end vertex is discovered
	// instead of draining the queue. The returned path is the same.
	StopOnTarget bool

	// Concurrency bounds the number of simultaneous searches in FindPaths.
	// Zero means one worker per query.
	Concurrency int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
//   - full queue drain (StopOnTarget == false)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
		StopOnTarget:   false,
		Concurrency:    0,
		err:            nil,
	}
}

// resolveOptions applies opts over DefaultOptions and reports the first
// recorded violation.
func resolveOptions(opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id int, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id int, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id int, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithStopOnTarget makes FindPath return as soon as the end vertex is
// discovered. Plain BFS traversals ignore it.
func WithStopOnTarget() Option {
	return func(o *BFSOptions) { o.StopOnTarget = true }
}

// WithConcurrency bounds the worker count used by FindPaths.
//
//	n > 0: at most n searches run at once
//	n == 0: one worker per query
//	n < 0: invalid option → ErrOptionViolation
func WithConcurrency(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Concurrency cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Concurrency = n
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: vertex id → distance in edges from Start, -1 if unreached.
//   - Parent: vertex id → predecessor in the BFS tree, 0 for Start and unreached vertices.
//
// Depth and Parent are indexed by vertex id; index 0 is unused.
type BFSResult struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether dest was discovered by the traversal.
func (r *BFSResult) Reached(dest int) bool {
	return dest > 0 && dest < len(r.Depth) && r.Depth[dest] != unreached
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d → %d", ErrNoPath, r.Start, dest)
	}
	return reconstruct(r.Parent, r.Start, dest), nil
}

// Query names one start/end pair for FindPaths.
type Query struct {
	Start int
	End   int
}

// Result is the outcome of FindPath.
//
// Found is false when End is unreachable from Start; Path is nil then.
// Otherwise Path runs from Start to End inclusive and has the minimum
// possible number of edges. Explored counts the vertices dequeued.
type Result struct {
	Start    int
	End      int
	Path     []int
	Found    bool
	Explored int
}

// Hops returns the edge count of the path, or -1 when no path was found.
func (r *Result) Hops() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}

// Err returns ErrNoPath (wrapped with the endpoints) when no path was found.
func (r *Result) Err() error {
	if r.Found {
		return nil
	}
	return fmt.Errorf("%w: %d → %d", ErrNoPath, r.Start, r.End)
}

// checkEndpoint wraps core.ErrOutOfRange with the role of the offending id.
func checkEndpoint(g *core.Graph, role string, id int) error {
	if err := g.Validate(id); err != nil {
		return fmt.Errorf("bfs: %s vertex: %w", role, err)
	}
	return nil
}
