// Package bfs provides breadth-first search over a core.Graph: shortest
// paths by edge count, hop distances, parent links, and visit order.
//
// What
//
//   - FindPath(g, start, end) returns a Result holding a minimum-edge path
//     from start to end, or Found == false when end is unreachable.
//   - BFS(g, start) explores the whole component of start and returns a
//     BFSResult containing:
//   - Order: visit sequence
//   - Depth: vertex → distance (edges) from start, -1 if unreached
//   - Parent: vertex → its predecessor in the BFS tree, 0 if none
//   - FindPaths(ctx, g, queries) answers independent queries concurrently
//     over the same read-only graph.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - BFS visits vertices in non-decreasing distance from the start and fixes
//     each parent on first discovery, so walking parents back from the end
//     yields a shortest path in O(V + E) time.
//
// Determinism
//
//	core.Graph yields neighbors in edge insertion order and BFS enqueues them
//	in that order, so ties between equally short paths always resolve the same
//	way for the same construction sequence.
//
// Multigraphs
//
//	Parallel edges and self-loops are harmless: a vertex is marked visited when
//	first enqueued and never enqueued again.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, visited, depth and parent slices
//
// Usage
//
//	res, err := bfs.FindPath(g, 1, 4)
//	if err != nil {
//	    // ErrGraphNil, core.ErrOutOfRange, ErrOptionViolation, ctx or hook errors
//	}
//	if !res.Found {
//	    // no path between 1 and 4
//	}
//	fmt.Println(res.Path) // [1 2 3 4]
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip edges for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):           hook before a vertex is enqueued.
//   - WithOnDequeue(fn):           hook immediately before visiting a vertex.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
//   - WithStopOnTarget():          FindPath returns once end is discovered.
//   - WithConcurrency(n):          bound FindPaths workers.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - core.ErrOutOfRange      if start or end is not a vertex of the graph.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               only from Result.Err and BFSResult.PathTo.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
