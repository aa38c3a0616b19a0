// Package grafo builds undirected graphs over a dense vertex set 1..N and
// answers fewest-hop path queries with breadth-first search.
//
// Layout:
//
//	core/     — Graph and Edge types; thread-safe edge insertion and neighbor iteration
//	bfs/      — BFS traversal, FindPath with parent-pointer reconstruction, FindPaths batches
//	builder/  — deterministic topologies (path, cycle, star, complete, random) for fixtures
//	cmd/grafo — interactive and flag-driven command line front end
//
// Quick start:
//
//	g, _ := core.NewGraph(4)
//	_ = g.AddEdge(1, 2)
//	_ = g.AddEdge(2, 3)
//	_ = g.AddEdge(3, 4)
//	res, _ := bfs.FindPath(g, 1, 4)
//	fmt.Println(res.Path) // [1 2 3 4]
//
// A query whose endpoints lie in different components is not an error:
// FindPath returns a Result with Found == false, and Result.Err reports
// bfs.ErrNoPath for callers that prefer an error value.
package grafo
