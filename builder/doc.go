// Package builder provides deterministic, functional-options constructors
// for core.Graph fixtures: paths, cycles, stars, complete graphs and
// Erdős–Rényi-like random graphs.
//
// Key components:
//
//   - BuildGraph(n, gopts, bopts, cons...): creates an n-vertex graph and
//     applies constructors in order.
//   - Constructor: func(g *core.Graph, cfg builderConfig) error.
//   - Topologies: Path(n), Cycle(n), Star(n), Complete(n), RandomSparse(n, p).
//   - Options: WithSeed(seed), WithRand(r), WithOffset(first); placement: At(first, c).
//
// Vertex placement:
//
//	Constructor index i maps to vertex id offset+i (offset defaults to 1).
//	WithOffset moves every constructor; At(first, c) moves a single one,
//	which lays several disjoint components into one graph:
//
//	g, err := builder.BuildGraph(7, nil, nil,
//	    builder.Path(3),                // 1–2–3
//	    builder.At(4, builder.Cycle(4)), // 4–5–6–7–4
//	)
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with the constructor name.
//   - Ids that do not fit the graph surface as wrapped core.ErrOutOfRange.
//   - Same inputs, options and seed ⇒ same edges in the same order.
package builder
