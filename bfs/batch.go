package bfs

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/grafo/core"
)

// FindPaths answers several independent queries over the same graph
// concurrently and returns the results in query order.
//
// The graph is only read during the searches, so every query shares it
// without copying. WithConcurrency bounds the number of
// simultaneous searches. The first failing query cancels the rest and its
// error (tagged with the query index) is returned.
func FindPaths(ctx context.Context, g *core.Graph, queries []Query, opts ...Option) ([]*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	eg, gctx := errgroup.WithContext(ctx)
	if o.Concurrency > 0 {
		eg.SetLimit(o.Concurrency)
	}

	results := make([]*Result, len(queries))
	// caller options first so the group context always wins
	perQuery := append(append([]Option{}, opts...), WithContext(gctx))
	for i, q := range queries {
		eg.Go(func() error {
			res, err := FindPath(g, q.Start, q.End, perQuery...)
			if err != nil {
				return fmt.Errorf("query %d (%d → %d): %w", i, q.Start, q.End, err)
			}
			results[i] = res
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
