package cli

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/grafo/bfs"
	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/internal/console"
)

// query runs one search on g and renders the outcome to w.
// A missing path is reported, not returned as an error.
func (a *app) query(ctx context.Context, w io.Writer, g *core.Graph, from, to int) error {
	if err := g.Validate(from, to); err != nil {
		return fmt.Errorf("invalid endpoints: %w", err)
	}

	opts := []bfs.Option{bfs.WithContext(ctx)}
	if a.cfg.StopOnTarget {
		opts = append(opts, bfs.WithStopOnTarget())
	}
	res, err := bfs.FindPath(g, from, to, opts...)
	if err != nil {
		return err
	}
	a.log.Info("query finished",
		zap.Int("start", from),
		zap.Int("end", to),
		zap.Bool("found", res.Found),
		zap.Int("hops", res.Hops()),
		zap.Int("explored", res.Explored))

	return console.Render(w, a.cfg.Format, g, res)
}
