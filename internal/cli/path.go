package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/grafo/core"
)

// edgeList is a repeatable --edge flag. Each value is "u-v" or "u,v".
type edgeList []core.Edge

func (l *edgeList) String() string {
	parts := make([]string, len(*l))
	for i, e := range *l {
		parts[i] = fmt.Sprintf("%d-%d", e.U, e.V)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (l *edgeList) Set(s string) error {
	e, err := parseEdge(s)
	if err != nil {
		return err
	}
	*l = append(*l, e)
	return nil
}

func (l *edgeList) Type() string { return "edge" }

// parseEdge splits on the first ',' or on the first '-' that is not a
// leading sign, so "-1-2" reads as (-1, 2).
func parseEdge(s string) (core.Edge, error) {
	s = strings.TrimSpace(s)
	i := strings.IndexByte(s, ',')
	if i < 0 && len(s) > 1 {
		if j := strings.IndexByte(s[1:], '-'); j >= 0 {
			i = j + 1
		}
	}
	if i <= 0 {
		return core.Edge{}, fmt.Errorf("edge %q: want u-v or u,v", s)
	}

	u, err := strconv.Atoi(strings.TrimSpace(s[:i]))
	if err != nil {
		return core.Edge{}, fmt.Errorf("edge %q: %w", s, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(s[i+1:]))
	if err != nil {
		return core.Edge{}, fmt.Errorf("edge %q: %w", s, err)
	}
	return core.Edge{U: u, V: v}, nil
}

func newPathCommand(a *app) *cobra.Command {
	var (
		vertices int
		edges    edgeList
		from, to int
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find the fewest-hop path in a graph given on the command line",
		Example: `  grafo path --vertices 4 --edge 1-2 --edge 2-3 --edge 3-4 --from 1 --to 4
  grafo path --vertices 3 --edge 1,2 --from 1 --to 3 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := core.NewGraph(vertices, core.WithMaxVertices(a.cfg.MaxVertices))
			if err != nil {
				return err
			}

			added, err := g.AddEdges(edges...)
			if err != nil {
				if a.cfg.StrictEdges {
					return err
				}
				a.log.Warn("edges skipped", zap.Int("skipped", len(edges)-added), zap.Error(err))
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}
			a.log.Info("graph built", zap.Int("vertices", vertices), zap.Int("edges", added))

			return a.query(cmd.Context(), cmd.OutOrStdout(), g, from, to)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&vertices, "vertices", "n", 0, "number of vertices")
	f.VarP(&edges, "edge", "e", "edge as u-v or u,v (repeatable)")
	f.IntVar(&from, "from", 0, "start vertex")
	f.IntVar(&to, "to", 0, "end vertex")
	for _, name := range []string{"vertices", "from", "to"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
