package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/grafo/builder"
	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/internal/config"
)

// generators maps --kind values to builder constructors.
var generators = map[string]func(n int, p float64) builder.Constructor{
	"path":     func(n int, _ float64) builder.Constructor { return builder.Path(n) },
	"cycle":    func(n int, _ float64) builder.Constructor { return builder.Cycle(n) },
	"star":     func(n int, _ float64) builder.Constructor { return builder.Star(n) },
	"complete": func(n int, _ float64) builder.Constructor { return builder.Complete(n) },
	"random":   builder.RandomSparse,
}

func generatorKinds() string {
	kinds := make([]string, 0, len(generators))
	for k := range generators {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return strings.Join(kinds, ", ")
}

func newGenerateCommand(a *app) *cobra.Command {
	var (
		kind     string
		vertices int
		p        float64
		seed     int64
		from, to int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a graph of a known shape and query it",
		Example: `  grafo generate --kind cycle --vertices 6 --from 1 --to 4
  grafo generate --kind random --vertices 50 --p 0.05 --seed 7 --from 1 --to 50 --format mermaid`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := generators[kind]
			if !ok {
				return fmt.Errorf("unknown kind: %s (supported: %s)", kind, generatorKinds())
			}

			g, err := builder.BuildGraph(vertices,
				[]core.GraphOption{core.WithMaxVertices(a.cfg.MaxVertices)},
				[]builder.BuilderOption{builder.WithSeed(seed)},
				gen(vertices, p),
			)
			if err != nil {
				return err
			}
			a.log.Info("graph generated",
				zap.String("kind", kind),
				zap.Int("vertices", g.VertexCount()),
				zap.Int("edges", g.EdgeCount()),
				zap.Int64("seed", seed))

			if a.cfg.Format == config.FormatText {
				fmt.Fprintf(cmd.OutOrStdout(), "Generated %s graph: %d vertices, %d edges\n",
					kind, g.VertexCount(), g.EdgeCount())
			}
			return a.query(cmd.Context(), cmd.OutOrStdout(), g, from, to)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&kind, "kind", "k", "path", "graph shape: "+generatorKinds())
	f.IntVarP(&vertices, "vertices", "n", 0, "number of vertices")
	f.Float64Var(&p, "p", 0.3, "edge probability for --kind random")
	f.Int64Var(&seed, "seed", 1, "random seed for --kind random")
	f.IntVar(&from, "from", 1, "start vertex")
	f.IntVar(&to, "to", 0, "end vertex")
	for _, name := range []string{"vertices", "to"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
