package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/grafo/bfs"
	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/internal/config"
)

// ErrInvalidEdgeCount is returned when a negative edge count is entered.
var ErrInvalidEdgeCount = errors.New("console: invalid number of edges")

// Options controls one interactive session.
type Options struct {
	// MaxVertices bounds the vertex count accepted for the graph.
	MaxVertices int

	// StrictEdges aborts on the first out-of-range edge instead of skipping it.
	StrictEdges bool

	// StopOnTarget is forwarded to the search.
	StopOnTarget bool

	// Format selects the result renderer. Prompts and banners are printed
	// only for the text format so json and mermaid output stay parseable.
	Format string
}

// Session walks the user through graph construction and one path query.
type Session struct {
	in   *Reader
	out  io.Writer
	opts Options
	log  *zap.Logger
}

// NewSession wires a session reading answers from in and writing to out.
// A nil logger is replaced by a no-op logger.
func NewSession(in io.Reader, out io.Writer, opts Options, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxVertices == 0 {
		opts.MaxVertices = core.DefaultMaxVertices
	}
	if opts.Format == "" {
		opts.Format = config.FormatText
	}

	s := &Session{out: out, opts: opts, log: logger}
	s.in = NewReader(in, s.promptWriter())
	return s
}

// promptWriter returns out in text mode and io.Discard otherwise.
func (s *Session) promptWriter() io.Writer {
	if s.opts.Format == config.FormatText {
		return s.out
	}
	return io.Discard
}

// say prints a decorative or diagnostic line in text mode only.
func (s *Session) say(format string, args ...any) {
	fmt.Fprintf(s.promptWriter(), format, args...)
}

// Run executes the session. It returns nil when the query ran, whether or
// not a path exists; any returned error means the workflow was aborted.
func (s *Session) Run(ctx context.Context) error {
	s.say("🕸️  Welcome to the Interactive Graph Builder! 🎯\n")
	s.say("------------------------------------------------------\n")

	g, err := s.readGraph()
	if err != nil {
		return err
	}

	res, err := s.query(ctx, g)
	if err != nil {
		return err
	}

	if err = Render(s.out, s.opts.Format, g, res); err != nil {
		return fmt.Errorf("rendering result: %w", err)
	}

	s.say("\n🌟 Thanks for using the Graph Builder! 🚀\n\n")
	return nil
}

// readGraph reads the vertex count, the edge count and the edges.
func (s *Session) readGraph() (*core.Graph, error) {
	n, err := s.in.ReadInt("\nEnter the number of vertices: ")
	if err != nil {
		return nil, err
	}

	g, err := core.NewGraph(n, core.WithMaxVertices(s.opts.MaxVertices))
	if err != nil {
		s.say("\n🚨 Error: the number of vertices must be between 1 and %d!\n\n", s.opts.MaxVertices)
		return nil, err
	}
	s.log.Debug("graph created", zap.Int("vertices", n))

	m, err := s.in.ReadInt("Enter the number of edges: ")
	if err != nil {
		return nil, err
	}
	if m < 0 {
		s.say("\n⚠️ Invalid number of edges!\n")
		return nil, fmt.Errorf("%w: %d", ErrInvalidEdgeCount, m)
	}

	s.say("\n🛠️  Define the connections between vertices (e.g. 1 2 connects 1 and 2):\n")
	skipped := 0
	for i := 0; i < m; i++ {
		u, v, err := s.in.ReadPair()
		if err != nil {
			return nil, err
		}
		err = g.AddEdge(u, v)
		if err == nil {
			continue
		}
		if !errors.Is(err, core.ErrOutOfRange) || s.opts.StrictEdges {
			s.say("\n❌ Error! Vertices %d and %d are outside the allowed range (1 to %d)\n", u, v, n)
			return nil, err
		}
		skipped++
		s.say("\n⚠️ Invalid edge: (%d, %d) is outside the graph bounds!\n", u, v)
		s.log.Warn("edge skipped", zap.Int("u", u), zap.Int("v", v), zap.Error(err))
	}
	s.log.Info("graph built",
		zap.Int("vertices", n),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("skipped", skipped))

	return g, nil
}

// query reads the endpoints, validates them, and runs the search.
func (s *Session) query(ctx context.Context, g *core.Graph) (*bfs.Result, error) {
	s.say("\n🎯 Now choose the vertices to search a path between!\n")
	start, err := s.in.ReadInt("\nEnter the source vertex: ")
	if err != nil {
		return nil, err
	}
	end, err := s.in.ReadInt("Enter the destination vertex: ")
	if err != nil {
		return nil, err
	}
	if err = g.Validate(start, end); err != nil {
		s.say("\n⚠️ Error! Invalid source or destination vertex!\n")
		return nil, err
	}

	opts := []bfs.Option{bfs.WithContext(ctx)}
	if s.opts.StopOnTarget {
		opts = append(opts, bfs.WithStopOnTarget())
	}
	res, err := bfs.FindPath(g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	s.log.Info("query finished",
		zap.Int("start", start),
		zap.Int("end", end),
		zap.Bool("found", res.Found),
		zap.Int("hops", res.Hops()),
		zap.Int("explored", res.Explored))

	return res, nil
}
