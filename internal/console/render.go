package console

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/grafo/bfs"
	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/internal/config"
)

// pathStyle highlights path edges in Mermaid output.
const pathStyle = "stroke:#e8590c,stroke-width:3px"

// result is the JSON shape of a query outcome.
type result struct {
	Start    int   `json:"start"`
	End      int   `json:"end"`
	Found    bool  `json:"found"`
	Path     []int `json:"path"`
	Hops     int   `json:"hops"`
	Explored int   `json:"explored"`
}

// Render writes res to w in the named format (text, json or mermaid).
// The mermaid format draws every edge of g and highlights the path.
func Render(w io.Writer, format string, g *core.Graph, res *bfs.Result) error {
	switch format {
	case config.FormatText, "":
		return WriteText(w, res)
	case config.FormatJSON:
		return WriteJSON(w, res)
	case config.FormatMermaid:
		return WriteMermaid(w, g, res)
	default:
		return fmt.Errorf("unknown format: %s (supported: text, json, mermaid)", format)
	}
}

// FormatPath joins the vertices of path with " -> ".
func FormatPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " -> ")
}

// WriteText prints the human-readable outcome line.
func WriteText(w io.Writer, res *bfs.Result) error {
	var err error
	if res.Found {
		_, err = fmt.Fprintf(w, "\n🚀 Path found: %s 🎯\n", FormatPath(res.Path))
	} else {
		_, err = fmt.Fprintf(w, "\n❌ No path found between %d and %d!\n", res.Start, res.End)
	}
	return err
}

// WriteJSON prints the outcome as a single JSON object.
func WriteJSON(w io.Writer, res *bfs.Result) error {
	out := result{
		Start:    res.Start,
		End:      res.End,
		Found:    res.Found,
		Path:     res.Path,
		Hops:     res.Hops(),
		Explored: res.Explored,
	}
	if out.Path == nil {
		out.Path = []int{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteMermaid writes g in Mermaid flowchart syntax. Edges keep insertion
// order; the first edge matching each path step is highlighted, and the
// endpoints of the query are marked.
func WriteMermaid(w io.Writer, g *core.Graph, res *bfs.Result) error {
	var b strings.Builder

	b.WriteString("graph LR\n")
	for v := 1; v <= g.VertexCount(); v++ {
		fmt.Fprintf(&b, "    %s((%d))\n", mermaidID(v), v)
	}

	steps := pathSteps(res)
	var highlighted []string
	for i, e := range g.Edges() {
		fmt.Fprintf(&b, "    %s --- %s\n", mermaidID(e.U), mermaidID(e.V))
		key := unordered(e.U, e.V)
		if steps[key] {
			highlighted = append(highlighted, strconv.Itoa(i))
			delete(steps, key)
		}
	}
	if len(highlighted) > 0 {
		fmt.Fprintf(&b, "    linkStyle %s %s\n", strings.Join(highlighted, ","), pathStyle)
	}

	fmt.Fprintf(&b, "    classDef endpoint fill:#ffe8cc,stroke:#e8590c\n")
	fmt.Fprintf(&b, "    class %s,%s endpoint\n", mermaidID(res.Start), mermaidID(res.End))

	_, err := io.WriteString(w, b.String())
	return err
}

// pathSteps returns the unordered vertex pairs traversed by the path.
// A path is simple, so each pair appears once.
func pathSteps(res *bfs.Result) map[[2]int]bool {
	steps := make(map[[2]int]bool)
	if !res.Found {
		return steps
	}
	for i := 1; i < len(res.Path); i++ {
		steps[unordered(res.Path[i-1], res.Path[i])] = true
	}
	return steps
}

func unordered(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}

func mermaidID(v int) string {
	return "v" + strconv.Itoa(v)
}
