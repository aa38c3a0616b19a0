package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafo/builder"
	"github.com/katalvlaran/grafo/core"
)

// execute runs a fresh command tree with stdin and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

type jsonResult struct {
	Start    int   `json:"start"`
	End      int   `json:"end"`
	Found    bool  `json:"found"`
	Path     []int `json:"path"`
	Hops     int   `json:"hops"`
	Explored int   `json:"explored"`
}

func decode(t *testing.T, out string) jsonResult {
	t.Helper()
	var r jsonResult
	require.NoError(t, json.Unmarshal([]byte(out), &r), "stdout: %q", out)
	return r
}

func TestParseEdge(t *testing.T) {
	tests := []struct {
		in      string
		want    core.Edge
		wantErr bool
	}{
		{in: "1-2", want: core.Edge{U: 1, V: 2}},
		{in: "10,3", want: core.Edge{U: 10, V: 3}},
		{in: " 4 , 5 ", want: core.Edge{U: 4, V: 5}},
		{in: "-1-2", want: core.Edge{U: -1, V: 2}},
		{in: "1--2", want: core.Edge{U: 1, V: -2}},
		{in: "12", wantErr: true},
		{in: ",2", wantErr: true},
		{in: "a-b", wantErr: true},
		{in: "1-", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseEdge(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEdgeList_Value(t *testing.T) {
	var l edgeList
	require.NoError(t, l.Set("1-2"))
	require.NoError(t, l.Set("2,3"))
	require.Error(t, l.Set("x"))
	assert.Equal(t, "[1-2,2-3]", l.String())
	assert.Equal(t, "edge", l.Type())
	assert.Len(t, l, 2)
}

func TestPath_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		found bool
		path  []int
	}{
		{
			name:  "chain",
			args:  []string{"-n", "4", "-e", "1-2", "-e", "2-3", "-e", "3-4", "--from", "1", "--to", "4"},
			found: true,
			path:  []int{1, 2, 3, 4},
		},
		{
			name: "disconnected",
			args: []string{"-n", "4", "-e", "1-2", "--from", "1", "--to", "4"},
			path: []int{},
		},
		{
			name: "diamond",
			args: []string{"-n", "5", "-e", "1-2", "-e", "1-3", "-e", "2-4", "-e", "3-4", "-e", "4-5",
				"--from", "1", "--to", "5"},
			found: true,
			path:  []int{1, 2, 4, 5},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"path", "--format", "json"}, tc.args...)
			out, _, err := execute(t, "", args...)
			require.NoError(t, err)
			r := decode(t, out)
			assert.Equal(t, tc.found, r.Found)
			assert.Equal(t, tc.path, r.Path)
			assert.Equal(t, len(tc.path)-1, r.Hops)
		})
	}
}

func TestPath_OutOfRangeEdge(t *testing.T) {
	args := []string{"path", "-n", "3", "-e", "1-5", "-e", "1-2", "--from", "1", "--to", "2"}

	out, errOut, err := execute(t, "", args...)
	require.NoError(t, err)
	assert.Contains(t, out, "🚀 Path found: 1 -> 2 🎯")
	assert.Contains(t, errOut, "warning: edge (1, 5)")

	_, _, err = execute(t, "", append(args, "--strict")...)
	require.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestPath_Errors(t *testing.T) {
	_, _, err := execute(t, "", "path", "-n", "3", "--from", "1", "--to", "4")
	require.ErrorIs(t, err, core.ErrOutOfRange)

	_, _, err = execute(t, "", "path", "-n", "0", "--from", "1", "--to", "1")
	require.ErrorIs(t, err, core.ErrInvalidSize)

	_, _, err = execute(t, "", "path", "-n", "200", "--from", "1", "--to", "1")
	require.ErrorIs(t, err, core.ErrInvalidSize)

	_, _, err = execute(t, "", "path", "-n", "200", "--max-vertices", "500", "--from", "1", "--to", "1")
	require.NoError(t, err)

	_, _, err = execute(t, "", "path", "-n", "3", "--from", "1")
	require.Error(t, err, "--to is required")

	_, _, err = execute(t, "", "path", "-n", "3", "--from", "1", "--to", "2", "--format", "dot")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format must be one of")
}

func TestPath_Mermaid(t *testing.T) {
	out, _, err := execute(t, "", "path", "--format", "mermaid",
		"-n", "3", "-e", "1-2", "-e", "2-3", "--from", "1", "--to", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph LR\n"))
	assert.Contains(t, out, "linkStyle 0,1 ")
}

func TestGenerate(t *testing.T) {
	out, _, err := execute(t, "", "generate", "--format", "json", "--kind", "cycle", "-n", "6", "--to", "4")
	require.NoError(t, err)
	r := decode(t, out)
	assert.Equal(t, []int{1, 2, 3, 4}, r.Path)

	out, _, err = execute(t, "", "generate", "--kind", "star", "-n", "5", "--from", "2", "--to", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated star graph: 5 vertices, 4 edges")
	assert.Contains(t, out, "Path found: 2 -> 1 -> 5")

	_, _, err = execute(t, "", "generate", "--kind", "torus", "-n", "4", "--to", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "supported: complete, cycle, path, random, star")

	_, _, err = execute(t, "", "generate", "--kind", "cycle", "-n", "2", "--to", "2")
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestGenerate_RandomIsSeeded(t *testing.T) {
	args := []string{"generate", "--format", "json", "--kind", "random", "-n", "40", "--p", "0.08", "--seed", "3", "--to", "40"}
	a, _, err := execute(t, "", args...)
	require.NoError(t, err)
	b, _, err := execute(t, "", args...)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRoot_Interactive(t *testing.T) {
	out, _, err := execute(t, "4\n3\n1 2\n2 3\n3 4\n1 4\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to the Interactive Graph Builder!")
	assert.Contains(t, out, "🚀 Path found: 1 -> 2 -> 3 -> 4 🎯")

	_, _, err = execute(t, "3\n-2\n")
	require.Error(t, err)

	_, _, err = execute(t, "", "extra")
	require.Error(t, err)
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grafo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\nstop_on_target: true\nlog:\n  level: error\n"), 0o600))

	out, _, err := execute(t, "3\n2\n1 2\n2 3\n1 3\n", "--config", path)
	require.NoError(t, err)
	r := decode(t, out)
	assert.Equal(t, []int{1, 2, 3}, r.Path)

	// flags win over the file
	out, _, err = execute(t, "2\n1\n1 2\n1 2\n", "--config", path, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Path found: 1 -> 2")

	_, _, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestRoot_FlagsOverrideInvalidEnv(t *testing.T) {
	t.Setenv("GRAFO_FORMAT", "xml")
	t.Setenv("GRAFO_MAX_VERTICES", "0")

	out, _, err := execute(t, "", "path", "--format", "json", "--max-vertices", "10",
		"-n", "2", "-e", "1-2", "--from", "1", "--to", "2")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, decode(t, out).Path)

	// without the overriding flags the merged config is still rejected
	_, _, err = execute(t, "", "path", "--max-vertices", "10",
		"-n", "2", "-e", "1-2", "--from", "1", "--to", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format must be one of")
}

func TestRoot_FlagsOverrideInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grafo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_vertices: 0\nformat: xml\n"), 0o600))

	out, _, err := execute(t, "", "--config", path, "--format", "text", "--max-vertices", "5",
		"generate", "--kind", "path", "-n", "3", "--to", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Path found: 1 -> 2 -> 3")
}
