package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grafo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, core.DefaultMaxVertices, cfg.MaxVertices)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.StrictEdges)
	assert.False(t, cfg.StopOnTarget)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
max_vertices: 500
strict_edges: true
stop_on_target: true
format: mermaid
log:
  level: debug
  development: true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.MaxVertices)
	assert.True(t, cfg.StrictEdges)
	assert.True(t, cfg.StopOnTarget)
	assert.Equal(t, config.FormatMermaid, cfg.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "strict_edges: true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.StrictEdges)
	assert.Equal(t, core.DefaultMaxVertices, cfg.MaxVertices)
	assert.Equal(t, config.FormatText, cfg.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "max_vertices: 50\nformat: text\n")
	t.Setenv("GRAFO_MAX_VERTICES", "75")
	t.Setenv("GRAFO_FORMAT", "JSON")
	t.Setenv("GRAFO_STRICT_EDGES", "true")
	t.Setenv("GRAFO_STOP_ON_TARGET", "1")
	t.Setenv("GRAFO_LOG_LEVEL", "error")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 75, cfg.MaxVertices)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.True(t, cfg.StrictEdges)
	assert.True(t, cfg.StopOnTarget)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")

	_, err = config.Load(writeConfig(t, "max_vertices: [1, 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")

	_, err = config.Load(writeConfig(t, "max_vertices: 0\nformat: xml\nlog:\n  level: loud\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "max_vertices must be at least 1")
	assert.Contains(t, err.Error(), "format must be one of: text json mermaid")
	assert.Contains(t, err.Error(), "log.level must be one of")

	t.Setenv("GRAFO_MAX_VERTICES", "many")
	_, err = config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GRAFO_MAX_VERTICES")
}

func TestRead_LeavesValidationToCaller(t *testing.T) {
	t.Setenv("GRAFO_FORMAT", "xml")
	path := writeConfig(t, "max_vertices: 0\n")

	cfg, err := config.Read(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.MaxVertices)
	assert.Equal(t, "xml", cfg.Format)
	require.Error(t, cfg.Validate())

	cfg.MaxVertices = 10
	cfg.Format = config.FormatJSON
	require.NoError(t, cfg.Validate())

	_, err = config.Load(path)
	require.Error(t, err)
}

func TestValidate_UpperBound(t *testing.T) {
	cfg := config.Default()
	cfg.MaxVertices = 100001
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_vertices must be at most 100000")
}
