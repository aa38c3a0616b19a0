// Package config loads the grafo runtime configuration from an optional YAML
// file and GRAFO_* environment variables, then validates it.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/grafo/core"
)

// Output formats understood by the console renderer.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatMermaid = "mermaid"
)

// Config represents the top-level YAML configuration.
type Config struct {
	// MaxVertices bounds the vertex count accepted when building a graph.
	MaxVertices int `yaml:"max_vertices" validate:"min=1,max=100000"`

	// StrictEdges aborts input on the first out-of-range edge instead of
	// reporting and skipping it.
	StrictEdges bool `yaml:"strict_edges"`

	// StopOnTarget ends the search as soon as the end vertex is discovered.
	StopOnTarget bool `yaml:"stop_on_target"`

	// Format selects how results are printed.
	Format string `yaml:"format" validate:"oneof=text json mermaid"`

	Log Log `yaml:"log"`
}

// Log holds logger settings.
type Log struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

var validate = newValidator()

// newValidator reports fields by their yaml keys.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Default returns the configuration used when no file or env var overrides it.
func Default() *Config {
	return &Config{
		MaxVertices: core.DefaultMaxVertices,
		Format:      FormatText,
		Log: Log{
			Level: "warn",
		},
	}
}

// Load reads the configuration with Read and validates it.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Read starts from Default, overlays the YAML file at path (skipped when
// path is empty) and applies GRAFO_* environment variables. The result is
// not validated, so callers can apply further overrides first.
func Read(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	return cfg, nil
}

// applyEnv overrides fields from environment variables. Env values take
// precedence over the YAML file; flags take precedence over both.
func (c *Config) applyEnv() error {
	if s, ok := os.LookupEnv("GRAFO_MAX_VERTICES"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("GRAFO_MAX_VERTICES: %w", err)
		}
		c.MaxVertices = n
	}
	if s, ok := os.LookupEnv("GRAFO_STRICT_EDGES"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("GRAFO_STRICT_EDGES: %w", err)
		}
		c.StrictEdges = b
	}
	if s, ok := os.LookupEnv("GRAFO_STOP_ON_TARGET"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("GRAFO_STOP_ON_TARGET: %w", err)
		}
		c.StopOnTarget = b
	}
	if s := os.Getenv("GRAFO_FORMAT"); s != "" {
		c.Format = strings.ToLower(strings.TrimSpace(s))
	}
	if s := os.Getenv("GRAFO_LOG_LEVEL"); s != "" {
		c.Log.Level = strings.ToLower(strings.TrimSpace(s))
	}
	return nil
}

// Validate checks field constraints and reports every violation at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// formatFieldError renders a single validation failure with its yaml key path.
func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Namespace())
	field = strings.TrimPrefix(field, "config.")

	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
