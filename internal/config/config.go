// Package config loads the output dialect used to render geometry fragments.
//
// A dialect file is TOML or YAML, chosen by extension. Keys that are absent
// keep their defaults, which reproduce the art/C++ fragments:
//
//	default_unit = "mm"
//	category     = "CATEGORY"
//
//	[dialect]
//	double_type   = "double"
//	bool_type     = "bool"
//	vector_type   = "std::vector<double>"
//	read_expr     = 'p.get<{{.Type}}>("{{.Name}}")'
//	stream_type   = "std::ostringstream"
//	stream_name   = "oss"
//	stream_header = "<sstream>"
//	log_sink      = "mf::LogInfo"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/toyz/geomtyper/internal/models"
)

// Environment variables that override file values
const (
	EnvDefaultUnit = "GEOMTYPER_DEFAULT_UNIT"
	EnvCategory    = "GEOMTYPER_CATEGORY"
)

// Format represents the configuration file format
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
	FormatUnknown
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Dialect names the C++ spellings used by the render passes
type Dialect struct {
	DoubleType   string `toml:"double_type" yaml:"double_type"`
	BoolType     string `toml:"bool_type" yaml:"bool_type"`
	VectorType   string `toml:"vector_type" yaml:"vector_type"`
	ReadExpr     string `toml:"read_expr" yaml:"read_expr"`
	StreamType   string `toml:"stream_type" yaml:"stream_type"`
	StreamName   string `toml:"stream_name" yaml:"stream_name"`
	StreamHeader string `toml:"stream_header" yaml:"stream_header"`
	LogSink      string `toml:"log_sink" yaml:"log_sink"`
}

// TypeName returns the dialect spelling of an entry type
func (d Dialect) TypeName(t models.EntryType) string {
	switch t {
	case models.EntryTypeBool:
		return d.BoolType
	case models.EntryTypeDoubleVector:
		return d.VectorType
	default:
		return d.DoubleType
	}
}

// Config holds everything that shapes the generated fragments
type Config struct {
	DefaultUnit string  `toml:"default_unit" yaml:"default_unit"`
	Category    string  `toml:"category" yaml:"category"`
	Dialect     Dialect `toml:"dialect" yaml:"dialect"`
}

// Default returns the configuration producing art/C++ fragments
func Default() *Config {
	return &Config{
		DefaultUnit: "mm",
		Category:    "CATEGORY",
		Dialect: Dialect{
			DoubleType:   "double",
			BoolType:     "bool",
			VectorType:   "std::vector<double>",
			ReadExpr:     `p.get<{{.Type}}>("{{.Name}}")`,
			StreamType:   "std::ostringstream",
			StreamName:   "oss",
			StreamHeader: "<sstream>",
			LogSink:      "mf::LogInfo",
		},
	}
}

// Load reads a configuration file over the defaults, then applies
// environment overrides. An empty path yields the defaults plus overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, &models.GeneratorError{
				Type:    models.ErrorTypeConfiguration,
				File:    path,
				Message: "cannot read configuration file",
				Cause:   err,
			}
		}
		if err := decode(cfg, content, DetectFormat(path)); err != nil {
			return nil, &models.GeneratorError{
				Type:    models.ErrorTypeConfiguration,
				File:    path,
				Message: err.Error(),
				Suggestions: []string{
					"Use a .toml, .yaml or .yml file",
					"Keys are default_unit, category and a [dialect] table",
				},
				Cause: err,
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeConfiguration,
			File:    path,
			Message: err.Error(),
			Cause:   err,
		}
	}
	return cfg, nil
}

// DetectFormat determines the configuration format from file extension
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

func decode(cfg *Config, content []byte, format Format) error {
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return fmt.Errorf("unsupported configuration format: %s", format)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvDefaultUnit); ok {
		c.DefaultUnit = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvCategory); ok {
		c.Category = strings.TrimSpace(v)
	}
}

// Validate checks that every dialect field needed by the render passes is set
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"dialect.double_type", c.Dialect.DoubleType},
		{"dialect.bool_type", c.Dialect.BoolType},
		{"dialect.vector_type", c.Dialect.VectorType},
		{"dialect.read_expr", c.Dialect.ReadExpr},
		{"dialect.stream_type", c.Dialect.StreamType},
		{"dialect.stream_name", c.Dialect.StreamName},
		{"dialect.log_sink", c.Dialect.LogSink},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s must not be empty", r.key)
		}
	}

	if _, err := template.New("read_expr").Option("missingkey=error").Parse(c.Dialect.ReadExpr); err != nil {
		return fmt.Errorf("dialect.read_expr is not a valid template: %w", err)
	}
	return nil
}
