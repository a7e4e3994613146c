package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/geomtyper/internal/models"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "mm", cfg.DefaultUnit)
	assert.Equal(t, "double", cfg.Dialect.TypeName(models.EntryTypeDouble))
	assert.Equal(t, "bool", cfg.Dialect.TypeName(models.EntryTypeBool))
	assert.Equal(t, "std::vector<double>", cfg.Dialect.TypeName(models.EntryTypeDoubleVector))
}

func TestLoad(t *testing.T) {
	t.Run("toml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dialect.toml")
		content := `
default_unit = "cm"
category = "CaloGeom"

[dialect]
double_type = "G4double"
read_expr = 'pset.get<{{.Type}}>("{{.Name}}")'
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "cm", cfg.DefaultUnit)
		assert.Equal(t, "CaloGeom", cfg.Category)
		assert.Equal(t, "G4double", cfg.Dialect.DoubleType)
		assert.Equal(t, `pset.get<{{.Type}}>("{{.Name}}")`, cfg.Dialect.ReadExpr)
		assert.Equal(t, "bool", cfg.Dialect.BoolType, "unset keys keep defaults")
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dialect.yml")
		content := "category: Tracker\ndialect:\n  vector_type: std::vector<G4double>\n  log_sink: mf::LogVerbatim\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Tracker", cfg.Category)
		assert.Equal(t, "std::vector<G4double>", cfg.Dialect.VectorType)
		assert.Equal(t, "mf::LogVerbatim", cfg.Dialect.LogSink)
		assert.Equal(t, "mm", cfg.DefaultUnit)
	})

	t.Run("no file", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)

		var gerr *models.GeneratorError
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, models.ErrorTypeConfiguration, gerr.Type)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dialect.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported configuration format")
	})

	t.Run("invalid read expression", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dialect.toml")
		require.NoError(t, os.WriteFile(path, []byte("[dialect]\nread_expr = '{{.Name'\n"), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dialect.read_expr is not a valid template")
	})
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvDefaultUnit, " cm ")
	t.Setenv(EnvCategory, "Override")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "cm", cfg.DefaultUnit)
	assert.Equal(t, "Override", cfg.Category)
}

func TestLoadRejectsBadContent(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.toml")
	require.NoError(t, os.WriteFile(empty, []byte("[dialect]\nbool_type = ''\n"), 0o644))
	_, err := Load(empty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dialect.bool_type must not be empty")

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("dialect: ["), 0o644))
	_, err = Load(broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YAML parse error")

	var gerr *models.GeneratorError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, models.ErrorTypeConfiguration, gerr.Type)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"dialect.toml", FormatTOML},
		{"dialect.TOML", FormatTOML},
		{"dialect.yaml", FormatYAML},
		{"dialect.yml", FormatYAML},
		{"dialect.json", FormatUnknown},
		{"dialect", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectFormat(tt.path))
		})
	}
}
