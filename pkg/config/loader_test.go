package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/colormap/pkg/colormap"
	"github.com/arthur-debert/colormap/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate clears COLORMAP_* variables and points XDG_CONFIG_HOME at an empty dir
func isolate(t *testing.T) {
	t.Helper()
	for _, key := range []string{"COLORMAP_INPUT", "COLORMAP_OUTPUT", "COLORMAP_FORMAT", "COLORMAP_ON_MALFORMED"} {
		// Setenv registers the restore, Unsetenv makes the key absent for this test
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadConfiguration_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfiguration(LoadOptions{WorkDir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, "rawColorFile.txt", cfg.Input)
	assert.Equal(t, "colormap.csv", cfg.Output)
	assert.Equal(t, colormap.FormatCSV, cfg.Format)
	assert.Equal(t, colormap.PolicyAbort, cfg.OnMalformed)
	assert.Empty(t, cfg.Source)

	def := Default()
	def.Source = cfg.Source
	assert.Equal(t, def, cfg, "embedded defaults and Default() must agree")
}

func TestLoadConfiguration_ProjectFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "colormap.toml"), `
input = "x11.txt"
format = "YML"
on_malformed = "skip"
`)

	cfg, err := LoadConfiguration(LoadOptions{WorkDir: dir})
	require.NoError(t, err)

	assert.Equal(t, "x11.txt", cfg.Input)
	assert.Equal(t, "colormap.csv", cfg.Output, "unset keys keep their defaults")
	assert.Equal(t, colormap.FormatYAML, cfg.Format)
	assert.Equal(t, colormap.PolicySkip, cfg.OnMalformed)
	assert.Equal(t, filepath.Join(dir, "colormap.toml"), cfg.Source)
}

func TestLoadConfiguration_DotFileWins(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".colormap.toml"), `input = "hidden.txt"`)
	writeFile(t, filepath.Join(dir, "colormap.toml"), `input = "visible.txt"`)

	cfg, err := LoadConfiguration(LoadOptions{WorkDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "hidden.txt", cfg.Input)
}

func TestLoadConfiguration_UserFile(t *testing.T) {
	isolate(t)
	writeFile(t, UserConfigPath(), `output = "user.csv"`)

	cfg, err := LoadConfiguration(LoadOptions{WorkDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "user.csv", cfg.Output)
	assert.Equal(t, UserConfigPath(), cfg.Source)
}

func TestLoadConfiguration_ExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, `format = "xml"`)

	cfg, err := LoadConfiguration(LoadOptions{ConfigFile: path, WorkDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, colormap.FormatXML, cfg.Format)

	_, err = LoadConfiguration(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.toml")})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadConfiguration_InvalidTOML(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "colormap.toml"), `input = `)

	_, err := LoadConfiguration(LoadOptions{WorkDir: dir})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadConfiguration_Environment(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "colormap.toml"), `format = "xml"`)
	t.Setenv("COLORMAP_FORMAT", "toml")
	t.Setenv("COLORMAP_ON_MALFORMED", "skip")

	cfg, err := LoadConfiguration(LoadOptions{WorkDir: dir})
	require.NoError(t, err)
	assert.Equal(t, colormap.FormatTOML, cfg.Format, "env overrides the config file")
	assert.Equal(t, colormap.PolicySkip, cfg.OnMalformed)
}

func TestLoadConfiguration_DotEnv(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "COLORMAP_OUTPUT=from-dotenv.csv\nCOLORMAP_INPUT=from-dotenv.txt\n")
	t.Setenv("COLORMAP_INPUT", "from-env.txt")

	cfg, err := LoadConfiguration(LoadOptions{WorkDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.csv", cfg.Output)
	assert.Equal(t, "from-env.txt", cfg.Input, ".env never overrides the real environment")
}

func TestLoadConfiguration_Overrides(t *testing.T) {
	isolate(t)
	t.Setenv("COLORMAP_OUTPUT", "env.csv")

	cfg, err := LoadConfiguration(LoadOptions{
		WorkDir: t.TempDir(),
		Overrides: map[string]interface{}{
			"output": "flag.csv",
			"input":  "",
			"format": "yaml",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "flag.csv", cfg.Output)
	assert.Equal(t, "rawColorFile.txt", cfg.Input, "empty overrides are ignored")
	assert.Equal(t, colormap.FormatYAML, cfg.Format)
}

func TestLoadConfiguration_InvalidValues(t *testing.T) {
	t.Run("format override", func(t *testing.T) {
		isolate(t)

		_, err := LoadConfiguration(LoadOptions{
			WorkDir:   t.TempDir(),
			Overrides: map[string]interface{}{"format": "bmp"},
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		assert.Equal(t, "bmp", errors.GetErrorDetails(err)["format"])
	})

	t.Run("policy from environment", func(t *testing.T) {
		isolate(t)
		t.Setenv("COLORMAP_ON_MALFORMED", "retry")

		_, err := LoadConfiguration(LoadOptions{WorkDir: t.TempDir()})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		assert.Equal(t, "retry", errors.GetErrorDetails(err)["on_malformed"])
	})

	t.Run("format in config file", func(t *testing.T) {
		isolate(t)
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ".colormap.toml"), "format = \"png\"\n")

		_, err := LoadConfiguration(LoadOptions{WorkDir: dir})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty input", func(c *Config) { c.Input = "" }},
		{"empty output", func(c *Config) { c.Output = "" }},
		{"bad format", func(c *Config) { c.Format = "bmp" }},
		{"bad policy", func(c *Config) { c.OnMalformed = "retry" }},
	}

	require.NoError(t, Default().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.True(t, errors.IsErrorCode(cfg.Validate(), errors.ErrConfigValid))
		})
	}
}

func TestLoadOptions(t *testing.T) {
	cfg := Default()
	cfg.OnMalformed = colormap.PolicySkip
	assert.Equal(t, colormap.PolicySkip, cfg.LoadOptions().OnMalformed)
}

func TestGlobalAccess(t *testing.T) {
	t.Cleanup(func() { globalConfig = nil })

	globalConfig = nil
	assert.Equal(t, Default(), Get())

	cfg := Default()
	cfg.Input = "other.txt"
	Initialize(cfg)
	assert.Equal(t, "other.txt", Get().Input)
}

func TestDefaultConfigContent(t *testing.T) {
	content := DefaultConfigContent()
	assert.Contains(t, content, `input = "rawColorFile.txt"`)
	assert.Contains(t, content, `on_malformed = "abort"`)
}
