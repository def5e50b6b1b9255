// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup at an empty temp directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)
	t.Chdir(t.TempDir())

	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Zero(t, cfg.Numeric.Epsilon)
	assert.True(t, cfg.Numeric.ValidateNaNInf)
	assert.Equal(t, -1, cfg.Output.Precision)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, "auto", cfg.UI.HelpStyle)
	assert.Equal(t, 3, cfg.UI.MaxRetries)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, path, err := Load(context.Background(), LoadOptions{})
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadUserFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), `
[numeric]
epsilon = 1e-9

[output]
precision = 3
color = false
`)

	cfg, path, err := Load(context.Background(), LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), path)
	assert.Equal(t, 1e-9, cfg.Numeric.Epsilon)
	assert.Equal(t, 3, cfg.Output.Precision)
	assert.False(t, cfg.Output.Color)
	// Untouched keys keep their defaults.
	assert.True(t, cfg.Numeric.ValidateNaNInf)
	assert.Equal(t, 3, cfg.UI.MaxRetries)
}

func TestLoadLocalFileFallback(t *testing.T) {
	isolate(t)
	writeFile(t, LocalConfigFile, "[ui]\nmax_retries = 5\n")

	cfg, path, err := Load(context.Background(), LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, LocalConfigFile, path)
	assert.Equal(t, 5, cfg.UI.MaxRetries)
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)
	explicit := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, explicit, "[log]\nlevel = \"debug\"\n")

	cfg, path, err := Load(context.Background(), LoadOptions{ConfigFilePath: explicit})
	require.NoError(t, err)
	assert.Equal(t, explicit, path)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, _, err = Load(context.Background(), LoadOptions{ConfigFilePath: explicit + ".missing"})
	require.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), "[output]\nprecision = 3\n")
	t.Setenv("LINALG_OUTPUT_PRECISION", "6")
	t.Setenv("LINALG_NUMERIC_VALIDATE_NAN_INF", "false")

	cfg, _, err := Load(context.Background(), LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Output.Precision, "environment beats the file")
	assert.False(t, cfg.Numeric.ValidateNaNInf)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative epsilon", "[numeric]\nepsilon = -0.1\n"},
		{"precision too large", "[output]\nprecision = 40\n"},
		{"no retries", "[ui]\nmax_retries = 0\n"},
		{"unknown help style", "[ui]\nhelp_style = \"neon\"\n"},
		{"unknown log level", "[log]\nlevel = \"chatty\"\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := isolate(t)
			writeFile(t, filepath.Join(dir, "config.toml"), tc.content)

			_, _, err := Load(context.Background(), LoadOptions{})
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), "[numeric\nepsilon = ")

	_, _, err := Load(context.Background(), LoadOptions{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidConfig))
}

func TestLoadCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Load(ctx, LoadOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestConfigDirXDG(t *testing.T) {
	Reset()
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, AppName), dir)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, AppName, "config.toml"), path)
}

func TestRenderRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Numeric.Epsilon = 1e-12
	cfg.UI.HelpStyle = "dark"

	out, err := Render(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[numeric]")
	assert.Contains(t, string(out), "help_style")
	assert.Contains(t, string(out), "dark")

	var back Config
	require.NoError(t, toml.Unmarshal(out, &back))
	assert.Equal(t, *cfg, back)
}

func TestWriteDefault(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteDefault(path, false))
	require.ErrorIs(t, WriteDefault(path, false), ErrConfigExists)
	require.NoError(t, WriteDefault(path, true))

	cfg, _, err := Load(context.Background(), LoadOptions{ConfigFilePath: path})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestMatrixOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Numeric.Epsilon = 1e-6
	cfg.Numeric.ValidateNaNInf = false

	o := matrix.NewMatrixOptions(cfg.MatrixOptions()...)
	assert.Equal(t, 1e-6, o.Epsilon())
	assert.False(t, o.ValidateNaNInf())
}
