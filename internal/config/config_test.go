package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/actionmap/internal/input"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, input.DefaultPressSensitivity, cfg.Input.PressSensitivity)
	assert.Equal(t, input.DefaultMouseScale, cfg.Input.MouseScale)
	assert.Equal(t, input.DefaultScrollScale, cfg.Input.ScrollScale)
	assert.Equal(t, 0.1, cfg.Input.Deadzone)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Empty(t, cfg.BindFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("", WithoutEnv())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.toml"), WithoutEnv())
	require.NoError(t, err)
	assert.Empty(t, cfg.Source)
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "actionmap.toml", `
bind_file = "binds.yaml"

[input]
press_sensitivity = 0.25
mouse_scale = 2

[logging]
level = "debug"
`)

	cfg, err := Load(path, WithoutEnv())
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, filepath.Join(dir, "binds.yaml"), cfg.BindFile)
	assert.Equal(t, 0.25, cfg.Input.PressSensitivity)
	assert.Equal(t, 2.0, cfg.Input.MouseScale)
	assert.Equal(t, input.DefaultScrollScale, cfg.Input.ScrollScale)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "actionmap.yaml", `
bind_file: /abs/binds.toml
input:
  deadzone: 0.2
  scroll_scale: 3
logging:
  format: json
`)

	cfg, err := Load(path, WithoutEnv())
	require.NoError(t, err)
	assert.Equal(t, "/abs/binds.toml", cfg.BindFile)
	assert.Equal(t, 0.2, cfg.Input.Deadzone)
	assert.Equal(t, 3.0, cfg.Input.ScrollScale)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_Include(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "common.toml", `
[input]
press_sensitivity = 0.3
mouse_scale = 4
`)
	path := writeFile(t, dir, "actionmap.toml", `
include = "common.toml"

[input]
mouse_scale = 5
`)

	cfg, err := Load(path, WithoutEnv())
	require.NoError(t, err)
	assert.Equal(t, 0.3, cfg.Input.PressSensitivity)
	assert.Equal(t, 5.0, cfg.Input.MouseScale)
}

func TestLoad_Env(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "actionmap.toml", `
[input]
press_sensitivity = 0.25
`)
	t.Setenv("ACTIONMAP_PRESS_SENSITIVITY", "0.75")
	t.Setenv("ACTIONMAP_LOG_LEVEL", "warn")
	t.Setenv("ACTIONMAP_DEADZONE", "0")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.75, cfg.Input.PressSensitivity)
	assert.Equal(t, 0.0, cfg.Input.Deadzone)
	assert.Equal(t, "warn", cfg.Logging.Level)

	cfg, err = Load(path, WithoutEnv())
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.Input.PressSensitivity)
}

func TestLoad_ParseError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.toml", "[input\nmouse_scale = 1\n")

	_, err := Load(path, WithoutEnv())
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, path, pe.Path)
	assert.Positive(t, pe.Line)
}

func TestLoad_TypeError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "actionmap.toml", `
[input]
mouse_scale = "fast"
`)

	_, err := Load(path, WithoutEnv())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	var te *TypeError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "input.mouse_scale", te.Path)
	assert.Equal(t, "string", te.Actual)
}

func TestLoad_ValidationError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "actionmap.toml", `
[input]
press_sensitivity = 0
deadzone = 1.5

[logging]
format = "xml"
`)

	_, err := Load(path, WithoutEnv())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "input.press_sensitivity")
	assert.Contains(t, err.Error(), "input.deadzone")
	assert.Contains(t, err.Error(), "logging.format")
	assert.NotContains(t, err.Error(), "input.mouse_scale")
}

func TestInputOptions(t *testing.T) {
	cfg := Default()
	cfg.Input.PressSensitivity = 0.8

	m, err := input.New[string](nil, cfg.InputOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 0.8, m.PressSensitivity())
}

func TestLoggerConfig(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "debug"
	lc := cfg.LoggerConfig()
	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "console", lc.Format)
	assert.Nil(t, lc.Output)
}
