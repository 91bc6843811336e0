package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvLoader_Load(t *testing.T) {
	t.Setenv("ACTIONMAP_LOG_LEVEL", "debug")
	t.Setenv("ACTIONMAP_MOUSE_SCALE", "1")
	t.Setenv("ACTIONMAP_PRESS_SENSITIVITY", "0.75")
	t.Setenv("ACTIONMAP_BIND_FILE", "/etc/binds.toml")

	config, err := NewEnvLoader("ACTIONMAP_").Load()
	require.NoError(t, err)

	v, ok := GetByPath(config, "logging.level")
	assert.True(t, ok)
	assert.Equal(t, "debug", v)

	v, _ = GetByPath(config, "input.mouse_scale")
	assert.Equal(t, int64(1), v)

	v, _ = GetByPath(config, "input.press_sensitivity")
	assert.Equal(t, 0.75, v)

	assert.Equal(t, "/etc/binds.toml", config["bind_file"])
}

func TestEnvLoader_LoadUnmapped(t *testing.T) {
	t.Setenv("ACTIONMAP_INPUT_SCROLL_SCALE", "2.5")

	config, err := NewEnvLoader("ACTIONMAP_").Load()
	require.NoError(t, err)

	v, ok := GetByPath(config, "input.scroll_scale")
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)
}

func TestEnvLoader_envToPath(t *testing.T) {
	l := NewEnvLoader("ACTIONMAP_")
	tests := []struct {
		env  string
		want string
	}{
		{"ACTIONMAP_INPUT_MOUSE_SCALE", "input.mouse_scale"},
		{"ACTIONMAP_LOGGING_LEVEL", "logging.level"},
		{"ACTIONMAP_SIMPLE", "simple"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, l.envToPath(tt.env), tt.env)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", ""},
		{"1", int64(1)},
		{"0", int64(0)},
		{"-3", int64(-3)},
		{"0.5", 0.5},
		{"1e-3", 0.001},
		{"true", true},
		{"Off", false},
		{"json", "json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseValue(tt.in), tt.in)
	}
}

func TestEnvLoader_CustomMapping(t *testing.T) {
	t.Setenv("MY_SENS", "0.9")
	l := NewEnvLoaderWithMapping("ACTIONMAP_", nil)
	l.AddMapping("MY_SENS", "input.press_sensitivity")

	config, err := l.Load()
	require.NoError(t, err)
	v, _ := GetByPath(config, "input.press_sensitivity")
	assert.Equal(t, 0.9, v)
}
