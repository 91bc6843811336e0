package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dshills/actionmap/internal/config/loader"
	"github.com/dshills/actionmap/internal/input"
	"github.com/dshills/actionmap/internal/logging"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "ACTIONMAP_"

const maxIncludeDepth = 8

// Config holds every setting of the tools.
type Config struct {
	// BindFile is the bind file to load. Relative paths in a config file
	// are resolved against the directory of that file.
	BindFile string

	Input   InputConfig
	Logging LoggingConfig

	// Source is the config file that was read, or "" for defaults only.
	Source string
}

// InputConfig holds the engine and adapter settings.
type InputConfig struct {
	// PressSensitivity is the value at which an action counts as pressing.
	PressSensitivity float64

	// MouseScale multiplies mouse motion deltas.
	MouseScale float64

	// ScrollScale multiplies wheel deltas.
	ScrollScale float64

	// Deadzone is the stick magnitude below which axes report zero.
	Deadzone float64
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the logging verbosity level ("debug", "info", "warn", "error").
	Level string

	// Format is the log format ("console", "text", "json").
	Format string

	// File is the log file path (empty for stderr).
	File string
}

// Default returns the built-in settings.
func Default() *Config {
	cfg, err := fromMap(defaultConfig())
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	fs        loader.FileSystem
	envPrefix string
	useEnv    bool
}

// WithFileSystem reads config files from fsys.
func WithFileSystem(fsys loader.FileSystem) LoadOption {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithoutEnv ignores environment variables.
func WithoutEnv() LoadOption {
	return func(o *loadOptions) {
		o.useEnv = false
	}
}

// Load merges the defaults, the file at path (if path is not empty and the
// file exists) and the environment, then validates the result.
func Load(path string, opts ...LoadOption) (*Config, error) {
	o := loadOptions{fs: loader.DefaultFS(), envPrefix: EnvPrefix, useEnv: true}
	for _, opt := range opts {
		opt(&o)
	}

	merged := defaultConfig()
	var source string

	if path != "" {
		fileCfg, err := loader.ForPath(o.fs, path).LoadWithIncludes(maxIncludeDepth)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		if fileCfg != nil {
			source = path
			if bf, ok := fileCfg["bind_file"].(string); ok && bf != "" && !filepath.IsAbs(bf) {
				fileCfg["bind_file"] = filepath.Join(filepath.Dir(path), bf)
			}
			merged = loader.DeepMerge(merged, fileCfg)
		}
	}

	if o.useEnv {
		env, err := loader.NewEnvLoader(o.envPrefix).Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, env)
	}

	cfg, err := fromMap(merged)
	if err != nil {
		return nil, err
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, path, msg string, v any) {
		if !ok {
			errs = append(errs, &ValidationError{Path: path, Message: msg, Value: v})
		}
	}

	in := c.Input
	check(in.PressSensitivity > 0, "input.press_sensitivity", "must be positive", in.PressSensitivity)
	check(in.MouseScale > 0, "input.mouse_scale", "must be positive", in.MouseScale)
	check(in.ScrollScale > 0, "input.scroll_scale", "must be positive", in.ScrollScale)
	check(in.Deadzone >= 0 && in.Deadzone < 1, "input.deadzone", "must be in [0, 1)", in.Deadzone)
	check(logging.ValidLevel(c.Logging.Level), "logging.level", "unknown level", c.Logging.Level)
	check(logging.ValidFormat(c.Logging.Format), "logging.format", "unknown format", c.Logging.Format)

	return errors.Join(errs...)
}

// InputOptions returns the engine options for these settings.
func (c *Config) InputOptions() []input.Option {
	return []input.Option{
		input.WithPressSensitivity(c.Input.PressSensitivity),
		input.WithMouseScale(c.Input.MouseScale),
		input.WithScrollScale(c.Input.ScrollScale),
	}
}

// LoggerConfig returns the logger settings. Output is left nil.
func (c *Config) LoggerConfig() logging.Config {
	return logging.Config{Level: c.Logging.Level, Format: c.Logging.Format}
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"bind_file": "",
		"input": map[string]any{
			"press_sensitivity": input.DefaultPressSensitivity,
			"mouse_scale":       input.DefaultMouseScale,
			"scroll_scale":      input.DefaultScrollScale,
			"deadzone":          0.1,
		},
		"logging": map[string]any{
			"level":  "info",
			"format": "console",
			"file":   "",
		},
	}
}

func fromMap(m map[string]any) (*Config, error) {
	var errs []error
	str := func(path string) string {
		s, err := getString(m, path)
		errs = append(errs, err)
		return s
	}
	num := func(path string) float64 {
		f, err := getFloat(m, path)
		errs = append(errs, err)
		return f
	}

	cfg := &Config{
		BindFile: str("bind_file"),
		Input: InputConfig{
			PressSensitivity: num("input.press_sensitivity"),
			MouseScale:       num("input.mouse_scale"),
			ScrollScale:      num("input.scroll_scale"),
			Deadzone:         num("input.deadzone"),
		},
		Logging: LoggingConfig{
			Level:  str("logging.level"),
			Format: str("logging.format"),
			File:   str("logging.file"),
		},
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getString(m map[string]any, path string) (string, error) {
	v, ok := loader.GetByPath(m, path)
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

func getFloat(m map[string]any, path string) (float64, error) {
	v, ok := loader.GetByPath(m, path)
	if !ok {
		return 0, nil
	}
	switch val := v.(type) {
	case float64:
		return val, nil
	case int64:
		return float64(val), nil
	case int:
		return float64(val), nil
	default:
		return 0, &TypeError{Path: path, Expected: "float64", Actual: typeName(v)}
	}
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}
