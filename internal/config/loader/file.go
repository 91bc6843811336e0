package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file syntax.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// IncludeKey is the top-level key naming files merged below the file that
// lists them. Its value is a path or a list of paths, relative to the file.
const IncludeKey = "include"

// ErrIncludeDepthExceeded indicates too many nested includes.
var ErrIncludeDepthExceeded = errors.New("include depth exceeded")

// ParseError reports a file that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	default:
		return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// File loads one configuration file.
type File struct {
	fs     FileSystem
	path   string
	format Format
}

// NewFile creates a loader for path in the given format.
func NewFile(fsys FileSystem, path string, format Format) *File {
	if fsys == nil {
		fsys = DefaultFS()
	}
	return &File{fs: fsys, path: path, format: format}
}

// ForPath creates a loader whose format follows the extension of path.
// ".yaml" and ".yml" are YAML; everything else is read as TOML.
func ForPath(fsys FileSystem, path string) *File {
	return NewFile(fsys, path, FormatFromPath(path))
}

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Format returns the syntax the loader decodes.
func (f *File) Format() Format { return f.format }

// Load reads the file. A missing file yields nil, nil.
func (f *File) Load() (map[string]any, error) {
	return f.loadFrom(f.path)
}

// LoadFromReader decodes configuration read from r.
func (f *File) LoadFromReader(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return f.decode("<reader>", data)
}

// LoadWithIncludes reads the file and merges the files named by its
// include key below it, recursively. maxDepth bounds the nesting, which
// also stops include cycles.
func (f *File) LoadWithIncludes(maxDepth int) (map[string]any, error) {
	return f.loadIncludes(f.path, maxDepth)
}

func (f *File) loadIncludes(path string, depth int) (map[string]any, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrIncludeDepthExceeded, path)
	}

	cfg, err := f.loadFrom(path)
	if err != nil || cfg == nil {
		return cfg, err
	}

	raw, ok := cfg[IncludeKey]
	if !ok {
		return cfg, nil
	}
	delete(cfg, IncludeKey)

	includes, err := includeList(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	merged := map[string]any{}
	for _, inc := range includes {
		if !filepath.IsAbs(inc) {
			inc = filepath.Join(filepath.Dir(path), inc)
		}
		incCfg, err := f.loadIncludes(inc, depth-1)
		if err != nil {
			return nil, fmt.Errorf("loading include %s: %w", inc, err)
		}
		merged = DeepMerge(merged, incCfg)
	}
	return DeepMerge(merged, cfg), nil
}

func includeList(v any) ([]string, error) {
	switch v := v.(type) {
	case string:
		return []string{v}, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s must be a string or a list of strings", IncludeKey)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s must be a string or a list of strings, got %T", IncludeKey, v)
	}
}

func (f *File) loadFrom(path string) (map[string]any, error) {
	data, err := f.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return f.decode(path, data)
}

func (f *File) decode(source string, data []byte) (map[string]any, error) {
	cfg := map[string]any{}
	switch f.format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, &ParseError{Path: source, Line: yamlErrorLine(err.Error()), Message: err.Error(), Err: err}
		}
		normalize(cfg)
	default:
		dec := toml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&cfg); err != nil {
			pe := &ParseError{Path: source, Message: err.Error(), Err: err}
			var de *toml.DecodeError
			if errors.As(err, &de) {
				pe.Line, pe.Column = de.Position()
			}
			return nil, pe
		}
	}
	return cfg, nil
}

// yamlErrorLine extracts N from yaml.v3 messages of the form
// "yaml: line N: ...".
func yamlErrorLine(msg string) int {
	rest, ok := strings.CutPrefix(msg, "yaml: line ")
	if !ok {
		return 0
	}
	n := 0
	for _, r := range rest {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// normalize converts the int values yaml.v3 produces to int64 so YAML and
// TOML maps hold the same types.
func normalize(m map[string]any) {
	for k, v := range m {
		m[k] = normalizeValue(v)
	}
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case int:
		return int64(val)
	case map[string]any:
		normalize(val)
		return val
	case []any:
		for i := range val {
			val[i] = normalizeValue(val[i])
		}
		return val
	default:
		return v
	}
}
