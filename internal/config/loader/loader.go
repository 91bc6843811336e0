// Package loader reads configuration files into generic maps.
//
// TOML and YAML files are parsed into map[string]any so that layers
// (defaults, the file, environment variables) can be merged with DeepMerge
// before being decoded into typed settings.
package loader

import (
	"io/fs"
	"os"
)

// Loader produces one configuration layer. A source that does not exist
// yields nil, nil.
type Loader interface {
	Load() (map[string]any, error)
}

// FileSystem is the file access used by File. Tests use an in-memory one.
type FileSystem interface {
	fs.FS
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the OS file system.
func DefaultFS() FileSystem {
	return OSFS{}
}

// DeepMerge merges src into dst and returns dst. Nested maps are merged
// key by key; any other src value replaces the dst value.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}
	for key, sv := range src {
		sm, sIsMap := sv.(map[string]any)
		dm, dIsMap := dst[key].(map[string]any)
		if sIsMap && dIsMap {
			dst[key] = DeepMerge(dm, sm)
			continue
		}
		dst[key] = sv
	}
	return dst
}
