// Package config loads the settings of the actionmap tools.
//
// Settings are merged in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← ACTIONMAP_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← actionmap.toml (or .yaml)
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// A config file may pull in other files with an include key:
//
//	include = "common.toml"
//	bind_file = "binds.yaml"
//
//	[input]
//	press_sensitivity = 0.5
//	mouse_scale = 0.1
//	scroll_scale = 1.0
//	deadzone = 0.1
//
//	[logging]
//	level = "info"
//	format = "console"
//	file = ""
//
// # Sub-packages
//
//   - loader: TOML and YAML loading, environment variables, merging
//   - watcher: file watching for bind file live reload
package config
