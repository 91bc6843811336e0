// Package bindset loads and saves declarative bind files.
//
// A bind file lists actions and, for each, the chords that activate it.
// Chords use the text form of the code package ("shift+w", "pad:south").
// TOML, YAML and JSON are supported; the format is picked from the file
// extension.
//
//	name = "default"
//
//	[[actions]]
//	action = "jump"
//	binds = ["space", "pad:south"]
//	description = "Jump"
package bindset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/actionmap/internal/input"
	"github.com/dshills/actionmap/internal/input/code"
)

// Errors returned by validation.
var (
	// ErrMissingAction indicates an entry without an action name.
	ErrMissingAction = errors.New("missing action name")

	// ErrUnknownFormat indicates a file extension with no decoder.
	ErrUnknownFormat = errors.New("unknown bind file format")
)

// Bindset is the contents of one bind file.
type Bindset struct {
	// Name identifies the set in logs and diagnostics.
	Name string `toml:"name" yaml:"name" json:"name"`

	// Actions lists the actions in declaration order.
	Actions []ActionSpec `toml:"actions" yaml:"actions" json:"actions"`
}

// ActionSpec declares one action and its chords.
type ActionSpec struct {
	Action      string   `toml:"action" yaml:"action" json:"action"`
	Binds       []string `toml:"binds" yaml:"binds" json:"binds"`
	Description string   `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
}

// BindError reports a chord that could not be parsed.
type BindError struct {
	Action string
	Index  int
	Bind   string
	Err    error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("action %q bind %d (%q): %v", e.Action, e.Index, e.Bind, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Validate checks every entry. It returns warnings for actions that have no
// binds and an error joining every problem found.
func (b *Bindset) Validate() (warnings []string, err error) {
	var errs []error
	for i, a := range b.Actions {
		if strings.TrimSpace(a.Action) == "" {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, ErrMissingAction))
			continue
		}
		if len(a.Binds) == 0 {
			warnings = append(warnings, fmt.Sprintf("action %q has no binds", a.Action))
		}
		for j, s := range a.Binds {
			if _, perr := code.ParseChord(s); perr != nil {
				errs = append(errs, &BindError{Action: a.Action, Index: j, Bind: s, Err: perr})
			}
		}
	}
	return warnings, errors.Join(errs...)
}

// Compile converts the set into the declarative list accepted by
// input.New and input.Map.SetBinds.
func (b *Bindset) Compile() ([]input.Binds[string], error) {
	if _, err := b.Validate(); err != nil {
		return nil, err
	}

	out := make([]input.Binds[string], 0, len(b.Actions))
	for _, a := range b.Actions {
		ib := input.Binds[string]{
			Action:   a.Action,
			Bindings: make([][]code.Code, 0, len(a.Binds)),
		}
		for _, s := range a.Binds {
			codes, _ := code.ParseChord(s)
			ib.Bindings = append(ib.Bindings, codes)
		}
		out = append(out, ib)
	}
	return out, nil
}

// Normalize rewrites every chord in its canonical text form.
// Chords that do not parse are left as written.
func (b *Bindset) Normalize() {
	for i := range b.Actions {
		for j, s := range b.Actions[i].Binds {
			if codes, err := code.ParseChord(s); err == nil {
				b.Actions[i].Binds[j] = code.FormatChord(codes)
			}
		}
	}
}

// Describe returns the description of action, or "" if it has none.
func (b *Bindset) Describe(action string) string {
	for _, a := range b.Actions {
		if a.Action == action && a.Description != "" {
			return a.Description
		}
	}
	return ""
}
