package code

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty input specification")
	ErrInvalidSpec = errors.New("invalid input specification")
)

// Parse parses the text form of a single code.
//
// Supported formats:
//   - Keys: "a", "space", "left-shift", "F1", or a single character such as "-"
//   - Mouse buttons: "mouse:left", "mouse:right", "mouse:7"
//   - Relative motion: "move:left", "move:up", "scroll:down"
//   - Gamepad: "pad:south", "pad:a", "pad:left-stick-up"
//   - Device scope: "dev#3:w", "dev#3:mouse:left"
//   - Gamepad scope: "pad#1:start"
func Parse(spec string) (Code, error) {
	spec = strings.ToLower(strings.TrimSpace(spec))
	if spec == "" {
		return Code{}, ErrEmptySpec
	}

	switch {
	case strings.HasPrefix(spec, "dev#"):
		id, rest, err := parseScopeID(spec, "dev#")
		if err != nil {
			return Code{}, err
		}
		c, err := parseDevice(rest)
		if err != nil {
			return Code{}, err
		}
		return c.WithDevice(DeviceID(id)), nil

	case strings.HasPrefix(spec, "pad#"):
		id, rest, err := parseScopeID(spec, "pad#")
		if err != nil {
			return Code{}, err
		}
		c, err := parsePad(rest)
		if err != nil {
			return Code{}, err
		}
		if id > uint64(maxGamepadID) {
			return Code{}, fmt.Errorf("%w: gamepad id out of range in %q", ErrInvalidSpec, spec)
		}
		return c.WithGamepad(GamepadID(id)), nil

	case strings.HasPrefix(spec, "pad:"):
		return parsePad(spec[len("pad:"):])
	}

	return parseDevice(spec)
}

const maxGamepadID = int(^uint(0) >> 1)

// MustParse is like Parse but panics on error.
func MustParse(spec string) Code {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseChord parses codes joined by "+", e.g. "left-ctrl+z".
// The codes are returned in the order written.
func ParseChord(spec string) ([]Code, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, ErrEmptySpec
	}
	parts := strings.Split(spec, "+")
	codes := make([]Code, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return nil, fmt.Errorf("%w: empty chord member in %q", ErrInvalidSpec, spec)
		}
		c, err := Parse(p)
		if err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	return codes, nil
}

// FormatChord returns the text form of a chord.
func FormatChord(codes []Code) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = c.String()
	}
	return strings.Join(parts, "+")
}

// parseScopeID splits "dev#3:rest" into 3 and "rest".
func parseScopeID(spec, prefix string) (uint64, string, error) {
	body := spec[len(prefix):]
	idx := strings.IndexByte(body, ':')
	if idx <= 0 {
		return 0, "", fmt.Errorf("%w: missing scope id in %q", ErrInvalidSpec, spec)
	}
	id, err := strconv.ParseUint(body[:idx], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: bad scope id %q", ErrInvalidSpec, body[:idx])
	}
	return id, body[idx+1:], nil
}

// parseDevice parses the keyboard/mouse family without a scope prefix.
func parseDevice(spec string) (Code, error) {
	if spec == "" {
		return Code{}, ErrEmptySpec
	}

	kind, name, found := strings.Cut(spec, ":")
	if found {
		switch kind {
		case "mouse":
			b, ok := MouseButtonFromName(name)
			if !ok {
				return Code{}, fmt.Errorf("%w: unknown mouse button %q", ErrInvalidSpec, name)
			}
			return MouseCode(b), nil
		case "move", "scroll":
			d, ok := DirectionFromName(name)
			if !ok {
				return Code{}, fmt.Errorf("%w: unknown direction %q", ErrInvalidSpec, name)
			}
			if kind == "move" {
				return MoveCode(d), nil
			}
			return ScrollCode(d), nil
		case "key":
			return parseKey(name)
		}
		// ":" is itself a key
		if spec != ":" {
			return Code{}, fmt.Errorf("%w: unknown input kind %q", ErrInvalidSpec, kind)
		}
	}

	return parseKey(spec)
}

func parseKey(name string) (Code, error) {
	if k := KeyFromName(name); k != KeyNone {
		return KeyCode(k), nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if k := KeyFromRune(r); k != KeyNone {
			return KeyCode(k), nil
		}
	}
	return Code{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
}

func parsePad(name string) (Code, error) {
	g := GamepadInputFromName(name)
	if !g.Valid() {
		return Code{}, fmt.Errorf("%w: unknown gamepad input %q", ErrInvalidSpec, name)
	}
	return PadCode(g), nil
}
