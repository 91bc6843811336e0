package code

import (
	"fmt"
	"strconv"
)

// Kind is the tag of a Code.
type Kind uint8

const (
	// KindNone is the zero Code. It is never a valid binding.
	KindNone Kind = iota
	// KindKey is a keyboard key.
	KindKey
	// KindMouse is a mouse button.
	KindMouse
	// KindMove is one signed direction of relative mouse motion.
	KindMove
	// KindScroll is one signed direction of mouse wheel scrolling.
	KindScroll
	// KindPad is a gamepad button or one signed direction of a gamepad axis.
	KindPad
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindKey:
		return "key"
	case KindMouse:
		return "mouse"
	case KindMove:
		return "move"
	case KindScroll:
		return "scroll"
	case KindPad:
		return "pad"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// DeviceID identifies one keyboard or mouse.
type DeviceID uint64

// GamepadID identifies one connected gamepad.
type GamepadID int

// Scope is the device or gamepad part of a Code.
type Scope struct {
	// Gamepad is true for the gamepad family and false for devices.
	Gamepad bool
	// Any is true for the wildcard scope; ID is then zero.
	Any bool
	ID  uint64
}

// String returns "dev#N", "pad#N", "dev#*" or "pad#*".
func (s Scope) String() string {
	prefix := "dev"
	if s.Gamepad {
		prefix = "pad"
	}
	if s.Any {
		return prefix + "#*"
	}
	return prefix + "#" + strconv.FormatUint(s.ID, 10)
}

// Code is the identity of one physical input source, including its scope.
// The zero Code is KindNone and is not valid.
type Code struct {
	kind  Kind
	value uint16
	exact bool
	id    uint64
}

// KeyCode returns the any-device code for a keyboard key.
func KeyCode(k Key) Code {
	return Code{kind: KindKey, value: uint16(k)}
}

// MouseCode returns the any-device code for a mouse button.
func MouseCode(b MouseButton) Code {
	return Code{kind: KindMouse, value: uint16(b)}
}

// MoveCode returns the any-device code for one direction of mouse motion.
func MoveCode(d Direction) Code {
	return Code{kind: KindMove, value: uint16(d)}
}

// ScrollCode returns the any-device code for one direction of scrolling.
func ScrollCode(d Direction) Code {
	return Code{kind: KindScroll, value: uint16(d)}
}

// PadCode returns the any-gamepad code for a gamepad input.
func PadCode(g GamepadInput) Code {
	return Code{kind: KindPad, value: uint16(g)}
}

// Kind returns the tag of the code.
func (c Code) Kind() Kind { return c.kind }

// IsDevice reports whether c belongs to the keyboard/mouse family.
func (c Code) IsDevice() bool {
	return c.kind >= KindKey && c.kind <= KindScroll
}

// IsGamepad reports whether c belongs to the gamepad family.
func (c Code) IsGamepad() bool { return c.kind == KindPad }

// Key returns the key of a KindKey code and KeyNone otherwise.
func (c Code) Key() Key {
	if c.kind != KindKey {
		return KeyNone
	}
	return Key(c.value)
}

// Button returns the mouse button of a KindMouse code.
func (c Code) Button() (MouseButton, bool) {
	if c.kind != KindMouse {
		return 0, false
	}
	return MouseButton(c.value), true
}

// Direction returns the direction of a KindMove or KindScroll code.
func (c Code) Direction() (Direction, bool) {
	if c.kind != KindMove && c.kind != KindScroll {
		return 0, false
	}
	return Direction(c.value), true
}

// Pad returns the gamepad input of a KindPad code and PadNone otherwise.
func (c Code) Pad() GamepadInput {
	if c.kind != KindPad {
		return PadNone
	}
	return GamepadInput(c.value)
}

// WithDevice binds a keyboard/mouse code to one device.
// Gamepad codes are returned unchanged.
func (c Code) WithDevice(id DeviceID) Code {
	if !c.IsDevice() {
		return c
	}
	c.exact = true
	c.id = uint64(id)
	return c
}

// WithGamepad binds a gamepad code to one gamepad.
// Keyboard/mouse codes are returned unchanged.
func (c Code) WithGamepad(id GamepadID) Code {
	if !c.IsGamepad() || id < 0 {
		return c
	}
	c.exact = true
	c.id = uint64(id)
	return c
}

// Any returns the wildcard form of c.
func (c Code) Any() Code {
	c.exact = false
	c.id = 0
	return c
}

// IsAny reports whether c has the wildcard scope.
func (c Code) IsAny() bool { return !c.exact }

// Device returns the device id of a concrete keyboard/mouse code.
func (c Code) Device() (DeviceID, bool) {
	if !c.exact || !c.IsDevice() {
		return 0, false
	}
	return DeviceID(c.id), true
}

// Gamepad returns the gamepad id of a concrete gamepad code.
func (c Code) Gamepad() (GamepadID, bool) {
	if !c.exact || !c.IsGamepad() {
		return 0, false
	}
	return GamepadID(c.id), true
}

// HasDevice reports whether input from device id is matched by c.
// A wildcard keyboard/mouse code matches every device.
func (c Code) HasDevice(id DeviceID) bool {
	return c.IsDevice() && (!c.exact || c.id == uint64(id))
}

// HasGamepad reports whether input from gamepad id is matched by c.
// A wildcard gamepad code matches every gamepad.
func (c Code) HasGamepad(id GamepadID) bool {
	return c.IsGamepad() && id >= 0 && (!c.exact || c.id == uint64(id))
}

// Scope returns the scope of c.
func (c Code) Scope() Scope {
	return Scope{Gamepad: c.IsGamepad(), Any: !c.exact, ID: c.id}
}

// IsRelative reports whether c is a per-frame accumulator (mouse motion or
// scrolling) that is reset to zero at every frame boundary.
func (c Code) IsRelative() bool {
	return c.kind == KindMove || c.kind == KindScroll
}

// Valid reports whether c names a real input.
func (c Code) Valid() bool {
	switch c.kind {
	case KindKey:
		return Key(c.value).Valid()
	case KindMouse:
		return c.value <= 0xff
	case KindMove, KindScroll:
		return Direction(c.value) <= DirDown
	case KindPad:
		return GamepadInput(c.value).Valid()
	default:
		return false
	}
}

// String returns the canonical text form of c, accepted by Parse.
func (c Code) String() string {
	var body string
	switch c.kind {
	case KindKey:
		body = Key(c.value).String()
	case KindMouse:
		body = "mouse:" + MouseButton(c.value).String()
	case KindMove:
		body = "move:" + Direction(c.value).String()
	case KindScroll:
		body = "scroll:" + Direction(c.value).String()
	case KindPad:
		if c.exact {
			return "pad#" + strconv.FormatUint(c.id, 10) + ":" + GamepadInput(c.value).String()
		}
		return "pad:" + GamepadInput(c.value).String()
	default:
		return "none"
	}
	if c.exact {
		return "dev#" + strconv.FormatUint(c.id, 10) + ":" + body
	}
	return body
}
