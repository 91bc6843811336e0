package code

import (
	"fmt"
	"strings"
)

// GamepadInput identifies a button or one signed direction of an axis on
// a gamepad with the standard layout.
type GamepadInput uint8

const (
	// PadNone represents no gamepad input.
	PadNone GamepadInput = iota

	LeftStickLeft
	LeftStickRight
	LeftStickUp
	LeftStickDown
	LeftStickPress

	RightStickLeft
	RightStickRight
	RightStickUp
	RightStickDown
	RightStickPress

	DPadLeft
	DPadRight
	DPadUp
	DPadDown

	LeftZ
	RightZ

	// South is the bottom face button (A on Xbox, Cross on PlayStation).
	South
	East
	North
	West

	LeftBumper
	LeftTrigger
	RightBumper
	RightTrigger

	Select
	Start
	Mode

	// PadOther stands for any button the platform cannot name.
	PadOther

	padCount
)

var padNames = [padCount]string{
	PadNone:         "none",
	LeftStickLeft:   "left-stick-left",
	LeftStickRight:  "left-stick-right",
	LeftStickUp:     "left-stick-up",
	LeftStickDown:   "left-stick-down",
	LeftStickPress:  "left-stick-press",
	RightStickLeft:  "right-stick-left",
	RightStickRight: "right-stick-right",
	RightStickUp:    "right-stick-up",
	RightStickDown:  "right-stick-down",
	RightStickPress: "right-stick-press",
	DPadLeft:        "dpad-left",
	DPadRight:       "dpad-right",
	DPadUp:          "dpad-up",
	DPadDown:        "dpad-down",
	LeftZ:           "left-z",
	RightZ:          "right-z",
	South:           "south",
	East:            "east",
	North:           "north",
	West:            "west",
	LeftBumper:      "left-bumper",
	LeftTrigger:     "left-trigger",
	RightBumper:     "right-bumper",
	RightTrigger:    "right-trigger",
	Select:          "select",
	Start:           "start",
	Mode:            "mode",
	PadOther:        "other",
}

var padByName = map[string]GamepadInput{
	"a":  South,
	"b":  East,
	"x":  West,
	"y":  North,
	"l1": LeftBumper,
	"r1": RightBumper,
	"l2": LeftTrigger,
	"r2": RightTrigger,
	"l3": LeftStickPress,
	"r3": RightStickPress,
}

func init() {
	for g := PadNone; g < padCount; g++ {
		padByName[padNames[g]] = g
	}
}

// String returns the canonical name of the gamepad input.
func (g GamepadInput) String() string {
	if g < padCount {
		return padNames[g]
	}
	return fmt.Sprintf("pad(%d)", uint8(g))
}

// Valid reports whether g is a known input other than PadNone.
func (g GamepadInput) Valid() bool {
	return g > PadNone && g < padCount
}

// IsAxis returns true for the signed stick directions and the Z axes.
func (g GamepadInput) IsAxis() bool {
	switch g {
	case LeftStickLeft, LeftStickRight, LeftStickUp, LeftStickDown,
		RightStickLeft, RightStickRight, RightStickUp, RightStickDown,
		LeftZ, RightZ:
		return true
	}
	return false
}

// GamepadInputFromName parses a gamepad input name. Xbox-style letters and
// PlayStation-style shoulder names are accepted as aliases.
func GamepadInputFromName(name string) GamepadInput {
	if g, ok := padByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return g
	}
	return PadNone
}

// Axis identifies a signed gamepad axis.
type Axis uint8

const (
	AxisLeftStickX Axis = iota
	AxisLeftStickY
	AxisRightStickX
	AxisRightStickY
	AxisLeftZ
	AxisRightZ
	AxisDPadX
	AxisDPadY
	AxisUnknown
)

// AxisPos returns the input that carries the positive half of the axis.
// Y axes are positive upward.
func AxisPos(a Axis) GamepadInput {
	switch a {
	case AxisLeftStickX:
		return LeftStickRight
	case AxisLeftStickY:
		return LeftStickUp
	case AxisRightStickX:
		return RightStickRight
	case AxisRightStickY:
		return RightStickUp
	case AxisLeftZ:
		return LeftZ
	case AxisRightZ:
		return RightZ
	case AxisDPadX:
		return DPadRight
	case AxisDPadY:
		return DPadUp
	default:
		return PadOther
	}
}

// AxisNeg returns the input that carries the negative half of the axis.
// The Z axes have no negative half and return the same input as AxisPos.
func AxisNeg(a Axis) GamepadInput {
	switch a {
	case AxisLeftStickX:
		return LeftStickLeft
	case AxisLeftStickY:
		return LeftStickDown
	case AxisRightStickX:
		return RightStickLeft
	case AxisRightStickY:
		return RightStickDown
	case AxisLeftZ:
		return LeftZ
	case AxisRightZ:
		return RightZ
	case AxisDPadX:
		return DPadLeft
	case AxisDPadY:
		return DPadDown
	default:
		return PadOther
	}
}
