package code

import (
	"fmt"
	"strconv"
	"strings"
)

// MouseButton identifies a mouse button.
// Buttons past ButtonForward are reported by number.
type MouseButton uint8

const (
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft MouseButton = iota
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonBack is the back navigation button (mouse button 4).
	ButtonBack
	// ButtonForward is the forward navigation button (mouse button 5).
	ButtonForward
)

// String returns the canonical name of the button.
func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	default:
		return strconv.Itoa(int(b))
	}
}

// MouseButtonFromName parses a button name or number.
func MouseButtonFromName(name string) (MouseButton, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left", "primary":
		return ButtonLeft, true
	case "right", "secondary":
		return ButtonRight, true
	case "middle":
		return ButtonMiddle, true
	case "back":
		return ButtonBack, true
	case "forward":
		return ButtonForward, true
	}
	n, err := strconv.Atoi(name)
	if err != nil || n < 0 || n > 255 {
		return 0, false
	}
	return MouseButton(n), true
}

// Direction is one signed half of a 2D relative axis.
type Direction uint8

const (
	// DirLeft is the negative X direction.
	DirLeft Direction = iota
	// DirRight is the positive X direction.
	DirRight
	// DirUp is the upward direction.
	DirUp
	// DirDown is the downward direction.
	DirDown
)

// String returns the canonical name of the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// DirectionFromName parses a direction name.
func DirectionFromName(name string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	}
	return 0, false
}
