package input

import "errors"

// Construction errors. Steady-state operations never return errors.
var (
	// ErrEmptyBinding is returned when a binding has no codes.
	// An empty AND-group would be permanently active.
	ErrEmptyBinding = errors.New("binding has no inputs")

	// ErrInvalidCode is returned when a binding contains a code that does
	// not name a real input, such as the zero Code.
	ErrInvalidCode = errors.New("invalid input code")
)
