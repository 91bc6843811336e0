// Package code defines the canonical identity of a physical input.
//
// A Code names exactly one source of input: a keyboard key, a mouse
// button, one signed direction of mouse motion or scrolling, or a gamepad
// button or signed axis direction. Every Code also carries a scope: either a
// specific device (keyboard/mouse) or gamepad, or the wildcard "any" scope.
//
// Codes are comparable and are used directly as map keys. The wildcard and
// concrete forms of the same physical source are distinct keys:
//
//	space := code.KeyCode(code.KeySpace)      // any keyboard
//	fromKb := space.WithDevice(3)             // keyboard with device id 3
//	fromKb.Any() == space                     // true
//	fromKb == space                           // false
//
// # Text Form
//
// Codes have a canonical text form used by bind files:
//
//	space, left-shift, f1          keys
//	mouse:left, mouse:7            mouse buttons
//	move:right, scroll:up          relative motion and scrolling
//	pad:south, pad:left-stick-up   gamepad buttons and axis directions
//	dev#3:w, pad#1:start           scoped to a specific device or gamepad
//
// Chords join codes with "+", e.g. "left-ctrl+z".
package code
