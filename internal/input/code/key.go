package code

import (
	"fmt"
	"strings"
)

// Key identifies a physical keyboard key by position, independent of layout.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digit row
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Editing and navigation
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Modifiers
	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftMeta
	KeyRightMeta
	KeyCapsLock

	// Punctuation
	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyBackquote
	KeyComma
	KeyPeriod
	KeySlash

	// keyCount must stay last.
	keyCount
)

// keyNames holds the canonical lowercase name of every key.
var keyNames = [keyCount]string{
	KeyNone:         "none",
	KeyF1:           "f1",
	KeyF2:           "f2",
	KeyF3:           "f3",
	KeyF4:           "f4",
	KeyF5:           "f5",
	KeyF6:           "f6",
	KeyF7:           "f7",
	KeyF8:           "f8",
	KeyF9:           "f9",
	KeyF10:          "f10",
	KeyF11:          "f11",
	KeyF12:          "f12",
	KeySpace:        "space",
	KeyEnter:        "enter",
	KeyEscape:       "escape",
	KeyTab:          "tab",
	KeyBackspace:    "backspace",
	KeyDelete:       "delete",
	KeyInsert:       "insert",
	KeyHome:         "home",
	KeyEnd:          "end",
	KeyPageUp:       "page-up",
	KeyPageDown:     "page-down",
	KeyUp:           "up",
	KeyDown:         "down",
	KeyLeft:         "left",
	KeyRight:        "right",
	KeyLeftShift:    "left-shift",
	KeyRightShift:   "right-shift",
	KeyLeftCtrl:     "left-ctrl",
	KeyRightCtrl:    "right-ctrl",
	KeyLeftAlt:      "left-alt",
	KeyRightAlt:     "right-alt",
	KeyLeftMeta:     "left-meta",
	KeyRightMeta:    "right-meta",
	KeyCapsLock:     "caps-lock",
	KeyMinus:        "minus",
	KeyEqual:        "equal",
	KeyLeftBracket:  "left-bracket",
	KeyRightBracket: "right-bracket",
	KeyBackslash:    "backslash",
	KeySemicolon:    "semicolon",
	KeyQuote:        "quote",
	KeyBackquote:    "backquote",
	KeyComma:        "comma",
	KeyPeriod:       "period",
	KeySlash:        "slash",
}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('a' + int(k-KeyA)))
	}
	for k := Key0; k <= Key9; k++ {
		keyNames[k] = string(rune('0' + int(k-Key0)))
	}
	for k := KeyNone; k < keyCount; k++ {
		keyByName[keyNames[k]] = k
	}
}

// keyByName maps canonical names and common aliases to keys.
var keyByName = map[string]Key{
	"esc":        KeyEscape,
	"return":     KeyEnter,
	"cr":         KeyEnter,
	"bs":         KeyBackspace,
	"del":        KeyDelete,
	"ins":        KeyInsert,
	"pgup":       KeyPageUp,
	"pgdn":       KeyPageDown,
	"shift":      KeyLeftShift,
	"ctrl":       KeyLeftCtrl,
	"control":    KeyLeftCtrl,
	"alt":        KeyLeftAlt,
	"option":     KeyLeftAlt,
	"meta":       KeyLeftMeta,
	"cmd":        KeyLeftMeta,
	"super":      KeyLeftMeta,
	"win":        KeyLeftMeta,
	"capslock":   KeyCapsLock,
	"pageup":     KeyPageUp,
	"pagedown":   KeyPageDown,
	"lshift":     KeyLeftShift,
	"rshift":     KeyRightShift,
	"lctrl":      KeyLeftCtrl,
	"rctrl":      KeyRightCtrl,
	"lalt":       KeyLeftAlt,
	"ralt":       KeyRightAlt,
	"grave":      KeyBackquote,
	"apostrophe": KeyQuote,
}

// String returns the canonical name of the key.
func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", uint16(k))
}

// Valid reports whether k is a known key other than KeyNone.
func (k Key) Valid() bool {
	return k > KeyNone && k < keyCount
}

// IsModifier returns true for the shift, ctrl, alt and meta keys.
func (k Key) IsModifier() bool {
	return k >= KeyLeftShift && k <= KeyRightMeta
}

// IsLetter returns true for KeyA through KeyZ.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// KeyFromName returns the Key for a name or alias (case-insensitive).
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyByName[name]; ok {
		return k
	}
	return KeyNone
}

// KeyFromRune maps a printable character to the key that produces it on a
// US layout. Shifted symbols map to their base key. Returns KeyNone for
// characters with no key.
func KeyFromRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0')
	}
	switch r {
	case ' ':
		return KeySpace
	case '-', '_':
		return KeyMinus
	case '=', '+':
		return KeyEqual
	case '[', '{':
		return KeyLeftBracket
	case ']', '}':
		return KeyRightBracket
	case '\\', '|':
		return KeyBackslash
	case ';', ':':
		return KeySemicolon
	case '\'', '"':
		return KeyQuote
	case '`', '~':
		return KeyBackquote
	case ',', '<':
		return KeyComma
	case '.', '>':
		return KeyPeriod
	case '/', '?':
		return KeySlash
	case '!':
		return Key1
	case '@':
		return Key2
	case '#':
		return Key3
	case '$':
		return Key4
	case '%':
		return Key5
	case '^':
		return Key6
	case '&':
		return Key7
	case '*':
		return Key8
	case '(':
		return Key9
	case ')':
		return Key0
	}
	return KeyNone
}
