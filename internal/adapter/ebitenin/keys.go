package ebitenin

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dshills/actionmap/internal/input/code"
)

// keyMap translates ebiten keys to positional keys. Keys missing from the
// map are ignored.
var keyMap = map[ebiten.Key]code.Key{
	ebiten.KeyA: code.KeyA,
	ebiten.KeyB: code.KeyB,
	ebiten.KeyC: code.KeyC,
	ebiten.KeyD: code.KeyD,
	ebiten.KeyE: code.KeyE,
	ebiten.KeyF: code.KeyF,
	ebiten.KeyG: code.KeyG,
	ebiten.KeyH: code.KeyH,
	ebiten.KeyI: code.KeyI,
	ebiten.KeyJ: code.KeyJ,
	ebiten.KeyK: code.KeyK,
	ebiten.KeyL: code.KeyL,
	ebiten.KeyM: code.KeyM,
	ebiten.KeyN: code.KeyN,
	ebiten.KeyO: code.KeyO,
	ebiten.KeyP: code.KeyP,
	ebiten.KeyQ: code.KeyQ,
	ebiten.KeyR: code.KeyR,
	ebiten.KeyS: code.KeyS,
	ebiten.KeyT: code.KeyT,
	ebiten.KeyU: code.KeyU,
	ebiten.KeyV: code.KeyV,
	ebiten.KeyW: code.KeyW,
	ebiten.KeyX: code.KeyX,
	ebiten.KeyY: code.KeyY,
	ebiten.KeyZ: code.KeyZ,

	ebiten.KeyDigit0: code.Key0,
	ebiten.KeyDigit1: code.Key1,
	ebiten.KeyDigit2: code.Key2,
	ebiten.KeyDigit3: code.Key3,
	ebiten.KeyDigit4: code.Key4,
	ebiten.KeyDigit5: code.Key5,
	ebiten.KeyDigit6: code.Key6,
	ebiten.KeyDigit7: code.Key7,
	ebiten.KeyDigit8: code.Key8,
	ebiten.KeyDigit9: code.Key9,

	ebiten.KeyF1:  code.KeyF1,
	ebiten.KeyF2:  code.KeyF2,
	ebiten.KeyF3:  code.KeyF3,
	ebiten.KeyF4:  code.KeyF4,
	ebiten.KeyF5:  code.KeyF5,
	ebiten.KeyF6:  code.KeyF6,
	ebiten.KeyF7:  code.KeyF7,
	ebiten.KeyF8:  code.KeyF8,
	ebiten.KeyF9:  code.KeyF9,
	ebiten.KeyF10: code.KeyF10,
	ebiten.KeyF11: code.KeyF11,
	ebiten.KeyF12: code.KeyF12,

	ebiten.KeySpace:       code.KeySpace,
	ebiten.KeyEnter:       code.KeyEnter,
	ebiten.KeyNumpadEnter: code.KeyEnter,
	ebiten.KeyEscape:      code.KeyEscape,
	ebiten.KeyTab:         code.KeyTab,
	ebiten.KeyBackspace:   code.KeyBackspace,
	ebiten.KeyDelete:      code.KeyDelete,
	ebiten.KeyInsert:      code.KeyInsert,
	ebiten.KeyHome:        code.KeyHome,
	ebiten.KeyEnd:         code.KeyEnd,
	ebiten.KeyPageUp:      code.KeyPageUp,
	ebiten.KeyPageDown:    code.KeyPageDown,
	ebiten.KeyArrowUp:     code.KeyUp,
	ebiten.KeyArrowDown:   code.KeyDown,
	ebiten.KeyArrowLeft:   code.KeyLeft,
	ebiten.KeyArrowRight:  code.KeyRight,

	ebiten.KeyShiftLeft:    code.KeyLeftShift,
	ebiten.KeyShiftRight:   code.KeyRightShift,
	ebiten.KeyControlLeft:  code.KeyLeftCtrl,
	ebiten.KeyControlRight: code.KeyRightCtrl,
	ebiten.KeyAltLeft:      code.KeyLeftAlt,
	ebiten.KeyAltRight:     code.KeyRightAlt,
	ebiten.KeyMetaLeft:     code.KeyLeftMeta,
	ebiten.KeyMetaRight:    code.KeyRightMeta,
	ebiten.KeyCapsLock:     code.KeyCapsLock,

	ebiten.KeyMinus:        code.KeyMinus,
	ebiten.KeyEqual:        code.KeyEqual,
	ebiten.KeyBracketLeft:  code.KeyLeftBracket,
	ebiten.KeyBracketRight: code.KeyRightBracket,
	ebiten.KeyBackslash:    code.KeyBackslash,
	ebiten.KeySemicolon:    code.KeySemicolon,
	ebiten.KeyQuote:        code.KeyQuote,
	ebiten.KeyBackquote:    code.KeyBackquote,
	ebiten.KeyComma:        code.KeyComma,
	ebiten.KeyPeriod:       code.KeyPeriod,
	ebiten.KeySlash:        code.KeySlash,
}

// KeyFromEbiten returns the key for k, or KeyNone if it has no equivalent.
func KeyFromEbiten(k ebiten.Key) code.Key {
	return keyMap[k]
}

// ButtonFromEbiten returns the mouse button for b.
func ButtonFromEbiten(b ebiten.MouseButton) code.MouseButton {
	switch b {
	case ebiten.MouseButtonLeft:
		return code.ButtonLeft
	case ebiten.MouseButtonRight:
		return code.ButtonRight
	case ebiten.MouseButtonMiddle:
		return code.ButtonMiddle
	case ebiten.MouseButton3:
		return code.ButtonBack
	case ebiten.MouseButton4:
		return code.ButtonForward
	default:
		return code.MouseButton(b)
	}
}

// padButtons lists the standard layout buttons and their inputs.
var padButtons = [...]struct {
	btn ebiten.StandardGamepadButton
	in  code.GamepadInput
}{
	{ebiten.StandardGamepadButtonRightBottom, code.South},
	{ebiten.StandardGamepadButtonRightRight, code.East},
	{ebiten.StandardGamepadButtonRightLeft, code.West},
	{ebiten.StandardGamepadButtonRightTop, code.North},
	{ebiten.StandardGamepadButtonFrontTopLeft, code.LeftBumper},
	{ebiten.StandardGamepadButtonFrontTopRight, code.RightBumper},
	{ebiten.StandardGamepadButtonFrontBottomLeft, code.LeftTrigger},
	{ebiten.StandardGamepadButtonFrontBottomRight, code.RightTrigger},
	{ebiten.StandardGamepadButtonCenterLeft, code.Select},
	{ebiten.StandardGamepadButtonCenterRight, code.Start},
	{ebiten.StandardGamepadButtonCenterCenter, code.Mode},
	{ebiten.StandardGamepadButtonLeftStick, code.LeftStickPress},
	{ebiten.StandardGamepadButtonRightStick, code.RightStickPress},
	{ebiten.StandardGamepadButtonLeftTop, code.DPadUp},
	{ebiten.StandardGamepadButtonLeftBottom, code.DPadDown},
	{ebiten.StandardGamepadButtonLeftLeft, code.DPadLeft},
	{ebiten.StandardGamepadButtonLeftRight, code.DPadRight},
}

// PadFromEbiten returns the gamepad input for a standard layout button.
func PadFromEbiten(b ebiten.StandardGamepadButton) code.GamepadInput {
	for _, p := range padButtons {
		if p.btn == b {
			return p.in
		}
	}
	return code.PadOther
}
