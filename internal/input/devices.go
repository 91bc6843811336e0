package input

import (
	"log/slog"

	"github.com/dshills/actionmap/internal/input/code"
)

// MoveMouse adds relative mouse motion from device id. The deltas are
// scaled by the mouse scale, split by sign into the four move codes and
// accumulated until the next BeginFrame. Positive dy is downward, as in
// screen coordinates.
func (m *Map[A]) MoveMouse(id code.DeviceID, dx, dy float64) {
	dx = finite(dx) * m.mouseScale
	dy = finite(dy) * m.mouseScale

	m.accumulate(code.MoveCode(code.DirRight).WithDevice(id), dx)
	m.accumulate(code.MoveCode(code.DirLeft).WithDevice(id), -dx)
	m.accumulate(code.MoveCode(code.DirDown).WithDevice(id), dy)
	m.accumulate(code.MoveCode(code.DirUp).WithDevice(id), -dy)
}

// ScrollWheel adds wheel movement from device id. Positive dy scrolls up
// and positive dx scrolls right. Deltas are scaled by the scroll scale and
// accumulated until the next BeginFrame.
func (m *Map[A]) ScrollWheel(id code.DeviceID, dx, dy float64) {
	dx = finite(dx) * m.scrollScale
	dy = finite(dy) * m.scrollScale

	m.accumulate(code.ScrollCode(code.DirRight).WithDevice(id), dx)
	m.accumulate(code.ScrollCode(code.DirLeft).WithDevice(id), -dx)
	m.accumulate(code.ScrollCode(code.DirUp).WithDevice(id), dy)
	m.accumulate(code.ScrollCode(code.DirDown).WithDevice(id), -dy)
}

func (m *Map[A]) accumulate(c code.Code, delta float64) {
	if delta <= 0 {
		return
	}
	m.Update(c, m.raw[c]+delta)
}

// SetCursor records the absolute cursor position. It persists across
// frames and does not feed any action.
func (m *Map[A]) SetCursor(x, y float64) {
	m.cursorX = finite(x)
	m.cursorY = finite(y)
}

// SetGamepadAxis sets a signed axis of gamepad id. The value is split into
// the positive and negative codes of the axis; the Z axes report the
// magnitude on a single code.
func (m *Map[A]) SetGamepadAxis(id code.GamepadID, axis code.Axis, v float64) {
	v = finite(v)
	pos := code.PadCode(code.AxisPos(axis)).WithGamepad(id)
	neg := code.PadCode(code.AxisNeg(axis)).WithGamepad(id)
	if pos == neg {
		m.Update(pos, max(v, -v))
		return
	}
	m.Update(pos, max(v, 0))
	m.Update(neg, max(-v, 0))
}

// SetGamepadButton sets the value of a button of gamepad id.
// Digital buttons report 0 or 1; analog triggers report their pressure.
func (m *Map[A]) SetGamepadButton(id code.GamepadID, btn code.GamepadInput, v float64) {
	m.Update(code.PadCode(btn).WithGamepad(id), v)
}

// TypeText appends text typed this frame.
func (m *Map[A]) TypeText(s string) {
	m.text.WriteString(s)
}

// DisconnectDevice zeroes every code reported by keyboard/mouse device id.
// Wildcard codes fall back to the devices that remain.
func (m *Map[A]) DisconnectDevice(id code.DeviceID) {
	m.disconnect(func(c code.Code) bool {
		return !c.IsAny() && c.HasDevice(id)
	})
	m.logger.Debug("device disconnected", slog.Uint64("device", uint64(id)))
}

// DisconnectGamepad zeroes every code reported by gamepad id.
func (m *Map[A]) DisconnectGamepad(id code.GamepadID) {
	m.disconnect(func(c code.Code) bool {
		return !c.IsAny() && c.HasGamepad(id)
	})
	m.logger.Debug("gamepad disconnected", slog.Int("gamepad", int(id)))
}

func (m *Map[A]) disconnect(match func(code.Code) bool) {
	m.metrics.recordDisconnect()
	var stale []code.Code
	for c := range m.raw {
		if match(c) {
			stale = append(stale, c)
		}
	}
	for _, c := range stale {
		m.Update(c, 0)
	}
}
