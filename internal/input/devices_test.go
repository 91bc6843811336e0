package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/actionmap/internal/input/code"
)

func lookBinds() []Binds[string] {
	return []Binds[string]{
		bind("left", chord(code.MoveCode(code.DirLeft))),
		bind("right", chord(code.MoveCode(code.DirRight))),
		bind("up", chord(code.MoveCode(code.DirUp))),
		bind("down", chord(code.MoveCode(code.DirDown))),
	}
}

func TestMoveMouseSplitsAndScales(t *testing.T) {
	m := newMap(t, lookBinds(), WithMouseScale(0.5))

	m.MoveMouse(1, -3, 4)
	assert.Equal(t, 1.5, m.Value("left"))
	assert.Equal(t, 0.0, m.Value("right"))
	assert.Equal(t, 2.0, m.Value("down"))
	assert.Equal(t, 0.0, m.Value("up"))
}

func TestMoveMouseAccumulatesWithinFrame(t *testing.T) {
	m := newMap(t, lookBinds())

	m.MoveMouse(1, 1, 0)
	m.MoveMouse(1, 1.5, 0)
	assert.Equal(t, 2.5, m.Value("right"))

	m.BeginFrame()
	m.MoveMouse(1, 1, 0)
	assert.Equal(t, 1.0, m.Value("right"))
}

func TestScrollWheel(t *testing.T) {
	m := newMap(t, []Binds[string]{
		bind("zoom-in", chord(code.ScrollCode(code.DirUp))),
		bind("zoom-out", chord(code.ScrollCode(code.DirDown))),
		bind("pan", chord(code.ScrollCode(code.DirRight))),
	}, WithScrollScale(2))

	m.ScrollWheel(0, 0.5, 1)
	assert.Equal(t, 2.0, m.Value("zoom-in"))
	assert.Equal(t, 1.0, m.Value("pan"))

	m.ScrollWheel(0, 0, -3)
	assert.Equal(t, 6.0, m.Value("zoom-out"))
	assert.Equal(t, 2.0, m.Value("zoom-in"))
}

func TestGamepadAxisSplit(t *testing.T) {
	m := newMap(t, []Binds[string]{
		bind("right", chord(code.PadCode(code.LeftStickRight))),
		bind("left", chord(code.PadCode(code.LeftStickLeft))),
		bind("throttle", chord(code.PadCode(code.RightZ))),
	})

	m.SetGamepadAxis(0, code.AxisLeftStickX, -0.75)
	assert.Equal(t, 0.75, m.Value("left"))
	assert.Equal(t, 0.0, m.Value("right"))

	m.SetGamepadAxis(0, code.AxisLeftStickX, 0.5)
	assert.Equal(t, 0.0, m.Value("left"))
	assert.Equal(t, 0.5, m.Value("right"))
	assert.Equal(t, 0.5, m.Axis("right", "left"))

	m.SetGamepadAxis(0, code.AxisRightZ, -0.6)
	assert.Equal(t, 0.6, m.Value("throttle"))
}

func TestGamepadAxisPersistsAcrossFrames(t *testing.T) {
	m := newMap(t, []Binds[string]{bind("up", chord(code.PadCode(code.LeftStickUp)))})

	m.SetGamepadAxis(2, code.AxisLeftStickY, 0.8)
	m.BeginFrame()
	assert.Equal(t, 0.8, m.Value("up"))
	assert.True(t, m.Pressing("up"))
}

func TestNonFiniteDeltasIgnored(t *testing.T) {
	m := newMap(t, lookBinds())
	m.MoveMouse(1, 1, 0)
	m.MoveMouse(1, nan(), inf())
	assert.Equal(t, 1.0, m.Value("right"))
	assert.Equal(t, 0.0, m.Value("down"))
}
