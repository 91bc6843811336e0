package ebitenin

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/actionmap/internal/input"
	"github.com/dshills/actionmap/internal/input/code"
)

type fakeSource struct {
	pressed, released []ebiten.Key
	mouseDown         map[ebiten.MouseButton]bool
	mouseUp           map[ebiten.MouseButton]bool
	x, y              int
	wheelX, wheelY    float64
	chars             []rune
	pads              []ebiten.GamepadID
	standard          map[ebiten.GamepadID]bool
	buttons           map[ebiten.StandardGamepadButton]float64
	axes              map[ebiten.StandardGamepadAxis]float64
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		mouseDown: make(map[ebiten.MouseButton]bool),
		mouseUp:   make(map[ebiten.MouseButton]bool),
		standard:  make(map[ebiten.GamepadID]bool),
		buttons:   make(map[ebiten.StandardGamepadButton]float64),
		axes:      make(map[ebiten.StandardGamepadAxis]float64),
	}
}

// tick clears the one-shot state, like inpututil does between frames.
func (f *fakeSource) tick() {
	f.pressed, f.released, f.chars = nil, nil, nil
	clear(f.mouseDown)
	clear(f.mouseUp)
	f.wheelX, f.wheelY = 0, 0
}

func (f *fakeSource) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, f.pressed...)
}

func (f *fakeSource) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, f.released...)
}

func (f *fakeSource) IsMouseButtonJustPressed(b ebiten.MouseButton) bool  { return f.mouseDown[b] }
func (f *fakeSource) IsMouseButtonJustReleased(b ebiten.MouseButton) bool { return f.mouseUp[b] }
func (f *fakeSource) CursorPosition() (int, int)                         { return f.x, f.y }
func (f *fakeSource) Wheel() (float64, float64)                          { return f.wheelX, f.wheelY }

func (f *fakeSource) AppendInputChars(runes []rune) []rune {
	return append(runes, f.chars...)
}

func (f *fakeSource) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return append(ids, f.pads...)
}

func (f *fakeSource) IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool {
	return f.standard[id]
}

func (f *fakeSource) StandardGamepadButtonValue(_ ebiten.GamepadID, b ebiten.StandardGamepadButton) float64 {
	return f.buttons[b]
}

func (f *fakeSource) StandardGamepadAxisValue(_ ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64 {
	return f.axes[a]
}

func newMap(t *testing.T) *input.Map[string] {
	t.Helper()
	bind := func(action string, specs ...string) input.Binds[string] {
		b := input.Binds[string]{Action: action}
		for _, s := range specs {
			chord, err := code.ParseChord(s)
			require.NoError(t, err)
			b.Bindings = append(b.Bindings, chord)
		}
		return b
	}
	m, err := input.New([]input.Binds[string]{
		bind("jump", "space", "pad:south"),
		bind("fire", "mouse:left"),
		bind("look-right", "move:right"),
		bind("zoom-in", "scroll:up"),
		bind("walk", "pad:left-stick-right"),
		bind("crouch", "pad:left-stick-down"),
		bind("sprint", "left-shift+w"),
	})
	require.NoError(t, err)
	return m
}

func TestPollKeys(t *testing.T) {
	src := newFakeSource()
	p := New(WithSource(src))
	m := newMap(t)

	src.pressed = []ebiten.Key{ebiten.KeySpace, ebiten.KeyShiftLeft, ebiten.KeyW, ebiten.KeyPrintScreen}
	p.Poll(m)
	assert.True(t, m.Pressed("jump"))
	assert.True(t, m.Pressing("sprint"))

	m.BeginFrame()
	src.tick()
	src.released = []ebiten.Key{ebiten.KeySpace}
	p.Poll(m)
	assert.True(t, m.Released("jump"))
	assert.True(t, m.Pressing("sprint"))
}

func TestPollMouse(t *testing.T) {
	src := newFakeSource()
	p := New(WithSource(src))
	m := newMap(t)

	src.x, src.y = 100, 50
	src.mouseDown[ebiten.MouseButtonLeft] = true
	p.Poll(m)
	assert.True(t, m.Pressed("fire"))
	assert.Equal(t, 0.0, m.Value("look-right"))
	x, y := m.Cursor()
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 50.0, y)

	m.BeginFrame()
	src.tick()
	src.x = 103
	src.wheelY = 2
	p.Poll(m)
	assert.Equal(t, 3.0, m.Value("look-right"))
	assert.Equal(t, 2.0, m.Value("zoom-in"))
	assert.True(t, m.Pressing("fire"))

	m.BeginFrame()
	src.tick()
	src.mouseUp[ebiten.MouseButtonLeft] = true
	p.Poll(m)
	assert.Equal(t, 0.0, m.Value("look-right"))
	assert.True(t, m.Released("fire"))
}

func TestPollText(t *testing.T) {
	src := newFakeSource()
	p := New(WithSource(src))
	m := newMap(t)

	src.chars = []rune("hé")
	p.Poll(m)
	assert.Equal(t, "hé", m.Text())
}

func TestPollGamepad(t *testing.T) {
	src := newFakeSource()
	p := New(WithSource(src), WithDeadzone(0.2))
	m := newMap(t)

	src.pads = []ebiten.GamepadID{1}
	src.standard[1] = true
	src.buttons[ebiten.StandardGamepadButtonRightBottom] = 1
	src.axes[ebiten.StandardGamepadAxisLeftStickHorizontal] = 1
	src.axes[ebiten.StandardGamepadAxisLeftStickVertical] = 0.05
	p.Poll(m)
	assert.True(t, m.Pressed("jump"))
	assert.InDelta(t, 1.0, m.Value("walk"), 0.01)
	assert.False(t, m.Pressing("crouch"))

	m.BeginFrame()
	src.pads = nil
	p.Poll(m)
	assert.True(t, m.Released("jump"))
	assert.Equal(t, 0.0, m.Value("walk"))
}

func TestPollNonStandardGamepadIgnored(t *testing.T) {
	src := newFakeSource()
	p := New(WithSource(src))
	m := newMap(t)

	src.pads = []ebiten.GamepadID{4}
	src.buttons[ebiten.StandardGamepadButtonRightBottom] = 1
	p.Poll(m)
	p.Poll(m)
	assert.False(t, m.Pressing("jump"))
	assert.True(t, p.warned[4])
}

func TestApplyDeadzone(t *testing.T) {
	x, y := applyDeadzone(0.05, 0.05, 0.1)
	assert.Zero(t, x)
	assert.Zero(t, y)

	x, y = applyDeadzone(1, 0, 0.1)
	assert.InDelta(t, 1.0, x, 1e-9)
	assert.Zero(t, y)

	x, _ = applyDeadzone(0.55, 0, 0.1)
	assert.InDelta(t, 0.5, x, 1e-9)

	x, y = applyDeadzone(0.3, -0.4, 0)
	assert.InDelta(t, 0.3, x, 1e-9)
	assert.InDelta(t, -0.4, y, 1e-9)
}

func TestKeyMapping(t *testing.T) {
	assert.Equal(t, code.KeyA, KeyFromEbiten(ebiten.KeyA))
	assert.Equal(t, code.Key7, KeyFromEbiten(ebiten.KeyDigit7))
	assert.Equal(t, code.KeyEnter, KeyFromEbiten(ebiten.KeyNumpadEnter))
	assert.Equal(t, code.KeyUp, KeyFromEbiten(ebiten.KeyArrowUp))
	assert.Equal(t, code.KeyNone, KeyFromEbiten(ebiten.KeyPrintScreen))

	assert.Equal(t, code.ButtonForward, ButtonFromEbiten(ebiten.MouseButton4))
	assert.Equal(t, code.South, PadFromEbiten(ebiten.StandardGamepadButtonRightBottom))
	assert.Equal(t, code.DPadLeft, PadFromEbiten(ebiten.StandardGamepadButtonLeftLeft))
}
