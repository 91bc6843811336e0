// Package ebitenin feeds Ebitengine input into an action map.
//
// Ebitengine is polled: call Poller.Poll once at the top of the game's
// Update, after the map's BeginFrame, and read the map afterwards.
//
//	func (g *Game) Update() error {
//		g.actions.BeginFrame()
//		g.poller.Poll(g.actions)
//		if g.actions.Pressed(Jump) {
//			...
//		}
//		return nil
//	}
package ebitenin

import (
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/dshills/actionmap/internal/input/code"
)

// Device is the device id of the keyboard and mouse. Ebitengine does not
// tell physical keyboards or mice apart.
const Device code.DeviceID = 0

// DefaultDeadzone is the stick magnitude below which axes report zero.
const DefaultDeadzone = 0.1

// Sink receives input. *input.Map satisfies it for every action type.
type Sink interface {
	Update(c code.Code, v float64)
	MoveMouse(id code.DeviceID, dx, dy float64)
	ScrollWheel(id code.DeviceID, dx, dy float64)
	SetCursor(x, y float64)
	SetGamepadAxis(id code.GamepadID, axis code.Axis, v float64)
	SetGamepadButton(id code.GamepadID, btn code.GamepadInput, v float64)
	TypeText(s string)
	DisconnectGamepad(id code.GamepadID)
}

// Source is the polled input state. The default Source reads ebiten and
// inpututil directly.
type Source interface {
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key
	IsMouseButtonJustPressed(b ebiten.MouseButton) bool
	IsMouseButtonJustReleased(b ebiten.MouseButton) bool
	CursorPosition() (x, y int)
	Wheel() (xoff, yoff float64)
	AppendInputChars(runes []rune) []rune
	AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID
	IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool
	StandardGamepadButtonValue(id ebiten.GamepadID, b ebiten.StandardGamepadButton) float64
	StandardGamepadAxisValue(id ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64
}

// Poller translates one tick of polled input into engine calls.
type Poller struct {
	src      Source
	deadzone float64
	logger   *slog.Logger

	keys  []ebiten.Key
	runes []rune
	pads  []ebiten.GamepadID

	connected map[ebiten.GamepadID]bool
	warned    map[ebiten.GamepadID]bool

	cursorX, cursorY int
	hasCursor        bool
}

// Option configures a Poller.
type Option func(*Poller)

// WithDeadzone sets the stick deadzone. Values outside [0, 1) are ignored.
func WithDeadzone(d float64) Option {
	return func(p *Poller) {
		if d >= 0 && d < 1 {
			p.deadzone = d
		}
	}
}

// WithSource replaces the ebiten input source.
func WithSource(src Source) Option {
	return func(p *Poller) {
		if src != nil {
			p.src = src
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Poller) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a Poller.
func New(opts ...Option) *Poller {
	p := &Poller{
		src:       ebitenSource{},
		deadzone:  DefaultDeadzone,
		logger:    slog.New(slog.DiscardHandler),
		connected: make(map[ebiten.GamepadID]bool),
		warned:    make(map[ebiten.GamepadID]bool),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Poll reads the current tick's input and forwards it to s.
func (p *Poller) Poll(s Sink) {
	p.pollKeys(s)
	p.pollMouse(s)
	p.pollText(s)
	p.pollGamepads(s)
}

func (p *Poller) pollKeys(s Sink) {
	p.keys = p.src.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if ck := KeyFromEbiten(k); ck != code.KeyNone {
			s.Update(code.KeyCode(ck).WithDevice(Device), 1)
		}
	}
	p.keys = p.src.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if ck := KeyFromEbiten(k); ck != code.KeyNone {
			s.Update(code.KeyCode(ck).WithDevice(Device), 0)
		}
	}
}

func (p *Poller) pollMouse(s Sink) {
	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		c := code.MouseCode(ButtonFromEbiten(b)).WithDevice(Device)
		if p.src.IsMouseButtonJustPressed(b) {
			s.Update(c, 1)
		}
		if p.src.IsMouseButtonJustReleased(b) {
			s.Update(c, 0)
		}
	}

	x, y := p.src.CursorPosition()
	if p.hasCursor && (x != p.cursorX || y != p.cursorY) {
		s.MoveMouse(Device, float64(x-p.cursorX), float64(y-p.cursorY))
	}
	p.cursorX, p.cursorY, p.hasCursor = x, y, true
	s.SetCursor(float64(x), float64(y))

	if dx, dy := p.src.Wheel(); dx != 0 || dy != 0 {
		s.ScrollWheel(Device, dx, dy)
	}
}

func (p *Poller) pollText(s Sink) {
	p.runes = p.src.AppendInputChars(p.runes[:0])
	if len(p.runes) > 0 {
		s.TypeText(string(p.runes))
	}
}

func (p *Poller) pollGamepads(s Sink) {
	p.pads = p.src.AppendGamepadIDs(p.pads[:0])

	seen := make(map[ebiten.GamepadID]bool, len(p.pads))
	for _, id := range p.pads {
		seen[id] = true
		if !p.connected[id] {
			p.connected[id] = true
			p.logger.Debug("gamepad connected", slog.Int("gamepad", int(id)))
		}
		if !p.src.IsStandardGamepadLayoutAvailable(id) {
			if !p.warned[id] {
				p.warned[id] = true
				p.logger.Warn("gamepad has no standard layout and is ignored", slog.Int("gamepad", int(id)))
			}
			continue
		}
		p.pollGamepad(s, id)
	}

	for id := range p.connected {
		if !seen[id] {
			delete(p.connected, id)
			delete(p.warned, id)
			s.DisconnectGamepad(code.GamepadID(id))
		}
	}
}

func (p *Poller) pollGamepad(s Sink, id ebiten.GamepadID) {
	gid := code.GamepadID(id)
	for _, b := range padButtons {
		s.SetGamepadButton(gid, b.in, p.src.StandardGamepadButtonValue(id, b.btn))
	}

	lx, ly := p.stick(id, ebiten.StandardGamepadAxisLeftStickHorizontal, ebiten.StandardGamepadAxisLeftStickVertical)
	s.SetGamepadAxis(gid, code.AxisLeftStickX, lx)
	s.SetGamepadAxis(gid, code.AxisLeftStickY, ly)

	rx, ry := p.stick(id, ebiten.StandardGamepadAxisRightStickHorizontal, ebiten.StandardGamepadAxisRightStickVertical)
	s.SetGamepadAxis(gid, code.AxisRightStickX, rx)
	s.SetGamepadAxis(gid, code.AxisRightStickY, ry)
}

// stick reads a stick with up positive and applies the radial deadzone.
func (p *Poller) stick(id ebiten.GamepadID, h, v ebiten.StandardGamepadAxis) (x, y float64) {
	x = p.src.StandardGamepadAxisValue(id, h)
	y = -p.src.StandardGamepadAxisValue(id, v)
	return applyDeadzone(x, y, p.deadzone)
}

// applyDeadzone zeroes a stick inside the deadzone and rescales the rest so
// the output still spans the full range.
func applyDeadzone(x, y, dz float64) (float64, float64) {
	mag := math.Hypot(x, y)
	if mag <= dz || mag == 0 {
		return 0, 0
	}
	scale := min((mag-dz)/(1-dz), 1) / mag
	return x * scale, y * scale
}

type ebitenSource struct{}

func (ebitenSource) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (ebitenSource) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustReleasedKeys(keys)
}

func (ebitenSource) IsMouseButtonJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

func (ebitenSource) IsMouseButtonJustReleased(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(b)
}

func (ebitenSource) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenSource) Wheel() (float64, float64) { return ebiten.Wheel() }

func (ebitenSource) AppendInputChars(runes []rune) []rune {
	return ebiten.AppendInputChars(runes)
}

func (ebitenSource) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return ebiten.AppendGamepadIDs(ids)
}

func (ebitenSource) IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool {
	return ebiten.IsStandardGamepadLayoutAvailable(id)
}

func (ebitenSource) StandardGamepadButtonValue(id ebiten.GamepadID, b ebiten.StandardGamepadButton) float64 {
	return ebiten.StandardGamepadButtonValue(id, b)
}

func (ebitenSource) StandardGamepadAxisValue(id ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(id, a)
}
