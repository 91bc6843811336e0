// Package termin feeds tcell terminal events into an action map.
//
// Terminals report key presses but never key releases. A key is applied
// at full value when its event arrives and released by the first Tick in
// which it was not seen again, so auto-repeat keeps it held. Mouse buttons
// report real transitions; wheel motion becomes scroll pulses.
//
// A frame of a terminal loop looks like:
//
//	m.BeginFrame()
//	for _, ev := range drained {
//		adapter.HandleEvent(m, ev)
//	}
//	adapter.Tick(m)
//	// read m
package termin

import (
	"log/slog"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/actionmap/internal/input/code"
)

// DefaultDevice is the device id used for the terminal's keyboard and mouse.
const DefaultDevice code.DeviceID = 0

// Sink receives input. *input.Map satisfies it for every action type.
type Sink interface {
	Update(c code.Code, v float64)
	MoveMouse(id code.DeviceID, dx, dy float64)
	ScrollWheel(id code.DeviceID, dx, dy float64)
	SetCursor(x, y float64)
	TypeText(s string)
}

// Adapter converts tcell events. It is not safe for concurrent use; feed
// it from the loop that owns the map.
type Adapter struct {
	device code.DeviceID
	logger *slog.Logger

	// held keys, and the ones seen since the last Tick
	held map[code.Code]bool
	seen map[code.Code]bool

	buttons tcell.ButtonMask
	x, y    int
	hasPos  bool
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithDevice sets the device id reported for keys and the mouse.
func WithDevice(id code.DeviceID) Option {
	return func(a *Adapter) {
		a.device = id
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.logger = l
		}
	}
}

// New creates an Adapter.
func New(opts ...Option) *Adapter {
	a := &Adapter{
		device: DefaultDevice,
		logger: slog.New(slog.DiscardHandler),
		held:   make(map[code.Code]bool),
		seen:   make(map[code.Code]bool),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// HandleEvent forwards ev to s. It reports whether ev was an input event.
func (a *Adapter) HandleEvent(s Sink, ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(s, e)
		return true
	case *tcell.EventMouse:
		a.handleMouse(s, e)
		return true
	default:
		return false
	}
}

// Tick releases every key that was not seen since the previous Tick.
func (a *Adapter) Tick(s Sink) {
	for c := range a.held {
		if !a.seen[c] {
			s.Update(c, 0)
			delete(a.held, c)
		}
	}
	clear(a.seen)
}

// Held reports the number of keys currently held by pulses.
func (a *Adapter) Held() int { return len(a.held) }

func (a *Adapter) handleKey(s Sink, e *tcell.EventKey) {
	k, mods := KeyFromTcell(e.Key(), e.Rune(), e.Modifiers())
	if k == code.KeyNone {
		a.logger.Debug("unmapped terminal key", slog.String("key", e.Name()))
		return
	}
	for _, m := range mods {
		a.pulse(s, m)
	}
	a.pulse(s, k)

	if e.Key() == tcell.KeyRune && e.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
		s.TypeText(string(e.Rune()))
	}
}

func (a *Adapter) pulse(s Sink, k code.Key) {
	c := code.KeyCode(k).WithDevice(a.device)
	s.Update(c, 1)
	a.held[c] = true
	a.seen[c] = true
}

// mouseButtons pairs tcell button bits with mouse buttons.
var mouseButtons = [...]struct {
	mask tcell.ButtonMask
	btn  code.MouseButton
}{
	{tcell.ButtonPrimary, code.ButtonLeft},
	{tcell.ButtonSecondary, code.ButtonRight},
	{tcell.ButtonMiddle, code.ButtonMiddle},
	{tcell.Button4, code.ButtonBack},
	{tcell.Button5, code.ButtonForward},
}

func (a *Adapter) handleMouse(s Sink, e *tcell.EventMouse) {
	x, y := e.Position()
	if a.hasPos && (x != a.x || y != a.y) {
		s.MoveMouse(a.device, float64(x-a.x), float64(y-a.y))
	}
	a.x, a.y, a.hasPos = x, y, true
	s.SetCursor(float64(x), float64(y))

	mask := e.Buttons()
	for _, mb := range mouseButtons {
		was := a.buttons&mb.mask != 0
		now := mask&mb.mask != 0
		if was == now {
			continue
		}
		v := 0.0
		if now {
			v = 1
		}
		s.Update(code.MouseCode(mb.btn).WithDevice(a.device), v)
	}
	a.buttons = mask

	var dx, dy float64
	if mask&tcell.WheelUp != 0 {
		dy++
	}
	if mask&tcell.WheelDown != 0 {
		dy--
	}
	if mask&tcell.WheelRight != 0 {
		dx++
	}
	if mask&tcell.WheelLeft != 0 {
		dx--
	}
	if dx != 0 || dy != 0 {
		s.ScrollWheel(a.device, dx, dy)
	}
}

// KeyFromTcell translates a tcell key event into a key and the modifier
// keys held with it. Uppercase letters imply shift. It returns KeyNone for
// keys with no equivalent.
func KeyFromTcell(k tcell.Key, r rune, mod tcell.ModMask) (code.Key, []code.Key) {
	var key code.Key
	switch {
	case k == tcell.KeyRune:
		key = code.KeyFromRune(r)
		if unicode.IsUpper(r) || (key != code.KeyNone && shifted(r)) {
			mod |= tcell.ModShift
		}
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		key = code.KeyA + code.Key(k-tcell.KeyCtrlA)
		mod |= tcell.ModCtrl
	case k == tcell.KeyCtrlSpace:
		key = code.KeySpace
		mod |= tcell.ModCtrl
	case k == tcell.KeyBacktab:
		key = code.KeyTab
		mod |= tcell.ModShift
	default:
		key = specialKeys[k]
	}
	if key == code.KeyNone {
		return code.KeyNone, nil
	}
	return key, modifierKeys(mod)
}

// shifted reports whether r is typed with shift on a US layout.
func shifted(r rune) bool {
	switch r {
	case '!', '@', '#', '$', '%', '^', '&', '*', '(', ')',
		'_', '+', '{', '}', '|', ':', '"', '~', '<', '>', '?':
		return true
	}
	return false
}

func modifierKeys(mod tcell.ModMask) []code.Key {
	var keys []code.Key
	if mod&tcell.ModShift != 0 {
		keys = append(keys, code.KeyLeftShift)
	}
	if mod&tcell.ModCtrl != 0 {
		keys = append(keys, code.KeyLeftCtrl)
	}
	if mod&tcell.ModAlt != 0 {
		keys = append(keys, code.KeyLeftAlt)
	}
	if mod&tcell.ModMeta != 0 {
		keys = append(keys, code.KeyLeftMeta)
	}
	return keys
}

var specialKeys = map[tcell.Key]code.Key{
	tcell.KeyEnter:      code.KeyEnter,
	tcell.KeyTab:        code.KeyTab,
	tcell.KeyEscape:     code.KeyEscape,
	tcell.KeyBackspace:  code.KeyBackspace,
	tcell.KeyBackspace2: code.KeyBackspace,
	tcell.KeyDelete:     code.KeyDelete,
	tcell.KeyInsert:     code.KeyInsert,
	tcell.KeyHome:       code.KeyHome,
	tcell.KeyEnd:        code.KeyEnd,
	tcell.KeyPgUp:       code.KeyPageUp,
	tcell.KeyPgDn:       code.KeyPageDown,
	tcell.KeyUp:         code.KeyUp,
	tcell.KeyDown:       code.KeyDown,
	tcell.KeyLeft:       code.KeyLeft,
	tcell.KeyRight:      code.KeyRight,
	tcell.KeyCapsLock:   code.KeyCapsLock,
	tcell.KeyF1:         code.KeyF1,
	tcell.KeyF2:         code.KeyF2,
	tcell.KeyF3:         code.KeyF3,
	tcell.KeyF4:         code.KeyF4,
	tcell.KeyF5:         code.KeyF5,
	tcell.KeyF6:         code.KeyF6,
	tcell.KeyF7:         code.KeyF7,
	tcell.KeyF8:         code.KeyF8,
	tcell.KeyF9:         code.KeyF9,
	tcell.KeyF10:        code.KeyF10,
	tcell.KeyF11:        code.KeyF11,
	tcell.KeyF12:        code.KeyF12,
}
