package input

import (
	"math"
	"slices"

	"github.com/google/uuid"

	"github.com/dshills/actionmap/internal/input/code"
	"github.com/dshills/actionmap/internal/input/table"
)

// ActionState is a snapshot of one action.
type ActionState struct {
	Value    float64
	Pressing bool
	Pressed  bool
	Released bool
}

// Pressing reports whether the value of a is at or above the press
// sensitivity. Unknown actions are never pressing.
func (m *Map[A]) Pressing(a A) bool {
	st, ok := m.actions[a]
	return ok && st.pressing
}

// Pressed reports whether a started pressing during this tick.
func (m *Map[A]) Pressed(a A) bool {
	st, ok := m.actions[a]
	return ok && st.pressed
}

// Released reports whether a stopped pressing during this tick.
func (m *Map[A]) Released(a A) bool {
	st, ok := m.actions[a]
	return ok && st.released
}

// Value returns the sum of the contributions of every binding of a.
// It may exceed 1.
func (m *Map[A]) Value(a A) float64 {
	if st, ok := m.actions[a]; ok {
		return st.value
	}
	return 0
}

// State returns the full state of a.
func (m *Map[A]) State(a A) ActionState {
	st, ok := m.actions[a]
	if !ok {
		return ActionState{}
	}
	return ActionState{
		Value:    st.value,
		Pressing: st.pressing,
		Pressed:  st.pressed,
		Released: st.released,
	}
}

// Actions returns every action in declaration order.
func (m *Map[A]) Actions() []A {
	out := make([]A, len(m.order))
	copy(out, m.order)
	return out
}

// RecentlyPressed returns the concrete code most recently pressed this
// tick, bound or not. It is useful for rebinding screens.
func (m *Map[A]) RecentlyPressed() (code.Code, bool) {
	return m.recent, m.hasRecent
}

// Text returns the text typed this tick.
func (m *Map[A]) Text() string {
	return m.text.String()
}

// Cursor returns the last absolute cursor position.
func (m *Map[A]) Cursor() (x, y float64) {
	return m.cursorX, m.cursorY
}

// ID returns the instance id used in log output.
func (m *Map[A]) ID() uuid.UUID {
	return m.id
}

// PressSensitivity returns the press threshold.
func (m *Map[A]) PressSensitivity() float64 {
	return m.sensitivity
}

// SetPressSensitivity changes the press threshold and re-evaluates every
// action, which may raise edges. Values that are not finite and positive
// fall back to the default.
func (m *Map[A]) SetPressSensitivity(v float64) {
	m.sensitivity = positiveOr(v, DefaultPressSensitivity)
	for _, a := range m.order {
		m.settle(m.actions[a])
	}
}

// Axis returns Value(pos) - Value(neg).
func (m *Map[A]) Axis(pos, neg A) float64 {
	return m.Value(pos) - m.Value(neg)
}

// Direction combines two axes into a vector. Y is positive upward.
func (m *Map[A]) Direction(right, left, up, down A) (x, y float64) {
	return m.Axis(right, left), m.Axis(up, down)
}

// DirectionClamped is like Direction but scales the vector down to length
// 1 when it is longer. Shorter vectors are returned unchanged.
func (m *Map[A]) DirectionClamped(right, left, up, down A) (x, y float64) {
	x, y = m.Direction(right, left, up, down)
	if l := math.Hypot(x, y); l > 1 {
		x /= l
		y /= l
	}
	return x, y
}

// Codes returns every bound code sorted by its text form.
func (m *Map[A]) Codes() []code.Code {
	return m.table.Codes()
}

// Subscriptions returns the binding slots that read c.
func (m *Map[A]) Subscriptions(c code.Code) []table.Subscription[A] {
	return slices.Clone(m.table.Lookup(c))
}
