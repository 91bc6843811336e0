package input

import (
	"math"

	"github.com/dshills/actionmap/internal/input/code"
)

// Apply sets the value of one code and updates every action that depends
// on it.
//
// Only the bindings subscribed to c are touched. A binding of more than
// ratioArity codes whose slot was nonzero is updated by the ratio of the new
// and old slot values. Shorter bindings, slots that were zero and bindings
// whose value overflowed are recomputed as the product of their slots.
// An action with a single binding takes that binding's value exactly, so a
// held chord lands on the press sensitivity without rounding drift. Values
// that are negative or not finite are treated as zero.
//
// Apply does not touch the wildcard form of a concrete code; use Update for
// events that come from a known device.
func (m *Map[A]) Apply(c code.Code, v float64) {
	v = sanitize(v)
	m.metrics.recordApply()
	m.store(c, v)

	subs := m.table.Lookup(c)
	if len(subs) == 0 {
		m.metrics.recordUnbound()
		if v >= m.sensitivity && !c.IsAny() {
			m.setRecent(c)
		}
		return
	}

	for _, s := range subs {
		st := m.actions[s.Action]
		b := &st.binds[s.Binding]

		old := b.slots[s.Slot]
		b.slots[s.Slot] = v

		prev := b.value
		var next float64
		// prev is zero with a nonzero old slot only after an overflow
		if old != 0 && prev != 0 && len(b.slots) > ratioArity {
			next = finite(prev * (v / old))
			m.metrics.recordRatio()
		} else {
			next = product(b.slots)
			m.metrics.recordRecompute()
		}
		b.value = next

		if len(st.binds) == 1 {
			st.value = next
		} else {
			st.value = finite(st.value + (next - prev))
		}
		if st.value != 0 && math.Abs(st.value) < Epsilon {
			st.value = 0
			m.metrics.recordSnap()
		}

		m.settle(st)
		if st.pressing && v > 0 && !c.IsAny() {
			m.setRecent(c)
		}
	}
}

// Update applies an event from a concrete device or gamepad to both the
// concrete code and its wildcard form.
//
// The wildcard form carries the largest value among all devices currently
// reporting that input, so releasing a key on one keyboard does not release
// bindings while another keyboard still holds it. A wildcard c is applied
// as is.
func (m *Map[A]) Update(c code.Code, v float64) {
	m.Apply(c, v)
	if c.IsAny() {
		return
	}

	w := c.Any()
	wv := m.wildcardValue(w)
	if wv == m.raw[w] {
		return
	}
	m.Apply(w, wv)
}

// Press applies 1 to c through Update.
func (m *Map[A]) Press(c code.Code) {
	m.Update(c, 1)
}

// Release applies 0 to c through Update.
func (m *Map[A]) Release(c code.Code) {
	m.Update(c, 0)
}

// settle derives the pressing state and the edge flags from the value.
// Edges are sticky until the next BeginFrame.
func (m *Map[A]) settle(st *actionState) {
	now := st.value >= m.sensitivity
	pressed := now && !st.pressing
	released := !now && st.pressing
	if pressed {
		st.pressed = true
	}
	if released {
		st.released = true
	}
	st.pressing = now
	m.metrics.recordEdges(pressed, released)
}

// store records the raw value of c and, for concrete codes, whether the
// device is a source for the wildcard form.
func (m *Map[A]) store(c code.Code, v float64) {
	if v == 0 {
		delete(m.raw, c)
	} else {
		m.raw[c] = v
	}
	if c.IsAny() {
		return
	}

	w := c.Any()
	set := m.sources[w]
	if v == 0 {
		if set != nil {
			delete(set, c)
			if len(set) == 0 {
				delete(m.sources, w)
			}
		}
		return
	}
	if set == nil {
		set = make(map[code.Code]struct{})
		m.sources[w] = set
	}
	set[c] = struct{}{}
}

func (m *Map[A]) wildcardValue(w code.Code) float64 {
	var v float64
	for src := range m.sources[w] {
		v = max(v, m.raw[src])
	}
	return v
}

func (m *Map[A]) setRecent(c code.Code) {
	m.recent = c
	m.hasRecent = true
}

// ratioArity is the longest binding that is always multiplied out.
const ratioArity = 2

func product(slots []float64) float64 {
	p := 1.0
	for _, s := range slots {
		if s == 0 {
			return 0
		}
		p *= s
	}
	return finite(p)
}

// sanitize maps input values that cannot be aggregated to zero.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// finite maps NaN and infinities to zero and keeps every other value.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
