package input

import (
	"time"

	"github.com/dshills/actionmap/internal/input/code"
)

// BeginFrame ends the current tick and prepares for the next batch of
// events. It must run once per tick, after the application has read this
// tick's state.
//
// In order, it clears pressed and released on every action, drives every
// mouse motion and scroll code back to zero through the update engine,
// and clears the recently pressed code and the typed text. Pressing state,
// held inputs and the cursor position persist.
//
// Because the relative reset runs after the edge flags are cleared, an
// action held only by mouse motion reports released in the following tick.
func (m *Map[A]) BeginFrame() {
	for _, a := range m.order {
		st := m.actions[a]
		st.pressed = false
		st.released = false
	}

	var wild []code.Code
	var concrete []code.Code
	for c := range m.raw {
		if !c.IsRelative() {
			continue
		}
		if c.IsAny() {
			wild = append(wild, c)
		} else {
			concrete = append(concrete, c)
		}
	}
	for _, c := range concrete {
		m.Update(c, 0)
	}
	// Wildcards applied directly, with no concrete source.
	for _, c := range wild {
		if _, ok := m.raw[c]; ok {
			m.Apply(c, 0)
		}
	}

	m.recent = code.Code{}
	m.hasRecent = false
	m.text.Reset()
	m.metrics.recordFrame(time.Now())
}
