package input

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/actionmap/internal/input/code"
	"github.com/dshills/actionmap/internal/input/table"
)

// Binds is the declarative form of one action: the action and its
// bindings. Each binding is an AND-group of codes; the bindings of an
// action form an OR-group.
type Binds[A comparable] struct {
	Action   A
	Bindings [][]code.Code
}

// binding is the cached state of one AND-group.
type binding struct {
	codes []code.Code
	slots []float64
	value float64
}

// actionState is the aggregate state of one action.
type actionState struct {
	binds    []binding
	value    float64
	pressing bool
	pressed  bool
	released bool
}

// Map maps physical input codes to the state of user-defined actions.
//
// A Map is owned by one event loop and is not safe for concurrent use.
// Applications with several logical players create one Map per player.
type Map[A comparable] struct {
	id      uuid.UUID
	logger  *slog.Logger
	metrics *Metrics

	table   *table.Table[A]
	actions map[A]*actionState
	order   []A

	// raw holds the last nonzero value of every code seen.
	raw map[code.Code]float64

	// sources maps a wildcard code to the concrete codes currently
	// reporting a nonzero value for it.
	sources map[code.Code]map[code.Code]struct{}

	sensitivity float64
	mouseScale  float64
	scrollScale float64

	recent    code.Code
	hasRecent bool
	text      strings.Builder

	cursorX, cursorY float64
}

// New creates a Map from a declarative bind list.
//
// Bindings are validated before anything is built; on error no Map is
// returned. Actions without bindings are accepted and logged as warnings.
// Repeated actions merge their bindings in order.
func New[A comparable](binds []Binds[A], opts ...Option) (*Map[A], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validate(binds); err != nil {
		return nil, err
	}

	m := &Map[A]{
		id:          o.id,
		logger:      o.logger,
		metrics:     o.metrics,
		table:       table.New[A](),
		actions:     make(map[A]*actionState),
		raw:         make(map[code.Code]float64),
		sources:     make(map[code.Code]map[code.Code]struct{}),
		sensitivity: o.sensitivity,
		mouseScale:  o.mouseScale,
		scrollScale: o.scrollScale,
	}
	if m.id == uuid.Nil {
		m.id = uuid.New()
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m.logger = m.logger.With(slog.String("map_id", m.id.String()))

	m.install(binds)
	m.logger.Debug("action map created",
		slog.Int("actions", len(m.order)),
		slog.Int("codes", m.table.Len()),
		slog.Int("subscriptions", m.table.Size()))
	return m, nil
}

// MustNew is like New but panics on error.
func MustNew[A comparable](binds []Binds[A], opts ...Option) *Map[A] {
	m, err := New(binds, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// AddBinds adds bindings without disturbing existing state.
// New slots take the current value of their code, so inputs that are
// already held count immediately and may raise pressed edges.
func (m *Map[A]) AddBinds(binds []Binds[A]) error {
	if err := validate(binds); err != nil {
		return err
	}
	m.install(binds)
	return nil
}

// SetBinds replaces every binding. Slots are seeded from the current input
// values. Actions that survive keep their pressing state, so edges reflect
// the change; actions that are not in binds are dropped.
func (m *Map[A]) SetBinds(binds []Binds[A]) error {
	if err := validate(binds); err != nil {
		return err
	}

	old := m.actions
	m.table.Reset()
	m.actions = make(map[A]*actionState)
	m.order = m.order[:0]

	for _, b := range binds {
		if _, ok := m.actions[b.Action]; ok {
			continue
		}
		st := &actionState{}
		if prev, ok := old[b.Action]; ok {
			st.pressing = prev.pressing
			st.pressed = prev.pressed
			st.released = prev.released
		}
		m.actions[b.Action] = st
		m.order = append(m.order, b.Action)
	}

	m.install(binds)
	m.logger.Debug("bindings replaced",
		slog.Int("actions", len(m.order)),
		slog.Int("codes", m.table.Len()))
	return nil
}

// Binds returns the declarative bind list in declaration order.
func (m *Map[A]) Binds() []Binds[A] {
	out := make([]Binds[A], 0, len(m.order))
	for _, a := range m.order {
		st := m.actions[a]
		b := Binds[A]{Action: a, Bindings: make([][]code.Code, len(st.binds))}
		for i := range st.binds {
			b.Bindings[i] = slices.Clone(st.binds[i].codes)
		}
		out = append(out, b)
	}
	return out
}

func validate[A comparable](binds []Binds[A]) error {
	for _, b := range binds {
		for i, codes := range b.Bindings {
			if len(codes) == 0 {
				return fmt.Errorf("%w: action %v binding %d", ErrEmptyBinding, b.Action, i)
			}
			for j, c := range codes {
				if !c.Valid() {
					return fmt.Errorf("%w: action %v binding %d slot %d: %s",
						ErrInvalidCode, b.Action, i, j, c)
				}
			}
		}
	}
	return nil
}

// install registers binds on top of the current table. binds must have
// been validated.
func (m *Map[A]) install(binds []Binds[A]) {
	touched := make([]A, 0, len(binds))
	seen := make(map[A]bool, len(binds))
	for _, b := range binds {
		st, ok := m.actions[b.Action]
		if !ok {
			st = &actionState{}
			m.actions[b.Action] = st
			m.order = append(m.order, b.Action)
		}
		if !seen[b.Action] {
			seen[b.Action] = true
			touched = append(touched, b.Action)
		}

		for _, codes := range b.Bindings {
			idx := len(st.binds)
			bd := binding{
				codes: slices.Clone(codes),
				slots: make([]float64, len(codes)),
			}
			for slot, c := range codes {
				bd.slots[slot] = m.raw[c]
				m.table.Register(c, b.Action, idx, slot)
			}
			bd.value = product(bd.slots)
			st.binds = append(st.binds, bd)
			st.value = finite(st.value + bd.value)
		}
	}

	for _, a := range touched {
		st := m.actions[a]
		if len(st.binds) == 0 {
			m.logger.Warn("action has no bindings and will never be pressed",
				slog.String("action", fmt.Sprint(a)))
		}
		m.settle(st)
	}
}
