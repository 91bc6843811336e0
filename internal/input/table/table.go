// Package table provides the reverse index from an input code to every
// binding slot that depends on it.
//
// The index is built once when a map is constructed and extended or rebuilt
// when bindings are added or replaced. Lookup is a single map access, so the
// cost of routing an event is proportional to the number of subscriptions
// for that code, not to the size of the table.
package table

import (
	"sort"

	"github.com/dshills/actionmap/internal/input/code"
)

// Subscription is one slot of one binding of one action.
type Subscription[A comparable] struct {
	// Action owns the binding.
	Action A

	// Binding is the index of the binding within the action.
	Binding int

	// Slot is the index of the code within the binding.
	Slot int
}

// Table maps codes to subscriptions.
// A Table is not safe for concurrent use.
type Table[A comparable] struct {
	subs  map[code.Code][]Subscription[A]
	count int
}

// New creates an empty table.
func New[A comparable]() *Table[A] {
	return &Table[A]{
		subs: make(map[code.Code][]Subscription[A]),
	}
}

// Register adds a subscription for c.
// Several actions and bindings may subscribe to the same code.
func (t *Table[A]) Register(c code.Code, action A, binding, slot int) {
	t.subs[c] = append(t.subs[c], Subscription[A]{
		Action:  action,
		Binding: binding,
		Slot:    slot,
	})
	t.count++
}

// Lookup returns the subscriptions for c.
// The returned slice must not be modified.
func (t *Table[A]) Lookup(c code.Code) []Subscription[A] {
	return t.subs[c]
}

// Subscribers returns the number of subscriptions for c.
func (t *Table[A]) Subscribers(c code.Code) int {
	return len(t.subs[c])
}

// Len returns the number of distinct codes in the table.
func (t *Table[A]) Len() int {
	return len(t.subs)
}

// Size returns the total number of subscriptions.
func (t *Table[A]) Size() int {
	return t.count
}

// Codes returns every indexed code sorted by its text form.
func (t *Table[A]) Codes() []code.Code {
	codes := make([]code.Code, 0, len(t.subs))
	for c := range t.subs {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool {
		return codes[i].String() < codes[j].String()
	})
	return codes
}

// Reset removes every subscription.
func (t *Table[A]) Reset() {
	clear(t.subs)
	t.count = 0
}
