package statemachine

import "slices"

// Guard evaluates whether a transition should be allowed based on runtime data.
type Guard[S, E comparable, D any] func(from S, event E, data D) bool

// Transition defines a state change triggered by an event, with optional guards.
type Transition[S, E comparable, D any] struct {
	From   S
	To     S
	Event  E
	Guards []Guard[S, E, D] // All must pass for transition to proceed
}

func (t Transition[S, E, D]) allowed(data D) bool {
	for _, guard := range t.Guards {
		if guard != nil && !guard(t.From, t.Event, data) {
			return false
		}
	}
	return true
}

// Table is a transition table keyed by [from][event].
type Table[S, E comparable, D any] struct {
	transitions map[S]map[E][]Transition[S, E, D]
	events      map[S][]E
}

func New[S, E comparable, D any]() *Table[S, E, D] {
	return &Table[S, E, D]{
		transitions: make(map[S]map[E][]Transition[S, E, D]),
		events:      make(map[S][]E),
	}
}

// Add declares a transition. It returns the table for chaining and is meant
// to be called while building, before the table is shared.
func (t *Table[S, E, D]) Add(from, to S, event E, guards ...Guard[S, E, D]) *Table[S, E, D] {
	if _, ok := t.transitions[from]; !ok {
		t.transitions[from] = make(map[E][]Transition[S, E, D])
	}
	if _, ok := t.transitions[from][event]; !ok {
		t.events[from] = append(t.events[from], event)
	}

	// Multiple transitions allowed for same from/event to support guard-based branching
	t.transitions[from][event] = append(t.transitions[from][event], Transition[S, E, D]{
		From:   from,
		To:     to,
		Event:  event,
		Guards: guards,
	})
	return t
}

// Next returns the state reached from `from` on event.
func (t *Table[S, E, D]) Next(from S, event E, data D) (S, error) {
	candidates := t.transitions[from][event]
	if len(candidates) == 0 {
		var zero S
		return zero, transitionError(from, event, ErrNoTransition)
	}

	// First transition with passing guards wins (enables priority ordering)
	for _, tr := range candidates {
		if tr.allowed(data) {
			return tr.To, nil
		}
	}

	var zero S
	return zero, transitionError(from, event, ErrGuardRejected)
}

// Can reports whether Next would succeed.
func (t *Table[S, E, D]) Can(from S, event E, data D) bool {
	_, err := t.Next(from, event, data)
	return err == nil
}

// Events returns the events declared for state from, in declaration order.
// Guards are not evaluated.
func (t *Table[S, E, D]) Events(from S) []E {
	return slices.Clone(t.events[from])
}
