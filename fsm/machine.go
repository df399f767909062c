// Package fsm provides a small generic finite state machine used by the
// progression machines. States are built programmatically; transitions fire
// on explicit events or on per-tick guard evaluation.
package fsm

import (
	"fmt"
	"time"
)

// StateID is a unique identifier for a state
type StateID int

// StateNone is the unset state
const StateNone StateID = 0

// EventID identifies a machine-local trigger. Zero means tick-evaluated
type EventID int

// TickEvent marks a transition evaluated every Update rather than on an event
const TickEvent EventID = 0

// ActionFunc is a state lifecycle side effect
type ActionFunc[T any] func(ctx T)

// GuardFunc gates a transition
type GuardFunc[T any] func(ctx T) bool

// State is one node of the machine
type State[T any] struct {
	ID      StateID
	Name    string
	OnEnter ActionFunc[T]
	OnExit  ActionFunc[T]
}

// Transition connects two states on an event or tick guard
type Transition[T any] struct {
	From  StateID
	To    StateID
	Event EventID // TickEvent = evaluated every Update
	Guard GuardFunc[T]
}

// Machine is the generic FSM runtime.
// T is the context type passed to actions and guards
type Machine[T any] struct {
	states      map[StateID]*State[T]
	transitions map[StateID][]Transition[T]

	initial     StateID
	current     StateID
	timeInState time.Duration
}

// NewMachine creates an empty machine
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		states:      make(map[StateID]*State[T]),
		transitions: make(map[StateID][]Transition[T]),
	}
}

// AddState registers a state. The first added state becomes the initial state
func (m *Machine[T]) AddState(s State[T]) {
	st := s
	m.states[s.ID] = &st
	if m.initial == StateNone {
		m.initial = s.ID
	}
}

// AddTransition registers a transition from its source state
func (m *Machine[T]) AddTransition(t Transition[T]) {
	m.transitions[t.From] = append(m.transitions[t.From], t)
}

// Init enters the initial state, running its OnEnter
func (m *Machine[T]) Init(ctx T) error {
	if m.initial == StateNone {
		return fmt.Errorf("fsm: no states defined")
	}
	m.current = m.initial
	m.timeInState = 0
	if s := m.states[m.current]; s.OnEnter != nil {
		s.OnEnter(ctx)
	}
	return nil
}

// Current returns the active state ID
func (m *Machine[T]) Current() StateID {
	return m.current
}

// TimeInState returns elapsed time since entering the active state
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// Update advances time-in-state and evaluates tick transitions.
// At most one transition fires per call
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.current == StateNone {
		return
	}
	m.timeInState += dt

	for _, t := range m.transitions[m.current] {
		if t.Event != TickEvent {
			continue
		}
		if t.Guard == nil || t.Guard(ctx) {
			m.transitionTo(ctx, t.To)
			return
		}
	}
}

// Fire delivers an event to the active state. Returns true if a
// transition was taken
func (m *Machine[T]) Fire(ctx T, ev EventID) bool {
	if m.current == StateNone {
		return false
	}
	for _, t := range m.transitions[m.current] {
		if t.Event != ev {
			continue
		}
		if t.Guard == nil || t.Guard(ctx) {
			m.transitionTo(ctx, t.To)
			return true
		}
	}
	return false
}

// Reset exits the active state and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) {
	if m.current != StateNone {
		if s := m.states[m.current]; s != nil && s.OnExit != nil {
			s.OnExit(ctx)
		}
	}
	m.current = StateNone
	_ = m.Init(ctx)
}

func (m *Machine[T]) transitionTo(ctx T, to StateID) {
	if s := m.states[m.current]; s != nil && s.OnExit != nil {
		s.OnExit(ctx)
	}
	m.current = to
	m.timeInState = 0
	if s := m.states[to]; s != nil && s.OnEnter != nil {
		s.OnEnter(ctx)
	}
}
