// Package fsm provides a small finite state machine whose states are built on
// demand from a registry of named factories.
package fsm

import (
	"errors"
	"fmt"
)

// ErrUnknownState is the panic value wrapped when a state name was never registered
var ErrUnknownState = errors.New("fsm: unknown state")

// StateID names a state
type StateID string

// NoState is passed to Enter on the first activation
const NoState StateID = ""

// State is one state of a Machine driven by input of type I
type State[I any] interface {
	// Name returns the id the state was registered under
	Name() StateID
	// Enter is called once when the state becomes active. prev is NoState on
	// the first activation. There is no exit hook; the incoming state cleans
	// up after the outgoing one.
	Enter(prev StateID)
	// Update is called every frame while the state is active
	Update(dt float32, in I)
}

// Factory builds a fresh state bound to its machine
type Factory[I any] func(m *Machine[I]) State[I]

// Machine holds the state registry and at most one active state
type Machine[I any] struct {
	factories map[StateID]Factory[I]
	current   State[I]
}

// New creates an empty machine with no active state
func New[I any]() *Machine[I] {
	return &Machine[I]{
		factories: make(map[StateID]Factory[I]),
	}
}

// Register associates name with a factory. A later registration for the same
// name replaces the earlier one.
func (m *Machine[I]) Register(name StateID, factory Factory[I]) {
	m.factories[name] = factory
}

// SetState activates the named state. Re-entering the active state is a no-op.
// An unregistered name is a programming error and panics.
func (m *Machine[I]) SetState(name StateID) {
	prev := NoState
	if m.current != nil {
		if m.current.Name() == name {
			return
		}
		prev = m.current.Name()
	}

	factory, ok := m.factories[name]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownState, name))
	}

	state := factory(m)
	state.Enter(prev)
	m.current = state
}

// Update forwards to the active state, if any
func (m *Machine[I]) Update(dt float32, in I) {
	if m.current == nil {
		return
	}
	m.current.Update(dt, in)
}

// Current returns the active state's name and whether one is active
func (m *Machine[I]) Current() (StateID, bool) {
	if m.current == nil {
		return NoState, false
	}
	return m.current.Name(), true
}
