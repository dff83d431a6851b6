package character

import (
	"fmt"

	"github.com/leterax/go-stroll/pkg/anim"
	"github.com/leterax/go-stroll/pkg/fsm"
	"github.com/leterax/go-stroll/pkg/input"
)

// Animation states
const (
	Idle fsm.StateID = "idle"
	Walk fsm.StateID = "walk"
)

// CrossFadeDuration is how long, in seconds, one clip blends into the next
const CrossFadeDuration = 0.5

// Bindings maps each animation state to the binding of its clip.
// Entries are added as clips finish loading.
type Bindings map[fsm.StateID]anim.Binding

func (b Bindings) lookup(id fsm.StateID) anim.Binding {
	binding, ok := b[id]
	if !ok {
		panic(fmt.Sprintf("character: no animation bound for state %q", id))
	}
	return binding
}

// FSM is the character's animation state machine
type FSM = fsm.Machine[input.Keys]

// NewFSM builds the idle/walk machine over bindings
func NewFSM(bindings Bindings) *FSM {
	m := fsm.New[input.Keys]()
	for _, id := range []fsm.StateID{Idle, Walk} {
		m.Register(id, func(m *FSM) fsm.State[input.Keys] {
			return &animState{id: id, machine: m, bindings: bindings}
		})
	}
	return m
}

// animState is either Idle or Walk; behaviour is selected on id
type animState struct {
	id       fsm.StateID
	machine  *FSM
	bindings Bindings
}

func (s *animState) Name() fsm.StateID {
	return s.id
}

func (s *animState) Enter(prev fsm.StateID) {
	cur := s.bindings.lookup(s.id)
	cur.SetEnabled(true)
	cur.SetTime(0)

	if prev != fsm.NoState {
		cur.SetEffectiveTimeScale(1.0)
		cur.SetEffectiveWeight(1.0)
		cur.CrossFadeFrom(s.bindings.lookup(prev), CrossFadeDuration, true)
	}
	cur.Play()
}

func (s *animState) Update(_ float32, keys input.Keys) {
	switch s.id {
	case Idle:
		if keys.Longitudinal() {
			s.machine.SetState(Walk)
		}
	case Walk:
		if !keys.Longitudinal() {
			s.machine.SetState(Idle)
		}
	}
}
