// Package input tracks the held directional keys.
package input

// Key is a keyboard key code. Letter keys use their ASCII upper-case value,
// which matches both GLFW and DOM key codes, so host key events convert with
// a plain Key(code).
type Key int

// Movement keys
const (
	KeyW Key = 87
	KeyA Key = 65
	KeyS Key = 83
	KeyD Key = 68
)

// Keys is a snapshot of the four directional keys
type Keys struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Longitudinal reports whether either forward or backward is held
func (k Keys) Longitudinal() bool {
	return k.Forward || k.Backward
}

// State tracks which directional keys are currently held.
// It is written from key callbacks and read once per frame, both on the
// host's main thread.
type State struct {
	keys Keys
}

// NewState creates an input state with every key released
func NewState() *State {
	return &State{}
}

// KeyDown marks the key as held. Unrecognised keys are ignored.
func (s *State) KeyDown(key Key) {
	s.set(key, true)
}

// KeyUp marks the key as released. Unrecognised keys are ignored.
func (s *State) KeyUp(key Key) {
	s.set(key, false)
}

// Keys returns the current key snapshot
func (s *State) Keys() Keys {
	return s.keys
}

func (s *State) set(key Key, held bool) {
	switch key {
	case KeyW:
		s.keys.Forward = held
	case KeyA:
		s.keys.Left = held
	case KeyS:
		s.keys.Backward = held
	case KeyD:
		s.keys.Right = held
	}
}
