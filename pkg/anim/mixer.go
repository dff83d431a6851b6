package anim

// Mixer owns the actions playing on one target and advances them together
type Mixer struct {
	actions map[string]*Action
	order   []*Action
}

// NewMixer creates an empty mixer
func NewMixer() *Mixer {
	return &Mixer{
		actions: make(map[string]*Action),
	}
}

// ClipAction returns the action for clip, creating it on first use
func (m *Mixer) ClipAction(clip Clip) Binding {
	if action, ok := m.actions[clip.Name]; ok {
		return action
	}
	action := newAction(clip)
	m.actions[clip.Name] = action
	m.order = append(m.order, action)
	return action
}

// Advance steps every action by dt
func (m *Mixer) Advance(dt float32) {
	for _, action := range m.order {
		action.Advance(dt)
	}
}

// Dominant returns the playing clip with the highest effective weight
func (m *Mixer) Dominant() (Clip, bool) {
	var (
		best *Action
		top  float32
	)
	for _, action := range m.order {
		if !action.playing {
			continue
		}
		if w := action.EffectiveWeight(); w > top {
			top = w
			best = action
		}
	}
	if best == nil {
		return Clip{}, false
	}
	return best.clip, true
}
