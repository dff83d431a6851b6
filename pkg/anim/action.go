package anim

import "math"

// ramp linearly interpolates a value between two points on an action's clock
type ramp struct {
	start, end float32
	from, to   float32
}

func (r *ramp) at(now float32) (value float32, done bool) {
	if now >= r.end {
		return r.to, true
	}
	if now <= r.start {
		return r.from, false
	}
	alpha := (now - r.start) / (r.end - r.start)
	return r.from + (r.to-r.from)*alpha, false
}

// Action is the Mixer's Binding implementation
type Action struct {
	clip    Clip
	enabled bool
	playing bool

	time      float32
	timeScale float32
	weight    float32

	// clock runs in unscaled seconds and drives the ramps
	clock float32
	fade  *ramp
	warp  *ramp

	effectiveWeight    float32
	effectiveTimeScale float32
}

func newAction(clip Clip) *Action {
	return &Action{
		clip:               clip,
		enabled:            true,
		timeScale:          1,
		weight:             1,
		effectiveWeight:    1,
		effectiveTimeScale: 1,
	}
}

// Clip returns the clip this action plays
func (a *Action) Clip() Clip {
	return a.clip
}

// SetEnabled turns the action on or off; a disabled action has no weight
func (a *Action) SetEnabled(enabled bool) {
	a.enabled = enabled
}

// Enabled reports whether the action contributes to the blend
func (a *Action) Enabled() bool {
	return a.enabled
}

// Time returns the playback cursor in seconds
func (a *Action) Time() float32 {
	return a.time
}

// SetTime moves the playback cursor
func (a *Action) SetTime(t float32) {
	a.time = t
}

// SetEffectiveTimeScale sets the time scale and cancels any warp in progress
func (a *Action) SetEffectiveTimeScale(scale float32) {
	a.timeScale = scale
	a.effectiveTimeScale = scale
	a.warp = nil
}

// SetEffectiveWeight sets the weight and cancels any fade in progress
func (a *Action) SetEffectiveWeight(weight float32) {
	a.weight = weight
	a.effectiveWeight = weight
	a.fade = nil
}

// EffectiveWeight is the blend weight after fading, zero while disabled
func (a *Action) EffectiveWeight() float32 {
	if !a.enabled {
		return 0
	}
	return a.effectiveWeight
}

// EffectiveTimeScale is the playback rate after warping
func (a *Action) EffectiveTimeScale() float32 {
	return a.effectiveTimeScale
}

// Play starts the action advancing with the mixer
func (a *Action) Play() {
	a.playing = true
}

// Stop halts playback and clears fades and warps
func (a *Action) Stop() {
	a.playing = false
	a.fade = nil
	a.warp = nil
}

// Playing reports whether Play has been called since the last Stop
func (a *Action) Playing() bool {
	return a.playing
}

// Fading reports whether a weight fade is still running
func (a *Action) Fading() bool {
	return a.fade != nil
}

// CrossFadeFrom fades this action in and prev out over duration seconds.
// With warp, both time scales ramp so the clips stay in step.
func (a *Action) CrossFadeFrom(prev Binding, duration float32, warp bool) {
	a.fadeIn(duration)

	other, ok := prev.(*Action)
	if !ok {
		// Foreign bindings can't be faded; drop them out immediately.
		prev.SetEffectiveWeight(0)
		return
	}
	other.fadeOut(duration)

	if warp && a.clip.Duration > 0 && other.clip.Duration > 0 {
		startEnd := other.clip.Duration / a.clip.Duration
		endStart := a.clip.Duration / other.clip.Duration
		other.warpScale(1, startEnd, duration)
		a.warpScale(endStart, 1, duration)
	}
}

// fadeIn, fadeOut and warpScale only install ramps. The effective values
// keep whatever was last set until the next Advance evaluates them.
func (a *Action) fadeIn(duration float32) {
	a.fade = &ramp{start: a.clock, end: a.clock + duration, from: 0, to: a.weight}
}

func (a *Action) fadeOut(duration float32) {
	a.fade = &ramp{start: a.clock, end: a.clock + duration, from: a.effectiveWeight, to: 0}
}

func (a *Action) warpScale(from, to, duration float32) {
	a.warp = &ramp{
		start: a.clock,
		end:   a.clock + duration,
		from:  a.timeScale * from,
		to:    a.timeScale * to,
	}
}

// Advance moves the action's clock and, when playing, its time cursor
func (a *Action) Advance(dt float32) {
	if !a.enabled || !a.playing {
		return
	}
	a.clock += dt

	if a.warp != nil {
		scale, done := a.warp.at(a.clock)
		a.effectiveTimeScale = scale
		if done {
			a.timeScale = scale
			a.warp = nil
		}
	}

	if a.fade != nil {
		weight, done := a.fade.at(a.clock)
		a.effectiveWeight = weight
		if done {
			a.fade = nil
			if weight == 0 {
				a.enabled = false
			}
		}
	}

	a.time += dt * a.effectiveTimeScale
	if d := a.clip.Duration; d > 0 {
		a.time = float32(math.Mod(float64(a.time), float64(d)))
		if a.time < 0 {
			a.time += d
		}
	}
}
