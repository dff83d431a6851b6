// Package anim implements clip playback handles with weight fading and
// time-scale warping, driven by a per-character Mixer.
package anim

// Clip is immutable animation clip data
type Clip struct {
	Name     string
	Duration float32 // seconds
}

// Binding is the live playback handle for one clip
type Binding interface {
	SetEnabled(enabled bool)
	Enabled() bool
	Time() float32
	SetTime(t float32)
	SetEffectiveTimeScale(scale float32)
	SetEffectiveWeight(weight float32)
	Play()
	// CrossFadeFrom fades prev out and this binding in over duration seconds.
	// With warp set, both bindings' time scales are ramped so their clips
	// line up at the end of the fade.
	CrossFadeFrom(prev Binding, duration float32, warp bool)
	Advance(dt float32)
}

// Animator hands out bindings for one target and advances them together
type Animator interface {
	ClipAction(clip Clip) Binding
	Advance(dt float32)
}
