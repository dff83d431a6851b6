package anim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func approx(t *testing.T, what string, got, want float32) {
	t.Helper()
	if !mgl32.FloatEqualThreshold(got, want, eps) {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}

func TestAdvanceLoopsTime(t *testing.T) {
	m := NewMixer()
	a := m.ClipAction(Clip{Name: "idle", Duration: 2}).(*Action)
	a.Play()

	m.Advance(0.5)
	approx(t, "time", a.Time(), 0.5)

	m.Advance(2)
	approx(t, "time after wrap", a.Time(), 0.5)
}

func TestAdvanceIgnoredUntilPlaying(t *testing.T) {
	m := NewMixer()
	a := m.ClipAction(Clip{Name: "idle", Duration: 2}).(*Action)

	m.Advance(1)
	approx(t, "time", a.Time(), 0)
}

func TestClipActionIsCached(t *testing.T) {
	m := NewMixer()
	first := m.ClipAction(Clip{Name: "walk", Duration: 1})
	second := m.ClipAction(Clip{Name: "walk", Duration: 1})
	if first != second {
		t.Error("ClipAction returned a new action for the same clip")
	}
}

func TestCrossFade(t *testing.T) {
	m := NewMixer()
	idle := m.ClipAction(Clip{Name: "idle", Duration: 2}).(*Action)
	walk := m.ClipAction(Clip{Name: "walk", Duration: 1}).(*Action)

	idle.Play()
	m.Advance(0.5)
	if clip, ok := m.Dominant(); !ok || clip.Name != "idle" {
		t.Fatalf("Dominant() = %v, %v; want idle", clip, ok)
	}

	walk.SetEnabled(true)
	walk.SetTime(0)
	walk.SetEffectiveTimeScale(1)
	walk.SetEffectiveWeight(1)
	walk.CrossFadeFrom(idle, 0.5, true)
	walk.Play()

	// Ramps only take effect on the next Advance
	approx(t, "walk weight at start", walk.EffectiveWeight(), 1)
	approx(t, "idle weight at start", idle.EffectiveWeight(), 1)
	approx(t, "walk scale at start", walk.EffectiveTimeScale(), 1)
	approx(t, "idle scale at start", idle.EffectiveTimeScale(), 1)
	if !walk.Fading() || !idle.Fading() {
		t.Fatal("cross-fade did not install fades")
	}

	// idle is twice as long as walk: walk ramps up from half speed, idle ramps to double

	m.Advance(0.25)
	approx(t, "walk weight mid", walk.EffectiveWeight(), 0.5)
	approx(t, "idle weight mid", idle.EffectiveWeight(), 0.5)
	approx(t, "walk scale mid", walk.EffectiveTimeScale(), 0.75)
	approx(t, "idle scale mid", idle.EffectiveTimeScale(), 1.5)

	m.Advance(0.25)
	approx(t, "walk weight end", walk.EffectiveWeight(), 1)
	approx(t, "walk scale end", walk.EffectiveTimeScale(), 1)
	if idle.Enabled() {
		t.Error("idle still enabled after fading out")
	}
	if walk.Fading() {
		t.Error("walk still fading after the fade duration")
	}
	if clip, ok := m.Dominant(); !ok || clip.Name != "walk" {
		t.Errorf("Dominant() = %v, %v; want walk", clip, ok)
	}
}

func TestSetEffectiveWeightCancelsFade(t *testing.T) {
	m := NewMixer()
	idle := m.ClipAction(Clip{Name: "idle", Duration: 1}).(*Action)
	walk := m.ClipAction(Clip{Name: "walk", Duration: 1}).(*Action)
	idle.Play()
	walk.Play()
	walk.CrossFadeFrom(idle, 0.5, false)

	walk.SetEffectiveWeight(1)
	if walk.Fading() {
		t.Error("SetEffectiveWeight left the fade running")
	}
	approx(t, "weight", walk.EffectiveWeight(), 1)
}
