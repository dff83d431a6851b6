package character

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-stroll/pkg/anim"
	"github.com/leterax/go-stroll/pkg/asset"
	"github.com/leterax/go-stroll/pkg/scene"
)

type crossFade struct {
	from     anim.Binding
	duration float32
	warp     bool
}

type fakeBinding struct {
	name      string
	enabled   bool
	time      float32
	timeScale float32
	weight    float32
	plays     int
	fades     []crossFade
	advanced  float32
}

func (b *fakeBinding) SetEnabled(enabled bool)         { b.enabled = enabled }
func (b *fakeBinding) Enabled() bool                   { return b.enabled }
func (b *fakeBinding) Time() float32                   { return b.time }
func (b *fakeBinding) SetTime(t float32)               { b.time = t }
func (b *fakeBinding) SetEffectiveTimeScale(s float32) { b.timeScale = s }
func (b *fakeBinding) SetEffectiveWeight(w float32)    { b.weight = w }
func (b *fakeBinding) Play()                           { b.plays++ }
func (b *fakeBinding) Advance(dt float32)              { b.advanced += dt; b.time += dt }
func (b *fakeBinding) CrossFadeFrom(prev anim.Binding, d float32, warp bool) {
	b.fades = append(b.fades, crossFade{from: prev, duration: d, warp: warp})
}

type fakeMixer struct {
	target   *scene.Node
	bindings map[string]*fakeBinding
	advanced float32
}

func (m *fakeMixer) ClipAction(clip anim.Clip) anim.Binding {
	if b, ok := m.bindings[clip.Name]; ok {
		return b
	}
	b := &fakeBinding{name: clip.Name, timeScale: 0.25, weight: 0.25}
	m.bindings[clip.Name] = b
	return b
}

func (m *fakeMixer) Advance(dt float32) {
	m.advanced += dt
	for _, b := range m.bindings {
		b.Advance(dt)
	}
}

type fakeLoader struct {
	futures map[string]*asset.Future[*asset.Model]
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{futures: make(map[string]*asset.Future[*asset.Model])}
}

func (l *fakeLoader) Load(path string) *asset.Future[*asset.Model] {
	f, ok := l.futures[path]
	if !ok {
		f = asset.NewFuture[*asset.Model]()
		l.futures[path] = f
	}
	return f
}

func (l *fakeLoader) resolve(path string, clips ...string) {
	m := &asset.Model{Path: path, Node: scene.NewNode(path)}
	for _, c := range clips {
		m.Clips = append(m.Clips, anim.Clip{Name: c, Duration: 1})
	}
	l.Load(path).Resolve(m)
}

type fakeCamera struct {
	pos mgl32.Vec3
}

func (c *fakeCamera) Position() mgl32.Vec3       { return c.pos }
func (c *fakeCamera) SetPosition(pos mgl32.Vec3) { c.pos = pos }

type fixedSpeed float32

func (s fixedSpeed) Value() float32 { return float32(s) }
