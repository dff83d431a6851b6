package asset

import (
	"errors"
	"testing"

	"github.com/leterax/go-stroll/pkg/anim"
	"github.com/leterax/go-stroll/pkg/scene"
	"go.uber.org/zap/zaptest"
)

func fakeDecoder(models map[string]*Model) Decoder {
	return DecoderFunc(func(path string) (*Model, error) {
		if path == "panic.gltf" {
			panic("corrupt buffer")
		}
		m, ok := models[path]
		if !ok {
			return nil, errors.New("not found")
		}
		return m, nil
	})
}

func newTestLoader(t *testing.T, models map[string]*Model) *Loader {
	t.Helper()
	l, err := NewLoader(2, fakeDecoder(models), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	t.Cleanup(l.Close)
	return l
}

func TestLoaderDeliversOnPoll(t *testing.T) {
	walk := &Model{Path: "walk.gltf", Node: scene.NewNode("walk"), Clips: []anim.Clip{{Name: "walk/run", Duration: 1}}}
	l := newTestLoader(t, map[string]*Model{"walk.gltf": walk})

	var got *Model
	l.Load("walk.gltf").Then(func(m *Model) { got = m })

	l.Wait()
	if got != nil {
		t.Fatal("future resolved before Poll")
	}
	if n := l.Poll(); n != 1 {
		t.Errorf("Poll() = %d, want 1", n)
	}
	if got != walk {
		t.Errorf("resolved model = %v, want %v", got, walk)
	}
	if n := l.Poll(); n != 0 {
		t.Errorf("second Poll() = %d, want 0", n)
	}
}

func TestLoaderRejectsFailures(t *testing.T) {
	l := newTestLoader(t, nil)

	var missing, panicked error
	l.Load("missing.gltf").Catch(func(err error) { missing = err })
	l.Load("panic.gltf").Catch(func(err error) { panicked = err })

	l.Wait()
	l.Poll()

	if missing == nil {
		t.Error("missing asset was not rejected")
	}
	if panicked == nil {
		t.Error("panicking decoder was not turned into a rejection")
	}
}

func TestLastClip(t *testing.T) {
	m := &Model{Path: "idle.gltf", Clips: []anim.Clip{{Name: "a"}, {Name: "b"}}}
	clip, err := m.LastClip()
	if err != nil || clip.Name != "b" {
		t.Errorf("LastClip() = %v, %v; want b, nil", clip, err)
	}

	empty := &Model{Path: "girl.gltf"}
	if _, err := empty.LastClip(); !errors.Is(err, ErrNoAnimations) {
		t.Errorf("LastClip() error = %v, want ErrNoAnimations", err)
	}
}
