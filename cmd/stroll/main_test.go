package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-stroll/pkg/anim"
	"github.com/leterax/go-stroll/pkg/motion"
	"github.com/leterax/go-stroll/pkg/tunable"
)

func TestGroundCoversBounds(t *testing.T) {
	g := ground(motion.DefaultBounds())

	if g.Size != (mgl32.Vec3{100, 0.1, 410}) {
		t.Errorf("Size = %v, want (100, 0.1, 410)", g.Size)
	}
	if g.Position != (mgl32.Vec3{0, -0.1, 25}) {
		t.Errorf("Position = %v, want (0, -0.1, 25)", g.Position)
	}
}

func TestStatusTitle(t *testing.T) {
	speed := tunable.NewSpeed()

	if got := statusTitle("stroll", nil, speed); got != "stroll (loading)" {
		t.Errorf("before load = %q", got)
	}

	mixer := anim.NewMixer()
	if got := statusTitle("stroll", mixer, speed); got != "stroll | speed 50" {
		t.Errorf("no clip playing = %q", got)
	}

	idle := mixer.ClipAction(anim.Clip{Name: "Idle/mixamo.com", Duration: 2})
	idle.SetEnabled(true)
	idle.Play()
	speed.Step(10)
	if got := statusTitle("stroll", mixer, speed); got != "stroll | Idle/mixamo.com | speed 60" {
		t.Errorf("idle playing = %q", got)
	}
}
