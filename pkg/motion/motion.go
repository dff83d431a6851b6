// Package motion integrates character velocity, heading and position one
// frame at a time.
package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-stroll/pkg/input"
)

var (
	// DefaultAcceleration is (unused, turn rate, forward speed); z is
	// overwritten from the speed parameter every frame
	DefaultAcceleration = mgl32.Vec3{1, 0.25, 50.0}
	// DefaultDeceleration is the per-axis drag applied to velocity
	DefaultDeceleration = mgl32.Vec3{-0.0005, -0.0001, -5.0}

	up       = mgl32.Vec3{0, 1, 0}
	forwardZ = mgl32.Vec3{0, 0, 1}
	rightX   = mgl32.Vec3{1, 0, 0}
)

// Bounds is the playable rectangle on the ground plane
type Bounds struct {
	MinX float32 `yaml:"min_x"`
	MaxX float32 `yaml:"max_x"`
	MinZ float32 `yaml:"min_z"`
	MaxZ float32 `yaml:"max_z"`
}

// DefaultBounds returns the standard playable area
func DefaultBounds() Bounds {
	return Bounds{MinX: -50, MaxX: 50, MinZ: -180, MaxZ: 230}
}

// Contains reports whether p lies inside the rectangle, edges included
func (b Bounds) Contains(p mgl32.Vec3) bool {
	return p.X() >= b.MinX && p.X() <= b.MaxX && p.Z() >= b.MinZ && p.Z() <= b.MaxZ
}

// Pose is the character's position and heading
type Pose struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
}

// NewPose creates a pose at position facing +Z
func NewPose(position mgl32.Vec3) Pose {
	return Pose{Position: position, Orientation: mgl32.QuatIdent()}
}

// Integrator owns the character's velocity and applies one physics step per frame
type Integrator struct {
	Velocity     mgl32.Vec3
	Acceleration mgl32.Vec3
	Deceleration mgl32.Vec3
	Bounds       Bounds
}

// NewIntegrator creates an integrator at rest
func NewIntegrator(bounds Bounds) *Integrator {
	return &Integrator{
		Acceleration: DefaultAcceleration,
		Deceleration: DefaultDeceleration,
		Bounds:       bounds,
	}
}

// Step advances one frame of dt seconds. Velocity and orientation are always
// committed; the translation is committed only if it keeps the pose inside
// Bounds. It returns the displacement and whether it was applied.
func (it *Integrator) Step(dt float32, keys input.Keys, speed float32, pose *Pose) (mgl32.Vec3, bool) {
	it.Acceleration[2] = speed

	it.decelerate(dt)

	var thrust float32
	if keys.Forward {
		thrust += it.Acceleration.Z()
	}
	if keys.Backward {
		thrust -= it.Acceleration.Z()
	}
	it.Velocity[2] += thrust * dt

	turn := float32(4.0*math.Pi) * dt * it.Acceleration.Y()
	if keys.Left {
		pose.Orientation = pose.Orientation.Mul(mgl32.QuatRotate(turn, up))
	}
	if keys.Right {
		pose.Orientation = pose.Orientation.Mul(mgl32.QuatRotate(-turn, up))
	}

	forward := pose.Orientation.Rotate(forwardZ).Normalize().Mul(it.Velocity.Z() * dt)
	sideways := pose.Orientation.Rotate(rightX).Normalize().Mul(it.Velocity.X() * dt)
	displacement := forward.Add(sideways)

	if !it.Bounds.Contains(pose.Position.Add(displacement)) {
		return mgl32.Vec3{}, false
	}
	pose.Position = pose.Position.Add(forward).Add(sideways)
	return displacement, true
}

// decelerate applies drag, never letting the forward component overshoot zero
func (it *Integrator) decelerate(dt float32) {
	frame := mgl32.Vec3{
		it.Velocity.X() * it.Deceleration.X(),
		it.Velocity.Y() * it.Deceleration.Y(),
		it.Velocity.Z() * it.Deceleration.Z(),
	}.Mul(dt)
	frame[2] = sign(frame.Z()) * min(mgl32.Abs(frame.Z()), mgl32.Abs(it.Velocity.Z()))

	it.Velocity = it.Velocity.Add(frame)
}

func sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
