package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera with a fixed heading. The character
// controller drags its position along; arrow keys pan it independently.
type Camera struct {
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	// Euler angles in degrees
	yaw   float32
	pitch float32

	fov      float32
	panSpeed float32

	projection mgl32.Mat4
	width      int
	height     int
}

// NewCamera creates a camera at position looking at target
func NewCamera(position, target mgl32.Vec3, width, height int) *Camera {
	camera := &Camera{
		position: position,
		worldUp:  mgl32.Vec3{0, 1, 0},
		fov:      DefaultFOV,
		panSpeed: DefaultPanSpeed,
		width:    width,
		height:   height,
	}

	camera.LookAt(target)
	camera.updateProjectionMatrix()

	return camera
}

// updateCameraVectors recalculates camera vectors based on Euler angles
func (c *Camera) updateCameraVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))
	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()

	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func (c *Camera) updateProjectionMatrix() {
	aspect := float32(c.width) / float32(c.height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, NearPlane, FarPlane)
}

// Resize updates the projection for new framebuffer dimensions
func (c *Camera) Resize(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	c.width = width
	c.height = height
	c.updateProjectionMatrix()
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition moves the camera without changing where it faces
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// FrontVector returns the camera's viewing direction
func (c *Camera) FrontVector() mgl32.Vec3 {
	return c.front
}

// LookAt turns the camera to face target
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.position).Normalize()

	c.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(direction.Z()), float64(direction.X()))))
	c.pitch = mgl32.Clamp(mgl32.RadToDeg(float32(math.Asin(float64(direction.Y())))), MinPitch, MaxPitch)

	c.updateCameraVectors()
}

// Pan moves the camera across the ground plane. forward and strafe are in
// [-1, 1]; the move is scaled by the pan speed and dt.
func (c *Camera) Pan(forward, strafe, dt float32) {
	ground := mgl32.Vec3{c.front.X(), 0, c.front.Z()}
	if ground.Len() == 0 {
		ground = mgl32.Vec3{0, 0, -1}
	}
	ground = ground.Normalize()

	step := c.panSpeed * dt
	c.position = c.position.
		Add(ground.Mul(forward * step)).
		Add(c.right.Mul(strafe * step))
}

// Zoom narrows or widens the field of view
func (c *Camera) Zoom(yoffset float64) {
	c.fov = mgl32.Clamp(c.fov-float32(yoffset)*2, MinFOV, MaxFOV)
	c.updateProjectionMatrix()
}

// FOV returns the vertical field of view in degrees
func (c *Camera) FOV() float32 {
	return c.fov
}
