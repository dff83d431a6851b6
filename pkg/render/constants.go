package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Key constants for keyboard input
const (
	KeyUp     = glfw.KeyUp
	KeyDown   = glfw.KeyDown
	KeyLeft   = glfw.KeyLeft
	KeyRight  = glfw.KeyRight
	KeyEscape = glfw.KeyEscape
	KeyEqual  = glfw.KeyEqual
	KeyMinus  = glfw.KeyMinus
)

// Action constants for key states
const (
	Press   = glfw.Press
	Release = glfw.Release
	Repeat  = glfw.Repeat
)

// Camera constants
const (
	// Arrow-key pan speed in units per second
	DefaultPanSpeed = 40.0

	// Field of view
	DefaultFOV = 60.0
	MinFOV     = 15.0
	MaxFOV     = 90.0

	// Clip planes
	NearPlane = 1.0
	FarPlane  = 1000.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0
)
