package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// KeyHandler receives raw key transitions
type KeyHandler func(key glfw.Key, action glfw.Action)

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow *glfw.Window
	width      int
	height     int
	title      string

	keyHandlers    []KeyHandler
	resizeHandlers []func(width, height int)
	scrollHandlers []func(yoffset float64)
}

// NewWindow creates a new GLFW window with OpenGL context
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("OpenGL version: %s\n", version)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)

	w := &Window{
		glfwWindow: glfwWindow,
		width:      width,
		height:     height,
		title:      title,
	}

	glfwWindow.SetKeyCallback(w.keyCallback)
	glfwWindow.SetScrollCallback(w.scrollCallback)
	glfwWindow.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	return w, nil
}

// OnKey registers a handler for key presses and releases.
// Handlers run on the main thread during PollEvents.
func (w *Window) OnKey(h KeyHandler) {
	w.keyHandlers = append(w.keyHandlers, h)
}

// OnResize registers a handler for framebuffer size changes
func (w *Window) OnResize(h func(width, height int)) {
	w.resizeHandlers = append(w.resizeHandlers, h)
}

// OnScroll registers a handler for vertical scroll
func (w *Window) OnScroll(h func(yoffset float64)) {
	w.scrollHandlers = append(w.scrollHandlers, h)
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	for _, h := range w.keyHandlers {
		h(key, action)
	}
}

func (w *Window) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	for _, h := range w.scrollHandlers {
		h(yoffset)
	}
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.width = width
	w.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	for _, h := range w.resizeHandlers {
		h(width, height)
	}
}

// Clear clears the screen
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Time returns seconds since GLFW was initialised
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// SetShouldClose asks the main loop to exit
func (w *Window) SetShouldClose(v bool) {
	w.glfwWindow.SetShouldClose(v)
}

// Close releases all resources
func (w *Window) Close() {
	glfw.Terminate()
}

// Size returns the window dimensions
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// SetTitle sets the window title
func (w *Window) SetTitle(title string) {
	w.title = title
	w.glfwWindow.SetTitle(title)
}

// GetKeyState returns the state of the given key
func (w *Window) GetKeyState(key glfw.Key) glfw.Action {
	return w.glfwWindow.GetKey(key)
}
