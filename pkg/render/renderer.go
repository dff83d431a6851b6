package render

import (
	_ "embed"
	"fmt"
	"openglhelper"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/leterax/go-stroll/pkg/scene"
)

//go:embed shaders/vert.glsl
var vertexShaderSource string

//go:embed shaders/frag.glsl
var fragmentShaderSource string

var (
	backgroundColor = mgl32.Vec4{0.55, 0.7, 0.85, 1.0}
	lightPos        = mgl32.Vec3{100.0, 200.0, 150.0}
	lightColor      = mgl32.Vec3{1.0, 1.0, 1.0}
)

const ambientStrength = 0.35

// Renderer draws a scene graph into a window and drives the frame loop
type Renderer struct {
	window *openglhelper.Window
	camera *Camera
	scene  *scene.Graph
	logger *zap.Logger

	shader *openglhelper.Shader
	box    *openglhelper.Mesh

	// Timing
	lastFrameTime float64
	deltaTime     float32
	totalTime     float32
}

// NewRenderer compiles the scene shader and hooks camera controls into window
func NewRenderer(window *openglhelper.Window, camera *Camera, graph *scene.Graph, logger *zap.Logger) (*Renderer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	shader, err := openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}

	r := &Renderer{
		window: window,
		camera: camera,
		scene:  graph,
		logger: logger,
		shader: shader,
		box:    openglhelper.NewCube(),
	}

	window.OnResize(camera.Resize)
	window.OnScroll(camera.Zoom)

	return r, nil
}

// panCamera moves the camera with the arrow keys
func (r *Renderer) panCamera(dt float32) {
	var forward, strafe float32
	if r.window.GetKeyState(KeyUp) == Press {
		forward++
	}
	if r.window.GetKeyState(KeyDown) == Press {
		forward--
	}
	if r.window.GetKeyState(KeyRight) == Press {
		strafe++
	}
	if r.window.GetKeyState(KeyLeft) == Press {
		strafe--
	}
	if forward != 0 || strafe != 0 {
		r.camera.Pan(forward, strafe, dt)
	}
}

// render draws every node in the scene as a lit box
func (r *Renderer) render() {
	r.window.Clear(backgroundColor)

	r.shader.Use()

	r.shader.SetMat4("view", r.camera.ViewMatrix())
	r.shader.SetMat4("projection", r.camera.ProjectionMatrix())

	r.shader.SetVec3("viewPos", r.camera.Position())
	r.shader.SetVec3("lightPos", lightPos)
	r.shader.SetVec3("lightColor", lightColor)
	r.shader.SetFloat("ambient", ambientStrength)

	for _, node := range r.scene.Nodes() {
		r.shader.SetMat4("model", node.ModelMatrix())
		r.shader.SetVec3("objectColor", node.Color)
		r.box.Draw()
	}
}

// Run starts the main loop. frame is called once per frame with the
// elapsed time in seconds, before the scene is drawn.
func (r *Renderer) Run(frame func(dt float32)) {
	r.lastFrameTime = r.window.Time()

	for !r.window.ShouldClose() {
		// Calculate delta time
		currentTime := r.window.Time()
		r.deltaTime = float32(currentTime - r.lastFrameTime)
		r.lastFrameTime = currentTime
		r.totalTime += r.deltaTime

		r.panCamera(r.deltaTime)

		if frame != nil {
			frame(r.deltaTime)
		}

		r.render()

		// Swap buffers and poll events
		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	r.logger.Info("render loop stopped", zap.Float32("uptime", r.totalTime))
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	if r.box != nil {
		r.box.Delete()
	}
	if r.shader != nil {
		r.shader.Delete()
	}

	r.window.Close()
}
