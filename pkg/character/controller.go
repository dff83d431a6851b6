// Package character drives a single animated character from keyboard input:
// an idle/walk animation state machine, per-frame motion integration and a
// camera that follows by the same displacement.
package character

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-stroll/pkg/anim"
	"github.com/leterax/go-stroll/pkg/asset"
	"github.com/leterax/go-stroll/pkg/fsm"
	"github.com/leterax/go-stroll/pkg/input"
	"github.com/leterax/go-stroll/pkg/motion"
	"github.com/leterax/go-stroll/pkg/scene"
	"github.com/leterax/go-stroll/pkg/tunable"
	"go.uber.org/zap"
)

// Camera is the view the controller drags along with the character
type Camera interface {
	Position() mgl32.Vec3
	SetPosition(pos mgl32.Vec3)
}

// Scene accepts the character's node once it has loaded
type Scene interface {
	Add(n *scene.Node)
}

// Loader fetches models asynchronously
type Loader interface {
	Load(path string) *asset.Future[*asset.Model]
}

// SpeedSource supplies the forward acceleration, read once per frame
type SpeedSource interface {
	Value() float32
}

// MixerFactory creates the animation mixer for a loaded node
type MixerFactory func(target *scene.Node) anim.Animator

// Deps are the collaborators the controller is wired to
type Deps struct {
	Scene  Scene
	Camera Camera
	Loader Loader
	Mixers MixerFactory
	Speed  SpeedSource
	Logger *zap.Logger
}

// Assets names the files the controller loads
type Assets struct {
	Character string `yaml:"character"`
	Walk      string `yaml:"walk"`
	Idle      string `yaml:"idle"`
}

// Options configures the starting pose and play area
type Options struct {
	Assets Assets
	Start  mgl32.Vec3
	Scale  float32
	Bounds motion.Bounds
}

// DefaultOptions returns the standard asset set and starting pose
func DefaultOptions() Options {
	return Options{
		Assets: Assets{
			Character: "assets/girl/Girl.gltf",
			Walk:      "assets/girl/Walk.gltf",
			Idle:      "assets/girl/Idle.gltf",
		},
		Start:  mgl32.Vec3{20, 0, 230},
		Scale:  3,
		Bounds: motion.DefaultBounds(),
	}
}

// Controller owns the character's input, animation state machine and motion
type Controller struct {
	input      *input.State
	fsm        *FSM
	bindings   Bindings
	integrator *motion.Integrator
	pose       motion.Pose

	target *scene.Node
	mixer  anim.Animator

	scene  Scene
	camera Camera
	mixers MixerFactory
	speed  SpeedSource
	log    *zap.Logger

	ready bool
}

// NewController wires the controller and starts loading its assets. Update
// does nothing until the character and both clips have loaded.
func NewController(deps Deps, opts Options) *Controller {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Speed == nil {
		deps.Speed = tunable.NewSpeed()
	}
	if deps.Mixers == nil {
		deps.Mixers = func(*scene.Node) anim.Animator { return anim.NewMixer() }
	}

	bindings := make(Bindings)
	c := &Controller{
		input:      input.NewState(),
		fsm:        NewFSM(bindings),
		bindings:   bindings,
		integrator: motion.NewIntegrator(opts.Bounds),
		pose:       motion.NewPose(opts.Start),
		scene:      deps.Scene,
		camera:     deps.Camera,
		mixers:     deps.Mixers,
		speed:      deps.Speed,
		log:        deps.Logger,
	}

	c.load(deps.Loader, opts)
	return c
}

func (c *Controller) load(loader Loader, opts Options) {
	loader.Load(opts.Assets.Character).
		Then(func(m *asset.Model) {
			c.attach(m, opts.Scale)

			walk := asset.Map(loader.Load(opts.Assets.Walk), c.bindClip(Walk))
			idle := asset.Map(loader.Load(opts.Assets.Idle), c.bindClip(Idle))

			asset.Join(walk, idle).
				Then(func(struct{}) {
					c.fsm.SetState(Idle)
					c.ready = true
					c.log.Info("Character ready", zap.Int("clips", len(c.bindings)))
				}).
				Catch(func(err error) {
					c.log.Error("Character animations failed to load", zap.Error(err))
				})
		}).
		Catch(func(err error) {
			c.log.Error("Character model failed to load", zap.Error(err))
		})
}

func (c *Controller) attach(m *asset.Model, scale float32) {
	c.target = m.Node
	c.target.SetScalar(scale)
	c.sync()
	c.scene.Add(c.target)
	c.mixer = c.mixers(c.target)
	c.log.Debug("Character attached", zap.String("path", m.Path))
}

func (c *Controller) bindClip(id fsm.StateID) func(*asset.Model) (anim.Binding, error) {
	return func(m *asset.Model) (anim.Binding, error) {
		clip, err := m.LastClip()
		if err != nil {
			return nil, err
		}
		binding := c.mixer.ClipAction(clip)
		c.bindings[id] = binding
		c.log.Debug("Clip bound", zap.String("state", string(id)), zap.String("clip", clip.Name))
		return binding, nil
	}
}

// Input returns the key state to feed key events into
func (c *Controller) Input() *input.State {
	return c.input
}

// Ready reports whether the character and its clips have loaded
func (c *Controller) Ready() bool {
	return c.ready
}

// State returns the active animation state
func (c *Controller) State() (fsm.StateID, bool) {
	return c.fsm.Current()
}

// Pose returns the character's current position and heading
func (c *Controller) Pose() motion.Pose {
	return c.pose
}

// Velocity returns the character's current velocity
func (c *Controller) Velocity() mgl32.Vec3 {
	return c.integrator.Velocity
}

// Update advances the character by dt seconds
func (c *Controller) Update(dt float32) {
	if !c.ready {
		return
	}

	keys := c.input.Keys()
	c.fsm.Update(dt, keys)

	delta, moved := c.integrator.Step(dt, keys, c.speed.Value(), &c.pose)
	c.sync()
	if moved {
		c.camera.SetPosition(c.camera.Position().Add(delta))
	}

	c.mixer.Advance(dt)
}

// sync copies the pose onto the scene node
func (c *Controller) sync() {
	c.target.Position = c.pose.Position
	c.target.Rotation = c.pose.Orientation
}
