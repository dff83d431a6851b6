package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"openglhelper"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/leterax/go-stroll/internal/config"
	"github.com/leterax/go-stroll/internal/logger"
	"github.com/leterax/go-stroll/pkg/anim"
	"github.com/leterax/go-stroll/pkg/asset"
	"github.com/leterax/go-stroll/pkg/character"
	"github.com/leterax/go-stroll/pkg/input"
	"github.com/leterax/go-stroll/pkg/motion"
	"github.com/leterax/go-stroll/pkg/render"
	"github.com/leterax/go-stroll/pkg/scene"
	"github.com/leterax/go-stroll/pkg/tunable"
)

// speedStep is how much = and - change the walking speed
const speedStep = 10

const controls = "W/S walk forward/back, A/D turn, =/- change speed, arrows pan camera, scroll zoom, Esc quit"

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	fmt.Println("Starting go-stroll...")

	// Parse command line flags
	configPath := flag.String("config", "configs/config.yaml", "Path to the YAML config file")
	width := flag.Int("width", 0, "Window width (overrides config)")
	height := flag.Int("height", 0, "Window height (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := config.ApplyEnv(cfg); err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}

	zl, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("stroll exited", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}

	camera := render.NewCamera(
		mgl32.Vec3(cfg.Controller.Camera),
		mgl32.Vec3(cfg.Controller.CameraTarget),
		cfg.Window.Width, cfg.Window.Height,
	)

	graph := scene.NewGraph()
	graph.Add(ground(cfg.Controller.Bounds))

	renderer, err := render.NewRenderer(window, camera, graph, zl.Named("render"))
	if err != nil {
		window.Close()
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	defer renderer.Cleanup()

	loader, err := asset.NewLoader(cfg.Assets.Workers, asset.GLTFDecoder{}, zl.Named("asset"))
	if err != nil {
		return fmt.Errorf("failed to start asset loader: %w", err)
	}
	defer loader.Close()

	speed, err := tunable.NewParam("speed", cfg.Controller.Speed, tunable.MinSpeed, tunable.MaxSpeed)
	if err != nil {
		return fmt.Errorf("invalid controller speed: %w", err)
	}

	var mixer *anim.Mixer
	controller := character.NewController(character.Deps{
		Scene:  graph,
		Camera: camera,
		Loader: loader,
		Mixers: func(*scene.Node) anim.Animator {
			mixer = anim.NewMixer()
			return mixer
		},
		Speed:  speed,
		Logger: zl.Named("character"),
	}, cfg.Options())

	keys := controller.Input()
	window.OnKey(func(key glfw.Key, action glfw.Action) {
		switch action {
		case glfw.Press:
			keys.KeyDown(input.Key(key))
		case glfw.Release:
			keys.KeyUp(input.Key(key))
			return
		default:
			return
		}

		switch key {
		case render.KeyEscape:
			window.SetShouldClose(true)
		case render.KeyEqual, render.KeyMinus:
			delta := float32(speedStep)
			if key == render.KeyMinus {
				delta = -delta
			}
			zl.Info("speed changed", zap.Float32("speed", speed.Step(delta)))
		}
	})

	zl.Info("controls", zap.String("keys", controls))

	status := ""
	renderer.Run(func(dt float32) {
		loader.Poll()
		controller.Update(dt)

		if title := statusTitle(cfg.Window.Title, mixer, speed); title != status {
			status = title
			window.SetTitle(title)
		}
	})

	return nil
}

// ground is a flat slab covering the walkable area
func ground(b motion.Bounds) *scene.Node {
	n := scene.NewNode("ground")
	n.Size = mgl32.Vec3{b.MaxX - b.MinX, 0.1, b.MaxZ - b.MinZ}
	n.Position = mgl32.Vec3{(b.MinX + b.MaxX) / 2, -0.1, (b.MinZ + b.MaxZ) / 2}
	n.Color = mgl32.Vec3{0.35, 0.45, 0.3}
	return n
}

func statusTitle(base string, mixer *anim.Mixer, speed *tunable.Param) string {
	if mixer == nil {
		return base + " (loading)"
	}
	clip, ok := mixer.Dominant()
	if !ok {
		return fmt.Sprintf("%s | speed %.0f", base, speed.Value())
	}
	return fmt.Sprintf("%s | %s | speed %.0f", base, clip.Name, speed.Value())
}
