package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-stroll/internal/logger"
	"github.com/leterax/go-stroll/pkg/character"
	"github.com/leterax/go-stroll/pkg/motion"
	"github.com/leterax/go-stroll/pkg/tunable"
	"gopkg.in/yaml.v3"
)

// Config is the whole program configuration
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Logging    logger.Config    `yaml:"logging"`
	Controller ControllerConfig `yaml:"controller"`
	Assets     AssetsConfig     `yaml:"assets"`
}

// WindowConfig sizes and titles the window
type WindowConfig struct {
	Width  int    `yaml:"width" env:"WIDTH"`
	Height int    `yaml:"height" env:"HEIGHT"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync" env:"VSYNC"`
}

// ControllerConfig holds the character's speed, pose, camera and play area
type ControllerConfig struct {
	Speed        float32       `yaml:"speed" env:"SPEED"`
	Scale        float32       `yaml:"scale"`
	Start        [3]float32    `yaml:"start"`
	Camera       [3]float32    `yaml:"camera"`
	CameraTarget [3]float32    `yaml:"camera_target"`
	Bounds       motion.Bounds `yaml:"bounds"`
}

// AssetsConfig names the model files and the decode worker count
type AssetsConfig struct {
	character.Assets `yaml:",inline"`
	Workers          int `yaml:"workers" env:"ASSET_WORKERS"`
}

// Default returns the built-in configuration
func Default() *Config {
	opts := character.DefaultOptions()
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "A Walk Down Nassau Street",
			VSync:  true,
		},
		Logging: logger.Config{Level: "info", Format: "console"},
		Controller: ControllerConfig{
			Speed:        tunable.DefaultSpeed,
			Scale:        opts.Scale,
			Start:        opts.Start,
			Camera:       [3]float32{20, 10, 250},
			CameraTarget: [3]float32{0, 10, 0},
			Bounds:       opts.Bounds,
		},
		Assets: AssetsConfig{
			Assets:  opts.Assets,
			Workers: 3,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// EnvPrefix is prepended to every environment override
const EnvPrefix = "STROLL_"

// ApplyEnv overrides cfg with any STROLL_* variables that are set
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Options converts the controller section into controller options
func (c *Config) Options() character.Options {
	return character.Options{
		Assets: c.Assets.Assets,
		Start:  mgl32.Vec3(c.Controller.Start),
		Scale:  c.Controller.Scale,
		Bounds: c.Controller.Bounds,
	}
}
