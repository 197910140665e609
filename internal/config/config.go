package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"colored-cube/internal/camera"
	"colored-cube/internal/logger"
	"colored-cube/internal/render"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/cube.yaml"

// Environment variables read by Path and ApplyEnv.
const (
	EnvPath  = "CUBE_CONFIG"
	EnvDebug = "CUBE_DEBUG"
)

// Window holds the window size, title and frame pacing.
type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	VSync     bool   `yaml:"vsync"`
	TargetFPS int    `yaml:"target_fps"`
}

// Camera holds projection parameters and free-look speeds.
// MoveSpeed is world units per second; RotateSpeed is degrees per second.
type Camera struct {
	FovY        float32    `yaml:"fov_y"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	MoveSpeed   float32    `yaml:"move_speed"`
	RotateSpeed float32    `yaml:"rotate_speed"`
	Start       [3]float32 `yaml:"start,flow"`
}

// Config is everything either program reads at startup. It is never written back at runtime.
type Config struct {
	Window  Window `yaml:"window"`
	Camera  Camera `yaml:"camera"`
	Shading string `yaml:"shading"`
	Axes    bool   `yaml:"axes"`
	ShowFPS bool   `yaml:"show_fps"`
	Debug   bool   `yaml:"debug"`
	LogPath string `yaml:"log_path"`
	// LogEvery throttles the free-look position log to one line per this many frames.
	LogEvery int `yaml:"log_every"`
}

// Default returns the stock configuration: an 800x600 window, 45° projection, smooth shading, debug off.
func Default() Config {
	return Config{
		Window: Window{
			Width:     800,
			Height:    600,
			Title:     "Colored Cube",
			VSync:     true,
			TargetFPS: 60,
		},
		Camera: Camera{
			FovY:        45,
			Near:        0.1,
			Far:         50,
			MoveSpeed:   2,
			RotateSpeed: 60,
			Start:       [3]float32{3, 3, 3},
		},
		Shading:  render.Smooth.String(),
		LogPath:  logger.DefaultPath,
		LogEvery: 30,
	}
}

// Path returns the config path from CUBE_CONFIG, or DefaultPath when unset.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the YAML file at path over Default(). A missing file is not an error.
// If the file cannot be parsed or fails Validate, Default() is returned together with the error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from the environment. CUBE_DEBUG accepts any strconv.ParseBool value.
func (c *Config) ApplyEnv() error {
	v, ok := os.LookupEnv(EnvDebug)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", EnvDebug, err)
	}
	c.Debug = b
	return nil
}

// Validate rejects values that would produce a degenerate window or projection.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		errs = append(errs, fmt.Errorf("fov_y %v must be in (0, 180)", c.Camera.FovY))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("clip planes near=%v far=%v must satisfy 0 < near < far", c.Camera.Near, c.Camera.Far))
	}
	if _, err := render.ParseShading(c.Shading); err != nil {
		errs = append(errs, err)
	}
	if c.LogEvery < 0 {
		errs = append(errs, fmt.Errorf("log_every %d must not be negative", c.LogEvery))
	}
	return errors.Join(errs...)
}

// Perspective returns the projection parameters.
func (c Config) Perspective() camera.Perspective {
	return camera.Perspective{FovY: c.Camera.FovY, Near: c.Camera.Near, Far: c.Camera.Far}
}

// Speeds returns the free-look movement and rotation speeds.
func (c Config) Speeds() camera.Speeds {
	return camera.Speeds{Move: c.Camera.MoveSpeed, Rotate: c.Camera.RotateSpeed}
}

// StartPosition returns where both cameras are placed.
func (c Config) StartPosition() mgl32.Vec3 {
	return mgl32.Vec3(c.Camera.Start)
}

// ShadingMode returns the parsed shading mode. Load already validated it, so errors fall back to Smooth.
func (c Config) ShadingMode() render.Shading {
	s, _ := render.ParseShading(c.Shading)
	return s
}
