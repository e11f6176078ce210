// Package config handles demo configuration loading and management.
package config

import (
	"fmt"
	"time"
)

// Backend names accepted by window.New.
const (
	BackendGLFW = "glfw"
	BackendSDL  = "sdl"
)

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Render  RenderConfig  `yaml:"render"`
	Cube    CubeConfig    `yaml:"cube"`
	Logging LoggingConfig `yaml:"logging"`

	// Source is the file the config was read from, empty for pure defaults.
	Source string `yaml:"-"`
}

// WindowConfig holds window and context settings.
type WindowConfig struct {
	Backend    string `yaml:"backend"` // "glfw" or "sdl"
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Samples    int    `yaml:"samples"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Debug      bool   `yaml:"debug_context"`
}

// RenderConfig holds renderer settings.
type RenderConfig struct {
	ClearColor       string  `yaml:"clear_color"`
	StrokeColor      string  `yaml:"stroke_color"`
	DepthAttenuation float32 `yaml:"depth_attenuation"`
	MinCacheElements int     `yaml:"min_cache_elements"`
	ScreenshotDir    string  `yaml:"screenshot_dir"`
}

// CubeConfig holds puzzle geometry and animation settings.
type CubeConfig struct {
	Offset        float32       `yaml:"offset"`
	Scale         float32       `yaml:"scale"`
	AnimationTime time.Duration `yaml:"animation_time"`
	ShuffleSteps  int           `yaml:"shuffle_steps"`
	InitialMoves  []string      `yaml:"initial_moves"`
	FaceColors    []string      `yaml:"face_colors"` // -x, +x, -y, +y, -z, +z
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	LogFile     string `yaml:"log_file"`
	Development bool   `yaml:"development"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Backend: BackendGLFW,
			Title:   "Rubik's Cube",
			Width:   800,
			Height:  600,
			Samples: 4,
			VSync:   true,
		},
		Render: RenderConfig{
			ClearColor:       "#1a1a26",
			StrokeColor:      "white",
			DepthAttenuation: 0.0,
			MinCacheElements: 1024,
			ScreenshotDir:    "screenshots",
		},
		Cube: CubeConfig{
			Offset:        2.05,
			Scale:         0.4,
			AnimationTime: time.Second,
			ShuffleSteps:  20,
			FaceColors:    []string{"orange", "red", "yellow", "white", "blue", "green"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch c.Window.Backend {
	case BackendGLFW, BackendSDL:
	default:
		return fmt.Errorf("window.backend: unknown backend %q", c.Window.Backend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Render.MinCacheElements <= 0 {
		return fmt.Errorf("render.min_cache_elements: must be positive, got %d", c.Render.MinCacheElements)
	}
	if c.Cube.AnimationTime <= 0 {
		return fmt.Errorf("cube.animation_time: must be positive, got %v", c.Cube.AnimationTime)
	}
	if c.Cube.ShuffleSteps < 0 {
		return fmt.Errorf("cube.shuffle_steps: must not be negative, got %d", c.Cube.ShuffleSteps)
	}
	if c.Cube.Scale <= 0 {
		return fmt.Errorf("cube.scale: must be positive, got %v", c.Cube.Scale)
	}
	if n := len(c.Cube.FaceColors); n != 0 && n != 6 {
		return fmt.Errorf("cube.face_colors: need 6 colors, got %d", n)
	}
	return nil
}
