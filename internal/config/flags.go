package config

import (
	"flag"
	"strings"
	"time"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging and development assertions")
	flagBackend    = flag.String("backend", "", "Window backend: glfw or sdl")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagDuration   = flag.Duration("duration", 0, "Duration of one quarter-turn animation")
	flagShuffle    = flag.Int("shuffle", -1, "Number of shuffle steps")
	flagMoves      = flag.String("moves", "", "Comma separated moves to play at start, e.g. x:low:right,y:mid:left")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Logging.Development = true
	}
	if *flagBackend != "" {
		cfg.Window.Backend = *flagBackend
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagDuration > time.Duration(0) {
		cfg.Cube.AnimationTime = *flagDuration
	}
	if *flagShuffle >= 0 {
		cfg.Cube.ShuffleSteps = *flagShuffle
	}
	if *flagMoves != "" {
		cfg.Cube.InitialMoves = splitMoves(*flagMoves)
	}
}

func splitMoves(s string) []string {
	var moves []string
	for _, m := range strings.Split(s, ",") {
		if m = strings.TrimSpace(m); m != "" {
			moves = append(moves, m)
		}
	}
	return moves
}
