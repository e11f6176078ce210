// Package app implements the main loop of the cube demo.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/rubiks-gl/internal/app/control"
	"github.com/Faultbox/rubiks-gl/internal/config"
	"github.com/Faultbox/rubiks-gl/internal/engine/camera"
	"github.com/Faultbox/rubiks-gl/internal/engine/debug"
	"github.com/Faultbox/rubiks-gl/internal/engine/input"
	"github.com/Faultbox/rubiks-gl/internal/engine/picking"
	"github.com/Faultbox/rubiks-gl/internal/engine/polygon"
	"github.com/Faultbox/rubiks-gl/internal/engine/polygon/glpolygon"
	"github.com/Faultbox/rubiks-gl/internal/engine/renderer"
	"github.com/Faultbox/rubiks-gl/internal/engine/rubiks"
	"github.com/Faultbox/rubiks-gl/internal/engine/scene"
	"github.com/Faultbox/rubiks-gl/internal/engine/window"
	"github.com/Faultbox/rubiks-gl/internal/logger"
)

// clickSlop is how far in pixels the cursor may travel between press and
// release for the press to count as a click rather than a drag.
const clickSlop = 4

// App is the running demo.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window   window.Window
	renderer *renderer.Renderer
	input    *input.Input

	poly        *polygon.Renderer
	polyProgram *glpolygon.Program
	polyBackend *glpolygon.Backend
	cubes       *scene.CubeRenderer
	hud         *control.HUD

	cube       *rubiks.Cube
	controller *control.Controller
	camera     *camera.OrbitCamera
	shots      *debug.ScreenshotCapture
	watcher    *config.Watcher

	dragging     bool
	pressX       int
	pressY       int
	lastX, lastY int
	wasSolved    bool
}

// New opens the window and builds every GL resource. The returned App must
// be closed.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:   cfg,
		log:   logger.Named("app"),
		input: input.New(),
	}
	a.log.Info("initializing",
		zap.String("backend", cfg.Window.Backend),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	faceColors, err := parseFaceColors(cfg.Cube.FaceColors)
	if err != nil {
		return nil, err
	}
	clearColor, err := polygon.ParseColor(cfg.Render.ClearColor)
	if err != nil {
		return nil, fmt.Errorf("render.clear_color: %w", err)
	}
	style, err := parseStyle(cfg.Render)
	if err != nil {
		return nil, err
	}
	moves, err := rubiks.ParseOperations(cfg.Cube.InitialMoves)
	if err != nil {
		return nil, fmt.Errorf("cube.initial_moves: %w", err)
	}

	// Window first, the GL context must exist before anything else.
	a.window, err = window.New(cfg.Window.Backend, window.Settings{
		Title:        cfg.Window.Title,
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		Samples:      cfg.Window.Samples,
		Fullscreen:   cfg.Window.Fullscreen,
		VSync:        cfg.Window.VSync,
		DoubleBuffer: true,
		Debug:        cfg.Window.Debug,
	}, window.ResizeFunc(a.onResize))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := a.window.FramebufferSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:       width,
		Height:      height,
		ClearColor:  clearColor,
		Multisample: cfg.Window.Samples > 0,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.poly, a.polyProgram, a.polyBackend = glpolygon.NewRenderer(cfg.Render.MinCacheElements)
	if err := a.poly.Init(); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to init polygon renderer: %w", err)
	}
	a.poly.SetStyle(style)
	a.hud = control.NewHUD(a.poly)

	a.cubes, err = scene.NewCubeRenderer(faceColors)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create cube renderer: %w", err)
	}

	a.cube = rubiks.New(cfg.Cube.Offset, cfg.Cube.Scale, rubiks.WithAnimationTime(cfg.Cube.AnimationTime))
	for _, op := range moves {
		a.cube.Change(op)
	}
	a.controller = control.NewController(a.cube, cfg.Cube.ShuffleSteps)
	a.wasSolved = true

	a.camera = camera.NewOrbitCamera()
	a.camera.FitToRadius(cubeRadius(cfg.Cube))

	a.shots = debug.NewScreenshotCapture(cfg.Render.ScreenshotDir, "cube")

	if cfg.Source != "" {
		a.watcher, err = config.Watch(cfg.Source)
		if err != nil {
			// Hot reload is a convenience; run without it.
			a.log.Warn("config watch unavailable", zap.String("path", cfg.Source), zap.Error(err))
		}
	}

	a.log.Info("initialized", zap.Int("queued_moves", len(moves)))
	return a, nil
}

// Run runs the main loop until the window is closed or Escape is pressed.
func (a *App) Run() error {
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting main loop")

	for !a.window.ShouldClose() {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		a.window.PollEvents(a.input)
		if a.input.QuitRequested() {
			break
		}
		quit, screenshot := a.handleEvents()
		if quit {
			break
		}

		a.applyConfigChanges()
		a.cube.Update()
		a.reportSolved()

		a.render()
		if screenshot {
			a.captureScreenshot()
		}
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			stats := a.poly.Stats()
			a.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
				zap.Int("hud_draws", stats.DrawCalls),
				zap.Int("hud_vertices", stats.Vertices),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases every resource. It is safe on a partially built App.
func (a *App) Close() {
	a.log.Info("closing")

	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("config watcher close", zap.Error(err))
		}
	}
	if a.cubes != nil {
		a.cubes.Close()
	}
	if a.poly != nil {
		a.poly.Close()
	}
	if a.polyBackend != nil {
		a.polyBackend.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) onResize(width, height int) {
	if a.renderer != nil {
		a.renderer.Resize(width, height)
	}
}

// handleEvents dispatches this frame's events.
func (a *App) handleEvents() (quit, screenshot bool) {
	for _, e := range a.input.Events() {
		switch e.Type {
		case input.EventKeyDown:
			switch a.controller.HandleKey(e.Key) {
			case control.ActionQuit:
				quit = true
			case control.ActionScreenshot:
				screenshot = true
			}

		case input.EventMouseDown:
			if e.Button == input.ButtonLeft {
				a.dragging = true
				a.pressX, a.pressY = e.MouseX, e.MouseY
				a.lastX, a.lastY = e.MouseX, e.MouseY
			}

		case input.EventMouseUp:
			if e.Button == input.ButtonLeft && a.dragging {
				a.dragging = false
				if abs(e.MouseX-a.pressX) <= clickSlop && abs(e.MouseY-a.pressY) <= clickSlop {
					a.pick(e.MouseX, e.MouseY)
					a.controller.SelectHit()
				}
			}

		case input.EventMouseMove:
			if a.dragging {
				a.camera.HandleDrag(float32(e.MouseX-a.lastX), float32(e.MouseY-a.lastY))
				a.lastX, a.lastY = e.MouseX, e.MouseY
			} else {
				a.pick(e.MouseX, e.MouseY)
			}

		case input.EventScroll:
			a.camera.HandleZoom(e.Scroll)
		}
	}
	return quit, screenshot
}

// pick updates the cube's hover hit under the cursor.
func (a *App) pick(x, y int) {
	width, height := a.renderer.Size()
	inv := a.camera.ViewProjection(a.renderer.Aspect()).Inv()
	ray := picking.ScreenToRay(float32(x), float32(y), float32(width), float32(height), inv)
	a.cube.Pick(ray)
}

func (a *App) render() {
	width, height := a.renderer.Size()

	a.renderer.Begin()
	a.cubes.Render(a.cube.Data(), a.camera.ViewProjection(a.renderer.Aspect()))

	a.renderer.BeginOverlay()
	a.polyProgram.SetProjection(mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1))
	a.poly.ResetStats()

	axis, row := a.controller.Selection()
	if !a.hud.Draw(control.HUDState{
		Width:    width,
		Height:   height,
		Progress: a.cube.Progress(),
		Pending:  a.cube.PendingCount(),
		Axis:     axis,
		Row:      row,
		Solved:   a.cube.Solved() && !a.cube.AnimationPending(),
	}) {
		a.log.Debug("hud draw incomplete")
	}
	a.renderer.End()
}

func (a *App) captureScreenshot() {
	pixels, width, height := a.renderer.ReadPixels()
	path, err := a.shots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// reportSolved logs and retitles the window when the cube comes to rest
// solved after having been scrambled.
func (a *App) reportSolved() {
	if a.cube.AnimationPending() {
		return
	}
	solved := a.cube.Solved()
	if solved == a.wasSolved {
		return
	}
	a.wasSolved = solved

	title := a.cfg.Window.Title
	if solved {
		title += " - solved"
		a.log.Info("cube solved")
	}
	a.window.SetTitle(title)
}

// applyConfigChanges applies reloaded settings that can change at runtime.
// Window and logging settings need a restart.
func (a *App) applyConfigChanges() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case cfg := <-a.watcher.Changes():
			a.applyConfig(cfg)
		default:
			return
		}
	}
}

func (a *App) applyConfig(cfg *config.Config) {
	a.cube.SetAnimationTime(cfg.Cube.AnimationTime)
	a.controller.SetShuffleSteps(cfg.Cube.ShuffleSteps)

	if cfg.Cube.Offset != a.cube.Offset() || cfg.Cube.Scale != a.cube.Scale() {
		a.cube.SetGeometry(cfg.Cube.Offset, cfg.Cube.Scale)
		a.camera.FitToRadius(cubeRadius(cfg.Cube))
	}

	if colors, err := parseFaceColors(cfg.Cube.FaceColors); err != nil {
		a.log.Warn("reload: face colors ignored", zap.Error(err))
	} else {
		a.cubes.SetFaceColors(colors)
	}
	if c, err := polygon.ParseColor(cfg.Render.ClearColor); err != nil {
		a.log.Warn("reload: clear color ignored", zap.Error(err))
	} else {
		a.renderer.SetClearColor(c)
	}
	if style, err := parseStyle(cfg.Render); err != nil {
		a.log.Warn("reload: style ignored", zap.Error(err))
	} else if !a.poly.SetStyle(style) {
		a.log.Warn("reload: style rejected")
	}
	a.shots.SetOutputDir(cfg.Render.ScreenshotDir)

	cfg.Window.Title = a.cfg.Window.Title
	a.cfg = cfg
	a.log.Info("config reloaded")
}
