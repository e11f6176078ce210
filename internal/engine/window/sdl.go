package window

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/rubiks-gl/internal/engine/input"
	"github.com/Faultbox/rubiks-gl/internal/logger"
)

var sdlLib = &lifecycle{
	name:      BackendSDL,
	init:      func() error { return sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS) },
	terminate: sdl.Quit,
}

// sdlWindow wraps SDL2 window and OpenGL context.
type sdlWindow struct {
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	resize    ResizeHandler

	width, height int
	sizeChanged   bool
	quit          bool
	closed        bool
}

func newSDLWindow(s Settings, handler ResizeHandler) (*sdlWindow, error) {
	if err := sdlLib.acquire(); err != nil {
		return nil, err
	}

	// Set OpenGL attributes BEFORE creating window
	// We want OpenGL 4.1 Core Profile (max supported on macOS)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	if s.Debug {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_DEBUG_FLAG)
	}

	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, boolAttr(s.DoubleBuffer))
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)
	if s.Samples > 0 {
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 1)
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, s.Samples)
	}

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if s.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	win, err := sdl.CreateWindow(
		s.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(s.Width),
		int32(s.Height),
		flags,
	)
	if err != nil {
		sdlLib.release()
		return nil, &Error{Backend: BackendSDL, Op: "create window", Err: err}
	}

	ctx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		sdlLib.release()
		return nil, &Error{Backend: BackendSDL, Op: "create context", Err: err}
	}

	if s.VSync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			logger.Warn("failed to enable VSync", zap.Error(err))
		}
	} else {
		sdl.GLSetSwapInterval(0)
	}

	w := &sdlWindow{sdlWindow: win, glContext: ctx, resize: handler}
	w.updateSize()

	logger.Info("window created",
		zap.String("backend", BackendSDL),
		zap.String("title", s.Title),
		zap.Int("width", w.width),
		zap.Int("height", w.height),
		zap.Int("samples", s.Samples),
		zap.Bool("fullscreen", s.Fullscreen),
		zap.Bool("vsync", s.VSync),
	)
	return w, nil
}

func (w *sdlWindow) Activate() {
	if err := w.sdlWindow.GLMakeCurrent(w.glContext); err != nil {
		logger.Warn("make context current", zap.Error(err))
	}
}

// PollEvents polls SDL events and converts them to input events.
func (w *sdlWindow) PollEvents(in *input.Input) {
	in.Reset()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.quit = true
			in.Push(input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w.updateSize()
				w.sizeChanged = true
				w.resize.OnResize(w.width, w.height)
				in.Push(input.Event{Type: input.EventWindowResize, Width: w.width, Height: w.height})
			}

		case *sdl.KeyboardEvent:
			k := sdlKey(e.Keysym.Sym)
			if k == input.KeyUnknown || e.Repeat != 0 {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				in.Push(input.Event{Type: input.EventKeyDown, Key: k})
			} else if e.Type == sdl.KEYUP {
				in.Push(input.Event{Type: input.EventKeyUp, Key: k})
			}

		case *sdl.MouseMotionEvent:
			in.Push(input.Event{
				Type:   input.EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
			})

		case *sdl.MouseButtonEvent:
			ev := input.Event{
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: sdlButton(e.Button),
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				ev.Type = input.EventMouseDown
			} else {
				ev.Type = input.EventMouseUp
			}
			in.Push(ev)

		case *sdl.MouseWheelEvent:
			in.Push(input.Event{Type: input.EventScroll, Scroll: float32(e.Y)})
		}
	}
}

func (w *sdlWindow) ShouldClose() bool {
	return w.closed || w.quit
}

func (w *sdlWindow) FramebufferSize() (int, int) {
	return w.width, w.height
}

func (w *sdlWindow) SizeChanged(reset bool) bool {
	changed := w.sizeChanged
	if reset {
		w.sizeChanged = false
	}
	return changed
}

// SwapBuffers swaps the OpenGL buffers.
func (w *sdlWindow) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// SetTitle sets the window title.
func (w *sdlWindow) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}

// Close destroys the window and releases SDL2.
func (w *sdlWindow) Close() {
	if w.closed {
		return
	}
	logger.Info("closing window", zap.String("backend", BackendSDL))
	w.closed = true

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
	sdlLib.release()
}

// updateSize reads the drawable size, which differs from the window size
// on high-DPI displays.
func (w *sdlWindow) updateSize() {
	width, height := w.sdlWindow.GLGetDrawableSize()
	w.width, w.height = int(width), int(height)
}

func boolAttr(b bool) int {
	if b {
		return 1
	}
	return 0
}

var sdlKeys = map[sdl.Keycode]input.Key{
	sdl.K_ESCAPE: input.KeyEscape,
	sdl.K_x:      input.KeyX,
	sdl.K_y:      input.KeyY,
	sdl.K_z:      input.KeyZ,
	sdl.K_1:      input.Key1,
	sdl.K_2:      input.Key2,
	sdl.K_3:      input.Key3,
	sdl.K_LEFT:   input.KeyLeft,
	sdl.K_RIGHT:  input.KeyRight,
	sdl.K_s:      input.KeyS,
	sdl.K_c:      input.KeyC,
	sdl.K_p:      input.KeyP,
	sdl.K_SPACE:  input.KeySpace,
}

func sdlKey(k sdl.Keycode) input.Key {
	return sdlKeys[k]
}

func sdlButton(b uint8) input.MouseButton {
	switch b {
	case sdl.BUTTON_LEFT:
		return input.ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return input.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return input.ButtonRight
	}
	return input.ButtonNone
}
