package window

import (
	"errors"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/rubiks-gl/internal/engine/input"
	"github.com/Faultbox/rubiks-gl/internal/logger"
)

var glfwLib = &lifecycle{
	name:      BackendGLFW,
	init:      glfw.Init,
	terminate: glfw.Terminate,
}

type glfwWindow struct {
	win    *glfw.Window
	resize ResizeHandler

	width, height int
	sizeChanged   bool
	closed        bool

	// in receives callback events during PollEvents.
	in *input.Input
}

func newGLFWWindow(s Settings, handler ResizeHandler) (*glfwWindow, error) {
	if err := glfwLib.acquire(); err != nil {
		return nil, err
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.StencilBits, 8)
	glfw.WindowHint(glfw.Samples, s.Samples)
	glfw.WindowHint(glfw.DoubleBuffer, glfwBool(s.DoubleBuffer))

	// OpenGL 4.1 Core Profile (max supported on macOS)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLDebugContext, glfwBool(s.Debug))

	var monitor *glfw.Monitor
	if s.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(s.Width, s.Height, s.Title, monitor, nil)
	if err != nil {
		glfwLib.release()
		return nil, &Error{Backend: BackendGLFW, Op: "create window", Err: err}
	}
	if win == nil {
		glfwLib.release()
		return nil, &Error{Backend: BackendGLFW, Op: "create window", Err: errors.New("no window returned")}
	}

	w := &glfwWindow{win: win, resize: handler}
	w.width, w.height = win.GetFramebufferSize()

	win.MakeContextCurrent()
	if s.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	win.SetFramebufferSizeCallback(w.onFramebufferSize)
	win.SetKeyCallback(w.onKey)
	win.SetCursorPosCallback(w.onCursorPos)
	win.SetMouseButtonCallback(w.onMouseButton)
	win.SetScrollCallback(w.onScroll)

	logger.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", s.Title),
		zap.Int("width", w.width),
		zap.Int("height", w.height),
		zap.Int("samples", s.Samples),
		zap.Bool("fullscreen", s.Fullscreen),
		zap.Bool("vsync", s.VSync),
	)
	return w, nil
}

func (w *glfwWindow) Activate() {
	w.win.MakeContextCurrent()
}

func (w *glfwWindow) PollEvents(in *input.Input) {
	in.Reset()
	w.in = in
	glfw.PollEvents()
	w.in = nil

	if w.win.ShouldClose() {
		in.Push(input.Event{Type: input.EventQuit})
	}
}

func (w *glfwWindow) ShouldClose() bool {
	return w.closed || w.win.ShouldClose()
}

func (w *glfwWindow) FramebufferSize() (int, int) {
	return w.width, w.height
}

func (w *glfwWindow) SizeChanged(reset bool) bool {
	changed := w.sizeChanged
	if reset {
		w.sizeChanged = false
	}
	return changed
}

func (w *glfwWindow) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *glfwWindow) SetTitle(title string) {
	w.win.SetTitle(title)
}

func (w *glfwWindow) Close() {
	if w.closed {
		return
	}
	logger.Info("closing window", zap.String("backend", BackendGLFW))
	w.closed = true
	w.win.Destroy()
	glfwLib.release()
}

func (w *glfwWindow) push(e input.Event) {
	if w.in != nil {
		w.in.Push(e)
	}
}

func (w *glfwWindow) onFramebufferSize(_ *glfw.Window, width, height int) {
	w.width, w.height = width, height
	w.sizeChanged = true
	w.resize.OnResize(width, height)
	w.push(input.Event{Type: input.EventWindowResize, Width: width, Height: height})
}

func (w *glfwWindow) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKey(key)
	if k == input.KeyUnknown {
		return
	}
	switch action {
	case glfw.Press:
		w.push(input.Event{Type: input.EventKeyDown, Key: k})
	case glfw.Release:
		w.push(input.Event{Type: input.EventKeyUp, Key: k})
	}
}

func (w *glfwWindow) onCursorPos(_ *glfw.Window, x, y float64) {
	w.push(input.Event{Type: input.EventMouseMove, MouseX: int(x), MouseY: int(y)})
}

func (w *glfwWindow) onMouseButton(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	x, y := win.GetCursorPos()
	e := input.Event{MouseX: int(x), MouseY: int(y), Button: glfwButton(button)}
	switch action {
	case glfw.Press:
		e.Type = input.EventMouseDown
	case glfw.Release:
		e.Type = input.EventMouseUp
	default:
		return
	}
	w.push(e)
}

func (w *glfwWindow) onScroll(_ *glfw.Window, _, yoff float64) {
	w.push(input.Event{Type: input.EventScroll, Scroll: float32(yoff)})
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

var glfwKeys = map[glfw.Key]input.Key{
	glfw.KeyEscape: input.KeyEscape,
	glfw.KeyX:      input.KeyX,
	glfw.KeyY:      input.KeyY,
	glfw.KeyZ:      input.KeyZ,
	glfw.Key1:      input.Key1,
	glfw.Key2:      input.Key2,
	glfw.Key3:      input.Key3,
	glfw.KeyLeft:   input.KeyLeft,
	glfw.KeyRight:  input.KeyRight,
	glfw.KeyS:      input.KeyS,
	glfw.KeyC:      input.KeyC,
	glfw.KeyP:      input.KeyP,
	glfw.KeySpace:  input.KeySpace,
}

func glfwKey(k glfw.Key) input.Key {
	return glfwKeys[k]
}

func glfwButton(b glfw.MouseButton) input.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return input.ButtonLeft
	case glfw.MouseButtonMiddle:
		return input.ButtonMiddle
	case glfw.MouseButtonRight:
		return input.ButtonRight
	}
	return input.ButtonNone
}
