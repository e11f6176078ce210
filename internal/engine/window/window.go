// Package window creates the OpenGL 4.1 core context the renderer draws
// into, on top of either GLFW or SDL2.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/rubiks-gl/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names accepted by New.
const (
	BackendGLFW = "glfw"
	BackendSDL  = "sdl"
)

// Settings holds window and context configuration.
type Settings struct {
	Title        string
	Width        int
	Height       int
	Samples      int
	Fullscreen   bool
	VSync        bool
	DoubleBuffer bool
	Debug        bool // request a debug context
}

// Window is an open window with a current GL context.
type Window interface {
	// Activate makes the window's context current on the calling thread.
	Activate()
	// PollEvents resets in and fills it with the events since the last poll.
	PollEvents(in *input.Input)
	ShouldClose() bool
	FramebufferSize() (width, height int)
	// SizeChanged reports whether the framebuffer was resized since the
	// flag was last reset.
	SizeChanged(reset bool) bool
	SwapBuffers()
	SetTitle(title string)
	Close()
}

// ResizeHandler is notified with the new framebuffer size.
type ResizeHandler interface {
	OnResize(width, height int)
}

// ResizeFunc adapts a function to ResizeHandler.
type ResizeFunc func(width, height int)

func (f ResizeFunc) OnResize(width, height int) { f(width, height) }

// Error is a window-system failure.
type Error struct {
	Backend string
	Op      string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Backend, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New opens a window on the named backend. handler may be nil.
func New(backend string, s Settings, handler ResizeHandler) (Window, error) {
	if handler == nil {
		handler = ResizeFunc(func(int, int) {})
	}

	var (
		w   Window
		err error
	)
	switch backend {
	case BackendGLFW:
		w, err = newGLFWWindow(s, handler)
	case BackendSDL:
		w, err = newSDLWindow(s, handler)
	default:
		err = &Error{Backend: backend, Op: "select backend", Err: fmt.Errorf("unknown backend %q", backend)}
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// lifecycle initializes a window-system library once and terminates it
// when the last window using it closes. It is only touched from the main
// thread.
type lifecycle struct {
	name      string
	init      func() error
	terminate func()

	initialized bool
	refs        int
}

func (l *lifecycle) acquire() error {
	if !l.initialized {
		if err := l.init(); err != nil {
			return &Error{Backend: l.name, Op: "init", Err: err}
		}
		l.initialized = true
	}
	l.refs++
	return nil
}

func (l *lifecycle) release() {
	if l.refs == 0 {
		return
	}
	l.refs--
	if l.refs == 0 && l.initialized {
		l.terminate()
		l.initialized = false
	}
}
