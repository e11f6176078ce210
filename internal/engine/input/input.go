// Package input buffers window-system events for one frame in a
// backend-neutral form.
package input

// EventType distinguishes input events.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventScroll
)

// Key is a keyboard key the application reacts to. Window backends map
// their native key codes onto it and drop everything else.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyX
	KeyY
	KeyZ
	Key1
	Key2
	Key3
	KeyLeft
	KeyRight
	KeyS
	KeyC
	KeyP
	KeySpace
)

// MouseButton is a mouse button.
type MouseButton uint8

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
	MouseX int
	MouseY int
	Button MouseButton
	Scroll float32
}

// Input collects the events of one frame.
type Input struct {
	events []Event
	quit   bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Reset clears the previous frame's events. Window backends call it at the
// start of polling.
func (i *Input) Reset() {
	i.events = i.events[:0]
	i.quit = false
}

// Push appends an event.
func (i *Input) Push(e Event) {
	if e.Type == EventQuit {
		i.quit = true
	}
	i.events = append(i.events, e)
}

// Events returns the events of the current frame.
func (i *Input) Events() []Event {
	return i.events
}

// QuitRequested reports whether a quit event arrived this frame.
func (i *Input) QuitRequested() bool {
	return i.quit
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(key Key) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}
