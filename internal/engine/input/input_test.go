package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputCollectsFrameEvents(t *testing.T) {
	in := New()

	in.Push(Event{Type: EventKeyDown, Key: KeyX})
	in.Push(Event{Type: EventKeyUp, Key: KeyY})
	in.Push(Event{Type: EventScroll, Scroll: -1})

	assert.Len(t, in.Events(), 3)
	assert.True(t, in.IsKeyPressed(KeyX))
	assert.False(t, in.IsKeyPressed(KeyY), "key up is not a press")
	assert.False(t, in.QuitRequested())

	in.Push(Event{Type: EventQuit})
	assert.True(t, in.QuitRequested())

	in.Reset()
	assert.Empty(t, in.Events())
	assert.False(t, in.QuitRequested())
	assert.False(t, in.IsKeyPressed(KeyX))
}
