// Package control maps user input onto puzzle operations and draws the
// heads-up display. It holds no GL state and can be driven from tests.
package control

import (
	"go.uber.org/zap"

	"github.com/Faultbox/rubiks-gl/internal/engine/input"
	"github.com/Faultbox/rubiks-gl/internal/engine/rubiks"
	"github.com/Faultbox/rubiks-gl/internal/logger"
)

// Action is a request the controller cannot serve itself.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionScreenshot
)

// Controller turns key presses and picks into cube operations. It keeps
// the currently selected layer.
type Controller struct {
	cube         *rubiks.Cube
	axis         rubiks.Axis
	row          rubiks.Row
	shuffleSteps int
	log          *zap.Logger
}

// NewController returns a controller for cube with the x/low layer selected.
func NewController(cube *rubiks.Cube, shuffleSteps int) *Controller {
	return &Controller{
		cube:         cube,
		shuffleSteps: shuffleSteps,
		log:          logger.Named("control"),
	}
}

// Selection returns the selected layer.
func (c *Controller) Selection() (rubiks.Axis, rubiks.Row) {
	return c.axis, c.row
}

// SetShuffleSteps sets how many turns S queues.
func (c *Controller) SetShuffleSteps(n int) {
	c.shuffleSteps = n
}

// HandleKey applies a key press.
func (c *Controller) HandleKey(k input.Key) Action {
	switch k {
	case input.KeyEscape:
		return ActionQuit
	case input.KeyP:
		return ActionScreenshot

	case input.KeyX:
		c.axis = rubiks.AxisX
	case input.KeyY:
		c.axis = rubiks.AxisY
	case input.KeyZ:
		c.axis = rubiks.AxisZ
	case input.Key1:
		c.row = rubiks.RowLow
	case input.Key2:
		c.row = rubiks.RowMid
	case input.Key3:
		c.row = rubiks.RowHigh

	case input.KeyLeft:
		c.turn(rubiks.Left)
	case input.KeyRight:
		c.turn(rubiks.Right)

	case input.KeyS:
		if err := c.cube.Shuffle(c.shuffleSteps); err != nil {
			c.log.Error("shuffle failed", zap.Error(err))
		}
	case input.KeyC:
		c.cube.ClearPending()
	}
	return ActionNone
}

// SelectHit selects the layer facing out through the cube's current hit,
// so that the clicked face is the one that turns. It reports whether
// there was a hit.
func (c *Controller) SelectHit() bool {
	data := c.cube.Data()
	axis := data.SideHit.Axis()
	pos := c.cube.CellOf(data.CubeHit)
	if axis < 0 || pos < 0 {
		return false
	}

	x, y, z := rubiks.Coordinates(pos)
	c.axis = rubiks.Axis(axis)
	c.row = rubiks.Row([3]int{x, y, z}[axis])
	c.log.Debug("layer selected",
		zap.Stringer("axis", c.axis),
		zap.Stringer("row", c.row),
	)
	return true
}

func (c *Controller) turn(d rubiks.Direction) {
	op := rubiks.ChangeOperation{Axis: c.axis, Row: c.row, Direction: d}
	c.cube.Change(op)
	c.log.Debug("turn queued", zap.Stringer("op", op), zap.Int("pending", c.cube.PendingCount()))
}
