// Package rubiks models an animated 3x3x3 rotation puzzle: which sub-cube
// sits in which cell, how layers turn, and the per-cube model matrices a
// renderer needs to draw the puzzle mid-turn.
package rubiks

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOperation is returned when an operation string cannot be parsed.
var ErrInvalidOperation = errors.New("invalid change operation")

// Axis is a rotation axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Row selects one of the three layers along an axis.
type Row int

const (
	RowLow Row = iota
	RowMid
	RowHigh
)

// Direction is the sense of a quarter turn. Left turns by -90 degrees
// about the axis, right by +90.
type Direction int

const (
	Left Direction = iota
	Right
)

var (
	axisNames      = [...]string{"x", "y", "z"}
	rowNames       = [...]string{"low", "mid", "high"}
	directionNames = [...]string{"left", "right"}
)

func (a Axis) String() string {
	if a < AxisX || a > AxisZ {
		return fmt.Sprintf("axis(%d)", int(a))
	}
	return axisNames[a]
}

func (r Row) String() string {
	if r < RowLow || r > RowHigh {
		return fmt.Sprintf("row(%d)", int(r))
	}
	return rowNames[r]
}

func (d Direction) String() string {
	if d != Left && d != Right {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == Left {
		return Right
	}
	return Left
}

// sign is -1 for left and +1 for right.
func (d Direction) sign() float32 {
	if d == Left {
		return -1
	}
	return 1
}

// ChangeOperation is a quarter turn of one layer.
type ChangeOperation struct {
	Axis      Axis
	Row       Row
	Direction Direction
}

// Inverse returns the operation that undoes op.
func (op ChangeOperation) Inverse() ChangeOperation {
	return ChangeOperation{Axis: op.Axis, Row: op.Row, Direction: op.Direction.Opposite()}
}

// Valid reports whether every field is in range.
func (op ChangeOperation) Valid() bool {
	return op.Axis >= AxisX && op.Axis <= AxisZ &&
		op.Row >= RowLow && op.Row <= RowHigh &&
		(op.Direction == Left || op.Direction == Right)
}

// String formats op as "axis:row:direction", e.g. "x:low:right".
func (op ChangeOperation) String() string {
	return op.Axis.String() + ":" + op.Row.String() + ":" + op.Direction.String()
}

// ParseOperation parses the String form. Names are case-insensitive.
func ParseOperation(s string) (ChangeOperation, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), ":")
	if len(parts) != 3 {
		return ChangeOperation{}, fmt.Errorf("%w: %q", ErrInvalidOperation, s)
	}

	axis, ok := lookup(axisNames[:], parts[0])
	if !ok {
		return ChangeOperation{}, fmt.Errorf("%w: unknown axis %q", ErrInvalidOperation, parts[0])
	}
	row, ok := lookup(rowNames[:], parts[1])
	if !ok {
		return ChangeOperation{}, fmt.Errorf("%w: unknown row %q", ErrInvalidOperation, parts[1])
	}
	dir, ok := lookup(directionNames[:], parts[2])
	if !ok {
		return ChangeOperation{}, fmt.Errorf("%w: unknown direction %q", ErrInvalidOperation, parts[2])
	}

	return ChangeOperation{Axis: Axis(axis), Row: Row(row), Direction: Direction(dir)}, nil
}

// ParseOperations parses every entry of moves. Blank entries are skipped.
func ParseOperations(moves []string) ([]ChangeOperation, error) {
	ops := make([]ChangeOperation, 0, len(moves))
	for _, m := range moves {
		if strings.TrimSpace(m) == "" {
			continue
		}
		op, err := ParseOperation(m)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func lookup(names []string, s string) (int, bool) {
	for i, n := range names {
		if n == s {
			return i, true
		}
	}
	return 0, false
}
