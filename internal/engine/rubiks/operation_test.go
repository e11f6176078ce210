package rubiks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationString(t *testing.T) {
	op := ChangeOperation{Axis: AxisX, Row: RowLow, Direction: Right}
	assert.Equal(t, "x:low:right", op.String())
	assert.Equal(t, "x:low:left", op.Inverse().String())
	assert.Equal(t, op, op.Inverse().Inverse())
}

func TestParseOperation(t *testing.T) {
	for _, want := range allOperations {
		got, err := ParseOperation(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := ParseOperation("  Z:High:LEFT ")
	require.NoError(t, err)
	assert.Equal(t, ChangeOperation{Axis: AxisZ, Row: RowHigh, Direction: Left}, got)
}

func TestParseOperationErrors(t *testing.T) {
	for _, s := range []string{"", "x:low", "w:low:left", "x:top:left", "x:low:up", "x:low:left:extra"} {
		_, err := ParseOperation(s)
		assert.ErrorIs(t, err, ErrInvalidOperation, s)
	}
}

func TestParseOperations(t *testing.T) {
	ops, err := ParseOperations([]string{"x:low:right", "", " y:mid:left"})
	require.NoError(t, err)
	assert.Equal(t, []ChangeOperation{
		{Axis: AxisX, Row: RowLow, Direction: Right},
		{Axis: AxisY, Row: RowMid, Direction: Left},
	}, ops)

	_, err = ParseOperations([]string{"x:low:right", "bogus"})
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestOperationValid(t *testing.T) {
	assert.True(t, ChangeOperation{Axis: AxisZ, Row: RowHigh, Direction: Right}.Valid())
	assert.False(t, ChangeOperation{Axis: 3}.Valid())
	assert.False(t, ChangeOperation{Row: -1}.Valid())
	assert.False(t, ChangeOperation{Direction: 2}.Valid())
}
