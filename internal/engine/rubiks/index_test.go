package rubiks

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionRoundTrip(t *testing.T) {
	for pos := 0; pos < NumCubes; pos++ {
		x, y, z := Coordinates(pos)
		assert.Equal(t, pos, Position(x, y, z))
	}
	assert.Equal(t, 0, Position(0, 0, 0))
	assert.Equal(t, 26, Position(2, 2, 2))
	assert.Equal(t, 5, Position(2, 1, 0))
}

func TestCellIdentityOutOfRange(t *testing.T) {
	idx := NewCellIndex()
	assert.Equal(t, -1, idx.CellIdentity(-1))
	assert.Equal(t, -1, idx.CellIdentity(NumCubes))
	assert.Equal(t, 13, idx.CellIdentity(13))
}

func TestApplyRotationShiftsRing(t *testing.T) {
	idx := NewCellIndex()
	idx.ApplyRotation(ChangeOperation{Axis: AxisX, Row: RowLow, Direction: Right})

	// ring of the x=0 layer in (y, z): cells 0, 3, 6, 15, 24, 21, 18, 9
	ringCells := []int{0, 3, 6, 15, 24, 21, 18, 9}
	for i, pos := range ringCells {
		from := ringCells[(i+6)%8]
		assert.Equal(t, from, idx[pos], "cell %d", pos)
	}

	assert.Equal(t, 12, idx[12], "layer center stays")
	for pos := 0; pos < NumCubes; pos++ {
		if x, _, _ := Coordinates(pos); x != 0 {
			assert.Equal(t, pos, idx[pos], "cell %d outside the layer", pos)
		}
	}
}

func TestApplyRotationLeftIsOppositeShift(t *testing.T) {
	idx := NewCellIndex()
	idx.ApplyRotation(ChangeOperation{Axis: AxisZ, Row: RowHigh, Direction: Left})

	// ring of the z=2 layer in (x, y): cells 18, 19, 20, 23, 26, 25, 24, 21
	ringCells := []int{18, 19, 20, 23, 26, 25, 24, 21}
	for i, pos := range ringCells {
		assert.Equal(t, ringCells[(i+2)%8], idx[pos], "cell %d", pos)
	}
	assert.Equal(t, 22, idx[22])
}

func TestFourQuarterTurnsAreIdentity(t *testing.T) {
	for _, op := range allOperations {
		idx := NewCellIndex()
		for range 4 {
			idx.ApplyRotation(op)
		}
		assert.True(t, idx.IsIdentity(), op.String())
	}
}

func TestRotationRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	idx := NewCellIndex()
	for range 50 {
		idx.ApplyRotation(allOperations[rng.IntN(len(allOperations))])
	}

	for _, op := range allOperations {
		before := idx
		idx.ApplyRotation(op)
		idx.ApplyRotation(op.Inverse())
		assert.Equal(t, before, idx, op.String())
	}
}

func TestRandomRotationsStayPermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	idx := NewCellIndex()
	for i := range 1000 {
		idx.ApplyRotation(allOperations[rng.IntN(len(allOperations))])
		require.True(t, idx.IsPermutation(), "after %d rotations", i+1)
	}
}

func TestLayerIdentities(t *testing.T) {
	idx := NewCellIndex()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, idx.LayerIdentities(AxisZ, RowLow))
	assert.Equal(t, []int{1, 4, 7, 10, 13, 16, 19, 22, 25}, idx.LayerIdentities(AxisX, RowMid))
	assert.Equal(t, []int{6, 7, 8, 15, 16, 17, 24, 25, 26}, idx.LayerIdentities(AxisY, RowHigh))

	idx.ApplyRotation(ChangeOperation{Axis: AxisX, Row: RowLow, Direction: Right})
	assert.ElementsMatch(t, LayerCells(AxisX, RowLow), idx.LayerIdentities(AxisX, RowLow),
		"a turn keeps the layer's occupants within the layer")
}

func TestIsPermutationRejectsDuplicates(t *testing.T) {
	idx := NewCellIndex()
	idx[3] = 4
	assert.False(t, idx.IsPermutation())

	idx = NewCellIndex()
	idx[0] = NumCubes
	assert.False(t, idx.IsPermutation())
}
