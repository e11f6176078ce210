package rubiks

// NumCubes is the number of sub-cubes.
const NumCubes = 27

// ring lists the boundary cells of a layer in turning order, as
// coordinates on the two axes other than the turning one.
var ring = [8][2]int{
	{0, 0}, {1, 0}, {2, 0}, {2, 1},
	{2, 2}, {1, 2}, {0, 2}, {0, 1},
}

// CellIndex maps each cell of the cube to the sub-cube occupying it.
// Cells are numbered x + 3y + 9z with x, y, z in 0..2.
type CellIndex [NumCubes]int

// NewCellIndex returns the solved mapping where every sub-cube is in its
// home cell.
func NewCellIndex() CellIndex {
	var idx CellIndex
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// Position returns the cell number of coordinates (x, y, z).
func Position(x, y, z int) int {
	return x + 3*y + 9*z
}

// Coordinates returns the coordinates of cell pos.
func Coordinates(pos int) (x, y, z int) {
	return pos % 3, (pos / 3) % 3, pos / 9
}

// CellIdentity returns the sub-cube in cell pos, or -1 if pos is out of range.
func (c *CellIndex) CellIdentity(pos int) int {
	if pos < 0 || pos >= NumCubes {
		return -1
	}
	return c[pos]
}

// ApplyRotation commits a quarter turn of the layer named by op. The eight
// ring cells shift by two ring slots; the layer center keeps its sub-cube.
func (c *CellIndex) ApplyRotation(op ChangeOperation) {
	a := int(op.Axis)
	shift := 2
	if op.Direction == Left {
		shift = 6
	}

	old := *c
	for i := range ring {
		j := (i + shift) % 8
		*c.at(a, int(op.Row), ring[j]) = old[cell(a, int(op.Row), ring[i])]
	}
}

func (c *CellIndex) at(axis, row int, rc [2]int) *int {
	return &c[cell(axis, row, rc)]
}

// cell returns the cell of ring coordinates rc within layer row of axis.
func cell(axis, row int, rc [2]int) int {
	var p [3]int
	p[axis] = row
	p[(axis+1)%3] = rc[0]
	p[(axis+2)%3] = rc[1]
	return Position(p[0], p[1], p[2])
}

// LayerCells returns the nine cells of layer row along axis, ordered by
// z, then y, then x.
func LayerCells(axis Axis, row Row) []int {
	lo := [3]int{0, 0, 0}
	hi := [3]int{2, 2, 2}
	lo[axis], hi[axis] = int(row), int(row)

	cells := make([]int, 0, 9)
	for z := lo[2]; z <= hi[2]; z++ {
		for y := lo[1]; y <= hi[1]; y++ {
			for x := lo[0]; x <= hi[0]; x++ {
				cells = append(cells, Position(x, y, z))
			}
		}
	}
	return cells
}

// LayerIdentities returns the sub-cubes currently in layer row along axis.
func (c *CellIndex) LayerIdentities(axis Axis, row Row) []int {
	cells := LayerCells(axis, row)
	for i, pos := range cells {
		cells[i] = c[pos]
	}
	return cells
}

// IsPermutation reports whether every sub-cube occupies exactly one cell.
func (c CellIndex) IsPermutation() bool {
	var seen [NumCubes]bool
	for _, id := range c {
		if id < 0 || id >= NumCubes || seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}

// IsIdentity reports whether every sub-cube is in its home cell.
func (c CellIndex) IsIdentity() bool {
	return c == NewCellIndex()
}
