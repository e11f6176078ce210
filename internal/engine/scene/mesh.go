package scene

import "github.com/Faultbox/rubiks-gl/internal/engine/rubiks"

// floatsPerVertex is position (3), normal (3) and face index (1).
const floatsPerVertex = 7

// faceCorners lists each face's corners counter-clockwise seen from
// outside, ordered -x, +x, -y, +y, -z, +z.
var faceCorners = [6][4][3]float32{
	{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}},
	{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},
	{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
	{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},
	{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}},
	{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
}

var faceNormals = [6][3]float32{
	{-1, 0, 0}, {1, 0, 0},
	{0, -1, 0}, {0, 1, 0},
	{0, 0, -1}, {0, 0, 1},
}

// cubeMesh returns the interleaved triangle list of a cube spanning -1..1.
func cubeMesh() []float32 {
	data := make([]float32, 0, 6*6*floatsPerVertex)
	for f, corners := range faceCorners {
		for _, c := range [...]int{0, 1, 2, 0, 2, 3} {
			p := corners[c]
			n := faceNormals[f]
			data = append(data, p[0], p[1], p[2], n[0], n[1], n[2], float32(f))
		}
	}
	return data
}

// stickerMask returns the faces of sub-cube id that face outward in its
// home cell, as bits in -x, +x, -y, +y, -z, +z order.
func stickerMask(id int) int32 {
	x, y, z := rubiks.Coordinates(id)
	var mask int32
	for axis, c := range [3]int{x, y, z} {
		if c == 0 {
			mask |= 1 << (2 * axis)
		}
		if c == 2 {
			mask |= 1 << (2*axis + 1)
		}
	}
	return mask
}
