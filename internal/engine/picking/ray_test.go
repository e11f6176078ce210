package picking

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectAABBReportsEntryFace(t *testing.T) {
	tests := []struct {
		name  string
		ray   Ray
		wantT float32
		want  Side
	}{
		{"from +z", Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}, 4, SidePosZ},
		{"from -z", Ray{Origin: mgl32.Vec3{0, 0, -5}, Direction: mgl32.Vec3{0, 0, 1}}, 4, SideNegZ},
		{"from +x", Ray{Origin: mgl32.Vec3{3, 0.5, 0}, Direction: mgl32.Vec3{-1, 0, 0}}, 2, SidePosX},
		{"from -y", Ray{Origin: mgl32.Vec3{0.2, -10, 0.2}, Direction: mgl32.Vec3{0, 1, 0}}, 9, SideNegY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, side, hit := tt.ray.IntersectAABB(UnitCube)
			require.True(t, hit)
			assert.InDelta(t, tt.wantT, dist, 1e-5)
			assert.Equal(t, tt.want, side)
		})
	}
}

func TestIntersectAABBMiss(t *testing.T) {
	behind := Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, 1}}
	_, _, hit := behind.IntersectAABB(UnitCube)
	assert.False(t, hit, "box behind the ray")

	parallel := Ray{Origin: mgl32.Vec3{0, 2, 5}, Direction: mgl32.Vec3{0, 0, -1}}
	_, _, hit = parallel.IntersectAABB(UnitCube)
	assert.False(t, hit, "ray passes above the box")
}

func TestIntersectAABBFromInside(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{1, 0, 0}}
	dist, side, hit := r.IntersectAABB(UnitCube)
	require.True(t, hit)
	assert.InDelta(t, 1, dist, 1e-5)
	assert.Equal(t, SidePosX, side)
}

func TestIntersectBoxUsesWorldSide(t *testing.T) {
	// Quarter turn about y maps local +x to world -z.
	model := mgl32.Translate3D(0, 0, -3).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(90)))
	r := Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}

	dist, side, hit := r.IntersectBox(UnitCube, model)
	require.True(t, hit)
	assert.InDelta(t, 7, dist, 1e-4)
	assert.Equal(t, SidePosZ, side)
}

func TestIntersectBoxScaledKeepsWorldDistance(t *testing.T) {
	model := mgl32.Scale3D(0.5, 0.5, 0.5)
	r := Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}

	dist, _, hit := r.IntersectBox(UnitCube, model)
	require.True(t, hit)
	assert.InDelta(t, 4.5, dist, 1e-5)
}

func TestScreenToRayCenterLooksForward(t *testing.T) {
	proj := mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	inv := proj.Mul4(view).Inv()

	r := ScreenToRay(400, 300, 800, 600, inv)
	assert.InDelta(t, 0, r.Direction[0], 1e-4)
	assert.InDelta(t, 0, r.Direction[1], 1e-4)
	assert.InDelta(t, -1, r.Direction[2], 1e-4)

	_, side, hit := r.IntersectAABB(UnitCube)
	require.True(t, hit)
	assert.Equal(t, SidePosZ, side)
}

func TestIntersectPlaneY(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{1, 10, 2}, Direction: mgl32.Vec3{0, -1, 0}}
	x, z, ok := r.IntersectPlaneY(0)
	require.True(t, ok)
	assert.Equal(t, float32(1), x)
	assert.Equal(t, float32(2), z)

	_, _, ok = Ray{Direction: mgl32.Vec3{1, 0, 0}}.IntersectPlaneY(0)
	assert.False(t, ok)
}

func TestSideHelpers(t *testing.T) {
	assert.Equal(t, SideNegX, SideOf(0, false))
	assert.Equal(t, SidePosZ, SideOf(2, true))
	assert.Equal(t, 1, SideNegY.Axis())
	assert.Equal(t, -1, SideNone.Axis())
	assert.True(t, SidePosY.Positive())
	assert.False(t, SideNegZ.Positive())
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, SideNegZ.Normal())
}
