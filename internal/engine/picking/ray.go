// Package picking provides ray casting and object picking utilities.
package picking

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Side identifies a box face: 0 for none, then -x, +x, -y, +y, -z, +z.
type Side int

// Box faces.
const (
	SideNone Side = iota
	SideNegX
	SidePosX
	SideNegY
	SidePosY
	SideNegZ
	SidePosZ
)

// SideOf returns the face of axis (0, 1, 2) on the positive or negative end.
func SideOf(axis int, positive bool) Side {
	s := Side(2*axis + 1)
	if positive {
		s++
	}
	return s
}

// Axis returns the axis (0, 1, 2) of the face, or -1 for SideNone.
func (s Side) Axis() int {
	if s <= SideNone || s > SidePosZ {
		return -1
	}
	return int(s-1) / 2
}

// Positive reports whether the face is on the positive end of its axis.
func (s Side) Positive() bool {
	return s > SideNone && s <= SidePosZ && (s-1)%2 == 1
}

// Normal returns the outward unit normal of the face.
func (s Side) Normal() mgl32.Vec3 {
	var n mgl32.Vec3
	if a := s.Axis(); a >= 0 {
		n[a] = -1
		if s.Positive() {
			n[a] = 1
		}
	}
	return n
}

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3 // Normalized for rays from ScreenToRay
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform maps the ray through an affine matrix. The direction is not
// renormalized, so hit parameters stay comparable with the untransformed ray.
func (r Ray) Transform(m mgl32.Mat4) Ray {
	return Ray{
		Origin:    mgl32.TransformCoordinate(r.Origin, m),
		Direction: mgl32.TransformNormal(r.Direction, m),
	}
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj mgl32.Mat4) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	nearWorld := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1.0, 1.0})
	farWorld := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1.0, 1.0})

	// Perspective divide
	near := nearWorld.Vec3()
	if nearWorld[3] != 0 {
		near = near.Mul(1 / nearWorld[3])
	}
	far := farWorld.Vec3()
	if farWorld[3] != 0 {
		far = far.Mul(1 / farWorld[3])
	}

	dir := far.Sub(near)
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return Ray{Origin: near, Direction: dir}
}

// IntersectPlaneY intersects a ray with a horizontal plane at the given Y level.
// Returns the intersection point (X, Z) and whether the intersection is valid.
func (r Ray) IntersectPlaneY(planeY float32) (x, z float32, ok bool) {
	if math32.Abs(r.Direction[1]) < 0.001 {
		return 0, 0, false // Ray parallel to plane
	}

	t := (planeY - r.Origin[1]) / r.Direction[1]
	if t < 0 {
		return 0, 0, false // Intersection behind ray origin
	}

	p := r.At(t)
	return p[0], p[2], true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t), the face the ray enters through
// and whether intersection occurred. If the ray starts inside the box, the
// exit distance and exit face are returned.
func (r Ray) IntersectAABB(box AABB) (t float32, side Side, hit bool) {
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)
	var enter, exit Side

	for a := 0; a < 3; a++ {
		if r.Direction[a] == 0 {
			if r.Origin[a] < box.Min[a] || r.Origin[a] > box.Max[a] {
				return 0, SideNone, false
			}
			continue
		}

		t1 := (box.Min[a] - r.Origin[a]) / r.Direction[a]
		t2 := (box.Max[a] - r.Origin[a]) / r.Direction[a]
		near, far := SideOf(a, false), SideOf(a, true)
		if t1 > t2 {
			t1, t2 = t2, t1
			near, far = far, near
		}
		if t1 > tmin {
			tmin, enter = t1, near
		}
		if t2 < tmax {
			tmax, exit = t2, far
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, SideNone, false
	}
	if tmin < 0 {
		return tmax, exit, true
	}
	return tmin, enter, true
}

// NewAABB creates an AABB from min and max corners, handling negative scales.
func NewAABB(minX, minY, minZ, maxX, maxY, maxZ float32) AABB {
	return AABB{
		Min: mgl32.Vec3{math32.Min(minX, maxX), math32.Min(minY, maxY), math32.Min(minZ, maxZ)},
		Max: mgl32.Vec3{math32.Max(minX, maxX), math32.Max(minY, maxY), math32.Max(minZ, maxZ)},
	}
}

// UnitCube is the box spanning -1..1 on every axis.
var UnitCube = NewAABB(-1, -1, -1, 1, 1, 1)

// IntersectBox intersects the ray with local transformed into world space
// by model. Side is reported in world space: the local face normal is
// rotated by model and snapped to the dominant axis.
func (r Ray) IntersectBox(local AABB, model mgl32.Mat4) (t float32, side Side, hit bool) {
	if math32.Abs(model.Det()) < 1e-12 {
		return 0, SideNone, false
	}

	t, localSide, hit := r.Transform(model.Inv()).IntersectAABB(local)
	if !hit {
		return 0, SideNone, false
	}
	return t, dominantSide(mgl32.TransformNormal(localSide.Normal(), model)), true
}

func dominantSide(n mgl32.Vec3) Side {
	axis := 0
	for a := 1; a < 3; a++ {
		if math32.Abs(n[a]) > math32.Abs(n[axis]) {
			axis = a
		}
	}
	if n[axis] == 0 {
		return SideNone
	}
	return SideOf(axis, n[axis] > 0)
}
