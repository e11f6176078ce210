package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestOrbitCameraPositionKeepsDistance(t *testing.T) {
	c := NewOrbitCamera()
	c.Center = mgl32.Vec3{1, 2, 3}

	for _, yaw := range []float32{0, 0.7, 2, -1.3} {
		c.RotationY = yaw
		assert.InDelta(t, c.Distance, c.Position().Sub(c.Center).Len(), 1e-4)
	}
}

func TestOrbitCameraLooksAtCenter(t *testing.T) {
	c := NewOrbitCamera()
	eye := c.ViewMatrix().Mul4x1(c.Center.Vec4(1))

	// the center projects onto the view axis
	assert.InDelta(t, 0, eye[0], 1e-4)
	assert.InDelta(t, 0, eye[1], 1e-4)
	assert.InDelta(t, -c.Distance, eye[2], 1e-4)
}

func TestOrbitCameraClamps(t *testing.T) {
	c := NewOrbitCamera()

	c.HandleDrag(0, 1e6)
	assert.Equal(t, c.MaxPitch, c.RotationX)
	c.HandleDrag(0, -1e6)
	assert.Equal(t, c.MinPitch, c.RotationX)

	for range 100 {
		c.HandleZoom(1)
	}
	assert.Equal(t, c.MinDistance, c.Distance)
	for range 100 {
		c.HandleZoom(-1)
	}
	assert.Equal(t, c.MaxDistance, c.Distance)
}

func TestFitToRadius(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToRadius(2)
	assert.Greater(t, c.Distance, float32(2))
	assert.LessOrEqual(t, c.Distance, c.MaxDistance)
}
