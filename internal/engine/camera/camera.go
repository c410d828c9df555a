// Package camera provides the fixed look-at camera the viewer renders with.
package camera

import (
	"github.com/Faultbox/cowviewer/pkg/math"
)

// Fixed is a stationary camera looking from Eye toward Target.
type Fixed struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3

	// Vertical field of view in degrees
	FovY float32
	Near float32
	Far  float32
}

// NewFixed creates the default camera: 30 units back on +Z, looking at the
// origin with a 45° vertical field of view.
func NewFixed() Fixed {
	return Fixed{
		Eye:    math.Vec3{X: 0, Y: 0, Z: 30},
		Target: math.Vec3{},
		Up:     math.Vec3{X: 0, Y: 1, Z: 0},
		FovY:   45.0,
		Near:   0.1,
		Far:    1000.0,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c Fixed) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection for a viewport of the
// given size. A degenerate viewport falls back to a square aspect.
func (c Fixed) ProjectionMatrix(width, height int) math.Mat4 {
	return math.Perspective(math.Radians(c.FovY), Aspect(width, height), c.Near, c.Far)
}

// ViewProjection returns Projection × View.
func (c Fixed) ViewProjection(width, height int) math.Mat4 {
	return c.ProjectionMatrix(width, height).Mul(c.ViewMatrix())
}

// Aspect returns width/height, or 1 when either side is not positive.
func Aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
