package renderer

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Camera generates viewing rays from a look-at frame. The viewport is an
// image plane fixed at unit distance along -w from the eye; it is recomputed
// whenever the frame, field of view, or aspect ratio change so the camera
// never exposes a viewport inconsistent with its current parameters.
type Camera struct {
	eye, target, up core.Vec3
	u, v, w         core.Vec3 // Orthonormal basis, w points from target to eye
	fovy            float64   // Vertical field of view in degrees
	aspect          float64
	horizontal      core.Vec3
	vertical        core.Vec3
	lowerLeftCorner core.Vec3
}

// NewCamera creates a camera from look-at parameters, a vertical field of
// view in degrees, and a viewport aspect ratio
func NewCamera(eye, target, up core.Vec3, fovy, aspect float64) *Camera {
	c := &Camera{fovy: fovy, aspect: aspect}
	c.LookAt(eye, target, up, true)
	return c
}

// LookAt sets up the camera frame from the eye, target, and up vectors.
// The up vector need not be unit length or orthogonal to the view direction;
// the cross products enforce orthonormality. It must not be parallel to the
// view direction.
func (c *Camera) LookAt(eye, target, up core.Vec3, updateViewport bool) {
	c.eye, c.target, c.up = eye, target, up
	c.w = eye.Subtract(target).Normalize()
	c.u = up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)
	if updateViewport {
		c.UpdateViewport()
	}
}

// SetFovy sets the vertical field of view in degrees
func (c *Camera) SetFovy(fovy float64, updateViewport bool) {
	c.fovy = fovy
	if updateViewport {
		c.UpdateViewport()
	}
}

// SetAspect sets the viewport aspect ratio
func (c *Camera) SetAspect(aspect float64, updateViewport bool) {
	c.aspect = aspect
	if updateViewport {
		c.UpdateViewport()
	}
}

// Eye returns the eye position
func (c *Camera) Eye() core.Vec3 { return c.eye }

// Target returns the look-at target position
func (c *Camera) Target() core.Vec3 { return c.target }

// Up returns the up vector the frame was built from
func (c *Camera) Up() core.Vec3 { return c.up }

// Fovy returns the vertical field of view in degrees
func (c *Camera) Fovy() float64 { return c.fovy }

// Aspect returns the viewport aspect ratio
func (c *Camera) Aspect() float64 { return c.aspect }

// Viewport returns the current viewport vectors
func (c *Camera) Viewport() (horizontal, vertical, lowerLeftCorner core.Vec3) {
	return c.horizontal, c.vertical, c.lowerLeftCorner
}

// UpdateViewport recomputes the viewport vectors from the current frame,
// field of view, and aspect ratio
func (c *Camera) UpdateViewport() {
	halfHeight := math.Tan(c.fovy * math.Pi / 360)
	c.vertical = c.v.Multiply(2 * halfHeight)
	c.horizontal = c.u.Multiply(c.aspect * 2 * halfHeight)
	c.lowerLeftCorner = c.eye.
		Subtract(c.w).
		Subtract(c.horizontal.Add(c.vertical).Multiply(0.5))
}

// GetRay generates a ray through normalized viewport coordinates
// (s, t) in [0, 1], measured from the lower left corner
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.eye)

	return core.NewRay(c.eye, direction)
}
