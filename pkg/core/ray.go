package core

// Ray represents a ray with an origin and a unit-length direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray. The direction is normalized at construction and
// never mutated afterward, so t values measure world-space distance.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// HitRecord contains information about a ray-surface intersection
type HitRecord struct {
	T         float64 // Ray parameter at the hit point
	Point     Vec3    // Hit point in world space
	Normal    Vec3    // Surface normal, always opposing the incident ray
	FrontFace bool    // Whether the geometric normal faced the ray origin
	Surface   Surface // The surface that was hit
}

// SetFaceNormal sets the hit record normal so it always points against the
// incident ray, and records whether the geometric normal was flipped.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
