package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Sphere represents a sphere surface
type Sphere struct {
	Center core.Vec3
	Radius float64
	mat    core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, mat: mat}
}

// Material returns the sphere's material
func (s *Sphere) Material() core.Material {
	return s.mat
}

// SetMaterial assigns the sphere's material
func (s *Sphere) SetMaterial(mat core.Material) {
	s.mat = mat
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Only the nearer root is considered. A ray that starts inside the
	// sphere has its nearer root behind tMin and reports no hit even though
	// the farther root is in range.
	root := (-halfB - math.Sqrt(discriminant)) / a
	if root < tMin || root > tMax {
		return nil, false
	}

	hit := &core.HitRecord{
		T:       root,
		Point:   ray.At(root),
		Surface: s,
	}

	// Outward normal points from center to hit point
	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
