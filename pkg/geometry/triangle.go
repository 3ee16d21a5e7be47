package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices supplied
// counter-clockwise with respect to the intended front face
type Triangle struct {
	p0, p1, p2 core.Vec3
	normal     core.Vec3 // Cached unit normal, recomputed when vertices change
	mat        core.Material
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(p0, p1, p2 core.Vec3, mat core.Material) *Triangle {
	t := &Triangle{mat: mat}
	t.SetPoints(p0, p1, p2)
	return t
}

// SetPoints replaces the triangle's vertices and recomputes the normal
func (t *Triangle) SetPoints(p0, p1, p2 core.Vec3) {
	t.p0, t.p1, t.p2 = p0, p1, p2
	t.computeNormal()
}

// Points returns the triangle's vertices
func (t *Triangle) Points() (p0, p1, p2 core.Vec3) {
	return t.p0, t.p1, t.p2
}

// Normal returns the triangle's unit normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Material returns the triangle's material
func (t *Triangle) Material() core.Material {
	return t.mat
}

// SetMaterial assigns the triangle's material
func (t *Triangle) SetMaterial(mat core.Material) {
	t.mat = mat
}

// computeNormal calculates and caches the triangle's normal vector
func (t *Triangle) computeNormal() {
	edge1 := t.p1.Subtract(t.p0)
	edge2 := t.p2.Subtract(t.p0)
	t.normal = edge1.Cross(edge2).Normalize()
}

// RayTriangleHit computes the ray intersection with the triangle (p0, p1, p2)
// by solving the 3x3 linear system [p1-p0 | p2-p0 | -dir] (u, v, t)ᵀ =
// origin - p0 with Cramer's rule. On success it returns the ray parameter and
// the (u, v) coordinates in the triangle's affine basis; the barycentric
// weights of the hit point are (1-u-v, u, v).
func RayTriangleHit(p0, p1, p2 core.Vec3, ray core.Ray, tMin, tMax float64) (rayT, u, v float64, ok bool) {
	edge1 := p1.Subtract(p0)
	edge2 := p2.Subtract(p0)
	negDir := ray.Direction.Negate()

	// det [a|b|c] = a · (b × c)
	det := edge1.Dot(edge2.Cross(negDir))
	if det == 0 {
		return 0, 0, 0, false
	}

	b := ray.Origin.Subtract(p0)
	u = b.Dot(edge2.Cross(negDir)) / det
	v = edge1.Dot(b.Cross(negDir)) / det
	rayT = edge1.Dot(edge2.Cross(b)) / det

	if rayT < tMin || rayT > tMax {
		return 0, 0, 0, false
	}
	return rayT, u, v, true
}

// Hit tests if a ray intersects with the triangle
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// A ray parallel to the triangle plane never intersects. The exact
	// comparison is intentional.
	if t.normal.Dot(ray.Direction) == 0 {
		return nil, false
	}

	rayT, _, _, ok := RayTriangleHit(t.p0, t.p1, t.p2, ray, tMin, tMax)
	if !ok {
		return nil, false
	}

	// Containment: the hit point must be on the inner side of all three
	// edges, walking them in winding order
	point := ray.At(rayT)
	if t.p1.Subtract(t.p0).Cross(point.Subtract(t.p0)).Dot(t.normal) < 0 {
		return nil, false
	}
	if t.p2.Subtract(t.p1).Cross(point.Subtract(t.p1)).Dot(t.normal) < 0 {
		return nil, false
	}
	if t.p0.Subtract(t.p2).Cross(point.Subtract(t.p2)).Dot(t.normal) < 0 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:       rayT,
		Point:   point,
		Surface: t,
	}
	hit.SetFaceNormal(ray, t.normal)

	return hit, true
}
