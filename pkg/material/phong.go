package material

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// PhongMaterial is a Blinn-Phong reflectance model. Instances are immutable
// after construction and may be shared by any number of surfaces.
type PhongMaterial struct {
	ambient   core.Vec3 // Ambient reflectance, consumed by ambient lights
	diffuse   core.Vec3
	specular  core.Vec3
	shininess float64
	mirror    core.Vec3 // Mirror reflectance, reserved; unused by shading
}

// NewPhongMaterial creates a new Phong material
func NewPhongMaterial(ambient, diffuse, specular core.Vec3, shininess float64, mirror core.Vec3) *PhongMaterial {
	return &PhongMaterial{
		ambient:   ambient,
		diffuse:   diffuse,
		specular:  specular,
		shininess: shininess,
		mirror:    mirror,
	}
}

// Ambient returns the ambient reflectance
func (m *PhongMaterial) Ambient() core.Vec3 { return m.ambient }

// Diffuse returns the diffuse reflectance
func (m *PhongMaterial) Diffuse() core.Vec3 { return m.diffuse }

// Specular returns the specular reflectance
func (m *PhongMaterial) Specular() core.Vec3 { return m.specular }

// Shininess returns the specular exponent
func (m *PhongMaterial) Shininess() float64 { return m.shininess }

// Mirror returns the mirror reflectance
func (m *PhongMaterial) Mirror() core.Vec3 { return m.mirror }

// Evaluate returns the Blinn-Phong reflectance at the hit point:
// diffuse + specular * max(0, normal · half)^shininess, where half is the
// normalized bisector of lightDir and viewDir. Both directions must point
// away from the surface; the callers (lights) uphold that contract. The
// ambient term is not part of Evaluate; ambient lights read it directly.
func (m *PhongMaterial) Evaluate(hit *core.HitRecord, lightDir, viewDir core.Vec3) core.Vec3 {
	half := lightDir.Add(viewDir).Normalize()
	highlight := math.Pow(math.Max(0, hit.Normal.Dot(half)), m.shininess)
	return m.diffuse.Add(m.specular.Multiply(highlight))
}
