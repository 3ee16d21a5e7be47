package lights

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// PointLight is an isotropic point emitter with inverse-square falloff
type PointLight struct {
	position  core.Vec3
	intensity core.Vec3 // Radiant intensity per channel
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{position: position, intensity: intensity}
}

// Position returns the light's position
func (l *PointLight) Position() core.Vec3 { return l.position }

// Intensity returns the light's radiant intensity
func (l *PointLight) Intensity() core.Vec3 { return l.intensity }

// Illuminate returns the radiance this light contributes at the hit point:
// the irradiance intensity * max(0, normal · lightDir) / distance², scaled
// per channel by the material's Phong evaluation. Hits without a Phong
// material contribute zero radiance.
func (l *PointLight) Illuminate(hit *core.HitRecord, viewDir core.Vec3) core.Vec3 {
	toLight := l.position.Subtract(hit.Point)
	distanceSquared := toLight.LengthSquared()
	lightDir := toLight.Normalize()

	irradiance := l.intensity.Multiply(math.Max(0, hit.Normal.Dot(lightDir)) / distanceSquared)

	phong, ok := phongMaterial(hit)
	if !ok {
		return core.Vec3{}
	}

	return irradiance.MultiplyVec(phong.Evaluate(hit, lightDir, viewDir))
}

// phongMaterial returns the hit surface's material if it is Phong-capable
func phongMaterial(hit *core.HitRecord) (*material.PhongMaterial, bool) {
	if hit.Surface == nil {
		return nil, false
	}
	phong, ok := hit.Surface.Material().(*material.PhongMaterial)
	return phong, ok
}
