package lights

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// AmbientLight contributes a constant ambient term. A scene holds at most
// one; scene validation enforces the limit.
type AmbientLight struct {
	ambient core.Vec3
}

// NewAmbientLight creates a new ambient light
func NewAmbientLight(ambient core.Vec3) *AmbientLight {
	return &AmbientLight{ambient: ambient}
}

// Ambient returns the light's ambient radiance
func (l *AmbientLight) Ambient() core.Vec3 { return l.ambient }

// Illuminate returns the light's ambient radiance scaled per channel by the
// material's ambient reflectance. The view direction is ignored. Hits
// without a Phong material contribute zero radiance.
func (l *AmbientLight) Illuminate(hit *core.HitRecord, viewDir core.Vec3) core.Vec3 {
	phong, ok := phongMaterial(hit)
	if !ok {
		return core.Vec3{}
	}
	return l.ambient.MultiplyVec(phong.Ambient())
}
