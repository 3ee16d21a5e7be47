package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// SurfaceList aggregates surfaces with a linear closest-hit scan. It is the
// only form of scene aggregation; there is no spatial index.
type SurfaceList struct {
	surfaces []core.Surface
}

// NewSurfaceList creates a surface list from the given surfaces
func NewSurfaceList(surfaces ...core.Surface) *SurfaceList {
	return &SurfaceList{surfaces: surfaces}
}

// Add appends a surface to the list
func (sl *SurfaceList) Add(surface core.Surface) {
	sl.surfaces = append(sl.surfaces, surface)
}

// Surfaces returns the member surfaces
func (sl *SurfaceList) Surfaces() []core.Surface {
	return sl.surfaces
}

// Material returns nil: aggregates carry no material of their own
func (sl *SurfaceList) Material() core.Material {
	return nil
}

// Hit returns the member hit with the minimum in-range t. Ties are broken by
// iteration order: the first surface encountered wins.
func (sl *SurfaceList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord

	for _, surface := range sl.surfaces {
		if hit, ok := surface.Hit(ray, tMin, tMax); ok {
			if closest == nil || hit.T < closest.T {
				closest = hit
			}
		}
	}

	return closest, closest != nil
}
