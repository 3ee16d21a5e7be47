package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// NewDefaultScene creates a built-in demo scene: a unit sphere at the origin
// with a red Phong material, one point light, and a square camera looking
// down the z axis.
func NewDefaultScene() *Scene {
	red := material.NewPhongMaterial(
		core.NewVec3(0.5, 0, 0), // ambient matches diffuse
		core.NewVec3(0.5, 0, 0),
		core.NewVec3(1, 1, 1),
		32,
		core.Vec3{},
	)

	root := geometry.NewSurfaceList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, red),
	)

	sceneLights := []core.Light{
		lights.NewPointLight(core.NewVec3(5, 5, 5), core.NewVec3(1, 1, 1)),
	}

	camera := renderer.NewCamera(
		core.NewVec3(0, 0, 5),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		40.0,
		1.0,
	)

	// Validation cannot fail for the fixed layout above
	s, _ := New(root, sceneLights, camera, 400, 400)
	return s
}
