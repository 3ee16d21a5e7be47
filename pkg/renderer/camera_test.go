package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestCamera_GetRay_CenterLooksAtTarget(t *testing.T) {
	tests := []struct {
		name        string
		eye, target core.Vec3
	}{
		{"down z axis", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0)},
		{"oblique", core.NewVec3(3, 2, 1), core.NewVec3(-1, 0, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(tt.eye, tt.target, core.NewVec3(0, 1, 0), 40.0, 1.0)

			ray := camera.GetRay(0.5, 0.5)
			expected := tt.target.Subtract(tt.eye).Normalize()

			if ray.Origin != tt.eye {
				t.Errorf("Expected ray origin %v, got %v", tt.eye, ray.Origin)
			}
			if math.Abs(ray.Direction.X-expected.X) > 1e-9 ||
				math.Abs(ray.Direction.Y-expected.Y) > 1e-9 ||
				math.Abs(ray.Direction.Z-expected.Z) > 1e-9 {
				t.Errorf("Expected center ray direction %v, got %v", expected, ray.Direction)
			}
		})
	}
}

func TestCamera_UpdateViewport_Idempotent(t *testing.T) {
	camera := NewCamera(core.NewVec3(1, 2, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 55.0, 1.5)

	h1, v1, ll1 := camera.Viewport()
	camera.UpdateViewport()
	h2, v2, ll2 := camera.Viewport()

	// Bitwise-identical: same inputs, same operations
	if h1 != h2 || v1 != v2 || ll1 != ll2 {
		t.Errorf("Viewport changed across redundant updates:\n(%v %v %v)\n(%v %v %v)",
			h1, v1, ll1, h2, v2, ll2)
	}
}

func TestCamera_SetAspect_UpdatesViewport(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 40.0, 1.0)
	h1, _, _ := camera.Viewport()

	camera.SetAspect(2.0, true)
	h2, _, _ := camera.Viewport()

	if math.Abs(h2.Length()-2*h1.Length()) > 1e-9 {
		t.Errorf("Expected horizontal to double with aspect, got %f -> %f", h1.Length(), h2.Length())
	}
}

func TestCamera_SetFovy_SuppressedUpdate(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 40.0, 1.0)
	_, v1, _ := camera.Viewport()

	// Suppressed: viewport must not move until UpdateViewport is called
	camera.SetFovy(80.0, false)
	_, v2, _ := camera.Viewport()
	if v1 != v2 {
		t.Fatal("Viewport changed despite suppressed update")
	}

	camera.UpdateViewport()
	_, v3, _ := camera.Viewport()
	if v3.Length() <= v1.Length() {
		t.Errorf("Expected wider fovy to grow vertical, got %f -> %f", v1.Length(), v3.Length())
	}
}

func TestCamera_LookAt_RebuildsFrame(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 40.0, 1.0)

	newEye := core.NewVec3(5, 0, 0)
	newTarget := core.NewVec3(0, 0, 0)
	camera.LookAt(newEye, newTarget, core.NewVec3(0, 1, 0), true)

	ray := camera.GetRay(0.5, 0.5)
	expected := newTarget.Subtract(newEye).Normalize()
	if math.Abs(ray.Direction.X-expected.X) > 1e-9 ||
		math.Abs(ray.Direction.Y-expected.Y) > 1e-9 ||
		math.Abs(ray.Direction.Z-expected.Z) > 1e-9 {
		t.Errorf("Expected center ray %v after LookAt, got %v", expected, ray.Direction)
	}
}

func TestCamera_RayDirectionsNormalized(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 40.0, 1.6)

	for _, st := range [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0.25, 0.75}} {
		ray := camera.GetRay(st[0], st[1])
		if math.Abs(ray.Direction.Length()-1) > 1e-12 {
			t.Errorf("GetRay(%v, %v) direction not unit length: %f", st[0], st[1], ray.Direction.Length())
		}
	}
}
