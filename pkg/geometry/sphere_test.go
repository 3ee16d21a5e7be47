package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if hit, ok := sphere.Hit(ray, 0.001, 1000.0); ok {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_TowardCenter(t *testing.T) {
	tests := []struct {
		name      string
		center    core.Vec3
		radius    float64
		rayOrigin core.Vec3
	}{
		{"unit sphere from z axis", core.NewVec3(0, 0, 0), 1.0, core.NewVec3(0, 0, 5)},
		{"offset sphere", core.NewVec3(2, -1, 3), 0.5, core.NewVec3(-4, 2, 1)},
		{"large sphere", core.NewVec3(0, 10, 0), 4.0, core.NewVec3(0, -20, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, nil)
			ray := core.NewRay(tt.rayOrigin, tt.center.Subtract(tt.rayOrigin))

			hit, ok := sphere.Hit(ray, 0.001, math.Inf(1))
			if !ok {
				t.Fatal("Expected hit, but got miss")
			}

			// Nearer root: origin-to-center distance minus the radius
			expectedT := tt.center.Subtract(tt.rayOrigin).Length() - tt.radius
			if math.Abs(hit.T-expectedT) > 1e-9 {
				t.Errorf("Expected nearer root t=%f, got t=%f", expectedT, hit.T)
			}

			// Hit point lies on the sphere
			if r := hit.Point.Subtract(tt.center).Length(); math.Abs(r-tt.radius) > 1e-9 {
				t.Errorf("Hit point at distance %f from center, want %f", r, tt.radius)
			}

			if !hit.FrontFace {
				t.Error("Expected front face hit from outside the sphere")
			}
			if hit.Surface != sphere {
				t.Error("Expected hit record to reference the sphere")
			}
		})
	}
}

// A ray starting inside the sphere only has its nearer root behind tMin, and
// the implementation does not fall back to the farther root. This pins the
// exit-from-inside behavior down.
func TestSphere_Hit_InsideOrigin(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if hit, ok := sphere.Hit(ray, 0.001, 1000.0); ok {
		t.Errorf("Expected no hit for ray starting inside sphere, got t=%f", hit.T)
	}
}

func TestSphere_Hit_Range(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	// Nearer root is at t=4
	if _, ok := sphere.Hit(ray, 0.001, 3.9); ok {
		t.Error("Expected miss with tMax before the nearer root")
	}
	if _, ok := sphere.Hit(ray, 4.1, 1000.0); ok {
		t.Error("Expected miss with tMin past the nearer root; farther root is not tried")
	}
	if hit, ok := sphere.Hit(ray, 4.0, 4.0); !ok || hit.T != 4.0 {
		t.Error("Expected hit with inclusive bounds at the root")
	}
}

func TestSphere_Hit_NormalOpposesRay(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		center := core.NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		radius := random.Float64()*2 + 0.1
		sphere := NewSphere(center, radius, nil)

		origin := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		direction := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
		if direction.Length() == 0 {
			continue
		}
		ray := core.NewRay(origin, direction)

		if hit, ok := sphere.Hit(ray, 0.001, math.Inf(1)); ok {
			if hit.Normal.Dot(ray.Direction) > 1e-12 {
				t.Fatalf("Normal %v does not oppose ray direction %v (iteration %d)",
					hit.Normal, ray.Direction, i)
			}
		}
	}
}
