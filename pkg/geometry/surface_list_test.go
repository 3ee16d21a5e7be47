package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestSurfaceList_Hit_NearestWins(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, 2), 0.5, nil)
	far := NewSphere(core.NewVec3(0, 0, -2), 0.5, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	// The nearer sphere must win regardless of list order
	for name, list := range map[string]*SurfaceList{
		"near first": NewSurfaceList(near, far),
		"far first":  NewSurfaceList(far, near),
	} {
		t.Run(name, func(t *testing.T) {
			hit, ok := list.Hit(ray, 0.001, math.Inf(1))
			if !ok {
				t.Fatal("Expected hit, got miss")
			}
			if hit.Surface != near {
				t.Error("Expected the nearer sphere to win")
			}
			if math.Abs(hit.T-2.5) > 1e-9 {
				t.Errorf("Expected t=2.5, got t=%f", hit.T)
			}
		})
	}
}

func TestSurfaceList_Hit_OverlappingSpheres(t *testing.T) {
	big := NewSphere(core.NewVec3(0, 0, 0), 2.0, nil)
	small := NewSphere(core.NewVec3(0, 0, 1), 0.5, nil)
	list := NewSurfaceList(big, small)

	// Both overlap along the ray; the big sphere's surface is nearer
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hit, ok := list.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if hit.Surface != big {
		t.Error("Expected the enclosing sphere's nearer surface to win")
	}
}

func TestSurfaceList_Hit_TieFirstWins(t *testing.T) {
	first := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	second := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	list := NewSurfaceList(first, second)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hit, ok := list.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if hit.Surface != first {
		t.Error("Expected the first surface to win a tie")
	}
}

func TestSurfaceList_Hit_Empty(t *testing.T) {
	list := NewSurfaceList()
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	if _, ok := list.Hit(ray, 0.001, math.Inf(1)); ok {
		t.Error("Expected no hit from an empty list")
	}
}

func TestSurfaceList_Add(t *testing.T) {
	list := NewSurfaceList()
	list.Add(NewSphere(core.NewVec3(0, 0, 0), 1.0, nil))

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	if _, ok := list.Hit(ray, 0.001, math.Inf(1)); !ok {
		t.Error("Expected hit after Add")
	}
	if list.Material() != nil {
		t.Error("Expected aggregate to have no material")
	}
}
