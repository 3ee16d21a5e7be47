package renderer

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Epsilon is the minimum ray parameter for primary rays, keeping hit points
// from re-intersecting the surface they originate on.
const Epsilon = 1e-6

// FallbackColor marks pixels whose surface has no Phong-capable material
var FallbackColor = core.NewVec3(1, 0, 0)

var (
	// ErrInvalidScene is returned when the scene root or camera is missing
	ErrInvalidScene = errors.New("raytracer: missing scene root or camera")
	// ErrInvalidImageSize is returned for non-positive output dimensions
	ErrInvalidImageSize = errors.New("raytracer: invalid image dimensions")
)

// Scene interface to avoid circular imports
type Scene interface {
	Root() core.Surface
	Lights() []core.Light
	Camera() *Camera
}

// ProgressFunc receives per-pixel render progress. It is owned by the
// caller; the renderer itself keeps no progress state.
type ProgressFunc func(done, total int)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Raytracer renders a scene one sample per pixel with direct Phong lighting
type Raytracer struct {
	scene          Scene
	height         int // Output image height; width follows the camera aspect
	logger         core.Logger
	fallbackWarned bool
}

// NewRaytracer creates a new raytracer. The output width is derived from the
// camera aspect ratio at render time.
func NewRaytracer(scene Scene, height int, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{scene: scene, height: height, logger: logger}
}

// RayColor computes the radiance carried back along the ray: black if the
// ray misses, the sum of all light contributions at the nearest hit, or
// FallbackColor when the hit surface has no Phong material. The boolean
// reports whether anything was hit.
func (rt *Raytracer) RayColor(ray core.Ray, root core.Surface, sceneLights []core.Light) (core.Vec3, bool) {
	hit, ok := root.Hit(ray, Epsilon, math.Inf(1))
	if !ok {
		return core.Vec3{}, false
	}

	if _, isPhong := hit.Surface.Material().(*material.PhongMaterial); !isPhong {
		if !rt.fallbackWarned {
			rt.logger.Printf("raytracer: hit surface without Phong material, using fallback color\n")
			rt.fallbackWarned = true
		}
		return FallbackColor, true
	}

	color := core.Vec3{}
	viewDir := ray.Direction.Negate()
	for _, light := range sceneLights {
		color = color.Add(light.Illuminate(hit, viewDir))
	}
	return color, true
}

// Render traces one ray per pixel and returns the radiance buffer. Pixel
// (x, y) samples viewport coordinates (x/width, y/height). The progress
// callback, if non-nil, is invoked after every pixel.
func (rt *Raytracer) Render(progress ProgressFunc) (*Image, RenderStats, error) {
	if rt.scene == nil {
		return nil, RenderStats{}, ErrInvalidScene
	}
	root := rt.scene.Root()
	camera := rt.scene.Camera()
	if root == nil || camera == nil {
		return nil, RenderStats{}, ErrInvalidScene
	}

	height := rt.height
	width := int(camera.Aspect()*float64(height) + 0.5)
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("%w: %dx%d", ErrInvalidImageSize, width, height)
	}

	start := time.Now()
	img := NewImage(width, height)
	stats := RenderStats{Width: width, Height: height, TotalPixels: width * height}
	sceneLights := rt.scene.Lights()

	done := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ray := camera.GetRay(float64(x)/float64(width), float64(y)/float64(height))
			color, hit := rt.RayColor(ray, root, sceneLights)
			if hit {
				stats.HitPixels++
			}
			img.Set(x, y, color)
			done++
			if progress != nil {
				progress(done, stats.TotalPixels)
			}
		}
	}

	stats.RenderTime = time.Since(start)
	return img, stats, nil
}
