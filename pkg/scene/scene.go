package scene

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering: a root surface
// (typically a SurfaceList), the lights, the camera, and an image size hint.
// The hint's height is the default output height; the width is only an
// aspect-ratio source and the render loop derives the real width from the
// camera.
type Scene struct {
	root        core.Surface
	lightList   []core.Light
	camera      *renderer.Camera
	imageWidth  int
	imageHeight int
}

// New creates a scene and validates it: the root and camera must be present
// and at most one light may be ambient. Validation failures are reported
// here, before any rendering begins.
func New(root core.Surface, lightList []core.Light, camera *renderer.Camera, imageWidth, imageHeight int) (*Scene, error) {
	if root == nil {
		return nil, fmt.Errorf("scene: missing root surface")
	}
	if camera == nil {
		return nil, fmt.Errorf("scene: missing camera")
	}

	ambientCount := 0
	for _, light := range lightList {
		if _, ok := light.(*lights.AmbientLight); ok {
			ambientCount++
		}
	}
	if ambientCount > 1 {
		return nil, fmt.Errorf("scene: at most one ambient light allowed, got %d", ambientCount)
	}

	return &Scene{
		root:        root,
		lightList:   lightList,
		camera:      camera,
		imageWidth:  imageWidth,
		imageHeight: imageHeight,
	}, nil
}

// Root returns the scene's root surface
func (s *Scene) Root() core.Surface { return s.root }

// Lights returns the scene's lights
func (s *Scene) Lights() []core.Light { return s.lightList }

// Camera returns the scene's camera
func (s *Scene) Camera() *renderer.Camera { return s.camera }

// ImageSize returns the scene's image size hint in pixels
func (s *Scene) ImageSize() (width, height int) {
	return s.imageWidth, s.imageHeight
}
