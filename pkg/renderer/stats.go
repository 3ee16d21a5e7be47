package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width       int           // Output image width in pixels
	Height      int           // Output image height in pixels
	TotalPixels int           // Total number of pixels rendered
	HitPixels   int           // Pixels whose primary ray hit the scene
	RenderTime  time.Duration // Wall-clock render duration
}
