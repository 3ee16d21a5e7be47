package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func main() {
	scenePath := flag.String("scene", "", "Path to a raytra scene file (empty = built-in demo scene)")
	configPath := flag.String("config", "", "Path to a YAML config file")
	height := flag.Int("height", 0, "Output image height in pixels (overrides scene/config)")
	gamma := flag.Float64("gamma", 0, "Gamma correction exponent (overrides config)")
	outputDir := flag.String("output", "", "Output directory (overrides config)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <output>/render_<timestamp>.png")
		return
	}

	logger := renderer.NewDefaultLogger()

	// Load configuration
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *gamma > 0 {
		cfg.Output.Gamma = *gamma
	}
	if *outputDir != "" {
		cfg.Output.Directory = *outputDir
	}

	// Load the scene
	var s *scene.Scene
	if *scenePath != "" {
		var err error
		s, err = loaders.LoadRaytra(*scenePath, logger)
		if err != nil {
			fmt.Printf("Error loading scene: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println("No scene file given, using built-in demo scene...")
		s = scene.NewDefaultScene()
	}

	// Resolve the output height: flag, then config, then scene hint
	_, sceneHeight := s.ImageSize()
	renderHeight := sceneHeight
	if cfg.Render.Height > 0 {
		renderHeight = cfg.Render.Height
	}
	if *height > 0 {
		renderHeight = *height
	}

	if err := os.MkdirAll(cfg.Output.Directory, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Rendering...")
	rt := renderer.NewRaytracer(s, renderHeight, logger)

	lastPercent := -1
	progress := func(done, total int) {
		percent := done * 100 / total
		if percent/10 != lastPercent/10 {
			lastPercent = percent
			fmt.Printf("  %3d%%\n", percent)
		}
	}

	img, stats, err := rt.Render(progress)
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered %dx%d (%d pixels, %d hits) in %v\n",
		stats.Width, stats.Height, stats.TotalPixels, stats.HitPixels, stats.RenderTime)

	// Write the output image
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(cfg.Output.Directory, fmt.Sprintf("render_%s.png", timestamp))
	if err := img.WritePNG(filename, cfg.Output.Gamma); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)

	if cfg.Output.Thumbnail {
		thumbName := filepath.Join(cfg.Output.Directory, fmt.Sprintf("render_%s_thumb.png", timestamp))
		if err := writeThumbnail(img, thumbName, cfg); err != nil {
			fmt.Printf("Error saving thumbnail: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Thumbnail saved as %s\n", thumbName)
	}
}

func writeThumbnail(img *renderer.Image, filename string, cfg config.Config) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	thumb := img.Thumbnail(uint(cfg.Output.ThumbnailWidth), cfg.Output.Gamma)
	return png.Encode(file, thumb)
}
