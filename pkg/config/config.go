package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the renderer configuration
type Config struct {
	Render RenderConfig `yaml:"render"`
	Output OutputConfig `yaml:"output"`
}

// RenderConfig contains render-loop configuration
type RenderConfig struct {
	// Height overrides the scene file's image height when positive
	Height int `yaml:"height"`
}

// OutputConfig contains image export configuration
type OutputConfig struct {
	Directory      string  `yaml:"directory"`
	Gamma          float64 `yaml:"gamma"`
	Thumbnail      bool    `yaml:"thumbnail"`
	ThumbnailWidth int     `yaml:"thumbnail_width"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Render: RenderConfig{
			Height: 0, // Use the scene file's image height
		},
		Output: OutputConfig{
			Directory:      "output",
			Gamma:          2.2,
			Thumbnail:      false,
			ThumbnailWidth: 128,
		},
	}
}

// Load reads a YAML configuration file, filling unset fields from defaults
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Output.Gamma <= 0 {
		return cfg, fmt.Errorf("config: gamma must be positive, got %v", cfg.Output.Gamma)
	}
	if cfg.Output.ThumbnailWidth <= 0 {
		return cfg, fmt.Errorf("config: thumbnail_width must be positive, got %d", cfg.Output.ThumbnailWidth)
	}
	return cfg, nil
}
