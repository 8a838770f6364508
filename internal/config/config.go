// Package config loads the YAML description of a batch render: one
// input panorama, shared defaults, and the list of views to extract.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// View describes one perspective extraction. Zero-valued fields
// inherit the config-level defaults during Resolve.
type View struct {
	Name          string  `yaml:"name"`
	FOV           float64 `yaml:"fov"`
	Theta         float64 `yaml:"theta"`
	Phi           float64 `yaml:"phi"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Interpolation string  `yaml:"interpolation"`
}

// Config drives a batch render.
type Config struct {
	Input     string `yaml:"input"`
	OutputDir string `yaml:"output_dir"`
	Format    string `yaml:"format"`  // webp, jpg or png
	Quality   int    `yaml:"quality"` // JPEG quality 1-100
	Workers   int    `yaml:"workers"`

	// Defaults applied to views that leave the field unset.
	FOV           float64 `yaml:"fov"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Interpolation string  `yaml:"interpolation"`
	Supersample   int     `yaml:"supersample"`

	Views []View `yaml:"views"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Input     string
	OutputDir string
	Format    string
	Quality   int
	Workers   int
}

// Load reads a YAML config file. Fields not set in the file keep their
// zero values until Resolve fills in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultDimensions applies the 16:9 defaulting rules: both absent →
// 1920×1080, one absent → derived from the other at 16:9.
func DefaultDimensions(width, height int) (int, int) {
	switch {
	case width <= 0 && height <= 0:
		return 1920, 1080
	case width <= 0:
		return height * 16 / 9, height
	case height <= 0:
		return width, width * 9 / 16
	}
	return width, height
}

// Resolve fills empty fields with defaults and applies CLI overrides.
// CLI flags take priority over the file.
func (c *Config) Resolve(flags Flags) {
	if flags.Input != "" {
		c.Input = flags.Input
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Quality > 0 {
		c.Quality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "views"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Quality <= 0 {
		c.Quality = 95
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.FOV == 0 {
		c.FOV = 60
	}
	if c.Interpolation == "" {
		c.Interpolation = "bicubic"
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	c.Width, c.Height = DefaultDimensions(c.Width, c.Height)

	for i := range c.Views {
		v := &c.Views[i]
		if v.FOV == 0 {
			v.FOV = c.FOV
		}
		if v.Interpolation == "" {
			v.Interpolation = c.Interpolation
		}
		if v.Width <= 0 && v.Height <= 0 {
			v.Width, v.Height = c.Width, c.Height
		} else {
			v.Width, v.Height = DefaultDimensions(v.Width, v.Height)
		}
	}
}

// Validate checks the resolved config before a run starts.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("config: input panorama path is required")
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("config: quality must be between 1 and 100, got %d", c.Quality)
	}
	switch c.Format {
	case "webp", "jpg", "jpeg", "png":
	default:
		return fmt.Errorf("config: unsupported output format: %q", c.Format)
	}
	if len(c.Views) == 0 {
		return fmt.Errorf("config: at least one view is required")
	}

	seen := make(map[string]bool, len(c.Views))
	for i, v := range c.Views {
		if v.Name == "" {
			return fmt.Errorf("config: view %d has no name", i)
		}
		if seen[v.Name] {
			return fmt.Errorf("config: duplicate view name %q", v.Name)
		}
		seen[v.Name] = true
		if v.FOV < 1 || v.FOV > 180 {
			return fmt.Errorf("config: view %q: fov must be between 1 and 180 degrees, got %v", v.Name, v.FOV)
		}
		if v.Theta < -180 || v.Theta > 180 {
			return fmt.Errorf("config: view %q: theta must be between -180 and 180 degrees, got %v", v.Name, v.Theta)
		}
		if v.Phi < -90 || v.Phi > 90 {
			return fmt.Errorf("config: view %q: phi must be between -90 and 90 degrees, got %v", v.Name, v.Phi)
		}
	}
	return nil
}
