package renderer

import (
	"fmt"
	"math"
	"runtime"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int     // Image width in pixels
	AspectRatio     float64 // Width / height; height is derived
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	Seed            int     // Offsets jitter and bounces; equal seeds give identical images
	NumWorkers      int     // 1 renders sequentially, 0 uses one worker per CPU
	Gamma           float64 // Output gamma; 1 writes linear values
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            0,
		NumWorkers:      1,
		Gamma:           1.0,
	}
}

// Height returns the image height, round(Width / AspectRatio), at least 1
func (c SamplingConfig) Height() int {
	return max(1, int(math.Round(float64(c.Width)/c.AspectRatio)))
}

// Workers resolves NumWorkers to the number of goroutines to use
func (c SamplingConfig) Workers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}

// Validate reports the first invalid field
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("width must be positive, got %d", c.Width)
	case c.AspectRatio <= 0 || math.IsNaN(c.AspectRatio) || math.IsInf(c.AspectRatio, 0):
		return fmt.Errorf("aspect ratio must be a positive number, got %v", c.AspectRatio)
	case c.SamplesPerPixel < 1:
		return fmt.Errorf("samples per pixel must be at least 1, got %d", c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	case c.NumWorkers < 0:
		return fmt.Errorf("worker count must not be negative, got %d", c.NumWorkers)
	case c.Gamma <= 0:
		return fmt.Errorf("gamma must be positive, got %v", c.Gamma)
	}
	return nil
}

// MergeSamplingConfig returns base with every non-zero field of override applied
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.Gamma != 0 {
		result.Gamma = override.Gamma
	}
	return result
}
