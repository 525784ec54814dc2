package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of camera rays traced
	AverageSamples float64       // Average samples per pixel
	Workers        int           // Goroutines used
	Tasks          int           // Tiles rendered (1 for a sequential render)
	Elapsed        time.Duration // Wall time of Simulate
}

// finalize derives the averaged fields
func (s *RenderStats) finalize(elapsed time.Duration) {
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
	s.Elapsed = elapsed
}
