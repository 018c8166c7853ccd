package renderer

import "time"

// RenderStats contains statistics about a completed render pass
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	TotalPixels     int           // Total number of pixels rendered
	HitPixels       int           // Pixels whose camera ray hit a surface
	MissPixels      int           // Pixels filled with the background color
	Duration        time.Duration // Wall time of the pass
	PixelsPerSecond float64       // Render throughput
}

// HitRate returns the fraction of pixels whose camera ray hit a surface
func (s RenderStats) HitRate() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}
