package renderer

import (
	"context"
	"image"
	"math"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/noise"
)

// Engine renders a world through a camera into an Image
type Engine struct {
	Camera     *Camera
	World      geometry.Shape
	Integrator integrator.Integrator
	Source     noise.Source
	Config     SamplingConfig
	Image      *Image
	TileSize   int

	logger core.Logger
}

// NewEngine creates an engine with a black image sized from config.
// A nil logger discards progress output.
func NewEngine(camera *Camera, world geometry.Shape, integ integrator.Integrator, source noise.Source, config SamplingConfig, logger core.Logger) *Engine {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Engine{
		Camera:     camera,
		World:      world,
		Integrator: integ,
		Source:     source,
		Config:     config,
		Image:      NewImage(config.Width, config.Height()),
		TileSize:   DefaultTileSize,
		logger:     logger,
	}
}

// Simulate renders every pixel of the image and returns statistics.
// The world and camera must not change while it runs.
func (e *Engine) Simulate() RenderStats {
	stats, _ := e.SimulateContext(context.Background())
	return stats
}

// SimulateContext is Simulate with cancellation. Cancellation is checked once
// per image row; on cancel the image is partially rendered and ctx.Err() is
// returned.
func (e *Engine) SimulateContext(ctx context.Context) (RenderStats, error) {
	start := time.Now()
	workers := e.Config.Workers()

	e.logger.Printf("[INFO] Simulation started: %dx%d, %d spp, depth %d, %d worker(s)\n",
		e.Image.Width, e.Image.Height, e.Config.SamplesPerPixel, e.Config.MaxDepth, workers)

	stats := RenderStats{
		TotalPixels: e.Image.Width * e.Image.Height,
		Workers:     workers,
	}

	var err error
	if workers == 1 {
		stats.TotalSamples, err = e.renderBounds(ctx, image.Rect(0, 0, e.Image.Width, e.Image.Height))
		stats.Tasks = 1
	} else {
		stats.TotalSamples, stats.Tasks, err = e.renderParallel(ctx, workers)
	}

	stats.finalize(time.Since(start))
	if err != nil {
		e.logger.Printf("[INFO] Simulation cancelled after %v: %v\n", stats.Elapsed, err)
		return stats, err
	}
	e.logger.Printf("[INFO] Simulation finished in %v (%d samples)\n", stats.Elapsed, stats.TotalSamples)
	return stats, nil
}

// renderParallel distributes tiles over a worker pool
func (e *Engine) renderParallel(ctx context.Context, workers int) (samples, tasks int, err error) {
	tiles := NewTileGrid(e.Image.Width, e.Image.Height, e.TileSize)

	pool := NewWorkerPool(e, workers, len(tiles))
	pool.Start()
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Ctx: ctx})
	}

	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		samples += result.Samples
		if result.Error != nil && err == nil {
			err = result.Error
		}
	}
	pool.Stop()

	return samples, len(tiles), err
}

// renderBounds renders the pixels inside bounds and returns the samples traced
func (e *Engine) renderBounds(ctx context.Context, bounds image.Rectangle) (int, error) {
	samples := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			return samples, err
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			color := e.samplePixel(x, y)
			e.Image.Set(x, y, e.toRGB(color))
			samples += e.Config.SamplesPerPixel
		}
	}
	return samples, nil
}

// samplePixel returns the summed radiance of all samples for pixel (x, y)
func (e *Engine) samplePixel(x, y int) core.Vec3 {
	n := e.Config.SamplesPerPixel
	maxX := float64(max(e.Image.Width-1, 1))
	maxY := float64(max(e.Image.Height-1, 1))

	sum := core.Zero()
	for s := 0; s < n; s++ {
		jx, jy := e.jitter(x, y, s)
		u := (float64(x) + jx) / maxX
		v := (float64(y) + jy) / maxY

		ray := e.Camera.GetRay(u, v)
		sum = sum.Add(e.Integrator.RayColor(ray, e.World, e.Config.MaxDepth))
	}
	return sum
}

// jitter returns the sub-pixel offset in [-1, 1] for one sample.
// A single sample is taken at the pixel centre.
func (e *Engine) jitter(x, y, sample int) (float64, float64) {
	if e.Config.SamplesPerPixel == 1 {
		return 0, 0
	}
	key := float32(e.Config.Seed*e.Config.SamplesPerPixel + sample)
	rx, ry, _ := e.Source.Rand33(float32(x), float32(y), key)
	return 2*float64(rx) - 1, 2*float64(ry) - 1
}

// toRGB averages a summed colour and quantizes it to 8 bits per channel
func (e *Engine) toRGB(sum core.Vec3) RGB {
	c := sum.Multiply(1.0 / float64(e.Config.SamplesPerPixel))
	if e.Config.Gamma != 1 {
		c = c.Clamp(0, math.Inf(1)).GammaCorrect(e.Config.Gamma)
	}
	return RGB{toByte(c.X), toByte(c.Y), toByte(c.Z)}
}

// toByte maps [0, 1] to [0, 255]; out-of-range and NaN values saturate
func toByte(c float64) uint8 {
	v := math.Floor(c * 255.999)
	switch {
	case !(v > 0):
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
