package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Config contains rendering configuration
type Config struct {
	Width            int           // Image width in pixels
	Height           int           // Image height in pixels
	SamplesPerPixel  int           // Number of rays per pixel
	MaxDepth         int           // Maximum ray bounce depth
	Threads          int           // Worker goroutines, 0 for one per CPU
	Seed             int64         // Base seed, worker w uses Seed+w
	ProgressInterval time.Duration // How often the progress callback fires
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:            720,
		Height:           405,
		SamplesPerPixel:  50,
		MaxDepth:         25,
		Seed:             1,
		ProgressInterval: time.Second,
	}
}

// Progress reports how far a render has come
type Progress struct {
	LinesDone  int
	TotalLines int
	Elapsed    time.Duration
}

// Percent returns the completed fraction as a percentage
func (p Progress) Percent() float64 {
	if p.TotalLines == 0 {
		return 100
	}
	return 100 * float64(p.LinesDone) / float64(p.TotalLines)
}

// ProgressFunc receives periodic progress updates from the monitor goroutine
type ProgressFunc func(Progress)

// Raytracer renders a world through a camera into a framebuffer
type Raytracer struct {
	camera     *Camera
	world      geometry.Shape
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
	onProgress ProgressFunc
}

// NewRaytracer creates a new raytracer. The world and camera must be fully built
// and are only read while rendering.
func NewRaytracer(camera *Camera, world geometry.Shape, integ integrator.Integrator, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	if config.ProgressInterval <= 0 {
		config.ProgressInterval = time.Second
	}
	return &Raytracer{
		camera:     camera,
		world:      world,
		integrator: integ,
		config:     config,
		logger:     logger,
	}
}

// SetProgressCallback registers fn to be called from the monitor goroutine
func (rt *Raytracer) SetProgressCallback(fn ProgressFunc) {
	rt.onProgress = fn
}

// Config returns the render configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// Render traces every pixel and returns the finished framebuffer. It always
// runs to completion.
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	start := time.Now()
	fb := NewFramebuffer(rt.config.Width, rt.config.Height)
	pool := NewWorkerPool(rt.config.Threads, rt.config.Seed)

	rt.logger.Printf("Rendering %dx%d at %d spp with %d workers",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, pool.NumWorkers())

	done := make(chan struct{})
	monitorDone := make(chan struct{})
	go rt.monitor(pool, start, done, monitorDone)

	pool.Run(rt.config.Height, func(row int, sampler core.Sampler) {
		rt.RenderRow(fb, row, sampler)
	})
	close(done)
	<-monitorDone

	stats := RenderStats{
		Width:            rt.config.Width,
		Height:           rt.config.Height,
		TotalPixels:      rt.config.Width * rt.config.Height,
		TotalSamples:     rt.config.Width * rt.config.Height * rt.config.SamplesPerPixel,
		SamplesPerPixel:  rt.config.SamplesPerPixel,
		MaxDepth:         rt.config.MaxDepth,
		Workers:          pool.NumWorkers(),
		Duration:         time.Since(start),
		AverageLuminance: CalculateAverageLuminance(fb.Image()),
	}
	rt.logger.Debugf("Render finished in %v (%.0f samples/s)", stats.Duration, stats.SamplesPerSecond())
	return fb, stats
}

// monitor polls the lines counter until done is closed, then reports the final state
func (rt *Raytracer) monitor(pool *WorkerPool, start time.Time, done <-chan struct{}, finished chan<- struct{}) {
	defer close(finished)
	if rt.onProgress == nil {
		<-done
		return
	}

	report := func() {
		rt.onProgress(Progress{
			LinesDone:  int(pool.LinesDone()),
			TotalLines: rt.config.Height,
			Elapsed:    time.Since(start),
		})
	}

	ticker := time.NewTicker(rt.config.ProgressInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			report()
		case <-done:
			report()
			return
		}
	}
}

// RenderRow renders framebuffer row, where row 0 is the top of the image
func (rt *Raytracer) RenderRow(fb *Framebuffer, row int, sampler core.Sampler) {
	j := rt.config.Height - 1 - row
	for i := 0; i < rt.config.Width; i++ {
		fb.Set(i, row, rt.renderPixel(i, j, sampler))
	}
}

// renderPixel averages SamplesPerPixel jittered samples of pixel (i, j), where
// j counts up from the bottom of the image
func (rt *Raytracer) renderPixel(i, j int, sampler core.Sampler) core.Vec3 {
	var stats PixelStats
	uDenom := float64(max(rt.config.Width-1, 1))
	vDenom := float64(max(rt.config.Height-1, 1))

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		jitter := sampler.Get2D()
		s := (float64(i) + jitter.X) / uDenom
		t := (float64(j) + jitter.Y) / vDenom

		ray := rt.camera.GetRay(s, t, sampler)
		stats.AddSample(rt.integrator.RayColor(ray, rt.world, sampler, rt.config.MaxDepth))
	}

	return stats.GetColor()
}
