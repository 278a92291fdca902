package render

import (
	"image/color"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/taigrr/cornell/pkg/math3d"
	"github.com/taigrr/cornell/pkg/scene"
	"golang.org/x/sync/errgroup"
)

// Renderer casts one primary ray per pixel into a scene.
// A Renderer is safe for concurrent Trace calls; Render calls must not
// overlap.
type Renderer struct {
	scene   *scene.Scene
	camera  Camera
	shader  Shader
	width   int
	height  int
	workers int

	rays    atomic.Int64
	hits    atomic.Int64
	elapsed atomic.Int64 // nanoseconds of the last Render
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSize sets the output size in pixels. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(r *Renderer) {
		if width > 0 && height > 0 {
			r.width, r.height = width, height
		}
	}
}

// WithShader sets the shader used for hits.
func WithShader(s Shader) Option {
	return func(r *Renderer) {
		if s != nil {
			r.shader = s
		}
	}
}

// WithCamera replaces the default camera.
func WithCamera(c Camera) Option {
	return func(r *Renderer) {
		r.camera = c
	}
}

// WithWorkers bounds how many rows are traced at once.
// Values below 1 mean runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.workers = n
		}
	}
}

// NewRenderer creates a renderer for sc. A nil scene renders as empty.
func NewRenderer(sc *scene.Scene, opts ...Option) *Renderer {
	if sc == nil {
		sc = scene.New(nil)
	}
	r := &Renderer{
		scene:   sc,
		camera:  DefaultCamera(),
		shader:  HeadlampShader{},
		width:   DefaultWidth,
		height:  DefaultHeight,
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Size returns the output size in pixels.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Trace returns the shaded colour of the nearest hit along ray, or black
// and false when nothing is hit.
func (r *Renderer) Trace(ray Ray) (math3d.Vec3, bool) {
	r.rays.Add(1)
	hit, ok := Nearest(ray, r.scene.Triangles)
	if !ok {
		return math3d.Zero3(), false
	}
	r.hits.Add(1)
	return r.shader.Shade(r.scene, ray, hit), true
}

// TracePixel traces the camera ray through pixel (x, y).
func (r *Renderer) TracePixel(x, y int) color.RGBA {
	c, _ := r.Trace(r.camera.Ray(x, y, r.width, r.height))
	return ToRGBA(c)
}

// Render traces every pixel and returns the finished frame.
// Rows are independent and are traced in parallel.
func (r *Renderer) Render() *Framebuffer {
	start := time.Now()
	r.rays.Store(0)
	r.hits.Store(0)

	fb := NewFramebuffer(r.width, r.height)

	var g errgroup.Group
	g.SetLimit(r.workers)
	for y := 0; y < r.height; y++ {
		g.Go(func() error {
			row := fb.Row(y)
			for x := range row {
				row[x] = r.TracePixel(x, y)
			}
			return nil
		})
	}
	// Row tasks never fail.
	_ = g.Wait()

	r.elapsed.Store(int64(time.Since(start)))
	return fb
}

// Stats describes the last Render.
type Stats struct {
	Rays    int64
	Hits    int64
	Elapsed time.Duration
}

// Stats returns counters for the last Render. Trace calls made outside
// Render are counted too.
func (r *Renderer) Stats() Stats {
	return Stats{
		Rays:    r.rays.Load(),
		Hits:    r.hits.Load(),
		Elapsed: time.Duration(r.elapsed.Load()),
	}
}

// RaysPerSecond returns the throughput of the last Render.
func (s Stats) RaysPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Rays) / s.Elapsed.Seconds()
}
