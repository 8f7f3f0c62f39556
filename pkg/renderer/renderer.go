package renderer

import (
	"image"
	"image/color"
	"runtime"
	"sync"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// Renderer renders a scene into an image, tracing pixels in parallel
type Renderer struct {
	scene      *scene.Scene
	camera     *Camera
	width      int
	height     int
	maxBounces int
	numWorkers int
}

// NewRenderer creates a renderer for a validated scene configuration
func NewRenderer(s *scene.Scene, cfg *scene.Config) *Renderer {
	maxBounces := cfg.Render.MaxBounces
	if maxBounces <= 0 {
		maxBounces = scene.DefaultMaxBounces
	}

	camera := NewCamera(
		vec3From(cfg.Camera.Position),
		vec3From(cfg.Camera.LookAt),
		cfg.Camera.FOV,
		cfg.Render.Width,
		cfg.Render.Height,
	)

	return &Renderer{
		scene:      s,
		camera:     camera,
		width:      cfg.Render.Width,
		height:     cfg.Render.Height,
		maxBounces: maxBounces,
		numWorkers: runtime.NumCPU(),
	}
}

// SetNumWorkers overrides the worker count (defaults to runtime.NumCPU)
func (r *Renderer) SetNumWorkers(n int) {
	if n > 0 {
		r.numWorkers = n
	}
}

// Render traces every pixel and returns the tone-mapped image.
// Rows are distributed across workers; each worker writes disjoint pixels,
// so the shared image needs no locking.
func (r *Renderer) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))

	rows := make(chan int, r.height)
	var wg sync.WaitGroup

	for w := 0; w < r.numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				r.renderRow(img, y)
			}
		}()
	}

	for y := 0; y < r.height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return img
}

func (r *Renderer) renderRow(img *image.RGBA, y int) {
	for x := 0; x < r.width; x++ {
		ray := r.camera.GetRay(x, y)
		radiance := r.scene.Trace(ray.Origin, ray.Direction, r.maxBounces, 0, 1.0)
		img.SetRGBA(x, y, encodeColor(radiance))
	}
}

// encodeColor converts HDR radiance to a display pixel
func encodeColor(radiance core.Vec3) color.RGBA {
	c := GammaEncode(ToneMapReinhard(radiance))
	return color.RGBA{
		R: uint8(c.X * 255),
		G: uint8(c.Y * 255),
		B: uint8(c.Z * 255),
		A: 255,
	}
}

// vec3From converts a validated 3-component config slice
func vec3From(v []float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
