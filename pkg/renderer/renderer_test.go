package renderer

import (
	"testing"

	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

func testSceneConfig() *scene.Config {
	return &scene.Config{
		Camera: &scene.CameraConfig{
			Position: []float64{0, 3, 4},
			LookAt:   []float64{0, 3, 0},
			FOV:      60,
		},
		Room: &scene.RoomConfig{
			Center:       []float64{0, 3, 0},
			Size:         []float64{10, 6, 10},
			FloorColor:   []float64{0.4, 0.35, 0.3},
			CeilingColor: []float64{0.9, 0.9, 0.9},
			WallColor:    []float64{0.7, 0.7, 0.7},
		},
		Light: &scene.LightConfig{
			Position:  []float64{0, 5, 0},
			Radius:    0.3,
			Intensity: []float64{10, 10, 10},
		},
		Render: &scene.RenderConfig{Width: 16, Height: 12, MaxBounces: 4},
	}
}

func buildTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	cfg := testSceneConfig()
	s, err := scene.NewScene(cfg)
	if err != nil {
		t.Fatalf("Unexpected scene error: %v", err)
	}
	return NewRenderer(s, cfg)
}

func TestRenderer_ImageDimensions(t *testing.T) {
	r := buildTestRenderer(t)
	img := r.Render()

	bounds := img.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 12 {
		t.Errorf("Expected 16x12 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_PixelsAreOpaqueAndLit(t *testing.T) {
	r := buildTestRenderer(t)
	img := r.Render()

	// The camera sits inside the room, so every pixel sees at least an
	// ambient-lit surface
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			c := img.RGBAAt(x, y)
			if c.A != 255 {
				t.Fatalf("Expected opaque pixel at (%d,%d), got alpha %d", x, y, c.A)
			}
			if c.R == 0 && c.G == 0 && c.B == 0 {
				t.Fatalf("Expected lit pixel at (%d,%d), got black", x, y)
			}
		}
	}
}

func TestRenderer_DeterministicAcrossWorkerCounts(t *testing.T) {
	serial := buildTestRenderer(t)
	serial.SetNumWorkers(1)
	parallel := buildTestRenderer(t)
	parallel.SetNumWorkers(4)

	a := serial.Render()
	b := parallel.Render()

	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("Images diverge at byte %d: %d vs %d", i, a.Pix[i], b.Pix[i])
		}
	}
}

func TestNewRenderer_DefaultsMaxBounces(t *testing.T) {
	cfg := testSceneConfig()
	cfg.Render.MaxBounces = 0
	s, err := scene.NewScene(cfg)
	if err != nil {
		t.Fatalf("Unexpected scene error: %v", err)
	}

	r := NewRenderer(s, cfg)
	if r.maxBounces != scene.DefaultMaxBounces {
		t.Errorf("Expected default max bounces %d, got %d", scene.DefaultMaxBounces, r.maxBounces)
	}
}
