package server

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const testSceneJSON = `{
	"camera": {"position": [0, 3, 4], "look_at": [0, 3, 0], "fov": 60},
	"room": {
		"center": [0, 3, 0], "size": [10, 6, 10],
		"floor_color": [0.4, 0.35, 0.3],
		"ceiling_color": [0.9, 0.9, 0.9],
		"wall_color": [0.7, 0.7, 0.7]
	},
	"light": {"position": [0, 5, 0], "radius": 0.3, "intensity": [10, 10, 10]},
	"render": {"width": 16, "height": 12, "max_bounces": 4}
}`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	scenePath := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(scenePath, []byte(testSceneJSON), 0644); err != nil {
		t.Fatalf("Failed to write test scene: %v", err)
	}
	return NewServer(8080, scenePath)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	s.handleHealth(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestHandleSceneConfig(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	s.handleSceneConfig(w, httptest.NewRequest(http.MethodGet, "/api/scene-config", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var cfg struct {
		Render struct {
			Width  int `json:"width"`
			Height int `json:"height"`
		} `json:"render"`
	}
	if err := json.NewDecoder(w.Body).Decode(&cfg); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if cfg.Render.Width != 16 || cfg.Render.Height != 12 {
		t.Errorf("Expected 16x12 render config, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}
}

func TestHandleSceneConfig_MissingFile(t *testing.T) {
	s := NewServer(8080, "does-not-exist.json")

	w := httptest.NewRecorder()
	s.handleSceneConfig(w, httptest.NewRequest(http.MethodGet, "/api/scene-config", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
}

func TestHandleRender(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	s.handleRender(w, httptest.NewRequest(http.MethodGet, "/api/render", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png content type, got %q", ct)
	}

	img, err := png.Decode(w.Body)
	if err != nil {
		t.Fatalf("Failed to decode PNG response: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 12 {
		t.Errorf("Expected 16x12 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestHandleRender_DimensionOverrides(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	s.handleRender(w, httptest.NewRequest(http.MethodGet, "/api/render?width=8&height=6&maxBounces=2", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	img, err := png.Decode(w.Body)
	if err != nil {
		t.Fatalf("Failed to decode PNG response: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 6 {
		t.Errorf("Expected 8x6 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestHandleRender_InvalidParams(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name  string
		query string
	}{
		{"non-numeric width", "?width=abc"},
		{"width over limit", "?width=5000"},
		{"zero maxBounces", "?maxBounces=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			s.handleRender(w, httptest.NewRequest(http.MethodGet, "/api/render"+tt.query, nil))
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", w.Code)
			}
		})
	}
}
