package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-mirror-raytracer/pkg/renderer"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// Server handles web requests for the mirror raytracer
type Server struct {
	port      int
	scenePath string
}

// NewServer creates a web server serving renders of the given scene file
func NewServer(port int, scenePath string) *Server {
	return &Server{port: port, scenePath: scenePath}
}

// Start registers the handlers and blocks serving HTTP
func (s *Server) Start() error {
	http.Handle("/", http.FileServer(http.Dir("static/")))

	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/api/health", s.handleHealth)
	http.HandleFunc("/api/scene-config", s.handleSceneConfig)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleSceneConfig returns the parsed scene configuration as JSON
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	cfg, err := scene.LoadConfig(s.scenePath)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	if err := cfg.Validate(); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(cfg)
}

// handleRender renders the configured scene and responds with a PNG.
// Query parameters width, height and maxBounces override the scene file.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	cfg, err := scene.LoadConfig(s.scenePath)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to load scene: %v", err), http.StatusInternalServerError)
		return
	}

	if err := s.applyRenderOverrides(cfg, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sceneObj, err := scene.NewScene(cfg)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid scene: %v", err), http.StatusInternalServerError)
		return
	}

	if cfg.Render.Width*cfg.Render.Height > 800*600 {
		log.Printf("Render warning: large image may render slowly")
	}

	startTime := time.Now()
	img := renderer.NewRenderer(sceneObj, cfg).Render()
	log.Printf("Rendered %dx%d in %v", cfg.Render.Width, cfg.Render.Height, time.Since(startTime))

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if err := png.Encode(w, img); err != nil {
		log.Printf("Error encoding PNG response: %v", err)
	}
}

// applyRenderOverrides merges validated query parameters into the config
func (s *Server) applyRenderOverrides(cfg *scene.Config, values url.Values) error {
	var err error
	if cfg.Render.Width, err = parseIntParam(values, "width", cfg.Render.Width, 1, 2000); err != nil {
		return err
	}
	if cfg.Render.Height, err = parseIntParam(values, "height", cfg.Render.Height, 1, 2000); err != nil {
		return err
	}
	if cfg.Render.MaxBounces, err = parseIntParam(values, "maxBounces", cfg.Render.MaxBounces, 1, 100); err != nil {
		return err
	}
	return nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
