package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-mirror-raytracer/pkg/renderer"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	scenePath := flag.String("scene", "scene.json", "Path to the scene JSON file")
	outputDir := flag.String("output", "renders", "Directory for rendered images")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Mirror Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output is saved to <output>/render_<timestamp>_b<bounces>_h<humans>_m<mirrors>_<WxH>.png")
		return
	}

	fmt.Println("Starting Mirror Raytracer...")

	cfg, err := scene.LoadConfig(*scenePath)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	sceneObj, err := scene.NewScene(cfg)
	if err != nil {
		fmt.Printf("Invalid scene: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %dx%d image with %d max bounces...\n",
		cfg.Render.Width, cfg.Render.Height, maxBouncesFor(cfg))

	startTime := time.Now()
	img := renderer.NewRenderer(sceneObj, cfg).Render()
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v\n", renderTime)

	filename := filepath.Join(*outputDir, outputFilename(cfg, time.Now()))
	if err := savePNG(filename, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved %s\n", filename)
}

// maxBouncesFor reports the effective bounce limit for the config
func maxBouncesFor(cfg *scene.Config) int {
	if cfg.Render.MaxBounces > 0 {
		return cfg.Render.MaxBounces
	}
	return scene.DefaultMaxBounces
}

// outputFilename builds a descriptive name encoding the render settings
// and scene composition
func outputFilename(cfg *scene.Config, now time.Time) string {
	return fmt.Sprintf("render_%s_b%d_h%d_m%d_%dx%d.png",
		now.Format("20060102_150405"),
		maxBouncesFor(cfg),
		len(cfg.HumanModels),
		len(cfg.Mirrors),
		cfg.Render.Width,
		cfg.Render.Height,
	)
}

// savePNG writes the rendered image to disk
func savePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
