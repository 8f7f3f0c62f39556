package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-mirror-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	scenePath := flag.String("scene", "scene.json", "Path to the scene JSON file")
	flag.Parse()

	webServer := server.NewServer(*port, *scenePath)

	log.Printf("Mirror Raytracer Web Server")
	log.Printf("Visit http://localhost:%d/api/render to render %s", *port, *scenePath)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
