package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/leterax/go-billboards/pkg/config"
	"github.com/leterax/go-billboards/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	log.Println("Starting Go-Billboards...")

	// Parse command line flags
	configPath := flag.String("config", "", "YAML settings file (empty for built-in defaults)")
	width := flag.Int("width", 800, "Window width")
	height := flag.Int("height", 600, "Window height")
	mode := flag.String("mode", config.ModeMouse, "Camera mode: keyboard or mouse")
	freeFly := flag.Bool("freefly", true, "Allow the camera to move vertically")
	speed := flag.Float64("speed", 5, "Camera speed in units per second")
	vsync := flag.Bool("vsync", true, "Enable vsync")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	// Flags given explicitly win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			settings.Window.Width = *width
		case "height":
			settings.Window.Height = *height
		case "mode":
			settings.Camera.Mode = *mode
		case "freefly":
			settings.Camera.FreeFly = *freeFly
		case "speed":
			settings.Camera.Speed = float32(*speed)
		case "vsync":
			settings.Window.VSync = *vsync
		}
	})

	renderer, err := render.NewRenderer(settings)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	log.Println("WASD/arrows to move, C toggles mouse capture, Esc quits")
	renderer.Run()
}
