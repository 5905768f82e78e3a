// Package config holds the demo settings: window, camera, key bindings and
// the billboards to place. Settings start from Default and can be overridden
// by a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnknownMode is returned for a camera mode other than "keyboard" or "mouse"
var ErrUnknownMode = errors.New("unknown camera mode")

// Camera mode names
const (
	ModeKeyboard = "keyboard"
	ModeMouse    = "mouse"
)

// MaxKeysPerAction mirrors the input package limit
const MaxKeysPerAction = 3

// Settings is the full demo configuration
type Settings struct {
	Window   WindowSettings `yaml:"window"`
	Camera   CameraSettings `yaml:"camera"`
	Bindings Bindings       `yaml:"bindings"`
	Actors   []ActorSpec    `yaml:"actors"`
}

// WindowSettings configures the GLFW window
type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// CameraSettings configures the initial camera pose and behavior
type CameraSettings struct {
	Position    [3]float32 `yaml:"position"`
	Target      [3]float32 `yaml:"target"`
	Up          [3]float32 `yaml:"up"`
	Mode        string     `yaml:"mode"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	FreeFly     bool       `yaml:"free_fly"`
	FOV         float32    `yaml:"fov"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
}

// Bindings lists key names per movement action
type Bindings struct {
	Forward []string `yaml:"forward"`
	Back    []string `yaml:"back"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
}

// ActorSpec describes one billboard
type ActorSpec struct {
	Label    string     `yaml:"label"`
	Position [3]float32 `yaml:"position"`
	Scale    [3]float32 `yaml:"scale"`
	Tint     [4]float32 `yaml:"tint"`
}

// Default returns the stock demo: a camera three units back from the origin
// and a handful of billboards around it
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  800,
			Height: 600,
			Title:  "Go-Billboards",
			VSync:  true,
		},
		Camera: CameraSettings{
			Position:    [3]float32{0, 0, 3},
			Target:      [3]float32{0, 0, 0},
			Up:          [3]float32{0, 1, 0},
			Mode:        ModeMouse,
			Speed:       5,
			Sensitivity: 0.1,
			FreeFly:     true,
			FOV:         45,
			Near:        0.1,
			Far:         100,
		},
		Bindings: Bindings{
			Forward: []string{"W", "UP"},
			Back:    []string{"S", "DOWN"},
			Left:    []string{"A", "LEFT"},
			Right:   []string{"D", "RIGHT"},
		},
		Actors: []ActorSpec{
			{Label: "guy", Position: [3]float32{0, 0, 0}, Scale: [3]float32{1, 1, 1}, Tint: [4]float32{1, 1, 1, 1}},
			{Label: "red", Position: [3]float32{-2, 0, -2}, Scale: [3]float32{1, 1.5, 1}, Tint: [4]float32{1, 0.3, 0.3, 1}},
			{Label: "blue", Position: [3]float32{2.5, 0, -4}, Scale: [3]float32{0.75, 0.75, 0.75}, Tint: [4]float32{0.3, 0.4, 1, 1}},
		},
	}
}

// Load reads settings from a YAML file on top of Default. Fields missing from
// the file keep their default values. An empty path returns Default.
func Load(path string) (Settings, error) {
	settings := Default()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return settings, nil
}

// Validate checks values the renderer cannot recover from
func (s Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}

	switch s.Camera.Mode {
	case ModeKeyboard, ModeMouse:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, s.Camera.Mode)
	}

	if s.Camera.Speed < 0 {
		return fmt.Errorf("camera speed must not be negative, got %v", s.Camera.Speed)
	}
	if s.Camera.Up == ([3]float32{}) {
		return errors.New("camera up vector must not be zero")
	}

	actions := map[string][]string{
		"forward": s.Bindings.Forward,
		"back":    s.Bindings.Back,
		"left":    s.Bindings.Left,
		"right":   s.Bindings.Right,
	}
	for name, keys := range actions {
		if len(keys) > MaxKeysPerAction {
			return fmt.Errorf("action %s has %d keys, max %d", name, len(keys), MaxKeysPerAction)
		}
	}

	return nil
}
