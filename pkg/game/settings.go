package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-billboards/pkg/actor"
	"github.com/leterax/go-billboards/pkg/camera"
	"github.com/leterax/go-billboards/pkg/config"
	"github.com/leterax/go-billboards/pkg/input"
)

// KeyResolver maps a configured key name to a key code
type KeyResolver func(name string) (input.Key, error)

// ParseMode converts a config mode name to an orientation mode
func ParseMode(name string) (camera.OrientationMode, error) {
	switch name {
	case config.ModeKeyboard:
		return camera.KeyboardOnly, nil
	case config.ModeMouse:
		return camera.MouseLook, nil
	default:
		return 0, fmt.Errorf("%w: %q", config.ErrUnknownMode, name)
	}
}

// FromSettings builds the camera, controls and billboards described by s
func FromSettings(s config.Settings, resolve KeyResolver) (*World, error) {
	mode, err := ParseMode(s.Camera.Mode)
	if err != nil {
		return nil, err
	}

	cam := camera.New(s.Camera.Position, s.Camera.Target, s.Camera.Up, mode)
	cam.SetSpeed(s.Camera.Speed)
	cam.SetSensitivity(s.Camera.Sensitivity)
	cam.SetFreeFly(s.Camera.FreeFly)
	cam.SetProjection(s.Camera.FOV, float32(s.Window.Width)/float32(s.Window.Height), s.Camera.Near, s.Camera.Far)
	if mode == camera.MouseLook {
		// Start mouse-look from the configured direction instead of -Z
		cam.AimAt(s.Camera.Target)
	}

	controls, err := newControls(s.Bindings, resolve)
	if err != nil {
		return nil, err
	}

	w := NewWorld(cam, controls)
	for _, as := range s.Actors {
		a := actor.New(as.Label)
		a.MoveTo(as.Position)

		scale := mgl32.Vec3(as.Scale)
		if scale == (mgl32.Vec3{}) {
			scale = mgl32.Vec3{1, 1, 1}
		}
		tint := mgl32.Vec4(as.Tint)
		if tint == (mgl32.Vec4{}) {
			tint = mgl32.Vec4{1, 1, 1, 1}
		}

		w.Add(&a, scale, tint)
	}

	return w, nil
}

// newControls resolves every key name up front so the binding callback
// itself cannot fail
func newControls(b config.Bindings, resolve KeyResolver) (*input.Controls, error) {
	names := []struct {
		action string
		keys   []string
	}{
		{"forward", b.Forward},
		{"back", b.Back},
		{"left", b.Left},
		{"right", b.Right},
	}

	resolved := make([][]input.Key, len(names))
	for i, n := range names {
		if len(n.keys) > input.MaxKeys {
			return nil, fmt.Errorf("failed to bind %s: %w", n.action, input.ErrTooManyKeys)
		}
		for _, name := range n.keys {
			key, err := resolve(name)
			if err != nil {
				return nil, fmt.Errorf("failed to bind %s: %w", n.action, err)
			}
			resolved[i] = append(resolved[i], key)
		}
	}

	var controls input.Controls
	controls.Init(func(c *input.Controls) {
		// Lengths were checked above
		_ = c.Forward.Bind(resolved[0]...)
		_ = c.Back.Bind(resolved[1]...)
		_ = c.Left.Bind(resolved[2]...)
		_ = c.Right.Bind(resolved[3]...)
	})

	return &controls, nil
}
