package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-billboards/pkg/input"
)

// ErrUnknownKey is returned for a key name missing from the key table
var ErrUnknownKey = errors.New("unknown key name")

// Keys handled by the renderer itself rather than bound through the config
const (
	KeyEscape        = glfw.KeyEscape
	KeyToggleCapture = glfw.KeyC
)

// Default background
var ClearColor = mgl32.Vec4{0.2, 0.3, 0.3, 1.0}

// keyNames maps config key names to GLFW keys
var keyNames = map[string]glfw.Key{
	"SPACE":         glfw.KeySpace,
	"UP":            glfw.KeyUp,
	"DOWN":          glfw.KeyDown,
	"LEFT":          glfw.KeyLeft,
	"RIGHT":         glfw.KeyRight,
	"LEFT_SHIFT":    glfw.KeyLeftShift,
	"RIGHT_SHIFT":   glfw.KeyRightShift,
	"LEFT_CONTROL":  glfw.KeyLeftControl,
	"RIGHT_CONTROL": glfw.KeyRightControl,
	"TAB":           glfw.KeyTab,
	"ENTER":         glfw.KeyEnter,
	"KP_8":          glfw.KeyKP8,
	"KP_4":          glfw.KeyKP4,
	"KP_5":          glfw.KeyKP5,
	"KP_6":          glfw.KeyKP6,
	"KP_2":          glfw.KeyKP2,
}

func init() {
	// Letters and digits share their ASCII codes with GLFW
	for c := 'A'; c <= 'Z'; c++ {
		keyNames[string(c)] = glfw.Key(c)
	}
	for c := '0'; c <= '9'; c++ {
		keyNames[string(c)] = glfw.Key(c)
	}
}

// KeyByName returns the input key for a config key name such as "W" or "LEFT"
func KeyByName(name string) (input.Key, error) {
	key, ok := keyNames[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return input.Key(key), nil
}
