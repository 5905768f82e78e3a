package game

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-billboards/pkg/camera"
	"github.com/leterax/go-billboards/pkg/config"
	"github.com/leterax/go-billboards/pkg/input"
)

var errNoKey = errors.New("no such key")

// fakeKeys numbers key names in order of first use
func fakeKeys() (KeyResolver, map[string]input.Key) {
	known := map[string]input.Key{}
	return func(name string) (input.Key, error) {
		if name == "BOGUS" {
			return 0, fmt.Errorf("%w: %s", errNoKey, name)
		}
		if k, ok := known[name]; ok {
			return k, nil
		}
		k := input.Key(len(known) + 1)
		known[name] = k
		return k, nil
	}, known
}

func TestFromSettingsDefault(t *testing.T) {
	resolve, known := fakeKeys()
	s := config.Default()

	w, err := FromSettings(s, resolve)
	if err != nil {
		t.Fatalf("FromSettings: %v", err)
	}

	cam := w.Camera()
	if cam.Mode() != camera.MouseLook {
		t.Fatalf("mode = %v", cam.Mode())
	}
	// Mouse-look starts aimed at the configured target
	if !cam.Front().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, eps) {
		t.Fatalf("front = %v", cam.Front())
	}
	if len(w.Actors()) != len(s.Actors) {
		t.Fatalf("got %d actors, want %d", len(w.Actors()), len(s.Actors))
	}

	state := input.NewState()
	state.Press(known["UP"])
	w.Step(state, 1, 0, 0)
	if !w.Controls().Forward.Held {
		t.Fatal("UP should drive forward")
	}
	if !cam.Position().ApproxEqualThreshold(mgl32.Vec3{0, 0, 3 - s.Camera.Speed}, eps) {
		t.Fatalf("camera at %v", cam.Position())
	}
}

func TestFromSettingsKeyboardMode(t *testing.T) {
	resolve, _ := fakeKeys()
	s := config.Default()
	s.Camera.Mode = config.ModeKeyboard
	s.Camera.Target = [3]float32{3, 0, 3}
	s.Camera.FreeFly = false

	w, err := FromSettings(s, resolve)
	if err != nil {
		t.Fatalf("FromSettings: %v", err)
	}

	cam := w.Camera()
	if cam.Mode() != camera.KeyboardOnly || cam.FreeFly() {
		t.Fatalf("mode=%v freeFly=%v", cam.Mode(), cam.FreeFly())
	}
	if cam.Target() != (mgl32.Vec3{3, 0, 3}) {
		t.Fatalf("target = %v", cam.Target())
	}
}

func TestFromSettingsDefaultsScaleAndTint(t *testing.T) {
	resolve, _ := fakeKeys()
	s := config.Default()
	s.Actors = []config.ActorSpec{{Label: "bare", Position: [3]float32{1, 0, 1}}}

	w, err := FromSettings(s, resolve)
	if err != nil {
		t.Fatalf("FromSettings: %v", err)
	}
	w.Step(input.NewState(), 0, 0, 0)

	if got := w.Actors()[0].Scale; got != (mgl32.Vec3{1, 1, 1}) {
		t.Fatalf("scale = %v", got)
	}
	if got := w.Draws()[0].Tint; got != (mgl32.Vec4{1, 1, 1, 1}) {
		t.Fatalf("tint = %v", got)
	}
}

func TestFromSettingsErrors(t *testing.T) {
	resolve, _ := fakeKeys()

	badMode := config.Default()
	badMode.Camera.Mode = "orbit"
	if _, err := FromSettings(badMode, resolve); !errors.Is(err, config.ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}

	badKey := config.Default()
	badKey.Bindings.Left = []string{"A", "BOGUS"}
	if _, err := FromSettings(badKey, resolve); !errors.Is(err, errNoKey) {
		t.Fatalf("expected errNoKey, got %v", err)
	}

	tooMany := config.Default()
	tooMany.Bindings.Right = []string{"D", "RIGHT", "L", "K"}
	if _, err := FromSettings(tooMany, resolve); !errors.Is(err, input.ErrTooManyKeys) {
		t.Fatalf("expected ErrTooManyKeys, got %v", err)
	}
}
