package render

import (
	_ "embed"
	"fmt"
	"log"
	"openglhelper"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-billboards/pkg/camera"
	"github.com/leterax/go-billboards/pkg/config"
	"github.com/leterax/go-billboards/pkg/game"
	"github.com/leterax/go-billboards/pkg/input"
)

var (
	//go:embed shaders/billboard.vert
	billboardVertexSource string
	//go:embed shaders/billboard.frag
	billboardFragmentSource string
)

// maxDeltaTime caps a frame step after stalls (window drags, breakpoints)
const maxDeltaTime = 0.25

// Renderer handles rendering logic and game loop
type Renderer struct {
	window *openglhelper.Window
	world  *game.World

	// Input gathered by callbacks during PollEvents
	keys  *input.State
	mouse *input.MouseTracker

	shader *openglhelper.Shader
	quad   *openglhelper.Mesh

	cameraSettings config.CameraSettings

	// Timing
	lastFrameTime float64
	deltaTime     float32
	isClosed      bool
}

// NewRenderer creates the window, the world described by settings and the
// GL resources needed to draw billboards
func NewRenderer(settings config.Settings) (*Renderer, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	window, err := openglhelper.NewWindow(settings.Window.Width, settings.Window.Height, settings.Window.Title, settings.Window.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	world, err := game.FromSettings(settings, KeyByName)
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to build world: %w", err)
	}

	renderer := &Renderer{
		window:         window,
		world:          world,
		keys:           input.NewState(),
		mouse:          input.NewMouseTracker(),
		cameraSettings: settings.Camera,
	}

	// Match the projection to the real framebuffer, which may differ from the requested size
	renderer.updateProjection()

	// Set up callbacks
	window.GLFWWindow().SetKeyCallback(renderer.keyCallback)
	window.GLFWWindow().SetCursorPosCallback(renderer.cursorPosCallback)
	window.GLFWWindow().SetFocusCallback(renderer.focusCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(renderer.framebufferSizeCallback)

	shader, err := openglhelper.NewShader(billboardVertexSource, billboardFragmentSource)
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}
	renderer.shader = shader
	renderer.quad = openglhelper.NewQuad()

	if world.Camera().Mode() == camera.MouseLook {
		window.SetMouseCaptured(true)
	}

	log.Printf("Created %d billboards, camera mode %s", len(world.Actors()), world.Camera().Mode())

	return renderer, nil
}

// World returns the world being rendered
func (r *Renderer) World() *game.World {
	return r.world
}

func (r *Renderer) updateProjection() {
	r.world.Camera().SetProjection(r.cameraSettings.FOV, r.window.AspectRatio(), r.cameraSettings.Near, r.cameraSettings.Far)
}

// frameDelta returns the seconds since the previous frame
func (r *Renderer) frameDelta() float32 {
	currentTime := glfw.GetTime()
	delta := float32(currentTime - r.lastFrameTime)
	r.lastFrameTime = currentTime

	if delta < 0 {
		return 0
	}
	if delta > maxDeltaTime {
		return maxDeltaTime
	}
	return delta
}

// render draws every billboard with the current matrices
func (r *Renderer) render() {
	r.window.Clear(ClearColor)

	r.shader.Use()
	r.shader.SetMat4("u_view", r.world.View())
	r.shader.SetMat4("u_projection", r.world.Projection())

	for _, d := range r.world.Draws() {
		r.shader.SetMat4("u_model", d.Model)
		r.shader.SetVec4("u_tint", d.Tint)
		r.quad.Draw()
	}
}

// Run starts the main rendering loop
func (r *Renderer) Run() {
	r.lastFrameTime = glfw.GetTime()

	for !r.window.ShouldClose() {
		// Input first: callbacks update key state and mouse motion
		r.window.PollEvents()

		r.deltaTime = r.frameDelta()

		var dx, dy float32
		if r.window.IsMouseCaptured() {
			dx, dy = r.mouse.Take()
		}

		// Camera, then billboards facing the camera's new position
		r.world.Step(r.keys, r.deltaTime, dx, dy)

		r.render()
		r.window.SwapBuffers()
	}

	r.Cleanup()
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	if r.isClosed {
		return
	}
	r.isClosed = true

	if r.quad != nil {
		r.quad.Delete()
	}
	if r.shader != nil {
		r.shader.Delete()
	}

	r.window.Close()
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		r.keys.Press(input.Key(key))
	case glfw.Release:
		r.keys.Release(input.Key(key))
	}

	if action != glfw.Press {
		return
	}

	switch key {
	case KeyEscape:
		r.window.SetShouldClose(true)
	case KeyToggleCapture:
		r.window.ToggleMouseCaptured()
		r.mouse.Reset()
	}
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if r.window.IsMouseCaptured() {
		r.mouse.Delta(xpos, ypos)
	}
}

// focusCallback drops held keys so nothing stays pressed after alt-tab
func (r *Renderer) focusCallback(_ *glfw.Window, focused bool) {
	if !focused {
		r.keys.Reset()
		r.mouse.Reset()
	}
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
	r.updateProjection()
}
