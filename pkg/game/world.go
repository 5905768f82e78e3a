package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-billboards/pkg/actor"
	"github.com/leterax/go-billboards/pkg/camera"
	"github.com/leterax/go-billboards/pkg/input"
)

// World holds the camera, the controls driving it and the flat list of
// billboards. The frame loop owns it and steps it once per frame.
type World struct {
	camera   *camera.Camera
	controls *input.Controls

	actors []*actor.Actor
	scales []mgl32.Vec3
	tints  []mgl32.Vec4
}

// Draw is everything the renderer needs for one billboard
type Draw struct {
	Label string
	Model mgl32.Mat4
	Tint  mgl32.Vec4
}

// NewWorld creates an empty world around an existing camera and controls
func NewWorld(cam *camera.Camera, controls *input.Controls) *World {
	return &World{
		camera:   cam,
		controls: controls,
	}
}

// Add places a billboard in the world. scale is applied on every LookAt.
func (w *World) Add(a *actor.Actor, scale mgl32.Vec3, tint mgl32.Vec4) {
	w.actors = append(w.actors, a)
	w.scales = append(w.scales, scale)
	w.tints = append(w.tints, tint)
}

// Step advances one frame. The order matters: the camera moves first so the
// billboards turn towards where it is now, not where it was last frame.
func (w *World) Step(keys input.KeyState, deltaTime, mouseDX, mouseDY float32) {
	w.controls.Refresh(keys)

	// Camera (view matrix is rebuilt by each call)
	w.camera.HandleMovementInput(w.controls, keys, deltaTime)
	w.camera.HandleMouseLook(mouseDX, mouseDY)

	// Billboards
	actor.UpdateBatch(w.actors)
	eye := w.camera.Position()
	for i, a := range w.actors {
		a.LookAt(eye, w.scales[i])
	}
}

// Draws returns one entry per billboard in insertion order
func (w *World) Draws() []Draw {
	draws := make([]Draw, len(w.actors))
	for i, a := range w.actors {
		draws[i] = Draw{
			Label: a.Label,
			Model: a.Model,
			Tint:  w.tints[i],
		}
	}
	return draws
}

// Actors returns the billboards in insertion order
func (w *World) Actors() []*actor.Actor {
	return w.actors
}

// Camera returns the world's camera
func (w *World) Camera() *camera.Camera {
	return w.camera
}

// Controls returns the controls driving the camera
func (w *World) Controls() *input.Controls {
	return w.controls
}

// View returns the camera's view matrix
func (w *World) View() mgl32.Mat4 {
	return w.camera.ViewMatrix()
}

// Projection returns the camera's projection matrix
func (w *World) Projection() mgl32.Mat4 {
	return w.camera.ProjectionMatrix()
}
