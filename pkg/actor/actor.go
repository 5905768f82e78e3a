// Package actor implements billboard-style world objects that turn to face a
// point (usually the camera) every frame.
package actor

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// State is a coarse behavior state. It is reserved for future behavior logic
// and is not read by anything in this package.
type State int

const (
	Idle State = iota
	Attack
	Move
)

// Actor is a billboard placed in the world
type Actor struct {
	Label    string
	Position mgl32.Vec3
	Angle    float32 // radians about +Y
	State    State
	Scale    mgl32.Vec3
	Model    mgl32.Mat4

	// set once a translation has been applied and must be kept in Model
	updated bool
}

// New creates an actor at the origin with an identity model matrix
func New(label string) Actor {
	return Actor{
		Label: label,
		State: Idle,
		Scale: mgl32.Vec3{1, 1, 1},
		Model: mgl32.Ident4(),
	}
}

// ComposeModelMatrix builds Translate(position) * Scale(scale) * RotateY(angleY).
// Translation has to come first so the billboard scales and turns around its
// own position instead of around the world origin.
func ComposeModelMatrix(position, scale mgl32.Vec3, angleY float32) mgl32.Mat4 {
	model := mgl32.Ident4()
	model = model.Mul4(mgl32.Translate3D(position.X(), position.Y(), position.Z()))
	model = model.Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
	model = model.Mul4(mgl32.HomogRotate3DY(angleY))
	return model
}

// Updated reports whether the actor has a translation pending or applied
func (a *Actor) Updated() bool {
	return a.updated
}

// MoveTo places the actor at position; the next Update picks it up
func (a *Actor) MoveTo(position mgl32.Vec3) {
	a.Position = position
	a.updated = true
}

// Update rebuilds the model matrix from the actor's position, scale and angle
// once a translation has been applied. It is a no-op for a fresh actor.
func (a *Actor) Update() {
	if !a.updated {
		return
	}
	a.Model = ComposeModelMatrix(a.Position, a.Scale, a.Angle)
}

// UpdateBatch updates every actor in order. Nil entries are skipped.
func UpdateBatch(actors []*Actor) {
	if len(actors) == 0 || actors[0] == nil {
		return
	}

	for _, a := range actors {
		if a == nil {
			continue
		}
		a.Update()
	}
}

// LookAt turns the actor about +Y to face target and rebuilds its model matrix
// with the given scale. The angle is atan2 of actor-minus-target, so a target
// at the actor's own position yields 0.
func (a *Actor) LookAt(target, scale mgl32.Vec3) {
	dx := a.Position.X() - target.X()
	dz := a.Position.Z() - target.Z()

	a.Angle = math32.Atan2(dx, dz)
	a.Scale = scale
	a.updated = true
	a.Model = ComposeModelMatrix(a.Position, a.Scale, a.Angle)
}
