// Package camera implements the free-fly viewer camera.
//
// Conventions: right-handed world, +Y up, the camera faces -Z by default
// (yaw -90°, pitch 0°). Angles are stored in degrees.
package camera

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-billboards/pkg/input"
)

// OrientationMode selects how the camera's look direction is driven
type OrientationMode int

const (
	// KeyboardOnly keeps the look direction fixed and translates target with position
	KeyboardOnly OrientationMode = iota
	// MouseLook derives the look direction from accumulated yaw and pitch
	MouseLook
)

func (m OrientationMode) String() string {
	switch m {
	case KeyboardOnly:
		return "keyboard"
	case MouseLook:
		return "mouse"
	default:
		return fmt.Sprintf("OrientationMode(%d)", int(m))
	}
}

// Camera implements a 3D camera for navigation
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3 // world up, unit length
	front    mgl32.Vec3

	// Euler angles
	yaw   float32
	pitch float32

	// Camera options
	speed       float32
	sensitivity float32
	freeFly     bool
	mode        OrientationMode

	view       mgl32.Mat4
	projection mgl32.Mat4
}

// New creates a camera at position looking at target
func New(position, target, up mgl32.Vec3, mode OrientationMode) *Camera {
	c := &Camera{
		position:    position,
		target:      target,
		up:          normalize(up),
		front:       mgl32.Vec3{0, 0, -1},
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		speed:       DefaultMoveSpeed,
		sensitivity: DefaultSensitivity,
		freeFly:     true,
		mode:        mode,
		projection:  mgl32.Perspective(mgl32.DegToRad(DefaultFOV), 800.0/600.0, DefaultNear, DefaultFar),
	}

	c.updateView()
	return c
}

// normalize returns v scaled to unit length, or v unchanged if it has zero length
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

func clamp(v, lo, hi float32) float32 {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

// updateView rebuilds the view matrix; every position/target change goes through here
func (c *Camera) updateView() {
	c.view = mgl32.LookAtV(c.position, c.target, c.up)
}

// updateFront recalculates front and target from the Euler angles
func (c *Camera) updateFront() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.front = normalize(front)
	c.target = c.position.Add(c.front)
}

// movementDirection sums the held movement actions into a unit vector, or the
// zero vector when nothing is held or the actions cancel out
func (c *Camera) movementDirection(controls *input.Controls, keys input.KeyState) mgl32.Vec3 {
	forward := normalize(c.target.Sub(c.position))
	right := normalize(forward.Cross(c.up))

	var movement mgl32.Vec3
	if input.IsActionActive(keys, controls.Forward) {
		movement = movement.Add(forward)
	}
	if input.IsActionActive(keys, controls.Back) {
		movement = movement.Sub(forward)
	}
	if input.IsActionActive(keys, controls.Left) {
		movement = movement.Sub(right)
	}
	if input.IsActionActive(keys, controls.Right) {
		movement = movement.Add(right)
	}

	// Diagonal movement must not be faster than moving along one axis
	return normalize(movement)
}

// HandleMovementInput moves position and target together according to the
// held movement actions. The look direction does not change.
func (c *Camera) HandleMovementInput(controls *input.Controls, keys input.KeyState, deltaTime float32) {
	delta := c.movementDirection(controls, keys).Mul(c.speed * deltaTime)

	if !c.freeFly {
		// Drop the component along world up to stay in the horizontal plane
		delta = delta.Sub(c.up.Mul(delta.Dot(c.up)))
	}

	c.position = c.position.Add(delta)
	c.target = c.target.Add(delta)
	c.updateView()
}

// HandleMouseLook applies one frame of pointer motion to yaw and pitch.
// It is ignored unless the camera was created in MouseLook mode.
func (c *Camera) HandleMouseLook(xDelta, yDelta float32) {
	if c.mode != MouseLook {
		return
	}

	xDelta = clamp(xDelta, -MaxMouseDelta, MaxMouseDelta)
	yDelta = clamp(yDelta, -MaxMouseDelta, MaxMouseDelta)

	c.yaw += xDelta * c.sensitivity
	// Reversed: screen y grows downward
	c.pitch -= yDelta * c.sensitivity

	// Constrain pitch to avoid flipping over the poles
	c.pitch = clamp(c.pitch, MinPitch, MaxPitch)

	c.updateFront()
	c.updateView()
}

// AimAt points the camera at target and derives yaw and pitch from the new
// direction. Does nothing if target coincides with the camera position.
func (c *Camera) AimAt(target mgl32.Vec3) {
	direction := target.Sub(c.position)
	if direction.Len() == 0 {
		return
	}
	direction = normalize(direction)

	c.yaw = mgl32.RadToDeg(math32.Atan2(direction.Z(), direction.X()))
	c.pitch = clamp(mgl32.RadToDeg(math32.Asin(direction.Y())), MinPitch, MaxPitch)

	if c.mode == MouseLook {
		c.updateFront()
	} else {
		c.front = direction
		c.target = target
	}
	c.updateView()
}

// SetPosition moves the camera without changing where it looks
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.target = c.target.Add(pos.Sub(c.position))
	c.position = pos
	c.updateView()
}

// SetProjection replaces the projection matrix
func (c *Camera) SetProjection(fovDegrees, aspect, near, far float32) {
	c.projection = mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, near, far)
}

// SetSpeed sets the movement speed in units per second
func (c *Camera) SetSpeed(speed float32) {
	c.speed = speed
}

// SetSensitivity sets the mouse-look sensitivity in degrees per pixel
func (c *Camera) SetSensitivity(sensitivity float32) {
	c.sensitivity = sensitivity
}

// SetFreeFly allows or forbids movement along the up axis
func (c *Camera) SetFreeFly(freeFly bool) {
	c.freeFly = freeFly
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return c.view
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// Target returns the point the camera looks at
func (c *Camera) Target() mgl32.Vec3 {
	return c.target
}

// Front returns the camera's front direction vector
func (c *Camera) Front() mgl32.Vec3 {
	return c.front
}

// Up returns the world up vector
func (c *Camera) Up() mgl32.Vec3 {
	return c.up
}

// Orientation returns the current yaw and pitch in degrees
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// Speed returns the movement speed in units per second
func (c *Camera) Speed() float32 {
	return c.speed
}

func (c *Camera) Sensitivity() float32 {
	return c.sensitivity
}

func (c *Camera) FreeFly() bool {
	return c.freeFly
}

// Mode returns the orientation mode chosen at construction
func (c *Camera) Mode() OrientationMode {
	return c.mode
}
