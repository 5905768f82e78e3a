package camera

// Camera constants
const (
	// Movement
	DefaultMoveSpeed   = 5.0
	DefaultSensitivity = 0.1

	// Default orientation
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0

	// Projection
	DefaultFOV  = 45.0
	DefaultNear = 0.1
	DefaultFar  = 100.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0

	// Pointer deltas beyond this are treated as spurious (focus changes, warps)
	MaxMouseDelta = 500.0
)
