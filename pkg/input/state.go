package input

// State holds the held/released state of every key the window reported.
// The frame loop owns it and feeds it from key events.
type State struct {
	held map[Key]bool
}

// NewState creates an empty key state with nothing held
func NewState() *State {
	return &State{held: make(map[Key]bool)}
}

// Press marks a key as held
func (s *State) Press(key Key) {
	s.held[key] = true
}

// Release marks a key as released
func (s *State) Release(key Key) {
	delete(s.held, key)
}

// IsKeyHeld returns whether the key is currently held
func (s *State) IsKeyHeld(key Key) bool {
	return s.held[key]
}

// Reset releases every key, e.g. after the window loses focus
func (s *State) Reset() {
	clear(s.held)
}

// MouseTracker turns absolute cursor positions into relative motion
type MouseTracker struct {
	lastX      float64
	lastY      float64
	firstMouse bool

	// Motion accumulated since the last Take
	dx float32
	dy float32
}

// NewMouseTracker creates a tracker that ignores its first sample
func NewMouseTracker() *MouseTracker {
	return &MouseTracker{firstMouse: true}
}

// Delta records a cursor position and returns the motion since the previous
// one. The first sample after a reset only establishes the reference point.
func (m *MouseTracker) Delta(xpos, ypos float64) (dx, dy float32) {
	if m.firstMouse {
		m.lastX = xpos
		m.lastY = ypos
		m.firstMouse = false
		return 0, 0
	}

	// Screen space: y grows downward
	dx = float32(xpos - m.lastX)
	dy = float32(ypos - m.lastY)

	m.lastX = xpos
	m.lastY = ypos

	m.dx += dx
	m.dy += dy
	return dx, dy
}

// Take returns the motion accumulated since the last call and clears it
func (m *MouseTracker) Take() (dx, dy float32) {
	dx, dy = m.dx, m.dy
	m.dx, m.dy = 0, 0
	return dx, dy
}

// Reset forgets the reference point, e.g. when the cursor is recaptured
func (m *MouseTracker) Reset() {
	m.firstMouse = true
	m.dx, m.dy = 0, 0
}
