// Package input maps abstract movement actions to physical keys and tracks
// which keys and pointer motion the frame loop has seen.
package input

import (
	"errors"
	"fmt"
)

// MaxKeys is the number of physical keys a single action can be bound to
const MaxKeys = 3

// ErrTooManyKeys is returned when an action is bound to more than MaxKeys keys
var ErrTooManyKeys = errors.New("too many keys for action")

// Key identifies a physical key. The window layer decides the numbering.
type Key int

// KeyState reports whether a physical key is currently held down
type KeyState interface {
	IsKeyHeld(key Key) bool
}

// Action is a named input gesture activated by any one of its keys
type Action struct {
	keys    [MaxKeys]Key
	numKeys int

	// Held is refreshed once per frame by Controls.Refresh
	Held bool
}

// Bind replaces the action's key set
func (a *Action) Bind(keys ...Key) error {
	if len(keys) > MaxKeys {
		return fmt.Errorf("%w: got %d, max %d", ErrTooManyKeys, len(keys), MaxKeys)
	}

	a.keys = [MaxKeys]Key{}
	a.numKeys = copy(a.keys[:], keys)
	return nil
}

// Keys returns the keys bound to the action in binding order
func (a Action) Keys() []Key {
	return append([]Key(nil), a.keys[:a.numKeys]...)
}

// IsActionActive returns true if any key bound to the action is held.
// An action without keys is never active.
func IsActionActive(state KeyState, action Action) bool {
	for i := 0; i < action.numKeys; i++ {
		if state.IsKeyHeld(action.keys[i]) {
			return true
		}
	}
	return false
}

// Controls is the fixed set of movement actions
type Controls struct {
	Forward Action
	Back    Action
	Left    Action
	Right   Action
}

// BindFunc populates the key sets of freshly reset controls
type BindFunc func(controls *Controls)

// Init clears all four actions and then lets bind fill them in
func (c *Controls) Init(bind BindFunc) {
	c.Forward = Action{}
	c.Back = Action{}
	c.Left = Action{}
	c.Right = Action{}

	if bind != nil {
		bind(c)
	}
}

// Refresh updates the Held flag of every action from the key state
func (c *Controls) Refresh(state KeyState) {
	c.Forward.Held = IsActionActive(state, c.Forward)
	c.Back.Held = IsActionActive(state, c.Back)
	c.Left.Held = IsActionActive(state, c.Left)
	c.Right.Held = IsActionActive(state, c.Right)
}
