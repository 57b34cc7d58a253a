package camera

import (
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// CameraAction identifies one orbit movement a held key maps to.
type CameraAction int

const (
	// ActionUndefined is returned for keys with no binding.
	ActionUndefined CameraAction = iota
	// ActionOrbitUp tilts the camera toward the top pole (decreasing inclination).
	ActionOrbitUp
	// ActionOrbitDown tilts the camera toward the bottom pole (increasing inclination).
	ActionOrbitDown
	// ActionOrbitLeft swings the camera left around the target (increasing azimuth).
	ActionOrbitLeft
	// ActionOrbitRight swings the camera right around the target (decreasing azimuth).
	ActionOrbitRight
	// ActionCloser moves the camera toward the target (decreasing radius).
	ActionCloser
	// ActionFarther moves the camera away from the target (increasing radius).
	ActionFarther
)

// KeyMap binds host window key codes to camera actions. The host forwards its
// pressed-key set each frame; the map stays out of window management entirely.
type KeyMap map[glfw.Key]CameraAction

// DefaultKeyMap returns the standard WASD+QE binding: W/S tilt, A/D swing,
// Q moves closer, E moves farther.
//
// Returns:
//   - KeyMap: the default key binding
func DefaultKeyMap() KeyMap {
	return KeyMap{
		glfw.KeyW: ActionOrbitUp,
		glfw.KeyS: ActionOrbitDown,
		glfw.KeyA: ActionOrbitLeft,
		glfw.KeyD: ActionOrbitRight,
		glfw.KeyQ: ActionCloser,
		glfw.KeyE: ActionFarther,
	}
}

// Resolve maps a key code to its bound camera action. Unbound keys log a
// warning and resolve to ActionUndefined.
//
// Parameters:
//   - key: the host window key code
//
// Returns:
//   - CameraAction: the bound action, or ActionUndefined
func (m KeyMap) Resolve(key glfw.Key) CameraAction {
	action, ok := m[key]
	if !ok {
		log.Printf("camera: key %d isn't bound", key)
		return ActionUndefined
	}
	return action
}

// Actions maps a pressed-key set to the camera actions it triggers, dropping
// unbound keys silently. Use Resolve for single keys when the unbound warning
// is wanted.
//
// Parameters:
//   - pressed: the keys held this frame
//
// Returns:
//   - []CameraAction: the actions to apply this frame
func (m KeyMap) Actions(pressed []glfw.Key) []CameraAction {
	actions := make([]CameraAction, 0, len(pressed))
	for _, key := range pressed {
		if action, ok := m[key]; ok {
			actions = append(actions, action)
		}
	}
	return actions
}

// HandleKeys resolves the pressed-key set through the key map and applies the
// resulting actions to the controller scaled by the frame's delta time.
//
// Parameters:
//   - ctrl: the controller to move
//   - pressed: the keys held this frame
//   - dt: elapsed time in seconds since the previous frame
func (m KeyMap) HandleKeys(ctrl CameraController, pressed []glfw.Key, dt float32) {
	if ctrl == nil || len(pressed) == 0 {
		return
	}
	ctrl.Apply(m.Actions(pressed), dt)
}
