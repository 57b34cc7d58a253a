package camera

// CameraController defines the interface for orbit-style camera control.
// Controllers own positional state as spherical coordinates (radius, azimuth,
// inclination) around a target/pivot point. Camera reads position from the
// controller and computes view/projection matrices.
//
// The inclination is the polar angle measured from the +Y axis, so the
// vertical component of the orbit position is radius * cos(inclination).
// Inclination is clamped away from the poles to keep the look-at up vector
// well defined.
type CameraController interface {
	// Position returns the camera's world-space position computed from the
	// target and the spherical coordinates.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at/pivot point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetTarget sets the look-at/pivot point and recomputes position from
	// spherical coordinates.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// Radius returns the current orbit radius (distance from target).
	//
	// Returns:
	//   - float32: current distance from target
	Radius() float32

	// SetRadius sets the orbit radius directly, clamped to min/max bounds.
	//
	// Parameters:
	//   - radius: new distance from target
	SetRadius(radius float32)

	// MinRadius returns the minimum allowed orbit radius.
	//
	// Returns:
	//   - float32: minimum zoom distance
	MinRadius() float32

	// MaxRadius returns the maximum allowed orbit radius.
	//
	// Returns:
	//   - float32: maximum zoom distance
	MaxRadius() float32

	// Azimuth returns the current horizontal angle around the Y axis.
	//
	// Returns:
	//   - float32: azimuth in radians
	Azimuth() float32

	// SetAzimuth sets the horizontal angle directly, wrapped to a full turn,
	// and recomputes position.
	//
	// Parameters:
	//   - azimuth: new horizontal angle in radians
	SetAzimuth(azimuth float32)

	// Inclination returns the current polar angle from the +Y axis.
	//
	// Returns:
	//   - float32: inclination in radians
	Inclination() float32

	// SetInclination sets the polar angle directly, clamped to min/max bounds.
	//
	// Parameters:
	//   - inclination: new polar angle in radians
	SetInclination(inclination float32)

	// MinInclination returns the minimum allowed polar angle.
	//
	// Returns:
	//   - float32: minimum inclination in radians
	MinInclination() float32

	// MaxInclination returns the maximum allowed polar angle.
	//
	// Returns:
	//   - float32: maximum inclination in radians
	MaxInclination() float32

	// Speed returns the movement speed in radians (or world units, for the
	// radius) per second of held input.
	//
	// Returns:
	//   - float32: movement speed per second
	Speed() float32

	// Apply advances the spherical coordinates for every action in actions by
	// speed * dt, then re-clamps inclination and radius and wraps azimuth.
	// Passing all actions held during a frame with that frame's delta time
	// reproduces smooth keyboard orbiting.
	//
	// Parameters:
	//   - actions: the camera actions held this frame
	//   - dt: elapsed time in seconds since the previous Apply
	Apply(actions []CameraAction, dt float32)
}
