package camera

import (
	"math"
	"sync"
)

// cameraControllerImpl is the single implementation of CameraController.
// Orbit state is held as spherical coordinates around the target: azimuth is
// the horizontal angle around +Y, inclination the polar angle from +Y. The
// world-space position is recomputed eagerly whenever any coordinate changes.
type cameraControllerImpl struct {
	mu *sync.Mutex

	// Camera position (computed from target + spherical coords)
	position [3]float32
	target   [3]float32

	// Spherical coordinates (offset from target)
	radius      float32
	azimuth     float32 // Horizontal angle around Y axis
	inclination float32 // Polar angle from the +Y axis

	// Orbit constraints
	minRadius      float32
	maxRadius      float32
	minInclination float32
	maxInclination float32

	// Held-input speed, per second
	speed float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewOrbitController creates a new orbit camera controller. The defaults place
// the camera four units from the origin at a quarter-turn inclination, looking
// back at the target.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewOrbitController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:     &sync.Mutex{},
		target: [3]float32{0, 0, 0},

		radius:      4.0,
		azimuth:     float32(math.Pi / 2),
		inclination: float32(math.Pi / 4),

		minRadius:      0.0,
		maxRadius:      100.0,
		minInclination: 0.1,
		maxInclination: float32(math.Pi - 0.1),

		speed: 2.0,
	}

	for _, option := range options {
		option(cc)
	}

	cc.clamp()
	cc.updatePosition()
	return cc
}

// --- internal helpers ---

// updatePosition recomputes the camera position from spherical coordinates.
// Must be called whenever radius, azimuth, inclination, or target changes.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) updatePosition() {
	sinIncl := float32(math.Sin(float64(cc.inclination)))
	cosIncl := float32(math.Cos(float64(cc.inclination)))
	sinAzim := float32(math.Sin(float64(cc.azimuth)))
	cosAzim := float32(math.Cos(float64(cc.azimuth)))

	cc.position[0] = cc.target[0] + cc.radius*cosAzim*sinIncl
	cc.position[1] = cc.target[1] + cc.radius*cosIncl
	cc.position[2] = cc.target[2] + cc.radius*sinAzim*sinIncl
}

// clamp re-applies the orbit constraints: inclination and radius are limited
// to their bounds, azimuth wraps to a full turn. Caller must hold the mutex.
func (cc *cameraControllerImpl) clamp() {
	if cc.inclination < cc.minInclination {
		cc.inclination = cc.minInclination
	}
	if cc.inclination > cc.maxInclination {
		cc.inclination = cc.maxInclination
	}
	cc.azimuth = float32(math.Mod(float64(cc.azimuth), 2*math.Pi))
	if cc.radius < cc.minRadius {
		cc.radius = cc.minRadius
	}
	if cc.radius > cc.maxRadius {
		cc.radius = cc.maxRadius
	}
}

// --- CameraController implementation ---

func (cc *cameraControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position[0], cc.position[1], cc.position[2]
}

func (cc *cameraControllerImpl) Target() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target[0], cc.target[1], cc.target[2]
}

func (cc *cameraControllerImpl) SetTarget(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target[0] = x
	cc.target[1] = y
	cc.target[2] = z
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *cameraControllerImpl) SetRadius(radius float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius = radius
	cc.clamp()
	cc.updatePosition()
}

func (cc *cameraControllerImpl) MinRadius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.minRadius
}

func (cc *cameraControllerImpl) MaxRadius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.maxRadius
}

func (cc *cameraControllerImpl) Azimuth() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.azimuth
}

func (cc *cameraControllerImpl) SetAzimuth(azimuth float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth = azimuth
	cc.clamp()
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Inclination() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.inclination
}

func (cc *cameraControllerImpl) SetInclination(inclination float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.inclination = inclination
	cc.clamp()
	cc.updatePosition()
}

func (cc *cameraControllerImpl) MinInclination() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.minInclination
}

func (cc *cameraControllerImpl) MaxInclination() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.maxInclination
}

func (cc *cameraControllerImpl) Speed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.speed
}

func (cc *cameraControllerImpl) Apply(actions []CameraAction, dt float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	d := dt * cc.speed
	for _, action := range actions {
		switch action {
		case ActionOrbitUp:
			cc.inclination -= d
		case ActionOrbitDown:
			cc.inclination += d
		case ActionOrbitLeft:
			cc.azimuth += d
		case ActionOrbitRight:
			cc.azimuth -= d
		case ActionCloser:
			cc.radius -= d
		case ActionFarther:
			cc.radius += d
		}
	}

	cc.clamp()
	cc.updatePosition()
}
