package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/stereo-go/common"
)

// Eye selects one of the two stereo views. The value doubles as the view
// index the multiview transform stage receives per invocation.
type Eye int

const (
	// EyeLeft is view index 0.
	EyeLeft Eye = 0
	// EyeRight is view index 1.
	EyeRight Eye = 1
	// EyeCount is the number of simultaneous stereo views.
	EyeCount = 2
)

// Pose is a rigid world-space placement of one eye: a unit orientation
// quaternion (scalar first) plus a position. An HMD runtime reports one per
// eye per predicted display time.
type Pose struct {
	Orientation [4]float32 // w, x, y, z
	Position    [3]float32
}

// IdentityPose returns a pose at the origin with no rotation.
//
// Returns:
//   - Pose: the identity pose
func IdentityPose() Pose {
	return Pose{Orientation: [4]float32{1, 0, 0, 0}}
}

// Fov is an asymmetric per-eye view frustum given as four half-angles in
// radians, one per frustum side. Left and down are typically negative.
type Fov struct {
	AngleLeft  float32
	AngleRight float32
	AngleUp    float32
	AngleDown  float32
}

// StereoCamera is the two-eye rig behind the multiview transform stage. Each
// eye carries an independent pose and asymmetric field of view; the rig turns
// them into per-eye view and projection matrices and packs all of them with a
// shared model matrix into the stereo camera uniform block. Geometry placement
// stays shared between the eyes; only the camera matrices differ per view.
type StereoCamera interface {
	// EyePose returns the current pose of one eye.
	//
	// Parameters:
	//   - eye: which eye to query
	//
	// Returns:
	//   - Pose: the eye's world-space pose
	EyePose(eye Eye) Pose

	// SetEyePose replaces one eye's pose and recomputes its view matrix.
	//
	// Parameters:
	//   - eye: which eye to update
	//   - pose: the new world-space pose
	SetEyePose(eye Eye, pose Pose)

	// EyeFov returns the current field of view of one eye.
	//
	// Parameters:
	//   - eye: which eye to query
	//
	// Returns:
	//   - Fov: the eye's frustum half-angles
	EyeFov(eye Eye) Fov

	// SetEyeFov replaces one eye's field of view and recomputes its
	// projection matrix.
	//
	// Parameters:
	//   - eye: which eye to update
	//   - fov: the new frustum half-angles
	SetEyeFov(eye Eye, fov Fov)

	// Near returns the near clipping plane distance shared by both eyes.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance shared by both eyes.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns one eye's current view matrix: the inverse of the
	// eye's rigid pose.
	//
	// Parameters:
	//   - eye: which eye to query
	//
	// Returns:
	//   - [16]float32: the view matrix (column-major)
	ViewMatrix(eye Eye) [16]float32

	// ProjectionMatrix returns one eye's current projection matrix built from
	// its four frustum half-angles.
	//
	// Parameters:
	//   - eye: which eye to query
	//
	// Returns:
	//   - [16]float32: the projection matrix (column-major)
	ProjectionMatrix(eye Eye) [16]float32

	// Uniform packs both eyes' matrices with the given model matrix into the
	// stereo camera uniform block.
	//
	// Parameters:
	//   - model: the model matrix shared by both eyes (column-major)
	//
	// Returns:
	//   - GPUStereoCameraUniform: the uniform block ready to marshal
	Uniform(model [16]float32) GPUStereoCameraUniform

	// Frustum extracts one eye's view frustum for host-side visibility
	// culling. Cull against the union of both eyes to keep one draw valid for
	// both views.
	//
	// Parameters:
	//   - eye: which eye to query
	//
	// Returns:
	//   - common.Frustum: six normalized planes of the eye's view volume
	Frustum(eye Eye) common.Frustum
}

type stereoCameraImpl struct {
	mu *sync.Mutex

	poses [EyeCount]Pose
	fovs  [EyeCount]Fov
	near  float32
	far   float32

	viewMatrices [EyeCount][16]float32
	projMatrices [EyeCount][16]float32
}

var _ StereoCamera = &stereoCameraImpl{}

// NewStereoCamera creates a stereo rig with a default head-on configuration:
// identity orientations, eye positions offset half the interpupillary distance
// (64 mm) left and right, symmetric 45 degree half-angle frustums, near 0.1
// and far 100. An HMD host replaces poses and fovs each frame from its
// runtime's predicted views.
//
// Parameters:
//   - options: functional options to configure the rig
//
// Returns:
//   - StereoCamera: the newly created stereo rig
func NewStereoCamera(options ...StereoCameraOption) StereoCamera {
	quarter := float32(math.Pi / 4)
	defaultFov := Fov{
		AngleLeft:  -quarter,
		AngleRight: quarter,
		AngleUp:    quarter,
		AngleDown:  -quarter,
	}

	s := &stereoCameraImpl{
		mu:   &sync.Mutex{},
		near: 0.1,
		far:  100.0,
	}
	s.poses[EyeLeft] = Pose{Orientation: [4]float32{1, 0, 0, 0}, Position: [3]float32{-defaultHalfIPD, 0, 0}}
	s.poses[EyeRight] = Pose{Orientation: [4]float32{1, 0, 0, 0}, Position: [3]float32{defaultHalfIPD, 0, 0}}
	s.fovs[EyeLeft] = defaultFov
	s.fovs[EyeRight] = defaultFov

	for _, option := range options {
		option(s)
	}

	s.updateEye(EyeLeft)
	s.updateEye(EyeRight)
	return s
}

// defaultHalfIPD is half of a 64 mm interpupillary distance in meters.
const defaultHalfIPD = 0.032

// updateEye recomputes one eye's view and projection matrices from its pose
// and fov. Caller must hold the mutex (or own the value exclusively).
func (s *stereoCameraImpl) updateEye(eye Eye) {
	p := s.poses[eye]
	common.PoseInverse(s.viewMatrices[eye][:],
		p.Orientation[0], p.Orientation[1], p.Orientation[2], p.Orientation[3],
		p.Position[0], p.Position[1], p.Position[2],
	)

	f := s.fovs[eye]
	common.PerspectiveFromAngles(s.projMatrices[eye][:],
		f.AngleLeft, f.AngleRight, f.AngleUp, f.AngleDown,
		s.near, s.far,
	)
}

func (s *stereoCameraImpl) EyePose(eye Eye) Pose {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.poses[eye]
}

func (s *stereoCameraImpl) SetEyePose(eye Eye, pose Pose) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.poses[eye] = pose
	s.updateEye(eye)
}

func (s *stereoCameraImpl) EyeFov(eye Eye) Fov {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fovs[eye]
}

func (s *stereoCameraImpl) SetEyeFov(eye Eye, fov Fov) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fovs[eye] = fov
	s.updateEye(eye)
}

func (s *stereoCameraImpl) Near() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.near
}

func (s *stereoCameraImpl) Far() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.far
}

func (s *stereoCameraImpl) ViewMatrix(eye Eye) [16]float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewMatrices[eye]
}

func (s *stereoCameraImpl) ProjectionMatrix(eye Eye) [16]float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projMatrices[eye]
}

func (s *stereoCameraImpl) Uniform(model [16]float32) GPUStereoCameraUniform {
	s.mu.Lock()
	defer s.mu.Unlock()
	return GPUStereoCameraUniform{
		Model:     model,
		ViewLeft:  s.viewMatrices[EyeLeft],
		ViewRight: s.viewMatrices[EyeRight],
		ProjLeft:  s.projMatrices[EyeLeft],
		ProjRight: s.projMatrices[EyeRight],
	}
}

func (s *stereoCameraImpl) Frustum(eye Eye) common.Frustum {
	s.mu.Lock()
	defer s.mu.Unlock()
	var vp [16]float32
	common.Mul4(vp[:], s.projMatrices[eye][:], s.viewMatrices[eye][:])
	return common.ExtractFrustumFromMatrix(vp[:])
}
