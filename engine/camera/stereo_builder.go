package camera

// StereoCameraOption is a functional option for configuring a StereoCamera.
type StereoCameraOption func(*stereoCameraImpl)

// WithEyePose sets one eye's initial world-space pose.
//
// Parameters:
//   - eye: which eye to configure
//   - pose: the eye's pose
//
// Returns:
//   - StereoCameraOption: functional option to set the pose
func WithEyePose(eye Eye, pose Pose) StereoCameraOption {
	return func(s *stereoCameraImpl) {
		s.poses[eye] = pose
	}
}

// WithEyeFov sets one eye's initial field of view.
//
// Parameters:
//   - eye: which eye to configure
//   - fov: the eye's frustum half-angles in radians
//
// Returns:
//   - StereoCameraOption: functional option to set the fov
func WithEyeFov(eye Eye, fov Fov) StereoCameraOption {
	return func(s *stereoCameraImpl) {
		s.fovs[eye] = fov
	}
}

// WithIPD sets both eye positions from an interpupillary distance: the left
// eye at -ipd/2 and the right eye at +ipd/2 along the X axis, both with
// identity orientation.
//
// Parameters:
//   - ipd: interpupillary distance in world units (meters for HMD runtimes)
//
// Returns:
//   - StereoCameraOption: functional option to set both eye positions
func WithIPD(ipd float32) StereoCameraOption {
	return func(s *stereoCameraImpl) {
		half := ipd / 2
		s.poses[EyeLeft] = Pose{Orientation: [4]float32{1, 0, 0, 0}, Position: [3]float32{-half, 0, 0}}
		s.poses[EyeRight] = Pose{Orientation: [4]float32{1, 0, 0, 0}, Position: [3]float32{half, 0, 0}}
	}
}

// WithStereoNear sets the near clipping plane distance shared by both eyes.
//
// Parameters:
//   - near: near plane distance (must be > 0)
//
// Returns:
//   - StereoCameraOption: functional option to set the near plane
func WithStereoNear(near float32) StereoCameraOption {
	return func(s *stereoCameraImpl) {
		s.near = near
	}
}

// WithStereoFar sets the far clipping plane distance shared by both eyes.
//
// Parameters:
//   - far: far plane distance (must be > near)
//
// Returns:
//   - StereoCameraOption: functional option to set the far plane
func WithStereoFar(far float32) StereoCameraOption {
	return func(s *stereoCameraImpl) {
		s.far = far
	}
}
