package stage

import (
	"github.com/Carmen-Shannon/stereo-go/engine/camera"
)

// ViewIndex selects which eye's matrices a transform evaluation uses.
// Index 0 is the left eye and 1 is the right eye, aligned with
// camera.EyeLeft/camera.EyeRight. Hosts supply the index per invocation;
// nothing in this package ever derives it.
type ViewIndex int

const (
	// ViewLeft selects the left eye's view and projection.
	ViewLeft ViewIndex = 0
	// ViewRight selects the right eye's view and projection.
	ViewRight ViewIndex = 1
)

// ResolvedView is a flattened view/projection pair for one eye, produced by
// ViewSource.Resolve. Transform stages resolve once per draw so the per-vertex
// hot path never branches on the source variant.
type ResolvedView struct {
	// View is the world-to-eye matrix, column-major.
	View [16]float32

	// Proj is the eye-to-clip matrix, column-major.
	Proj [16]float32
}

// ViewSource supplies view and projection matrices to a transform stage.
// It is a tagged variant: a single source carries one fixed view/projection
// pair and ignores the eye index, while a stereo source carries one pair per
// eye and selects by index. The variant is fixed at construction; hosts swap
// sources per draw rather than mutating one in place.
type ViewSource interface {
	// ViewCount returns the number of distinct views this source carries,
	// 1 for single-view and 2 for stereo.
	//
	// Returns:
	//   - int: the view count
	ViewCount() int

	// View retrieves the world-to-eye matrix for the given eye.
	// Single-view sources return their only view for any index.
	//
	// Parameters:
	//   - eye: the eye index (0 selects left, any other value selects right)
	//
	// Returns:
	//   - [16]float32: the view matrix, column-major
	View(eye ViewIndex) [16]float32

	// Projection retrieves the eye-to-clip matrix for the given eye.
	// Single-view sources return their only projection for any index.
	//
	// Parameters:
	//   - eye: the eye index (0 selects left, any other value selects right)
	//
	// Returns:
	//   - [16]float32: the projection matrix, column-major
	Projection(eye ViewIndex) [16]float32

	// Resolve flattens the source into the view/projection pair for one eye.
	//
	// Parameters:
	//   - eye: the eye index (0 selects left, any other value selects right)
	//
	// Returns:
	//   - ResolvedView: the flattened matrices for that eye
	Resolve(eye ViewIndex) ResolvedView
}

// singleViewSource is the fixed-pair implementation of the ViewSource interface.
type singleViewSource struct {
	view [16]float32
	proj [16]float32
}

// stereoViewSource is the per-eye implementation of the ViewSource interface.
type stereoViewSource struct {
	views [2][16]float32
	projs [2][16]float32
}

var _ ViewSource = &singleViewSource{}
var _ ViewSource = &stereoViewSource{}

// NewSingleViewSource creates a ViewSource carrying one fixed view/projection
// pair. The eye index passed to its accessors is ignored.
//
// Parameters:
//   - view: the world-to-eye matrix, column-major
//   - proj: the eye-to-clip matrix, column-major
//
// Returns:
//   - ViewSource: a single-view source over the given matrices
func NewSingleViewSource(view, proj [16]float32) ViewSource {
	return &singleViewSource{view: view, proj: proj}
}

// NewStereoViewSource creates a ViewSource carrying independent matrices for
// each eye. The two eyes share nothing; evaluating one never reads the other's
// matrices.
//
// Parameters:
//   - viewLeft: the left eye's world-to-eye matrix, column-major
//   - viewRight: the right eye's world-to-eye matrix, column-major
//   - projLeft: the left eye's eye-to-clip matrix, column-major
//   - projRight: the right eye's eye-to-clip matrix, column-major
//
// Returns:
//   - ViewSource: a stereo source over the given matrices
func NewStereoViewSource(viewLeft, viewRight, projLeft, projRight [16]float32) ViewSource {
	return &stereoViewSource{
		views: [2][16]float32{viewLeft, viewRight},
		projs: [2][16]float32{projLeft, projRight},
	}
}

// ViewSourceFromUniform bridges a marshalled single-view camera uniform into a
// ViewSource. Only the view and projection are taken; the uniform's model
// matrix belongs to the transform stage and is set there.
//
// Parameters:
//   - u: the single-view camera uniform block
//
// Returns:
//   - ViewSource: a single-view source over the uniform's matrices
func ViewSourceFromUniform(u camera.GPUCameraUniform) ViewSource {
	return NewSingleViewSource(u.View, u.Proj)
}

// ViewSourceFromStereoUniform bridges a marshalled stereo camera uniform into
// a ViewSource. Only the per-eye views and projections are taken; the shared
// model matrix belongs to the transform stage and is set there.
//
// Parameters:
//   - u: the stereo camera uniform block
//
// Returns:
//   - ViewSource: a stereo source over the uniform's matrices
func ViewSourceFromStereoUniform(u camera.GPUStereoCameraUniform) ViewSource {
	return NewStereoViewSource(u.ViewLeft, u.ViewRight, u.ProjLeft, u.ProjRight)
}

func (s *singleViewSource) ViewCount() int {
	return 1
}

func (s *singleViewSource) View(_ ViewIndex) [16]float32 {
	return s.view
}

func (s *singleViewSource) Projection(_ ViewIndex) [16]float32 {
	return s.proj
}

func (s *singleViewSource) Resolve(_ ViewIndex) ResolvedView {
	return ResolvedView{View: s.view, Proj: s.proj}
}

func (s *stereoViewSource) ViewCount() int {
	return 2
}

func (s *stereoViewSource) View(eye ViewIndex) [16]float32 {
	return s.views[eyeSlot(eye)]
}

func (s *stereoViewSource) Projection(eye ViewIndex) [16]float32 {
	return s.projs[eyeSlot(eye)]
}

func (s *stereoViewSource) Resolve(eye ViewIndex) ResolvedView {
	i := eyeSlot(eye)
	return ResolvedView{View: s.views[i], Proj: s.projs[i]}
}

// eyeSlot maps an eye index onto a storage slot: 0 is left, everything else
// is right, matching the uniform block accessors.
func eyeSlot(eye ViewIndex) int {
	if eye == ViewLeft {
		return 0
	}
	return 1
}
