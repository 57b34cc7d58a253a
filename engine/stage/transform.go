package stage

import (
	"sync"

	"github.com/Carmen-Shannon/stereo-go/common"
	"github.com/Carmen-Shannon/stereo-go/engine/model"
)

// TransformedVertex is the per-vertex output of a TransformStage: the clip-space
// position consumed by the rasterizer plus the world-space and surface values
// handed downstream for interpolation and shading.
type TransformedVertex struct {
	// ClipPosition is the vertex position in clip space.
	ClipPosition [4]float32

	// WorldPosition is the vertex position in world space.
	WorldPosition [3]float32

	// WorldNormal is the world-space surface normal, transformed by the
	// inverse-transpose of the model matrix and left unnormalized.
	WorldNormal [3]float32

	// UV is the texture coordinate, passed through unchanged.
	UV [2]float32

	// Color is the per-vertex color, passed through unchanged.
	Color [3]float32
}

// transformStage is the implementation of the TransformStage interface.
type transformStage struct {
	mu       *sync.Mutex
	model    [16]float32
	normal   [16]float32
	source   ViewSource
	viewProj [2][16]float32
}

// TransformStage evaluates the full vertex transform for lit geometry: model
// placement into world space, normal correction via the inverse-transpose of
// the model matrix, UV/color pass-through, and projection into clip space with
// the eye's matrices from the attached ViewSource.
//
// EvaluateVertex is pure with respect to the configured state and safe to call
// from many goroutines at once. Mutations (SetModel, SetViewSource) must be
// fenced between batches by the host; they must not overlap in-flight
// evaluations, mirroring how uniform buffers are rewritten only between frames.
type TransformStage interface {
	// EvaluateVertex transforms a single vertex for the given eye.
	// Both eyes share the same model placement; only the view and projection
	// differ, and a single-view source ignores the eye entirely.
	//
	// Parameters:
	//   - v: the input vertex
	//   - eye: the eye index selecting view/projection matrices
	//
	// Returns:
	//   - TransformedVertex: the transformed vertex
	EvaluateVertex(v model.GPUVertex, eye ViewIndex) TransformedVertex

	// Model retrieves the current model matrix.
	//
	// Returns:
	//   - [16]float32: the model matrix, column-major
	Model() [16]float32

	// SetModel replaces the model matrix and recomputes the derived normal
	// matrix. A non-invertible model matrix falls back to the identity normal
	// matrix rather than failing.
	//
	// Parameters:
	//   - model: the model matrix, column-major
	SetModel(model [16]float32)

	// ViewSource retrieves the attached view source.
	//
	// Returns:
	//   - ViewSource: the view source
	ViewSource() ViewSource

	// SetViewSource replaces the view source, re-resolving the per-eye
	// matrices. Panics if src is nil.
	//
	// Parameters:
	//   - src: the view source to attach
	SetViewSource(src ViewSource)
}

var _ TransformStage = &transformStage{}

// NewTransformStage creates a TransformStage over the given view source with
// an identity model matrix. Panics if src is nil.
//
// Parameters:
//   - src: the view source supplying per-eye view/projection matrices
//
// Returns:
//   - TransformStage: a new transform stage
func NewTransformStage(src ViewSource) TransformStage {
	if src == nil {
		panic("stage: NewTransformStage requires a non-nil ViewSource")
	}
	t := &transformStage{
		mu:     &sync.Mutex{},
		source: src,
	}
	common.Identity(t.model[:])
	common.Identity(t.normal[:])
	t.resolveViews()
	return t
}

func (t *transformStage) EvaluateVertex(v model.GPUVertex, eye ViewIndex) TransformedVertex {
	wx, wy, wz := common.TransformPoint(t.model[:], v.Position[0], v.Position[1], v.Position[2])
	nx, ny, nz := common.TransformDirection(t.normal[:], v.Normal[0], v.Normal[1], v.Normal[2])

	world := [4]float32{wx, wy, wz, 1}
	var out TransformedVertex
	common.MulVec4(out.ClipPosition[:], t.viewProj[eyeSlot(eye)][:], world[:])
	out.WorldPosition = [3]float32{wx, wy, wz}
	out.WorldNormal = [3]float32{nx, ny, nz}
	out.UV = v.UV
	out.Color = v.Color
	return out
}

func (t *transformStage) Model() [16]float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.model
}

func (t *transformStage) SetModel(model [16]float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.model = model
	common.NormalMatrix(t.normal[:], t.model[:])
}

func (t *transformStage) ViewSource() ViewSource {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.source
}

func (t *transformStage) SetViewSource(src ViewSource) {
	if src == nil {
		panic("stage: SetViewSource requires a non-nil ViewSource")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.source = src
	t.resolveViews()
}

// resolveViews flattens the source and precomposes proj*view for each eye so
// EvaluateVertex multiplies a single matrix per vertex.
func (t *transformStage) resolveViews() {
	for i := range t.viewProj {
		rv := t.source.Resolve(ViewIndex(i))
		common.Mul4(t.viewProj[i][:], rv.Proj[:], rv.View[:])
	}
}

// DebugTransformedVertex is the per-vertex output of a DebugTransformStage:
// clip position and color only, with no world-space intermediates.
type DebugTransformedVertex struct {
	// ClipPosition is the vertex position in clip space.
	ClipPosition [4]float32

	// Color is the per-vertex color, passed through unchanged.
	Color [3]float32
}

// debugTransformStage is the implementation of the DebugTransformStage interface.
type debugTransformStage struct {
	mu     *sync.Mutex
	model  [16]float32
	source ViewSource
	mvp    [2][16]float32
}

// DebugTransformStage is the reduced color-only sibling of TransformStage for
// pass-through geometry. It precomposes the full proj*view*model matrix per
// eye, so evaluation is one matrix multiply with no world-space outputs.
// The same batch-fencing contract as TransformStage applies.
type DebugTransformStage interface {
	// EvaluateVertex transforms a single pass-through vertex for the given eye.
	//
	// Parameters:
	//   - v: the input vertex
	//   - eye: the eye index selecting the precomposed matrix
	//
	// Returns:
	//   - DebugTransformedVertex: the clip position and color
	EvaluateVertex(v model.GPUDebugVertex, eye ViewIndex) DebugTransformedVertex

	// Model retrieves the current model matrix.
	//
	// Returns:
	//   - [16]float32: the model matrix, column-major
	Model() [16]float32

	// SetModel replaces the model matrix and recomposes the per-eye matrices.
	//
	// Parameters:
	//   - model: the model matrix, column-major
	SetModel(model [16]float32)

	// ViewSource retrieves the attached view source.
	//
	// Returns:
	//   - ViewSource: the view source
	ViewSource() ViewSource

	// SetViewSource replaces the view source and recomposes the per-eye
	// matrices. Panics if src is nil.
	//
	// Parameters:
	//   - src: the view source to attach
	SetViewSource(src ViewSource)
}

var _ DebugTransformStage = &debugTransformStage{}

// NewDebugTransformStage creates a DebugTransformStage over the given view
// source with an identity model matrix. Panics if src is nil.
//
// Parameters:
//   - src: the view source supplying per-eye view/projection matrices
//
// Returns:
//   - DebugTransformStage: a new pass-through transform stage
func NewDebugTransformStage(src ViewSource) DebugTransformStage {
	if src == nil {
		panic("stage: NewDebugTransformStage requires a non-nil ViewSource")
	}
	d := &debugTransformStage{
		mu:     &sync.Mutex{},
		source: src,
	}
	common.Identity(d.model[:])
	d.compose()
	return d
}

func (d *debugTransformStage) EvaluateVertex(v model.GPUDebugVertex, eye ViewIndex) DebugTransformedVertex {
	pos := [4]float32{v.Position[0], v.Position[1], v.Position[2], 1}
	var out DebugTransformedVertex
	common.MulVec4(out.ClipPosition[:], d.mvp[eyeSlot(eye)][:], pos[:])
	out.Color = v.Color
	return out
}

func (d *debugTransformStage) Model() [16]float32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.model
}

func (d *debugTransformStage) SetModel(model [16]float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.model = model
	d.compose()
}

func (d *debugTransformStage) ViewSource() ViewSource {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.source
}

func (d *debugTransformStage) SetViewSource(src ViewSource) {
	if src == nil {
		panic("stage: SetViewSource requires a non-nil ViewSource")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.source = src
	d.compose()
}

// compose precomputes proj*view*model for each eye.
func (d *debugTransformStage) compose() {
	var vp [16]float32
	for i := range d.mvp {
		rv := d.source.Resolve(ViewIndex(i))
		common.Mul4(vp[:], rv.Proj[:], rv.View[:])
		common.Mul4(d.mvp[i][:], vp[:], d.model[:])
	}
}
