package stage

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/stereo-go/common"
	"github.com/Carmen-Shannon/stereo-go/engine/model"
)

// approx reports whether two floats are within tolerance of each other.
func approx(a, b float32, tolerance float64) bool {
	return math.Abs(float64(a)-float64(b)) <= tolerance
}

// identityMatrix returns a fresh 4x4 identity matrix.
func identityMatrix() [16]float32 {
	var m [16]float32
	common.Identity(m[:])
	return m
}

// translationMatrix returns an identity matrix with the given translation.
func translationMatrix(x, y, z float32) [16]float32 {
	m := identityMatrix()
	m[12], m[13], m[14] = x, y, z
	return m
}

// TestTransformStageTranslation tests world placement, normal pass-through
// under translation, and UV/color forwarding with identity view matrices.
func TestTransformStageTranslation(t *testing.T) {
	ts := NewTransformStage(NewSingleViewSource(identityMatrix(), identityMatrix()))

	var m [16]float32
	common.BuildModelMatrix(m[:], 1, 2, 3, 0, 0, 0, 1, 1, 1)
	ts.SetModel(m)

	v := model.GPUVertex{
		Position: [3]float32{1, 0, 0},
		Normal:   [3]float32{0, 0, 1},
		UV:       [2]float32{0.25, 0.75},
		Color:    [3]float32{1, 0.5, 0.25},
	}
	out := ts.EvaluateVertex(v, ViewLeft)

	if want := ([3]float32{2, 2, 3}); out.WorldPosition != want {
		t.Errorf("WorldPosition = %v, want %v", out.WorldPosition, want)
	}
	if want := ([3]float32{0, 0, 1}); out.WorldNormal != want {
		t.Errorf("WorldNormal = %v, want %v", out.WorldNormal, want)
	}
	if want := ([4]float32{2, 2, 3, 1}); out.ClipPosition != want {
		t.Errorf("ClipPosition = %v, want %v", out.ClipPosition, want)
	}
	if out.UV != v.UV {
		t.Errorf("UV = %v, want the input %v", out.UV, v.UV)
	}
	if out.Color != v.Color {
		t.Errorf("Color = %v, want the input %v", out.Color, v.Color)
	}
}

// TestTransformStageNormalCorrection tests that normals go through the
// inverse-transpose: compressed on a stretched axis, magnified under uniform
// shrink, and never renormalized.
func TestTransformStageNormalCorrection(t *testing.T) {
	t.Run("non-uniform scale compresses the scaled axis", func(t *testing.T) {
		ts := NewTransformStage(NewSingleViewSource(identityMatrix(), identityMatrix()))
		var m [16]float32
		common.BuildModelMatrix(m[:], 0, 0, 0, 0, 0, 0, 2, 1, 1)
		ts.SetModel(m)

		out := ts.EvaluateVertex(model.GPUVertex{
			Position: [3]float32{1, 1, 1},
			Normal:   [3]float32{1, 0, 0},
		}, ViewLeft)

		if want := ([3]float32{2, 1, 1}); out.WorldPosition != want {
			t.Errorf("WorldPosition = %v, want %v", out.WorldPosition, want)
		}
		if !approx(out.WorldNormal[0], 0.5, 1e-6) || !approx(out.WorldNormal[1], 0, 1e-6) || !approx(out.WorldNormal[2], 0, 1e-6) {
			t.Errorf("WorldNormal = %v, want (0.5, 0, 0)", out.WorldNormal)
		}
	})

	t.Run("uniform shrink magnifies the normal", func(t *testing.T) {
		ts := NewTransformStage(NewSingleViewSource(identityMatrix(), identityMatrix()))
		var m [16]float32
		common.BuildModelMatrix(m[:], 0, 0, 0, 0, 0, 0, 0.5, 0.5, 0.5)
		ts.SetModel(m)

		out := ts.EvaluateVertex(model.GPUVertex{Normal: [3]float32{0, 0, 1}}, ViewLeft)
		if !approx(out.WorldNormal[2], 2, 1e-5) {
			t.Errorf("WorldNormal = %v, want (0, 0, 2) without renormalization", out.WorldNormal)
		}
	})
}

// TestTransformStageClipComposition tests that the clip position is the
// projection of the view-space position of the world-space vertex.
func TestTransformStageClipComposition(t *testing.T) {
	var proj [16]float32
	common.Perspective(proj[:], math.Pi/2, 1.0, 0.1, 100)
	ts := NewTransformStage(NewSingleViewSource(translationMatrix(0, 0, -5), proj))

	out := ts.EvaluateVertex(model.GPUVertex{}, ViewLeft)

	want := [4]float32{0, 0, 4.9049049, 5}
	for i := range 4 {
		if !approx(out.ClipPosition[i], want[i], 1e-4) {
			t.Errorf("ClipPosition = %v, want %v", out.ClipPosition, want)
			break
		}
	}
}

// TestTransformStageEyeIndependence tests that each eye uses only its own
// matrices and that replacing one eye's view leaves the other's output
// untouched.
func TestTransformStageEyeIndependence(t *testing.T) {
	src := NewStereoViewSource(
		identityMatrix(), translationMatrix(-1, 0, 0),
		identityMatrix(), identityMatrix(),
	)
	ts := NewTransformStage(src)
	v := model.GPUVertex{}

	left := ts.EvaluateVertex(v, ViewLeft)
	right := ts.EvaluateVertex(v, ViewRight)
	if want := ([4]float32{0, 0, 0, 1}); left.ClipPosition != want {
		t.Errorf("left ClipPosition = %v, want %v", left.ClipPosition, want)
	}
	if want := ([4]float32{-1, 0, 0, 1}); right.ClipPosition != want {
		t.Errorf("right ClipPosition = %v, want %v", right.ClipPosition, want)
	}

	ts.SetViewSource(NewStereoViewSource(
		identityMatrix(), translationMatrix(-2, 0, 0),
		identityMatrix(), identityMatrix(),
	))
	if got := ts.EvaluateVertex(v, ViewLeft); got != left {
		t.Errorf("left output changed after a right-eye-only view swap")
	}
	if got := ts.EvaluateVertex(v, ViewRight); got.ClipPosition == right.ClipPosition {
		t.Errorf("right output unchanged after its view swap")
	}
}

// TestTransformStageSharedModel tests that both eyes see identical
// world-space values while their clip positions diverge.
func TestTransformStageSharedModel(t *testing.T) {
	src := NewStereoViewSource(
		identityMatrix(), translationMatrix(-0.064, 0, 0),
		identityMatrix(), identityMatrix(),
	)
	ts := NewTransformStage(src)
	ts.SetModel(translationMatrix(3, 0, 0))

	v := model.GPUVertex{
		Normal: [3]float32{0, 1, 0},
		UV:     [2]float32{0.5, 0.5},
		Color:  [3]float32{1, 1, 1},
	}
	left := ts.EvaluateVertex(v, ViewLeft)
	right := ts.EvaluateVertex(v, ViewRight)

	if left.WorldPosition != right.WorldPosition {
		t.Errorf("world positions differ between eyes: %v vs %v", left.WorldPosition, right.WorldPosition)
	}
	if left.WorldNormal != right.WorldNormal {
		t.Errorf("world normals differ between eyes: %v vs %v", left.WorldNormal, right.WorldNormal)
	}
	if left.UV != right.UV || left.Color != right.Color {
		t.Errorf("surface attributes differ between eyes")
	}
	if left.ClipPosition == right.ClipPosition {
		t.Errorf("clip positions identical across distinct eye views")
	}
	if want := ([3]float32{3, 0, 0}); left.WorldPosition != want {
		t.Errorf("WorldPosition = %v, want %v", left.WorldPosition, want)
	}
}

// TestTransformStageSingleViewIgnoresEye tests that a single-view source
// yields identical output for every eye index.
func TestTransformStageSingleViewIgnoresEye(t *testing.T) {
	var proj [16]float32
	common.Perspective(proj[:], math.Pi/3, 1.5, 0.1, 50)
	ts := NewTransformStage(NewSingleViewSource(translationMatrix(0, -1, -4), proj))

	v := model.GPUVertex{
		Position: [3]float32{0.3, -0.2, 0.1},
		Normal:   [3]float32{0, 1, 0},
	}
	if left, right := ts.EvaluateVertex(v, ViewLeft), ts.EvaluateVertex(v, ViewRight); left != right {
		t.Errorf("outputs differ across eye indices for a single view: %+v vs %+v", left, right)
	}
}

// TestTransformStageSingularModel tests the identity normal fallback for a
// non-invertible model matrix.
func TestTransformStageSingularModel(t *testing.T) {
	ts := NewTransformStage(NewSingleViewSource(identityMatrix(), identityMatrix()))

	var degenerate [16]float32
	degenerate[15] = 1
	ts.SetModel(degenerate)

	out := ts.EvaluateVertex(model.GPUVertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{0, 0.5, 0.5},
	}, ViewLeft)

	if want := ([3]float32{0, 0, 0}); out.WorldPosition != want {
		t.Errorf("WorldPosition = %v, want the collapsed origin", out.WorldPosition)
	}
	if want := ([3]float32{0, 0.5, 0.5}); out.WorldNormal != want {
		t.Errorf("WorldNormal = %v, want the input normal via the identity fallback", out.WorldNormal)
	}
}

// TestTransformStageNilSource tests the nil view source guards.
func TestTransformStageNilSource(t *testing.T) {
	t.Run("constructor", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("NewTransformStage(nil) did not panic")
			}
		}()
		NewTransformStage(nil)
	})

	t.Run("setter", func(t *testing.T) {
		ts := NewTransformStage(NewSingleViewSource(identityMatrix(), identityMatrix()))
		defer func() {
			if recover() == nil {
				t.Errorf("SetViewSource(nil) did not panic")
			}
		}()
		ts.SetViewSource(nil)
	})
}

// TestDebugTransformStageMatchesFull tests that the precomposed pass-through
// transform lands vertices on the same clip positions as the full stage.
func TestDebugTransformStageMatchesFull(t *testing.T) {
	var proj [16]float32
	common.Perspective(proj[:], math.Pi/2, 1.0, 0.1, 100)
	view := translationMatrix(0, 0, -5)
	modelMat := translationMatrix(0.5, 0, 0)

	full := NewTransformStage(NewSingleViewSource(view, proj))
	full.SetModel(modelMat)
	debug := NewDebugTransformStage(NewSingleViewSource(view, proj))
	debug.SetModel(modelMat)

	pos := [3]float32{0.1, 0.2, 0.3}
	fullOut := full.EvaluateVertex(model.GPUVertex{Position: pos}, ViewLeft)
	debugOut := debug.EvaluateVertex(model.GPUDebugVertex{Position: pos}, ViewLeft)

	for i := range 4 {
		if !approx(debugOut.ClipPosition[i], fullOut.ClipPosition[i], 1e-4) {
			t.Errorf("ClipPosition = %v, want %v from the full stage", debugOut.ClipPosition, fullOut.ClipPosition)
			break
		}
	}
}

// TestDebugTransformStageColor tests color forwarding and the identity
// transform baseline.
func TestDebugTransformStageColor(t *testing.T) {
	debug := NewDebugTransformStage(NewSingleViewSource(identityMatrix(), identityMatrix()))

	v := model.GPUDebugVertex{
		Position: [3]float32{0.5, -0.5, 0},
		Color:    [3]float32{0, 0, 1},
	}
	out := debug.EvaluateVertex(v, ViewLeft)

	if want := ([4]float32{0.5, -0.5, 0, 1}); out.ClipPosition != want {
		t.Errorf("ClipPosition = %v, want %v", out.ClipPosition, want)
	}
	if out.Color != v.Color {
		t.Errorf("Color = %v, want the input %v", out.Color, v.Color)
	}
}

// TestDebugTransformStageEyeSelection tests per-eye matrix selection in the
// precomposed path.
func TestDebugTransformStageEyeSelection(t *testing.T) {
	debug := NewDebugTransformStage(NewStereoViewSource(
		identityMatrix(), translationMatrix(-1, 0, 0),
		identityMatrix(), identityMatrix(),
	))

	v := model.GPUDebugVertex{}
	if got := debug.EvaluateVertex(v, ViewLeft).ClipPosition; got != ([4]float32{0, 0, 0, 1}) {
		t.Errorf("left ClipPosition = %v, want (0, 0, 0, 1)", got)
	}
	if got := debug.EvaluateVertex(v, ViewRight).ClipPosition; got != ([4]float32{-1, 0, 0, 1}) {
		t.Errorf("right ClipPosition = %v, want (-1, 0, 0, 1)", got)
	}
}

// TestDebugTransformStageSetModel tests that model replacement recomposes the
// per-eye matrices.
func TestDebugTransformStageSetModel(t *testing.T) {
	debug := NewDebugTransformStage(NewSingleViewSource(identityMatrix(), identityMatrix()))
	debug.SetModel(translationMatrix(1, 0, 0))

	out := debug.EvaluateVertex(model.GPUDebugVertex{Position: [3]float32{0.25, 0, 0}}, ViewLeft)
	if want := ([4]float32{1.25, 0, 0, 1}); out.ClipPosition != want {
		t.Errorf("ClipPosition = %v, want %v", out.ClipPosition, want)
	}
}

// TestDebugTransformStageNilSource tests the nil view source guards.
func TestDebugTransformStageNilSource(t *testing.T) {
	t.Run("constructor", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("NewDebugTransformStage(nil) did not panic")
			}
		}()
		NewDebugTransformStage(nil)
	})

	t.Run("setter", func(t *testing.T) {
		debug := NewDebugTransformStage(NewSingleViewSource(identityMatrix(), identityMatrix()))
		defer func() {
			if recover() == nil {
				t.Errorf("SetViewSource(nil) did not panic")
			}
		}()
		debug.SetViewSource(nil)
	})
}
