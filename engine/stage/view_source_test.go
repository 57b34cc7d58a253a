package stage

import (
	"testing"

	"github.com/Carmen-Shannon/stereo-go/engine/camera"
)

// markedMatrix returns an identity-like matrix with a marker value in one
// corner so sources can be told apart.
func markedMatrix(marker float32) [16]float32 {
	var m [16]float32
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	m[12] = marker
	return m
}

// TestSingleViewSource tests that the fixed-pair source reports one view and
// ignores the eye index.
func TestSingleViewSource(t *testing.T) {
	view := markedMatrix(1)
	proj := markedMatrix(2)
	src := NewSingleViewSource(view, proj)

	if got := src.ViewCount(); got != 1 {
		t.Errorf("ViewCount() = %d, want 1", got)
	}
	for _, eye := range []ViewIndex{ViewLeft, ViewRight, ViewIndex(5)} {
		if got := src.View(eye); got != view {
			t.Errorf("View(%d) = %v, want the fixed view", eye, got)
		}
		if got := src.Projection(eye); got != proj {
			t.Errorf("Projection(%d) = %v, want the fixed projection", eye, got)
		}
		rv := src.Resolve(eye)
		if rv.View != view || rv.Proj != proj {
			t.Errorf("Resolve(%d) = %+v, want the fixed pair", eye, rv)
		}
	}
}

// TestStereoViewSource tests per-eye selection: index 0 is left, any other
// index is right.
func TestStereoViewSource(t *testing.T) {
	viewL := markedMatrix(1)
	viewR := markedMatrix(2)
	projL := markedMatrix(3)
	projR := markedMatrix(4)
	src := NewStereoViewSource(viewL, viewR, projL, projR)

	if got := src.ViewCount(); got != 2 {
		t.Errorf("ViewCount() = %d, want 2", got)
	}
	if got := src.View(ViewLeft); got != viewL {
		t.Errorf("View(ViewLeft) = %v, want the left view", got)
	}
	if got := src.Projection(ViewLeft); got != projL {
		t.Errorf("Projection(ViewLeft) = %v, want the left projection", got)
	}
	for _, eye := range []ViewIndex{ViewRight, ViewIndex(7)} {
		if got := src.View(eye); got != viewR {
			t.Errorf("View(%d) = %v, want the right view", eye, got)
		}
		if got := src.Projection(eye); got != projR {
			t.Errorf("Projection(%d) = %v, want the right projection", eye, got)
		}
	}

	left := src.Resolve(ViewLeft)
	right := src.Resolve(ViewRight)
	if left.View != viewL || left.Proj != projL {
		t.Errorf("Resolve(ViewLeft) = %+v, want the left pair", left)
	}
	if right.View != viewR || right.Proj != projR {
		t.Errorf("Resolve(ViewRight) = %+v, want the right pair", right)
	}
}

// TestViewSourceFromUniform tests bridging the single-view camera uniform,
// which drops the uniform's model matrix.
func TestViewSourceFromUniform(t *testing.T) {
	u := camera.GPUCameraUniform{
		Model: markedMatrix(9),
		View:  markedMatrix(1),
		Proj:  markedMatrix(2),
	}

	src := ViewSourceFromUniform(u)
	if got := src.ViewCount(); got != 1 {
		t.Errorf("ViewCount() = %d, want 1", got)
	}
	if got := src.View(ViewLeft); got != u.View {
		t.Errorf("View() = %v, want the uniform's view", got)
	}
	if got := src.Projection(ViewLeft); got != u.Proj {
		t.Errorf("Projection() = %v, want the uniform's projection", got)
	}
}

// TestViewSourceFromStereoUniform tests bridging the stereo camera uniform.
func TestViewSourceFromStereoUniform(t *testing.T) {
	u := camera.GPUStereoCameraUniform{
		Model:     markedMatrix(9),
		ViewLeft:  markedMatrix(1),
		ViewRight: markedMatrix(2),
		ProjLeft:  markedMatrix(3),
		ProjRight: markedMatrix(4),
	}

	src := ViewSourceFromStereoUniform(u)
	if got := src.ViewCount(); got != 2 {
		t.Errorf("ViewCount() = %d, want 2", got)
	}
	if src.View(ViewLeft) != u.ViewLeft || src.View(ViewRight) != u.ViewRight {
		t.Errorf("views = %v, %v, want the uniform's per-eye views", src.View(ViewLeft), src.View(ViewRight))
	}
	if src.Projection(ViewLeft) != u.ProjLeft || src.Projection(ViewRight) != u.ProjRight {
		t.Errorf("projections = %v, %v, want the uniform's per-eye projections", src.Projection(ViewLeft), src.Projection(ViewRight))
	}
}
