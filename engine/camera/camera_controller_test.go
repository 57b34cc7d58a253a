package camera

import (
	"math"
	"testing"
)

// TestNewOrbitControllerDefaults tests the default orbit placement and
// constraint values.
func TestNewOrbitControllerDefaults(t *testing.T) {
	ctrl := NewOrbitController()

	if got := ctrl.Radius(); got != 4.0 {
		t.Errorf("Radius() = %v, want 4.0", got)
	}
	if got := ctrl.Azimuth(); !approx(got, float32(math.Pi/2), 1e-6) {
		t.Errorf("Azimuth() = %v, want %v", got, math.Pi/2)
	}
	if got := ctrl.Inclination(); !approx(got, float32(math.Pi/4), 1e-6) {
		t.Errorf("Inclination() = %v, want %v", got, math.Pi/4)
	}
	if got := ctrl.MinRadius(); got != 0 {
		t.Errorf("MinRadius() = %v, want 0", got)
	}
	if got := ctrl.MaxRadius(); got != 100 {
		t.Errorf("MaxRadius() = %v, want 100", got)
	}
	if got := ctrl.MinInclination(); !approx(got, 0.1, 1e-6) {
		t.Errorf("MinInclination() = %v, want 0.1", got)
	}
	if got := ctrl.MaxInclination(); !approx(got, float32(math.Pi-0.1), 1e-6) {
		t.Errorf("MaxInclination() = %v, want %v", got, math.Pi-0.1)
	}
	if got := ctrl.Speed(); got != 2.0 {
		t.Errorf("Speed() = %v, want 2.0", got)
	}
	tx, ty, tz := ctrl.Target()
	if tx != 0 || ty != 0 || tz != 0 {
		t.Errorf("Target() = (%v, %v, %v), want origin", tx, ty, tz)
	}
}

// TestOrbitControllerPosition tests the spherical-to-Cartesian conversion for
// a range of orbit angles.
func TestOrbitControllerPosition(t *testing.T) {
	tests := []struct {
		name        string
		radius      float32
		azimuth     float32
		inclination float32
		target      [3]float32
		want        [3]float32
	}{
		{
			name:   "equator facing +Z",
			radius: 3, azimuth: math.Pi / 2, inclination: math.Pi / 2,
			want: [3]float32{0, 0, 3},
		},
		{
			name:   "equator facing +X",
			radius: 2, azimuth: 0, inclination: math.Pi / 2,
			want: [3]float32{2, 0, 0},
		},
		{
			name:   "default quarter inclination",
			radius: 4, azimuth: math.Pi / 2, inclination: math.Pi / 4,
			want: [3]float32{0, 2.8284271, 2.8284271},
		},
		{
			name:   "offset target",
			radius: 1, azimuth: 0, inclination: math.Pi / 2,
			target: [3]float32{1, 2, 3},
			want:   [3]float32{2, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewOrbitController(
				WithRadius(tt.radius),
				WithAzimuth(tt.azimuth),
				WithInclination(tt.inclination),
				WithTarget(tt.target[0], tt.target[1], tt.target[2]),
			)
			x, y, z := ctrl.Position()
			got := [3]float32{x, y, z}
			for i := range 3 {
				if !approx(got[i], tt.want[i], 1e-5) {
					t.Errorf("Position() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

// TestOrbitControllerClamps tests inclination pole guards, radius bounds, and
// azimuth wrapping.
func TestOrbitControllerClamps(t *testing.T) {
	t.Run("inclination stays off the poles", func(t *testing.T) {
		ctrl := NewOrbitController(WithInclination(0.01))
		if got := ctrl.Inclination(); !approx(got, 0.1, 1e-6) {
			t.Errorf("Inclination() = %v, want 0.1", got)
		}

		ctrl.SetInclination(math.Pi)
		if got := ctrl.Inclination(); !approx(got, float32(math.Pi-0.1), 1e-6) {
			t.Errorf("Inclination() = %v, want %v", got, math.Pi-0.1)
		}
	})

	t.Run("radius honors default bounds", func(t *testing.T) {
		ctrl := NewOrbitController(WithRadius(200))
		if got := ctrl.Radius(); got != 100 {
			t.Errorf("Radius() = %v, want 100", got)
		}

		ctrl.SetRadius(-5)
		if got := ctrl.Radius(); got != 0 {
			t.Errorf("Radius() = %v, want 0", got)
		}
	})

	t.Run("radius honors custom bounds", func(t *testing.T) {
		ctrl := NewOrbitController(WithRadiusBounds(2, 10), WithRadius(1))
		if got := ctrl.Radius(); got != 2 {
			t.Errorf("Radius() = %v, want 2", got)
		}

		ctrl.SetRadius(50)
		if got := ctrl.Radius(); got != 10 {
			t.Errorf("Radius() = %v, want 10", got)
		}
	})

	t.Run("inclination honors custom bounds", func(t *testing.T) {
		ctrl := NewOrbitController(WithInclinationBounds(0.5, 1.0), WithInclination(2))
		if got := ctrl.Inclination(); got != 1.0 {
			t.Errorf("Inclination() = %v, want 1.0", got)
		}
	})

	t.Run("azimuth wraps full turns", func(t *testing.T) {
		ctrl := NewOrbitController(WithAzimuth(4*math.Pi + 0.5))
		if got := ctrl.Azimuth(); !approx(got, 0.5, 1e-5) {
			t.Errorf("Azimuth() = %v, want 0.5", got)
		}
	})
}

// TestOrbitControllerApply tests held-input integration: action directions,
// speed scaling by delta time, and constraint clamping.
func TestOrbitControllerApply(t *testing.T) {
	tests := []struct {
		name    string
		actions []CameraAction
		dt      float32
		check   func(t *testing.T, ctrl CameraController)
	}{
		{
			name:    "orbit up tilts toward the top pole",
			actions: []CameraAction{ActionOrbitUp},
			dt:      0.1,
			check: func(t *testing.T, ctrl CameraController) {
				if got := ctrl.Inclination(); !approx(got, float32(math.Pi/2)-0.2, 1e-5) {
					t.Errorf("Inclination() = %v, want %v", got, float32(math.Pi/2)-0.2)
				}
			},
		},
		{
			name:    "orbit down tilts toward the bottom pole",
			actions: []CameraAction{ActionOrbitDown},
			dt:      0.1,
			check: func(t *testing.T, ctrl CameraController) {
				if got := ctrl.Inclination(); !approx(got, float32(math.Pi/2)+0.2, 1e-5) {
					t.Errorf("Inclination() = %v, want %v", got, float32(math.Pi/2)+0.2)
				}
			},
		},
		{
			name:    "orbit left increases azimuth",
			actions: []CameraAction{ActionOrbitLeft},
			dt:      0.1,
			check: func(t *testing.T, ctrl CameraController) {
				if got := ctrl.Azimuth(); !approx(got, float32(math.Pi/2)+0.2, 1e-5) {
					t.Errorf("Azimuth() = %v, want %v", got, float32(math.Pi/2)+0.2)
				}
			},
		},
		{
			name:    "orbit right decreases azimuth",
			actions: []CameraAction{ActionOrbitRight},
			dt:      0.1,
			check: func(t *testing.T, ctrl CameraController) {
				if got := ctrl.Azimuth(); !approx(got, float32(math.Pi/2)-0.2, 1e-5) {
					t.Errorf("Azimuth() = %v, want %v", got, float32(math.Pi/2)-0.2)
				}
			},
		},
		{
			name:    "closer and farther move along the radius",
			actions: []CameraAction{ActionCloser, ActionCloser, ActionFarther},
			dt:      0.1,
			check: func(t *testing.T, ctrl CameraController) {
				if got := ctrl.Radius(); !approx(got, 3.8, 1e-5) {
					t.Errorf("Radius() = %v, want 3.8", got)
				}
			},
		},
		{
			name:    "runaway tilt clamps at the pole guard",
			actions: []CameraAction{ActionOrbitUp},
			dt:      10,
			check: func(t *testing.T, ctrl CameraController) {
				if got := ctrl.Inclination(); !approx(got, 0.1, 1e-6) {
					t.Errorf("Inclination() = %v, want 0.1", got)
				}
			},
		},
		{
			name:    "runaway zoom clamps at zero radius",
			actions: []CameraAction{ActionCloser},
			dt:      10,
			check: func(t *testing.T, ctrl CameraController) {
				if got := ctrl.Radius(); got != 0 {
					t.Errorf("Radius() = %v, want 0", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewOrbitController(WithInclination(math.Pi / 2))
			ctrl.Apply(tt.actions, tt.dt)
			tt.check(t, ctrl)
		})
	}
}

// TestOrbitControllerApplyUpdatesPosition tests that Apply leaves the
// world-space position consistent with the new orbit coordinates.
func TestOrbitControllerApplyUpdatesPosition(t *testing.T) {
	ctrl := NewOrbitController(
		WithRadius(2),
		WithAzimuth(math.Pi/2),
		WithInclination(math.Pi/2),
	)

	ctrl.Apply([]CameraAction{ActionFarther}, 0.5)
	x, y, z := ctrl.Position()
	if !approx(x, 0, 1e-5) || !approx(y, 0, 1e-5) || !approx(z, 3, 1e-5) {
		t.Errorf("Position() after zoom out = (%v, %v, %v), want (0, 0, 3)", x, y, z)
	}
}
