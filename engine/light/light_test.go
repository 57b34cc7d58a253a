package light

import (
	"testing"
)

// TestNewLightDefaults tests the default placement, ambient floor, and
// enabled state.
func TestNewLightDefaults(t *testing.T) {
	l := NewLight()

	if got := l.Position(); got != ([3]float32{10, 10, 10}) {
		t.Errorf("Position() = %v, want (10, 10, 10)", got)
	}
	if got := l.Ambient(); got != 0.3 {
		t.Errorf("Ambient() = %v, want 0.3", got)
	}
	if !l.Enabled() {
		t.Errorf("Enabled() = false, want true")
	}
}

// TestNewLightOptions tests the functional options.
func TestNewLightOptions(t *testing.T) {
	l := NewLight(
		WithPosition(2, 3, 2),
		WithAmbient(0.1),
		WithEnabled(false),
	)

	if got := l.Position(); got != ([3]float32{2, 3, 2}) {
		t.Errorf("Position() = %v, want (2, 3, 2)", got)
	}
	if got := l.Ambient(); got != 0.1 {
		t.Errorf("Ambient() = %v, want 0.1", got)
	}
	if l.Enabled() {
		t.Errorf("Enabled() = true, want false")
	}
}

// TestLightSetters tests the mutators.
func TestLightSetters(t *testing.T) {
	l := NewLight()

	l.SetPosition(-1, 5, 0)
	if got := l.Position(); got != ([3]float32{-1, 5, 0}) {
		t.Errorf("Position() after SetPosition = %v, want (-1, 5, 0)", got)
	}

	l.SetAmbient(0.6)
	if got := l.Ambient(); got != 0.6 {
		t.Errorf("Ambient() after SetAmbient = %v, want 0.6", got)
	}

	l.SetEnabled(false)
	if l.Enabled() {
		t.Errorf("Enabled() after SetEnabled(false) = true, want false")
	}
}
