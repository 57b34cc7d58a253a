package shader

import (
	"testing"
)

// TestParseAnnotationNonAnnotation tests that ordinary WGSL lines are passed
// over without error.
func TestParseAnnotationNonAnnotation(t *testing.T) {
	lines := []string{
		"",
		"let x = 1.0;",
		"// a regular comment",
		"@group(0) @binding(0) var<uniform> camera: CameraUniform;",
	}
	for _, line := range lines {
		a, err := parseAnnotation(line, 1)
		if err != nil {
			t.Errorf("parseAnnotation(%q) error = %v, want nil", line, err)
		}
		if a != nil {
			t.Errorf("parseAnnotation(%q) = %+v, want nil", line, a)
		}
	}
}

// TestParseAnnotationInclude tests parsing of include annotations.
func TestParseAnnotationInclude(t *testing.T) {
	a, err := parseAnnotation("//@stereo:include camera", 7)
	if err != nil {
		t.Fatalf("parseAnnotation() error = %v", err)
	}
	if a.Type != annotationTypeInclude {
		t.Errorf("Type = %q, want %q", a.Type, annotationTypeInclude)
	}
	if len(a.Args) != 1 || a.Args[0] != AnnotationArgCamera {
		t.Errorf("Args = %v, want [%s]", a.Args, AnnotationArgCamera)
	}
	if a.Line != 7 {
		t.Errorf("Line = %d, want 7", a.Line)
	}
	if a.Group != nil || a.Binding != nil {
		t.Errorf("Group, Binding = %v, %v, want nil, nil", a.Group, a.Binding)
	}
}

// TestParseAnnotationGroup tests parsing of group annotations, including
// leading whitespace and array-wrapped struct types.
func TestParseAnnotationGroup(t *testing.T) {
	a, err := parseAnnotation("    //@stereo:group 0 2 storage_uniform camera stereo_camera", 3)
	if err != nil {
		t.Fatalf("parseAnnotation() error = %v", err)
	}
	if a.Type != AnnotationTypeBindingGroup {
		t.Errorf("Type = %q, want %q", a.Type, AnnotationTypeBindingGroup)
	}
	if a.Group == nil || *a.Group != 0 {
		t.Errorf("Group = %v, want 0", a.Group)
	}
	if a.Binding == nil || *a.Binding != 2 {
		t.Errorf("Binding = %v, want 2", a.Binding)
	}
	want := []AnnotationArg{annotationArgStorageTypeUniform, "camera", AnnotationArgStereoCamera}
	if len(a.Args) != 3 || a.Args[0] != want[0] || a.Args[1] != want[1] || a.Args[2] != want[2] {
		t.Errorf("Args = %v, want %v", a.Args, want)
	}

	a, err = parseAnnotation("//@stereo:group 1 0 storage_read lights array<point_light>", 1)
	if err != nil {
		t.Fatalf("parseAnnotation() with an array type error = %v", err)
	}
	if a.Args[2] != "array<point_light>" {
		t.Errorf("Args[2] = %q, want %q", a.Args[2], "array<point_light>")
	}
}

// TestParseAnnotationProvider tests parsing of provider annotations with and
// without the optional binding role.
func TestParseAnnotationProvider(t *testing.T) {
	t.Run("with role", func(t *testing.T) {
		a, err := parseAnnotation("//@stereo:provider 0 1 material diffuse_texture", 5)
		if err != nil {
			t.Fatalf("parseAnnotation() error = %v", err)
		}
		if a.Type != AnnotationTypeProvider {
			t.Errorf("Type = %q, want %q", a.Type, AnnotationTypeProvider)
		}
		if a.Group == nil || *a.Group != 0 || a.Binding == nil || *a.Binding != 1 {
			t.Errorf("Group, Binding = %v, %v, want 0, 1", a.Group, a.Binding)
		}
		if len(a.Args) != 2 || a.Args[0] != AnnotationArgMaterial || a.Args[1] != AnnotationArgDiffuseTexture {
			t.Errorf("Args = %v, want [%s %s]", a.Args, AnnotationArgMaterial, AnnotationArgDiffuseTexture)
		}
	})

	t.Run("without role", func(t *testing.T) {
		a, err := parseAnnotation("//@stereo:provider 2 0 material", 9)
		if err != nil {
			t.Fatalf("parseAnnotation() error = %v", err)
		}
		if len(a.Args) != 1 || a.Args[0] != AnnotationArgMaterial {
			t.Errorf("Args = %v, want [%s]", a.Args, AnnotationArgMaterial)
		}
	})
}

// TestParseAnnotationErrors tests that malformed annotations are rejected with
// an error rather than silently skipped.
func TestParseAnnotationErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "empty annotation", line: "//@stereo:"},
		{name: "unknown type", line: "//@stereo:frobnicate 1 2"},
		{name: "include missing argument", line: "//@stereo:include"},
		{name: "include extra argument", line: "//@stereo:include camera vertex"},
		{name: "include unknown struct", line: "//@stereo:include spaceship"},
		{name: "group too few arguments", line: "//@stereo:group 0 0 storage_uniform camera"},
		{name: "group bad group number", line: "//@stereo:group x 0 storage_uniform camera camera"},
		{name: "group bad binding number", line: "//@stereo:group 0 y storage_uniform camera camera"},
		{name: "group unknown address space", line: "//@stereo:group 0 0 workgroup camera camera"},
		{name: "group unknown struct", line: "//@stereo:group 0 0 storage_uniform camera spaceship"},
		{name: "group unknown array element", line: "//@stereo:group 0 0 storage_uniform lights array<spaceship>"},
		{name: "provider too few arguments", line: "//@stereo:provider 0 1"},
		{name: "provider too many arguments", line: "//@stereo:provider 0 1 material diffuse_texture extra"},
		{name: "provider bad group number", line: "//@stereo:provider x 1 material"},
		{name: "provider unknown identity", line: "//@stereo:provider 0 1 ghost"},
		{name: "provider unknown role", line: "//@stereo:provider 0 1 material specular_cubemap"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := parseAnnotation(tt.line, 4)
			if err == nil {
				t.Fatalf("parseAnnotation(%q) error = nil, want an error", tt.line)
			}
			if a != nil {
				t.Errorf("parseAnnotation(%q) = %+v, want nil alongside the error", tt.line, a)
			}
		})
	}
}
