package shader

import (
	"strings"
	"testing"
)

// TestPreProcessorInclude tests that an include annotation is replaced with
// the registered struct source.
func TestPreProcessorInclude(t *testing.T) {
	p := NewPreProcessor()

	out, err := p.Process("//@stereo:include camera\nfn main() {}")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if !strings.Contains(out, "struct CameraUniform") {
		t.Errorf("Process() output missing the injected CameraUniform struct:\n%s", out)
	}
	if strings.Contains(out, "@stereo") {
		t.Errorf("Process() output still contains an annotation:\n%s", out)
	}
	if !strings.Contains(out, "fn main() {}") {
		t.Errorf("Process() dropped a non-annotation line:\n%s", out)
	}
	if got := len(p.Declarations()); got != 0 {
		t.Errorf("Declarations() after an include-only source has %d entries, want 0", got)
	}
}

// TestPreProcessorGroupDeclaration tests that a group annotation emits the
// generated binding declaration and records it.
func TestPreProcessorGroupDeclaration(t *testing.T) {
	p := NewPreProcessor()

	out, err := p.Process("//@stereo:group 0 0 storage_uniform camera camera")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	want := "@group(0) @binding(0) var<uniform> camera: CameraUniform;"
	if !strings.Contains(out, want) {
		t.Errorf("Process() output = %q, want it to contain %q", out, want)
	}

	decls := p.Declarations()
	if len(decls) != 1 {
		t.Fatalf("Declarations() has %d entries, want 1", len(decls))
	}
	d := decls[0]
	if d.Type != AnnotationTypeBindingGroup {
		t.Errorf("declaration Type = %q, want %q", d.Type, AnnotationTypeBindingGroup)
	}
	if *d.Group != 0 || *d.Binding != 0 {
		t.Errorf("declaration Group, Binding = %d, %d, want 0, 0", *d.Group, *d.Binding)
	}
}

// TestPreProcessorArrayGroupDeclaration tests that an array-wrapped struct
// type resolves the element type name inside the generated declaration.
func TestPreProcessorArrayGroupDeclaration(t *testing.T) {
	p := NewPreProcessor()

	out, err := p.Process("//@stereo:group 1 2 storage_read lights array<point_light>")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	want := "@group(1) @binding(2) var<storage, read> lights: array<PointLight>;"
	if !strings.Contains(out, want) {
		t.Errorf("Process() output = %q, want it to contain %q", out, want)
	}
}

// TestPreProcessorProvider tests that a provider annotation produces no WGSL
// output but is recorded with its role for resource wiring.
func TestPreProcessorProvider(t *testing.T) {
	p := NewPreProcessor()

	source := "//@stereo:provider 0 1 material diffuse_texture\n" +
		"@group(0) @binding(1) var diffuse_texture: texture_2d<f32>;"
	out, err := p.Process(source)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if strings.Contains(out, "@stereo") {
		t.Errorf("Process() output still contains the provider annotation:\n%s", out)
	}
	if !strings.Contains(out, "var diffuse_texture: texture_2d<f32>;") {
		t.Errorf("Process() dropped the hand-written binding declaration:\n%s", out)
	}

	decls := p.Declarations()
	if len(decls) != 1 {
		t.Fatalf("Declarations() has %d entries, want 1", len(decls))
	}
	d := decls[0]
	if d.Type != AnnotationTypeProvider {
		t.Errorf("declaration Type = %q, want %q", d.Type, AnnotationTypeProvider)
	}
	if len(d.Args) != 2 || d.Args[0] != AnnotationArgMaterial || d.Args[1] != AnnotationArgDiffuseTexture {
		t.Errorf("declaration Args = %v, want [%s %s]", d.Args, AnnotationArgMaterial, AnnotationArgDiffuseTexture)
	}
}

// TestPreProcessorDeclarationOrder tests that declarations come back in
// source order across annotation types.
func TestPreProcessorDeclarationOrder(t *testing.T) {
	p := NewPreProcessor()

	source := "//@stereo:group 1 0 storage_uniform point_light point_light\n" +
		"//@stereo:provider 0 1 material diffuse_texture\n" +
		"//@stereo:provider 0 2 material diffuse_sampler"
	if _, err := p.Process(source); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	decls := p.Declarations()
	if len(decls) != 3 {
		t.Fatalf("Declarations() has %d entries, want 3", len(decls))
	}
	wantTypes := []AnnotationType{AnnotationTypeBindingGroup, AnnotationTypeProvider, AnnotationTypeProvider}
	wantBindings := []int{0, 1, 2}
	for i, d := range decls {
		if d.Type != wantTypes[i] {
			t.Errorf("declaration %d Type = %q, want %q", i, d.Type, wantTypes[i])
		}
		if *d.Binding != wantBindings[i] {
			t.Errorf("declaration %d Binding = %d, want %d", i, *d.Binding, wantBindings[i])
		}
	}
}

// TestPreProcessorPassthrough tests that annotation-free source survives
// processing byte for byte.
func TestPreProcessorPassthrough(t *testing.T) {
	p := NewPreProcessor()

	source := "struct Foo {\n    a: f32,\n}\n\n@vertex\nfn vs_main() {}\n"
	out, err := p.Process(source)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if out != source {
		t.Errorf("Process() = %q, want the source unchanged %q", out, source)
	}
}

// TestPreProcessorDeclarationsReset tests that each Process call starts with
// a clean declarations list.
func TestPreProcessorDeclarationsReset(t *testing.T) {
	p := NewPreProcessor()
	if got := p.Declarations(); got != nil {
		t.Errorf("Declarations() before Process = %v, want nil", got)
	}

	if _, err := p.Process("//@stereo:group 0 0 storage_uniform camera camera"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := len(p.Declarations()); got != 1 {
		t.Fatalf("Declarations() has %d entries, want 1", got)
	}

	if _, err := p.Process("fn main() {}"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := len(p.Declarations()); got != 0 {
		t.Errorf("Declarations() after an annotation-free Process has %d entries, want 0", got)
	}
}

// TestPreProcessorMalformedSource tests that Process surfaces annotation
// parse errors instead of emitting partial output.
func TestPreProcessorMalformedSource(t *testing.T) {
	p := NewPreProcessor()

	out, err := p.Process("fn main() {}\n//@stereo:include spaceship")
	if err == nil {
		t.Fatalf("Process() error = nil, want a parse error")
	}
	if out != "" {
		t.Errorf("Process() output = %q, want empty on error", out)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Process() error = %v, want it to name line 2", err)
	}
}
