// annotations.go defines the annotation types, argument constants, and parser for the
// stereo WGSL shader pre-processor. Annotations are single-line WGSL comments prefixed
// with @stereo: that drive automatic struct injection, bind group declaration, and
// resource provider registration. The parsed results are stored as Annotation values
// and consumed by the PreProcessor and by pipeline setup code to wire GPU resources
// without manual low-level plumbing.
//
// See ANNOTATIONS_README.md at the repository root for full syntax documentation and examples.
package shader

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// annotationPrefix is the marker that identifies a stereo annotation within a WGSL comment line.
// Every annotation must appear on a line beginning with "//" followed by this prefix.
const annotationPrefix = "@stereo:"

// AnnotationType identifies the kind of annotation parsed from a WGSL comment line.
// Each type corresponds to a distinct pre-processor action and produces different
// fields on the resulting Annotation struct.
type AnnotationType string

const (
	// annotationTypeInclude injects the WGSL source of a registered struct definition
	// into the shader at the annotation site. The struct source is embedded from the
	// corresponding Go GPU type's .wgsl asset file. This annotation does not produce
	// a declaration and is consumed entirely during pre-processing.
	//
	// Syntax: //@stereo:include <struct_type>
	//
	// Example: //@stereo:include camera
	annotationTypeInclude AnnotationType = "include"

	// AnnotationTypeBindingGroup generates a WGSL @group/@binding variable declaration
	// and appends an Annotation to the PreProcessor's declarations list. The declaration
	// carries the group index, binding index, and the resolved struct type, enabling
	// pipeline setup code to semantically match bindings to resources without string lookups.
	//
	// Syntax: //@stereo:group <group> <binding> <address_space> <var_name> <type>
	//
	// Example: //@stereo:group 0 0 storage_uniform camera camera
	AnnotationTypeBindingGroup AnnotationType = "group"

	// AnnotationTypeProvider registers a resource provider identity for a group and binding
	// without generating any WGSL output. The WGSL binding declaration remains hand-written
	// in the shader source directly below the annotation. This is used for bindings that
	// contain raw WGSL types (textures, samplers) which have no corresponding registered
	// struct in the pre-processor's struct registry.
	//
	// An optional binding role can be appended after the provider identity to declare the
	// semantic purpose of an individual binding within a multi-binding provider group.
	//
	// Syntax:
	//   //@stereo:provider <group> <binding> <provider_identity>
	//   //@stereo:provider <group> <binding> <provider_identity> <binding_role>
	//
	// Example: //@stereo:provider 0 1 material diffuse_texture
	AnnotationTypeProvider AnnotationType = "provider"
)

// Annotation represents a single parsed @stereo: annotation from a WGSL shader source line.
// It carries the annotation type, its arguments, the source line number, and optional
// group/binding indices. Annotations of type AnnotationTypeBindingGroup and
// AnnotationTypeProvider are appended to the PreProcessor's declarations list for
// consumption during resource wiring.
type Annotation struct {
	// Type identifies which annotation was parsed (include, group, or provider).
	Type AnnotationType

	// Args holds the annotation's arguments. The contents depend on Type:
	//   - include:  [0] = struct type key (e.g. "camera")
	//   - group:    [0] = address space, [1] = var name, [2] = WGSL type key
	//   - provider: [0] = provider identity (e.g. "material"), [1] = binding role (optional, e.g. "diffuse_texture")
	Args []AnnotationArg

	// Line is the 1-based line number in the original WGSL source where this annotation
	// was found. Used for error reporting.
	Line int

	// Group is the @group index for group and provider annotations. Nil for include annotations.
	Group *int

	// Binding is the @binding index for group and provider annotations. Nil for include annotations.
	Binding *int
}

// AnnotationArg is a typed string constant used as an argument in annotations.
// Arguments fall into three categories: struct type keys (used with include and group),
// address space identifiers (used with group), and provider identity keys (used with provider).
type AnnotationArg string

// ── Struct type arguments ──────────────────────────────────────────────────────
// These identify registered WGSL struct types. They can appear in @stereo:include
// annotations (to inject the struct source) and in @stereo:group annotations (as the
// type field, optionally wrapped in array<>). Each maps to a Go GPU type with an
// embedded .wgsl asset file.

const (
	// AnnotationArgCamera identifies the single-view CameraUniform struct.
	// Source: engine/camera/assets/camera_uniform.wgsl
	AnnotationArgCamera AnnotationArg = "camera"

	// AnnotationArgStereoCamera identifies the StereoCameraUniform struct carrying
	// per-eye view and projection matrices for multiview rendering.
	// Source: engine/camera/assets/stereo_camera_uniform.wgsl
	AnnotationArgStereoCamera AnnotationArg = "stereo_camera"

	// AnnotationArgPointLight identifies the PointLight struct.
	// Source: engine/light/assets/point_light.wgsl
	AnnotationArgPointLight AnnotationArg = "point_light"

	// annotationArgVertex identifies the VertexInput struct for scene meshes.
	// Source: engine/model/assets/vertex_input.wgsl
	annotationArgVertex AnnotationArg = "vertex"

	// annotationArgDebugVertex identifies the DebugVertexInput struct for the
	// position-and-color debug pipelines.
	// Source: engine/model/assets/debug_vertex_input.wgsl
	annotationArgDebugVertex AnnotationArg = "debug_vertex"
)

// ── Address space arguments ────────────────────────────────────────────────────
// These specify the WGSL variable address space in @stereo:group annotations.
// They map to WGSL var<> declarations.

const (
	// annotationArgStorageTypeUniform maps to var<uniform> in WGSL.
	annotationArgStorageTypeUniform AnnotationArg = "storage_uniform"

	// annotationArgStorageTypeRead maps to var<storage, read> in WGSL.
	annotationArgStorageTypeRead AnnotationArg = "storage_read"

	// annotationArgStorageTypeReadWrite maps to var<storage, read_write> in WGSL.
	annotationArgStorageTypeReadWrite AnnotationArg = "storage_read_write"
)

// ── Provider identity arguments ────────────────────────────────────────────────
// These identify which resource provider owns a binding. Used in @stereo:provider
// annotations and matched during pipeline setup to wire the correct texture and
// sampler resources for each group.

const (
	// AnnotationArgMaterial identifies the material provider (diffuse texture and sampler).
	AnnotationArgMaterial AnnotationArg = "material"
)

// ── Material binding role arguments ────────────────────────────────────────────
// These qualify individual bindings within a material provider group. They appear
// as the optional fourth argument of an @stereo:provider annotation, telling setup
// code which texture or sampler role each binding fulfils without relying on
// variable-name string matching.

const (
	// AnnotationArgDiffuseTexture identifies a diffuse / base-color texture binding.
	AnnotationArgDiffuseTexture AnnotationArg = "diffuse_texture"

	// AnnotationArgDiffuseSampler identifies the sampler paired with the diffuse texture.
	AnnotationArgDiffuseSampler AnnotationArg = "diffuse_sampler"
)

// validStructTypes lists all AnnotationArg values that are accepted as struct type
// arguments in @stereo:include and @stereo:group annotations. Each entry must have
// a corresponding registryEntry in the PreProcessor's structRegistry.
var validStructTypes = []AnnotationArg{
	AnnotationArgCamera,
	AnnotationArgStereoCamera,
	AnnotationArgPointLight,
	annotationArgVertex,
	annotationArgDebugVertex,
}

// validAddressSpaces lists all AnnotationArg values that are accepted as address
// space arguments in @stereo:group annotations. Each maps to a WGSL var<> declaration.
var validAddressSpaces = []AnnotationArg{
	annotationArgStorageTypeUniform,
	annotationArgStorageTypeRead,
	annotationArgStorageTypeReadWrite,
}

// validProviderIdentities lists all AnnotationArg values that are accepted as
// provider identity arguments in @stereo:provider annotations.
var validProviderIdentities = []AnnotationArg{
	AnnotationArgMaterial,
}

// validBindingRoles lists all AnnotationArg values that are accepted as binding
// role qualifiers in @stereo:provider annotations. These identify the semantic
// purpose of individual bindings within a material provider group.
var validBindingRoles = []AnnotationArg{
	AnnotationArgDiffuseTexture,
	AnnotationArgDiffuseSampler,
}

// parseAnnotation attempts to parse a single line of WGSL source as an @stereo: annotation.
// Returns nil with no error for lines that do not contain the annotation prefix. Returns
// a populated Annotation for valid annotations, or an error describing the problem for
// malformed annotations with correct prefix but invalid syntax or unknown arguments.
//
// Parameters:
//   - line: the raw WGSL source line to parse
//   - lineNum: the 1-based line number for error reporting
//
// Returns:
//   - *Annotation: the parsed annotation, or nil if the line is not an annotation
//   - error: a descriptive error if the annotation is malformed
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	_, after, ok := strings.Cut(trimmed, annotationPrefix)
	if !ok {
		return nil, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return nil, fmt.Errorf("line %d: empty @stereo annotation", lineNum)
	}

	switch args[0] {
	case string(annotationTypeInclude):
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @stereo include annotation requires exactly one argument", lineNum)
		}
		if !slices.Contains(validStructTypes, AnnotationArg(args[1])) {
			return nil, fmt.Errorf("line %d: unknown struct type %q in @stereo include annotation", lineNum, args[1])
		}
		return &Annotation{
			Type: annotationTypeInclude,
			Args: []AnnotationArg{AnnotationArg(args[1])},
			Line: lineNum,
		}, nil
	case string(AnnotationTypeBindingGroup):
		if len(args) != 6 {
			return nil, fmt.Errorf("line %d: @stereo group annotation requires exactly five arguments (group number, binding number, address space, var name, struct type)", lineNum)
		}
		groupInt, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid group number %q in @stereo group annotation: %v", lineNum, args[1], err)
		}
		bindingInt, err := strconv.Atoi(args[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid binding number %q in @stereo group annotation: %v", lineNum, args[2], err)
		}
		if !slices.Contains(validAddressSpaces, AnnotationArg(args[3])) {
			return nil, fmt.Errorf("line %d: unknown address space %q in @stereo group annotation", lineNum, args[3])
		}
		typeArg := args[5]
		if inner, ok := strings.CutPrefix(typeArg, "array<"); ok {
			inner = strings.TrimSuffix(inner, ">")
			if !slices.Contains(validStructTypes, AnnotationArg(inner)) {
				return nil, fmt.Errorf("line %d: unknown array element type %q in @stereo group annotation", lineNum, inner)
			}
		} else {
			if !slices.Contains(validStructTypes, AnnotationArg(typeArg)) {
				return nil, fmt.Errorf("line %d: unknown struct type %q in @stereo group annotation", lineNum, typeArg)
			}
		}
		return &Annotation{
			Type:    AnnotationTypeBindingGroup,
			Args:    []AnnotationArg{AnnotationArg(args[3]), AnnotationArg(args[4]), AnnotationArg(args[5])},
			Line:    lineNum,
			Group:   &groupInt,
			Binding: &bindingInt,
		}, nil
	case string(AnnotationTypeProvider):
		if len(args) < 4 || len(args) > 5 {
			return nil, fmt.Errorf("line %d: @stereo provider annotation requires three or four arguments (group, binding, provider identity[, binding role])", lineNum)
		}
		groupInt, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid group number %q: %v", lineNum, args[1], err)
		}
		bindingInt, err := strconv.Atoi(args[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid binding number %q in @stereo provider annotation: %v", lineNum, args[2], err)
		}
		if !slices.Contains(validProviderIdentities, AnnotationArg(args[3])) {
			return nil, fmt.Errorf("line %d: unknown provider identity %q in @stereo provider annotation", lineNum, args[3])
		}
		providerArgs := []AnnotationArg{AnnotationArg(args[3])}
		if len(args) == 5 {
			if !slices.Contains(validBindingRoles, AnnotationArg(args[4])) {
				return nil, fmt.Errorf("line %d: unknown binding role %q in @stereo provider annotation", lineNum, args[4])
			}
			providerArgs = append(providerArgs, AnnotationArg(args[4]))
		}
		return &Annotation{
			Type:    AnnotationTypeProvider,
			Args:    providerArgs,
			Line:    lineNum,
			Group:   &groupInt,
			Binding: &bindingInt,
		}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown @stereo annotation type %q", lineNum, args[0])
	}
}
