package pipeline

import (
	"fmt"
	"sort"

	"github.com/Carmen-Shannon/stereo-go/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// pipeline is the implementation of the Pipeline interface.
// It holds the deployment-time configuration of a render pipeline: the shader pair,
// vertex and bind group layout metadata, target formats, and fixed-function state.
type pipeline struct {
	// pipelineKey is the unique identifier for this pipeline, used for caching and lookups
	pipelineKey string

	// the shader references are required to be set before the pipeline is handed to a device.

	vertexShader, fragmentShader shader.Shader

	// bindGroupLayoutDescriptors merges the per-stage descriptors of both shaders,
	// with visibility flags combined where the stages share a binding.
	bindGroupLayoutDescriptors map[int]wgpu.BindGroupLayoutDescriptor

	// viewCount is the number of views rendered per draw. 1 for single-view pipelines,
	// 2 for stereo multiview pipelines where the pass renders both eye layers at once.
	viewCount uint32

	// The following properties configure the pipeline during creation and can be toggled/set with the builder options.

	depthTestEnabled    bool
	depthWriteEnabled   bool
	depthBias           int32
	depthBiasSlopeScale float32
	depthFormat         wgpu.TextureFormat
	colorFormat         wgpu.TextureFormat
	blendEnabled        bool
	cullMode            wgpu.CullMode
	topology            wgpu.PrimitiveTopology
	frontFace           wgpu.FrontFace
	writeMask           wgpu.ColorWriteMask
	blendState          *wgpu.BlendState
}

// Pipeline defines the interface for a render pipeline descriptor, encapsulating the
// vertex and fragment shader pair together with all configuration state required for
// pipeline creation including view count, target formats, depth, blend, cull, and
// topology settings. Whether a pipeline is single-view or multiview is fixed at
// construction; it is a deployment contract, not a runtime toggle.
type Pipeline interface {
	// PipelineKey returns the unique key associated with this pipeline, used for caching and lookups.
	//
	// Returns:
	//   - string: the unique key for this pipeline
	PipelineKey() string

	// Shader retrieves the shader associated with the specified type if it exists, nil otherwise.
	//
	// Parameters:
	//   - shaderType: the type of shader to retrieve (vertex or fragment)
	//
	// Returns:
	//   - shader.Shader: the shader associated with the specified type, or nil if not set
	Shader(shaderType shader.ShaderType) shader.Shader

	// BindGroupLayoutDescriptors returns the bind group layout descriptors required by
	// this pipeline, merged across the vertex and fragment stages. Entries declared by
	// both stages carry the combined visibility flags.
	//
	// Returns:
	//   - map[int]wgpu.BindGroupLayoutDescriptor: merged descriptors keyed by group index
	BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor

	// ViewCount returns the number of views rendered per draw call.
	//
	// Returns:
	//   - uint32: 1 for single-view pipelines, 2 for stereo multiview pipelines
	ViewCount() uint32

	// ViewMask returns the render pass view mask for this pipeline. A zero mask means
	// multiview is disabled; a stereo pipeline returns 0b11 selecting both eye layers.
	//
	// Returns:
	//   - uint32: the view mask, with one bit set per rendered view
	ViewMask() uint32

	// DepthTestEnabled returns whether depth testing is enabled for this pipeline.
	//
	// Returns:
	//   - bool: true if depth testing is enabled, false otherwise
	DepthTestEnabled() bool

	// DepthWriteEnabled returns whether depth writing is enabled for this pipeline.
	//
	// Returns:
	//   - bool: true if depth writing is enabled, false otherwise
	DepthWriteEnabled() bool

	// DepthBias returns the depth bias value configured for this pipeline.
	//
	// Returns:
	//   - int32: the depth bias value for this pipeline
	DepthBias() int32

	// DepthBiasSlopeScale returns the depth bias slope scale configured for this pipeline.
	//
	// Returns:
	//   - float32: the depth bias slope scale for this pipeline
	DepthBiasSlopeScale() float32

	// DepthFormat returns the depth attachment format for this pipeline.
	//
	// Returns:
	//   - wgpu.TextureFormat: the depth attachment texture format
	DepthFormat() wgpu.TextureFormat

	// ColorFormat returns the color attachment format for this pipeline.
	//
	// Returns:
	//   - wgpu.TextureFormat: the color attachment texture format
	ColorFormat() wgpu.TextureFormat

	// BlendEnabled returns whether blending is enabled for this pipeline.
	//
	// Returns:
	//   - bool: true if blending is enabled, false otherwise
	BlendEnabled() bool

	// CullMode returns the cull mode configured for this pipeline.
	//
	// Returns:
	//   - wgpu.CullMode: the cull mode for this pipeline (e.g., wgpu.CullModeNone, wgpu.CullModeFront, wgpu.CullModeBack)
	CullMode() wgpu.CullMode

	// Topology returns the primitive topology configured for this pipeline.
	//
	// Returns:
	//   - wgpu.PrimitiveTopology: the primitive topology for this pipeline (e.g., wgpu.PrimitiveTopologyTriangleList)
	Topology() wgpu.PrimitiveTopology

	// FrontFace returns the front face winding order configured for this pipeline.
	//
	// Returns:
	//   - wgpu.FrontFace: the front face winding order for this pipeline (e.g., wgpu.FrontFaceCCW, wgpu.FrontFaceCW)
	FrontFace() wgpu.FrontFace

	// WriteMask returns the color write mask configured for this pipeline.
	//
	// Returns:
	//   - wgpu.ColorWriteMask: the color write mask for this pipeline (e.g., wgpu.ColorWriteMaskAll)
	WriteMask() wgpu.ColorWriteMask

	// BlendState returns the blend state configured for this pipeline.
	//
	// Returns:
	//   - *wgpu.BlendState: the blend state for this pipeline, or nil if blending is not enabled
	BlendState() *wgpu.BlendState
}

var _ Pipeline = &pipeline{}

// NewPipeline is the entry point to create a new Pipeline descriptor. A vertex shader
// must be provided via WithVertexShader; construction panics without one. Construction
// fails with an error when an attached shader reads the view_index builtin but the
// pipeline was not configured with WithMultiview, since multiview capability is fixed
// when the pipeline is built and never falls back at draw time.
//
// Parameters:
//   - pipelineKey: the unique key for this pipeline
//   - opts: a variadic list of PipelineBuilderOption functions to configure the pipeline
//
// Returns:
//   - Pipeline: a new Pipeline descriptor with the specified configuration
//   - error: an error if a shader's multiview requirement conflicts with the view count
func NewPipeline(pipelineKey string, opts ...PipelineBuilderOption) (Pipeline, error) {
	p := &pipeline{
		pipelineKey:       pipelineKey,
		viewCount:         1,
		depthTestEnabled:  true,
		depthWriteEnabled: true,
		depthFormat:       wgpu.TextureFormatDepth24Plus,
		colorFormat:       wgpu.TextureFormatBGRA8Unorm,
		blendEnabled:      false,
		cullMode:          wgpu.CullModeNone,
		topology:          wgpu.PrimitiveTopologyTriangleList,
		frontFace:         wgpu.FrontFaceCCW,
		writeMask:         wgpu.ColorWriteMaskAll,
		blendState: &wgpu.BlendState{
			Color: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorSrcAlpha,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
			Alpha: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.vertexShader == nil {
		panic(fmt.Sprintf("pipeline: %s must have a vertex shader provided via WithVertexShader", pipelineKey))
	}
	for _, s := range []shader.Shader{p.vertexShader, p.fragmentShader} {
		if s == nil {
			continue
		}
		if s.RequiresMultiview() && p.viewCount < 2 {
			return nil, fmt.Errorf("pipeline %s: shader %s reads view_index but the pipeline is single-view; configure it with WithMultiview", pipelineKey, s.Key())
		}
	}
	p.bindGroupLayoutDescriptors = mergeBindGroupLayouts(p.vertexShader, p.fragmentShader)
	return p, nil
}

func (p *pipeline) PipelineKey() string {
	return p.pipelineKey
}

func (p *pipeline) ViewCount() uint32 {
	return p.viewCount
}

func (p *pipeline) ViewMask() uint32 {
	if p.viewCount < 2 {
		return 0
	}
	return (1 << p.viewCount) - 1
}

func (p *pipeline) BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor {
	return p.bindGroupLayoutDescriptors
}

func (p *pipeline) DepthTestEnabled() bool {
	return p.depthTestEnabled
}

func (p *pipeline) DepthWriteEnabled() bool {
	return p.depthWriteEnabled
}

func (p *pipeline) DepthBias() int32 {
	return p.depthBias
}

func (p *pipeline) DepthBiasSlopeScale() float32 {
	return p.depthBiasSlopeScale
}

func (p *pipeline) DepthFormat() wgpu.TextureFormat {
	return p.depthFormat
}

func (p *pipeline) ColorFormat() wgpu.TextureFormat {
	return p.colorFormat
}

func (p *pipeline) BlendEnabled() bool {
	return p.blendEnabled
}

func (p *pipeline) CullMode() wgpu.CullMode {
	return p.cullMode
}

func (p *pipeline) Topology() wgpu.PrimitiveTopology {
	return p.topology
}

func (p *pipeline) FrontFace() wgpu.FrontFace {
	return p.frontFace
}

func (p *pipeline) WriteMask() wgpu.ColorWriteMask {
	return p.writeMask
}

func (p *pipeline) BlendState() *wgpu.BlendState {
	return p.blendState
}

func (p *pipeline) Shader(shaderType shader.ShaderType) shader.Shader {
	switch shaderType {
	case shader.ShaderTypeVertex:
		return p.vertexShader
	case shader.ShaderTypeFragment:
		return p.fragmentShader
	default:
		return nil
	}
}

// mergeBindGroupLayouts combines the bind group layout descriptors parsed from the
// vertex and fragment shaders into one descriptor per group. When both stages declare
// the same group and binding, the entry keeps the first stage's layout fields and ORs
// the visibility flags together. Entries are sorted by binding index.
func mergeBindGroupLayouts(shaders ...shader.Shader) map[int]wgpu.BindGroupLayoutDescriptor {
	merged := make(map[int]map[uint32]wgpu.BindGroupLayoutEntry)

	for _, s := range shaders {
		if s == nil {
			continue
		}
		for group, desc := range s.BindGroupLayoutDescriptors() {
			if merged[group] == nil {
				merged[group] = make(map[uint32]wgpu.BindGroupLayoutEntry)
			}
			for _, entry := range desc.Entries {
				if existing, ok := merged[group][entry.Binding]; ok {
					existing.Visibility |= entry.Visibility
					merged[group][entry.Binding] = existing
					continue
				}
				merged[group][entry.Binding] = entry
			}
		}
	}

	result := make(map[int]wgpu.BindGroupLayoutDescriptor, len(merged))
	for group, byBinding := range merged {
		entries := make([]wgpu.BindGroupLayoutEntry, 0, len(byBinding))
		for _, entry := range byBinding {
			entries = append(entries, entry)
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Binding < entries[j].Binding
		})
		result[group] = wgpu.BindGroupLayoutDescriptor{
			Entries: entries,
		}
	}

	return result
}
