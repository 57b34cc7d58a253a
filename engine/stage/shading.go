package stage

import (
	"github.com/Carmen-Shannon/stereo-go/common"
	"github.com/Carmen-Shannon/stereo-go/engine/light"
	"github.com/Carmen-Shannon/stereo-go/engine/texture"
)

// distanceFloor keeps the diffuse division defined when a fragment sits
// exactly on the light position.
const distanceFloor = 1e-6

// FragmentInput carries the interpolated transform-stage outputs for one
// fragment. Interpolating across a triangle is the rasterizer's job and stays
// outside this package; hosts and tests fabricate these values directly.
type FragmentInput struct {
	// WorldPosition is the interpolated world-space position.
	WorldPosition [3]float32

	// WorldNormal is the interpolated world-space normal. It is consumed as
	// interpolated, without renormalization.
	WorldNormal [3]float32

	// UV is the interpolated texture coordinate.
	UV [2]float32

	// Color is the interpolated per-vertex color.
	Color [3]float32
}

// ShadingStage computes the final RGBA color for a fragment. Shade is pure
// with respect to the stage's configuration and safe for concurrent calls;
// reconfiguring the attached light between batches is the host's
// responsibility, exactly as with the transform stages.
type ShadingStage interface {
	// Shade computes the fragment's output color.
	//
	// Parameters:
	//   - frag: the interpolated fragment values
	//
	// Returns:
	//   - [4]float32: the RGBA output color
	Shade(frag FragmentInput) [4]float32
}

// passthroughShading is the color pass-through implementation of the ShadingStage interface.
type passthroughShading struct{}

// litTexturedShading is the point-lit textured implementation of the ShadingStage interface.
type litTexturedShading struct {
	light   light.Light
	sampler texture.Sampler
}

var _ ShadingStage = &passthroughShading{}
var _ ShadingStage = &litTexturedShading{}

// NewPassthroughShading creates a ShadingStage that emits the interpolated
// vertex color with full opacity, ignoring position, normal and UV.
//
// Returns:
//   - ShadingStage: the pass-through shading stage
func NewPassthroughShading() ShadingStage {
	return &passthroughShading{}
}

// NewLitTexturedShading creates a ShadingStage lit by a single point light and
// textured from one sampler. The light is read at shade time, so moving it via
// SetPosition between batches changes subsequent output without rebuilding the
// stage. Panics if l or s is nil.
//
// Parameters:
//   - l: the point light (position and ambient term)
//   - s: the texture sampler for the fragment's UV lookup
//
// Returns:
//   - ShadingStage: the lit-textured shading stage
func NewLitTexturedShading(l light.Light, s texture.Sampler) ShadingStage {
	if l == nil {
		panic("stage: NewLitTexturedShading requires a non-nil Light")
	}
	if s == nil {
		panic("stage: NewLitTexturedShading requires a non-nil Sampler")
	}
	return &litTexturedShading{light: l, sampler: s}
}

func (p *passthroughShading) Shade(frag FragmentInput) [4]float32 {
	return [4]float32{frag.Color[0], frag.Color[1], frag.Color[2], 1}
}

func (s *litTexturedShading) Shade(frag FragmentInput) [4]float32 {
	toLight := common.Sub3(s.light.Position(), frag.WorldPosition)
	dist := common.Length3(toLight)
	if dist < distanceFloor {
		dist = distanceFloor
	}

	// Diffuse divides the raw dot by the light distance instead of normalizing
	// either vector, so the term falls off with distance and scales with the
	// normal's magnitude. This exact shape is the shading contract; a disabled
	// light leaves only the ambient term.
	var diffuse float32
	if s.light.Enabled() {
		diffuse = common.Saturate(common.Dot3(frag.WorldNormal, toLight) / dist)
	}
	lightTerm := common.Saturate(s.light.Ambient() + diffuse)

	out := s.sampler.Sample(frag.UV[0], frag.UV[1])
	for i := range out {
		out[i] *= lightTerm
	}
	return out
}
